/*
Copyright © 2020 Mars Galactic <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xoviat/edabuddy/lib"
)

var (
	jlcURL string
)

// loadCmd represents the load command
var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the basic parts list",
	Long:  `Load the basic parts list from the JLCPCB website into the library.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		library, err := openLibrary()
		if err != nil {
			return err
		}
		defer library.Close()

		fmt.Println("loading basic components from JLCPCB")
		client := lib.NewJLC()
		if jlcURL != "" {
			client.WithBaseURL(jlcURL, 0)
		}

		components, errs := client.SelectBaseComponentList(cmd.Context())
		n, err := library.ImportBasic(cmd.Context(), components, errs)
		if err != nil {
			return fmt.Errorf("failed to load basic component list after %d components: %w", n, err)
		}

		fmt.Printf("loaded %d components\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().StringVar(&jlcURL, "url", "", "component list endpoint")
	loadCmd.Flags().MarkHidden("url")
}
