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
	"strings"

	"github.com/spf13/cobra"
	"github.com/xoviat/edabuddy/lib"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import a JLCPCB parts spreadsheet.",
	Long: `Import a JLCPCB SMT parts library, in the xlsx format, into the library.
Imported resistors are used by "search --parts" and "parts match".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := args[0]
		if !strings.HasSuffix(strings.ToLower(src), ".xlsx") {
			return fmt.Errorf("%w: parts library must be an xlsx file", lib.ErrInvalidArgument)
		}

		if !lib.Exists(src) {
			return fmt.Errorf("failed to stat file: %s", src)
		}

		library, err := openLibrary()
		if err != nil {
			return err
		}
		defer library.Close()

		n, err := library.Import(cmd.Context(), src)
		if err != nil {
			return fmt.Errorf("failed to import library: %w", err)
		}

		fmt.Printf("imported %d components, %d in library\n", n, library.Count())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
