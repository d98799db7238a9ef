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

// presetCmd represents the preset command
var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Save and reuse search settings.",
	Long: `Presets store a series, resistance and thevenin ranges and an error limit in
the library, for use with "search --preset NAME".

	Example:
		- edabuddy preset save feedback -s E96 --min-r 10k --max-r 470k -e 0.5
		- edabuddy preset list
		- edabuddy search 5 0.8 --preset feedback
	`,
}

var presetSaveCmd = &cobra.Command{
	Use:   "save NAME",
	Short: "Save the given search flags as a preset.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := enumerationConfig(cmd)
		if err != nil {
			return err
		}

		library, err := openLibrary()
		if err != nil {
			return err
		}
		defer library.Close()

		if err := library.SavePreset(args[0], config); err != nil {
			return err
		}

		fmt.Printf("saved preset %s\n", args[0])
		return nil
	},
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved presets.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		library, err := openLibrary()
		if err != nil {
			return err
		}
		defer library.Close()

		for _, name := range library.Presets() {
			fmt.Println(name)
		}
		return nil
	},
}

var presetShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Print a preset.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		library, err := openLibrary()
		if err != nil {
			return err
		}
		defer library.Close()

		config, err := library.Preset(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("series      %s\n", config.Series)
		fmt.Printf("resistance  %s..%s\n", lib.FormatResistance(config.MinR), lib.FormatResistance(config.MaxR))
		fmt.Printf("thevenin    %s..%s\n", lib.FormatResistance(config.MinRth), lib.FormatResistance(config.MaxRth))
		fmt.Printf("error       %s (%s)\n", lib.FormatError(config.ErrorValue, config.ErrorMode), config.ErrorMode)
		return nil
	},
}

var presetDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a preset.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		library, err := openLibrary()
		if err != nil {
			return err
		}
		defer library.Close()

		return library.DeletePreset(args[0])
	},
}

func init() {
	rootCmd.AddCommand(presetCmd)
	presetCmd.AddCommand(presetSaveCmd)
	presetCmd.AddCommand(presetListCmd)
	presetCmd.AddCommand(presetShowCmd)
	presetCmd.AddCommand(presetDeleteCmd)

	addEnumerationFlags(presetSaveCmd.Flags())
}
