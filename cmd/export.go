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
	bundle string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export VIN VOUT FILE",
	Short: "Export divider search results.",
	Long: `Run a divider search and write every result to an xlsx or csv file. The
xlsx file also records the search parameters.

	Example:
		- edabuddy export 1.5 0.6 dividers.xlsx -s E24
		- edabuddy export 12 5 dividers.csv --bundle dividers.zip
	`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		vin, vout, err := parseVoltages(args)
		if err != nil {
			return err
		}

		config, err := enumerationConfig(cmd)
		if err != nil {
			return err
		}

		results, err := lib.Search(vin, vout, config)
		if err != nil {
			return err
		}

		dst := args[2]
		err = lib.WriteReport(dst, lib.Report{
			Vin:     vin,
			Vtarget: vout,
			Config:  config,
			Results: results,
		})
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", dst, err)
		}
		fmt.Printf("wrote %d results to %s\n", len(results), dst)

		if bundle != "" {
			if err := lib.Bundle(bundle, []string{dst}); err != nil {
				return fmt.Errorf("failed to bundle %s: %w", bundle, err)
			}
			fmt.Printf("bundled into %s\n", bundle)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	addEnumerationFlags(exportCmd.Flags())
	exportCmd.Flags().StringVar(&bundle, "bundle", "", "also pack the file into this archive (.zip, .tar.gz)")
}
