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
	"os"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/xoviat/edabuddy/lib"
)

var (
	limit       int
	footprint   string
	interactive bool
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search VIN VOUT",
	Short: "Find standard resistor pairs for a voltage divider.",
	Long: `Search every R1/R2 pair of a standard series whose divider output is within
the allowed error of VOUT, best match first.

	Example:
		- edabuddy search 1.5 0.6                              : E96, 1k..1M, 1%
		- edabuddy search 12 3.3 -s E24 --error 2              : E24 within 2%
		- edabuddy search 5 1.2 --error-mode absolute -e 0.01  : within 10mV
		- edabuddy search 3.3 1.8 --parts 0603                 : show LCSC parts
	`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		vin, vout, err := parseVoltages(args)
		if err != nil {
			return err
		}

		if interactive {
			series, err := promptSeries()
			if err != nil {
				return err
			}
			cmd.Flags().Set("series", series)
		}

		config, err := enumerationConfig(cmd)
		if err != nil {
			return err
		}

		results, err := lib.Search(vin, vout, config)
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Printf("no %s combination found for %s -> %s\n",
				config.Series, lib.FormatVoltage(vin), lib.FormatVoltage(vout))
			return nil
		}

		fmt.Printf("%d combinations for %s -> %s (%s, %s..%s)\n",
			len(results), lib.FormatVoltage(vin), lib.FormatVoltage(vout),
			config.Series, lib.FormatResistance(config.MinR), lib.FormatResistance(config.MaxR))

		var parts func(float64) string
		if footprint != "" {
			library, err := openLibrary()
			if err != nil {
				return err
			}
			defer library.Close()

			parts = partLabeler(library, footprint)
		}

		printResults(os.Stdout, results, config.ErrorMode, limit, parts)
		return nil
	},
}

// partLabeler names a part for a resistance: the fixed table first, then the
// imported library.
func partLabeler(library *lib.Library, footprint string) func(float64) string {
	return func(ohms float64) string {
		if part, ok := lib.FixedPartFor(footprint, ohms); ok {
			return part.ID
		}

		components, err := library.FindResistor(ohms, footprint)
		if err != nil || len(components) == 0 {
			return "-"
		}

		return components[0].ID
	}
}

func promptSeries() (string, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return "", fmt.Errorf("--interactive requires a terminal")
	}

	fmt.Println("Enter resistor series:")
	series := prompt.Input("> ", func(d prompt.Document) []prompt.Suggest {
		suggestions := []prompt.Suggest{}
		for _, name := range lib.SeriesNames() {
			s, _ := lib.ParseSeries(name)
			suggestions = append(suggestions, prompt.Suggest{
				Text:        name,
				Description: fmt.Sprintf("%d values per decade", s.Count()),
			})
		}

		return prompt.FilterHasPrefix(suggestions, d.GetWordBeforeCursor(), true)
	})

	return strings.TrimSpace(series), nil
}

func init() {
	rootCmd.AddCommand(searchCmd)

	addEnumerationFlags(searchCmd.Flags())
	searchCmd.Flags().IntVarP(&limit, "limit", "n", 20, "rows to print, 0 for all")
	searchCmd.Flags().StringVarP(&footprint, "parts", "p", "", "annotate results with parts of this footprint (0402, 0603, 0805)")
	searchCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "choose the series from a prompt")
}
