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
	"strconv"

	"github.com/spf13/cobra"
	"github.com/xoviat/edabuddy/lib"
)

var (
	minDecade int
	maxDecade int
	raw       bool
)

// seriesCmd represents the series command
var seriesCmd = &cobra.Command{
	Use:   "series SERIES",
	Short: "List the standard values of a resistor series.",
	Long: `List the IEC 60063 values of a series (E6, E12, E24, E48, E96, E192 or ALL)
across a range of decades. Decade 0 is 1Ω..9.x Ω, decade 3 is 1kΩ..9.x kΩ.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		series, err := lib.ParseSeries(args[0])
		if err != nil {
			return err
		}

		values, err := lib.GenerateStandardValues(series, minDecade, maxDecade)
		if err != nil {
			return err
		}

		for _, value := range values {
			if raw {
				fmt.Println(strconv.FormatFloat(value, 'g', -1, 64))
			} else {
				fmt.Println(lib.FormatResistance(value))
			}
		}

		fmt.Printf("%d values, %d per decade\n", len(values), series.Count())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seriesCmd)

	seriesCmd.Flags().IntVar(&minDecade, "min-decade", 0, "first decade")
	seriesCmd.Flags().IntVar(&maxDecade, "max-decade", 0, "last decade")
	seriesCmd.Flags().BoolVar(&raw, "raw", false, "print plain numbers in ohms")
}
