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
	snap string
)

// calcCmd represents the calc command
var calcCmd = &cobra.Command{
	Use:   "calc VIN R1 R2",
	Short: "Compute the output of a resistor divider.",
	Long: `Compute output voltage, current, dissipation and thevenin resistance of a
divider with R1 on the input side and R2 to ground.

	Example:
		- edabuddy calc 5 10k 4.7k
		- edabuddy calc 12 33k 10k --snap E24
	`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		vin, err := parseVoltage(args[0])
		if err != nil {
			return err
		}

		r1, err := lib.ParseResistance(args[1])
		if err != nil {
			return err
		}

		r2, err := lib.ParseResistance(args[2])
		if err != nil {
			return err
		}

		if snap != "" {
			series, err := lib.ParseSeries(snap)
			if err != nil {
				return err
			}

			if r1, err = lib.NearestInSeries(r1, series); err != nil {
				return err
			}
			if r2, err = lib.NearestInSeries(r2, series); err != nil {
				return err
			}
		}

		d := lib.Evaluate(vin, r1, r2)
		fmt.Printf("R1      %s\n", lib.FormatResistance(d.R1))
		fmt.Printf("R2      %s\n", lib.FormatResistance(d.R2))
		fmt.Printf("Vout    %s\n", lib.FormatVoltage(d.Vout))
		fmt.Printf("Current %s\n", lib.FormatCurrent(d.Current))
		fmt.Printf("P(R1)   %s\n", lib.FormatPower(d.PowerR1))
		fmt.Printf("P(R2)   %s\n", lib.FormatPower(d.PowerR2))
		fmt.Printf("P total %s\n", lib.FormatPower(d.PowerTotal))
		fmt.Printf("Rth     %s\n", lib.FormatResistance(d.Rth))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().StringVar(&snap, "snap", "", "round R1 and R2 to the nearest value of this series first")
}
