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
	plating float64
	deltaT  float64
)

// viaCmd represents the via command
var viaCmd = &cobra.Command{
	Use:   "via",
	Short: "IPC-2221 via current calculations.",
	Long: `Size plated vias with the IPC-2221 external layer model.

	Example:
		- edabuddy via current 0.3            : max current of a 0.3mm via
		- edabuddy via diameter 2 --delta-t 20 : drill needed for 2A at 20°C rise
	`,
}

var viaCurrentCmd = &cobra.Command{
	Use:   "current DRILL_MM",
	Short: "Maximum current through a via.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		drill, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("%w: drill %q", lib.ErrInvalidArgument, args[0])
		}

		current := lib.ViaCurrent(drill, plating, deltaT)
		fmt.Printf("%.3fA for a %.3fmm via (%.3fmm plating, %.0f°C rise)\n", current, drill, plating, deltaT)
		return nil
	},
}

var viaDiameterCmd = &cobra.Command{
	Use:   "diameter AMPS",
	Short: "Smallest via drill for a current.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("%w: current %q", lib.ErrInvalidArgument, args[0])
		}

		drill := lib.ViaDiameterFromCurrent(current, plating, deltaT)
		if drill <= 0 {
			fmt.Println("no via diameter satisfies the inputs")
			return nil
		}

		fmt.Printf("%.3fmm drill for %.3fA (%.3fmm plating, %.0f°C rise)\n", drill, current, plating, deltaT)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(viaCmd)
	viaCmd.AddCommand(viaCurrentCmd)
	viaCmd.AddCommand(viaDiameterCmd)

	viaCmd.PersistentFlags().Float64Var(&plating, "plating", 0.018, "plating thickness in mm")
	viaCmd.PersistentFlags().Float64Var(&deltaT, "delta-t", 10, "allowed temperature rise in °C")
}
