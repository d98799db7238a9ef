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
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/xoviat/edabuddy/lib"
)

var (
	findLimit int
	pkg       string
)

// partsCmd represents the parts command
var partsCmd = &cobra.Command{
	Use:   "parts",
	Short: "Look up vendor part numbers.",
	Long: `Look up LCSC part numbers, from the fixed table of common parts or from the
library filled by "load" and "import".

	Example:
		- edabuddy parts resistor 0603 10k
		- edabuddy parts led 0805 green
		- edabuddy parts match 47k --package 0402
		- edabuddy parts find "10KOhms 0603"
		- edabuddy parts coverage
	`,
}

var partsResistorCmd = &cobra.Command{
	Use:   "resistor FOOTPRINT VALUE",
	Short: "Fixed part for a resistor value.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		part, err := lib.LookupResistor(args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Printf("%s %s: %s\n", part.Footprint, part.Value, part.ID)
		return nil
	},
}

var partsLEDCmd = &cobra.Command{
	Use:   "led FOOTPRINT COLOR",
	Short: "Fixed part for an LED colour.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		part, err := lib.LookupLED(args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Printf("%s %s: %s\n", part.Footprint, part.Color, part.ID)
		return nil
	},
}

var partsMatchCmd = &cobra.Command{
	Use:   "match VALUE",
	Short: "Library resistors with a value.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ohms, err := lib.ParseResistance(args[0])
		if err != nil {
			return err
		}

		library, err := openLibrary()
		if err != nil {
			return err
		}
		defer library.Close()

		components, err := library.FindResistor(ohms, pkg)
		if err != nil {
			return err
		}

		if len(components) == 0 {
			fmt.Printf("no %s resistor in the library\n", lib.FormatResistance(ohms))
			return nil
		}

		printComponents(components)
		return nil
	},
}

var partsFindCmd = &cobra.Command{
	Use:   "find TEXT",
	Short: "Full text search of the library.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		library, err := openLibrary()
		if err != nil {
			return err
		}
		defer library.Close()

		components, err := library.Find(args[0], findLimit)
		if err != nil {
			return err
		}

		printComponents(components)
		return nil
	},
}

var partsCoverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Report gaps in the fixed part table.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		missing := lib.EnsureCoverage()
		if len(missing) == 0 {
			fmt.Println("every footprint has a part for every value and colour")
			return nil
		}

		for _, key := range missing {
			fmt.Println("missing " + key)
		}
		return nil
	},
}

func printComponents(components []*lib.LibraryComponent) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPackage\tType\tDescription")
	for _, component := range components {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			component.ID, component.Package, component.LibraryType, component.Description)
	}
	tw.Flush()
}

func init() {
	rootCmd.AddCommand(partsCmd)
	partsCmd.AddCommand(partsResistorCmd)
	partsCmd.AddCommand(partsLEDCmd)
	partsCmd.AddCommand(partsMatchCmd)
	partsCmd.AddCommand(partsFindCmd)
	partsCmd.AddCommand(partsCoverageCmd)

	partsMatchCmd.Flags().StringVar(&pkg, "package", "", "only parts of this package")
	partsFindCmd.Flags().IntVarP(&findLimit, "limit", "n", 20, "maximum hits")
}
