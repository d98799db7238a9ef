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
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xoviat/edabuddy/lib"
)

var (
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "edabuddy",
	Short: "Resistor divider synthesis and schematic calculators.",
	Long: `edabuddy finds standard resistor pairs for voltage dividers and
carries the small calculators used while drawing schematics.

	Example:
		- edabuddy search 1.5 0.6 --series E24      : dividers for 1.5V -> 0.6V
		- edabuddy calc 5 10k 4.7k                  : output of a given divider
		- edabuddy series E12 --min-decade 3        : list standard values
		- edabuddy via current 0.3                  : IPC-2221 via current
		- edabuddy parts resistor 0603 10k          : LCSC part for a resistor
	`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		lib.SetupLogger(os.Stderr, viper.GetBool("debug"))
		if used := viper.ConfigFileUsed(); used != "" {
			lib.Logger().Debug("config.loaded", "path", used)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.edabuddy.yaml)")
	rootCmd.PersistentFlags().String("root", "", "library directory (default is the user data directory)")
	rootCmd.PersistentFlags().Bool("debug", false, "verbose JSON logging on stderr")

	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".edabuddy")
	}

	viper.SetEnvPrefix("EDABUDDY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		fmt.Fprintf(os.Stderr, "failed to read config %s: %s\n", cfgFile, err)
	}
}

func openLibrary() (*lib.Library, error) {
	var (
		library *lib.Library
		err     error
	)

	if root := viper.GetString("root"); root != "" {
		library, err = lib.NewLibrary(root)
	} else {
		library, err = lib.NewDefaultLibrary()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open or create library: %w", err)
	}

	lib.Logger().Debug("library.opened", "root", library.Root())
	return library, nil
}
