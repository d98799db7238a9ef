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
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xoviat/edabuddy/lib"
)

// Flags shared by every command that runs a divider search. They are bound
// to viper when the command runs, so the config file and EDABUDDY_* variables
// supply the defaults.
func addEnumerationFlags(flags *pflag.FlagSet) {
	d := lib.DefaultEnumerationConfig()

	flags.StringP("series", "s", string(d.Series), "resistor series: "+strings.Join(lib.SeriesNames(), ", "))
	flags.String("min-r", "1k", "smallest allowed resistor")
	flags.String("max-r", "1M", "largest allowed resistor")
	flags.String("min-rth", "0", "smallest allowed thevenin resistance")
	flags.String("max-rth", "10M", "largest allowed thevenin resistance")
	flags.String("error-mode", string(d.ErrorMode), "percent or absolute")
	flags.Float64P("error", "e", d.ErrorValue, "largest allowed error, in percent or volts")
	flags.String("preset", "", "start from a saved preset; explicit flags override it")
}

func enumerationConfig(cmd *cobra.Command) (lib.EnumerationConfig, error) {
	flags := cmd.Flags()
	if err := viper.BindPFlags(flags); err != nil {
		return lib.EnumerationConfig{}, err
	}

	config := lib.DefaultEnumerationConfig()
	fromPreset := false
	if name, _ := flags.GetString("preset"); name != "" {
		library, err := openLibrary()
		if err != nil {
			return config, err
		}
		defer library.Close()

		if config, err = library.Preset(name); err != nil {
			return config, err
		}
		fromPreset = true
	}

	// with a preset only flags given on the command line apply
	use := func(key string) bool {
		return !fromPreset || flags.Changed(key)
	}

	if use("series") {
		series, err := lib.ParseSeries(viper.GetString("series"))
		if err != nil {
			return config, err
		}
		config.Series = series
	}

	resistances := []struct {
		key string
		dst *float64
	}{
		{"min-r", &config.MinR},
		{"max-r", &config.MaxR},
		{"min-rth", &config.MinRth},
		{"max-rth", &config.MaxRth},
	}
	for _, r := range resistances {
		if !use(r.key) {
			continue
		}

		value, err := lib.ParseResistance(viper.GetString(r.key))
		if err != nil {
			return config, fmt.Errorf("--%s: %w", r.key, err)
		}
		*r.dst = value
	}

	if use("error-mode") {
		mode, err := lib.ParseErrorMode(viper.GetString("error-mode"))
		if err != nil {
			return config, err
		}
		config.ErrorMode = mode
	}

	if use("error") {
		config.ErrorValue = viper.GetFloat64("error")
	}

	return config, config.Validate()
}

// parseVoltage accepts "3.3" or "3.3V".
func parseVoltage(arg string) (float64, error) {
	trimmed := strings.TrimSuffix(strings.TrimSuffix(strings.TrimSpace(arg), "V"), "v")
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: voltage %q", lib.ErrInvalidArgument, arg)
	}

	return value, nil
}

func parseVoltages(args []string) (float64, float64, error) {
	vin, err := parseVoltage(args[0])
	if err != nil {
		return 0, 0, err
	}

	vout, err := parseVoltage(args[1])
	if err != nil {
		return 0, 0, err
	}

	return vin, vout, nil
}

// printResults writes the ranked table. limit only truncates what is shown;
// parts, when set, adds one column per resistor.
func printResults(w io.Writer, results []lib.ResistorResult, mode lib.ErrorMode, limit int, parts func(float64) string) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	header := "#\tR1\tR2\tVout\tError\tCurrent\tP(R1)\tP(R2)\tRth"
	if parts != nil {
		header += "\tR1 part\tR2 part"
	}
	fmt.Fprintln(tw, header)

	for i, r := range results {
		if limit > 0 && i >= limit {
			break
		}

		line := fmt.Sprintf("%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s",
			i+1,
			lib.FormatResistance(r.R1),
			lib.FormatResistance(r.R2),
			lib.FormatVoltage(r.Vout),
			lib.FormatError(r.Error, mode),
			lib.FormatCurrent(r.Current),
			lib.FormatPower(r.PowerR1),
			lib.FormatPower(r.PowerR2),
			lib.FormatResistance(r.Rth),
		)
		if parts != nil {
			line += "\t" + parts(r.R1) + "\t" + parts(r.R2)
		}
		fmt.Fprintln(tw, line)
	}

	tw.Flush()
	if limit > 0 && len(results) > limit {
		fmt.Fprintf(w, "... %d more\n", len(results)-limit)
	}
}
