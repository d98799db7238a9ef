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
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xoviat/edabuddy/lib"
)

func TestParseVoltage(t *testing.T) {
	tests := map[string]float64{
		"3.3":   3.3,
		"3.3V":  3.3,
		" 12v ": 12,
		"0.6":   0.6,
	}

	for input, want := range tests {
		got, err := parseVoltage(input)
		if err != nil || got != want {
			t.Errorf("parseVoltage(%q): expected %g, got %g (%v)", input, want, got, err)
		}
	}

	if _, err := parseVoltage("three"); !errors.Is(err, lib.ErrInvalidArgument) {
		t.Errorf("Expected invalid argument, got %v", err)
	}
}

func newEnumerationCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd := &cobra.Command{Use: "test"}
	addEnumerationFlags(cmd.Flags())
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	return cmd
}

func TestEnumerationConfigDefaults(t *testing.T) {
	config, err := enumerationConfig(newEnumerationCommand(t))
	if err != nil {
		t.Fatalf("Failed to build config: %v", err)
	}

	if config != lib.DefaultEnumerationConfig() {
		t.Errorf("Expected defaults, got %+v", config)
	}
}

func TestEnumerationConfigFlags(t *testing.T) {
	cmd := newEnumerationCommand(t,
		"-s", "e24", "--min-r", "4.7k", "--max-r", "470k", "--max-rth", "100k",
		"--error-mode", "absolute", "-e", "0.01")

	config, err := enumerationConfig(cmd)
	if err != nil {
		t.Fatalf("Failed to build config: %v", err)
	}

	want := lib.EnumerationConfig{
		Series:     lib.E24,
		MinR:       4700,
		MaxR:       470000,
		MinRth:     0,
		MaxRth:     100000,
		ErrorMode:  lib.ErrorAbsolute,
		ErrorValue: 0.01,
	}
	if config != want {
		t.Errorf("Expected %+v, got %+v", want, config)
	}
}

func TestEnumerationConfigInvalid(t *testing.T) {
	tests := [][]string{
		{"-s", "E7"},
		{"--min-r", "ten"},
		{"--min-r", "1M", "--max-r", "1k"},
		{"--error-mode", "ratio"},
		{"-e", "0"},
	}

	for _, args := range tests {
		if _, err := enumerationConfig(newEnumerationCommand(t, args...)); !errors.Is(err, lib.ErrInvalidArgument) {
			t.Errorf("%v: expected invalid argument, got %v", args, err)
		}
	}
}

func TestPrintResultsLimit(t *testing.T) {
	results, err := lib.Search(1.5, 0.6, lib.DefaultEnumerationConfig())
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}

	buf := &bytes.Buffer{}
	printResults(buf, results, lib.ErrorPercent, 5, nil)

	if len(results) <= 5 {
		t.Fatalf("Expected more than 5 results, got %d", len(results))
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 7 {
		t.Fatalf("Expected header, 5 rows and a footer, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[1], "1 ") || !strings.Contains(lines[1], "0.000%") {
		t.Errorf("Expected an exact pair first, got %q", lines[1])
	}
	if want := fmt.Sprintf("... %d more", len(results)-5); lines[6] != want {
		t.Errorf("Expected footer %q, got %q", want, lines[6])
	}
}
