package lib

import (
	"errors"
	"math"
	"testing"
)

func TestParseResistance(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"10", 10},
		{"4.7k", 4700},
		{"4.7K", 4700},
		{"1M", 1e6},
		{"1m", 1e-3},
		{"100m", 0.1},
		{"2.2 kΩ", 2200},
		{"470 ohms", 470},
		{"1ohm", 1},
		{"10KOhms", 10000},
		{"100mΩ", 0.1},
		{"4.7u", 4.7e-6},
		{"4.7μ", 4.7e-6},
		{"1G", 1e9},
		{".5k", 500},
		{"  100  ", 100},
		{"1e3", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseResistance(tt.input)
			if err != nil {
				t.Fatalf("Failed to parse: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9*math.Max(1, tt.want) {
				t.Errorf("Expected %g, got %g", tt.want, got)
			}
		})
	}
}

func TestParseResistanceInvalid(t *testing.T) {
	for _, input := range []string{"", "   ", "abc", "k", "4.7x", "1.2.3", "-5", "10 k k"} {
		if _, err := ParseResistance(input); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ParseResistance(%q): expected invalid argument, got %v", input, err)
		}
	}
}

func TestFormatResistance(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{47, "47Ω"},
		{999, "999Ω"},
		{4.7, "5Ω"},
		{999.4, "999Ω"},
		{1000, "1kΩ"},
		{4700, "4.70kΩ"},
		{150000, "150kΩ"},
		{1e6, "1MΩ"},
		{2.2e6, "2.20MΩ"},
	}

	for _, tt := range tests {
		if got := FormatResistance(tt.value); got != tt.want {
			t.Errorf("FormatResistance(%g): expected %q, got %q", tt.value, tt.want, got)
		}
	}
}

func TestFormatPower(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{1.5, "1.50W"},
		{1, "1.00W"},
		{0.25, "250.0mW"},
		{1e-3, "1.0mW"},
		{5e-6, "5.0μW"},
		{9e-7, "900.0nW"},
	}

	for _, tt := range tests {
		if got := FormatPower(tt.value); got != tt.want {
			t.Errorf("FormatPower(%g): expected %q, got %q", tt.value, tt.want, got)
		}
	}
}

func TestFormatError(t *testing.T) {
	if got := FormatError(0.1234, ErrorPercent); got != "0.123%" {
		t.Errorf("Expected 0.123%%, got %q", got)
	}

	if got := FormatError(0.005, ErrorAbsolute); got != "5.00mV" {
		t.Errorf("Expected 5.00mV, got %q", got)
	}
}
