package lib

import (
	"errors"
	"math"
	"testing"
)

func TestGenerateStandardValuesCount(t *testing.T) {
	tests := []struct {
		series Series
		n      int
	}{
		{E6, 6},
		{E12, 12},
		{E24, 24},
		{E48, 48},
		{E96, 96},
		{E192, 192},
		{ALL, 205},
	}

	for _, tt := range tests {
		t.Run(string(tt.series), func(t *testing.T) {
			if tt.series.Count() != tt.n {
				t.Fatalf("Expected %d values per decade, got %d", tt.n, tt.series.Count())
			}

			values, err := GenerateStandardValues(tt.series, -1, 6)
			if err != nil {
				t.Fatalf("Failed to generate: %v", err)
			}

			if len(values) != tt.n*8 {
				t.Fatalf("Expected %d values, got %d", tt.n*8, len(values))
			}

			for i := 1; i < len(values); i++ {
				if !(values[i] > values[i-1]) {
					t.Fatalf("Values not strictly ascending at %d: %g, %g", i, values[i-1], values[i])
				}
			}
		})
	}
}

func TestBaseValuesSpanOneDecade(t *testing.T) {
	for _, name := range SeriesNames() {
		series, err := ParseSeries(name)
		if err != nil {
			t.Fatalf("Failed to parse %s: %v", name, err)
		}

		values, err := BaseValues(series)
		if err != nil {
			t.Fatalf("Failed to generate %s: %v", name, err)
		}

		if values[0] != 1 {
			t.Errorf("%s: expected first value 1, got %g", name, values[0])
		}
		if last := values[len(values)-1]; last >= 10 {
			t.Errorf("%s: expected last value below 10, got %g", name, last)
		}
	}
}

func TestDecadeScaling(t *testing.T) {
	base, err := GenerateStandardValues(E96, 0, 0)
	if err != nil {
		t.Fatalf("Failed to generate: %v", err)
	}

	for decade := -1; decade <= 6; decade++ {
		values, err := GenerateStandardValues(E96, decade, decade)
		if err != nil {
			t.Fatalf("Failed to generate decade %d: %v", decade, err)
		}

		for i, value := range values {
			want := base[i] * math.Pow10(decade)
			if math.Abs(value-want)/want > 1e-12 {
				t.Errorf("decade %d index %d: expected %g, got %g", decade, i, want, value)
			}
		}
	}
}

func TestGeneratedValuesAreExact(t *testing.T) {
	for _, series := range []Series{E24, E96, ALL} {
		values, err := GenerateStandardValues(series, -1, 6)
		if err != nil {
			t.Fatalf("Failed to generate: %v", err)
		}

		found := map[float64]bool{}
		for _, value := range values {
			found[value] = true
		}

		for _, want := range []float64{100000, 150000, 0.1, 1, 10} {
			if !found[want] {
				t.Errorf("%s: expected exact value %g", series, want)
			}
		}
	}

	values, _ := GenerateStandardValues(E24, 5, 5)
	if values[1] != 110000 {
		t.Errorf("Expected 110000 without float tail, got %v", values[1])
	}
}

func TestGenerateEmptyRange(t *testing.T) {
	values, err := GenerateStandardValues(E12, 3, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(values) != 0 {
		t.Errorf("Expected no values, got %d", len(values))
	}
}

func TestUnknownSeries(t *testing.T) {
	_, err := GenerateStandardValues(Series("E3"), 0, 1)
	if !errors.Is(err, ErrUnknownSeries) || !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Expected unknown series error, got %v", err)
	}

	if _, err := ParseSeries("E7"); !errors.Is(err, ErrUnknownSeries) {
		t.Errorf("Expected unknown series error, got %v", err)
	}
}

func TestParseSeries(t *testing.T) {
	tests := map[string]Series{
		"e96":   E96,
		" E24 ": E24,
		"all":   ALL,
		"E192":  E192,
	}

	for input, want := range tests {
		got, err := ParseSeries(input)
		if err != nil {
			t.Errorf("ParseSeries(%q): %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("ParseSeries(%q): expected %s, got %s", input, want, got)
		}
	}
}

func TestClosestStandardValue(t *testing.T) {
	values := []float64{1, 3, 5}

	tests := []struct {
		target float64
		value  float64
		index  int
	}{
		{0.2, 1, 0},
		{2, 1, 0}, // tie keeps the first
		{2.1, 3, 1},
		{9, 5, 2},
	}

	for _, tt := range tests {
		value, index := ClosestStandardValue(tt.target, values)
		if value != tt.value || index != tt.index {
			t.Errorf("target %g: expected %g at %d, got %g at %d", tt.target, tt.value, tt.index, value, index)
		}
	}

	if value, index := ClosestStandardValue(7, nil); value != 7 || index != -1 {
		t.Errorf("Expected 7 at -1 for empty domain, got %g at %d", value, index)
	}
}

func TestNearestInSeries(t *testing.T) {
	tests := []struct {
		target float64
		series Series
		want   float64
	}{
		{4600, E24, 4700},
		{9900, E12, 10000},
		{1490, E96, 1500},
		{0.33, E6, 0.33},
	}

	for _, tt := range tests {
		got, err := NearestInSeries(tt.target, tt.series)
		if err != nil {
			t.Fatalf("NearestInSeries(%g, %s): %v", tt.target, tt.series, err)
		}
		if math.Abs(got-tt.want) > 1e-9*tt.want {
			t.Errorf("NearestInSeries(%g, %s): expected %g, got %g", tt.target, tt.series, tt.want, got)
		}
	}

	if _, err := NearestInSeries(0, E12); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected invalid argument for zero, got %v", err)
	}
}
