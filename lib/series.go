package lib

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// IEC 60063 preferred values.
//
// Base values are stored as hundredths (1.5 -> 150) so that the union used by
// ALL deduplicates by exact value and every generated magnitude is the closest
// double to its decimal value (150kΩ is exactly 150000).

type Series string

const (
	E6   Series = "E6"
	E12  Series = "E12"
	E24  Series = "E24"
	E48  Series = "E48"
	E96  Series = "E96"
	E192 Series = "E192"
	ALL  Series = "ALL"
)

var concreteSeries = []Series{E6, E12, E24, E48, E96, E192}

var seriesTables = map[Series][]int{
	E6:  {100, 150, 220, 330, 470, 680},
	E12: {100, 120, 150, 180, 220, 270, 330, 390, 470, 560, 680, 820},
	E24: {
		100, 110, 120, 130, 150, 160, 180, 200, 220, 240, 270, 300,
		330, 360, 390, 430, 470, 510, 560, 620, 680, 750, 820, 910,
	},
	E48: {
		100, 105, 110, 115, 121, 127, 133, 140, 147, 154, 162, 169, 178, 187, 196, 205,
		215, 226, 237, 249, 261, 274, 287, 301, 316, 332, 348, 365, 383, 402, 422, 442,
		464, 487, 511, 536, 562, 590, 619, 649, 681, 715, 750, 787, 825, 866, 909, 953,
	},
	E96: {
		100, 102, 105, 107, 110, 113, 115, 118, 121, 124, 127, 130, 133, 137, 140, 143,
		147, 150, 154, 158, 162, 165, 169, 174, 178, 182, 187, 191, 196, 200, 205, 210,
		215, 221, 226, 232, 237, 243, 249, 255, 261, 267, 274, 280, 287, 294, 301, 309,
		316, 324, 332, 340, 348, 357, 365, 374, 383, 392, 402, 412, 422, 432, 442, 453,
		464, 475, 487, 499, 511, 523, 536, 549, 562, 576, 590, 604, 619, 634, 649, 665,
		681, 698, 715, 732, 750, 768, 787, 806, 825, 845, 866, 887, 909, 931, 953, 976,
	},
	E192: {
		100, 101, 102, 104, 105, 106, 107, 109, 110, 111, 113, 114, 115, 117, 118, 120,
		121, 123, 124, 126, 127, 129, 130, 132, 133, 135, 137, 138, 140, 142, 143, 145,
		147, 149, 150, 152, 154, 156, 158, 160, 162, 164, 165, 167, 169, 172, 174, 176,
		178, 180, 182, 184, 187, 189, 191, 193, 196, 198, 200, 203, 205, 208, 210, 213,
		215, 218, 221, 223, 226, 229, 232, 234, 237, 240, 243, 246, 249, 252, 255, 258,
		261, 264, 267, 271, 274, 277, 280, 284, 287, 291, 294, 298, 301, 305, 309, 312,
		316, 320, 324, 328, 332, 336, 340, 344, 348, 352, 357, 361, 365, 370, 374, 379,
		383, 388, 392, 397, 402, 407, 412, 417, 422, 427, 432, 437, 442, 448, 453, 459,
		464, 470, 475, 481, 487, 493, 499, 505, 511, 517, 523, 530, 536, 542, 549, 556,
		562, 569, 576, 583, 590, 597, 604, 612, 619, 626, 634, 642, 649, 657, 665, 673,
		681, 690, 698, 706, 715, 723, 732, 741, 750, 759, 768, 777, 787, 796, 806, 816,
		825, 835, 845, 856, 866, 876, 887, 898, 909, 920, 931, 942, 953, 965, 976, 988,
	},
}

// union of every concrete table, built once
var allTable = func() []int {
	seen := make(map[int]bool)
	union := []int{}
	for _, s := range concreteSeries {
		for _, v := range seriesTables[s] {
			if !seen[v] {
				seen[v] = true
				union = append(union, v)
			}
		}
	}
	sort.Ints(union)

	return union
}()

// ParseSeries accepts a series tag such as "e96" or "ALL".
func ParseSeries(tag string) (Series, error) {
	s := Series(strings.ToUpper(strings.TrimSpace(tag)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSeries, tag)
	}

	return s, nil
}

func (s Series) Valid() bool {
	if s == ALL {
		return true
	}
	_, ok := seriesTables[s]

	return ok
}

// Count returns the number of base values per decade.
func (s Series) Count() int {
	return len(s.table())
}

func (s Series) String() string {
	return string(s)
}

func (s Series) table() []int {
	if s == ALL {
		return allTable
	}

	return seriesTables[s]
}

// SeriesNames lists every accepted tag, concrete series first.
func SeriesNames() []string {
	names := []string{}
	for _, s := range concreteSeries {
		names = append(names, string(s))
	}

	return append(names, string(ALL))
}

// BaseValues returns the decade-0 values of a series, in [1, 10).
func BaseValues(series Series) ([]float64, error) {
	return GenerateStandardValues(series, 0, 0)
}

// GenerateStandardValues returns every value of the series between
// 10^minDecade and 10^(maxDecade+1), ascending. An empty decade range gives
// an empty slice.
func GenerateStandardValues(series Series, minDecade, maxDecade int) ([]float64, error) {
	if !series.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSeries, string(series))
	}

	table := series.table()
	values := []float64{}
	for decade := minDecade; decade <= maxDecade; decade++ {
		for _, hundredths := range table {
			values = append(values, scaleHundredths(hundredths, decade))
		}
	}

	// decades are visited in order and each table is ascending already
	sort.Float64s(values)

	return values, nil
}

// hundredths·10^(decade-2), computed with a single correctly rounded
// multiplication or division so that the result is the nearest double.
func scaleHundredths(hundredths int, decade int) float64 {
	exp := decade - 2
	if exp >= 0 {
		return float64(hundredths) * math.Pow10(exp)
	}

	return float64(hundredths) / math.Pow10(-exp)
}

// ClosestStandardValue scans values for the one nearest to target. Ties keep
// the first value found. An empty slice returns target with index -1.
func ClosestStandardValue(target float64, values []float64) (float64, int) {
	if len(values) == 0 {
		return target, -1
	}

	closest := 0
	minDiff := math.Abs(target - values[0])
	for i, value := range values {
		if diff := math.Abs(target - value); diff < minDiff {
			minDiff = diff
			closest = i
		}
	}

	return values[closest], closest
}

// NearestInSeries snaps a positive value to the closest member of a series.
func NearestInSeries(target float64, series Series) (float64, error) {
	if target <= 0 {
		return 0, fmt.Errorf("%w: value must be positive", ErrInvalidArgument)
	}

	decade := int(math.Floor(math.Log10(target)))
	values, err := GenerateStandardValues(series, decade-1, decade+1)
	if err != nil {
		return 0, err
	}

	value, _ := ClosestStandardValue(target, values)

	return value, nil
}
