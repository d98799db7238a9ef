package lib

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

type ErrorMode string

const (
	ErrorPercent  ErrorMode = "percent"
	ErrorAbsolute ErrorMode = "absolute"
)

// search domain, 0.1Ω to 10MΩ scale
const (
	SearchMinDecade = -1
	SearchMaxDecade = 6
)

// two results closer than this, relatively, on both resistors are duplicates
const duplicateTolerance = 0.001

func ParseErrorMode(mode string) (ErrorMode, error) {
	switch m := ErrorMode(strings.ToLower(strings.TrimSpace(mode))); m {
	case ErrorPercent, ErrorAbsolute:
		return m, nil
	case "%", "pct":
		return ErrorPercent, nil
	case "v", "abs":
		return ErrorAbsolute, nil
	}

	return "", fmt.Errorf("%w: unknown error mode %q", ErrInvalidArgument, mode)
}

// EnumerationConfig bounds a search. MinR/MaxR apply to both resistors,
// MinRth/MaxRth to the Thevenin resistance. ErrorValue is a percentage of
// the target in ErrorPercent mode and volts in ErrorAbsolute mode.
type EnumerationConfig struct {
	Series     Series
	MinR       float64
	MaxR       float64
	MinRth     float64
	MaxRth     float64
	ErrorMode  ErrorMode
	ErrorValue float64
}

func DefaultEnumerationConfig() EnumerationConfig {
	return EnumerationConfig{
		Series:     E96,
		MinR:       1e3,
		MaxR:       1e6,
		MinRth:     0,
		MaxRth:     1e7,
		ErrorMode:  ErrorPercent,
		ErrorValue: 1,
	}
}

func (c EnumerationConfig) Validate() error {
	if !c.Series.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSeries, string(c.Series))
	}
	if c.ErrorMode != ErrorPercent && c.ErrorMode != ErrorAbsolute {
		return fmt.Errorf("%w: unknown error mode %q", ErrInvalidArgument, string(c.ErrorMode))
	}
	if c.MinR > c.MaxR {
		return fmt.Errorf("%w: min resistance %g exceeds max %g", ErrInvalidArgument, c.MinR, c.MaxR)
	}
	if c.MinRth > c.MaxRth {
		return fmt.Errorf("%w: min thevenin resistance %g exceeds max %g", ErrInvalidArgument, c.MinRth, c.MaxRth)
	}
	if !(c.ErrorValue > 0) {
		return fmt.Errorf("%w: error value must be positive, got %g", ErrInvalidArgument, c.ErrorValue)
	}

	return nil
}

type ResistorResult struct {
	R1         float64
	R2         float64
	Vout       float64
	Error      float64
	Current    float64
	PowerR1    float64
	PowerR2    float64
	Rth        float64
	PowerTotal float64
}

func (r ResistorResult) duplicates(other ResistorResult) bool {
	return relativeDiff(r.R1, other.R1) < duplicateTolerance &&
		relativeDiff(r.R2, other.R2) < duplicateTolerance
}

func relativeDiff(a, b float64) float64 {
	return math.Abs(a-b) / math.Max(a, b)
}

// Search returns every standard (R1, R2) pair whose divider output is within
// the configured error of vtarget, best first.
//
// Voltages that no passive divider can produce (vin <= 0, vtarget <= 0,
// vtarget >= vin) give an empty result, as do inverted bounds, a non-positive
// error limit and a search with no match. An error is only returned for an
// unknown series or error mode.
func Search(vin, vtarget float64, config EnumerationConfig) ([]ResistorResult, error) {
	if !config.Series.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSeries, string(config.Series))
	}
	if config.ErrorMode != ErrorPercent && config.ErrorMode != ErrorAbsolute {
		return nil, fmt.Errorf("%w: unknown error mode %q", ErrInvalidArgument, string(config.ErrorMode))
	}
	if config.MinR > config.MaxR || config.MinRth > config.MaxRth || !(config.ErrorValue > 0) {
		return []ResistorResult{}, nil
	}

	values, err := GenerateStandardValues(config.Series, SearchMinDecade, SearchMaxDecade)
	if err != nil {
		return nil, err
	}

	domain := []float64{}
	for _, value := range values {
		if value >= config.MinR && value <= config.MaxR {
			domain = append(domain, value)
		}
	}

	results := searchDomain(vin, vtarget, config, domain)
	Logger().Debug("divider.search",
		"vin", vin,
		"vtarget", vtarget,
		"series", string(config.Series),
		"candidates", len(domain),
		"results", len(results),
	)

	return results, nil
}

// searchDomain runs the search over an ascending domain already limited to [MinR, MaxR].
func searchDomain(vin, vtarget float64, config EnumerationConfig, domain []float64) []ResistorResult {
	results := []ResistorResult{}
	if vin <= 0 || vtarget <= 0 || vtarget >= vin {
		return results
	}

	ratio := vtarget / vin
	for _, r1 := range domain {
		r2Ideal := ratio * r1 / (1 - ratio)
		if r2Ideal <= 0 || r2Ideal < config.MinR || r2Ideal > config.MaxR {
			continue
		}

		for _, r2 := range r2Candidates(r2Ideal, domain) {
			if r2 < config.MinR || r2 > config.MaxR {
				continue
			}

			d := Evaluate(vin, r1, r2)
			if d.Rth < config.MinRth || d.Rth > config.MaxRth {
				continue
			}

			e := voltageError(d.Vout, vtarget, config.ErrorMode)
			if e > config.ErrorValue {
				continue
			}

			results = append(results, ResistorResult{
				R1:         r1,
				R2:         r2,
				Vout:       d.Vout,
				Error:      e,
				Current:    d.Current,
				PowerR1:    d.PowerR1,
				PowerR2:    d.PowerR2,
				Rth:        d.Rth,
				PowerTotal: d.PowerTotal,
			})
		}
	}

	results = dedupResults(results)
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Error < results[j].Error
	})

	return results
}

// The closest domain value plus its neighbours. Snapping by absolute
// distance alone can miss a neighbour with a smaller output error.
func r2Candidates(r2Ideal float64, domain []float64) []float64 {
	closest, i := ClosestStandardValue(r2Ideal, domain)
	if i < 0 {
		return nil
	}

	candidates := []float64{closest}
	if i > 0 {
		candidates = append(candidates, domain[i-1])
	}
	if i < len(domain)-1 {
		candidates = append(candidates, domain[i+1])
	}

	return candidates
}

func voltageError(vout, vtarget float64, mode ErrorMode) float64 {
	if mode == ErrorAbsolute {
		return math.Abs(vout - vtarget)
	}

	return math.Abs(vout-vtarget) / vtarget * 100
}

// dedupResults drops every result that matches any earlier one, kept or not.
func dedupResults(results []ResistorResult) []ResistorResult {
	unique := []ResistorResult{}
	for i, result := range results {
		duplicate := false
		for _, earlier := range results[:i] {
			if earlier.duplicates(result) {
				duplicate = true
				break
			}
		}

		if !duplicate {
			unique = append(unique, result)
		}
	}

	return unique
}
