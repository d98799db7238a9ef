package lib

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// "4.7k", "1M", "10", "2.2 kΩ", "470 ohms". M is mega and m is milli.
var resistanceLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Number", Pattern: `[0-9]*\.?[0-9]+([eE][-+]?[0-9]+)?`},
	{Name: "Ohm", Pattern: `(?i)(ohms?|Ω|ω)`},
	{Name: "Prefix", Pattern: `[kKmMgGuUμ]`},
})

type resistanceLiteral struct {
	Value  float64 `parser:"@Number"`
	Prefix string  `parser:"@Prefix?"`
	Unit   string  `parser:"@Ohm?"`
}

var resistanceParser = participle.MustBuild[resistanceLiteral](
	participle.Lexer(resistanceLexer),
	participle.Elide("Whitespace"),
)

var prefixMultipliers = map[string]float64{
	"":  1,
	"k": 1e3,
	"K": 1e3,
	"m": 1e-3,
	"M": 1e6,
	"g": 1e9,
	"G": 1e9,
	"u": 1e-6,
	"U": 1e-6,
	"μ": 1e-6,
}

// ParseResistance converts a value with an optional SI prefix and ohm suffix to ohms.
func ParseResistance(input string) (float64, error) {
	if strings.TrimSpace(input) == "" {
		return 0, fmt.Errorf("%w: empty resistance", ErrInvalidArgument)
	}

	literal, err := resistanceParser.ParseString("", input)
	if err != nil {
		return 0, fmt.Errorf("%w: resistance %q: %v", ErrInvalidArgument, input, err)
	}

	multiplier, ok := prefixMultipliers[literal.Prefix]
	if !ok {
		return 0, fmt.Errorf("%w: resistance %q: unknown prefix %q", ErrInvalidArgument, input, literal.Prefix)
	}

	return literal.Value * multiplier, nil
}

// FormatResistance switches to kΩ at 1000 and MΩ at 1e6.
func FormatResistance(value float64) string {
	switch {
	case value >= 1e6:
		return scaled(value, 1e6) + "MΩ"
	case value >= 1e3:
		return scaled(value, 1e3) + "kΩ"
	}

	return strconv.FormatFloat(value, 'f', 0, 64) + "Ω"
}

// exact multiples of the unit print without decimals
func scaled(value, unit float64) string {
	decimals := 2
	if math.Mod(value, unit) == 0 {
		decimals = 0
	}

	return strconv.FormatFloat(value/unit, 'f', decimals, 64)
}

// FormatPower switches to mW below 1W, μW below 1mW and nW below 1μW.
func FormatPower(value float64) string {
	switch {
	case value >= 1:
		return fmt.Sprintf("%.2fW", value)
	case value >= 1e-3:
		return fmt.Sprintf("%.1fmW", value*1e3)
	case value >= 1e-6:
		return fmt.Sprintf("%.1fμW", value*1e6)
	}

	return fmt.Sprintf("%.1fnW", value*1e9)
}

func FormatCurrent(value float64) string {
	switch {
	case value >= 1:
		return fmt.Sprintf("%.2fA", value)
	case value >= 1e-3:
		return fmt.Sprintf("%.2fmA", value*1e3)
	case value >= 1e-6:
		return fmt.Sprintf("%.2fμA", value*1e6)
	}

	return fmt.Sprintf("%.2fnA", value*1e9)
}

func FormatVoltage(value float64) string {
	if math.Abs(value) >= 1 {
		return fmt.Sprintf("%.4fV", value)
	}

	return fmt.Sprintf("%.2fmV", value*1e3)
}

// FormatError renders a search error in the unit of its mode.
func FormatError(value float64, mode ErrorMode) string {
	if mode == ErrorAbsolute {
		return FormatVoltage(value)
	}

	return fmt.Sprintf("%.3f%%", value)
}
