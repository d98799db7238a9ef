package lib

import (
	"fmt"
	"sort"
)

// Fixed vendor part numbers for the values the schematic helpers place most
// often. The tables are built once and never modified.

type ResistorPart struct {
	Footprint string
	Value     string
	ID        string
}

type LEDPart struct {
	Footprint string
	Color     string
	ID        string
}

var (
	PartFootprints = []string{"0402", "0603", "0805"}
	ResistorValues = []string{"4.7k", "5.1k", "10k", "100k"}
	LEDColors      = []string{"red", "green", "blue", "white", "yellow"}
)

var resistorParts = []ResistorPart{
	{Footprint: "0402", Value: "4.7k", ID: "C25900"},
	{Footprint: "0402", Value: "5.1k", ID: "C22356228"},
	{Footprint: "0402", Value: "10k", ID: "C2906861"},
	{Footprint: "0402", Value: "100k", ID: "C2906859"},

	{Footprint: "0603", Value: "4.7k", ID: "C2907034"},
	{Footprint: "0603", Value: "5.1k", ID: "C23186"},
	{Footprint: "0603", Value: "10k", ID: "C25804"},
	{Footprint: "0603", Value: "100k", ID: "C25803"},

	{Footprint: "0805", Value: "4.7k", ID: "C2907326"},
	{Footprint: "0805", Value: "5.1k", ID: "C2930296"},
	{Footprint: "0805", Value: "10k", ID: "C17414"},
	{Footprint: "0805", Value: "100k", ID: "C149504"},
}

var ledParts = []LEDPart{
	{Footprint: "0402", Color: "red", ID: "C25503345"},
	{Footprint: "0402", Color: "green", ID: "C965793"},
	{Footprint: "0402", Color: "blue", ID: "C434447"},
	{Footprint: "0402", Color: "white", ID: "C20613596"},
	{Footprint: "0402", Color: "yellow", ID: "C25503856"},

	{Footprint: "0603", Color: "red", ID: "C965799"},
	{Footprint: "0603", Color: "green", ID: "C965804"},
	{Footprint: "0603", Color: "blue", ID: "C965807"},
	{Footprint: "0603", Color: "white", ID: "C965808"},
	{Footprint: "0603", Color: "yellow", ID: "C72038"},

	{Footprint: "0805", Color: "red", ID: "C965812"},
	{Footprint: "0805", Color: "green", ID: "C965815"},
	{Footprint: "0805", Color: "blue", ID: "C965817"},
	{Footprint: "0805", Color: "white", ID: "C34499"},
	{Footprint: "0805", Color: "yellow", ID: "C84261"},
}

func partKey(footprint, value string) string {
	return footprint + "|" + value
}

var resistorIndex = func() map[string]ResistorPart {
	m := make(map[string]ResistorPart)
	for _, p := range resistorParts {
		m[partKey(p.Footprint, p.Value)] = p
	}
	return m
}()

var ledIndex = func() map[string]LEDPart {
	m := make(map[string]LEDPart)
	for _, p := range ledParts {
		m[partKey(p.Footprint, p.Color)] = p
	}
	return m
}()

func LookupResistor(footprint, value string) (ResistorPart, error) {
	p, ok := resistorIndex[partKey(footprint, value)]
	if !ok {
		return ResistorPart{}, fmt.Errorf("%w: resistor %s %s", ErrNotFound, footprint, value)
	}

	return p, nil
}

func LookupLED(footprint, color string) (LEDPart, error) {
	p, ok := ledIndex[partKey(footprint, color)]
	if !ok {
		return LEDPart{}, fmt.Errorf("%w: led %s %s", ErrNotFound, footprint, color)
	}

	return p, nil
}

func ResistorsByFootprint(footprint string) []ResistorPart {
	parts := []ResistorPart{}
	for _, p := range resistorParts {
		if p.Footprint == footprint {
			parts = append(parts, p)
		}
	}

	return parts
}

func LEDsByFootprint(footprint string) []LEDPart {
	parts := []LEDPart{}
	for _, p := range ledParts {
		if p.Footprint == footprint {
			parts = append(parts, p)
		}
	}

	return parts
}

func LEDsByColor(color string) []LEDPart {
	parts := []LEDPart{}
	for _, p := range ledParts {
		if p.Color == color {
			parts = append(parts, p)
		}
	}

	return parts
}

// EnsureCoverage lists every footprint|value and footprint|color key without a part.
func EnsureCoverage() []string {
	missing := []string{}
	for _, f := range PartFootprints {
		for _, v := range ResistorValues {
			if _, ok := resistorIndex[partKey(f, v)]; !ok {
				missing = append(missing, "resistor "+partKey(f, v))
			}
		}
		for _, c := range LEDColors {
			if _, ok := ledIndex[partKey(f, c)]; !ok {
				missing = append(missing, "led "+partKey(f, c))
			}
		}
	}
	sort.Strings(missing)

	return missing
}

// FixedPartFor returns the fixed part for a footprint and a resistance in
// ohms, matching the table value within the duplicate tolerance.
func FixedPartFor(footprint string, ohms float64) (ResistorPart, bool) {
	for _, p := range ResistorsByFootprint(footprint) {
		value, err := ParseResistance(p.Value)
		if err != nil {
			continue
		}
		if relativeDiff(value, ohms) < duplicateTolerance {
			return p, true
		}
	}

	return ResistorPart{}, false
}
