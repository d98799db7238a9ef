package lib

import "math"

const (
	MilToMM = 0.0254
	MMToMil = 39.37007874015748

	// IPC-2221 external layer constant
	ipcExternalK = 0.048
)

// ViaCurrent returns the maximum current in amps through a plated via with
// the given drill diameter and plating thickness (mm) at a temperature rise
// of deltaT °C, treating the barrel as an external conductor.
func ViaCurrent(drillMM, platingMM, deltaT float64) float64 {
	d := drillMM * MMToMil
	t := platingMM * MMToMil

	// barrel cross section in sq mil
	area := math.Pi * (d + t) * t
	if area <= 0 {
		return 0
	}

	return ipcExternalK * math.Pow(deltaT, 0.44) * math.Pow(area, 0.725)
}

// ViaDiameterFromCurrent inverts ViaCurrent, returning the drill diameter in mm.
func ViaDiameterFromCurrent(current, platingMM, deltaT float64) float64 {
	if current <= 0 {
		return 0
	}

	t := platingMM * MMToMil
	if t <= 0 {
		return 0
	}

	area := math.Pow(current/(ipcExternalK*math.Pow(deltaT, 0.44)), 1/0.725)
	if area <= 0 || math.IsInf(area, 0) || math.IsNaN(area) {
		return 0
	}

	d := area/(math.Pi*t) - t
	if d <= 0 {
		return 0
	}

	return d * MilToMM
}
