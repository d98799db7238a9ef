package lib

// Two-resistor divider, R1 from the input to the output node and R2 from
// the output node to ground. Every function returns 0 when a resistor is
// not positive.

func Vout(vin, r1, r2 float64) float64 {
	if r1 <= 0 || r2 <= 0 {
		return 0
	}

	return vin * r2 / (r1 + r2)
}

func Current(vin, r1, r2 float64) float64 {
	if r1 <= 0 || r2 <= 0 {
		return 0
	}

	return vin / (r1 + r2)
}

func PowerR1(vin, r1, r2 float64) float64 {
	i := Current(vin, r1, r2)

	return i * i * r1
}

func PowerR2(vin, r1, r2 float64) float64 {
	i := Current(vin, r1, r2)

	return i * i * r2
}

// TheveninResistance is the impedance seen looking back into the output node.
func TheveninResistance(r1, r2 float64) float64 {
	if r1 <= 0 || r2 <= 0 {
		return 0
	}

	return r1 * r2 / (r1 + r2)
}

type Divider struct {
	Vin        float64
	R1         float64
	R2         float64
	Vout       float64
	Current    float64
	PowerR1    float64
	PowerR2    float64
	Rth        float64
	PowerTotal float64
}

// Evaluate computes every derived quantity of the divider at once.
func Evaluate(vin, r1, r2 float64) Divider {
	d := Divider{
		Vin:     vin,
		R1:      r1,
		R2:      r2,
		Vout:    Vout(vin, r1, r2),
		Current: Current(vin, r1, r2),
		PowerR1: PowerR1(vin, r1, r2),
		PowerR2: PowerR2(vin, r1, r2),
		Rth:     TheveninResistance(r1, r2),
	}
	d.PowerTotal = d.PowerR1 + d.PowerR2

	return d
}
