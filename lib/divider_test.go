package lib

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestDividerFormulas(t *testing.T) {
	vin, r1, r2 := 1.5, 150000.0, 100000.0

	if v := Vout(vin, r1, r2); !almostEqual(v, 0.6, 1e-15) {
		t.Errorf("Expected vout 0.6, got %v", v)
	}

	if rth := TheveninResistance(r1, r2); !almostEqual(rth, 60000, 1e-9) {
		t.Errorf("Expected rth 60000, got %v", rth)
	}

	if i := Current(vin, r1, r2); !almostEqual(i, 6e-6, 1e-18) {
		t.Errorf("Expected current 6e-6, got %v", i)
	}

	if p := PowerR1(vin, r1, r2); !almostEqual(p, 6e-6*6e-6*r1, 1e-20) {
		t.Errorf("Unexpected power R1 %v", p)
	}

	if p := PowerR2(vin, r1, r2); !almostEqual(p, 6e-6*6e-6*r2, 1e-20) {
		t.Errorf("Unexpected power R2 %v", p)
	}
}

func TestDividerFormulasNonPositive(t *testing.T) {
	cases := [][2]float64{{0, 1000}, {1000, 0}, {-1, 1000}, {1000, -5}}

	for _, c := range cases {
		r1, r2 := c[0], c[1]
		if Vout(5, r1, r2) != 0 || Current(5, r1, r2) != 0 ||
			PowerR1(5, r1, r2) != 0 || PowerR2(5, r1, r2) != 0 ||
			TheveninResistance(r1, r2) != 0 {
			t.Errorf("Expected zeros for r1=%g r2=%g", r1, r2)
		}
	}
}

func TestEvaluate(t *testing.T) {
	d := Evaluate(5, 10000, 10000)

	if d.Vout != 2.5 {
		t.Errorf("Expected 2.5V, got %v", d.Vout)
	}
	if d.Rth != 5000 {
		t.Errorf("Expected 5000Ω, got %v", d.Rth)
	}
	if !almostEqual(d.PowerTotal, 5*5/20000.0, 1e-12) {
		t.Errorf("Expected total power %v, got %v", 5*5/20000.0, d.PowerTotal)
	}
	if d.PowerTotal != d.PowerR1+d.PowerR2 {
		t.Errorf("Total power %v is not the sum of %v and %v", d.PowerTotal, d.PowerR1, d.PowerR2)
	}
}
