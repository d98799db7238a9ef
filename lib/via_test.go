package lib

import (
	"math"
	"testing"
)

func TestViaCurrent(t *testing.T) {
	got := ViaCurrent(0.3, 0.018, 10)
	if math.Abs(got-1.4757) > 1e-3 {
		t.Errorf("Expected about 1.476A, got %v", got)
	}

	if bigger := ViaCurrent(0.6, 0.018, 10); bigger <= got {
		t.Errorf("Expected a larger drill to carry more current: %v <= %v", bigger, got)
	}

	if ViaCurrent(0.3, 0, 10) != 0 {
		t.Error("Expected no current without plating")
	}
}

func TestViaDiameterRoundTrip(t *testing.T) {
	for _, drill := range []float64{0.2, 0.3, 0.45, 1.0} {
		current := ViaCurrent(drill, 0.018, 20)

		got := ViaDiameterFromCurrent(current, 0.018, 20)
		if math.Abs(got-drill) > 1e-9 {
			t.Errorf("drill %v: expected round trip, got %v", drill, got)
		}
	}
}

func TestViaDiameterInvalid(t *testing.T) {
	if ViaDiameterFromCurrent(0, 0.018, 10) != 0 {
		t.Error("Expected 0 for zero current")
	}

	if ViaDiameterFromCurrent(1, 0, 10) != 0 {
		t.Error("Expected 0 without plating")
	}

	// a tiny current needs less barrel than the plating itself provides
	if ViaDiameterFromCurrent(1e-6, 0.018, 10) != 0 {
		t.Error("Expected 0 when no positive drill exists")
	}
}
