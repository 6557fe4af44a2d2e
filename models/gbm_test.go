package models

import (
	"math"
	"testing"
)

func TestGBMTerminalPriceZeroVol(t *testing.T) {
	p := Parameters{S: 100, K: 100, R: 0.05, V: 0, T: 1}
	g := NewGBM(p)

	want := p.S * math.Exp(p.R*p.T)
	for _, z := range []float64{-3, -1, 0, 1, 3} {
		if got := g.TerminalPrice(z); math.Abs(got-want) > 1e-12 {
			t.Errorf("TerminalPrice(%g) = %f, want %f", z, got, want)
		}
	}
}

func TestGBMPayoffsNonNegative(t *testing.T) {
	g := NewGBM(Parameters{S: 100, K: 100, R: 0.05, V: 0.2, T: 1})

	for z := -6.0; z <= 6.0; z += 0.25 {
		call, put := g.Payoffs(z)
		if call < 0 || put < 0 {
			t.Fatalf("Payoffs(%g) = (%f, %f), payoffs must be non-negative", z, call, put)
		}
	}
}

// For any terminal price, call - put == sT - K exactly; both payoffs must
// come from the same draw for this identity to hold per path.
func TestGBMPayoffsSameTerminalPrice(t *testing.T) {
	p := Parameters{S: 100, K: 105, R: 0.03, V: 0.3, T: 0.5}
	g := NewGBM(p)

	for z := -4.0; z <= 4.0; z += 0.5 {
		call, put := g.Payoffs(z)
		sT := g.TerminalPrice(z)
		if diff := (call - put) - (sT - p.K); math.Abs(diff) > 1e-9 {
			t.Fatalf("Payoffs(%g): call-put differs from sT-K by %g", z, diff)
		}
	}
}

func TestGBMDriftAdjustment(t *testing.T) {
	p := Parameters{S: 100, K: 100, R: 0.05, V: 0.2, T: 2}
	g := NewGBM(p)

	// z = 0 isolates the drift-adjusted spot.
	want := p.S * math.Exp(p.T*(p.R-0.5*p.V*p.V))
	if got := g.TerminalPrice(0); math.Abs(got-want) > 1e-12 {
		t.Errorf("TerminalPrice(0) = %f, want %f", got, want)
	}
}
