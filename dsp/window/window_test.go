package window

import (
	"math"
	"testing"
)

func TestGenerate_Lengths(t *testing.T) {
	if got := Generate(TypeHann, 0); got != nil {
		t.Fatalf("length 0: got %v, want nil", got)
	}
	if got := Generate(TypeHann, -3); got != nil {
		t.Fatalf("negative length: got %v, want nil", got)
	}
	if got := Generate(TypeHann, 1); len(got) != 1 || got[0] != 1 {
		t.Fatalf("length 1: got %v, want [1]", got)
	}
	if got := Generate(TypeHann, 64); len(got) != 64 {
		t.Fatalf("length 64: got %d coefficients", len(got))
	}
}

func TestHann_Shape(t *testing.T) {
	w := Generate(TypeHann, 65)

	if math.Abs(w[0]) > 1e-12 || math.Abs(w[64]) > 1e-12 {
		t.Fatalf("endpoints %v, %v, want 0", w[0], w[64])
	}
	if math.Abs(w[32]-1) > 1e-12 {
		t.Fatalf("midpoint %v, want 1", w[32])
	}
	for i := 0; i < 32; i++ {
		if math.Abs(w[i]-w[64-i]) > 1e-12 {
			t.Fatalf("asymmetry at %d: %v vs %v", i, w[i], w[64-i])
		}
	}
}

func TestRectangular_AllOnes(t *testing.T) {
	for _, v := range Generate(TypeRectangular, 16) {
		if v != 1 {
			t.Fatalf("rectangular coefficient %v, want 1", v)
		}
	}
}

func TestBlackman_Endpoints(t *testing.T) {
	w := Generate(TypeBlackman, 33)
	// Classic Blackman endpoints are 0.42-0.5+0.08 = 0.
	if math.Abs(w[0]) > 1e-12 || math.Abs(w[32]) > 1e-12 {
		t.Fatalf("endpoints %v, %v, want 0", w[0], w[32])
	}
}

func TestCoherentGain(t *testing.T) {
	if got := CoherentGain(nil); got != 0 {
		t.Fatalf("empty: %v, want 0", got)
	}
	if got := CoherentGain(Generate(TypeRectangular, 32)); got != 1 {
		t.Fatalf("rectangular gain %v, want 1", got)
	}
	// Hann coherent gain approaches 0.5 for long windows.
	if got := CoherentGain(Generate(TypeHann, 4096)); math.Abs(got-0.5) > 1e-3 {
		t.Fatalf("hann gain %v, want ~0.5", got)
	}
}

func TestApplyCoefficientsInPlace(t *testing.T) {
	samples := []float64{1, 1, 1, 1}
	coeffs := []float64{0.5, 1, 1, 0.5}
	ApplyCoefficientsInPlace(samples, coeffs)

	want := []float64{0.5, 1, 1, 0.5}
	for i := range want {
		if samples[i] != want[i] {
			t.Fatalf("index %d: %v, want %v", i, samples[i], want[i])
		}
	}
}
