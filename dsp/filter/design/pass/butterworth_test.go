package pass

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-eartrain/dsp/filter/biquad"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestButterworth_SectionCount(t *testing.T) {
	sr := 44100.0
	for order := 1; order <= 8; order++ {
		want := (order + 1) / 2
		if got := ButterworthLP(1000, order, sr); len(got) != want {
			t.Fatalf("LP order %d: sections=%d, want %d", order, len(got), want)
		}
		if got := ButterworthHP(1000, order, sr); len(got) != want {
			t.Fatalf("HP order %d: sections=%d, want %d", order, len(got), want)
		}
	}
}

func TestButterworth_OddOrderHasFirstOrderTail(t *testing.T) {
	sr := 44100.0
	for _, order := range []int{1, 3, 5, 7} {
		sections := ButterworthLP(1000, order, sr)
		last := sections[len(sections)-1]
		if last.B2 != 0 || last.A2 != 0 {
			t.Fatalf("order %d: tail section not first-order: %+v", order, last)
		}
	}
	for _, order := range []int{2, 4, 6, 8} {
		sections := ButterworthLP(1000, order, sr)
		for i, s := range sections {
			if s.B2 == 0 && s.A2 == 0 {
				t.Fatalf("order %d: unexpected first-order section at %d", order, i)
			}
		}
	}
}

func TestButterworth_Minus3dBAtCutoff(t *testing.T) {
	sr := 44100.0
	cutoff := 2000.0
	for _, order := range []int{1, 2, 3, 4, 5, 6, 8} {
		lp := biquad.NewChain(ButterworthLP(cutoff, order, sr))
		if db := lp.MagnitudeDB(cutoff, sr); !almostEqual(db, -3.0103, 0.05) {
			t.Fatalf("LP order %d: %v dB at cutoff, want ~-3", order, db)
		}

		hp := biquad.NewChain(ButterworthHP(cutoff, order, sr))
		if db := hp.MagnitudeDB(cutoff, sr); !almostEqual(db, -3.0103, 0.05) {
			t.Fatalf("HP order %d: %v dB at cutoff, want ~-3", order, db)
		}
	}
}

func TestButterworthLP_HigherOrderSteeperRolloff(t *testing.T) {
	sr := 44100.0
	cutoff := 2000.0
	probe := 8000.0

	prev := 0.0
	for _, order := range []int{1, 2, 4, 6, 8} {
		chain := biquad.NewChain(ButterworthLP(cutoff, order, sr))
		atten := -chain.MagnitudeDB(probe, sr)
		if atten <= prev {
			t.Fatalf("order %d: attenuation %v dB not steeper than %v dB", order, atten, prev)
		}
		prev = atten
	}
}

func TestButterworth_PassbandFlat(t *testing.T) {
	sr := 44100.0
	lp := biquad.NewChain(ButterworthLP(5000, 5, sr))
	if db := lp.MagnitudeDB(100, sr); !almostEqual(db, 0, 0.05) {
		t.Fatalf("LP passband at 100 Hz: %v dB, want ~0", db)
	}

	hp := biquad.NewChain(ButterworthHP(150, 5, sr))
	if db := hp.MagnitudeDB(5000, sr); !almostEqual(db, 0, 0.05) {
		t.Fatalf("HP passband at 5 kHz: %v dB, want ~0", db)
	}
}

func TestButterworth_AllSectionsStable(t *testing.T) {
	for _, sr := range []float64{44100, 48000, 96000} {
		for _, cutoff := range []float64{10, 150, 5000, sr * 0.49} {
			for order := 1; order <= 8; order++ {
				for i, s := range ButterworthLP(cutoff, order, sr) {
					if !s.Stable() {
						t.Fatalf("LP sr=%v cutoff=%v order=%d: unstable section %d: %+v", sr, cutoff, order, i, s)
					}
				}
				for i, s := range ButterworthHP(cutoff, order, sr) {
					if !s.Stable() {
						t.Fatalf("HP sr=%v cutoff=%v order=%d: unstable section %d: %+v", sr, cutoff, order, i, s)
					}
				}
			}
		}
	}
}

func TestButterworth_CutoffClamping(t *testing.T) {
	sr := 44100.0

	// Out-of-range cutoffs clamp instead of degenerating: still stable,
	// still the right section count.
	for _, cutoff := range []float64{0, -100, 1e-9, sr / 2, sr * 10, math.NaN()} {
		sections := ButterworthLP(cutoff, 5, sr)
		if len(sections) != 3 {
			t.Fatalf("cutoff %v: sections=%d, want 3", cutoff, len(sections))
		}
		for i, s := range sections {
			for _, v := range []float64{s.B0, s.B1, s.B2, s.A1, s.A2} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("cutoff %v: non-finite coefficient in section %d: %+v", cutoff, i, s)
				}
			}
			if !s.Stable() {
				t.Fatalf("cutoff %v: unstable section %d: %+v", cutoff, i, s)
			}
		}
	}
}

func TestButterworth_InvalidOrder(t *testing.T) {
	if got := ButterworthLP(1000, 0, 44100); got != nil {
		t.Fatal("expected nil for order 0")
	}
	if got := ButterworthHP(1000, -1, 44100); got != nil {
		t.Fatal("expected nil for negative order")
	}
}

func TestButterworthQ_KnownValues(t *testing.T) {
	// Order 2, index 0: Q = 1/(2*sin(pi/4)) = 1/sqrt(2).
	if got := butterworthQ(2, 0); !almostEqual(got, 1/math.Sqrt2, 1e-12) {
		t.Fatalf("order=2 index=0: Q=%v, want 1/sqrt2", got)
	}

	// Order 4 pole angles pi/8 and 3pi/8: Q = {1.3066, 0.5412}.
	if got := butterworthQ(4, 0); !almostEqual(got, 1.306563, 1e-5) {
		t.Fatalf("order=4 index=0: Q=%v", got)
	}
	if got := butterworthQ(4, 1); !almostEqual(got, 0.541196, 1e-5) {
		t.Fatalf("order=4 index=1: Q=%v", got)
	}
}
