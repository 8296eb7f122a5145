package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Fatalf("Clamp(5,0,1) = %v, want 1", got)
	}
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Fatalf("Clamp(-5,0,1) = %v, want 0", got)
	}
	if got := Clamp(0.5, 0, 1); got != 0.5 {
		t.Fatalf("Clamp(0.5,0,1) = %v, want 0.5", got)
	}
	// Swapped bounds are reordered.
	if got := Clamp(5, 1, 0); got != 1 {
		t.Fatalf("Clamp(5,1,0) = %v, want 1", got)
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1, 1+1e-13, 1e-12) {
		t.Fatal("expected values within eps to compare equal")
	}
	if NearlyEqual(1, 1.1, 1e-12) {
		t.Fatal("expected distant values to compare unequal")
	}
	if !NearlyEqual(0, 0, 0) {
		t.Fatal("expected zero eps to fall back to default")
	}
}

func TestMaxAbs(t *testing.T) {
	if got := MaxAbs(nil); got != 0 {
		t.Fatalf("MaxAbs(nil) = %v, want 0", got)
	}
	if got := MaxAbs([]float64{0.1, -0.7, 0.3}); got != 0.7 {
		t.Fatalf("MaxAbs = %v, want 0.7", got)
	}
}

func TestDBConversions(t *testing.T) {
	if got := DBToLinear(20); math.Abs(got-10) > 1e-12 {
		t.Fatalf("DBToLinear(20) = %v, want 10", got)
	}
	if got := LinearToDB(10); math.Abs(got-20) > 1e-12 {
		t.Fatalf("LinearToDB(10) = %v, want 20", got)
	}
	if got := LinearPowerToDB(100); math.Abs(got-20) > 1e-12 {
		t.Fatalf("LinearPowerToDB(100) = %v, want 20", got)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("LinearToDB(0) should be -Inf")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("LinearToDB(-1) should be NaN")
	}
}

func TestProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions()
	if cfg.SampleRate != 44100 {
		t.Fatalf("default sample rate = %v, want 44100", cfg.SampleRate)
	}

	cfg = ApplyProcessorOptions(WithSampleRate(48000))
	if cfg.SampleRate != 48000 {
		t.Fatalf("sample rate = %v, want 48000", cfg.SampleRate)
	}

	// Invalid values are ignored.
	cfg = ApplyProcessorOptions(WithSampleRate(-1), nil)
	if cfg.SampleRate != 44100 {
		t.Fatalf("sample rate = %v, want default 44100", cfg.SampleRate)
	}
}
