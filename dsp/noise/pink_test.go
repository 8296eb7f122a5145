package noise

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-eartrain/dsp/core"
	"github.com/cwbudde/algo-eartrain/dsp/spectrum"
	"github.com/cwbudde/algo-eartrain/internal/testutil"
)

func TestPink_Length(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(44100))

	cases := []struct {
		duration float64
		want     int
	}{
		{3.0, 132300},
		{1.0, 44100},
		{0.5, 22050},
		{0.0001, 4},
	}
	for _, tc := range cases {
		if got := g.Pink(0.4, tc.duration); len(got) != tc.want {
			t.Fatalf("duration %v: length %d, want %d", tc.duration, len(got), tc.want)
		}
	}
}

func TestPink_NonPositiveDurationIsEmpty(t *testing.T) {
	g := NewGenerator()
	for _, d := range []float64{0, -1, -0.001} {
		buf := g.Pink(0.4, d)
		if buf == nil || len(buf) != 0 {
			t.Fatalf("duration %v: got %v, want empty buffer", d, buf)
		}
	}
}

func TestPink_PeakAndMean(t *testing.T) {
	g := NewGeneratorWithOptions(nil, WithSeed(42))
	buf := g.Pink(0.4, 1.0)

	testutil.RequireFinite(t, buf)

	if peak := core.MaxAbs(buf); math.Abs(peak-0.4) > 1e-12 {
		t.Fatalf("peak %v, want 0.4", peak)
	}

	sum := 0.0
	for _, v := range buf {
		sum += v
	}
	// DC removal happens before normalization; the rescaled mean stays
	// tiny relative to the peak.
	if mean := sum / float64(len(buf)); math.Abs(mean) > 1e-9 {
		t.Fatalf("mean %v, want ~0", mean)
	}
}

func TestPink_DeterministicUnderSeed(t *testing.T) {
	g1 := NewGeneratorWithOptions(nil, WithSeed(7))
	g2 := NewGeneratorWithOptions(nil, WithSeed(7))

	a := g1.Pink(0.4, 0.25)
	b := g2.Pink(0.4, 0.25)

	testutil.RequireSliceNearlyEqual(t, a, b, 0)
}

func TestPink_SeedsDiffer(t *testing.T) {
	g := NewGenerator()
	g.SetSeed(1)
	a := g.Pink(0.4, 0.25)
	g.SetSeed(2)
	b := g.Pink(0.4, 0.25)

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different seeds to produce different noise")
	}
}

func TestPink_SpectralTilt(t *testing.T) {
	sr := 44100.0
	g := NewGeneratorWithOptions([]core.ProcessorOption{core.WithSampleRate(sr)}, WithSeed(3))
	buf := g.Pink(0.4, 2.0)

	a := spectrum.NewAnalyzer([]core.ProcessorOption{core.WithSampleRate(sr)})
	low, err := a.BandPower(buf, 20, 1000)
	if err != nil {
		t.Fatalf("BandPower() error = %v", err)
	}
	high, err := a.BandPower(buf, 10000, 20000)
	if err != nil {
		t.Fatalf("BandPower() error = %v", err)
	}

	// 1/f noise carries far more power below 1 kHz than in the top octave.
	if low < 3*high {
		t.Fatalf("low band %v not dominant over high band %v", low, high)
	}
}

func TestPink_SourcesOption(t *testing.T) {
	a := NewGeneratorWithOptions(nil, WithSeed(5), WithSources(8)).Pink(0.4, 0.25)
	b := NewGeneratorWithOptions(nil, WithSeed(5), WithSources(16)).Pink(0.4, 0.25)

	testutil.RequireFinite(t, a)
	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("source count should change the realization")
	}

	// Invalid counts are ignored.
	g := NewGeneratorWithOptions(nil, WithSources(0))
	if g.sources != DefaultSources {
		t.Fatalf("sources = %d, want default %d", g.sources, DefaultSources)
	}
}

func TestPink_DitherStaysNormalized(t *testing.T) {
	g := NewGeneratorWithOptions(nil, WithSeed(9), WithDither(0.1))
	buf := g.Pink(0.4, 0.5)

	testutil.RequireFinite(t, buf)
	if peak := core.MaxAbs(buf); math.Abs(peak-0.4) > 1e-12 {
		t.Fatalf("peak %v, want 0.4", peak)
	}

	// The fraction is clamped to at most 10%.
	g2 := NewGeneratorWithOptions(nil, WithDither(5))
	if g2.dither != 0.1 {
		t.Fatalf("dither = %v, want clamp to 0.1", g2.dither)
	}
}

func TestPink_ConvenienceWrapper(t *testing.T) {
	buf := Pink(3.0, 44100, 0.4)
	if len(buf) != 132300 {
		t.Fatalf("length %d, want 132300", len(buf))
	}
	if peak := core.MaxAbs(buf); math.Abs(peak-0.4) > 1e-12 {
		t.Fatalf("peak %v, want 0.4", peak)
	}
}
