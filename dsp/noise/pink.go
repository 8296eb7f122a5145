package noise

import (
	"math"
	"math/bits"
	"math/rand"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-eartrain/dsp/core"
)

const (
	// DefaultSources is the Voss-McCartney source count.
	DefaultSources = 16

	// normalizationFloor is the peak below which a generated buffer is
	// considered degenerate and returned unnormalized.
	normalizationFloor = 1e-9

	// maxDitherFraction caps the optional dither at 10% of the
	// per-source amplitude.
	maxDitherFraction = 0.1
)

// Generator creates deterministic pink-noise buffers from a shared
// configuration. Each Generate call draws from a fresh random source
// seeded with the generator's seed, so repeated calls with the same seed
// produce identical buffers and concurrent generators with independent
// seeds are safe.
type Generator struct {
	cfg     core.ProcessorConfig
	seed    int64
	sources int
	dither  float64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithSources sets the Voss-McCartney source count. Values < 1 are ignored.
func WithSources(n int) Option {
	return func(g *Generator) {
		if n >= 1 {
			g.sources = n
		}
	}
}

// WithDither adds independent uniform dither to each output sample,
// expressed as a fraction of the per-source amplitude. The fraction is
// clamped into [0, 0.1]; the default is 0 (off). A small dither improves
// spectral flatness at low source counts.
func WithDither(fraction float64) Option {
	return func(g *Generator) {
		g.dither = core.Clamp(fraction, 0, maxDitherFraction)
	}
}

// NewGenerator creates a pink-noise generator with default options.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg:     core.ApplyProcessorOptions(opts...),
		seed:    1,
		sources: DefaultSources,
	}
}

// NewGeneratorWithOptions creates a generator with noise-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := NewGenerator(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the current seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// SetSeed replaces the seed used by subsequent Generate calls.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
}

// Pink generates floor(durationSeconds * sampleRate) samples of pink
// noise, DC-removed and peak-normalized to amplitude. A non-positive
// duration yields an empty buffer. If the raw buffer's peak falls below
// the normalization floor the buffer is returned as-is; detecting such
// near-silent output is the caller's concern.
func (g *Generator) Pink(amplitude, durationSeconds float64) []float64 {
	samples := int(durationSeconds * g.cfg.SampleRate)
	return g.PinkSamples(amplitude, samples)
}

// PinkSamples generates exactly the requested number of pink-noise
// samples. A non-positive count yields an empty buffer.
func (g *Generator) PinkSamples(amplitude float64, samples int) []float64 {
	if samples <= 0 {
		return []float64{}
	}

	rng := rand.New(rand.NewSource(g.seed))
	out := make([]float64, samples)

	n := g.sources
	sourceAmp := 1.0 / float64(n)
	sources := make([]float64, n)
	acc := 0.0

	for i := range out {
		// Lowest set bit of i+1 selects the source to refresh, halving
		// each source's update rate relative to the previous one.
		k := bits.TrailingZeros64(uint64(i+1)) % n

		acc -= sources[k]
		sources[k] = (rng.Float64()*2 - 1) * sourceAmp
		acc += sources[k]

		out[i] = acc
		if g.dither > 0 {
			out[i] += (rng.Float64()*2 - 1) * sourceAmp * g.dither
		}
	}

	removeDC(out)
	normalize(out, amplitude)

	return out
}

// Pink is a convenience wrapper generating a single buffer with the
// default source count and seed 1.
func Pink(durationSeconds, sampleRate, amplitude float64) []float64 {
	g := NewGenerator(core.WithSampleRate(sampleRate))
	return g.Pink(amplitude, durationSeconds)
}

func removeDC(data []float64) {
	sum := 0.0
	for _, v := range data {
		sum += v
	}

	mean := sum / float64(len(data))
	for i := range data {
		data[i] -= mean
	}
}

func normalize(data []float64, amplitude float64) {
	peak := core.MaxAbs(data)
	if peak < normalizationFloor || math.IsNaN(peak) {
		return
	}

	vecmath.ScaleBlock(data, data, amplitude/peak)
}
