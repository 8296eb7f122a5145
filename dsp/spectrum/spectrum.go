// Package spectrum provides offline spectral analysis of finite buffers.
//
// The Analyzer windows the input, runs a zero-padded FFT and integrates
// power over frequency bands. It backs the quiz's filter-detail readout
// and the end-to-end filter verification tests.
package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-eartrain/dsp/core"
	"github.com/cwbudde/algo-eartrain/dsp/window"
)

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	re := make([]float64, len(in))
	im := make([]float64, len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	out := make([]float64, len(in))
	vecmath.Magnitude(out, re, im)
	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	re := make([]float64, len(in))
	im := make([]float64, len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	out := make([]float64, len(in))
	vecmath.Power(out, re, im)
	return out
}

// Analyzer computes band power over finite buffers.
type Analyzer struct {
	cfg     core.ProcessorConfig
	winType window.Type
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithWindow selects the analysis window. Default is Hann.
func WithWindow(t window.Type) Option {
	return func(a *Analyzer) {
		a.winType = t
	}
}

// NewAnalyzer creates an analyzer for the configured sample rate.
func NewAnalyzer(coreOpts []core.ProcessorOption, opts ...Option) *Analyzer {
	a := &Analyzer{
		cfg:     core.ApplyProcessorOptions(coreOpts...),
		winType: window.TypeHann,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// BandPower integrates spectral power over [loHz, hiHz).
func (a *Analyzer) BandPower(data []float64, loHz, hiHz float64) (float64, error) {
	bins, fftSize, err := a.powerBins(data)
	if err != nil {
		return 0, err
	}

	binHz := a.cfg.SampleRate / float64(fftSize)
	sum := 0.0
	for k, p := range bins {
		f := float64(k) * binHz
		if f >= loHz && f < hiHz {
			sum += p
		}
	}

	return sum, nil
}

// BandLevelDB returns the band power of data relative to reference, in
// dB (10*log10 convention). Both buffers are analyzed over [loHz, hiHz).
func (a *Analyzer) BandLevelDB(data, reference []float64, loHz, hiHz float64) (float64, error) {
	p, err := a.BandPower(data, loHz, hiHz)
	if err != nil {
		return 0, err
	}

	ref, err := a.BandPower(reference, loHz, hiHz)
	if err != nil {
		return 0, err
	}

	if ref <= 0 {
		return 0, fmt.Errorf("spectrum: reference band [%g, %g) Hz has no power", loHz, hiHz)
	}

	return core.LinearPowerToDB(p / ref), nil
}

// powerBins returns the non-negative-frequency power spectrum of the
// windowed, zero-padded input along with the FFT size used.
func (a *Analyzer) powerBins(data []float64) ([]float64, int, error) {
	if len(data) == 0 {
		return nil, 0, fmt.Errorf("spectrum: empty input")
	}
	if a.cfg.SampleRate <= 0 {
		return nil, 0, fmt.Errorf("spectrum: sample rate must be > 0: %f", a.cfg.SampleRate)
	}

	fftSize := nextPow2(len(data))

	windowed := make([]float64, len(data))
	copy(windowed, data)
	coeffs := window.Generate(a.winType, len(data))
	window.ApplyCoefficientsInPlace(windowed, coeffs)

	inData := make([]complex128, fftSize)
	for i, v := range windowed {
		inData[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, 0, fmt.Errorf("spectrum: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return nil, 0, fmt.Errorf("spectrum: fft forward: %w", err)
	}

	return Power(out[:fftSize/2+1]), fftSize, nil
}

func nextPow2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}

	return size
}
