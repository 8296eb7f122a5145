// Package window provides the analysis windows used by dsp/spectrum.
package window

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeBlackman
)

// Generate returns length coefficients of the requested window in
// symmetric form. Non-positive lengths return nil; unknown types fall
// back to rectangular.
func Generate(t Type, length int) []float64 {
	if length <= 0 {
		return nil
	}

	coeffs := make([]float64, length)
	if length == 1 {
		coeffs[0] = 1
		return coeffs
	}

	for n := range coeffs {
		x := float64(n) / float64(length-1)
		coeffs[n] = evalWindow(t, x)
	}

	return coeffs
}

// ApplyCoefficientsInPlace multiplies samples by previously generated
// coefficients. Both slices must have the same length.
func ApplyCoefficientsInPlace(samples, coeffs []float64) {
	vecmath.MulBlockInPlace(samples, coeffs)
}

// CoherentGain returns the mean coefficient value, used to undo the
// window's amplitude loss after an FFT.
func CoherentGain(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}

	sum := 0.0
	for _, w := range coeffs {
		sum += w
	}

	return sum / float64(len(coeffs))
}

func evalWindow(t Type, x float64) float64 {
	switch t {
	case TypeHann:
		return 0.5 - 0.5*math.Cos(2*math.Pi*x)
	case TypeBlackman:
		return 0.42 - 0.5*math.Cos(2*math.Pi*x) + 0.08*math.Cos(4*math.Pi*x)
	default:
		return 1
	}
}
