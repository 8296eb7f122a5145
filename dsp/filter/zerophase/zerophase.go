// Package zerophase applies second-order-section cascades to finite
// buffers with zero phase distortion.
//
// Filtering runs forward and then backward over the buffer, so the phase
// response cancels and the effective magnitude response is the square of
// the cascade's. The buffer edges are extended with an odd-symmetric
// reflection before filtering to suppress startup transients; the
// extension is trimmed from the result, which always has the input's
// length.
package zerophase

import (
	"github.com/cwbudde/algo-eartrain/dsp/filter/biquad"
	"github.com/cwbudde/algo-eartrain/dsp/filter/design/pass"
)

// DefaultOrder is the Butterworth order used when the caller passes
// order <= 0.
const DefaultOrder = 5

// Lowpass applies a zero-phase Butterworth lowpass to data and returns a
// new buffer of the same length. The cutoff is clamped into the
// designable range; order <= 0 selects DefaultOrder.
func Lowpass(data []float64, cutoffHz float64, order int, sampleRate float64) []float64 {
	if order <= 0 {
		order = DefaultOrder
	}

	return Apply(data, pass.ButterworthLP(cutoffHz, order, sampleRate))
}

// Highpass applies a zero-phase Butterworth highpass to data and returns
// a new buffer of the same length. The cutoff is clamped into the
// designable range; order <= 0 selects DefaultOrder.
func Highpass(data []float64, cutoffHz float64, order int, sampleRate float64) []float64 {
	if order <= 0 {
		order = DefaultOrder
	}

	return Apply(data, pass.ButterworthHP(cutoffHz, order, sampleRate))
}

// Apply runs the cascade forward and backward over data and returns a new
// buffer of the same length. An empty or nil cascade returns a copy of
// the input (explicit no-op, not an error).
func Apply(data []float64, sections []biquad.Coefficients) []float64 {
	out := make([]float64, len(data))
	copy(out, data)

	if len(sections) == 0 || len(data) == 0 {
		return out
	}

	padLen := edgePadLen(len(sections), len(data))
	ext := oddExtend(data, padLen)

	chain := biquad.NewChain(sections)
	chain.ProcessBlock(ext)

	reverse(ext)
	chain.Reset()
	chain.ProcessBlock(ext)
	reverse(ext)

	copy(out, ext[padLen:padLen+len(data)])
	return out
}

// edgePadLen returns the reflection length: three times the cascade's
// effective tap count, limited by the buffer itself.
func edgePadLen(numSections, dataLen int) int {
	padLen := 3 * (2*numSections + 1)
	if padLen > dataLen-1 {
		padLen = dataLen - 1
	}
	if padLen < 0 {
		padLen = 0
	}

	return padLen
}

// oddExtend returns data with padLen odd-symmetric samples mirrored onto
// each end: the extension continues the signal's slope through the edge
// sample instead of introducing a step.
func oddExtend(data []float64, padLen int) []float64 {
	n := len(data)
	ext := make([]float64, n+2*padLen)

	first := data[0]
	last := data[n-1]
	for i := 0; i < padLen; i++ {
		ext[i] = 2*first - data[padLen-i]
		ext[padLen+n+i] = 2*last - data[n-2-i]
	}
	copy(ext[padLen:], data)

	return ext
}

func reverse(data []float64) {
	for i, j := 0, len(data)-1; i < j; i, j = i+1, j-1 {
		data[i], data[j] = data[j], data[i]
	}
}
