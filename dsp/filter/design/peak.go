package design

import (
	"math"

	"github.com/cwbudde/algo-eartrain/dsp/core"
	"github.com/cwbudde/algo-eartrain/dsp/filter/biquad"
)

// PeakOctave designs a peaking/notching EQ section from a center frequency
// (Hz), signed gain (dB) and bandwidth in octaves. Positive gain yields a
// band boost, negative gain a notch-style cut; the magnitude response is
// otherwise identical.
//
// The center frequency is clamped into [1, sampleRate/2-1] and the
// bandwidth to at least minBandwidthOct, so the designer accepts any
// input. Degenerate parameter combinations (center pinned at DC or
// Nyquist, vanishing a0 for extreme cuts) fall back to an identity
// section rather than producing an unstable filter.
//
// The result is returned as a one-section cascade so it can be handed
// directly to zerophase.Apply alongside higher-order designs.
func PeakOctave(centerHz, gainDB, bandwidthOct, sampleRate float64) []biquad.Coefficients {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return []biquad.Coefficients{biquad.Identity()}
	}

	if math.IsNaN(centerHz) {
		centerHz = 1
	}
	centerHz = core.Clamp(centerHz, 1, sampleRate/2-1)
	if bandwidthOct < minBandwidthOct || math.IsNaN(bandwidthOct) {
		bandwidthOct = minBandwidthOct
	}

	a := math.Pow(10, gainDB/40)
	w0 := 2 * math.Pi * centerHz / sampleRate
	cosW0 := math.Cos(w0)
	sinW0 := math.Sin(w0)

	alpha := peakAlpha(w0, sinW0, bandwidthOct)
	if math.IsNaN(alpha) {
		alpha = minAlpha
	}
	alpha = core.Clamp(alpha, minAlpha, maxAlpha)

	return []biquad.Coefficients{peakFromAlpha(cosW0, alpha, a)}
}

// peakAlpha derives the cookbook bandwidth parameter from an octave
// bandwidth. When sin(w0) vanishes (center at DC or Nyquist after
// clamping) the exact form is indeterminate; a Q-based approximation is
// used, forced to minAlpha if it collapses as well.
func peakAlpha(w0, sinW0, bandwidthOct float64) float64 {
	halfLn2BW := math.Ln2 / 2 * bandwidthOct

	if math.Abs(sinW0) < sinW0Floor {
		q := 1 / (2 * math.Sinh(halfLn2BW))
		alpha := sinW0 / (2 * q)
		if math.Abs(alpha) < sinW0Floor {
			return minAlpha
		}

		return alpha
	}

	return sinW0 * math.Sinh(halfLn2BW*w0/sinW0)
}
