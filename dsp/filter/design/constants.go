package design

import "math"

const defaultQ = 1 / math.Sqrt2

// Degeneracy guards shared by all designers. These are fixed module-wide
// so every call site agrees on the same boundaries.
const (
	// MinNormalizedCutoff / MaxNormalizedCutoff bound the Nyquist-relative
	// cutoff of the pass designers.
	MinNormalizedCutoff = 0.001
	MaxNormalizedCutoff = 0.999

	// minAlpha / maxAlpha bound the peaking-EQ bandwidth parameter.
	// Values outside produce unstable or inverted sections.
	minAlpha = 1e-6
	maxAlpha = 0.99

	// minBandwidthOct is the narrowest accepted octave bandwidth.
	minBandwidthOct = 0.01

	// sinW0Floor marks a center frequency pinned at DC or Nyquist.
	sinW0Floor = 1e-9

	// a0Floor guards the coefficient normalization divide.
	a0Floor = 1e-9
)
