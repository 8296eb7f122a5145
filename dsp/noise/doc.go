// Package noise generates calibrated pink-noise buffers.
//
// The generator uses the Voss-McCartney multi-source scheme: N stochastic
// sources are updated at rates halving from one source to the next, and
// their running sum approximates a 1/f power spectral density without
// FFT-domain synthesis. Output buffers are DC-removed and peak-normalized
// to a target amplitude.
package noise
