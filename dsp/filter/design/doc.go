// Package design provides digital filter coefficient design.
//
// The second-order designers follow the RBJ audio-EQ-cookbook formulas and
// return [biquad.Coefficients] with a0 normalized to 1. Butterworth
// low/highpass cascades live in the pass subpackage; [PeakOctave] designs
// the peaking/notching EQ used for boost and cut at a labeled center
// frequency.
//
// Designers never fail: out-of-range parameters are clamped into a safe
// range and numerical degeneracies fall back to an identity (passthrough)
// section.
package design
