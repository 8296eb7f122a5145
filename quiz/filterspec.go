package quiz

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-eartrain/dsp/filter/design"
	"github.com/cwbudde/algo-eartrain/dsp/filter/zerophase"
)

// Kind enumerates the filter types a question can apply.
type Kind int

const (
	Lowpass Kind = iota
	Highpass
	Notch
	Bandpass
)

// Kinds lists all filter kinds in presentation order.
func Kinds() []Kind {
	return []Kind{Lowpass, Highpass, Notch, Bandpass}
}

// String returns the presentation name of the kind.
func (k Kind) String() string {
	switch k {
	case Lowpass:
		return "Lowpass"
	case Highpass:
		return "Highpass"
	case Notch:
		return "Notch"
	case Bandpass:
		return "Bandpass"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// UsesCenter reports whether the kind is parameterized by a catalog
// center frequency (and therefore asks for a frequency guess).
func (k Kind) UsesCenter() bool {
	return k == Notch || k == Bandpass
}

// FilterSpec fully describes the filter applied in one question.
// Lowpass/Highpass use CutoffHz and Order; Notch/Bandpass use CenterHz,
// GainDB and BandwidthOct. Notch carries a negative gain, Bandpass a
// positive one; the two share the same peaking-EQ design.
type FilterSpec struct {
	Kind         Kind
	CutoffHz     float64
	Order        int
	CenterHz     float64
	GainDB       float64
	BandwidthOct float64
}

// NewLowpassSpec returns a lowpass spec with the default order.
func NewLowpassSpec(cutoffHz float64) FilterSpec {
	return FilterSpec{Kind: Lowpass, CutoffHz: cutoffHz, Order: DefaultOrder}
}

// NewHighpassSpec returns a highpass spec with the default order.
func NewHighpassSpec(cutoffHz float64) FilterSpec {
	return FilterSpec{Kind: Highpass, CutoffHz: cutoffHz, Order: DefaultOrder}
}

// NewNotchSpec returns a notch (cut) spec; the gain sign is forced
// negative.
func NewNotchSpec(centerHz, gainDB, bandwidthOct float64) FilterSpec {
	return FilterSpec{
		Kind:         Notch,
		CenterHz:     centerHz,
		GainDB:       -math.Abs(gainDB),
		BandwidthOct: bandwidthOct,
	}
}

// NewBandpassSpec returns a band-boost spec; the gain sign is forced
// positive.
func NewBandpassSpec(centerHz, gainDB, bandwidthOct float64) FilterSpec {
	return FilterSpec{
		Kind:         Bandpass,
		CenterHz:     centerHz,
		GainDB:       math.Abs(gainDB),
		BandwidthOct: bandwidthOct,
	}
}

// RandomSpec draws a uniformly random filter for one question: one of the
// four kinds, with notch/bandpass centers drawn from the catalog and all
// other parameters at their defaults.
func RandomSpec(rng *rand.Rand, catalog Catalog) FilterSpec {
	kinds := Kinds()
	kind := kinds[rng.Intn(len(kinds))]

	switch kind {
	case Lowpass:
		return NewLowpassSpec(DefaultLowpassHz)
	case Highpass:
		return NewHighpassSpec(DefaultHighpassHz)
	default:
		center := float64(catalog[rng.Intn(len(catalog))].FreqHz)
		if kind == Notch {
			return NewNotchSpec(center, DefaultGainDB, DefaultBandwidthOct)
		}
		return NewBandpassSpec(center, DefaultGainDB, DefaultBandwidthOct)
	}
}

// Apply runs the described filter over data and returns a new buffer of
// the same length. Filtering is zero-phase throughout.
func (s FilterSpec) Apply(data []float64, sampleRate float64) []float64 {
	switch s.Kind {
	case Lowpass:
		return zerophase.Lowpass(data, s.CutoffHz, s.Order, sampleRate)
	case Highpass:
		return zerophase.Highpass(data, s.CutoffHz, s.Order, sampleRate)
	case Notch, Bandpass:
		sos := design.PeakOctave(s.CenterHz, s.GainDB, s.BandwidthOct, sampleRate)
		return zerophase.Apply(data, sos)
	default:
		out := make([]float64, len(data))
		copy(out, data)
		return out
	}
}

// Details returns the reveal text describing the filter parameters.
func (s FilterSpec) Details(catalog Catalog) string {
	switch s.Kind {
	case Lowpass, Highpass:
		return fmt.Sprintf("Cutoff: %.0f Hz (Butterworth Order %d)", s.CutoffHz, s.Order)
	default:
		label, _ := catalog.Label(int(s.CenterHz))
		return fmt.Sprintf("Center: %.0f Hz (%s), BW: %.1f Oct, Gain: %+.1f dB",
			s.CenterHz, label, s.BandwidthOct, s.GainDB)
	}
}

// Band returns the frequency range the filter acts on, used for
// spectral verification: the octave-bandwidth band around the center for
// notch/bandpass, and the stop region beyond the cutoff for the pass
// kinds.
func (s FilterSpec) Band(sampleRate float64) (loHz, hiHz float64) {
	switch s.Kind {
	case Lowpass:
		return s.CutoffHz * 2, sampleRate / 2
	case Highpass:
		return 0, s.CutoffHz / 2
	default:
		half := math.Pow(2, s.BandwidthOct/2)
		return s.CenterHz / half, s.CenterHz * half
	}
}
