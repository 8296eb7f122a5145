package quiz

// Trial defaults, matching the calibration the trainer ships with.
const (
	DefaultSampleRate      = 44100.0
	DefaultDuration        = 3.0
	DefaultAmplitude       = 0.4
	DefaultQuestions       = 10
	DefaultLowpassHz       = 5000.0
	DefaultHighpassHz      = 150.0
	DefaultOrder           = 5
	DefaultGainDB          = 9.0
	DefaultBandwidthOct    = 1.6
)

// Band pairs a labeled center frequency with a human-readable band name.
type Band struct {
	FreqHz int
	Label  string
}

// Catalog is an ordered set of labeled center frequencies. It is owned by
// the quiz layer; the DSP core only ever sees numeric parameters.
type Catalog []Band

// DefaultCatalog returns the built-in band catalog in ascending order.
func DefaultCatalog() Catalog {
	return Catalog{
		{FreqHz: 500, Label: "Low"},
		{FreqHz: 600, Label: "Low-Mid"},
		{FreqHz: 1500, Label: "Mid"},
		{FreqHz: 5000, Label: "High-Mid"},
		{FreqHz: 8000, Label: "High"},
		{FreqHz: 10000, Label: "Very High"},
	}
}

// Label returns the band name for freqHz, or ("", false) if the frequency
// is not in the catalog.
func (c Catalog) Label(freqHz int) (string, bool) {
	for _, b := range c {
		if b.FreqHz == freqHz {
			return b.Label, true
		}
	}

	return "", false
}

// Contains reports whether freqHz is a catalog member.
func (c Catalog) Contains(freqHz int) bool {
	_, ok := c.Label(freqHz)
	return ok
}

// Frequencies returns the catalog frequencies in catalog order.
func (c Catalog) Frequencies() []int {
	freqs := make([]int, len(c))
	for i, b := range c {
		freqs[i] = b.FreqHz
	}

	return freqs
}
