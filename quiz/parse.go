package quiz

import (
	"strconv"
	"strings"
)

// ParseKind interprets a typed filter-kind guess. It accepts full names
// in any case and the common abbreviations lp/low, hp/high, n, bp/band.
func ParseKind(input string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "lp", "low", "lowpass":
		return Lowpass, true
	case "hp", "high", "highpass":
		return Highpass, true
	case "n", "notch":
		return Notch, true
	case "bp", "band", "bandpass":
		return Bandpass, true
	default:
		return 0, false
	}
}

// ParseCenterFrequency interprets a typed center-frequency guess. Only
// catalog members are valid answers.
func ParseCenterFrequency(input string, catalog Catalog) (int, bool) {
	freq, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || !catalog.Contains(freq) {
		return 0, false
	}

	return freq, true
}
