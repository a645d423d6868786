package synthone

import "math"

type (
	// LFOSource selects which LFOs modulate a destination.
	LFOSource int

	// FilterMode is the response of the main filter.
	FilterMode int
)

const (
	LFOOff LFOSource = iota
	LFO1
	LFO2
	LFOBoth
)

const (
	LowPass FilterMode = iota
	BandPass
	HighPass
)

// UnknownLabel is shown for values that do not decode to any variant.
const UnknownLabel = "Unknown"

var lfoSourceNames = [...]string{"OFF", "LFO1", "LFO2", "BOTH"}
var filterModeNames = [...]string{"Low Pass", "Band Pass", "High Pass"}

// truncIndex truncates v toward zero and checks it is a valid index for an
// array of length n.
func truncIndex(v float64, n int) (int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	t := math.Trunc(v)
	if t < 0 || t >= float64(n) {
		return 0, false
	}
	return int(t), true
}

// DecodeLFOSource converts a raw parameter value into an LFOSource. The value
// is truncated toward zero; anything outside 0..3 is reported as not ok.
func DecodeLFOSource(v float64) (LFOSource, bool) {
	i, ok := truncIndex(v, len(lfoSourceNames))
	return LFOSource(i), ok
}

// DecodeFilterMode converts a raw parameter value into a FilterMode, with the
// same truncation rule as DecodeLFOSource.
func DecodeFilterMode(v float64) (FilterMode, bool) {
	i, ok := truncIndex(v, len(filterModeNames))
	return FilterMode(i), ok
}

func (s LFOSource) String() string {
	if s < 0 || int(s) >= len(lfoSourceNames) {
		return UnknownLabel
	}
	return lfoSourceNames[s]
}

func (f FilterMode) String() string {
	if f < 0 || int(f) >= len(filterModeNames) {
		return UnknownLabel
	}
	return filterModeNames[f]
}

// LFOSourceLabel decodes v and returns the name of the source, or
// UnknownLabel.
func LFOSourceLabel(v float64) string {
	if s, ok := DecodeLFOSource(v); ok {
		return s.String()
	}
	return UnknownLabel
}

// FilterModeLabel decodes v and returns the name of the filter type, or
// UnknownLabel.
func FilterModeLabel(v float64) string {
	if f, ok := DecodeFilterMode(v); ok {
		return f.String()
	}
	return UnknownLabel
}
