package display

import (
	"math"
	"strconv"
	"strings"
)

// Kind tells how a numeric value is rendered.
type Kind int

const (
	// Decimal renders with two decimals, e.g. "0.25".
	Decimal Kind = iota
	// Percentage renders a 0..1 fraction as 0..100%, e.g. "50%".
	Percentage
	// Integer truncates toward zero, e.g. "-3".
	Integer
	// Raw renders the shortest exact representation with at least one
	// decimal, e.g. "120.0" or "92.25".
	Raw
	// FrequencyRate renders a frequency as a tempo-synced note value.
	FrequencyRate
	// TimeRate renders a time as a tempo-synced note value.
	TimeRate
)

func decimalString(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func percentageString(v float64) string {
	p := math.Round(v * 100)
	if p == 0 {
		p = 0 // no "-0%"
	}
	return strconv.FormatFloat(p, 'f', 0, 64) + "%"
}

func integerString(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	t := math.Trunc(v)
	if t == 0 {
		t = 0
	}
	return strconv.FormatFloat(t, 'f', 0, 64)
}

func rawString(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsNaN(v) || math.IsInf(v, 0) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

func (k Kind) render(v float64, conv RateConverter) string {
	switch k {
	case Percentage:
		return percentageString(v)
	case Integer:
		return integerString(v)
	case Raw:
		return rawString(v)
	case FrequencyRate:
		return conv.FromFrequency(v)
	case TimeRate:
		return conv.FromTime(v)
	}
	return decimalString(v)
}
