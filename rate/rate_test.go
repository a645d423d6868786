package rate_test

import (
	"math"
	"testing"

	"github.com/vsariola/synthone/rate"
)

func TestFromTime(t *testing.T) {
	c := rate.Converter{BPM: 120}
	tests := []struct {
		sec      float64
		expected string
	}{
		{0.5, "1/4"},
		{0.25, "1/8"},
		{0.26, "1/8"},
		{2, "1 bar"},
		{1000, "8 bars"},
		{0, "1/64 triplet"},
	}
	for _, tt := range tests {
		if got := c.FromTime(tt.sec); got != tt.expected {
			t.Errorf("FromTime(%v) = %q, expected %q", tt.sec, got, tt.expected)
		}
	}
}

func TestFromFrequency(t *testing.T) {
	c := rate.Converter{BPM: 120}
	tests := []struct {
		hz       float64
		expected string
	}{
		{2, "1/4"},
		{4, "1/8"},
		{0.5, "1 bar"},
		{0, "8 bars"},
	}
	for _, tt := range tests {
		if got := c.FromFrequency(tt.hz); got != tt.expected {
			t.Errorf("FromFrequency(%v) = %q, expected %q", tt.hz, got, tt.expected)
		}
	}
}

func TestZeroConverterUsesDefaultTempo(t *testing.T) {
	var zero rate.Converter
	def := rate.Converter{BPM: rate.DefaultBPM}
	for _, sec := range []float64{0.1, 0.5, 1.5, 7} {
		if a, b := zero.FromTime(sec), def.FromTime(sec); a != b {
			t.Errorf("FromTime(%v): zero converter gave %q, default tempo gave %q", sec, a, b)
		}
	}
	if got := (rate.Converter{BPM: math.NaN()}).FromTime(0.5); got != "1/4" {
		t.Errorf("NaN tempo: got %q, expected %q", got, "1/4")
	}
}

func TestTimeAndFrequencyAreInverse(t *testing.T) {
	for _, r := range rate.Rates() {
		if p := r.Time(90) * r.Frequency(90); math.Abs(p-1) > 1e-9 {
			t.Errorf("%v: time*frequency = %v, expected 1", r, p)
		}
	}
}
