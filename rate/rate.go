// Package rate converts free-running times and frequencies into the closest
// note value at a given tempo, for tempo-synced display.
package rate

import "math"

// DefaultBPM is used when a Converter has no usable tempo.
const DefaultBPM = 120

type (
	// Rate is a note value, from eight bars down to a 1/64 triplet.
	Rate int

	// Converter finds the closest Rate at the tempo BPM. The zero Converter
	// uses DefaultBPM.
	Converter struct {
		BPM float64
	}
)

const (
	EightBars Rate = iota
	SixBars
	FourBars
	ThreeBars
	TwoBars
	Bar
	BarTriplet
	Half
	HalfTriplet
	Quarter
	QuarterTriplet
	Eighth
	EighthTriplet
	Sixteenth
	SixteenthTriplet
	ThirtySecond
	ThirtySecondTriplet
	SixtyFourth
	SixtyFourthTriplet
	numRates
)

var rateBeats = [numRates]float64{
	32, 24, 16, 12, 8, 4, 8.0 / 3,
	2, 4.0 / 3, 1, 2.0 / 3, 0.5, 1.0 / 3,
	0.25, 1.0 / 6, 0.125, 1.0 / 12, 1.0 / 16, 1.0 / 24,
}

var rateNames = [numRates]string{
	"8 bars", "6 bars", "4 bars", "3 bars", "2 bars", "1 bar", "1 bar triplet",
	"1/2", "1/2 triplet", "1/4", "1/4 triplet", "1/8", "1/8 triplet",
	"1/16", "1/16 triplet", "1/32", "1/32 triplet", "1/64", "1/64 triplet",
}

// Rates lists all the note values from the longest to the shortest.
func Rates() []Rate {
	ret := make([]Rate, numRates)
	for i := range ret {
		ret[i] = Rate(i)
	}
	return ret
}

func (r Rate) String() string {
	if r < 0 || r >= numRates {
		return "???"
	}
	return rateNames[r]
}

// Beats is the length of the note value in quarter notes.
func (r Rate) Beats() float64 {
	if r < 0 || r >= numRates {
		return 0
	}
	return rateBeats[r]
}

// Time returns the length of the note value in seconds at bpm.
func (r Rate) Time(bpm float64) float64 {
	return r.Beats() * 60 / bpm
}

// Frequency returns the rate in Hz at which a note value repeats at bpm.
func (r Rate) Frequency(bpm float64) float64 {
	return 1 / r.Time(bpm)
}

func (c Converter) bpm() float64 {
	if c.BPM <= 0 || math.IsNaN(c.BPM) || math.IsInf(c.BPM, 0) {
		return DefaultBPM
	}
	return c.BPM
}

// ClosestToFrequency returns the note value whose repetition frequency is
// closest to hz.
func (c Converter) ClosestToFrequency(hz float64) Rate {
	bpm := c.bpm()
	return closest(func(r Rate) float64 { return math.Abs(r.Frequency(bpm) - hz) })
}

// ClosestToTime returns the note value whose length is closest to sec.
func (c Converter) ClosestToTime(sec float64) Rate {
	bpm := c.bpm()
	return closest(func(r Rate) float64 { return math.Abs(r.Time(bpm) - sec) })
}

// FromFrequency returns the label of the note value closest to hz.
func (c Converter) FromFrequency(hz float64) string {
	return c.ClosestToFrequency(hz).String()
}

// FromTime returns the label of the note value closest to sec seconds.
func (c Converter) FromTime(sec float64) string {
	return c.ClosestToTime(sec).String()
}

func closest(distance func(Rate) float64) Rate {
	best := EightBars
	smallest := math.Inf(1)
	for r := EightBars; r < numRates; r++ {
		if d := distance(r); d < smallest {
			smallest = d
			best = r
		}
	}
	return best
}
