package synthone

import "fmt"

// Values is a read-only snapshot of parameter values. Parameters not present
// in the snapshot read as their default value. The zero Values is usable and
// holds only defaults.
type Values struct {
	m map[Parameter]float64
}

// defaults are the engine initial values of the parameters that have one; any
// parameter not listed here defaults to 0.
var defaults = map[Parameter]float64{
	MorphBalance:          0.5,
	Morph1Volume:          0.8,
	Morph2Volume:          0.8,
	Cutoff:                2000,
	Resonance:             0.1,
	FilterMix:             1,
	AttackDuration:        0.1,
	DecayDuration:         0.1,
	SustainLevel:          1,
	ReleaseDuration:       0.1,
	FilterAttackDuration:  0.1,
	FilterDecayDuration:   0.1,
	FilterSustainLevel:    1,
	FilterReleaseDuration: 0.1,
	MasterVolume:          0.5,
	BitCrushSampleRate:    48000,
	LFO1Rate:              0.25,
	LFO2Rate:              0.25,
	AutoPanFrequency:      0.25,
	ReverbFeedback:        0.5,
	ReverbHighPass:        80,
	ReverbMix:             0.5,
	DelayTime:             0.25,
	DelayMix:              0.125,
	DelayFeedback:         0.1,
	ArpRate:               120,
	ArpInterval:           12,
	ArpOctave:             1,
	ArpTotalSteps:         16,
	FrequencyA4:           440,
	PortamentoHalfTime:    0.1,
	PitchbendMinSemitones: -12,
	PitchbendMaxSemitones: 12,
}

// Default returns the initial value of a parameter.
func Default(p Parameter) float64 {
	return defaults[p]
}

// NewValues builds a snapshot from a map; the map is copied.
func NewValues(m map[Parameter]float64) Values {
	c := make(map[Parameter]float64, len(m))
	for k, v := range m {
		c[k] = v
	}
	return Values{m: c}
}

// ParseValues builds a snapshot from a map keyed by parameter names, as found
// in preset files. Unknown names are an error.
func ParseValues(m map[string]float64) (Values, error) {
	c := make(map[Parameter]float64, len(m))
	for name, v := range m {
		p, err := ParseParameter(name)
		if err != nil {
			return Values{}, fmt.Errorf("ParseValues: %w", err)
		}
		c[p] = v
	}
	return Values{m: c}, nil
}

// Value returns the current value of p, or its default.
func (v Values) Value(p Parameter) float64 {
	if x, ok := v.m[p]; ok {
		return x
	}
	return defaults[p]
}

// With returns a copy of the snapshot with p set to value.
func (v Values) With(p Parameter, value float64) Values {
	c := make(map[Parameter]float64, len(v.m)+1)
	for k, x := range v.m {
		c[k] = x
	}
	c[p] = value
	return Values{m: c}
}

// TempoSync reports whether time and rate parameters should be shown as note
// values relative to the arpeggiator tempo.
func (v Values) TempoSync() bool {
	return v.Value(TempoSyncToArpRate) > 0
}

// Tempo is the arpeggiator tempo in BPM.
func (v Values) Tempo() float64 {
	return v.Value(ArpRate)
}

// Map returns the snapshot keyed by parameter names, including only the
// explicitly set parameters.
func (v Values) Map() map[string]float64 {
	ret := make(map[string]float64, len(v.m))
	for k, x := range v.m {
		ret[k.String()] = x
	}
	return ret
}
