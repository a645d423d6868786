package synthone

import (
	"fmt"
)

// Parameter identifies one independently adjustable control of the synth
// engine. The set is closed: every valid Parameter is listed in
// parameterNames.
type Parameter int

const (
	Index1 Parameter = iota
	Index2
	MorphBalance
	Morph1SemitoneOffset
	Morph2SemitoneOffset
	Morph1Volume
	Morph2Volume
	SubVolume
	SubOctaveDown
	SubIsSquare
	FMVolume
	FMAmount
	NoiseVolume
	LFO1Index
	LFO1Amplitude
	LFO1Rate
	Cutoff
	Resonance
	FilterMix
	FilterADSRMix
	IsMono
	Glide
	FilterAttackDuration
	FilterDecayDuration
	FilterSustainLevel
	FilterReleaseDuration
	AttackDuration
	DecayDuration
	SustainLevel
	ReleaseDuration
	Morph2Detuning
	DetuningMultiplier
	MasterVolume
	BitCrushDepth
	BitCrushSampleRate
	AutoPanAmount
	AutoPanFrequency
	ReverbOn
	ReverbFeedback
	ReverbHighPass
	ReverbMix
	DelayOn
	DelayFeedback
	DelayTime
	DelayMix
	LFO2Index
	LFO2Amplitude
	LFO2Rate
	CutoffLFO
	ResonanceLFO
	OscMixLFO
	ReverbMixLFO
	DecayLFO
	NoiseLFO
	FMLFO
	DetuneLFO
	FilterEnvLFO
	PitchLFO
	BitcrushLFO
	TremoloLFO
	ArpDirection
	ArpInterval
	ArpIsOn
	ArpOctave
	ArpRate
	ArpIsSequencer
	ArpTotalSteps
	FilterType
	PhaserMix
	PhaserRate
	PhaserFeedback
	PhaserNotchWidth
	MonoIsLegato
	Widen
	CompressorMasterRatio
	CompressorReverbInputRatio
	CompressorReverbWetRatio
	CompressorMasterThreshold
	CompressorReverbInputThreshold
	CompressorReverbWetThreshold
	CompressorMasterAttack
	CompressorReverbInputAttack
	CompressorReverbWetAttack
	CompressorMasterRelease
	CompressorReverbInputRelease
	CompressorReverbWetRelease
	CompressorMasterMakeupGain
	CompressorReverbInputMakeupGain
	CompressorReverbWetMakeupGain
	DelayInputCutoffTrackingRatio
	DelayInputResonance
	TempoSyncToArpRate
	Pitchbend
	PitchbendMinSemitones
	PitchbendMaxSemitones
	FrequencyA4
	PortamentoHalfTime
	OscBandlimitEnable
	Transpose
	ADSRPitchTracking
	numParameters
)

// parameterNames are the canonical names of the parameters, as used in preset
// files and MIDI maps. Indexed by Parameter.
// NoParameter is the invalid Parameter given with status messages that are not
// caused by a parameter change, e.g. preset names.
const NoParameter Parameter = -1

var parameterNames = [numParameters]string{
	"index1", "index2", "morphBalance", "morph1SemitoneOffset",
	"morph2SemitoneOffset", "morph1Volume", "morph2Volume", "subVolume",
	"subOctaveDown", "subIsSquare", "fmVolume", "fmAmount", "noiseVolume",
	"lfo1Index", "lfo1Amplitude", "lfo1Rate", "cutoff", "resonance",
	"filterMix", "filterADSRMix", "isMono", "glide", "filterAttackDuration",
	"filterDecayDuration", "filterSustainLevel", "filterReleaseDuration",
	"attackDuration", "decayDuration", "sustainLevel", "releaseDuration",
	"morph2Detuning", "detuningMultiplier", "masterVolume", "bitCrushDepth",
	"bitCrushSampleRate", "autoPanAmount", "autoPanFrequency", "reverbOn",
	"reverbFeedback", "reverbHighPass", "reverbMix", "delayOn",
	"delayFeedback", "delayTime", "delayMix", "lfo2Index", "lfo2Amplitude",
	"lfo2Rate", "cutoffLFO", "resonanceLFO", "oscMixLFO", "reverbMixLFO",
	"decayLFO", "noiseLFO", "fmLFO", "detuneLFO", "filterEnvLFO", "pitchLFO",
	"bitcrushLFO", "tremoloLFO", "arpDirection", "arpInterval", "arpIsOn",
	"arpOctave", "arpRate", "arpIsSequencer", "arpTotalSteps", "filterType",
	"phaserMix", "phaserRate", "phaserFeedback", "phaserNotchWidth",
	"monoIsLegato", "widen", "compressorMasterRatio",
	"compressorReverbInputRatio", "compressorReverbWetRatio",
	"compressorMasterThreshold", "compressorReverbInputThreshold",
	"compressorReverbWetThreshold", "compressorMasterAttack",
	"compressorReverbInputAttack", "compressorReverbWetAttack",
	"compressorMasterRelease", "compressorReverbInputRelease",
	"compressorReverbWetRelease", "compressorMasterMakeupGain",
	"compressorReverbInputMakeupGain", "compressorReverbWetMakeupGain",
	"delayInputCutoffTrackingRatio", "delayInputResonance",
	"tempoSyncToArpRate", "pitchbend", "pitchbendMinSemitones",
	"pitchbendMaxSemitones", "frequencyA4", "portamentoHalfTime",
	"oscBandlimitEnable", "transpose", "adsrPitchTracking",
}

var parameterLookup = make(map[string]Parameter, numParameters)

func init() {
	for i, name := range parameterNames {
		parameterLookup[name] = Parameter(i)
	}
}

// NumParameters is the size of the closed parameter set.
const NumParameters = int(numParameters)

// Parameters returns all the parameters, in declaration order.
func Parameters() []Parameter {
	ret := make([]Parameter, numParameters)
	for i := range ret {
		ret[i] = Parameter(i)
	}
	return ret
}

// Valid reports whether p belongs to the parameter set.
func (p Parameter) Valid() bool {
	return p >= 0 && p < numParameters
}

func (p Parameter) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Parameter(%d)", int(p))
	}
	return parameterNames[p]
}

// ParseParameter finds a parameter by its canonical name, e.g. "cutoff" or
// "lfo2Rate".
func ParseParameter(name string) (Parameter, error) {
	if p, ok := parameterLookup[name]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("unknown parameter %q", name)
}

// MarshalText implements encoding.TextMarshaler so that parameters can be used
// as keys and values in YAML documents.
func (p Parameter) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid parameter %d", int(p))
	}
	return []byte(parameterNames[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Parameter) UnmarshalText(text []byte) error {
	v, err := ParseParameter(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
