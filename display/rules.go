package display

import "github.com/vsariola/synthone"

func decimal(label string, unit string) Field {
	return Field{Label: label, Param: Self, Kind: Decimal, Unit: unit}
}

func percentage(label string) Field {
	return Field{Label: label, Param: Self, Kind: Percentage}
}

func integer(label string, unit string) Field {
	return Field{Label: label, Param: Self, Kind: Integer, Unit: unit}
}

// peer renders the current value of p from the context.
func peer(label string, p synthone.Parameter) Field {
	return Field{Label: label, Param: p, Kind: Decimal}
}

// envelope renders all four stages of an ADSR envelope, each followed by a
// space.
func envelope(a, d, s, r synthone.Parameter) Composite {
	return Composite{Fields: []Field{
		{Label: "A", Param: a, Kind: Decimal},
		{Label: "D", Param: d, Kind: Decimal},
		{Label: "S", Param: s, Kind: Percentage},
		{Label: "R", Param: r, Kind: Decimal},
	}, Sep: " ", End: " "}
}

// synced renders the note value and the raw value when tempo sync is on, and
// only the raw value otherwise.
func synced(label string, kind Kind, unit string) Conditional {
	return Conditional{
		Synced: Composite{Fields: []Field{
			{Label: label, Param: Self, Kind: kind},
			{Param: Self, Kind: Decimal, Unit: unit},
		}, Sep: ", "},
		Free: decimal(label, unit),
	}
}

var ampEnvelope = envelope(synthone.AttackDuration, synthone.DecayDuration, synthone.SustainLevel, synthone.ReleaseDuration)
var filterEnvelope = envelope(synthone.FilterAttackDuration, synthone.FilterDecayDuration, synthone.FilterSustainLevel, synthone.FilterReleaseDuration)

var cutoffResonance = Composite{Fields: []Field{
	{Label: "Cutoff", Param: synthone.Cutoff, Kind: Decimal, Unit: "Hz"},
	{Label: "Resonance", Param: synthone.Resonance, Kind: Decimal},
}, Sep: ", "}

var lfo1 = Conditional{
	Synced: Composite{Fields: []Field{
		{Label: "LFO1 Rate", Param: synthone.LFO1Rate, Kind: FrequencyRate},
		{Label: "LFO1 Amp", Param: synthone.LFO1Amplitude, Kind: Percentage},
	}, Sep: ", "},
	Free: Composite{Fields: []Field{
		{Label: "LFO1 Rate", Param: synthone.LFO1Rate, Kind: Decimal, Unit: "Hz"},
		{Label: "LFO1 Amp", Param: synthone.LFO1Amplitude, Kind: Percentage},
	}, Sep: ", "},
}

var defaultRules = map[synthone.Parameter]Rule{
	synthone.Index1:               decimal("Osc1 Morph", ""),
	synthone.Index2:               decimal("Osc2 Morph", ""),
	synthone.Morph1SemitoneOffset: integer("Osc1", "semitones"),
	synthone.Morph2SemitoneOffset: integer("Osc2", "semitones"),
	synthone.Morph2Detuning:       decimal("DCO2 Detune", "Hz"),
	synthone.MorphBalance:         decimal("Osc Mix", ""),
	synthone.Morph1Volume:         percentage("Osc1 Vol"),
	synthone.Morph2Volume:         percentage("Osc2 Vol"),
	synthone.Glide:                decimal("Glide", ""),
	synthone.Cutoff:               cutoffResonance,
	synthone.Resonance:            cutoffResonance,
	synthone.SubVolume:            percentage("Sub Mix"),
	synthone.FMVolume:             percentage("FM Amp"),
	synthone.FMAmount:             decimal("FM Mod", ""),
	synthone.NoiseVolume:          Field{Label: "Noise Mix", Param: Self, Kind: Percentage, Scale: 4},
	synthone.MasterVolume:         percentage("Master Vol"),

	synthone.AttackDuration:  ampEnvelope,
	synthone.DecayDuration:   ampEnvelope,
	synthone.SustainLevel:    ampEnvelope,
	synthone.ReleaseDuration: ampEnvelope,

	synthone.FilterAttackDuration:  filterEnvelope,
	synthone.FilterDecayDuration:   filterEnvelope,
	synthone.FilterSustainLevel:    filterEnvelope,
	synthone.FilterReleaseDuration: filterEnvelope,
	synthone.FilterADSRMix:         percentage("Filter Envelope"),

	synthone.BitCrushDepth:      decimal("Bitcrush Depth", ""),
	synthone.BitCrushSampleRate: integer("Downsample Rate", "Hz"),
	synthone.AutoPanAmount:      percentage("AutoPan Amp"),
	synthone.AutoPanFrequency:   synced("AutoPan Rate", FrequencyRate, "Hz"),

	synthone.ReverbOn:       Toggle{On: "Reverb On", Off: "Reverb Off"},
	synthone.ReverbFeedback: percentage("Reverb Size"),
	synthone.ReverbHighPass: decimal("Reverb Low-cut", "Hz"),
	synthone.ReverbMix:      percentage("Reverb Mix"),
	synthone.DelayOn:        Toggle{On: "Delay On", Off: "Delay Off"},
	synthone.DelayFeedback:  percentage("Delay Taps"),
	synthone.DelayTime:      synced("Delay Time", TimeRate, "s"),
	synthone.DelayMix:       percentage("Delay Mix"),

	synthone.LFO1Rate:      lfo1,
	synthone.LFO1Amplitude: lfo1,
	synthone.LFO2Rate:      synced("LFO 2 Rate", FrequencyRate, "Hz"),
	synthone.LFO2Amplitude: percentage("LFO 2 Amp"),

	synthone.CutoffLFO:    LFORoute{Label: "Cutoff"},
	synthone.ResonanceLFO: LFORoute{Label: "Resonance"},
	synthone.OscMixLFO:    LFORoute{Label: "Osc Mix"},
	synthone.ReverbMixLFO: LFORoute{Label: "Reverb Mix"},
	synthone.DecayLFO:     LFORoute{Label: "Decay"},
	synthone.NoiseLFO:     LFORoute{Label: "Noise"},
	synthone.FMLFO:        LFORoute{Label: "FM"},
	synthone.DetuneLFO:    LFORoute{Label: "Detune"},
	synthone.FilterEnvLFO: LFORoute{Label: "Filter Env"},
	synthone.PitchLFO:     LFORoute{Label: "Pitch"},
	synthone.BitcrushLFO:  LFORoute{Label: "Bitcrush"},
	synthone.TremoloLFO:   LFORoute{Label: "Tremolo"},

	synthone.FilterType: Choice{Label: "Filter Type", Decode: synthone.FilterModeLabel},

	synthone.PhaserMix:        decimal("Phaser Mix", ""),
	synthone.PhaserRate:       decimal("Phaser Rate", ""),
	synthone.PhaserFeedback:   decimal("Phaser Feedback", ""),
	synthone.PhaserNotchWidth: decimal("Phaser Notch Width", ""),

	synthone.ArpInterval:    integer("Arpeggiator Interval", ""),
	synthone.ArpIsOn:        Toggle{On: "Arp/Sequencer On", Off: "Arpeggiator/Sequencer Off"},
	synthone.ArpIsSequencer: Toggle{On: "Sequencer Mode", Off: "Arpeggiator Mode"},
	synthone.ArpRate:        Field{Label: "Arp/Sequencer Tempo", Param: Self, Kind: Raw, Unit: "BPM"},
	synthone.Widen:          decimal("Widen", ""),

	synthone.DelayInputResonance:           peer("Delay Input Rez", synthone.DelayInputResonance),
	synthone.DelayInputCutoffTrackingRatio: peer("Delay Input Cutoff Tracking Ratio", synthone.DelayInputCutoffTrackingRatio),
	synthone.FrequencyA4:                   peer("Master Frequency at A4", synthone.FrequencyA4),
	synthone.PortamentoHalfTime:            peer("Portamento Half-time", synthone.PortamentoHalfTime),
}

// the compressor parameters are visible on the dev panel only and are shown
// with their raw names
func init() {
	for _, p := range []synthone.Parameter{
		synthone.CompressorMasterRatio, synthone.CompressorReverbInputRatio, synthone.CompressorReverbWetRatio,
		synthone.CompressorMasterThreshold, synthone.CompressorReverbInputThreshold, synthone.CompressorReverbWetThreshold,
		synthone.CompressorMasterAttack, synthone.CompressorReverbInputAttack, synthone.CompressorReverbWetAttack,
		synthone.CompressorMasterRelease, synthone.CompressorReverbInputRelease, synthone.CompressorReverbWetRelease,
		synthone.CompressorMasterMakeupGain, synthone.CompressorReverbInputMakeupGain, synthone.CompressorReverbWetMakeupGain,
	} {
		defaultRules[p] = decimal(p.String(), "")
	}
}

// Rules returns a copy of the default rule table.
func Rules() map[synthone.Parameter]Rule {
	ret := make(map[synthone.Parameter]Rule, len(defaultRules))
	for k, v := range defaultRules {
		ret[k] = v
	}
	return ret
}
