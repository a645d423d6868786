package synthone_test

import (
	"testing"

	"github.com/vsariola/synthone"
)

func TestValuesDefaults(t *testing.T) {
	var v synthone.Values
	if got := v.Value(synthone.FrequencyA4); got != 440 {
		t.Errorf("default frequencyA4 = %v, expected 440", got)
	}
	if got := v.Value(synthone.SubVolume); got != 0 {
		t.Errorf("default subVolume = %v, expected 0", got)
	}
	if v.TempoSync() {
		t.Error("tempo sync should be off by default")
	}
}

func TestValuesWithDoesNotMutate(t *testing.T) {
	a := synthone.NewValues(map[synthone.Parameter]float64{synthone.Cutoff: 1000})
	b := a.With(synthone.Cutoff, 500).With(synthone.TempoSyncToArpRate, 1)
	if got := a.Value(synthone.Cutoff); got != 1000 {
		t.Errorf("original snapshot changed: cutoff = %v, expected 1000", got)
	}
	if got := b.Value(synthone.Cutoff); got != 500 {
		t.Errorf("cutoff = %v, expected 500", got)
	}
	if a.TempoSync() || !b.TempoSync() {
		t.Errorf("TempoSync: got %v and %v, expected false and true", a.TempoSync(), b.TempoSync())
	}
}

func TestParseValues(t *testing.T) {
	v, err := synthone.ParseValues(map[string]float64{"cutoff": 1234, "reverbOn": 1})
	if err != nil {
		t.Fatalf("ParseValues failed: %v", err)
	}
	if got := v.Value(synthone.Cutoff); got != 1234 {
		t.Errorf("cutoff = %v, expected 1234", got)
	}
	m := v.Map()
	if len(m) != 2 || m["reverbOn"] != 1 {
		t.Errorf("Map() = %v, expected two entries with reverbOn = 1", m)
	}
	if _, err := synthone.ParseValues(map[string]float64{"nope": 1}); err == nil {
		t.Error("ParseValues should fail on unknown names")
	}
}
