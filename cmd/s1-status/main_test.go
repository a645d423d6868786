package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vsariola/synthone/header"
	"github.com/vsariola/synthone/status"
)

func TestSplitCamel(t *testing.T) {
	tests := map[string]string{
		"cutoff":        "cutoff",
		"lfo2Rate":      "lfo2 rate",
		"filterADSRMix": "filter adsr mix",
		"fmLFO":         "fm lfo",
		"reverbMixLFO":  "reverb mix lfo",
	}
	for in, expected := range tests {
		if got := splitCamel(in); got != expected {
			t.Errorf("splitCamel(%q) = %q, expected %q", in, got, expected)
		}
	}
}

func TestScriptAndArgs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yml")
	doc := "- {param: reverbOn, value: 1}\n- {action: tap}\n- {param: subVolume, value: 0.5}\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("could not write script: %v", err)
	}
	script, err := loadScript(path)
	if err != nil {
		t.Fatalf("loadScript failed: %v", err)
	}
	var label status.Label
	h := header.New(nil, &label, nil)
	bank, err := openBank("", "Init")
	if err != nil {
		t.Fatalf("openBank failed: %v", err)
	}
	if _, err := header.NewNavigator(h, bank, nil); err != nil {
		t.Fatalf("NewNavigator failed: %v", err)
	}
	if err := script.Run(h); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got, expected := string(label.Text), "Sub Mix: 50%"; got != expected {
		t.Errorf("got %q, expected %q", got, expected)
	}
	if err := applyArg(h, "delayOn=1"); err != nil {
		t.Fatalf("applyArg failed: %v", err)
	}
	if got, expected := string(label.Text), "Delay On"; got != expected {
		t.Errorf("got %q, expected %q", got, expected)
	}
	for _, bad := range []string{"delayOn", "wobble=1", "delayOn=x"} {
		if err := applyArg(h, bad); err == nil {
			t.Errorf("applyArg(%q) should fail", bad)
		}
	}
	if err := (Script{{}}).Run(h); err == nil {
		t.Error("an empty step should fail")
	}
}
