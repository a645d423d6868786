package header_test

import (
	"bytes"
	"log"
	"math/rand"
	"strings"
	"testing"

	"github.com/vsariola/synthone"
	"github.com/vsariola/synthone/display"
	"github.com/vsariola/synthone/header"
	"github.com/vsariola/synthone/preset"
	"github.com/vsariola/synthone/status"
)

type recordingDelegate struct {
	calls []string
}

func (r *recordingDelegate) DisplayLabelTapped()    { r.calls = append(r.calls, "tapped") }
func (r *recordingDelegate) HomePressed()           { r.calls = append(r.calls, "home") }
func (r *recordingDelegate) PreviousPresetPressed() { r.calls = append(r.calls, "previous") }
func (r *recordingDelegate) NextPresetPressed()     { r.calls = append(r.calls, "next") }
func (r *recordingDelegate) SavePresetPressed()     { r.calls = append(r.calls, "save") }
func (r *recordingDelegate) RandomPresetPressed()   { r.calls = append(r.calls, "random") }
func (r *recordingDelegate) PanicPressed()          { r.calls = append(r.calls, "panic") }
func (r *recordingDelegate) DevPressed()            { r.calls = append(r.calls, "dev") }
func (r *recordingDelegate) AboutPressed()          { r.calls = append(r.calls, "about") }
func (r *recordingDelegate) MorePressed()           { r.calls = append(r.calls, "more") }

func TestUpdateWithoutSynthIsIgnored(t *testing.T) {
	var logs bytes.Buffer
	var label status.Label
	h := header.New(nil, &label, log.New(&logs, "", 0))
	h.UpdateUI(synthone.ReverbOn, 1)
	if label.Updates != 0 {
		t.Errorf("label was updated %v times, expected none", label.Updates)
	}
	if !strings.Contains(logs.String(), "not instantiated") {
		t.Errorf("expected a log line about the missing synth, got %q", logs.String())
	}
}

func TestUpdateShowsMessage(t *testing.T) {
	var label status.Label
	h := header.New(nil, &label, nil)
	h.Attach(synthone.NewValues(map[synthone.Parameter]float64{synthone.Resonance: 0.5}))
	h.UpdateUI(synthone.Cutoff, 1000)
	if got, expected := string(label.Text), "Cutoff: 1000.00 Hz, Resonance: 0.50"; got != expected {
		t.Errorf("got %q, expected %q", got, expected)
	}
	h.UpdateUI(synthone.Resonance, 0.25)
	if got, expected := string(label.Text), "Cutoff: 1000.00 Hz, Resonance: 0.25"; got != expected {
		t.Errorf("got %q, expected %q", got, expected)
	}
	h.UpdateUI(synthone.IsMono, 2)
	if label.Updates != 2 {
		t.Errorf("a parameter without status text changed the label")
	}
	v, ok := h.Values()
	if !ok || v.Value(synthone.IsMono) != 2 {
		t.Errorf("value of a parameter without status text was not recorded")
	}
	h.Detach()
	h.UpdateUI(synthone.ReverbOn, 1)
	if label.Updates != 2 {
		t.Errorf("label was updated after Detach")
	}
}

func TestActionsNeedDelegate(t *testing.T) {
	h := header.New(nil, nil, nil)
	if h.NextPreset().Enabled() {
		t.Fatal("actions should be disabled without a delegate")
	}
	h.NextPreset().Do() // must not panic
	d := &recordingDelegate{}
	h.SetDelegate(d)
	for _, a := range []header.Action{
		h.DisplayTapped(), h.Home(), h.PreviousPreset(), h.NextPreset(), h.SavePreset(),
		h.RandomPreset(), h.Panic(), h.Dev(), h.About(), h.More(),
	} {
		a.Do()
	}
	expected := "tapped home previous next save random panic about more"
	if got := strings.Join(d.calls, " "); got != expected {
		t.Errorf("got calls %q, expected %q", got, expected)
	}
	h.ShowDev = true
	h.Dev().Do()
	if last := d.calls[len(d.calls)-1]; last != "dev" {
		t.Errorf("dev action not delivered when ShowDev is set")
	}
}

func TestMoreLabel(t *testing.T) {
	if header.MoreLabel(true) != "Apps" || header.MoreLabel(false) != "More" {
		t.Errorf("got %q and %q, expected Apps and More", header.MoreLabel(true), header.MoreLabel(false))
	}
}

func TestNavigator(t *testing.T) {
	bank, err := preset.NewBank([]preset.Preset{
		{Name: "one", Values: map[string]float64{"cutoff": 100}},
		{Name: "two", Values: map[string]float64{"cutoff": 200}},
	})
	if err != nil {
		t.Fatalf("NewBank failed: %v", err)
	}
	var label status.Label
	h := header.New(nil, &label, nil)
	if _, err := header.NewNavigator(h, bank, rand.New(rand.NewSource(0))); err != nil {
		t.Fatalf("NewNavigator failed: %v", err)
	}
	if got, expected := string(label.Text), "Preset 1/2: one"; got != expected {
		t.Errorf("got %q, expected %q", got, expected)
	}
	h.NextPreset().Do()
	if got, expected := string(label.Text), "Preset 2/2: two"; got != expected {
		t.Errorf("got %q, expected %q", got, expected)
	}
	if v, _ := h.Values(); v.Value(synthone.Cutoff) != 200 {
		t.Errorf("cutoff = %v after loading preset two, expected 200", v.Value(synthone.Cutoff))
	}
	h.UpdateUI(synthone.Cutoff, 250)
	h.SavePreset().Do()
	h.PreviousPreset().Do()
	h.RandomPreset().Do()
	if got := bank.Current(); got.Name != "two" || got.Values["cutoff"] != 250 {
		t.Errorf("got preset %+v, expected saved preset two with cutoff 250", got)
	}
	panicked := false
	h.Panic().Do()
	nav := &header.Navigator{Header: h, Bank: bank, OnPanic: func() { panicked = true }}
	h.SetDelegate(nav)
	h.Panic().Do()
	if !panicked {
		t.Error("OnPanic hook was not called")
	}
}

type recordingDisplay struct {
	params []synthone.Parameter
}

func (r *recordingDisplay) Show(p synthone.Parameter, _ float64, _ display.Message) error {
	r.params = append(r.params, p)
	return nil
}

func TestPresetAnnouncementHasNoParameter(t *testing.T) {
	bank, err := preset.NewBank([]preset.Preset{{Name: "one", Values: map[string]float64{"cutoff": 100}}})
	if err != nil {
		t.Fatalf("NewBank failed: %v", err)
	}
	var d recordingDisplay
	h := header.New(nil, &d, nil)
	if _, err := header.NewNavigator(h, bank, nil); err != nil {
		t.Fatalf("NewNavigator failed: %v", err)
	}
	h.UpdateUI(synthone.Cutoff, 300)
	expected := []synthone.Parameter{synthone.NoParameter, synthone.Cutoff}
	if len(d.params) != len(expected) || d.params[0] != expected[0] || d.params[1] != expected[1] {
		t.Errorf("got parameters %v, expected %v", d.params, expected)
	}
}
