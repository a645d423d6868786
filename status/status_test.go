package status_test

import (
	"bytes"
	"testing"

	"github.com/vsariola/synthone"
	"github.com/vsariola/synthone/status"
)

func TestWriterDefaultTemplate(t *testing.T) {
	var buf bytes.Buffer
	w, err := status.NewWriter(&buf, "")
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	if err := w.Show(synthone.ReverbOn, 1, "Reverb On"); err != nil {
		t.Fatalf("Show failed: %v", err)
	}
	if err := w.Show(synthone.IsMono, 1, ""); err != nil {
		t.Fatalf("Show failed: %v", err)
	}
	if got, expected := buf.String(), "Reverb On\n"; got != expected {
		t.Errorf("got %q, expected %q", got, expected)
	}
}

func TestWriterSprigTemplate(t *testing.T) {
	var buf bytes.Buffer
	w, err := status.NewWriter(&buf, "{{.Parameter | kebabcase}}={{.Value}} {{.Message | upper}};")
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	if err := w.Show(synthone.SubVolume, 0.5, "Sub Mix: 50%"); err != nil {
		t.Fatalf("Show failed: %v", err)
	}
	if got, expected := buf.String(), "sub-volume=0.5 SUB MIX: 50%;"; got != expected {
		t.Errorf("got %q, expected %q", got, expected)
	}
}

func TestWriterBadTemplate(t *testing.T) {
	if _, err := status.NewWriter(&bytes.Buffer{}, "{{.Message"); err == nil {
		t.Error("NewWriter should fail for a malformed template")
	}
}

func TestLabelKeepsLastText(t *testing.T) {
	var l status.Label
	l.Show(synthone.DelayOn, 1, "Delay On")
	l.Show(synthone.IsMono, 1, "")
	if l.Text != "Delay On" || l.Updates != 1 {
		t.Errorf("got %q after %v updates, expected %q after 1", l.Text, l.Updates, "Delay On")
	}
}
