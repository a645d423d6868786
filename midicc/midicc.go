// Package midicc translates MIDI control change messages into synth
// parameter changes.
package midicc

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vsariola/synthone"
	"gitlab.com/gomidi/midi/v2"
	"gopkg.in/yaml.v3"
)

// Omni makes a Map listen to all channels.
const Omni = -1

type (
	// Binding maps the 0..127 range of a controller linearly onto Min..Max of
	// a parameter.
	Binding struct {
		Param synthone.Parameter
		Min   float64
		Max   float64
	}

	// Map binds controller numbers to parameters. Channel is 0-based; Omni
	// accepts every channel.
	Map struct {
		Channel  int
		Controls map[uint8]Binding
	}

	// Change is a parameter change produced by a MIDI message.
	Change struct {
		Param synthone.Parameter
		Value float64
	}
)

// ReadMap decodes a Map from a YAML document, e.g.
//
//	channel: 0
//	controls:
//	  74: {param: cutoff, min: 20, max: 8000}
//	  71: {param: resonance, min: 0, max: 0.9}
func ReadMap(r io.Reader) (*Map, error) {
	var m Map
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("could not decode MIDI map: %w", err)
	}
	if m.Channel < Omni || m.Channel > 15 {
		return nil, fmt.Errorf("MIDI channel %v out of range", m.Channel)
	}
	for cc := range m.Controls {
		if cc > 127 {
			return nil, fmt.Errorf("controller number %v out of range", cc)
		}
	}
	return &m, nil
}

// LoadMap reads a Map from a YAML file.
func LoadMap(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open MIDI map: %w", err)
	}
	defer f.Close()
	m, err := ReadMap(f)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return m, nil
}

// Translate returns the parameter change described by msg. It returns false
// for anything else than a control change of a bound controller on the
// channel of the map.
func (m *Map) Translate(msg midi.Message) (Change, bool) {
	var channel, controller, value uint8
	if !msg.GetControlChange(&channel, &controller, &value) {
		return Change{}, false
	}
	if m.Channel != Omni && int(channel) != m.Channel {
		return Change{}, false
	}
	b, ok := m.Controls[controller]
	if !ok {
		return Change{}, false
	}
	return Change{Param: b.Param, Value: b.Scale(value)}, true
}

// Scale maps a 0..127 controller value onto Min..Max.
func (b Binding) Scale(value uint8) float64 {
	if value > 127 {
		value = 127
	}
	return b.Min + (b.Max-b.Min)*float64(value)/127
}

// ParseHex parses a MIDI message written as hex bytes, e.g. "B0 4A 40" or
// "b04a40".
func ParseHex(s string) (midi.Message, error) {
	b, err := hex.DecodeString(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	if err != nil {
		return nil, fmt.Errorf("invalid MIDI message %q: %w", s, err)
	}
	return midi.Message(b), nil
}
