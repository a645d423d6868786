// Package preset reads synth presets from YAML documents and keeps a bank of
// them for previous/next/random navigation.
package preset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/vsariola/synthone"
	yamlv2 "gopkg.in/yaml.v2"
	"gopkg.in/yaml.v3"
)

//go:embed factory.yml
var factoryYAML []byte

type (
	// Preset is a named set of parameter values. Values is keyed by the
	// canonical parameter names, e.g. "cutoff" or "lfo2Rate".
	Preset struct {
		Name   string
		Bank   string             `yaml:",omitempty"`
		Values map[string]float64 `yaml:",omitempty"`
	}

	// Bank is an ordered list of presets with a current position.
	Bank struct {
		presets []Preset
		index   int
	}
)

// Snapshot converts the preset into a value snapshot. Unknown parameter names
// are an error.
func (p Preset) Snapshot() (synthone.Values, error) {
	v, err := synthone.ParseValues(p.Values)
	if err != nil {
		return synthone.Values{}, fmt.Errorf("preset %q: %w", p.Name, err)
	}
	return v, nil
}

// Copy makes a deep copy of a preset.
func (p Preset) Copy() Preset {
	values := make(map[string]float64, len(p.Values))
	for k, v := range p.Values {
		values[k] = v
	}
	return Preset{Name: p.Name, Bank: p.Bank, Values: values}
}

// Read decodes a single preset from a YAML document and validates its
// parameter names.
func Read(r io.Reader) (Preset, error) {
	var p Preset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Preset{}, fmt.Errorf("could not decode preset: %w", err)
	}
	if _, err := p.Snapshot(); err != nil {
		return Preset{}, err
	}
	return p, nil
}

// Load reads a preset from a YAML file.
func Load(path string) (Preset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("could not read preset file %v: %w", path, err)
	}
	p, err := Read(bytes.NewReader(b))
	if err != nil {
		return Preset{}, fmt.Errorf("%v: %w", path, err)
	}
	return p, nil
}

// Save writes a preset as a YAML document.
func Save(w io.Writer, p Preset) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("could not encode preset %q: %w", p.Name, err)
	}
	return enc.Close()
}

// Factory returns a new bank holding the built-in presets.
func Factory() (*Bank, error) {
	var presets []Preset
	if err := yamlv2.UnmarshalStrict(factoryYAML, &presets); err != nil {
		return nil, fmt.Errorf("could not decode factory presets: %w", err)
	}
	return NewBank(presets)
}

// NewBank makes a bank of the given presets, positioned at the first one.
// Every preset is validated.
func NewBank(presets []Preset) (*Bank, error) {
	if len(presets) == 0 {
		return nil, errors.New("a bank needs at least one preset")
	}
	b := &Bank{presets: make([]Preset, len(presets))}
	for i, p := range presets {
		if _, err := p.Snapshot(); err != nil {
			return nil, err
		}
		b.presets[i] = p.Copy()
	}
	return b, nil
}

func (b *Bank) Len() int        { return len(b.presets) }
func (b *Bank) Index() int      { return b.index }
func (b *Bank) Current() Preset { return b.presets[b.index].Copy() }

// Names lists the names of the presets in bank order.
func (b *Bank) Names() []string {
	ret := make([]string, len(b.presets))
	for i, p := range b.presets {
		ret[i] = p.Name
	}
	return ret
}

// Select moves to the preset at index i.
func (b *Bank) Select(i int) (Preset, error) {
	if i < 0 || i >= len(b.presets) {
		return Preset{}, fmt.Errorf("preset index %v out of range [0,%v)", i, len(b.presets))
	}
	b.index = i
	return b.Current(), nil
}

// Find moves to the first preset with the given name.
func (b *Bank) Find(name string) (Preset, error) {
	for i, p := range b.presets {
		if p.Name == name {
			b.index = i
			return b.Current(), nil
		}
	}
	return Preset{}, fmt.Errorf("could not find preset %q", name)
}

// Next moves to the next preset, wrapping around at the end.
func (b *Bank) Next() Preset {
	b.index = (b.index + 1) % len(b.presets)
	return b.Current()
}

// Previous moves to the previous preset, wrapping around at the start.
func (b *Bank) Previous() Preset {
	b.index = (b.index + len(b.presets) - 1) % len(b.presets)
	return b.Current()
}

// Random moves to a random preset other than the current one, if the bank has
// more than one.
func (b *Bank) Random(rnd *rand.Rand) Preset {
	if len(b.presets) > 1 {
		i := rnd.Intn(len(b.presets) - 1)
		if i >= b.index {
			i++
		}
		b.index = i
	}
	return b.Current()
}

// Store saves p into the bank, replacing the preset with the same name or
// appending it, and moves to it.
func (b *Bank) Store(p Preset) error {
	if _, err := p.Snapshot(); err != nil {
		return err
	}
	for i := range b.presets {
		if b.presets[i].Name == p.Name {
			b.presets[i] = p.Copy()
			b.index = i
			return nil
		}
	}
	b.presets = append(b.presets, p.Copy())
	b.index = len(b.presets) - 1
	return nil
}
