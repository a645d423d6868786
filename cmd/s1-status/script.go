package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vsariola/synthone"
	"github.com/vsariola/synthone/header"
)

type (
	// Script is a list of steps read from a YAML file, e.g.
	//
	//	- {param: cutoff, value: 1200}
	//	- {action: next}
	Script []Step

	Step struct {
		Param  *synthone.Parameter `yaml:",omitempty"`
		Value  float64             `yaml:",omitempty"`
		Action string              `yaml:",omitempty"`
	}
)

var actionNames = []string{"next", "prev", "random", "save", "tap"}

func actionByName(h *header.Header, name string) (header.Action, bool) {
	switch name {
	case "next":
		return h.NextPreset(), true
	case "prev":
		return h.PreviousPreset(), true
	case "random":
		return h.RandomPreset(), true
	case "save":
		return h.SavePreset(), true
	case "tap":
		return h.DisplayTapped(), true
	}
	return header.Action{}, false
}

func loadScript(path string) (Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open script: %w", err)
	}
	defer f.Close()
	var s Script
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("could not decode script %v: %w", path, err)
	}
	return s, nil
}

func (s Script) Run(h *header.Header) error {
	for i, step := range s {
		switch {
		case step.Action != "" && step.Param != nil:
			return fmt.Errorf("step %d has both an action and a parameter", i+1)
		case step.Action != "":
			a, ok := actionByName(h, step.Action)
			if !ok {
				return fmt.Errorf("step %d: unknown action %q", i+1, step.Action)
			}
			a.Do()
		case step.Param != nil:
			h.UpdateUI(*step.Param, step.Value)
		default:
			return fmt.Errorf("step %d is empty", i+1)
		}
	}
	return nil
}
