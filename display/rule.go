package display

import (
	"strings"

	"github.com/vsariola/synthone"
)

// Self stands for the parameter being formatted in a Field.
const Self synthone.Parameter = -1

type (
	// Rule is one entry of the rule table. The set of rules is closed: Field,
	// Composite, Conditional, Toggle, LFORoute, Choice and NoOp.
	Rule interface {
		format(c *call) Message
	}

	// Field renders one value as "Label: value unit". The Label and Unit may
	// be empty. Scale multiplies the value before rendering; zero means 1.
	Field struct {
		Label string
		Param synthone.Parameter
		Kind  Kind
		Unit  string
		Scale float64
	}

	// Composite joins several fields with Sep and appends End. It renders the
	// same text no matter which of its parameters changed.
	Composite struct {
		Fields []Field
		Sep    string
		End    string
	}

	// Conditional picks Synced when tempo sync is on and Free otherwise.
	Conditional struct {
		Synced Rule
		Free   Rule
	}

	// Toggle renders On when the value is exactly 1, Off otherwise.
	Toggle struct {
		On  string
		Off string
	}

	// LFORoute renders "Label LFO ‣ SOURCE" for an LFO destination selector.
	LFORoute struct {
		Label string
	}

	// Choice renders "Label : choice" where Decode names the selected value.
	Choice struct {
		Label  string
		Decode func(float64) string
	}

	// NoOp renders nothing, leaving the status text as it was.
	NoOp struct{}
)

func (f Field) render(c *call) string {
	v := c.lookup(f.Param)
	if f.Scale != 0 {
		v *= f.Scale
	}
	s := f.Kind.render(v, c.conv)
	if f.Unit != "" {
		s += " " + f.Unit
	}
	if f.Label != "" {
		s = f.Label + ": " + s
	}
	return s
}

func (f Field) format(c *call) Message {
	return Message(f.render(c))
}

func (m Composite) format(c *call) Message {
	parts := make([]string, len(m.Fields))
	for i, f := range m.Fields {
		parts[i] = f.render(c)
	}
	return Message(strings.Join(parts, m.Sep) + m.End)
}

func (m Conditional) format(c *call) Message {
	r := m.Free
	if c.ctx.TempoSync() {
		r = m.Synced
	}
	if r == nil {
		return ""
	}
	return r.format(c)
}

func (t Toggle) format(c *call) Message {
	if c.value == 1 {
		return Message(t.On)
	}
	return Message(t.Off)
}

func (l LFORoute) format(c *call) Message {
	return Message(l.Label + " LFO ‣ " + synthone.LFOSourceLabel(c.value))
}

func (ch Choice) format(c *call) Message {
	label := synthone.UnknownLabel
	if ch.Decode != nil {
		label = ch.Decode(c.value)
	}
	return Message(ch.Label + " : " + label)
}

func (NoOp) format(*call) Message { return "" }
