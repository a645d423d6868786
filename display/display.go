// Package display turns synth parameter changes into the one-line status
// messages shown in the header of the synth.
package display

import (
	"github.com/vsariola/synthone"
	"github.com/vsariola/synthone/rate"
)

type (
	// Message is a single line of status text. An empty Message means the
	// previous text should be left unchanged.
	Message string

	// Context is the read-only view of the engine that a Formatter uses to
	// look up values of other parameters than the one that changed.
	Context interface {
		Value(p synthone.Parameter) float64
		TempoSync() bool
	}

	// RateConverter converts free-running frequencies and times to note
	// value labels, for parameters that are shown tempo-synced.
	RateConverter interface {
		FromFrequency(hz float64) string
		FromTime(sec float64) string
	}

	// Formatter maps parameter changes to messages using a rule table. It
	// holds no mutable state, so one Formatter can be shared freely.
	Formatter struct {
		conv  RateConverter
		rules map[synthone.Parameter]Rule
	}
)

// New returns a Formatter using the default rule table. If conv is nil, the
// note values are computed with a rate.Converter at the arpeggiator tempo
// read from the Context.
func New(conv RateConverter) *Formatter {
	return &Formatter{conv: conv, rules: defaultRules}
}

// NewWithRules returns a Formatter with a custom rule table. Parameters
// missing from the table format to an empty Message.
func NewWithRules(conv RateConverter, rules map[synthone.Parameter]Rule) *Formatter {
	r := make(map[synthone.Parameter]Rule, len(rules))
	for k, v := range rules {
		r[k] = v
	}
	return &Formatter{conv: conv, rules: r}
}

var defaultFormatter = New(nil)

// Format formats a parameter change with the default Formatter.
func Format(p synthone.Parameter, value float64, ctx Context) Message {
	return defaultFormatter.Format(p, value, ctx)
}

// Rule returns the formatting rule of a parameter, NoOp if there is none.
func (f *Formatter) Rule(p synthone.Parameter) Rule {
	if r, ok := f.rules[p]; ok && r != nil {
		return r
	}
	return NoOp{}
}

// Format returns the message describing the change of parameter p to value.
// A nil ctx means the engine is not available yet; the result is then empty.
func (f *Formatter) Format(p synthone.Parameter, value float64, ctx Context) Message {
	if ctx == nil {
		return ""
	}
	c := call{param: p, value: value, ctx: ctx, conv: f.conv}
	if c.conv == nil {
		c.conv = rate.Converter{BPM: ctx.Value(synthone.ArpRate)}
	}
	return f.Rule(p).format(&c)
}

// call carries the arguments of one Format call through the rules.
type call struct {
	param synthone.Parameter
	value float64
	ctx   Context
	conv  RateConverter
}

// lookup returns the value of p: the changed value if p is the parameter
// being formatted or Self, otherwise the current value in the context.
func (c *call) lookup(p synthone.Parameter) float64 {
	if p == Self || p == c.param {
		return c.value
	}
	return c.ctx.Value(p)
}
