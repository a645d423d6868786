// Package status implements surfaces that show the header status messages.
package status

import (
	"fmt"
	"io"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/vsariola/synthone"
	"github.com/vsariola/synthone/display"
)

// DefaultTemplate writes the bare message on its own line.
const DefaultTemplate = "{{.Message}}\n"

type (
	// Line is the data given to the template of a Writer.
	Line struct {
		Message   string
		Parameter string
		Value     float64
	}

	// Writer renders every non-empty message through a text/template to an
	// io.Writer. The sprig functions are available in the template, e.g.
	// `{{.Parameter | kebabcase}}: {{.Message | upper}}`.
	Writer struct {
		w    io.Writer
		tmpl *template.Template
	}

	// Label keeps the latest non-empty message, like the text of an on-screen
	// label.
	Label struct {
		Text    display.Message
		Updates int
	}
)

// NewWriter parses tmpl and returns a Writer writing to w. An empty tmpl means
// DefaultTemplate.
func NewWriter(w io.Writer, tmpl string) (*Writer, error) {
	if tmpl == "" {
		tmpl = DefaultTemplate
	}
	t, err := template.New("status").Funcs(sprig.TxtFuncMap()).Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("could not parse status template: %w", err)
	}
	return &Writer{w: w, tmpl: t}, nil
}

// Show writes msg; empty messages are skipped. Messages not caused by a
// parameter change, e.g. preset names, come with synthone.NoParameter and have
// an empty Parameter in the template.
func (w *Writer) Show(p synthone.Parameter, value float64, msg display.Message) error {
	if msg == "" {
		return nil
	}
	line := Line{Message: string(msg), Value: value}
	if p.Valid() {
		line.Parameter = p.String()
	}
	if err := w.tmpl.Execute(w.w, line); err != nil {
		return fmt.Errorf("could not render status of %v: %w", p, err)
	}
	return nil
}

// Show replaces the text of the label, unless msg is empty.
func (l *Label) Show(_ synthone.Parameter, _ float64, msg display.Message) error {
	if msg == "" {
		return nil
	}
	l.Text = msg
	l.Updates++
	return nil
}
