// Package header is the model behind the header panel of the synth: the
// status label that describes the parameter being edited, and the preset
// navigation and utility buttons.
package header

import (
	"fmt"
	"log"

	"github.com/vsariola/synthone"
	"github.com/vsariola/synthone/display"
	"github.com/vsariola/synthone/preset"
)

type (
	// Delegate receives the button presses of the header.
	Delegate interface {
		DisplayLabelTapped()
		HomePressed()
		PreviousPresetPressed()
		NextPresetPressed()
		SavePresetPressed()
		RandomPresetPressed()
		PanicPressed()
		DevPressed()
		AboutPressed()
		MorePressed()
	}

	// StatusDisplay shows status messages. An empty message means the text
	// should stay as it is.
	StatusDisplay interface {
		Show(p synthone.Parameter, value float64, msg display.Message) error
	}

	// Header keeps the latest parameter values and updates the status
	// display whenever a parameter changes. Header is not safe for concurrent
	// use; call it from the UI update path only.
	Header struct {
		// ShowDev enables the dev panel button.
		ShowDev bool

		formatter *display.Formatter
		display   StatusDisplay
		delegate  Delegate
		logger    *log.Logger
		values    synthone.Values
		attached  bool
		preset    string
	}
)

// New returns a header showing messages from f on d. Until Attach is called,
// the synth is considered not instantiated and updates are ignored. A nil
// logger discards the log output.
func New(f *display.Formatter, d StatusDisplay, logger *log.Logger) *Header {
	if f == nil {
		f = display.New(nil)
	}
	return &Header{formatter: f, display: d, logger: logger}
}

func (h *Header) SetDelegate(d Delegate) { h.delegate = d }

// Attach connects the header to an instantiated synth whose current
// parameter values are v.
func (h *Header) Attach(v synthone.Values) {
	h.values = v
	h.attached = true
}

// Detach marks the synth as gone; further updates are ignored.
func (h *Header) Detach() {
	h.values = synthone.Values{}
	h.attached = false
}

// Values returns the current parameter values, and false if no synth is
// attached.
func (h *Header) Values() (synthone.Values, bool) {
	return h.values, h.attached
}

// PresetName is the name of the last loaded preset.
func (h *Header) PresetName() string { return h.preset }

// UpdateUI records the new value of p and shows its status message.
func (h *Header) UpdateUI(p synthone.Parameter, value float64) {
	if !h.attached {
		h.logf("can't update display label because synth is not instantiated")
		return
	}
	h.values = h.values.With(p, value)
	msg := h.formatter.Format(p, value, h.values)
	if msg == "" || h.display == nil {
		return
	}
	if err := h.display.Show(p, value, msg); err != nil {
		h.logf("could not show status: %v", err)
	}
}

// LoadPreset replaces all the parameter values with the ones of p, attaching
// the header if necessary.
func (h *Header) LoadPreset(p preset.Preset) error {
	v, err := p.Snapshot()
	if err != nil {
		return fmt.Errorf("LoadPreset: %w", err)
	}
	h.Attach(v)
	h.preset = p.Name
	return nil
}

// CurrentPreset returns the current values as a preset with the given name.
func (h *Header) CurrentPreset(name string) preset.Preset {
	return preset.Preset{Name: name, Values: h.values.Map()}
}

// MoreLabel is the title of the "more" button: users who signed up to the
// mailing list get the apps page instead of the more presets page.
func MoreLabel(signedMailingList bool) string {
	if signedMailingList {
		return "Apps"
	}
	return "More"
}

func (h *Header) logf(format string, v ...any) {
	if h.logger != nil {
		h.logger.Printf(format, v...)
	}
}
