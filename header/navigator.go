package header

import (
	"fmt"
	"math/rand"

	"github.com/vsariola/synthone"
	"github.com/vsariola/synthone/display"
	"github.com/vsariola/synthone/preset"
)

// Navigator is a Delegate that moves through a preset bank and loads the
// selected preset into a Header. Panic and the buttons that open other views
// call the optional hooks; nil hooks do nothing.
type Navigator struct {
	Header *Header
	Bank   *preset.Bank
	Rand   *rand.Rand

	OnPanic func()
	OnHome  func()
	OnDev   func()
	OnAbout func()
	OnMore  func()
}

// NewNavigator makes a Navigator, sets it as the delegate of h and loads the
// current preset of b.
func NewNavigator(h *Header, b *preset.Bank, rnd *rand.Rand) (*Navigator, error) {
	n := &Navigator{Header: h, Bank: b, Rand: rnd}
	h.SetDelegate(n)
	if err := n.load(b.Current()); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *Navigator) load(p preset.Preset) error {
	if err := n.Header.LoadPreset(p); err != nil {
		return err
	}
	n.announce()
	return nil
}

// announce shows the name and position of the current preset.
func (n *Navigator) announce() {
	h := n.Header
	if h.display == nil {
		return
	}
	msg := display.Message(fmt.Sprintf("Preset %d/%d: %s", n.Bank.Index()+1, n.Bank.Len(), n.Bank.Current().Name))
	if err := h.display.Show(synthone.NoParameter, float64(n.Bank.Index()), msg); err != nil {
		h.logf("could not show status: %v", err)
	}
}

func (n *Navigator) loadOrLog(p preset.Preset) {
	if err := n.load(p); err != nil {
		n.Header.logf("could not load preset: %v", err)
	}
}

func (n *Navigator) DisplayLabelTapped()    { n.announce() }
func (n *Navigator) PreviousPresetPressed() { n.loadOrLog(n.Bank.Previous()) }
func (n *Navigator) NextPresetPressed()     { n.loadOrLog(n.Bank.Next()) }

func (n *Navigator) RandomPresetPressed() {
	rnd := n.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(rand.Int63()))
	}
	n.loadOrLog(n.Bank.Random(rnd))
}

// SavePresetPressed stores the current values under the name of the current
// preset.
func (n *Navigator) SavePresetPressed() {
	name := n.Header.PresetName()
	if name == "" {
		name = n.Bank.Current().Name
	}
	p := n.Header.CurrentPreset(name)
	p.Bank = n.Bank.Current().Bank
	if err := n.Bank.Store(p); err != nil {
		n.Header.logf("could not save preset: %v", err)
		return
	}
	n.announce()
}

func (n *Navigator) PanicPressed() { call(n.OnPanic) }
func (n *Navigator) HomePressed()  { call(n.OnHome) }
func (n *Navigator) DevPressed()   { call(n.OnDev) }
func (n *Navigator) AboutPressed() { call(n.OnAbout) }
func (n *Navigator) MorePressed()  { call(n.OnMore) }

func call(f func()) {
	if f != nil {
		f()
	}
}
