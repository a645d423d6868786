package header

type (
	// Action is something the user can do by pressing a control of the
	// header. The underlying Doer can implement Enabler to tell if the
	// control should be active; otherwise the action is always allowed.
	Action struct {
		doer Doer
	}

	// Doer performs the action.
	Doer interface {
		Do()
	}

	// Enabler tells if the action is currently allowed.
	Enabler interface {
		Enabled() bool
	}
)

func MakeAction(doer Doer) Action {
	return Action{doer: doer}
}

func (a Action) Do() {
	if !a.Enabled() {
		return
	}
	a.doer.Do()
}

func (a Action) Enabled() bool {
	if a.doer == nil {
		return false
	}
	e, ok := a.doer.(Enabler)
	if !ok {
		return true
	}
	return e.Enabled()
}

type (
	displayTapped  Header
	home           Header
	previousPreset Header
	nextPreset     Header
	savePreset     Header
	randomPreset   Header
	panicPress     Header
	dev            Header
	about          Header
	more           Header
)

func (h *Header) DisplayTapped() Action  { return MakeAction((*displayTapped)(h)) }
func (h *Header) Home() Action           { return MakeAction((*home)(h)) }
func (h *Header) PreviousPreset() Action { return MakeAction((*previousPreset)(h)) }
func (h *Header) NextPreset() Action     { return MakeAction((*nextPreset)(h)) }
func (h *Header) SavePreset() Action     { return MakeAction((*savePreset)(h)) }
func (h *Header) RandomPreset() Action   { return MakeAction((*randomPreset)(h)) }
func (h *Header) Panic() Action          { return MakeAction((*panicPress)(h)) }
func (h *Header) Dev() Action            { return MakeAction((*dev)(h)) }
func (h *Header) About() Action          { return MakeAction((*about)(h)) }
func (h *Header) More() Action           { return MakeAction((*more)(h)) }

func (h *displayTapped) Enabled() bool  { return h.delegate != nil }
func (h *home) Enabled() bool           { return h.delegate != nil }
func (h *previousPreset) Enabled() bool { return h.delegate != nil }
func (h *nextPreset) Enabled() bool     { return h.delegate != nil }
func (h *savePreset) Enabled() bool     { return h.delegate != nil }
func (h *randomPreset) Enabled() bool   { return h.delegate != nil }
func (h *panicPress) Enabled() bool     { return h.delegate != nil }
func (h *dev) Enabled() bool            { return h.delegate != nil && h.ShowDev }
func (h *about) Enabled() bool          { return h.delegate != nil }
func (h *more) Enabled() bool           { return h.delegate != nil }

func (h *displayTapped) Do()  { h.delegate.DisplayLabelTapped() }
func (h *home) Do()           { h.delegate.HomePressed() }
func (h *previousPreset) Do() { h.delegate.PreviousPresetPressed() }
func (h *nextPreset) Do()     { h.delegate.NextPresetPressed() }
func (h *savePreset) Do()     { h.delegate.SavePresetPressed() }
func (h *randomPreset) Do()   { h.delegate.RandomPresetPressed() }
func (h *panicPress) Do()     { h.delegate.PanicPressed() }
func (h *dev) Do()            { h.delegate.DevPressed() }
func (h *about) Do()          { h.delegate.AboutPressed() }
func (h *more) Do()           { h.delegate.MorePressed() }
