package peripherals

import (
	"github.com/jetsetilly/testchip8/gui"
	"github.com/jetsetilly/testchip8/hardware/spec"
)

// Panel handles the pause switch. The pause key is toggled on the press of
// the input and the release is ignored
type Panel struct {
	kp Keypad
}

// NewPanel is the preferred method of initialisation for the Panel type
func NewPanel(kp Keypad) *Panel {
	return &Panel{
		kp: kp,
	}
}

// Reset releases the pause key
func (p *Panel) Reset() {
	p.kp.Set(spec.PauseKey, false)
}

// Update implements the Peripheral interface
func (p *Panel) Update(inp gui.Input) error {
	if inp.Action == gui.Pause && inp.Pressed() {
		p.kp.Toggle(spec.PauseKey)
	}
	return nil
}
