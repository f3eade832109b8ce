package peripherals

import (
	"github.com/jetsetilly/testchip8/gui"
)

// logical keys driven by the stick
const (
	keyLeft   = 0x04
	keyRight  = 0x01
	keyUp     = 0x0c
	keyDown   = 0x0d
	keyButton = 0x00
)

// Stick is the reference keymap. Four directions and a button, each held for
// as long as the input is pressed
type Stick struct {
	kp Keypad
}

// NewStick is the preferred method of initialisation for the Stick type
func NewStick(kp Keypad) *Stick {
	return &Stick{
		kp: kp,
	}
}

// Reset releases all keys driven by the stick
func (st *Stick) Reset() {
	for _, k := range []uint8{keyLeft, keyRight, keyUp, keyDown, keyButton} {
		st.kp.Set(k, false)
	}
}

// Update implements the Peripheral interface
func (st *Stick) Update(inp gui.Input) error {
	switch inp.Action {
	case gui.StickLeft:
		st.kp.Set(keyLeft, inp.Pressed())
	case gui.StickRight:
		st.kp.Set(keyRight, inp.Pressed())
	case gui.StickUp:
		st.kp.Set(keyUp, inp.Pressed())
	case gui.StickDown:
		st.kp.Set(keyDown, inp.Pressed())
	case gui.StickButton:
		st.kp.Set(keyButton, inp.Pressed())
	}
	return nil
}
