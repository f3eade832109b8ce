package peripherals

import (
	"github.com/jetsetilly/testchip8/gui"
	"github.com/jetsetilly/testchip8/hardware/spec"
)

// HexPad passes the sixteen hex key actions straight through to the keypad.
// The pause key is left to the Panel
type HexPad struct {
	kp Keypad
}

// NewHexPad is the preferred method of initialisation for the HexPad type
func NewHexPad(kp Keypad) *HexPad {
	return &HexPad{
		kp: kp,
	}
}

// Reset releases every key except the pause key
func (h *HexPad) Reset() {
	for k := range uint8(spec.NumKeys) {
		if k != spec.PauseKey {
			h.kp.Set(k, false)
		}
	}
}

// Update implements the Peripheral interface
func (h *HexPad) Update(inp gui.Input) error {
	if !inp.Action.IsHexKey() {
		return nil
	}
	k := inp.Action.HexKey()
	if k == spec.PauseKey {
		return nil
	}
	h.kp.Set(k, inp.Pressed())
	return nil
}
