package peripherals

import "github.com/jetsetilly/testchip8/gui"

// Keypad is the key state as seen by the input peripherals
type Keypad interface {
	Set(key uint8, pressed bool)
	Toggle(key uint8)
}

// Peripheral translates GUI input into keypad changes
type Peripheral interface {
	Update(inp gui.Input) error
	Reset()
}
