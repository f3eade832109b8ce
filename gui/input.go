package gui

// Action is the logical meaning of an input event from the GUI
type Action int

// Input is sent by the GUI to the emulation. For every action the Data field
// is a bool indicating whether the input is pressed (true) or released (false)
type Input struct {
	Action Action
	Data   any
}

// List of actions
const (
	Nothing Action = iota

	// reference keymap
	StickLeft
	StickUp
	StickRight
	StickDown
	StickButton
	Pause

	// hex keypad. the sixteen actions are consecutive
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
)

// IsHexKey returns true if the action is one of the hex keypad actions
func (a Action) IsHexKey() bool {
	return a >= Key0 && a <= KeyF
}

// HexKey returns the keypad index of the hex keypad action
func (a Action) HexKey() uint8 {
	return uint8(a - Key0)
}

// Pressed returns the Data field as a bool. Missing or invalid data is
// treated as a release
func (inp Input) Pressed() bool {
	b, ok := inp.Data.(bool)
	return ok && b
}
