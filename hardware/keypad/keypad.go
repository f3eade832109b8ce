package keypad

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/testchip8/hardware/spec"
)

// Keypad is the state of the logical keys. It is written by the input
// peripherals and read by the CPU
type Keypad struct {
	keys [spec.NumKeys]bool
}

// NewKeypad returns a keypad with no keys pressed
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Reset releases every key
func (kp *Keypad) Reset() {
	clear(kp.keys[:])
}

// Set the state of the key. Keys outside the range of the keypad are ignored
func (kp *Keypad) Set(key uint8, pressed bool) {
	if int(key) >= len(kp.keys) {
		return
	}
	kp.keys[key] = pressed
}

// Toggle the state of the key
func (kp *Keypad) Toggle(key uint8) {
	if int(key) >= len(kp.keys) {
		return
	}
	kp.keys[key] = !kp.keys[key]
}

// IsPressed returns the state of the key. A key outside the range of the keypad
// is never pressed
func (kp *Keypad) IsPressed(key uint8) bool {
	if int(key) >= len(kp.keys) {
		return false
	}
	return kp.keys[key]
}

// Pressed returns the lowest numbered key that is pressed
func (kp *Keypad) Pressed() (uint8, bool) {
	for i, k := range kp.keys {
		if k {
			return uint8(i), true
		}
	}
	return 0, false
}

func (kp *Keypad) String() string {
	var s strings.Builder
	for i, k := range kp.keys {
		if k {
			s.WriteString(fmt.Sprintf("%X ", i))
		} else {
			s.WriteString("- ")
		}
	}
	return strings.TrimSpace(s.String())
}
