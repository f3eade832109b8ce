package spec

import (
	"image/color"
	"time"

	"github.com/jetsetilly/testchip8/hardware/clocks"
)

// Dimensions of the logical display
const (
	Width  = 64
	Height = 32
)

// Layout of the address space
const (
	MemorySize    = 0x1000
	FontBase      = 0x0000
	GlyphSize     = 5
	ProgramOrigin = 0x0200

	// the largest program that can be loaded at the program origin
	MaxProgramSize = MemorySize - ProgramOrigin
)

// StackDepth is the number of return addresses the call stack can hold
const StackDepth = 16

// NumKeys is the number of logical keys on the keypad
const NumKeys = 16

// PauseKey is the logical key index that suspends instruction execution when
// it is held
const PauseKey = 0x0f

// Rates used by the host loop
const (
	InstructionRate = 500 * clocks.Hz
	FrameRate       = 60 * clocks.Hz
)

// FrameDuration is the interval between redraws
var FrameDuration = FrameRate.Duration()

// Scale is the reference number of physical pixels per logical pixel
const Scale = 10

// Palette for the two pixel states
var (
	Background = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	Foreground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Spec bundles the parameters of a machine that can be chosen at startup
type Spec struct {
	ID string

	// number of instructions to execute per second
	InstructionRate clocks.ClockRate

	// timers decrement once per frame if true, otherwise once per instruction
	FrameTimers bool
}

// Default is the reference machine
var Default = Spec{
	ID:              "DEFAULT",
	InstructionRate: InstructionRate,
	FrameTimers:     true,
}

// Legacy decrements the timers on every instruction
var Legacy = Spec{
	ID:              "LEGACY",
	InstructionRate: InstructionRate,
	FrameTimers:     false,
}

// InstructionDuration is the interval between instructions for the spec
func (s Spec) InstructionDuration() time.Duration {
	if s.InstructionRate <= 0 {
		return InstructionRate.Duration()
	}
	return s.InstructionRate.Duration()
}
