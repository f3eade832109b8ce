package cpu_test

import (
	"github.com/jetsetilly/testchip8/hardware/cpu"
	"github.com/jetsetilly/testchip8/hardware/display"
	"github.com/jetsetilly/testchip8/hardware/keypad"
	"github.com/jetsetilly/testchip8/hardware/memory"
	"github.com/jetsetilly/testchip8/hardware/spec"
)

// fixedRandom always returns the same value
type fixedRandom uint8

func (r fixedRandom) Rand8Bit() uint8 {
	return uint8(r)
}

// machine bundles the CPU with real implementations of its collaborators
type machine struct {
	mc  *cpu.CPU
	mem *memory.Memory
	dsp *display.Display
	kp  *keypad.Keypad
}

func newMachine(program ...uint16) *machine {
	var b []uint8
	for _, w := range program {
		b = append(b, uint8(w>>8), uint8(w))
	}

	mem, err := memory.Create(b)
	if err != nil {
		panic(err)
	}

	m := &machine{
		mem: mem,
		dsp: display.NewDisplay(),
		kp:  keypad.NewKeypad(),
	}
	m.mc = cpu.NewCPU(fixedRandom(0xff), m.mem, m.dsp, m.kp)
	return m
}

// step the CPU n times and return the first error
func (m *machine) step(n int) error {
	for range n {
		if err := m.mc.Step(); err != nil {
			return err
		}
	}
	return nil
}

// address of the nth instruction of the program
func at(n int) uint16 {
	return uint16(spec.ProgramOrigin + n*2)
}
