package hardware

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/testchip8/gui"
	"github.com/jetsetilly/testchip8/hardware/cpu"
	"github.com/jetsetilly/testchip8/hardware/display"
	"github.com/jetsetilly/testchip8/hardware/keypad"
	"github.com/jetsetilly/testchip8/hardware/memory"
	"github.com/jetsetilly/testchip8/hardware/peripherals"
	"github.com/jetsetilly/testchip8/hardware/spec"
)

// Context is the information the console requires from its environment
type Context interface {
	cpu.Context
	Spec() spec.Spec
}

// Console is the complete machine
type Console struct {
	ctx Context

	// the gui can be nil. in which case input is never received and images are
	// not pushed
	g *gui.GUI

	MC      *cpu.CPU
	Mem     *memory.Memory
	Display *display.Display
	Keypad  *keypad.Keypad

	peripherals []peripherals.Peripheral

	// the program loaded on Reset()
	program []uint8

	// number of frames since reset
	Frame int

	// frames are derived from the number of instructions executed. every time
	// the accumulator reaches the instruction rate a frame has passed
	frameAcc int64
}

// Create a new console with an empty program
func Create(ctx Context, g *gui.GUI) *Console {
	con := &Console{
		ctx:     ctx,
		g:       g,
		Display: display.NewDisplay(),
		Keypad:  keypad.NewKeypad(),
	}

	// an empty program can always be loaded
	con.Mem, _ = memory.Create(nil)
	con.MC = cpu.NewCPU(ctx, con.Mem, con.Display, con.Keypad)

	con.peripherals = []peripherals.Peripheral{
		peripherals.NewPanel(con.Keypad),
		peripherals.NewStick(con.Keypad),
		peripherals.NewHexPad(con.Keypad),
	}

	con.Reset()

	return con
}

// Load a new program and reset the console. The previous program remains
// loaded if the new program cannot be loaded
func (con *Console) Load(program []uint8) error {
	if len(program) > spec.MaxProgramSize {
		return fmt.Errorf("console: %w: %d bytes", memory.ProgramTooLarge, len(program))
	}
	con.program = program
	return con.Reset()
}

// Reset the console to its power-on state with the current program loaded
func (con *Console) Reset() error {
	err := con.Mem.Load(con.program)
	if err != nil {
		return fmt.Errorf("console: %w", err)
	}
	con.MC.Reset()
	con.MC.CycleTimers = !con.ctx.Spec().FrameTimers
	con.Display.Clear()
	con.Keypad.Reset()
	for _, p := range con.peripherals {
		p.Reset()
	}
	con.Frame = 0
	con.frameAcc = 0
	return nil
}

// Paused returns true if the pause key is held. Instructions are not executed
// by Run() while the console is paused
func (con *Console) Paused() bool {
	return con.Keypad.IsPressed(spec.PauseKey)
}

// Step executes a single instruction. The frame counter advances, the timers
// are ticked and an image is pushed to the gui as required
func (con *Console) Step() error {
	err := con.MC.Step()
	if err != nil {
		return err
	}

	rate := int64(con.ctx.Spec().InstructionRate)
	if rate <= 0 {
		rate = int64(spec.InstructionRate)
	}
	// instruction rates below the frame rate produce more than one frame
	// per instruction
	con.frameAcc += int64(spec.FrameRate)
	for con.frameAcc >= rate {
		con.frameAcc -= rate
		con.frame()
	}

	return nil
}

func (con *Console) frame() {
	con.Frame++
	if !con.MC.CycleTimers {
		con.MC.TickTimers()
	}
	con.handleInput()
	con.PushRender()
}

// PushRender sends the current state of the display to the gui
func (con *Console) PushRender() {
	if con.g == nil {
		return
	}
	con.g.SendImage(gui.Image{
		Main:   con.Display.Image(),
		Paused: con.Paused(),
		Sound:  con.MC.SoundActive(),
	})
}

// EndRun can be returned by the hook function to end Run() without an error
var EndRun = errors.New("end run")

// Run the emulation at the speed specified by the context. The hook is
// called after every instruction and once per frame while the console is
// paused. Run() returns when the hook or the emulation returns an error.
// The EndRun error from the hook is not returned
func (con *Console) Run(hook func() error) error {
	d := con.ctx.Spec().InstructionDuration()

	l := newLimiter(d)
	defer l.stop()

	for {
		if con.Paused() {
			l.setPeriod(spec.FrameDuration)
			l.wait()
			con.handleInput()
			con.PushRender()

			err := hook()
			if err != nil {
				return endRun(err)
			}
			continue // for loop
		}

		// instructions are executed in batches if the instruction rate is too
		// high for a ticker to keep up with
		n := l.setPeriod(d)
		l.wait()

		for range n {
			err := con.Step()
			if err != nil {
				return err
			}
			err = hook()
			if err != nil {
				return endRun(err)
			}
			if con.Paused() {
				break // for loop
			}
		}
	}
}

func endRun(err error) error {
	if errors.Is(err, EndRun) {
		return nil
	}
	return err
}
