package debugger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jetsetilly/testchip8/disassembly"
	"github.com/jetsetilly/testchip8/gui"
	"github.com/jetsetilly/testchip8/hardware"
	"github.com/jetsetilly/testchip8/hardware/cpu/execution"
)

type input struct {
	s   string
	err error
}

type debugger struct {
	ctx context
	g   *gui.GUI

	guiQuit chan bool
	sig     chan os.Signal
	input   chan input

	// all output from the debugger is written to the terminal
	term terminal

	console     *hardware.Console
	breakpoints map[uint16]bool
	watches     map[uint16]watch

	// recent execution results to be printed on emulation halt
	recent []execution.Result

	// rule for stepping. by default (the field is nil) the step will move
	// forward one instruction
	stepRule func() bool
	postStep func()

	// the file the current program was loaded from
	loader string

	// command received from the gui while the emulation was running
	pending []string

	// printing styles
	styles styles
}

func newDebugger(ctx context, g *gui.GUI, term terminal) *debugger {
	m := &debugger{
		ctx:         ctx,
		g:           g,
		term:        term,
		sig:         make(chan os.Signal, 1),
		input:       make(chan input, 1),
		styles:      newStyles(),
		breakpoints: make(map[uint16]bool),
		watches:     make(map[uint16]watch),
	}
	m.ctx.Reset()
	m.console = hardware.Create(&m.ctx, g)
	return m
}

func (m *debugger) println(style lipgloss.Style, s string) {
	fmt.Fprintln(m.term, style.Render(s))
}

// load program from file. the previous program remains if the file cannot
// be loaded
func (m *debugger) load(filename string) {
	d, err := os.ReadFile(filename)
	if err != nil {
		m.println(m.styles.err, fmt.Sprintf("error loading %s: %s", filename, err.Error()))
		return
	}

	m.ctx.Reset()

	err = m.console.Load(d)
	if err != nil {
		m.println(m.styles.err, fmt.Sprintf("%s: %s", filepath.Base(filename), err.Error()))
		return
	}
	m.loader = filename

	m.println(m.styles.debugger, fmt.Sprintf("%d bytes loaded from %s", len(d), filepath.Base(filename)))
	m.println(m.styles.cpu, m.console.MC.String())
	m.console.PushRender()
}

func (m *debugger) reset() {
	m.ctx.Reset()

	err := m.console.Reset()
	if err != nil {
		m.println(m.styles.err, err.Error())
	} else {
		m.println(m.styles.debugger, "console reset")
	}

	m.println(m.styles.cpu, m.console.MC.String())
	m.console.PushRender()
}

func (m *debugger) record() {
	if m.console.MC.LastResult.Final {
		m.recent = append(m.recent, m.console.MC.LastResult)
		if len(m.recent) > maxRecentLen {
			m.recent = m.recent[1:]
		}
	}
}

// step advances the emulation on CPU instruction according to the current step
// the step rule will be reset after the step has completed. the pause key has
// no effect on stepping
//
// returns true if quit signal has been received
func (m *debugger) step() bool {
	defer func() {
		m.stepRule = nil
		m.postStep = nil
	}()

	// the number of instructions stepped over
	var ct int

	// loop until the step rule returns true
	var done bool
	for !done {
		select {
		case <-m.sig:
			done = true
			continue // for loop
		case <-m.guiQuit:
			return true
		default:
		}

		err := m.console.Step()
		if err != nil {
			m.println(m.styles.err, err.Error())
			return false
		}

		m.record()
		ct++

		// apply step rule
		if m.stepRule == nil {
			done = true
		} else {
			done = m.stepRule()
		}
	}

	m.console.PushRender()

	// report how many instructions were stepped if it is more than one
	if ct > 1 {
		m.println(m.styles.debugger, fmt.Sprintf("%d instructions stepped", ct))
	}

	if m.postStep == nil {
		// by default we print the general status of the emulation
		m.last()
		m.println(m.styles.cpu, m.console.MC.String())
		if s := m.console.Mem.LastAccess(); len(s) > 0 {
			m.println(m.styles.mem, s)
		}
	} else {
		m.postStep()
	}

	return false
}

func (m *debugger) printInstruction(res *disassembly.Entry) {
	m.println(m.styles.instruction, res.String())
}

func (m *debugger) last() {
	res := disassembly.FormatResult(m.console.MC.LastResult)
	m.printInstruction(res)
}

// the number of recent instructions to record
const maxRecentLen = 100

// returns true if quit signal has been received
func (m *debugger) run() bool {
	m.println(m.styles.debugger, "emulation running")

	// we measure the number of instructions in the time period of the running emulation
	var instructionCt int
	var startTime time.Time

	var (
		breakpointErr = errors.New("breakpoint")
		watchErr      = errors.New("watch")
		endRunErr     = errors.New("end run")
		quitErr       = errors.New("quit")
		commandErr    = errors.New("command")
	)

	// hook is called after every CPU instruction and once per frame while the
	// console is paused
	hook := func() error {
		select {
		case <-m.sig:
			return endRunErr
		case <-m.guiQuit:
			return quitErr
		case m.pending = <-m.g.Commands:
			return commandErr
		default:
		}

		if m.console.Paused() {
			return nil
		}

		m.record()
		instructionCt++

		pcAddr := m.console.MC.PC
		if _, ok := m.breakpoints[pcAddr]; ok {
			return fmt.Errorf("%w: $%04x", breakpointErr, pcAddr)
		}

		w, err := m.checkWatches()
		if err != nil {
			return err
		}
		if w != nil {
			return fmt.Errorf("%w: $%04x = %02x -> %02x", watchErr, w.address, w.prev, w.data)
		}

		return nil
	}

	startTime = time.Now()

	m.g.SendState(gui.StateRunning)
	err := m.console.Run(hook)
	m.g.SendState(gui.StatePaused)

	if errors.Is(err, quitErr) {
		return true
	}

	// commands from the gui are run and the emulation resumed
	if errors.Is(err, commandErr) {
		cmd := m.pending
		m.pending = nil
		if m.commands(cmd) {
			return true
		}
		return m.run()
	}

	m.console.PushRender()

	// output recent CPU instructons on end
	if len(m.recent) > 0 {
		m.println(m.styles.debugger, "most recent CPU instructions")
		n := max(len(m.recent)-10, 0)
		for _, e := range m.recent[n:] {
			m.printInstruction(disassembly.FormatResult(e))
		}
	}

	if errors.Is(err, endRunErr) {
		m.println(m.styles.debugger,
			fmt.Sprintf("%d instructions in %.02f seconds", instructionCt, time.Since(startTime).Seconds()),
		)
	} else if errors.Is(err, breakpointErr) {
		m.println(m.styles.breakpoint, err.Error())
	} else if errors.Is(err, watchErr) {
		m.println(m.styles.watch, err.Error())
	} else if err != nil {
		m.println(m.styles.err, err.Error())
	}

	// it's useful to see the state of the CPU at the end of the run
	m.println(m.styles.cpu, m.console.MC.String())

	// consume last memory access information
	_ = m.console.Mem.LastAccess()

	return false
}

func (m *debugger) prompt() string {
	var s strings.Builder
	fmt.Fprintf(&s, "%d $%04x", m.console.Frame, m.console.MC.PC)
	if m.console.Paused() {
		s.WriteString(" paused")
	}
	return s.String()
}

func (m *debugger) loop() {
	for {
		m.term.prompt(m.prompt())

		var cmd []string

		select {
		case input := <-m.input:
			if input.err != nil {
				if !errors.Is(input.err, io.EOF) {
					m.println(m.styles.err, input.err.Error())
				}
				return
			}
			cmd = strings.Fields(input.s)
			if len(cmd) == 0 {
				cmd = []string{"STEP"}
			}
		case cmd = <-m.g.Commands:
		case <-m.sig:
			return
		case <-m.guiQuit:
			return
		}

		if m.commands(cmd) {
			return
		}
	}
}
