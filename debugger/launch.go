package debugger

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jetsetilly/testchip8/gui"
	"github.com/jetsetilly/testchip8/hardware/spec"
	"github.com/jetsetilly/testchip8/logger"
	"github.com/jetsetilly/testchip8/statsview"
	"github.com/jetsetilly/testchip8/version"
)

const programName = "testchip8"

func Launch(guiQuit chan bool, g *gui.GUI, args []string) error {
	var program string
	var timers string
	var scale int
	var profile bool
	var stats bool
	var echo bool
	var runNow bool
	var useTUI bool
	var seed uint64

	cycles := spec.InstructionRate

	flgs := flag.NewFlagSet(programName, flag.ExitOnError)
	flgs.Var(&cycles, "cycles", "number of instructions per second. eg. 500Hz or 1KHz")
	flgs.StringVar(&timers, "timers", "60HZ", "decrement timers at 60HZ or once every CYCLE")
	flgs.IntVar(&scale, "scale", spec.Scale, "size of each display pixel in the window")
	flgs.BoolVar(&profile, "profile", false, "create CPU profile for emulator")
	flgs.BoolVar(&stats, "statsview", false, "launch statsview server (if available in the build)")
	flgs.BoolVar(&echo, "echo", false, "echo new log entries to the terminal")
	flgs.BoolVar(&runNow, "run", false, "run the emulation immediately")
	flgs.BoolVar(&useTUI, "tui", true, "use the full screen terminal interface")
	flgs.Uint64Var(&seed, "seed", 0, "seed for the random number generator. zero for a random seed")
	err := flgs.Parse(args)
	if err != nil {
		return err
	}
	args = flgs.Args()

	if len(args) == 1 {
		program = args[0]
	} else if len(args) > 1 {
		return fmt.Errorf("too many arguments to debugger")
	}

	var sp spec.Spec
	switch strings.ToUpper(timers) {
	case "60HZ":
		sp = spec.Default
	case "CYCLE":
		sp = spec.Legacy
	default:
		return fmt.Errorf("unrecognised timer rule: %s", timers)
	}
	sp.InstructionRate = cycles

	if scale < 1 {
		return fmt.Errorf("scale must be at least one: %d", scale)
	}
	g.Setup <- gui.Setup{Scale: scale}

	ctx := context{
		spec: sp,
		seed: seed,
	}

	m := newDebugger(ctx, g, nil)
	m.guiQuit = guiQuit

	var p *tea.Program
	if useTUI {
		p = tea.NewProgram(newModel(m.input, m.sig, m.styles), tea.WithAltScreen())
		m.term = teaTerminal{p: p}
	} else {
		m.term = plainTerminal{Writer: os.Stdout, styles: m.styles}

		signal.Notify(m.sig, os.Interrupt)

		go func() {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				m.input <- input{s: strings.TrimSpace(scanner.Text())}
			}
			err := scanner.Err()
			if err == nil {
				err = io.EOF
			}
			m.input <- input{err: err}
		}()
	}

	if echo {
		logger.SetEcho(m.term, false)
	}

	if profile {
		f, err := os.Create("cpu.profile")
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer func() {
			err := f.Close()
			if err != nil {
				logger.Log(logger.Allow, "performance", err)
			}
		}()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	session := func() {
		fmt.Fprintln(m.term, version.Banner())

		if stats {
			if statsview.Available() {
				statsview.Launch(m.term)
			} else {
				m.println(m.styles.err, "statsview is not available in this build")
			}
		}

		if program != "" {
			m.load(program)
		} else {
			m.reset()
		}

		if runNow && m.run() {
			return
		}

		m.loop()
	}

	if p == nil {
		session()
		return nil
	}

	go func() {
		session()
		p.Quit()
	}()

	_, err = p.Run()
	return err
}
