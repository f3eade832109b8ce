package debugger

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/jetsetilly/testchip8/disassembly"
	"github.com/jetsetilly/testchip8/hardware/spec"
	"github.com/jetsetilly/testchip8/logger"
)

const help = `LOAD <file>          load program and reset
R, RUN               run emulation until interrupted, a breakpoint or a watch
ST, STEP [rule]      step one instruction, or until rule: FRAME [n], DRAW, <mnemonic>
RESET                reset console and reload program
CPU                  show CPU registers
RECENT [n]           show most recent instructions
DISASM [addr] [n]    disassemble memory. default is from the program counter
DISPLAY              show display buffer
KEYPAD               show keypad state
KEY <n> [UP|DOWN]    press or release a key
RAM                  show entire address space
DUMP <from> <to>     show range of address space
PEEK <addr>          show single address
POKE <addr> <v>...   write one or more values to memory
BREAK <addr>|NEXT    add breakpoint. BREAK DROP <addr>|ALL to remove
WATCH <addr>         add watch. WATCH DROP <addr>|ALL to remove
LIST                 list breakpoints and watches
LOG [ECHO|NOECHO]    show log or echo new entries as they happen
MEMVIZ <file>        write graphviz description of CPU state to file
QUIT                 quit`

// returns true if debugger is to quit
func (m *debugger) commands(cmd []string) bool {
	if len(cmd) == 0 {
		return false
	}

	switch strings.ToUpper(cmd[0]) {
	case "LOAD":
		if len(cmd) < 2 {
			m.println(m.styles.err, "LOAD requires a filename")
			break // switch
		}
		m.load(cmd[1])

	case "R", "RUN":
		return m.run()

	case "ST", "STEP":
		if len(cmd) > 1 {
			if !m.parseStepRule(cmd[1:]) {
				break // switch
			}
		}
		return m.step()

	case "RESET":
		m.reset()

	case "CPU":
		m.println(m.styles.cpu, m.console.MC.String())

	case "RECENT":
		n := 10
		if len(cmd) == 2 {
			var err error
			n, err = strconv.Atoi(cmd[1])
			if err != nil {
				m.println(m.styles.err, fmt.Sprintf("cannot use RECENT %s", cmd[1]))
				break // switch
			}
		}
		n = max(len(m.recent)-n, 0)
		for _, e := range m.recent[n:] {
			m.printInstruction(disassembly.FormatResult(e))
		}

	case "DISASM":
		address := m.console.MC.PC
		n := 10
		if len(cmd) > 1 {
			var err error
			address, err = parseAddress(cmd[1])
			if err != nil {
				m.println(m.styles.err, fmt.Sprintf("disasm: %s", err.Error()))
				break // switch
			}
		}
		if len(cmd) > 2 {
			var err error
			n, err = strconv.Atoi(cmd[2])
			if err != nil || n < 1 {
				m.println(m.styles.err, fmt.Sprintf("disasm: cannot list %s instructions", cmd[2]))
				break // switch
			}
		}
		for _, e := range disassembly.Disassemble(m.console.Mem, address, n) {
			m.printInstruction(e)
		}

	case "DISPLAY":
		m.println(m.styles.display, m.console.Display.String())

	case "KEYPAD":
		m.printKeypad()

	case "KEY":
		if len(cmd) < 2 {
			m.println(m.styles.err, "KEY requires a key number")
			break // switch
		}

		k, err := strconv.ParseUint(cmd[1], 16, 8)
		if err != nil || k >= spec.NumKeys {
			m.println(m.styles.err, fmt.Sprintf("key is not valid: %s", cmd[1]))
			break // switch
		}

		pressed := true
		if len(cmd) > 2 {
			switch strings.ToUpper(cmd[2]) {
			case "DOWN":
			case "UP":
				pressed = false
			default:
				m.println(m.styles.err, fmt.Sprintf("unrecognised argument for KEY command: %s", cmd[2]))
				return false
			}
		}

		m.console.Keypad.Set(uint8(k), pressed)
		m.printKeypad()

	case "RAM":
		m.println(m.styles.debugger, fmt.Sprintf("%d bytes, program %d bytes at $%04x",
			m.console.Mem.Size(), m.console.Mem.ProgramSize(), spec.ProgramOrigin))
		m.println(m.styles.mem, m.console.Mem.String())

	case "DUMP":
		if len(cmd) < 3 {
			m.println(m.styles.err, "DUMP requires a 'from' and a 'to' address")
			break // switch
		}

		from, err := parseAddress(cmd[1])
		if err != nil {
			m.println(m.styles.err, fmt.Sprintf("dump: %s", err.Error()))
			break // switch
		}

		to, err := parseAddress(cmd[2])
		if err != nil {
			m.println(m.styles.err, fmt.Sprintf("dump: %s", err.Error()))
			break // switch
		}

		if to < from {
			m.println(m.styles.err, "dump: the 'to' address is less than the 'from' address")
			break // switch
		}

		m.println(m.styles.mem, m.console.Mem.Dump(from, to))

	case "PEEK":
		if len(cmd) < 2 {
			m.println(m.styles.err, "PEEK requires an address")
			break // switch
		}

		address, err := parseAddress(cmd[1])
		if err != nil {
			m.println(m.styles.err, fmt.Sprintf("peek: %s", err.Error()))
			break // switch
		}

		data, err := m.console.Mem.Read(address)
		if err != nil {
			m.println(m.styles.err, fmt.Sprintf("peek: %s", err.Error()))
			break // switch
		}

		m.println(m.styles.mem, fmt.Sprintf("$%04x = %02x (%s)", address, data, m.console.Mem.Label()))

	case "POKE":
		if len(cmd) < 3 {
			m.println(m.styles.err, "POKE requires an address and at least one value")
			break // switch
		}

		address, err := parseAddress(cmd[1])
		if err != nil {
			m.println(m.styles.err, fmt.Sprintf("poke: %s", err.Error()))
			break // switch
		}

		var data []uint8
		for _, s := range cmd[2:] {
			v, err := parseValue(s)
			if err != nil {
				m.println(m.styles.err, fmt.Sprintf("poke: %s", err.Error()))
				return false
			}
			data = append(data, v)
		}

		err = m.console.Mem.Write(address, data...)
		if err != nil {
			m.println(m.styles.err, fmt.Sprintf("poke: %s", err.Error()))
			break // switch
		}

		m.println(m.styles.mem, m.console.Mem.LastAccess())

	case "BREAK":
		if len(cmd) < 2 {
			m.println(m.styles.err, "BREAK requires an address")
			break // switch
		}

		// we check the first argument for special keywords before assuming
		// it is an address. the keywords are case insensitive
		arg := strings.ToUpper(cmd[1])

		if arg == "DROP" {
			if len(cmd) < 3 {
				m.println(m.styles.err, "BREAK DROP requires an address")
				break // switch
			}

			if strings.ToUpper(cmd[2]) == "ALL" {
				clear(m.breakpoints)
				m.println(m.styles.debugger, "all breakpoints have been removed")
				break // switch
			}

			address, err := parseAddress(cmd[2])
			if err != nil {
				m.println(m.styles.err, fmt.Sprintf("breakpoint: %s", err.Error()))
				break // switch
			}
			if _, ok := m.breakpoints[address]; !ok {
				m.println(m.styles.debugger, fmt.Sprintf("breakpoint for $%04x not present", address))
				break // switch
			}
			delete(m.breakpoints, address)
			m.println(m.styles.debugger, fmt.Sprintf("breakpoint $%04x has been removed", address))
			break // switch
		}

		// the NEXT argument sets a breakpoint on the instruction following
		// the next instruction. this is the instruction that is reached if a
		// conditional skip is taken
		if arg == "NEXT" {
			cmd[1] = fmt.Sprintf("%#04x", m.console.MC.PC+2)
		}

		address, err := parseAddress(cmd[1])
		if err != nil {
			m.println(m.styles.err, fmt.Sprintf("breakpoint: %s", err.Error()))
			break // switch
		}

		if _, ok := m.breakpoints[address]; ok {
			m.println(m.styles.debugger, fmt.Sprintf("breakpoint on $%04x already present", address))
			break // switch
		}

		m.breakpoints[address] = true
		m.println(m.styles.debugger, fmt.Sprintf("added breakpoint for $%04x", address))

	case "WATCH":
		if len(cmd) < 2 {
			m.println(m.styles.err, "WATCH requires an address")
			break // switch
		}

		arg := strings.ToUpper(cmd[1])

		if arg == "DROP" {
			if len(cmd) < 3 {
				m.println(m.styles.err, "WATCH DROP requires an address")
				break // switch
			}

			if strings.ToUpper(cmd[2]) == "ALL" {
				clear(m.watches)
				m.println(m.styles.debugger, "all watches have been removed")
				break // switch
			}

			address, err := parseAddress(cmd[2])
			if err != nil {
				m.println(m.styles.err, fmt.Sprintf("watch: %s", err.Error()))
				break // switch
			}
			if _, ok := m.watches[address]; !ok {
				m.println(m.styles.debugger, fmt.Sprintf("watch for $%04x not present", address))
				break // switch
			}
			delete(m.watches, address)
			m.println(m.styles.debugger, fmt.Sprintf("watch $%04x has been removed", address))
			break // switch
		}

		address, err := parseAddress(cmd[1])
		if err != nil {
			m.println(m.styles.err, fmt.Sprintf("watch: %s", err.Error()))
			break // switch
		}

		if _, ok := m.watches[address]; ok {
			m.println(m.styles.err, fmt.Sprintf("watch for $%04x already present", address))
			break // switch
		}

		d, err := m.console.Mem.Read(address)
		if err != nil {
			m.println(m.styles.err, fmt.Sprintf("watch: %s", err.Error()))
			break // switch
		}

		m.watches[address] = watch{
			address: address,
			data:    d,
		}
		m.println(m.styles.debugger, fmt.Sprintf("added watch for $%04x", address))

	case "LIST":
		m.println(m.styles.debugger, "breakpoints")
		if len(m.breakpoints) == 0 {
			fmt.Fprintln(m.term, "none")
		} else {
			for _, a := range slices.Sorted(maps.Keys(m.breakpoints)) {
				fmt.Fprintf(m.term, "$%04x\n", a)
			}
		}
		m.println(m.styles.debugger, "watches")
		if len(m.watches) == 0 {
			fmt.Fprintln(m.term, "none")
		} else {
			for _, a := range slices.Sorted(maps.Keys(m.watches)) {
				fmt.Fprintf(m.term, "$%04x = %02x\n", a, m.watches[a].data)
			}
		}

	case "LOG":
		switch len(cmd) {
		case 1:
			logger.Tail(m.term, -1)
		case 2:
			switch strings.ToUpper(cmd[1]) {
			case "ECHO":
				logger.SetEcho(m.term, false)
			case "NOECHO":
				logger.SetEcho(nil, false)
			default:
				m.println(m.styles.err, fmt.Sprintf("unrecognised argument for LOG command: %s", cmd[1]))
			}
		default:
			m.println(m.styles.err, "too many arguments to LOG command")
		}

	case "MEMVIZ":
		if len(cmd) < 2 {
			m.println(m.styles.err, "MEMVIZ requires a filename")
			break // switch
		}
		err := m.memviz(cmd[1])
		if err != nil {
			m.println(m.styles.err, err.Error())
			break // switch
		}
		m.println(m.styles.debugger, fmt.Sprintf("CPU state written to %s", cmd[1]))

	case "HELP":
		fmt.Fprintln(m.term, help)

	case "QUIT":
		return true

	default:
		m.println(m.styles.err, fmt.Sprintf("unrecognised command: %s", strings.Join(cmd, " ")))
	}

	return false
}

func (m *debugger) printKeypad() {
	m.println(m.styles.debugger, m.console.Keypad.String())
	if k, ok := m.console.Keypad.Pressed(); ok {
		m.println(m.styles.debugger, fmt.Sprintf("lowest pressed key: %X", k))
	} else {
		m.println(m.styles.debugger, "no key pressed")
	}
}
