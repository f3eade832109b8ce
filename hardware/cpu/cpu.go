package cpu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jetsetilly/testchip8/hardware/cpu/execution"
	"github.com/jetsetilly/testchip8/hardware/cpu/instructions"
	"github.com/jetsetilly/testchip8/hardware/memory"
	"github.com/jetsetilly/testchip8/hardware/spec"
	"github.com/jetsetilly/testchip8/logger"
)

// Sentinel errors returned by the CPU. Memory faults are returned as they are
// received from the Memory implementation
var (
	StackOverflow = errors.New("stack overflow")
)

// the flag register
const VF = 0x0f

// CPU is the execution engine of the machine
type CPU struct {
	ctx Context
	mem Memory
	dsp Display
	kp  Keypad

	V     [16]uint8
	I     uint16
	PC    uint16
	Stack []uint16

	// delay and sound timers
	DT uint8
	ST uint8

	// if CycleTimers is true then the timers are decremented before every
	// instruction rather than by calls to TickTimers() from the host
	CycleTimers bool

	// result of the most recent call to Step()
	LastResult execution.Result

	// buffer for sprite data during the draw instruction
	sprite [15]uint8
}

// NewCPU is the preferred method of initialisation for the CPU type
func NewCPU(ctx Context, mem Memory, dsp Display, kp Keypad) *CPU {
	mc := &CPU{
		ctx:   ctx,
		mem:   mem,
		dsp:   dsp,
		kp:    kp,
		Stack: make([]uint16, 0, spec.StackDepth),
	}
	mc.Reset()
	return mc
}

// Reset clears every register and sets the program counter to the program
// origin
func (mc *CPU) Reset() {
	clear(mc.V[:])
	mc.I = 0
	mc.PC = spec.ProgramOrigin
	mc.Stack = mc.Stack[:0]
	mc.DT = 0
	mc.ST = 0
	mc.LastResult.Reset()
}

func (mc *CPU) String() string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("PC=%04x I=%04x SP=%d DT=%02x ST=%02x\n", mc.PC, mc.I, len(mc.Stack), mc.DT, mc.ST))
	for i, v := range mc.V {
		s.WriteString(fmt.Sprintf("V%X=%02x ", i, v))
	}
	return strings.TrimSpace(s.String())
}

// TickTimers decrements the delay and sound timers. Neither goes below zero
func (mc *CPU) TickTimers() {
	if mc.DT > 0 {
		mc.DT--
	}
	if mc.ST > 0 {
		mc.ST--
	}
}

// SoundActive returns true while the sound timer is non-zero
func (mc *CPU) SoundActive() bool {
	return mc.ST > 0
}

// Step fetches, decodes and executes the instruction at the program counter.
//
// An instruction word that cannot be decoded is logged and skipped. It is not
// an error. Memory and stack faults are returned and the CPU should not be
// stepped further without intervention.
func (mc *CPU) Step() error {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC

	if mc.CycleTimers {
		mc.TickTimers()
	}

	word, err := mc.mem.ReadWord(mc.PC)
	if err != nil {
		return fmt.Errorf("cpu: fetch: %w", err)
	}
	mc.LastResult.Opcode = word

	ins, ok := instructions.Decode(word)
	if !ok {
		logger.Logf(logger.Allow, "cpu", "unrecognised opcode $%04x at $%04x", word, mc.PC)
		mc.PC += 2
		mc.LastResult.Final = true
		return nil
	}

	mc.LastResult.Defn = ins.Defn
	mc.LastResult.Instruction = ins

	err = mc.Execute(ins)
	if err != nil {
		return fmt.Errorf("cpu: %s at $%04x: %w", ins.Defn.Operator, mc.LastResult.Address, err)
	}
	mc.LastResult.Final = true

	return nil
}

// skip advances the program counter past the next instruction if the
// condition is true
func (mc *CPU) skip(cond bool) {
	if cond {
		mc.PC += 2
		mc.LastResult.Skipped = true
	}
}

// Execute a decoded instruction. The program counter is advanced by two unless
// the instruction sets it directly.
func (mc *CPU) Execute(ins instructions.Instruction) error {
	x := ins.X
	y := ins.Y

	// instructions that set the program counter do so themselves
	advance := !ins.Defn.Flow

	switch ins.Defn.Operator {
	case instructions.Cls:
		mc.dsp.Clear()

	case instructions.Ret:
		// a return with nothing on the stack is a no-op
		if len(mc.Stack) == 0 {
			logger.Logf(logger.Allow, "cpu", "return with empty stack at $%04x", mc.PC)
			mc.PC += 2
			break // switch
		}
		mc.PC = mc.Stack[len(mc.Stack)-1] + 2
		mc.Stack = mc.Stack[:len(mc.Stack)-1]

	case instructions.Jump:
		mc.PC = ins.NNN

	case instructions.Call:
		if len(mc.Stack) >= spec.StackDepth {
			return StackOverflow
		}
		mc.Stack = append(mc.Stack, mc.PC)
		mc.PC = ins.NNN

	case instructions.SkipEqImm:
		mc.skip(mc.V[x] == ins.NN)

	case instructions.SkipNeImm:
		mc.skip(mc.V[x] != ins.NN)

	case instructions.SkipEqReg:
		mc.skip(mc.V[x] == mc.V[y])

	case instructions.SkipNeReg:
		mc.skip(mc.V[x] != mc.V[y])

	case instructions.LoadImm:
		mc.V[x] = ins.NN

	case instructions.AddImm:
		// flag register is not affected
		mc.V[x] += ins.NN

	case instructions.Copy:
		mc.V[x] = mc.V[y]

	case instructions.Or:
		mc.V[x] |= mc.V[y]

	case instructions.And:
		mc.V[x] &= mc.V[y]

	case instructions.Xor:
		mc.V[x] ^= mc.V[y]

	case instructions.AddReg:
		sum := uint16(mc.V[x]) + uint16(mc.V[y])
		mc.V[x] = uint8(sum)
		mc.V[VF] = flag(sum > 0xff)

	// for Sub and the shifts the flag is written first. if the destination
	// is the flag register then the result wins
	case instructions.Sub:
		vx, vy := mc.V[x], mc.V[y]
		mc.V[VF] = flag(vx > vy)
		mc.V[x] = vx - vy

	case instructions.SubReverse:
		// flag polarity is the same as for Sub
		f := flag(mc.V[x] > mc.V[y])
		mc.V[x] = mc.V[y] - mc.V[x]
		mc.V[VF] = f

	case instructions.ShiftRight:
		mc.V[VF] = mc.V[y] & 0x01
		mc.V[x] = mc.V[y] >> 1

	case instructions.ShiftLeft:
		mc.V[VF] = mc.V[y] >> 7
		mc.V[x] = mc.V[y] << 1

	case instructions.LoadIndex:
		mc.I = ins.NNN

	case instructions.JumpIndexed:
		mc.PC = uint16(mc.V[0]) + ins.NNN

	case instructions.Random:
		mc.V[x] = mc.ctx.Rand8Bit() & ins.NN

	case instructions.Draw:
		rows := mc.sprite[:ins.N]
		for r := range rows {
			d, err := mc.mem.Read(mc.I + uint16(r))
			if err != nil {
				return err
			}
			rows[r] = d
		}
		mc.V[VF] = 0
		if mc.dsp.Draw(int(mc.V[x]), int(mc.V[y]), rows) {
			mc.V[VF] = 1
		}

	case instructions.SkipPressed:
		mc.skip(mc.kp.IsPressed(mc.V[x]))

	case instructions.SkipNotPressed:
		mc.skip(!mc.kp.IsPressed(mc.V[x]))

	case instructions.LoadDelay:
		mc.V[x] = mc.DT

	case instructions.WaitKey:
		// the same instruction is fetched again on the next step if the key
		// is not pressed
		if mc.kp.IsPressed(mc.V[x]) {
			mc.PC += 2
		} else {
			mc.LastResult.Blocked = true
		}

	case instructions.SetDelay:
		mc.DT = mc.V[x]

	case instructions.SetSound:
		mc.ST = mc.V[x]

	case instructions.AddIndex:
		mc.I += uint16(mc.V[x])

	case instructions.LoadGlyph:
		mc.I = memory.Glyph(mc.V[x])

	case instructions.StoreBCD:
		v := mc.V[x]
		err := mc.mem.Write(mc.I, v/100, (v/10)%10, v%10)
		if err != nil {
			return err
		}

	case instructions.StoreRegisters:
		err := mc.mem.Write(mc.I, mc.V[:x+1]...)
		if err != nil {
			return err
		}
		mc.I += uint16(x) + 1

	case instructions.LoadRegisters:
		var regs [16]uint8
		for r := range x + 1 {
			d, err := mc.mem.Read(mc.I + uint16(r))
			if err != nil {
				return err
			}
			regs[r] = d
		}
		copy(mc.V[:x+1], regs[:x+1])
		mc.I += uint16(x) + 1

	default:
		return fmt.Errorf("unimplemented operator: %v", ins.Defn)
	}

	if advance {
		mc.PC += 2
	}

	return nil
}

func flag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
