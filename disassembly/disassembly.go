package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/testchip8/hardware/cpu/execution"
	"github.com/jetsetilly/testchip8/hardware/cpu/instructions"
)

// Entry is the disassembly of a single instruction
type Entry struct {
	// copy of the CPU execution. for entries created by Disassemble() only the
	// Address, Opcode, Defn and Instruction fields are set
	Result execution.Result

	// string representations of information in execution.Result
	Bytecode string
	Address  string
	Operator string
	Operand  string
}

func (e Entry) String() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s %-4s %s", e.Address, e.Bytecode, e.Operator, e.Operand))
}

// FormatResult creates an Entry for the execution result
func FormatResult(result execution.Result) *Entry {
	e := &Entry{
		Result: result,
	}

	e.Address = fmt.Sprintf("$%04x", result.Address)
	e.Bytecode = fmt.Sprintf("%02x %02x", result.Opcode>>8, result.Opcode&0x00ff)

	// if definition is nil then set the operator field to ??? and return with
	// no further formatting
	if result.Defn == nil {
		e.Operator = "???"
		return e
	}

	e.Operator = result.Defn.Operator.String()
	e.Operand = operand(result.Instruction, result.Defn.Syntax)

	return e
}

func operand(ins instructions.Instruction, syntax instructions.Syntax) string {
	switch syntax {
	case instructions.Implied:
		return ""
	case instructions.Address:
		return fmt.Sprintf("$%03X", ins.NNN)
	case instructions.RegByte:
		return fmt.Sprintf("V%X, $%02X", ins.X, ins.NN)
	case instructions.RegReg:
		return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)
	case instructions.Reg:
		return fmt.Sprintf("V%X", ins.X)
	case instructions.IndexAddress:
		return fmt.Sprintf("I, $%03X", ins.NNN)
	case instructions.V0Address:
		return fmt.Sprintf("V0, $%03X", ins.NNN)
	case instructions.RegRegNibble:
		return fmt.Sprintf("V%X, V%X, $%X", ins.X, ins.Y, ins.N)
	case instructions.RegDelay:
		return fmt.Sprintf("V%X, DT", ins.X)
	case instructions.RegKey:
		return fmt.Sprintf("V%X, K", ins.X)
	case instructions.DelayReg:
		return fmt.Sprintf("DT, V%X", ins.X)
	case instructions.SoundReg:
		return fmt.Sprintf("ST, V%X", ins.X)
	case instructions.IndexReg:
		return fmt.Sprintf("I, V%X", ins.X)
	case instructions.GlyphReg:
		return fmt.Sprintf("F, V%X", ins.X)
	case instructions.BCDReg:
		return fmt.Sprintf("B, V%X", ins.X)
	case instructions.IndirectReg:
		return fmt.Sprintf("[I], V%X", ins.X)
	case instructions.RegIndirect:
		return fmt.Sprintf("V%X, [I]", ins.X)
	}
	return "?"
}

// Memory is the address space as seen by the disassembler
type Memory interface {
	ReadWord(address uint16) (uint16, error)
}

// Disassemble count instructions starting at the address. The listing ends
// early if an address cannot be read
func Disassemble(mem Memory, address uint16, count int) []*Entry {
	var entries []*Entry
	for range count {
		w, err := mem.ReadWord(address)
		if err != nil {
			break
		}

		r := execution.Result{
			Address: address,
			Opcode:  w,
		}
		if ins, ok := instructions.Decode(w); ok {
			r.Defn = ins.Defn
			r.Instruction = ins
		}
		entries = append(entries, FormatResult(r))

		address += 2
	}
	return entries
}
