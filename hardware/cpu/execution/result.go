package execution

import (
	"fmt"

	"github.com/jetsetilly/testchip8/hardware/cpu/instructions"
)

// Result records the execution of a single instruction
type Result struct {
	// address the instruction was fetched from
	Address uint16

	// the instruction word
	Opcode uint16

	// the definition is nil if the instruction word was not recognised
	Defn *instructions.Definition

	// the decoded instruction. operand fields are valid only if Defn is not
	// nil
	Instruction instructions.Instruction

	// a conditional skip was taken
	Skipped bool

	// a wait-for-key instruction did not advance the program counter
	Blocked bool

	// the instruction completed without fault
	Final bool
}

// Reset the result to its zero state
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("$%04x %04x ???", r.Address, r.Opcode)
	}

	var s string
	if r.Skipped {
		s = " (skipped)"
	} else if r.Blocked {
		s = " (blocked)"
	}
	return fmt.Sprintf("$%04x %04x %s%s", r.Address, r.Opcode, r.Defn.Operator, s)
}
