package instructions

// Operator identifies one form of the instruction set. Several operators
// share a mnemonic, for example SE is used for both the register/immediate and
// register/register comparisons.
type Operator int

// List of operators. The comment shows the encoding of the instruction word
const (
	Cls       Operator = iota // 00E0
	Ret                       // 00EE
	Jump                      // 1NNN
	Call                      // 2NNN
	SkipEqImm                 // 3XNN
	SkipNeImm                 // 4XNN
	SkipEqReg                 // 5XY0
	LoadImm                   // 6XNN
	AddImm                    // 7XNN
	Copy                      // 8XY0
	Or                        // 8XY1
	And                       // 8XY2
	Xor                       // 8XY3
	AddReg                    // 8XY4
	Sub                       // 8XY5
	ShiftRight                // 8XY6
	SubReverse                // 8XY7
	ShiftLeft                 // 8XYE
	SkipNeReg                 // 9XY0
	LoadIndex                 // ANNN
	JumpIndexed               // BNNN
	Random                    // CXNN
	Draw                      // DXYN
	SkipPressed               // EX9E
	SkipNotPressed            // EXA1
	LoadDelay                 // FX07
	WaitKey                   // FX0A
	SetDelay                  // FX15
	SetSound                  // FX18
	AddIndex                  // FX1E
	LoadGlyph                 // FX29
	StoreBCD                  // FX33
	StoreRegisters            // FX55
	LoadRegisters             // FX65

	numOperators
)

// NumOperators is the number of distinct instruction forms
const NumOperators = int(numOperators)

func (op Operator) String() string {
	switch op {
	case Cls:
		return "CLS"
	case Ret:
		return "RET"
	case Jump, JumpIndexed:
		return "JP"
	case Call:
		return "CALL"
	case SkipEqImm, SkipEqReg:
		return "SE"
	case SkipNeImm, SkipNeReg:
		return "SNE"
	case LoadImm, Copy, LoadIndex, LoadDelay, WaitKey, SetDelay, SetSound,
		LoadGlyph, StoreBCD, StoreRegisters, LoadRegisters:
		return "LD"
	case AddImm, AddReg, AddIndex:
		return "ADD"
	case Or:
		return "OR"
	case And:
		return "AND"
	case Xor:
		return "XOR"
	case Sub:
		return "SUB"
	case ShiftRight:
		return "SHR"
	case SubReverse:
		return "SUBN"
	case ShiftLeft:
		return "SHL"
	case Random:
		return "RND"
	case Draw:
		return "DRW"
	case SkipPressed:
		return "SKP"
	case SkipNotPressed:
		return "SKNP"
	}
	return "???"
}
