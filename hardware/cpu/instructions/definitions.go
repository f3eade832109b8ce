package instructions

import "fmt"

// Syntax describes which operand fields an instruction uses and how they are
// written in assembly
type Syntax int

// List of operand syntaxes
const (
	Implied       Syntax = iota // CLS
	Address                     // JP $NNN
	RegByte                     // SE VX, $NN
	RegReg                      // OR VX, VY
	Reg                         // SKP VX
	IndexAddress                // LD I, $NNN
	V0Address                   // JP V0, $NNN
	RegRegNibble                // DRW VX, VY, $N
	RegDelay                    // LD VX, DT
	RegKey                      // LD VX, K
	DelayReg                    // LD DT, VX
	SoundReg                    // LD ST, VX
	IndexReg                    // ADD I, VX
	GlyphReg                    // LD F, VX
	BCDReg                      // LD B, VX
	IndirectReg                 // LD [I], VX
	RegIndirect                 // LD VX, [I]
)

// Definition describes one form of the instruction set
type Definition struct {
	Operator Operator

	// the encoding of the instruction. fixed nibbles are shown as hex digits
	// and operand nibbles with the letters N, X and Y
	Pattern string

	Syntax Syntax

	// control flow is set by the instruction and the default program counter
	// advance does not apply
	Flow bool
}

func (defn Definition) String() string {
	return fmt.Sprintf("%s %s", defn.Pattern, defn.Operator)
}

// Definitions is indexed by Operator
var Definitions = [NumOperators]Definition{
	Cls:            {Operator: Cls, Pattern: "00E0", Syntax: Implied},
	Ret:            {Operator: Ret, Pattern: "00EE", Syntax: Implied, Flow: true},
	Jump:           {Operator: Jump, Pattern: "1NNN", Syntax: Address, Flow: true},
	Call:           {Operator: Call, Pattern: "2NNN", Syntax: Address, Flow: true},
	SkipEqImm:      {Operator: SkipEqImm, Pattern: "3XNN", Syntax: RegByte},
	SkipNeImm:      {Operator: SkipNeImm, Pattern: "4XNN", Syntax: RegByte},
	SkipEqReg:      {Operator: SkipEqReg, Pattern: "5XY0", Syntax: RegReg},
	LoadImm:        {Operator: LoadImm, Pattern: "6XNN", Syntax: RegByte},
	AddImm:         {Operator: AddImm, Pattern: "7XNN", Syntax: RegByte},
	Copy:           {Operator: Copy, Pattern: "8XY0", Syntax: RegReg},
	Or:             {Operator: Or, Pattern: "8XY1", Syntax: RegReg},
	And:            {Operator: And, Pattern: "8XY2", Syntax: RegReg},
	Xor:            {Operator: Xor, Pattern: "8XY3", Syntax: RegReg},
	AddReg:         {Operator: AddReg, Pattern: "8XY4", Syntax: RegReg},
	Sub:            {Operator: Sub, Pattern: "8XY5", Syntax: RegReg},
	ShiftRight:     {Operator: ShiftRight, Pattern: "8XY6", Syntax: RegReg},
	SubReverse:     {Operator: SubReverse, Pattern: "8XY7", Syntax: RegReg},
	ShiftLeft:      {Operator: ShiftLeft, Pattern: "8XYE", Syntax: RegReg},
	SkipNeReg:      {Operator: SkipNeReg, Pattern: "9XY0", Syntax: RegReg},
	LoadIndex:      {Operator: LoadIndex, Pattern: "ANNN", Syntax: IndexAddress},
	JumpIndexed:    {Operator: JumpIndexed, Pattern: "BNNN", Syntax: V0Address, Flow: true},
	Random:         {Operator: Random, Pattern: "CXNN", Syntax: RegByte},
	Draw:           {Operator: Draw, Pattern: "DXYN", Syntax: RegRegNibble},
	SkipPressed:    {Operator: SkipPressed, Pattern: "EX9E", Syntax: Reg},
	SkipNotPressed: {Operator: SkipNotPressed, Pattern: "EXA1", Syntax: Reg},
	LoadDelay:      {Operator: LoadDelay, Pattern: "FX07", Syntax: RegDelay},
	WaitKey:        {Operator: WaitKey, Pattern: "FX0A", Syntax: RegKey, Flow: true},
	SetDelay:       {Operator: SetDelay, Pattern: "FX15", Syntax: DelayReg},
	SetSound:       {Operator: SetSound, Pattern: "FX18", Syntax: SoundReg},
	AddIndex:       {Operator: AddIndex, Pattern: "FX1E", Syntax: IndexReg},
	LoadGlyph:      {Operator: LoadGlyph, Pattern: "FX29", Syntax: GlyphReg},
	StoreBCD:       {Operator: StoreBCD, Pattern: "FX33", Syntax: BCDReg},
	StoreRegisters: {Operator: StoreRegisters, Pattern: "FX55", Syntax: IndirectReg},
	LoadRegisters:  {Operator: LoadRegisters, Pattern: "FX65", Syntax: RegIndirect},
}

// IsMnemonic returns true if the string is the mnemonic of at least one
// operator. The comparison is case sensitive and mnemonics are upper case
func IsMnemonic(s string) bool {
	for _, d := range Definitions {
		if d.Operator.String() == s {
			return true
		}
	}
	return false
}
