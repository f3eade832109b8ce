package instructions

// Instruction is a decoded instruction word with its operand fields extracted
type Instruction struct {
	Defn *Definition

	// the undecoded instruction word
	Opcode uint16

	// operand fields. only those named by the syntax of the definition are
	// meaningful but all are extracted
	X   uint8
	Y   uint8
	N   uint8
	NN  uint8
	NNN uint16
}

// Operator returns the operator of the instruction
func (ins Instruction) Operator() Operator {
	return ins.Defn.Operator
}

// Decode the instruction word. Returns false if the word does not match any
// form of the instruction set
func Decode(word uint16) (Instruction, bool) {
	ins := Instruction{
		Opcode: word,
		X:      uint8(word>>8) & 0x0f,
		Y:      uint8(word>>4) & 0x0f,
		N:      uint8(word) & 0x0f,
		NN:     uint8(word),
		NNN:    word & 0x0fff,
	}

	op, ok := operator(word, ins.N, ins.NN)
	if !ok {
		return Instruction{Opcode: word}, false
	}
	ins.Defn = &Definitions[op]

	return ins, true
}

func operator(word uint16, n uint8, nn uint8) (Operator, bool) {
	switch word >> 12 {
	case 0x0:
		// the second nibble is not part of the encoding
		switch nn {
		case 0xe0:
			return Cls, true
		case 0xee:
			return Ret, true
		}
	case 0x1:
		return Jump, true
	case 0x2:
		return Call, true
	case 0x3:
		return SkipEqImm, true
	case 0x4:
		return SkipNeImm, true
	case 0x5:
		return SkipEqReg, true
	case 0x6:
		return LoadImm, true
	case 0x7:
		return AddImm, true
	case 0x8:
		switch n {
		case 0x0:
			return Copy, true
		case 0x1:
			return Or, true
		case 0x2:
			return And, true
		case 0x3:
			return Xor, true
		case 0x4:
			return AddReg, true
		case 0x5:
			return Sub, true
		case 0x6:
			return ShiftRight, true
		case 0x7:
			return SubReverse, true
		case 0xe:
			return ShiftLeft, true
		}
	case 0x9:
		return SkipNeReg, true
	case 0xa:
		return LoadIndex, true
	case 0xb:
		return JumpIndexed, true
	case 0xc:
		return Random, true
	case 0xd:
		return Draw, true
	case 0xe:
		switch nn {
		case 0x9e:
			return SkipPressed, true
		case 0xa1:
			return SkipNotPressed, true
		}
	case 0xf:
		switch nn {
		case 0x07:
			return LoadDelay, true
		case 0x0a:
			return WaitKey, true
		case 0x15:
			return SetDelay, true
		case 0x18:
			return SetSound, true
		case 0x1e:
			return AddIndex, true
		case 0x29:
			return LoadGlyph, true
		case 0x33:
			return StoreBCD, true
		case 0x55:
			return StoreRegisters, true
		case 0x65:
			return LoadRegisters, true
		}
	}

	return 0, false
}
