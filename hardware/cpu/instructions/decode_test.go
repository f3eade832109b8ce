package instructions_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/testchip8/hardware/cpu/instructions"
	"github.com/jetsetilly/testchip8/test"
)

func TestDecodeForms(t *testing.T) {
	type form struct {
		word uint16
		op   instructions.Operator
		x    uint8
		y    uint8
		n    uint8
		nn   uint8
		nnn  uint16
	}

	forms := []form{
		{word: 0x00e0, op: instructions.Cls},
		{word: 0x00ee, op: instructions.Ret},
		{word: 0x1abc, op: instructions.Jump, nnn: 0xabc},
		{word: 0x2def, op: instructions.Call, nnn: 0xdef},
		{word: 0x3a12, op: instructions.SkipEqImm, x: 0xa, nn: 0x12},
		{word: 0x4b34, op: instructions.SkipNeImm, x: 0xb, nn: 0x34},
		{word: 0x5120, op: instructions.SkipEqReg, x: 0x1, y: 0x2},
		{word: 0x6c56, op: instructions.LoadImm, x: 0xc, nn: 0x56},
		{word: 0x7d78, op: instructions.AddImm, x: 0xd, nn: 0x78},
		{word: 0x8340, op: instructions.Copy, x: 0x3, y: 0x4},
		{word: 0x8341, op: instructions.Or, x: 0x3, y: 0x4},
		{word: 0x8342, op: instructions.And, x: 0x3, y: 0x4},
		{word: 0x8343, op: instructions.Xor, x: 0x3, y: 0x4},
		{word: 0x8344, op: instructions.AddReg, x: 0x3, y: 0x4},
		{word: 0x8345, op: instructions.Sub, x: 0x3, y: 0x4},
		{word: 0x8346, op: instructions.ShiftRight, x: 0x3, y: 0x4},
		{word: 0x8347, op: instructions.SubReverse, x: 0x3, y: 0x4},
		{word: 0x834e, op: instructions.ShiftLeft, x: 0x3, y: 0x4},
		{word: 0x9560, op: instructions.SkipNeReg, x: 0x5, y: 0x6},
		{word: 0xa123, op: instructions.LoadIndex, nnn: 0x123},
		{word: 0xb456, op: instructions.JumpIndexed, nnn: 0x456},
		{word: 0xc7f0, op: instructions.Random, x: 0x7, nn: 0xf0},
		{word: 0xd125, op: instructions.Draw, x: 0x1, y: 0x2, n: 0x5},
		{word: 0xe89e, op: instructions.SkipPressed, x: 0x8},
		{word: 0xe9a1, op: instructions.SkipNotPressed, x: 0x9},
		{word: 0xf107, op: instructions.LoadDelay, x: 0x1},
		{word: 0xf20a, op: instructions.WaitKey, x: 0x2},
		{word: 0xf315, op: instructions.SetDelay, x: 0x3},
		{word: 0xf418, op: instructions.SetSound, x: 0x4},
		{word: 0xf51e, op: instructions.AddIndex, x: 0x5},
		{word: 0xf629, op: instructions.LoadGlyph, x: 0x6},
		{word: 0xf733, op: instructions.StoreBCD, x: 0x7},
		{word: 0xf855, op: instructions.StoreRegisters, x: 0x8},
		{word: 0xf965, op: instructions.LoadRegisters, x: 0x9},
	}

	// every operator is covered exactly once
	test.DemandEquality(t, len(forms), instructions.NumOperators)
	seen := make(map[instructions.Operator]bool)

	for _, f := range forms {
		tag := fmt.Sprintf("%04x", f.word)

		ins, ok := instructions.Decode(f.word)
		test.DemandSuccess(t, ok, tag)
		test.ExpectEquality(t, ins.Operator(), f.op, tag)
		test.ExpectEquality(t, ins.Opcode, f.word, tag)
		test.ExpectEquality(t, ins.Defn.Operator, f.op, tag)

		switch ins.Defn.Syntax {
		case instructions.Address, instructions.IndexAddress, instructions.V0Address:
			test.ExpectEquality(t, ins.NNN, f.nnn, tag)
		case instructions.RegByte:
			test.ExpectEquality(t, ins.X, f.x, tag)
			test.ExpectEquality(t, ins.NN, f.nn, tag)
		case instructions.RegReg:
			test.ExpectEquality(t, ins.X, f.x, tag)
			test.ExpectEquality(t, ins.Y, f.y, tag)
		case instructions.RegRegNibble:
			test.ExpectEquality(t, ins.X, f.x, tag)
			test.ExpectEquality(t, ins.Y, f.y, tag)
			test.ExpectEquality(t, ins.N, f.n, tag)
		case instructions.Implied:
		default:
			test.ExpectEquality(t, ins.X, f.x, tag)
		}

		test.ExpectFailure(t, seen[f.op], tag)
		seen[f.op] = true
	}
}

func TestDecodeRegisterFromSecondNibble(t *testing.T) {
	// the register operand of the immediate comparison is in the second
	// nibble, not the third
	ins, ok := instructions.Decode(0x3a5b)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, ins.X, uint8(0xa))
	test.ExpectEquality(t, ins.NN, uint8(0x5b))
}

func TestDecodeSystemLowByte(t *testing.T) {
	// clear and return are identified by the low byte only
	ins, ok := instructions.Decode(0x03e0)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, ins.Operator(), instructions.Cls)

	ins, ok = instructions.Decode(0x0aee)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, ins.Operator(), instructions.Ret)
}

func TestDecodeMiss(t *testing.T) {
	misses := []uint16{
		0x0000, 0x0123, 0x00e1, 0x00ef, 0x0fff,
		0x8008, 0x8009, 0x800a, 0x800b, 0x800c, 0x800d, 0x800f,
		0xe000, 0xe09f, 0xe0a0, 0xe0ff,
		0xf000, 0xf008, 0xf019, 0xf030, 0xf056, 0xf066, 0xf0ff,
	}

	for _, w := range misses {
		ins, ok := instructions.Decode(w)
		test.ExpectFailure(t, ok, fmt.Sprintf("%04x", w))
		test.ExpectEquality(t, ins.Defn == nil, true, fmt.Sprintf("%04x", w))
		test.ExpectEquality(t, ins.Opcode, w)
	}
}

func TestDecodeExhaustive(t *testing.T) {
	// count of words in each high nibble that decode successfully
	expected := [16]int{
		0x0: 2 * 16,
		0x1: 4096, 0x2: 4096, 0x3: 4096, 0x4: 4096,
		0x5: 4096, 0x6: 4096, 0x7: 4096,
		0x8: 9 * 256,
		0x9: 4096, 0xa: 4096, 0xb: 4096, 0xc: 4096, 0xd: 4096,
		0xe: 2 * 16,
		0xf: 9 * 16,
	}

	var counts [16]int
	for w := range 0x10000 {
		if _, ok := instructions.Decode(uint16(w)); ok {
			counts[w>>12]++
		}
	}

	for i := range counts {
		test.ExpectEquality(t, counts[i], expected[i], fmt.Sprintf("%x nibble", i))
	}
}

func TestMnemonics(t *testing.T) {
	test.ExpectEquality(t, instructions.SkipEqImm.String(), "SE")
	test.ExpectEquality(t, instructions.SkipEqReg.String(), "SE")
	test.ExpectEquality(t, instructions.SubReverse.String(), "SUBN")
	test.ExpectEquality(t, instructions.StoreRegisters.String(), "LD")
	test.ExpectEquality(t, instructions.Operator(-1).String(), "???")

	test.ExpectSuccess(t, instructions.IsMnemonic("DRW"))
	test.ExpectSuccess(t, instructions.IsMnemonic("SKNP"))
	test.ExpectFailure(t, instructions.IsMnemonic("drw"))
	test.ExpectFailure(t, instructions.IsMnemonic("NOP"))

	for _, d := range instructions.Definitions {
		test.ExpectInequality(t, d.Operator.String(), "???")
	}
}

func TestFlowDefinitions(t *testing.T) {
	flow := map[instructions.Operator]bool{
		instructions.Ret:         true,
		instructions.Jump:        true,
		instructions.Call:        true,
		instructions.JumpIndexed: true,
		instructions.WaitKey:     true,
	}

	for _, d := range instructions.Definitions {
		test.ExpectEquality(t, d.Flow, flow[d.Operator], d.Operator.String())
	}
}
