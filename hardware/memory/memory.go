package memory

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jetsetilly/testchip8/hardware/spec"
)

// Sentinel errors returned by the memory package
var (
	AccessFault     = errors.New("memory access fault")
	ProgramTooLarge = errors.New("program too large")
)

// Memory is the address space of the machine. The size is fixed and the font
// glyphs and program are loaded at construction
type Memory struct {
	data [spec.MemorySize]uint8

	// size of the most recently loaded program
	programSize int

	// description of the most recent write. consumed by LastAccess()
	last string
}

// Create a new address space with the font and program preloaded
func Create(program []uint8) (*Memory, error) {
	mem := &Memory{}
	err := mem.Load(program)
	if err != nil {
		return nil, err
	}
	return mem, nil
}

// Load clears the address space before copying the font glyphs and the
// program into place. The address space is unchanged if the program is too
// large
func (mem *Memory) Load(program []uint8) error {
	if len(program) > spec.MaxProgramSize {
		return fmt.Errorf("%w: %d bytes (maximum %d)", ProgramTooLarge, len(program), spec.MaxProgramSize)
	}
	clear(mem.data[:])
	copy(mem.data[spec.FontBase:], font[:])
	copy(mem.data[spec.ProgramOrigin:], program)
	mem.programSize = len(program)
	mem.last = ""
	return nil
}

// ProgramSize returns the number of bytes in the loaded program
func (mem *Memory) ProgramSize() int {
	return mem.programSize
}

// Label returns a short name for the address space
func (mem *Memory) Label() string {
	return "RAM"
}

// Size of the address space in bytes
func (mem *Memory) Size() int {
	return len(mem.data)
}

func (mem *Memory) check(address uint16, n int) error {
	if int(address)+n > len(mem.data) {
		if n == 1 {
			return fmt.Errorf("%w: $%04x", AccessFault, address)
		}
		return fmt.Errorf("%w: $%04x (%d bytes)", AccessFault, address, n)
	}
	return nil
}

// Read a single byte
func (mem *Memory) Read(address uint16) (uint8, error) {
	if err := mem.check(address, 1); err != nil {
		return 0, err
	}
	return mem.data[address], nil
}

// ReadWord reads the two bytes at the address as a big-endian word
func (mem *Memory) ReadWord(address uint16) (uint16, error) {
	if err := mem.check(address, 2); err != nil {
		return 0, err
	}
	return uint16(mem.data[address])<<8 | uint16(mem.data[address+1]), nil
}

// Write bytes to consecutive addresses starting at the address. Nothing is
// written if any of the addresses is outside the address space
func (mem *Memory) Write(address uint16, data ...uint8) error {
	if err := mem.check(address, len(data)); err != nil {
		return err
	}
	copy(mem.data[address:], data)
	mem.last = fmt.Sprintf("write $%04x = % 02x", address, data)
	return nil
}

// LastAccess returns a description of the most recent write. The description
// is only returned once
func (mem *Memory) LastAccess() string {
	s := mem.last
	mem.last = ""
	return s
}

// String returns a hex dump of the entire address space
func (mem *Memory) String() string {
	return mem.Dump(0, uint16(len(mem.data)-1))
}

// Dump returns a hex dump of the address range, inclusive. Lines are aligned
// to 16 byte boundaries
func (mem *Memory) Dump(from uint16, to uint16) string {
	if int(to) >= len(mem.data) {
		to = uint16(len(mem.data) - 1)
	}
	if from > to {
		return ""
	}

	var s strings.Builder
	for i := int(from) &^ 0x0f; i <= int(to); i += 16 {
		s.WriteString(fmt.Sprintf("%04x : % 02x\n", i, mem.data[i:i+16]))
	}
	return strings.TrimSuffix(s.String(), "\n")
}
