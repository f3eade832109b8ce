package cpu

// Memory is the address space as seen by the CPU
type Memory interface {
	Read(address uint16) (uint8, error)
	ReadWord(address uint16) (uint16, error)
	Write(address uint16, data ...uint8) error
}

// Display is the pixel grid as seen by the CPU
type Display interface {
	Clear()
	Draw(x int, y int, rows []uint8) bool
}

// Keypad is the key state as seen by the CPU
type Keypad interface {
	IsPressed(key uint8) bool
}

// Context supplies the CPU with random numbers
type Context interface {
	Rand8Bit() uint8
}
