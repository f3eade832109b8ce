package debugger

import (
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/testchip8/hardware/cpu/execution"
	"github.com/jetsetilly/testchip8/logger"
)

// the parts of the CPU that are interesting to visualise. the CPU itself
// refers to the entire address space and the display
type cpuState struct {
	V     [16]uint8
	I     uint16
	PC    uint16
	Stack []uint16
	DT    uint8
	ST    uint8
	Last  execution.Result
}

func (m *debugger) memviz(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("memviz: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			logger.Log(logger.Allow, "memviz", err)
		}
	}()

	mc := m.console.MC
	state := &cpuState{
		V:     mc.V,
		I:     mc.I,
		PC:    mc.PC,
		Stack: mc.Stack,
		DT:    mc.DT,
		ST:    mc.ST,
		Last:  mc.LastResult,
	}
	memviz.Map(f, state)

	return nil
}
