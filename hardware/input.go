package hardware

import (
	"github.com/jetsetilly/testchip8/logger"
)

// handleInput drains the input channel from the gui and forwards every event
// to each peripheral
func (con *Console) handleInput() {
	if con.g == nil {
		return
	}

	var drained bool
	for !drained {
		select {
		default:
			drained = true
		case inp := <-con.g.UserInput:
			for _, p := range con.peripherals {
				err := p.Update(inp)
				if err != nil {
					logger.Log(logger.Allow, "input", err)
				}
			}
		}
	}
}
