package debugger

import (
	"fmt"
)

type watch struct {
	address uint16
	data    uint8
	prev    uint8
}

func (m *debugger) checkWatches() (*watch, error) {
	for a, w := range m.watches {
		d, err := m.console.Mem.Read(a)
		if err != nil {
			return nil, fmt.Errorf("watch: %w", err)
		}
		if d != w.data {
			w.prev = w.data
			w.data = d
			m.watches[a] = w
			return &w, nil
		}
	}
	return nil, nil
}
