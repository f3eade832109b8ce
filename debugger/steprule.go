package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/testchip8/hardware/cpu/instructions"
)

func (m *debugger) parseStepRule(cmd []string) bool {
	rule := strings.ToUpper(cmd[0])

	if rule == "FRAME" || rule == "FR" {
		var tgt int
		if len(cmd) > 1 {
			var err error
			tgt, err = strconv.Atoi(cmd[1])
			if err != nil {
				m.println(m.styles.err, err.Error())
				return false
			}
			if tgt <= m.console.Frame {
				m.println(m.styles.err, fmt.Sprintf("FRAME %d is in the past", tgt))
				return false
			}
		} else {
			tgt = m.console.Frame + 1
		}
		m.stepRule = func() bool {
			return m.console.Frame >= tgt
		}
		m.postStep = func() {
			m.println(m.styles.display, m.console.Display.String())
			m.println(m.styles.cpu, m.console.MC.String())
		}
		return true
	}

	if rule == "DRAW" {
		// step until the display changes
		serial := m.console.Display.Serial()
		m.stepRule = func() bool {
			return serial != m.console.Display.Serial()
		}
		m.postStep = func() {
			m.println(m.styles.display, m.console.Display.String())
		}
		return true
	}

	// check if rule is the mnemonic of an operator
	if !instructions.IsMnemonic(rule) {
		m.println(m.styles.err, fmt.Sprintf("STEP %s is unsupported", rule))
		return false
	}
	m.stepRule = func() bool {
		defn := m.console.MC.LastResult.Defn
		return defn != nil && defn.Operator.String() == rule
	}

	return true
}
