package cpu_test

import (
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jetsetilly/testchip8/hardware/cpu"
	"github.com/jetsetilly/testchip8/hardware/cpu/instructions"
	"github.com/jetsetilly/testchip8/hardware/memory"
	"github.com/jetsetilly/testchip8/hardware/spec"
	"github.com/jetsetilly/testchip8/logger"
)

var _ = Describe("CPU", func() {
	var m *machine

	Describe("reset state", func() {
		BeforeEach(func() {
			m = newMachine()
		})

		It("should start at the program origin", func() {
			Expect(m.mc.PC).To(Equal(uint16(spec.ProgramOrigin)))
			Expect(m.mc.I).To(BeZero())
			Expect(m.mc.Stack).To(BeEmpty())
			Expect(m.mc.V).To(Equal([16]uint8{}))
		})

		It("should describe the registers", func() {
			Expect(m.mc.String()).To(HavePrefix("PC=0200 I=0000 SP=0 DT=00 ST=00"))
			Expect(m.mc.String()).To(HaveSuffix("VF=00"))
		})
	})

	Describe("simple program", func() {
		It("should leave V0 equal to 8 and the display cleared", func() {
			m = newMachine(0x00e0, 0x6005, 0x7003)
			m.dsp.Draw(0, 0, []uint8{0xff})

			Expect(m.step(3)).To(Succeed())
			Expect(m.mc.V[0]).To(Equal(uint8(8)))
			Expect(m.dsp.Lit()).To(BeZero())
			Expect(m.mc.PC).To(Equal(at(3)))
		})
	})

	Describe("immediate instructions", func() {
		It("should add without affecting the flag register", func() {
			m = newMachine(0x6aff, 0x7a02)
			Expect(m.step(2)).To(Succeed())
			Expect(m.mc.V[0xa]).To(Equal(uint8(0x01)))
			Expect(m.mc.V[cpu.VF]).To(BeZero())
		})
	})

	Describe("ALU", func() {
		// run a single 8XY? instruction with the given register values. the
		// machine is reused between calls to keep the exhaustive tests quick
		var am *machine
		alu := func(n uint16, x uint8, y uint8) *machine {
			if am == nil || am.mc.LastResult.Opcode != 0x8120|n {
				am = newMachine(0x8120 | n)
			}
			am.mc.PC = spec.ProgramOrigin
			am.mc.V[1] = x
			am.mc.V[2] = y
			Expect(am.mc.Step()).To(Succeed())
			return am
		}

		It("should add with carry for every pair", func() {
			for x := range 256 {
				for y := range 256 {
					m := alu(0x4, uint8(x), uint8(y))
					Expect(m.mc.V[1]).To(Equal(uint8((x+y)%256)))
					Expect(m.mc.V[cpu.VF]).To(Equal(boolByte(x+y > 255)), fmt.Sprintf("%d + %d", x, y))
				}
			}
		})

		It("should subtract with borrow for every pair", func() {
			for x := range 256 {
				for y := range 256 {
					m := alu(0x5, uint8(x), uint8(y))
					Expect(m.mc.V[1]).To(Equal(uint8(x - y)))
					Expect(m.mc.V[cpu.VF]).To(Equal(boolByte(x > y)), fmt.Sprintf("%d - %d", x, y))
				}
			}
		})

		It("should reverse subtract with the same flag test for every pair", func() {
			for x := range 256 {
				for y := range 256 {
					m := alu(0x7, uint8(x), uint8(y))
					Expect(m.mc.V[1]).To(Equal(uint8(y - x)))
					Expect(m.mc.V[cpu.VF]).To(Equal(boolByte(x > y)), fmt.Sprintf("%d - %d", y, x))
				}
			}
		})

		It("should shift right from the second register", func() {
			m := alu(0x6, 0x00, 0x03)
			Expect(m.mc.V[1]).To(Equal(uint8(0x01)))
			Expect(m.mc.V[2]).To(Equal(uint8(0x03)))
			Expect(m.mc.V[cpu.VF]).To(Equal(uint8(1)))

			m = alu(0x6, 0xff, 0x02)
			Expect(m.mc.V[1]).To(Equal(uint8(0x01)))
			Expect(m.mc.V[cpu.VF]).To(Equal(uint8(0)))
		})

		It("should shift left from the second register", func() {
			m := alu(0xe, 0x00, 0x81)
			Expect(m.mc.V[1]).To(Equal(uint8(0x02)))
			Expect(m.mc.V[2]).To(Equal(uint8(0x81)))
			Expect(m.mc.V[cpu.VF]).To(Equal(uint8(1)))

			m = alu(0xe, 0xff, 0x40)
			Expect(m.mc.V[1]).To(Equal(uint8(0x80)))
			Expect(m.mc.V[cpu.VF]).To(Equal(uint8(0)))
		})

		It("should perform bitwise operations", func() {
			Expect(alu(0x0, 0x0f, 0xa5).mc.V[1]).To(Equal(uint8(0xa5)))
			Expect(alu(0x1, 0x0f, 0xa5).mc.V[1]).To(Equal(uint8(0xaf)))
			Expect(alu(0x2, 0x0f, 0xa5).mc.V[1]).To(Equal(uint8(0x05)))
			Expect(alu(0x3, 0x0f, 0xa5).mc.V[1]).To(Equal(uint8(0xaa)))
		})

		// run 8FY? with the flag register as the destination
		flagDest := func(op uint16, vf uint8, v1 uint8) uint8 {
			m := newMachine(0x8f10 | op)
			m.mc.V[cpu.VF] = vf
			m.mc.V[1] = v1
			Expect(m.mc.Step()).To(Succeed())
			return m.mc.V[cpu.VF]
		}

		It("should let the flag win for add when the flag register is the destination", func() {
			Expect(flagDest(0x4, 0xff, 0x02)).To(Equal(uint8(1)))
		})

		It("should let the flag win for reverse subtract when the flag register is the destination", func() {
			Expect(flagDest(0x7, 0x10, 0x03)).To(Equal(uint8(1)))
		})

		It("should let the result win for subtract when the flag register is the destination", func() {
			Expect(flagDest(0x5, 0x10, 0x03)).To(Equal(uint8(0x0d)))
		})

		It("should let the result win for shift right when the flag register is the destination", func() {
			Expect(flagDest(0x6, 0x10, 0x04)).To(Equal(uint8(0x02)))
		})

		It("should let the result win for shift left when the flag register is the destination", func() {
			Expect(flagDest(0xe, 0x10, 0x41)).To(Equal(uint8(0x82)))
		})
	})

	Describe("conditional skips", func() {
		It("should skip on equal immediate", func() {
			m = newMachine(0x3a05)
			m.mc.V[0xa] = 0x05
			Expect(m.mc.Step()).To(Succeed())
			Expect(m.mc.PC).To(Equal(at(2)))
			Expect(m.mc.LastResult.Skipped).To(BeTrue())
		})

		It("should not skip on unequal immediate", func() {
			m = newMachine(0x3a05)
			Expect(m.mc.Step()).To(Succeed())
			Expect(m.mc.PC).To(Equal(at(1)))
			Expect(m.mc.LastResult.Skipped).To(BeFalse())
		})

		It("should skip on not equal immediate", func() {
			m = newMachine(0x4a05)
			Expect(m.mc.Step()).To(Succeed())
			Expect(m.mc.PC).To(Equal(at(2)))
		})

		It("should compare registers", func() {
			m = newMachine(0x5120, 0x0000, 0x9120)
			m.mc.V[1] = 7
			m.mc.V[2] = 7
			Expect(m.mc.Step()).To(Succeed())
			Expect(m.mc.PC).To(Equal(at(2)))
			Expect(m.mc.Step()).To(Succeed())
			Expect(m.mc.PC).To(Equal(at(3)))
		})
	})

	Describe("control flow", func() {
		It("should jump", func() {
			m = newMachine(0x1234)
			Expect(m.mc.Step()).To(Succeed())
			Expect(m.mc.PC).To(Equal(uint16(0x234)))
		})

		It("should call and return", func() {
			m = newMachine(0x2206, 0x0000, 0x0000, 0x00ee)
			Expect(m.mc.Step()).To(Succeed())
			Expect(m.mc.PC).To(Equal(at(3)))
			Expect(m.mc.Stack).To(Equal([]uint16{at(0)}))

			Expect(m.mc.Step()).To(Succeed())
			Expect(m.mc.PC).To(Equal(at(1)))
			Expect(m.mc.Stack).To(BeEmpty())
		})

		It("should jump relative to V0 only", func() {
			m = newMachine(0xb300)
			m.mc.V[0] = 0x10
			m.mc.V[3] = 0x20
			Expect(m.mc.Step()).To(Succeed())
			Expect(m.mc.PC).To(Equal(uint16(0x310)))
		})

		It("should fault on stack overflow", func() {
			// the subroutine calls itself
			m = newMachine(0x2200)
			Expect(m.step(spec.StackDepth)).To(Succeed())
			Expect(m.mc.Stack).To(HaveLen(spec.StackDepth))

			err := m.mc.Step()
			Expect(errors.Is(err, cpu.StackOverflow)).To(BeTrue())
			Expect(m.mc.LastResult.Final).To(BeFalse())
		})

		It("should ignore a return with an empty stack", func() {
			logger.Clear()
			m = newMachine(0x00ee, 0x6005)
			Expect(m.step(2)).To(Succeed())
			Expect(m.mc.PC).To(Equal(at(2)))
			Expect(m.mc.V[0]).To(Equal(uint8(5)))
			Expect(m.mc.LastResult.Final).To(BeTrue())

			var s logWriter
			logger.Write(&s)
			Expect(string(s)).To(ContainSubstring("cpu: return with empty stack at $0200"))
		})
	})

	Describe("index register", func() {
		It("should load and add", func() {
			m = newMachine(0xa123, 0xf31e)
			m.mc.V[3] = 0x10
			Expect(m.step(2)).To(Succeed())
			Expect(m.mc.I).To(Equal(uint16(0x133)))
		})

		It("should wrap at sixteen bits", func() {
			m = newMachine(0xf01e)
			m.mc.I = 0xfffe
			m.mc.V[0] = 0x03
			Expect(m.mc.Step()).To(Succeed())
			Expect(m.mc.I).To(Equal(uint16(0x0001)))
		})

		It("should point at the glyph for the register value", func() {
			m = newMachine(0xf429)
			m.mc.V[4] = 0x0b
			Expect(m.mc.Step()).To(Succeed())
			Expect(m.mc.I).To(Equal(uint16(0x0b * 5)))
			Expect(m.mc.I).To(Equal(memory.Glyph(0x0b)))
		})
	})

	Describe("random", func() {
		It("should mask the random value", func() {
			m = newMachine(0xc50f)
			Expect(m.mc.Step()).To(Succeed())
			Expect(m.mc.V[5]).To(Equal(uint8(0x0f)))
		})
	})

	Describe("timers", func() {
		It("should load and read the timers", func() {
			m = newMachine(0xf115, 0xf218, 0xf307)
			m.mc.V[1] = 0x30
			m.mc.V[2] = 0x40
			Expect(m.step(3)).To(Succeed())
			Expect(m.mc.DT).To(Equal(uint8(0x30)))
			Expect(m.mc.ST).To(Equal(uint8(0x40)))
			Expect(m.mc.V[3]).To(Equal(uint8(0x30)))
			Expect(m.mc.SoundActive()).To(BeTrue())
		})

		It("should saturate at zero", func() {
			m = newMachine()
			m.mc.DT = 1
			m.mc.TickTimers()
			m.mc.TickTimers()
			Expect(m.mc.DT).To(BeZero())
			Expect(m.mc.ST).To(BeZero())
		})

		It("should not tick during steps unless cycle timers are enabled", func() {
			m = newMachine(0x6000, 0x6000)
			m.mc.DT = 10
			Expect(m.mc.Step()).To(Succeed())
			Expect(m.mc.DT).To(Equal(uint8(10)))

			m.mc.CycleTimers = true
			Expect(m.mc.Step()).To(Succeed())
			Expect(m.mc.DT).To(Equal(uint8(9)))
		})

		It("should tick before the instruction when cycle timers are enabled", func() {
			m = newMachine(0xf007)
			m.mc.CycleTimers = true
			m.mc.DT = 5
			Expect(m.mc.Step()).To(Succeed())
			Expect(m.mc.V[0]).To(Equal(uint8(4)))
		})
	})

	Describe("draw", func() {
		BeforeEach(func() {
			m = newMachine(0xa300, 0xd011, 0xd011)
			Expect(m.mem.Write(0x300, 0xff)).To(Succeed())
		})

		It("should draw and then erase with collision", func() {
			Expect(m.step(2)).To(Succeed())
			for x := range 8 {
				Expect(m.dsp.Pixel(x, 0)).To(BeTrue())
			}
			Expect(m.dsp.Lit()).To(Equal(8))
			Expect(m.mc.V[cpu.VF]).To(BeZero())

			Expect(m.mc.Step()).To(Succeed())
			Expect(m.dsp.Lit()).To(BeZero())
			Expect(m.mc.V[cpu.VF]).To(Equal(uint8(1)))
		})

		It("should reset the flag register at the start of the instruction", func() {
			m.mc.V[cpu.VF] = 1
			Expect(m.step(2)).To(Succeed())
			Expect(m.mc.V[cpu.VF]).To(BeZero())
		})

		It("should fault if the sprite is outside memory", func() {
			m = newMachine(0xd011)
			m.mc.I = spec.MemorySize
			err := m.mc.Step()
			Expect(errors.Is(err, memory.AccessFault)).To(BeTrue())
			Expect(m.dsp.Lit()).To(BeZero())
		})

		It("should use the register values as coordinates", func() {
			m = newMachine(0xa000, 0xd125)
			m.mc.V[1] = 10
			m.mc.V[2] = 4
			Expect(m.step(2)).To(Succeed())

			// glyph for zero is a box
			Expect(m.dsp.Pixel(10, 4)).To(BeTrue())
			Expect(m.dsp.Pixel(13, 8)).To(BeTrue())
			Expect(m.dsp.Pixel(11, 5)).To(BeFalse())
		})
	})

	Describe("keys", func() {
		It("should skip if the key is pressed", func() {
			m = newMachine(0xe19e)
			m.mc.V[1] = 5
			m.kp.Set(5, true)
			Expect(m.mc.Step()).To(Succeed())
			Expect(m.mc.PC).To(Equal(at(2)))
		})

		It("should skip if the key is not pressed", func() {
			m = newMachine(0xe1a1)
			m.mc.V[1] = 5
			Expect(m.mc.Step()).To(Succeed())
			Expect(m.mc.PC).To(Equal(at(2)))
		})

		It("should never see keys outside the keypad as pressed", func() {
			m = newMachine(0xe1a1)
			m.mc.V[1] = 0x20
			Expect(m.mc.Step()).To(Succeed())
			Expect(m.mc.PC).To(Equal(at(2)))
		})

		It("should wait for the key named by the register", func() {
			m = newMachine(0xf10a)
			m.mc.V[1] = 3

			for range 10 {
				Expect(m.mc.Step()).To(Succeed())
				Expect(m.mc.PC).To(Equal(at(0)))
				Expect(m.mc.LastResult.Blocked).To(BeTrue())
			}

			// a different key does not release the wait
			m.kp.Set(4, true)
			Expect(m.mc.Step()).To(Succeed())
			Expect(m.mc.PC).To(Equal(at(0)))

			m.kp.Set(3, true)
			Expect(m.mc.Step()).To(Succeed())
			Expect(m.mc.PC).To(Equal(at(1)))
			Expect(m.mc.LastResult.Blocked).To(BeFalse())
		})
	})

	Describe("memory transfer", func() {
		It("should store BCD", func() {
			m = newMachine(0xa300, 0xf533)
			m.mc.V[5] = 157
			Expect(m.step(2)).To(Succeed())
			for i, v := range []uint8{1, 5, 7} {
				d, err := m.mem.Read(0x300 + uint16(i))
				Expect(err).NotTo(HaveOccurred())
				Expect(d).To(Equal(v))
			}
			Expect(m.mc.I).To(Equal(uint16(0x300)))
		})

		It("should dump registers and advance the index register", func() {
			m = newMachine(0xa400, 0xf355)
			m.mc.V = [16]uint8{0x10, 0x11, 0x12, 0x13, 0x14}
			Expect(m.step(2)).To(Succeed())
			for i := range 4 {
				d, err := m.mem.Read(0x400 + uint16(i))
				Expect(err).NotTo(HaveOccurred())
				Expect(d).To(Equal(uint8(0x10 + i)))
			}
			d, _ := m.mem.Read(0x404)
			Expect(d).To(BeZero())
			Expect(m.mc.I).To(Equal(uint16(0x404)))
		})

		It("should load registers and advance the index register", func() {
			m = newMachine(0xa500, 0xf265)
			Expect(m.mem.Write(0x500, 0xa0, 0xa1, 0xa2, 0xa3)).To(Succeed())
			m.mc.V[3] = 0x33
			Expect(m.step(2)).To(Succeed())
			Expect(m.mc.V[:4]).To(Equal([]uint8{0xa0, 0xa1, 0xa2, 0x33}))
			Expect(m.mc.I).To(Equal(uint16(0x503)))
		})

		It("should fault when a transfer crosses the end of memory", func() {
			m = newMachine(0xff55)
			m.mc.I = spec.MemorySize - 4
			err := m.mc.Step()
			Expect(errors.Is(err, memory.AccessFault)).To(BeTrue())
			Expect(m.mc.I).To(Equal(uint16(spec.MemorySize - 4)))

			m = newMachine(0xf065)
			m.mc.I = 0xffff
			err = m.mc.Step()
			Expect(errors.Is(err, memory.AccessFault)).To(BeTrue())
		})
	})

	Describe("fetch", func() {
		It("should fault when the program counter leaves memory", func() {
			m = newMachine()
			m.mc.PC = spec.MemorySize - 1
			err := m.mc.Step()
			Expect(errors.Is(err, memory.AccessFault)).To(BeTrue())
		})
	})

	Describe("unrecognised instructions", func() {
		BeforeEach(func() {
			logger.Clear()
		})

		It("should log and skip", func() {
			m = newMachine(0x0123, 0x6001)
			Expect(m.mc.Step()).To(Succeed())
			Expect(m.mc.PC).To(Equal(at(1)))
			Expect(m.mc.LastResult.Defn).To(BeNil())
			Expect(m.mc.LastResult.Final).To(BeTrue())

			Expect(m.mc.Step()).To(Succeed())
			Expect(m.mc.V[0]).To(Equal(uint8(1)))

			var s logWriter
			logger.Write(&s)
			Expect(string(s)).To(ContainSubstring("cpu: unrecognised opcode $0123 at $0200"))
		})
	})

	Describe("execute", func() {
		It("should execute a decoded instruction directly", func() {
			m = newMachine()
			ins, ok := instructions.Decode(0x6a42)
			Expect(ok).To(BeTrue())
			Expect(m.mc.Execute(ins)).To(Succeed())
			Expect(m.mc.V[0xa]).To(Equal(uint8(0x42)))
			Expect(m.mc.PC).To(Equal(at(1)))
		})
	})
})

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

type logWriter []byte

func (w *logWriter) Write(p []byte) (int, error) {
	*w = append(*w, p...)
	return len(p), nil
}
