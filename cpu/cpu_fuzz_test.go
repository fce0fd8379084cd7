package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/toy/io"
)

func FuzzCpu(f *testing.F) {
	for op := range 0x10 {
		f.Add(uint16(op<<12), uint16(0), uint16(0), uint16(0x41))
		f.Add(uint16(op<<12|0x1ff), uint16(0x7fff), uint16(0x00ff), uint16(0xffff))
		f.Add(uint16(op<<12|0x012), uint16(0x8000), uint16(0xffff), uint16(0))
	}

	f.Fuzz(func(t *testing.T, opcode uint16, a uint16, b uint16, input uint16) {
		assert := assert.New(t)

		script := &io.Script{Inputs: []uint16{input}}
		cpu := NewCpu(script)
		for n := range REGISTER_COUNT {
			if n&1 == 0 {
				cpu.Register[n] = Word(a)
			} else {
				cpu.Register[n] = Word(b)
			}
		}
		cpu.Register[0] = 0
		cpu.Memory[0x40] = 0xcafe

		code := Code(opcode)
		cpu.Memory[PC_ENTRY] = Word(code)

		registers := cpu.Register
		memory := cpu.Memory

		err := cpu.Tick()

		// Register 0 is never modified.
		assert.Equal(Word(0), cpu.Register[0])

		if err != nil {
			var fault *ErrFault
			assert.True(errors.As(err, &fault))
			assert.Equal(PC_ENTRY, fault.Pc)
			assert.Equal(PC_ENTRY, cpu.Pc)
			assert.Equal(registers, cpu.Register)
			assert.Equal(memory, cpu.Memory)
			assert.Equal(0, cpu.Ticks)

			switch {
			case errors.Is(err, ErrReservedRegister):
				assert.Equal(0, code.D())
				assert.True(code.Opcode().Writes())
			case errors.Is(err, ErrRange{}):
				assert.Equal(FORM_RRR, code.Opcode().Form())
			default:
				t.Fatalf("unexpected error %v", err)
			}
			return
		}

		assert.Equal(1, cpu.Ticks)
		assert.Equal(code.Opcode() == OP_HALT, cpu.Halted())

		// Only the destination register may change.
		for n := range REGISTER_COUNT {
			if n != code.D() || !code.Opcode().Writes() {
				assert.Equal(registers[n], cpu.Register[n], "R%X", n)
			}
		}

		switch code.Opcode() {
		case OP_HALT:
			assert.Equal(PC_ENTRY, cpu.Pc)
		case OP_BZ, OP_BP:
			assert.Contains([]int{PC_ENTRY + 1, int(code.Addr())}, cpu.Pc)
		case OP_JR:
			assert.Equal(registers[code.D()].Signed()+1, cpu.Pc)
		case OP_JL:
			assert.Equal(int(code.Addr()), cpu.Pc)
			assert.Equal(Word(PC_ENTRY), cpu.Register[code.D()])
		default:
			assert.Equal(PC_ENTRY+1, cpu.Pc)
		}
	})
}
