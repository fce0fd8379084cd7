package cpu

import (
	"fmt"
)

// Describe returns a human-readable description of the instruction, using
// the register and memory values before it executes.
func (cpu *Cpu) Describe(code Code) (text string) {
	op := code.Opcode()
	d, s, t := code.D(), code.S(), code.T()
	addr := code.Addr()

	name := func(n int) string {
		return fmt.Sprintf("R%X", n)
	}
	reg := func(n int) string {
		return fmt.Sprintf("R%X (%v)", n, cpu.Register[n])
	}
	hex := func(n uint8) string {
		return fmt.Sprintf("%02X", n)
	}

	switch op {
	case OP_HALT:
		text = f("halt")
	case OP_ADD:
		text = f("add %v + %v -> %v", reg(s), reg(t), name(d))
	case OP_SUB:
		text = f("subtract %v - %v -> %v", reg(s), reg(t), name(d))
	case OP_AND:
		text = f("and %v & %v -> %v", reg(s), reg(t), name(d))
	case OP_XOR:
		text = f("xor %v ^ %v -> %v", reg(s), reg(t), name(d))
	case OP_SHL:
		text = f("shift %v left by %v -> %v", reg(s), reg(t), name(d))
	case OP_SHR:
		text = f("shift %v right by %v -> %v", reg(s), reg(t), name(d))
	case OP_LDA:
		text = f("load %v into %v", hex(addr), name(d))
	case OP_LD:
		if addr == ADDR_IO {
			text = f("load console input via M[FF] into %v", name(d))
		} else {
			text = f("load M[%v] (%v) into %v", hex(addr), cpu.Memory[addr].String(), name(d))
		}
	case OP_ST:
		if addr == ADDR_IO {
			text = f("store %v in M[FF] and print it", reg(d))
		} else {
			text = f("store %v in M[%v]", reg(d), hex(addr))
		}
	case OP_LDI:
		target := uint8(cpu.Register[t])
		if target == ADDR_IO {
			text = f("load console input via M[%v] into %v", reg(t), name(d))
		} else {
			text = f("load M[%v] (%v) into %v", reg(t), cpu.Memory[target].String(), name(d))
		}
	case OP_STI:
		target := uint8(cpu.Register[t])
		if target == ADDR_IO {
			text = f("store %v in M[%v] and print it", reg(d), reg(t))
		} else {
			text = f("store %v in M[%v]", reg(d), reg(t))
		}
	case OP_BZ:
		if cpu.Register[d].Signed() == 0 {
			text = f("branch if %v is zero: taken, pc = %v", reg(d), hex(addr))
		} else {
			text = f("branch if %v is zero: not taken", reg(d))
		}
	case OP_BP:
		if cpu.Register[d].Signed() > 0 {
			text = f("branch if %v is positive: taken, pc = %v", reg(d), hex(addr))
		} else {
			text = f("branch if %v is positive: not taken", reg(d))
		}
	case OP_JR:
		text = f("jump to %v + 1 (%v)", reg(d), pcString(cpu.Register[d].Signed()+1))
	case OP_JL:
		text = f("store pc (%v) in %v, pc = %v", pcString(cpu.Pc), name(d), hex(addr))
	default:
		text = ErrOpcode(code).Error()
	}

	return
}
