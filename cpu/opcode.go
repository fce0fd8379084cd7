package cpu

import (
	"fmt"
)

// CodeOp is the 4-bit operation selector of an instruction.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_HALT  = CodeOp(0x0) // hlt
	OP_ADD   = CodeOp(0x1) // add
	OP_SUB   = CodeOp(0x2) // sub
	OP_AND   = CodeOp(0x3) // and
	OP_XOR   = CodeOp(0x4) // xor
	OP_SHL   = CodeOp(0x5) // shl
	OP_SHR   = CodeOp(0x6) // shr
	OP_LDA   = CodeOp(0x7) // lda
	OP_LD    = CodeOp(0x8) // ld
	OP_ST    = CodeOp(0x9) // st
	OP_LDI   = CodeOp(0xa) // ldi
	OP_STI   = CodeOp(0xb) // sti
	OP_BZ    = CodeOp(0xc) // bz
	OP_BP    = CodeOp(0xd) // bp
	OP_JR    = CodeOp(0xe) // jr
	OP_JL    = CodeOp(0xf) // jl
	OP_COUNT = 16
)

// CodeForm is the operand layout of an instruction.
type CodeForm int

const (
	FORM_NONE = CodeForm(iota) // no operands
	FORM_RRR                   // d, s, t registers
	FORM_RA                    // d register, addr
	FORM_RR                    // d, t registers
	FORM_R                     // d register
)

// Form returns the operand layout used by the operation.
func (op CodeOp) Form() CodeForm {
	switch op {
	case OP_HALT:
		return FORM_NONE
	case OP_ADD, OP_SUB, OP_AND, OP_XOR, OP_SHL, OP_SHR:
		return FORM_RRR
	case OP_LDA, OP_LD, OP_ST, OP_BZ, OP_BP, OP_JL:
		return FORM_RA
	case OP_LDI, OP_STI:
		return FORM_RR
	case OP_JR:
		return FORM_R
	}

	return FORM_NONE
}

// Writes returns true if the operation stores into register d.
func (op CodeOp) Writes() bool {
	switch op {
	case OP_ADD, OP_SUB, OP_AND, OP_XOR, OP_SHL, OP_SHR,
		OP_LDA, OP_LD, OP_LDI, OP_JL:
		return true
	}

	return false
}

// Code is a single 16-bit instruction word.
//
//	15..12  11..8  7..4  3..0
//	opcode    d     s     t
//	opcode    d     addr
type Code Word

// MakeCodeRRR creates a register-to-register instruction.
func MakeCodeRRR(op CodeOp, d, s, t int) Code {
	return Code((uint16(op)&0xf)<<12 | (uint16(d)&0xf)<<8 | (uint16(s)&0xf)<<4 | (uint16(t) & 0xf))
}

// MakeCodeRA creates a register-and-address instruction.
func MakeCodeRA(op CodeOp, d int, addr uint8) Code {
	return Code((uint16(op)&0xf)<<12 | (uint16(d)&0xf)<<8 | uint16(addr))
}

// MakeCodeHalt creates a halt instruction.
func MakeCodeHalt() Code {
	return Code(0)
}

// Opcode returns the operation selector.
func (code Code) Opcode() CodeOp {
	return CodeOp((uint16(code) >> 12) & 0xf)
}

// D returns the destination register index.
func (code Code) D() int {
	return int((uint16(code) >> 8) & 0xf)
}

// S returns the first source register index.
func (code Code) S() int {
	return int((uint16(code) >> 4) & 0xf)
}

// T returns the second source register index.
func (code Code) T() int {
	return int((uint16(code) >> 0) & 0xf)
}

// Addr returns the low 8 bits, used as an immediate or a memory address.
func (code Code) Addr() uint8 {
	return uint8(code)
}

// String returns the mnemonic form of this instruction.
func (code Code) String() (out string) {
	op := code.Opcode()

	switch op.Form() {
	case FORM_RRR:
		out = fmt.Sprintf("%v R%X, R%X, R%X", op, code.D(), code.S(), code.T())
	case FORM_RA:
		out = fmt.Sprintf("%v R%X, %02X", op, code.D(), code.Addr())
	case FORM_RR:
		out = fmt.Sprintf("%v R%X, R%X", op, code.D(), code.T())
	case FORM_R:
		out = fmt.Sprintf("%v R%X", op, code.D())
	default:
		out = op.String()
	}

	return
}
