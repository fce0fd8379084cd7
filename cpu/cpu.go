// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"log"

	"github.com/ezrec/toy/io"
)

// Gateway is the console I/O interface for address 0xFF.
type Gateway io.Gateway

const (
	REGISTER_COUNT = 16   // Number of registers.
	MEMORY_SIZE    = 256  // Number of memory words.
	ADDR_IO        = 0xff // Memory-mapped console address.
	PC_ENTRY       = 0x10 // Conventional program entry point.
)

// Cpu is the simulation context for the TOY machine.
type Cpu struct {
	Verbose bool        // Set to enable instruction tracing.
	Logger  *log.Logger // Trace destination; log.Default() if nil.

	Pc       int                  // Current program counter.
	Register [REGISTER_COUNT]Word // Register bank.
	Memory   [MEMORY_SIZE]Word    // Main memory.
	Gateway  Gateway              // Console for address 0xFF.
	Ticks    int                  // Executed instruction counter.

	halted bool // Set only by the halt instruction.
}

// NewCpu creates a new CPU attached to a console gateway.
func NewCpu(gateway Gateway) (cpu *Cpu) {
	cpu = &Cpu{
		Gateway: gateway,
	}

	cpu.Reset()

	return
}

// Reset the CPU state.
// - Clears the registers and memory.
// - Zeros the tick counter.
// - Sets the program counter to the conventional entry point.
func (cpu *Cpu) Reset() {
	clear(cpu.Register[:])
	clear(cpu.Memory[:])
	cpu.Ticks = 0
	cpu.Pc = PC_ENTRY
	cpu.halted = false
}

// Load copies a program image into memory, and sets the entry point.
func (cpu *Cpu) Load(prog *Program) {
	cpu.Memory = prog.Image()
	cpu.Pc = prog.Pc
	cpu.halted = false
}

// Halted returns true once a halt instruction has executed.
func (cpu *Cpu) Halted() bool {
	return cpu.halted
}

// Registers iterates over the register names and unsigned values.
func (cpu *Cpu) Registers() iter.Seq2[string, int] {
	return func(yield func(name string, value int) bool) {
		for n, value := range cpu.Register {
			if !yield(fmt.Sprintf("R%X", n), int(value)) {
				return
			}
		}
	}
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	pc := pcString(cpu.Pc)
	if cpu.halted {
		pc = "--"
	}
	text += fmt.Sprintf("% 5s: %v\n", "pc", pc)
	text += fmt.Sprintf("% 5s: %v\n", "ticks", cpu.Ticks)
	for n := 0; n < REGISTER_COUNT; n += 4 {
		text += fmt.Sprintf("% 5s: %v %v %v %v\n", fmt.Sprintf("R%X", n),
			cpu.Register[n], cpu.Register[n+1], cpu.Register[n+2], cpu.Register[n+3])
	}

	return
}

// FetchAddress resolves a program counter to a memory address: the low
// 8 bits of its magnitude, so -3 fetches from 03.
func FetchAddress(pc int) uint8 {
	if pc < 0 {
		pc = -pc
	}
	return uint8(pc)
}

// pcString formats a program counter as its 2-hex-digit fetch address.
func pcString(pc int) string {
	return fmt.Sprintf("%02X", FetchAddress(pc))
}

func (cpu *Cpu) logger() *log.Logger {
	if cpu.Logger != nil {
		return cpu.Logger
	}
	return log.Default()
}

// FetchCode fetches the instruction at the program counter.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	if cpu.Halted() {
		err = ErrHalted
		return
	}

	code = Code(cpu.Memory[FetchAddress(cpu.Pc)])

	return
}

// Tick executes a single CPU instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	err = cpu.Execute(code)

	return
}

// Execute executes a single decoded instruction at the program counter.
// On error, no state has been modified.
func (cpu *Cpu) Execute(code Code) (err error) {
	defer func() {
		if err != nil {
			err = &ErrFault{Pc: cpu.Pc, Err: err}
		}
	}()

	if cpu.Verbose {
		cpu.logger().Printf("%v: %v", pcString(cpu.Pc), cpu.Describe(code))
	}

	op := code.Opcode()
	d := code.D()

	if op.Writes() && d == 0 {
		err = ErrReservedRegister
		return
	}

	next_pc := cpu.Pc + 1

	switch op {
	case OP_HALT:
		cpu.halted = true
		cpu.Ticks += 1
		return
	case OP_ADD, OP_SUB, OP_AND, OP_XOR, OP_SHL, OP_SHR:
		var value int
		a := cpu.Register[code.S()].Signed()
		b := cpu.Register[code.T()].Signed()
		value, err = doAlu(op, a, b)
		if err != nil {
			return
		}
		cpu.Register[d] = MakeWord(value)
	case OP_LDA:
		cpu.Register[d] = Word(code.Addr())
	case OP_LD:
		var value Word
		value, err = cpu.load(code.Addr())
		if err != nil {
			return
		}
		cpu.Register[d] = value
	case OP_ST:
		err = cpu.store(code.Addr(), cpu.Register[d])
		if err != nil {
			return
		}
	case OP_LDI:
		var value Word
		value, err = cpu.load(uint8(cpu.Register[code.T()]))
		if err != nil {
			return
		}
		cpu.Register[d] = value
	case OP_STI:
		err = cpu.store(uint8(cpu.Register[code.T()]), cpu.Register[d])
		if err != nil {
			return
		}
	case OP_BZ:
		if cpu.Register[d].Signed() == 0 {
			next_pc = int(code.Addr())
		}
	case OP_BP:
		if cpu.Register[d].Signed() > 0 {
			next_pc = int(code.Addr())
		}
	case OP_JR:
		next_pc = cpu.Register[d].Signed() + 1
	case OP_JL:
		cpu.Register[d] = MakeWord(cpu.Pc)
		next_pc = int(code.Addr())
	default:
		err = ErrOpcode(code)
		return
	}

	cpu.Pc = next_pc
	cpu.Ticks += 1

	return
}
