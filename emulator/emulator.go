// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"iter"
	"maps"

	"github.com/ezrec/toy/cpu"
	"github.com/ezrec/toy/internal"
	"github.com/ezrec/toy/io"
)

// Config is the per-run machine configuration.
type Config struct {
	Debug bool // Trace every instruction before it executes.
	Ascii bool // Console words are character codes.
}

// Emulator state. CPU + program + console.
type Emulator struct {
	Config                // Configuration applied at Reset.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently loaded program listing.

	Console io.Console // Console I/O, used when Gateway is nil.
	Gateway io.Gateway // Optional substitute for the console.
	Watch   *Watch     // Optional filter of the traced instructions.

	config Config // Configuration of the current run.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &cpu.Program{Pc: cpu.PC_ENTRY},
	}

	emu.Cpu = cpu.NewCpu(&emu.Console)

	return
}

// Values returns an iterator over the named machine values.
func (emu *Emulator) Values() iter.Seq2[string, int] {
	return internal.IterSeq2Concat(maps.All(map[string]int{
		"pc":    emu.Cpu.Pc,
		"ticks": emu.Cpu.Ticks,
	}),
		emu.Cpu.Registers(),
	)
}

// Reset the emulator state, and load the program.
func (emu *Emulator) Reset() (err error) {
	emu.config = emu.Config

	emu.Console.Ascii = emu.config.Ascii
	emu.Console.Rewind()

	if emu.Gateway != nil {
		emu.Cpu.Gateway = emu.Gateway
	} else {
		emu.Cpu.Gateway = &emu.Console
	}

	emu.Cpu.Reset()
	emu.Cpu.Load(emu.Program)

	if emu.Watch != nil {
		// Check the expression against the fresh machine.
		_, err = emu.Watch.Match(emu)
	}

	return
}

// Ticks returns the total instructions executed since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns the current program counter.
func (emu *Emulator) Pc() int {
	return emu.Cpu.Pc
}

// LineNo returns the listing line number for the executing instruction.
func (emu *Emulator) LineNo() int {
	if emu.Cpu.Halted() {
		return 0
	}

	entry, ok := emu.Program.Debug(cpu.FetchAddress(emu.Cpu.Pc))
	if !ok {
		return 0
	}

	return entry.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	verbose := emu.config.Debug
	if verbose && emu.Watch != nil && !emu.Cpu.Halted() {
		verbose, err = emu.Watch.Match(emu)
		if err != nil {
			return
		}
	}
	emu.Cpu.Verbose = verbose

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalted) {
		err = nil
		done = true
		return
	}
	if err != nil {
		return
	}

	done = emu.Cpu.Halted()

	return
}

// Run ticks the emulator until it halts, or fails.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
