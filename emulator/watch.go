package emulator

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/toy/cpu"
)

// Watch is a Starlark expression that selects which instructions are
// traced. The expression sees `pc`, `ticks`, the registers `R0`..`RF`
// (unsigned), the list `M` of memory words, and the decoded instruction
// at the program counter as `op` (mnemonic), `d`, `s`, `t` and `addr`.
//
//	pc == 0x14 and R1 > 3
//	op in ("st", "sti")
type Watch struct {
	Expr string
}

// NewWatch creates a watch for an expression.
func NewWatch(expr string) *Watch {
	return &Watch{Expr: expr}
}

// predeclared builds the expression environment from the machine state.
func (w *Watch) predeclared(emu *Emulator) (pred starlark.StringDict) {
	pred = starlark.StringDict{}
	for name, value := range emu.Values() {
		pred[name] = starlark.MakeInt(value)
	}

	memory := make([]starlark.Value, len(emu.Cpu.Memory))
	for n, word := range emu.Cpu.Memory {
		memory[n] = starlark.MakeInt(int(word))
	}
	pred["M"] = starlark.NewList(memory)

	var code cpu.Code
	if !emu.Cpu.Halted() {
		code = cpu.Code(emu.Cpu.Memory[cpu.FetchAddress(emu.Cpu.Pc)])
	}
	pred["op"] = starlark.String(code.Opcode().String())
	pred["d"] = starlark.MakeInt(code.D())
	pred["s"] = starlark.MakeInt(code.S())
	pred["t"] = starlark.MakeInt(code.T())
	pred["addr"] = starlark.MakeInt(int(code.Addr()))

	return
}

// Match evaluates the expression against the current machine state.
func (w *Watch) Match(emu *Emulator) (ok bool, err error) {
	defer func() {
		if err != nil {
			err = &ErrWatch{Expr: w.Expr, Err: err}
		}
	}()

	thread := starlark.Thread{Name: "watch"}
	opts := syntax.FileOptions{}
	prog := "rc = (" + w.Expr + ")\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "watch", prog, w.predeclared(emu))
	if err != nil {
		return
	}

	rc, found := dict["rc"]
	if !found {
		err = ErrWatchResult
		return
	}

	ok = bool(rc.Truth())
	return
}
