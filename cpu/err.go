package cpu

import (
	"errors"
	"math/big"

	"github.com/ezrec/toy/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted           = errors.New(f("halted"))
	ErrReservedRegister = errors.New(f("register 0 is reserved"))
	ErrOpcodeInvalid    = errors.New(f("opcode invalid"))
	ErrGatewayMissing   = errors.New(f("no console attached"))

	// Loader errors
	ErrLineUnknown = errors.New(f("unrecognized line format"))
)

// ErrRange is an arithmetic result outside of the signed word range.
// Value is exact, even for shifts that overflow a machine integer.
type ErrRange struct {
	Value *big.Int
}

// MakeErrRange creates a range error for a result.
func MakeErrRange(value int) ErrRange {
	return ErrRange{Value: big.NewInt(int64(value))}
}

func (er ErrRange) Error() string {
	value := "?"
	if er.Value != nil {
		// Pre-formatted, so the printer does not group the digits.
		value = er.Value.String()
	}
	return f("operation outside the range of -32768 and 32767 (%v)", value)
}

func (er ErrRange) Is(err error) (ok bool) {
	_, ok = err.(ErrRange)
	return
}

// ErrOpcode is an instruction with no defined handler.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%v %v", Word(eo).String(), Code(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	return err == ErrOpcodeInvalid
}

// ErrFault is a fatal execution error at a program counter.
type ErrFault struct {
	Pc  int
	Err error
}

func (err *ErrFault) Error() string {
	return f("error at %v: %v", pcString(err.Pc), err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}

// ErrSyntax is a listing line that cannot be loaded.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
