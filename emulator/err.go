package emulator

import (
	"errors"

	"github.com/ezrec/toy/translate"
)

var f = translate.From

var (
	ErrWatchResult = errors.New(f("watch expression has no result"))
)

// ErrRuntime indicates the listing location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return err.Err.Error()
	}
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrWatch is a watch expression that failed to evaluate.
type ErrWatch struct {
	Expr string
	Err  error
}

func (err *ErrWatch) Error() string {
	return f("watch '%v' %v", err.Expr, err.Err)
}

func (err *ErrWatch) Unwrap() error {
	return err.Err
}
