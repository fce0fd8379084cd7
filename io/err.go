package io

import (
	"errors"

	"github.com/ezrec/toy/translate"
)

var f = translate.From

var (
	// Gateway errors
	ErrInputEmpty = errors.New(f("console input exhausted"))
)

// ErrParseValue is console input that is not a hexadecimal word.
type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a hexadecimal word", string(err))
}
