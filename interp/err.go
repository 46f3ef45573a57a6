package interp

import (
	"errors"

	"github.com/ezrec/isolang/translate"
)

var f = translate.From

var (
	ErrReset = errors.New(f("interpreter not reset"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Index  int
	Line   int
	Column int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("%d:%d (#%d) %v", err.Line, err.Column, err.Index, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
