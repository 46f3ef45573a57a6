package config

import (
	"errors"

	"github.com/ezrec/isolang/translate"
)

var f = translate.From

var (
	ErrConfig = errors.New(f("configuration"))
)

// ErrType is a global of the wrong Starlark type.
type ErrType string

func (err ErrType) Error() string {
	return f("unexpected type %v", string(err))
}

// ErrRange is a number out of range.
type ErrRange string

func (err ErrRange) Error() string {
	return f("%v is out of range", string(err))
}

// ErrGlobal is an invalid value for a configuration global.
type ErrGlobal struct {
	Name string
	Err  error
}

func (err *ErrGlobal) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrGlobal) Unwrap() error {
	return err.Err
}
