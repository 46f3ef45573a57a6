package cell

import (
	"errors"

	"github.com/ezrec/isolang/translate"
)

var f = translate.From

var (
	// Arithmetic errors
	ErrDivideByZero = errors.New(f("divide by zero"))
	ErrOverflow     = errors.New(f("overflow"))
	ErrUnderflow    = errors.New(f("underflow"))

	// Input stream errors
	ErrStream = errors.New(f("input stream"))
	ErrDecode = errors.New(f("malformed UTF-8 input"))
)

type ErrKind string

func (err ErrKind) Error() string {
	return f("'%v' is not a cell kind", string(err))
}

type ErrOverflowPolicy string

func (err ErrOverflowPolicy) Error() string {
	return f("'%v' is not an overflow policy", string(err))
}
