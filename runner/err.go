package runner

import (
	"github.com/ezrec/isolang/ins"
	"github.com/ezrec/isolang/translate"
)

var f = translate.From

// ErrFault is an unknown fault policy name.
type ErrFault string

func (err ErrFault) Error() string {
	return f("'%v' is not a fault policy", string(err))
}

// ErrOp is an instruction the runner cannot execute.
type ErrOp ins.Op

func (err ErrOp) Error() string {
	return f("op %v unknown", ins.Op(err).String())
}
