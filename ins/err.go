package ins

import (
	"errors"

	"github.com/ezrec/isolang/translate"
)

var f = translate.From

var (
	ErrNotInvertible = errors.New(f("instruction not invertible"))
)
