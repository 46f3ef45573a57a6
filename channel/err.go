package channel

import (
	"errors"

	"github.com/ezrec/isolang/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrOutput = errors.New(f("output stream"))
	ErrFull   = errors.New(f("channel full"))
)
