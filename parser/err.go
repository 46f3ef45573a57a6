package parser

import (
	"errors"

	"github.com/ezrec/isolang/translate"
)

var f = translate.From

var (
	ErrTruncated = errors.New(f("truncated input"))
	ErrRead      = errors.New(f("source read"))
)

// ErrUnexpected is an unrecognized source character.
type ErrUnexpected byte

func (err ErrUnexpected) Error() string {
	return f("unexpected character %q", byte(err))
}

// ErrBadAdjacency is a character found where an adjacency was required.
type ErrBadAdjacency byte

func (err ErrBadAdjacency) Error() string {
	return f("bad adjacency %q", byte(err))
}

// ErrSyntax is a parse failure at a source position.
type ErrSyntax struct {
	Line   int
	Column int
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("%d:%d: %v", err.Line, err.Column, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
