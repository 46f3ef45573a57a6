package parser

import (
	"errors"

	"github.com/ezrec/isolang/ins"
)

// scanner is a byte source with one byte of lookahead, tracking positions.
type scanner struct {
	next func() (byte, error, bool)

	peeked bool
	ch     byte
	ok     bool
	err    error

	pos  ins.Pos // Position of the next byte.
	last ins.Pos // Position of the last consumed byte.
}

func (sc *scanner) peek() (ch byte, ok bool, err error) {
	if !sc.peeked {
		sc.ch, sc.err, sc.ok = sc.next()
		if sc.err != nil {
			sc.err = errors.Join(ErrRead, sc.err)
		}
		sc.peeked = true
	}

	return sc.ch, sc.ok, sc.err
}

func (sc *scanner) read() (ch byte, ok bool, err error) {
	ch, ok, err = sc.peek()
	if err != nil || !ok {
		return
	}

	sc.skip()

	return
}

// skip consumes the peeked byte.
func (sc *scanner) skip() {
	sc.peeked = false
	sc.last = sc.pos
	if sc.ch == '\n' {
		sc.pos.Line++
		sc.pos.Column = 1
	} else {
		sc.pos.Column++
	}
}
