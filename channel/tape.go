package channel

import (
	"errors"
	"io"
	"iter"

	"github.com/ezrec/isolang/cell"
)

// Tape provides sequential cell I/O over a byte stream pair. Input is decoded
// lazily, one cell per Receive, by the cell type's stream adapter.
type Tape[C cell.Cell[C]] struct {
	Input  io.Reader
	Output io.Writer

	next      func() (C, error, bool)
	stop      func()
	exhausted bool
}

var _ Channel[cell.Narrow] = (*Tape[cell.Narrow])(nil)

// Receive reads the next cell from the input. Once the input is exhausted,
// or after a stream error, every further call reports ok == false.
func (tc *Tape[C]) Receive() (value C, ok bool, err error) {
	if tc.exhausted || tc.Input == nil {
		return
	}

	if tc.next == nil {
		var zero C
		var seq iter.Seq2[C, error] = zero.Stream(tc.Input)
		tc.next, tc.stop = iter.Pull2(seq)
	}

	value, err, ok = tc.next()
	if !ok || err != nil {
		tc.exhausted = true
		ok = false
		tc.Close()
	}

	return
}

// Send writes the output form of a cell. A nil Output discards it.
func (tc *Tape[C]) Send(value C) (err error) {
	if tc.Output == nil {
		return
	}

	_, err = tc.Output.Write(value.Bytes())
	if err != nil {
		err = errors.Join(ErrOutput, err)
	}

	return
}

// Close releases the input stream.
func (tc *Tape[C]) Close() (err error) {
	if tc.stop != nil {
		tc.stop()
		tc.stop = nil
	}

	return
}
