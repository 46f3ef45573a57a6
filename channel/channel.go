// Package channel provides the I/O side channel attached to the world origin.
//
// Reading the origin receives the next input cell; writing the origin sends
// a cell to the output. Tape adapts an io.Reader and io.Writer pair; Queue
// keeps the cells in memory.
package channel

import (
	"github.com/ezrec/isolang/cell"
)

// Channel defines the cell-level I/O of the world origin.
type Channel[C cell.Cell[C]] interface {
	// Receive returns the next input cell. ok is false once the input is exhausted.
	Receive() (value C, ok bool, err error)
	// Send writes a cell to the output.
	Send(value C) error
}
