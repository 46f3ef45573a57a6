// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package world holds the sparse cell grid and the world head.
//
// Cells that were never written read as ONE, so untouched cells are neutral
// under multiplication and division. Only cells different from ONE are
// stored.
//
// The origin is not storage: it is the I/O side channel. Data-path reads
// (instruction operands) receive the next input cell, and data-path writes
// (instruction results) send the cell to the output. Control-path
// inspections (Peek) see the origin as ONE and never touch the channel.
package world

import (
	"iter"
	"maps"
	"slices"

	"github.com/ezrec/isolang/cell"
	"github.com/ezrec/isolang/channel"
	"github.com/ezrec/isolang/coord"
)

// World is the grid, the head, and the origin I/O channel.
type World[C cell.Cell[C]] struct {
	Head    coord.Coord        // Current position of the world head.
	Channel channel.Channel[C] // I/O at the origin. May be nil.

	cells map[coord.Coord]C
}

// NewWorld creates an empty world with the head at the origin.
func NewWorld[C cell.Cell[C]](ch channel.Channel[C]) (w *World[C]) {
	w = &World[C]{
		Channel: ch,
		cells:   make(map[coord.Coord]C),
	}

	return
}

// Get reads a cell for use as an operand. At the origin, one input cell is
// consumed; an exhausted input reads as ZERO.
func (w *World[C]) Get(at coord.Coord) (value C, err error) {
	if at == coord.ZERO {
		if w.Channel == nil {
			return
		}
		value, _, err = w.Channel.Receive()
		return
	}

	return w.Peek(at), nil
}

// Peek reads a cell without any I/O. The origin reads as ONE.
func (w *World[C]) Peek(at coord.Coord) (value C) {
	value, ok := w.cells[at]
	if !ok {
		value = value.One()
	}
	return
}

// Insert writes a cell. At the origin, the cell is sent to the output.
func (w *World[C]) Insert(at coord.Coord, value C) (err error) {
	if at == coord.ZERO {
		if w.Channel == nil {
			return
		}
		return w.Channel.Send(value)
	}

	if value == value.One() {
		delete(w.cells, at)
	} else {
		w.cells[at] = value
	}

	return
}

// Stored reports whether a cell is held in explicit storage.
func (w *World[C]) Stored(at coord.Coord) bool {
	_, ok := w.cells[at]
	return ok
}

// Len is the number of explicitly stored cells.
func (w *World[C]) Len() int {
	return len(w.cells)
}

// Cells iterates over the stored cells in coordinate order.
func (w *World[C]) Cells() iter.Seq2[coord.Coord, C] {
	return func(yield func(at coord.Coord, value C) bool) {
		keys := slices.SortedFunc(maps.Keys(w.cells), coord.Coord.Compare)
		for _, at := range keys {
			if !yield(at, w.cells[at]) {
				return
			}
		}
	}
}
