// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package coord implements the coordinate algebra of the Isolang world.
//
// The world is a triangular tiling addressed along two non-orthogonal axes:
// right (R) and up-left (UL). Every node has six neighbours, grouped into
// five adjacency pairs (Adj) whose two members are selected by a sideways
// direction (Dir).
package coord

import (
	"fmt"
)

// Coord is a node of the triangular grid. Positive directions are right and up-left.
type Coord struct {
	R  int `yaml:"r"`  // Steps to the right.
	UL int `yaml:"ul"` // Steps to the up-left.
}

// ZERO is the world origin.
var ZERO = Coord{}

// Add returns the vector sum of two coordinates.
func (c Coord) Add(o Coord) Coord {
	return Coord{R: c.R + o.R, UL: c.UL + o.UL}
}

// Sub returns the vector difference of two coordinates.
func (c Coord) Sub(o Coord) Coord {
	return Coord{R: c.R - o.R, UL: c.UL - o.UL}
}

// Neg returns the coordinate mirrored through the origin.
func (c Coord) Neg() Coord {
	return Coord{R: -c.R, UL: -c.UL}
}

// Mul scales the coordinate by k.
func (c Coord) Mul(k int) Coord {
	return Coord{R: c.R * k, UL: c.UL * k}
}

// Compare orders coordinates by R, then by UL.
func (c Coord) Compare(o Coord) int {
	switch {
	case c.R < o.R:
		return -1
	case c.R > o.R:
		return 1
	case c.UL < o.UL:
		return -1
	case c.UL > o.UL:
		return 1
	}
	return 0
}

// Pair returns the two coordinates addressed by adj around c, left member first.
func (c Coord) Pair(adj Adj) (l, r Coord) {
	off := adjOffset[adj]
	return c.Add(off[L]), c.Add(off[R])
}

// Step returns the dir member of the adj pair around c.
func (c Coord) Step(adj Adj, dir Dir) Coord {
	return c.Add(adjOffset[adj][dir])
}

// Offset returns the unit offset of the dir member of an adj pair.
func Offset(adj Adj, dir Dir) Coord {
	return adjOffset[adj][dir]
}

// Absolute maps c onto a doubled-width screen grid, y growing upwards.
// Only nodes where x+y is even exist.
func (c Coord) Absolute() (x, y int) {
	return 2*c.R - c.UL, c.UL
}

// FromAbsolute is the inverse of Absolute. x+y must be even.
func FromAbsolute(x, y int) Coord {
	return Coord{R: (x + y) / 2, UL: y}
}

func (c Coord) String() string {
	return fmt.Sprintf("(r:%d,ul:%d)", c.R, c.UL)
}
