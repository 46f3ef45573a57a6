// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package cell implements the numeric cells stored in an Isolang world.
//
// Two interchangeable kinds exist: Narrow (8-bit, one byte per character)
// and Wide (32-bit, one Unicode scalar per character). The kind is chosen
// once per run; the world and runner are generic over it.
package cell

import (
	"fmt"
	"io"
	"iter"
	"math"
)

// MAX_MAGNITUDE bounds the step count a cell can contribute to a move or jump.
const MAX_MAGNITUDE = math.MaxInt32

// Cell is the capability set of a cell type C. The zero value of C is ZERO.
type Cell[C any] interface {
	comparable
	fmt.Stringer

	One() C       // Multiplicative identity.
	IsZero() bool // Additive zero test.

	Add(b C, policy Overflow) (C, error)
	Sub(b C, policy Overflow) (C, error)
	Mul(b C, policy Overflow) (C, error)
	Div(b C) (C, error)

	Magnitude() int // Non-negative step count, clamped to MAX_MAGNITUDE.
	Uint32() uint32 // Numeric value.

	// FromUint32 converts a numeric value, truncated to the cell width.
	FromUint32(v uint32) C
	Bytes() []byte  // Output form.

	// Stream adapts a reader into a lazy, non-restartable sequence of cells.
	Stream(r io.Reader) iter.Seq2[C, error]
}

func satisfies[C Cell[C]]() {}

var (
	_ = satisfies[Narrow]
	_ = satisfies[Wide]
)

// Zero returns the additive zero of C.
func Zero[C Cell[C]]() (zero C) {
	return
}

// One returns the multiplicative identity of C.
func One[C Cell[C]]() C {
	var zero C
	return zero.One()
}

// clampMagnitude bounds a value to [0, MAX_MAGNITUDE].
func clampMagnitude(value uint64) int {
	if value > MAX_MAGNITUDE {
		return MAX_MAGNITUDE
	}
	return int(value)
}

// add computes a+b bounded by max.
func add(a, b, max uint64, policy Overflow) (uint64, error) {
	sum := a + b
	if sum <= max {
		return sum, nil
	}
	return policy.overflow(sum, max)
}

// mul computes a*b bounded by max.
func mul(a, b, max uint64, policy Overflow) (uint64, error) {
	product := a * b
	if product <= max {
		return product, nil
	}
	return policy.overflow(product, max)
}

// sub computes a-b bounded below by zero.
func sub(a, b, max uint64, policy Overflow) (uint64, error) {
	if a >= b {
		return a - b, nil
	}
	switch policy {
	case OVERFLOW_SATURATE:
		return 0, nil
	case OVERFLOW_FAIL:
		return 0, ErrUnderflow
	}
	return (a - b) & max, nil
}

// div computes a/b, truncating.
func div(a, b uint64) (uint64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}
