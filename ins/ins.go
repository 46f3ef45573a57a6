// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package ins is the Isolang instruction model.
//
// Instructions are immutable values. Conditionals and random choices hold
// their children by pointer; children are never shared with the caller.
package ins

import (
	"fmt"

	"github.com/ezrec/isolang/coord"
)

// Op is an instruction operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_NOOP         = Op(0)  // noop
	OP_MOVE_ONE     = Op(1)  // move
	OP_MOVE_DYNAMIC = Op(2)  // moves
	OP_ADD          = Op(3)  // add
	OP_SUB          = Op(4)  // sub
	OP_MUL          = Op(5)  // mul
	OP_DIV          = Op(6)  // div
	OP_SWAP         = Op(7)  // swap
	OP_JUMP         = Op(8)  // jump
	OP_IF_NOT_ZERO  = Op(9)  // ifnz
	OP_IF_ZERO      = Op(10) // ifz
	OP_RANDOM       = Op(11) // rand
	OP_DUMP         = Op(12) // dump
)

// Ins is a single instruction.
//
// Adj is used by the grid operations, Dir by moves and jumps. Then is the
// guarded instruction of a conditional and the first choice of a random
// choice; Else is the second choice.
type Ins struct {
	Op   Op
	Adj  coord.Adj
	Dir  coord.Dir
	Then *Ins
	Else *Ins
}

func MoveOne(adj coord.Adj, dir coord.Dir) Ins {
	return Ins{Op: OP_MOVE_ONE, Adj: adj, Dir: dir}
}

func MoveDynamic(adj coord.Adj, dir coord.Dir) Ins {
	return Ins{Op: OP_MOVE_DYNAMIC, Adj: adj, Dir: dir}
}

func Add(adj coord.Adj) Ins {
	return Ins{Op: OP_ADD, Adj: adj}
}

func Sub(adj coord.Adj) Ins {
	return Ins{Op: OP_SUB, Adj: adj}
}

func Mul(adj coord.Adj) Ins {
	return Ins{Op: OP_MUL, Adj: adj}
}

func Div(adj coord.Adj) Ins {
	return Ins{Op: OP_DIV, Adj: adj}
}

func Swap(adj coord.Adj) Ins {
	return Ins{Op: OP_SWAP, Adj: adj}
}

func Noop() Ins {
	return Ins{Op: OP_NOOP}
}

// Jump moves the script head by the magnitude of the cell under the world head.
func Jump(dir coord.Dir) Ins {
	return Ins{Op: OP_JUMP, Dir: dir}
}

// IfNotZero runs in only when the cell under the world head is not zero.
func IfNotZero(in Ins) Ins {
	return Ins{Op: OP_IF_NOT_ZERO, Then: &in}
}

// IfZero runs in only when the cell under the world head is zero.
func IfZero(in Ins) Ins {
	return Ins{Op: OP_IF_ZERO, Then: &in}
}

// RandomlyChoose runs a or b, picked by a fair coin on each execution.
func RandomlyChoose(a, b Ins) Ins {
	return Ins{Op: OP_RANDOM, Then: &a, Else: &b}
}

// Dump invokes the diagnostic hook of the runner.
func Dump() Ins {
	return Ins{Op: OP_DUMP}
}

// Invert returns the opposite instruction. Conditionals swap their test
// and keep their guarded instruction as-is.
func (in Ins) Invert() (out Ins, err error) {
	out = in
	switch in.Op {
	case OP_MOVE_ONE, OP_MOVE_DYNAMIC, OP_JUMP:
		out.Dir = in.Dir.Neg()
	case OP_ADD:
		out.Op = OP_SUB
	case OP_SUB:
		out.Op = OP_ADD
	case OP_MUL:
		out.Op = OP_DIV
	case OP_DIV:
		out.Op = OP_MUL
	case OP_IF_NOT_ZERO:
		out.Op = OP_IF_ZERO
	case OP_IF_ZERO:
		out.Op = OP_IF_NOT_ZERO
	default:
		err = ErrNotInvertible
	}

	return
}

// String renders the instruction for logs and the debugger.
func (in Ins) String() string {
	switch in.Op {
	case OP_MOVE_ONE, OP_MOVE_DYNAMIC:
		return fmt.Sprintf("%v(%v%v)", in.Op, in.Adj, in.Dir)
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_SWAP:
		return fmt.Sprintf("%v(%v)", in.Op, in.Adj)
	case OP_JUMP:
		return fmt.Sprintf("%v(%v)", in.Op, in.Dir)
	case OP_IF_NOT_ZERO, OP_IF_ZERO:
		return fmt.Sprintf("%v(%v)", in.Op, in.Then)
	case OP_RANDOM:
		return fmt.Sprintf("%v(%v,%v)", in.Op, in.Then, in.Else)
	}

	return in.Op.String()
}
