// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package runner executes Isolang programs against a world.
package runner

import (
	"errors"
	"log"
	"math/rand/v2"

	"github.com/ezrec/isolang/cell"
	"github.com/ezrec/isolang/coord"
	"github.com/ezrec/isolang/ins"
	"github.com/ezrec/isolang/world"
)

// Runner threads the script head through a program, one instruction per step.
type Runner[C cell.Cell[C]] struct {
	Verbose  bool                    // Set to enable verbose logging.
	Overflow cell.Overflow           // Arithmetic overflow policy.
	Fault    Fault                   // Arithmetic fault policy.
	Rand     *rand.Rand              // Source for random choices. If nil, the global source is used.
	Dump     func(w *world.World[C]) // Called by the dump instruction, if set.

	Program *ins.Program    // Program to execute.
	Head    int             // Script head, an index into the program.
	World   *world.World[C] // World the program operates on.
	Steps   int             // Number of completed steps.
}

// NewRunner creates a runner at the start of a program.
func NewRunner[C cell.Cell[C]](prog *ins.Program, w *world.World[C]) (r *Runner[C]) {
	r = &Runner[C]{
		Program: prog,
		World:   w,
	}

	return
}

// Done is true when the script head has left the program.
func (r *Runner[C]) Done() bool {
	return r.Head < 0 || r.Head >= r.Program.Len()
}

// Step executes the instruction under the script head, then advances the
// script head unless the instruction jumped. On error, the script head is
// left on the failing instruction.
func (r *Runner[C]) Step() (done bool, err error) {
	if r.Done() {
		return true, nil
	}

	jumped, err := r.Execute(&r.Program.Code[r.Head])
	if err != nil {
		return
	}

	if !jumped {
		r.Head++
	}
	r.Steps++

	return r.Done(), nil
}

// Execute executes a single instruction, reporting if it moved the script head.
func (r *Runner[C]) Execute(in *ins.Ins) (jumped bool, err error) {
	w := r.World

	if r.Verbose {
		log.Printf("runner: %d: %v @ %v", r.Head, in, w.Head)
	}

	switch in.Op {
	case ins.OP_NOOP:
	case ins.OP_MOVE_ONE:
		w.Head = w.Head.Step(in.Adj, in.Dir)
	case ins.OP_MOVE_DYNAMIC:
		distance := w.Peek(w.Head).Magnitude()
		w.Head = w.Head.Add(coord.Offset(in.Adj, in.Dir).Mul(distance))
	case ins.OP_ADD, ins.OP_SUB, ins.OP_MUL, ins.OP_DIV:
		err = r.arithmetic(in)
	case ins.OP_SWAP:
		err = r.swap(in.Adj)
	case ins.OP_JUMP:
		distance := w.Peek(w.Head).Magnitude()
		if in.Dir == coord.L {
			distance = -distance
		}
		r.Head += distance
		jumped = true
	case ins.OP_IF_NOT_ZERO:
		if !w.Peek(w.Head).IsZero() {
			return r.Execute(in.Then)
		}
	case ins.OP_IF_ZERO:
		if w.Peek(w.Head).IsZero() {
			return r.Execute(in.Then)
		}
	case ins.OP_RANDOM:
		if r.coin() {
			return r.Execute(in.Then)
		}
		return r.Execute(in.Else)
	case ins.OP_DUMP:
		if r.Dump != nil {
			r.Dump(w)
		}
	default:
		err = ErrOp(in.Op)
	}

	return
}

func (r *Runner[C]) coin() bool {
	if r.Rand != nil {
		return r.Rand.IntN(2) == 0
	}
	return rand.IntN(2) == 0
}

// arithmetic writes `left op right` of the adjacency pair to the head cell.
func (r *Runner[C]) arithmetic(in *ins.Ins) (err error) {
	w := r.World
	l, rt := w.Head.Pair(in.Adj)

	left, err := w.Get(l)
	if err != nil {
		return
	}
	right, err := w.Get(rt)
	if err != nil {
		return
	}

	var value C
	switch in.Op {
	case ins.OP_ADD:
		value, err = left.Add(right, r.Overflow)
	case ins.OP_SUB:
		value, err = left.Sub(right, r.Overflow)
	case ins.OP_MUL:
		value, err = left.Mul(right, r.Overflow)
	case ins.OP_DIV:
		value, err = left.Div(right)
	}
	if err != nil {
		if r.Fault == FAULT_IGNORE && isArithmetic(err) {
			if r.Verbose {
				log.Printf("runner: %d: %v ignored: %v", r.Head, in, err)
			}
			err = nil
		}
		return
	}

	return w.Insert(w.Head, value)
}

func (r *Runner[C]) swap(adj coord.Adj) (err error) {
	w := r.World
	l, rt := w.Head.Pair(adj)

	left, err := w.Get(l)
	if err != nil {
		return
	}
	right, err := w.Get(rt)
	if err != nil {
		return
	}

	err = w.Insert(l, right)
	if err != nil {
		return
	}

	return w.Insert(rt, left)
}

func isArithmetic(err error) bool {
	return errors.Is(err, cell.ErrDivideByZero) ||
		errors.Is(err, cell.ErrOverflow) ||
		errors.Is(err, cell.ErrUnderflow)
}
