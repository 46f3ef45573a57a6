// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package interp ties the parser, world and runner into an interpreter whose
// cell kind is picked by its configuration at run time.
package interp

import (
	"io"
	"iter"
	"log"

	"github.com/ezrec/isolang/cell"
	"github.com/ezrec/isolang/config"
	"github.com/ezrec/isolang/coord"
	"github.com/ezrec/isolang/ins"
	"github.com/ezrec/isolang/parser"
	"github.com/ezrec/isolang/world"
)

// Interpreter state. Program + world + runner.
type Interpreter struct {
	Verbose bool          // If set, enables verbose logging.
	Config  config.Config // Run configuration.
	Program *ins.Program  // Currently loaded program.

	Input  io.Reader // Program input. If nil, the input is empty.
	Output io.Writer // Program output. If nil, the output is discarded.
	Trace  io.Writer // Destination of the world renders requested by the program.

	History int // Number of most recent output cells kept for Recent.

	machine machine
}

// NewInterpreter creates a new interpreter with an empty program.
func NewInterpreter(cfg config.Config) (it *Interpreter) {
	it = &Interpreter{
		Config:  cfg,
		Program: &ins.Program{},
	}

	return
}

// Parse loads a program from source.
func (it *Interpreter) Parse(input io.Reader) (err error) {
	return it.ParseSeq(parser.Bytes(input))
}

// ParseSeq loads a program from a source byte sequence.
func (it *Interpreter) ParseSeq(seq iter.Seq2[byte, error]) (err error) {
	p := &parser.Parser{
		Strict:  it.Config.Strict,
		Verbose: it.Verbose,
	}

	prog, err := p.ParseSeq(seq)
	if err != nil {
		return
	}

	it.Program = prog

	return
}

// Close releases the program input. The world, script head and step count
// remain available until the next Reset.
func (it *Interpreter) Close() (err error) {
	if it.machine != nil {
		err = it.machine.Close()
	}

	return
}

// Reset builds a fresh world and runner for the loaded program.
func (it *Interpreter) Reset() (err error) {
	it.Close()

	switch it.Config.Cell {
	case cell.KIND_NARROW:
		it.machine = newEngine[cell.Narrow](it)
	case cell.KIND_WIDE:
		it.machine = newEngine[cell.Wide](it)
	default:
		it.machine = nil
		err = cell.ErrKind(it.Config.Cell.String())
		return
	}

	if it.Verbose {
		log.Printf("interp: reset %v cells, %d instructions, overflow %v, fault %v",
			it.Config.Cell, it.Program.Len(), it.Config.Overflow, it.Config.Fault)
	}

	return
}

// Index returns the script head.
func (it *Interpreter) Index() int {
	if it.machine == nil {
		return 0
	}
	return it.machine.Index()
}

// Steps returns the number of steps since a reset.
func (it *Interpreter) Steps() int {
	if it.machine == nil {
		return 0
	}
	return it.machine.Steps()
}

// Done is true when the program has terminated.
func (it *Interpreter) Done() bool {
	if it.machine == nil {
		return false
	}
	return it.machine.Done()
}

// Head returns the world head.
func (it *Interpreter) Head() coord.Coord {
	if it.machine == nil {
		return coord.ZERO
	}
	return it.machine.Head()
}

// Current returns the instruction under the script head, and its source position.
func (it *Interpreter) Current() (in ins.Ins, pos ins.Pos, ok bool) {
	index := it.Index()
	pos, ok = it.Program.Debug(index)
	if ok {
		in = it.Program.Code[index]
	}

	return
}

// Tick performs a single step of the program.
func (it *Interpreter) Tick() (done bool, err error) {
	if it.machine == nil {
		err = ErrReset
		return
	}

	index := it.Index()
	defer func() {
		if err != nil {
			pos, _ := it.Program.Debug(index)
			err = &ErrRuntime{Index: index, Line: pos.Line, Column: pos.Column, Err: err}
		}
	}()

	it.machine.SetVerbose(it.Verbose)

	return it.machine.Step()
}

// Run ticks the program until it terminates.
func (it *Interpreter) Run() (err error) {
	for {
		var done bool
		done, err = it.Tick()
		if err != nil || done {
			return
		}
	}
}

// Render draws the world.
func (it *Interpreter) Render(out io.Writer) (err error) {
	if it.machine == nil {
		err = ErrReset
		return
	}
	return it.machine.Render(out)
}

// Recent returns the values of the most recent output cells, oldest first,
// including values that have no byte form.
func (it *Interpreter) Recent() (values []uint32) {
	if it.machine == nil {
		return
	}
	return it.machine.Recent()
}

// Restore replaces the world with a snapshot.
func (it *Interpreter) Restore(snap world.Snapshot) (err error) {
	if it.machine == nil {
		err = ErrReset
		return
	}

	it.machine.Restore(snap)

	return
}

// Snapshot copies the world.
func (it *Interpreter) Snapshot() (snap world.Snapshot) {
	if it.machine == nil {
		return
	}
	return it.machine.Snapshot()
}
