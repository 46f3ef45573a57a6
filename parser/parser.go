// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package parser turns Isolang source into a program.
//
// The grammar is read in a single pass with one byte of lookahead. Each
// instruction is an opener, followed by an adjacency character for the grid
// instructions, followed by a chain of modifiers:
//
//	+a  add          *a  multiply     ~a  swap
//	>a  move one     ;a  move dynamic :   jump
//	.   no-op        @   dump
//
//	a:  - \ / ^ v
//
//	!   invert       ?   only if the head cell is non-zero
//	!#  ?#           the same, on a coin flip
//	#   skip, on a coin flip
//
// Subtraction, division, and the leftward moves and jumps are written as
// the inversion of their counterpart, for example "+-!".
package parser

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"log"

	"github.com/ezrec/isolang/coord"
	"github.com/ezrec/isolang/ins"
)

// Parser parses Isolang source.
type Parser struct {
	Strict  bool // If set, unknown characters are an error instead of being skipped.
	Verbose bool // If set, verbosely logs each parsed instruction.
}

// Bytes adapts a reader to a byte sequence.
func Bytes(input io.Reader) iter.Seq2[byte, error] {
	return func(yield func(byte, error) bool) {
		br := bufio.NewReader(input)
		for {
			ch, err := br.ReadByte()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(ch, err) || err != nil {
				return
			}
		}
	}
}

// Parse parses an input stream into a Program.
func (p *Parser) Parse(input io.Reader) (prog *ins.Program, err error) {
	return p.ParseSeq(Bytes(input))
}

// ParseSeq parses a byte sequence into a Program. On error, no program is
// returned.
func (p *Parser) ParseSeq(seq iter.Seq2[byte, error]) (prog *ins.Program, err error) {
	next, stop := iter.Pull2(seq)
	defer stop()

	sc := &scanner{next: next, pos: ins.Pos{Line: 1, Column: 1}}

	defer func() {
		if err != nil {
			err = &ErrSyntax{Line: sc.last.Line, Column: sc.last.Column, Err: err}
			prog = nil
		}
	}()

	prog = &ins.Program{}
	for {
		var ch byte
		var ok bool
		ch, ok, err = sc.read()
		if err != nil || !ok {
			return
		}

		at := sc.last

		var in ins.Ins
		in, ok, err = p.opener(sc, ch)
		if err != nil {
			return
		}
		if !ok {
			if isSpace(ch) {
				continue
			}
			if p.Strict {
				err = ErrUnexpected(ch)
				return
			}
			if p.Verbose {
				log.Printf("parser: %v: skipping %q", at, ch)
			}
			continue
		}

		in, err = p.modifiers(sc, in)
		if err != nil {
			return
		}

		if p.Verbose {
			log.Printf("parser: %v: %v", at, in)
		}

		prog.Append(in, at)
	}
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

// opener decodes the base instruction started by ch.
func (p *Parser) opener(sc *scanner, ch byte) (in ins.Ins, ok bool, err error) {
	var adj coord.Adj

	switch ch {
	case '.':
		return ins.Noop(), true, nil
	case '@':
		return ins.Dump(), true, nil
	case ':':
		return ins.Jump(coord.R), true, nil
	case '+', '*', '~', '>', ';':
		adj, err = p.adjacency(sc)
		if err != nil {
			return
		}
	default:
		return
	}

	ok = true
	switch ch {
	case '+':
		in = ins.Add(adj)
	case '*':
		in = ins.Mul(adj)
	case '~':
		in = ins.Swap(adj)
	case '>':
		in = ins.MoveOne(adj, coord.R)
	case ';':
		in = ins.MoveDynamic(adj, coord.R)
	}

	return
}

func (p *Parser) adjacency(sc *scanner) (adj coord.Adj, err error) {
	ch, ok, err := sc.read()
	if err != nil {
		return
	}
	if !ok {
		err = ErrTruncated
		return
	}

	adj, ok = coord.ParseAdj(ch)
	if !ok {
		err = ErrBadAdjacency(ch)
	}

	return
}

// modifiers applies the modifier chain following an instruction.
func (p *Parser) modifiers(sc *scanner, in ins.Ins) (out ins.Ins, err error) {
	out = in
	for {
		ch, ok, err := sc.peek()
		if err != nil || !ok {
			return out, err
		}

		var mod ins.Mod
		switch ch {
		case '!':
			mod.Kind = ins.MOD_INVERT
		case '?':
			mod.Kind = ins.MOD_COND
		case '#':
			mod = ins.Mod{Kind: ins.MOD_SKIP, RandomMaybe: true}
		default:
			return out, nil
		}
		sc.skip()

		if !mod.RandomMaybe {
			ch, ok, err = sc.peek()
			if err != nil {
				return out, err
			}
			if ok && ch == '#' {
				sc.skip()
				mod.RandomMaybe = true
			}
		}

		out, err = out.Modify(mod)
		if err != nil {
			return out, err
		}
	}
}
