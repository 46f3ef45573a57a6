package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/peterh/liner"

	"github.com/ezrec/isolang/interp"
)

const debugHelp = `s [n]  step n instructions (default 1)
c      continue to the end
w      show the world
o      show the most recent output cells
q      quit
`

// debugger is an interactive stepper over an interpreter.
type debugger struct {
	*interp.Interpreter
	Out io.Writer
}

// Run prompts for commands until the program ends or the user quits.
func (dbg *debugger) Run() (err error) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	dbg.show()
	for !dbg.Done() {
		line, err := ln.Prompt("isolang> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		if len(strings.TrimSpace(line)) != 0 {
			ln.AppendHistory(line)
		}

		quit, err := dbg.command(line)
		if err != nil || quit {
			return err
		}
	}

	return
}

// command runs a single debugger command.
func (dbg *debugger) command(line string) (quit bool, err error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		words = []string{"s"}
	}

	switch words[0] {
	case "s", "step":
		count := 1
		if len(words) > 1 {
			count, err = strconv.Atoi(words[1])
			if err != nil || count < 1 {
				fmt.Fprintf(dbg.Out, "bad step count '%v'\n", words[1])
				return false, nil
			}
		}
		for range count {
			var done bool
			done, err = dbg.Tick()
			if err != nil || done {
				break
			}
		}
		dbg.show()
	case "c", "continue":
		err = dbg.Interpreter.Run()
		dbg.show()
	case "w", "world":
		err = dbg.Render(dbg.Out)
	case "o", "output":
		fmt.Fprintf(dbg.Out, "output %v\n", formatCells(dbg.Recent()))
	case "q", "quit":
		quit = true
	case "h", "help":
		fmt.Fprint(dbg.Out, debugHelp)
	default:
		fmt.Fprintf(dbg.Out, "unknown command '%v', try 'h'\n", words[0])
	}

	return
}

func (dbg *debugger) show() {
	in, pos, ok := dbg.Current()
	if !ok {
		fmt.Fprintf(dbg.Out, "done after %d steps\n", dbg.Steps())
		return
	}

	fmt.Fprintf(dbg.Out, "#%d %v %v head %v\n", dbg.Index(), pos, in, dbg.Head())
}

// formatCells shows cells as hex values, with the character for printable ones.
func formatCells(values []uint32) string {
	words := make([]string, len(values))
	for n, value := range values {
		if value <= unicode.MaxRune && unicode.IsPrint(rune(value)) {
			words[n] = fmt.Sprintf("%#x(%q)", value, rune(value))
		} else {
			words[n] = fmt.Sprintf("%#x", value)
		}
	}

	return "[" + strings.Join(words, " ") + "]"
}
