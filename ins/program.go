package ins

import (
	"fmt"
)

// Pos is a source position, 1-based.
type Pos struct {
	Line   int
	Column int
}

func (pos Pos) String() string {
	return fmt.Sprintf("%d:%d", pos.Line, pos.Column)
}

// Program is a parsed script, and the source position of each instruction.
type Program struct {
	Code []Ins
	Pos  []Pos
}

// Append adds an instruction found at pos.
func (prog *Program) Append(in Ins, pos Pos) {
	prog.Code = append(prog.Code, in)
	prog.Pos = append(prog.Pos, pos)
}

// Len is the number of instructions.
func (prog *Program) Len() int {
	if prog == nil {
		return 0
	}
	return len(prog.Code)
}

// Debug returns the source position of the instruction at index.
func (prog *Program) Debug(index int) (pos Pos, ok bool) {
	if prog == nil || index < 0 || index >= len(prog.Pos) {
		return
	}

	return prog.Pos[index], true
}
