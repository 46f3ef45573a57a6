package runner

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/isolang/cell"
	"github.com/ezrec/isolang/channel"
	"github.com/ezrec/isolang/coord"
	"github.com/ezrec/isolang/ins"
	"github.com/ezrec/isolang/world"
)

func newRunner(code ...ins.Ins) *Runner[cell.Narrow] {
	prog := &ins.Program{}
	for n, in := range code {
		prog.Append(in, ins.Pos{Line: 1, Column: n + 1})
	}
	return NewRunner(prog, world.NewWorld[cell.Narrow](nil))
}

func TestRunnerEmpty(t *testing.T) {
	assert := assert.New(t)

	r := newRunner()
	assert.True(r.Done())

	done, err := r.Step()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(0, r.Steps)
}

func TestRunnerMoveOne(t *testing.T) {
	assert := assert.New(t)

	r := newRunner(ins.MoveOne(coord.LR, coord.R))

	done, err := r.Step()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(coord.Coord{R: 1, UL: 0}, r.World.Head)
	assert.Equal(1, r.Head)
	assert.Equal(1, r.Steps)
}

func TestRunnerMoveDynamic(t *testing.T) {
	assert := assert.New(t)

	r := newRunner(
		ins.MoveDynamic(coord.LR, coord.R),
		ins.MoveDynamic(coord.U2, coord.L),
	)
	r.World.Head = coord.Coord{R: 0, UL: 1}
	assert.NoError(r.World.Insert(r.World.Head, 3))

	_, err := r.Step()
	assert.NoError(err)
	assert.Equal(coord.Coord{R: 3, UL: 1}, r.World.Head)

	// Unwritten cells move by one.
	_, err = r.Step()
	assert.NoError(err)
	assert.Equal(coord.Coord{R: 3, UL: 2}, r.World.Head)
}

func TestRunnerMoveDynamicZero(t *testing.T) {
	assert := assert.New(t)

	r := newRunner(ins.MoveDynamic(coord.DLUR, coord.R))
	r.World.Head = coord.Coord{R: 2, UL: 2}
	assert.NoError(r.World.Insert(r.World.Head, 0))

	_, err := r.Step()
	assert.NoError(err)
	assert.Equal(coord.Coord{R: 2, UL: 2}, r.World.Head)
}

func TestRunnerJump(t *testing.T) {
	assert := assert.New(t)

	code := make([]ins.Ins, 10)
	for n := range code {
		code[n] = ins.Noop()
	}
	code[5] = ins.Jump(coord.R)
	code[9] = ins.Jump(coord.L)

	r := newRunner(code...)
	r.World.Head = coord.Coord{R: 1, UL: 1}
	assert.NoError(r.World.Insert(r.World.Head, 3))

	r.Head = 5
	done, err := r.Step()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(8, r.Head)

	r.Head = 9
	_, err = r.Step()
	assert.NoError(err)
	assert.Equal(6, r.Head)
}

func TestRunnerJumpOut(t *testing.T) {
	table := []struct {
		name  string
		jump  ins.Ins
		value cell.Narrow
		head  int
	}{
		{"past-end", ins.Jump(coord.R), 2, 3},
		{"before-start", ins.Jump(coord.L), 2, -1},
	}

	for _, entry := range table {
		t.Run(entry.name, func(t *testing.T) {
			assert := assert.New(t)

			r := newRunner(ins.Noop(), entry.jump)
			r.World.Head = coord.Coord{R: 4}
			assert.NoError(r.World.Insert(r.World.Head, entry.value))
			r.Head = 1

			done, err := r.Step()
			assert.NoError(err)
			assert.True(done)
			assert.Equal(entry.head, r.Head)
		})
	}
}

func TestRunnerJumpZero(t *testing.T) {
	assert := assert.New(t)

	r := newRunner(ins.Jump(coord.R))
	r.World.Head = coord.Coord{R: 1}
	assert.NoError(r.World.Insert(r.World.Head, 0))

	for range 5 {
		done, err := r.Step()
		assert.NoError(err)
		assert.False(done)
		assert.Equal(0, r.Head)
	}
	assert.Equal(5, r.Steps)
}

func TestRunnerArithmetic(t *testing.T) {
	table := []struct {
		in       ins.Ins
		left     cell.Narrow
		right    cell.Narrow
		expected cell.Narrow
	}{
		{ins.Add(coord.LR), 5, 3, 8},
		{ins.Sub(coord.LR), 5, 3, 2},
		{ins.Sub(coord.LR), 3, 5, 254},
		{ins.Mul(coord.LR), 5, 3, 15},
		{ins.Div(coord.LR), 7, 2, 3},
	}

	for _, entry := range table {
		t.Run(entry.in.String(), func(t *testing.T) {
			assert := assert.New(t)

			r := newRunner(entry.in)
			r.World.Head = coord.Coord{R: 1, UL: 1}
			l, rt := r.World.Head.Pair(coord.LR)
			assert.NoError(r.World.Insert(l, entry.left))
			assert.NoError(r.World.Insert(rt, entry.right))

			_, err := r.Step()
			assert.NoError(err)
			assert.Equal(entry.expected, r.World.Peek(r.World.Head))
			assert.Equal(entry.left, r.World.Peek(l))
			assert.Equal(entry.right, r.World.Peek(rt))
		})
	}
}

func TestRunnerAddOnes(t *testing.T) {
	assert := assert.New(t)

	r := newRunner(ins.Add(coord.ULDR), ins.Add(coord.LR))
	r.World.Head = coord.Coord{R: 3, UL: -2}

	_, err := r.Step()
	assert.NoError(err)
	assert.Equal(cell.Narrow(2), r.World.Peek(r.World.Head))
	assert.Equal(1, r.World.Len())
}

func TestRunnerAddAtOrigin(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	tape := &channel.Tape[cell.Narrow]{Output: &out}
	r := NewRunner(&ins.Program{Code: []ins.Ins{ins.Add(coord.LR)}}, world.NewWorld[cell.Narrow](tape))

	_, err := r.Step()
	assert.NoError(err)
	assert.Equal([]byte{2}, out.Bytes())
	assert.Equal(0, r.World.Len())
}

func TestRunnerSwap(t *testing.T) {
	assert := assert.New(t)

	r := newRunner(ins.Swap(coord.DLUR))
	r.World.Head = coord.Coord{R: 5, UL: 5}
	l, rt := r.World.Head.Pair(coord.DLUR)
	assert.NoError(r.World.Insert(l, 7))

	_, err := r.Step()
	assert.NoError(err)
	assert.Equal(cell.Narrow(1), r.World.Peek(l))
	assert.Equal(cell.Narrow(7), r.World.Peek(rt))
	assert.False(r.World.Stored(l))
	assert.Equal(coord.Coord{R: 5, UL: 5}, r.World.Head)
}

func TestRunnerSwapOrigin(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	tape := &channel.Tape[cell.Narrow]{
		Input:  strings.NewReader("a"),
		Output: &out,
	}
	r := NewRunner(&ins.Program{Code: []ins.Ins{ins.Swap(coord.LR)}}, world.NewWorld[cell.Narrow](tape))
	r.World.Head = coord.Coord{R: 1}
	assert.NoError(r.World.Insert(coord.Coord{R: 2}, 'z'))

	_, err := r.Step()
	assert.NoError(err)
	assert.Equal("z", out.String())
	assert.Equal(cell.Narrow('a'), r.World.Peek(coord.Coord{R: 2}))
}

func TestRunnerNoop(t *testing.T) {
	assert := assert.New(t)

	r := newRunner(ins.Noop(), ins.Noop(), ins.Noop())
	r.World.Head = coord.Coord{R: -2, UL: 1}
	assert.NoError(r.World.Insert(coord.Coord{R: 4}, 9))

	before := r.World.Snapshot()
	for n := range 3 {
		_, err := r.Step()
		assert.NoError(err)
		assert.Equal(n+1, r.Head)
		assert.Equal(before, r.World.Snapshot())
	}
}

func TestRunnerConditional(t *testing.T) {
	table := []struct {
		name     string
		in       ins.Ins
		value    cell.Narrow
		expected cell.Narrow
	}{
		{"ifnz-zero", ins.IfNotZero(ins.Sub(coord.LR)), 0, 0},
		{"ifnz-set", ins.IfNotZero(ins.Sub(coord.LR)), 4, 3},
		{"ifz-zero", ins.IfZero(ins.Add(coord.LR)), 0, 5},
		{"ifz-set", ins.IfZero(ins.Add(coord.LR)), 4, 4},
		{"nested", ins.IfNotZero(ins.IfNotZero(ins.Mul(coord.LR))), 4, 12},
	}

	for _, entry := range table {
		t.Run(entry.name, func(t *testing.T) {
			assert := assert.New(t)

			r := newRunner(entry.in)
			r.World.Head = coord.Coord{R: 2, UL: 2}
			l, rt := r.World.Head.Pair(coord.LR)
			assert.NoError(r.World.Insert(l, 4))
			assert.NoError(r.World.Insert(rt, 1))
			assert.NoError(r.World.Insert(r.World.Head, entry.value))
			if entry.name == "nested" {
				assert.NoError(r.World.Insert(rt, 3))
			}

			done, err := r.Step()
			assert.NoError(err)
			assert.True(done)
			assert.Equal(1, r.Head)
			assert.Equal(entry.expected, r.World.Peek(r.World.Head))
		})
	}
}

func TestRunnerConditionalJump(t *testing.T) {
	assert := assert.New(t)

	r := newRunner(ins.IfNotZero(ins.Jump(coord.R)), ins.Noop(), ins.Noop())
	r.World.Head = coord.Coord{R: 1}
	assert.NoError(r.World.Insert(r.World.Head, 2))

	_, err := r.Step()
	assert.NoError(err)
	assert.Equal(2, r.Head)
}

func TestRunnerAddThenJump(t *testing.T) {
	assert := assert.New(t)

	r := newRunner(
		ins.Add(coord.LR),
		ins.Jump(coord.R),
		ins.MoveOne(coord.LR, coord.R),
		ins.Noop(),
	)
	r.World.Head = coord.Coord{R: 2, UL: 2}

	for {
		done, err := r.Step()
		assert.NoError(err)
		if err != nil || done {
			break
		}
	}

	assert.Equal(3, r.Steps)
	assert.Equal(coord.Coord{R: 2, UL: 2}, r.World.Head)
}

func TestRunnerRandom(t *testing.T) {
	assert := assert.New(t)

	r := newRunner(ins.RandomlyChoose(ins.MoveOne(coord.LR, coord.R), ins.MoveOne(coord.LR, coord.L)))
	r.Rand = rand.New(rand.NewPCG(1, 2))

	const trials = 1000
	right := 0
	for range trials {
		r.Head = 0
		r.World.Head = coord.ZERO
		_, err := r.Step()
		assert.NoError(err)
		if r.World.Head.R > 0 {
			right++
		}
	}

	assert.Greater(right, trials*4/10)
	assert.Less(right, trials*6/10)
}

func TestRunnerDump(t *testing.T) {
	assert := assert.New(t)

	r := newRunner(ins.Dump(), ins.Dump())

	_, err := r.Step()
	assert.NoError(err)

	var dumped []*world.World[cell.Narrow]
	r.Dump = func(w *world.World[cell.Narrow]) {
		dumped = append(dumped, w)
	}

	_, err = r.Step()
	assert.NoError(err)
	assert.Equal([]*world.World[cell.Narrow]{r.World}, dumped)
}

func TestRunnerFault(t *testing.T) {
	table := []struct {
		name     string
		in       ins.Ins
		overflow cell.Overflow
		err      error
	}{
		{"div-zero", ins.Div(coord.LR), cell.OVERFLOW_WRAP, cell.ErrDivideByZero},
		{"overflow", ins.Mul(coord.LR), cell.OVERFLOW_FAIL, cell.ErrOverflow},
		{"underflow", ins.Sub(coord.LR), cell.OVERFLOW_FAIL, cell.ErrUnderflow},
	}

	for _, entry := range table {
		t.Run(entry.name, func(t *testing.T) {
			for _, fault := range []Fault{FAULT_HALT, FAULT_IGNORE} {
				assert := assert.New(t)

				r := newRunner(entry.in)
				r.Overflow = entry.overflow
				r.Fault = fault
				r.World.Head = coord.Coord{R: 3, UL: 3}
				l, rt := r.World.Head.Pair(coord.LR)
				assert.NoError(r.World.Insert(l, 0))
				assert.NoError(r.World.Insert(rt, 0))
				if entry.in.Op == ins.OP_MUL {
					assert.NoError(r.World.Insert(l, 100))
					assert.NoError(r.World.Insert(rt, 100))
				}
				if entry.in.Op == ins.OP_SUB {
					assert.NoError(r.World.Insert(rt, 1))
				}

				done, err := r.Step()
				if fault == FAULT_HALT {
					assert.ErrorIs(err, entry.err)
					assert.Equal(0, r.Head)
					assert.Equal(0, r.Steps)
				} else {
					assert.NoError(err)
					assert.True(done)
					assert.Equal(1, r.Head)
				}
				assert.False(r.World.Stored(r.World.Head))
			}
		})
	}
}

func TestRunnerStreamError(t *testing.T) {
	assert := assert.New(t)

	tape := &channel.Tape[cell.Wide]{Input: strings.NewReader("\xff")}
	defer tape.Close()

	prog := &ins.Program{Code: []ins.Ins{ins.Add(coord.LR)}}
	r := NewRunner(prog, world.NewWorld[cell.Wide](tape))
	r.Fault = FAULT_IGNORE
	r.World.Head = coord.Coord{R: 1}

	_, err := r.Step()
	assert.ErrorIs(err, cell.ErrDecode)
	assert.Equal(0, r.Head)
}

func TestParseFault(t *testing.T) {
	assert := assert.New(t)

	fault, err := ParseFault("IGNORE")
	assert.NoError(err)
	assert.Equal(FAULT_IGNORE, fault)

	var text Fault
	assert.NoError(text.UnmarshalText([]byte("halt")))
	assert.Equal(FAULT_HALT, text)

	_, err = ParseFault("explode")
	assert.ErrorIs(err, ErrFault("explode"))
	assert.Equal("Fault(7)", Fault(7).String())
}

func TestRunnerQueue(t *testing.T) {
	assert := assert.New(t)

	queue := &channel.Queue[cell.Wide]{Capacity: 4}
	assert.NoError(queue.Send(7))

	prog := &ins.Program{Code: []ins.Ins{
		ins.MoveOne(coord.LR, coord.R),
		ins.Add(coord.LR),
		ins.MoveOne(coord.LR, coord.L),
		ins.Mul(coord.LR),
	}}
	r := NewRunner(prog, world.NewWorld[cell.Wide](queue))
	assert.NoError(r.World.Insert(coord.Coord{R: -1}, 0x110000))

	for {
		done, err := r.Step()
		assert.NoError(err)
		if err != nil || done {
			break
		}
	}

	// Values without a byte form reach the queue unchanged.
	value, ok, err := queue.Receive()
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(cell.Wide(0x110000*8), value)
	assert.Equal(0, queue.Len())
}
