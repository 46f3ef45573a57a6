package interp

import (
	"io"
	"log"

	"github.com/ezrec/isolang/cell"
	"github.com/ezrec/isolang/channel"
	"github.com/ezrec/isolang/coord"
	"github.com/ezrec/isolang/runner"
	"github.com/ezrec/isolang/world"
)

// machine is a runner with its cell kind erased.
type machine interface {
	Close() error
	SetVerbose(verbose bool)
	Step() (done bool, err error)
	Done() bool
	Index() int
	Steps() int
	Head() coord.Coord
	Recent() []uint32
	Render(out io.Writer) error
	Snapshot() world.Snapshot
	Restore(snap world.Snapshot)
}

// recorder is a tape that also keeps the most recent output cells.
type recorder[C cell.Cell[C]] struct {
	*channel.Tape[C]
	recent *channel.Queue[C]
}

func (rec *recorder[C]) Send(value C) (err error) {
	if rec.recent.Capacity > 0 {
		if rec.recent.Len() == rec.recent.Capacity {
			rec.recent.Receive()
		}
		rec.recent.Send(value)
	}

	return rec.Tape.Send(value)
}

type engine[C cell.Cell[C]] struct {
	tape   *recorder[C]
	runner *runner.Runner[C]
}

func newEngine[C cell.Cell[C]](it *Interpreter) (eng *engine[C]) {
	eng = &engine[C]{
		tape: &recorder[C]{
			Tape: &channel.Tape[C]{
				Input:  it.Input,
				Output: it.Output,
			},
			recent: &channel.Queue[C]{Capacity: max(it.History, 0)},
		},
	}

	r := runner.NewRunner(it.Program, world.NewWorld[C](eng.tape))
	r.Verbose = it.Verbose
	r.Overflow = it.Config.Overflow
	r.Fault = it.Config.Fault
	r.Rand = it.Config.Rand()
	r.Dump = func(w *world.World[C]) {
		if it.Trace == nil {
			return
		}
		err := w.Render(it.Trace)
		if err != nil && it.Verbose {
			log.Printf("interp: trace: %v", err)
		}
	}

	eng.runner = r

	return
}

func (eng *engine[C]) Close() error {
	return eng.tape.Close()
}

func (eng *engine[C]) SetVerbose(verbose bool) {
	eng.runner.Verbose = verbose
}

func (eng *engine[C]) Step() (done bool, err error) {
	return eng.runner.Step()
}

func (eng *engine[C]) Done() bool {
	return eng.runner.Done()
}

func (eng *engine[C]) Index() int {
	return eng.runner.Head
}

func (eng *engine[C]) Steps() int {
	return eng.runner.Steps
}

func (eng *engine[C]) Head() coord.Coord {
	return eng.runner.World.Head
}

func (eng *engine[C]) Recent() (values []uint32) {
	for value := range eng.tape.recent.All() {
		values = append(values, value.Uint32())
	}

	return
}

func (eng *engine[C]) Render(out io.Writer) error {
	return eng.runner.World.Render(out)
}

func (eng *engine[C]) Snapshot() world.Snapshot {
	return eng.runner.World.Snapshot()
}

func (eng *engine[C]) Restore(snap world.Snapshot) {
	eng.runner.World.Restore(snap)
}
