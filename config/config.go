// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config holds the run configuration of the interpreter, and loads
// it from Starlark files.
//
// A configuration file assigns any of these globals:
//
//	cell = NARROW        # or WIDE, "u8", "u32"
//	strict = True
//	overflow = SATURATE  # or WRAP, FAIL
//	on_fault = IGNORE    # or HALT
//	seed = 1234          # 0 for a nondeterministic seed
//
// Other globals are ignored, so files can compute values with helpers.
package config

import (
	"errors"
	"math/rand/v2"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/isolang/cell"
	"github.com/ezrec/isolang/runner"
)

// Config is the run configuration.
type Config struct {
	Cell     cell.Kind     // Cell kind.
	Strict   bool          // Reject unknown source characters.
	Overflow cell.Overflow // Arithmetic overflow policy.
	Fault    runner.Fault  // Arithmetic fault policy.
	Seed     uint64        // Random seed; zero for a nondeterministic source.
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Cell:     cell.KIND_WIDE,
		Overflow: cell.OVERFLOW_WRAP,
		Fault:    runner.FAULT_HALT,
	}
}

// Rand returns the random source selected by the seed, or nil to use the
// global source.
func (cfg Config) Rand() *rand.Rand {
	if cfg.Seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
}

var predeclared = starlark.StringDict{
	"NARROW":   starlark.String(cell.KIND_NARROW.String()),
	"WIDE":     starlark.String(cell.KIND_WIDE.String()),
	"WRAP":     starlark.String(cell.OVERFLOW_WRAP.String()),
	"SATURATE": starlark.String(cell.OVERFLOW_SATURATE.String()),
	"FAIL":     starlark.String(cell.OVERFLOW_FAIL.String()),
	"HALT":     starlark.String(runner.FAULT_HALT.String()),
	"IGNORE":   starlark.String(runner.FAULT_IGNORE.String()),
}

// Load runs a Starlark configuration file on top of the default
// configuration. src may be nil (read the named file), a string, a []byte,
// or an io.Reader.
func (cfg *Config) Load(name string, src any) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrConfig, err)
		}
	}()

	thread := starlark.Thread{Name: name}
	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, &thread, name, src, predeclared)
	if err != nil {
		return
	}

	next := *cfg
	for _, key := range globals.Keys() {
		value := globals[key]
		switch key {
		case "cell":
			err = unmarshalString(value, &next.Cell)
		case "strict":
			next.Strict, err = asBool(value)
		case "overflow":
			err = unmarshalString(value, &next.Overflow)
		case "on_fault":
			err = unmarshalString(value, &next.Fault)
		case "seed":
			next.Seed, err = asUint64(value)
		default:
			continue
		}
		if err != nil {
			err = &ErrGlobal{Name: key, Err: err}
			return
		}
	}

	*cfg = next

	return
}

// Load runs a Starlark configuration file on top of Default().
func Load(name string, src any) (cfg Config, err error) {
	cfg = Default()
	err = cfg.Load(name, src)
	return
}

type textUnmarshaler interface {
	UnmarshalText(text []byte) error
}

func unmarshalString(value starlark.Value, target textUnmarshaler) (err error) {
	text, ok := starlark.AsString(value)
	if !ok {
		return ErrType(value.Type())
	}

	return target.UnmarshalText([]byte(text))
}

func asBool(value starlark.Value) (flag bool, err error) {
	b, ok := value.(starlark.Bool)
	if !ok {
		err = ErrType(value.Type())
		return
	}

	return bool(b), nil
}

func asUint64(value starlark.Value) (number uint64, err error) {
	i, ok := value.(starlark.Int)
	if !ok {
		err = ErrType(value.Type())
		return
	}

	number, ok = i.Uint64()
	if !ok {
		err = ErrRange(i.String())
	}

	return
}
