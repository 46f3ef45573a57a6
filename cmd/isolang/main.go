// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"iter"
	"log"
	"os"
	"strings"

	"github.com/ezrec/isolang/config"
	"github.com/ezrec/isolang/internal"
	"github.com/ezrec/isolang/interp"
	"github.com/ezrec/isolang/parser"
	"github.com/ezrec/isolang/translate"
	"github.com/ezrec/isolang/world"
)

func main() {
	var configFile string
	var input string
	var output string
	var dump string
	var load string
	var lang string
	var step bool
	var verbose bool

	cfg := config.Default()
	flags := cfg

	flag.TextVar(&flags.Cell, "c", cfg.Cell, "Cell kind: u8 or u32")
	flag.BoolVar(&flags.Strict, "strict", cfg.Strict, "Reject unknown source characters")
	flag.TextVar(&flags.Overflow, "overflow", cfg.Overflow, "Overflow policy: wrap, saturate or fail")
	flag.TextVar(&flags.Fault, "fault", cfg.Fault, "Arithmetic fault policy: halt or ignore")
	flag.Uint64Var(&flags.Seed, "seed", cfg.Seed, "Random seed, 0 for nondeterministic")
	flag.StringVar(&configFile, "config", "", ".star configuration file")
	flag.StringVar(&input, "i", "-", "Program input")
	flag.StringVar(&output, "o", "-", "Program output")
	flag.StringVar(&dump, "dump", "", "Write the final world to a .yaml or .yaml.zst file")
	flag.StringVar(&load, "load", "", "Start from a world read from a .yaml or .yaml.zst file")
	flag.StringVar(&lang, "lang", "", "Message locale, as a BCP 47 tag")
	flag.BoolVar(&step, "step", false, "Step through the program interactively")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if len(lang) != 0 {
		translate.Use(lang)
	}

	if flag.NArg() == 0 {
		log.Fatalf("%v: No script files given", os.Args[0])
	}

	if len(configFile) != 0 {
		err := cfg.Load(configFile, nil)
		if err != nil {
			log.Fatalf("%v: %v", configFile, err)
		}
	}

	// Explicit flags override the configuration file.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "c":
			cfg.Cell = flags.Cell
		case "strict":
			cfg.Strict = flags.Strict
		case "overflow":
			cfg.Overflow = flags.Overflow
		case "fault":
			cfg.Fault = flags.Fault
		case "seed":
			cfg.Seed = flags.Seed
		}
	})

	it := interp.NewInterpreter(cfg)
	it.Verbose = verbose
	it.Trace = os.Stderr
	if step {
		it.History = 16
	}

	var sources []iter.Seq2[byte, error]
	for _, name := range flag.Args() {
		var inf io.Reader = os.Stdin
		if name != "-" {
			file, err := os.Open(name)
			if err != nil {
				log.Fatalf("%v: %v", name, err)
			}
			defer file.Close()
			inf = file
		}
		sources = append(sources, parser.Bytes(inf))
	}

	err := it.ParseSeq(internal.IterSeq2Concat(sources...))
	if err != nil {
		log.Fatalf("%v: %v", strings.Join(flag.Args(), ","), err)
	}

	if input == "-" {
		if step {
			log.Fatalf("%v: -step needs an input file (-i)", os.Args[0])
		}
		it.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		it.Input = inf
	}

	if output == "-" {
		it.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		it.Output = ouf
	}

	err = it.Reset()
	if err != nil {
		log.Fatal(err)
	}
	defer it.Close()

	if len(load) != 0 {
		err = readSnapshot(it, load)
		if err != nil {
			log.Fatalf("%v: %v", load, err)
		}
	}

	if step {
		dbg := &debugger{Interpreter: it, Out: os.Stderr}
		err = dbg.Run()
	} else {
		err = it.Run()
	}

	if len(dump) != 0 {
		dumpErr := writeSnapshot(it, dump)
		if dumpErr != nil {
			log.Fatalf("%v: %v", dump, dumpErr)
		}
	}

	if err != nil {
		log.Fatal(err)
	}

	if verbose {
		log.Printf("isolang: %d steps, %v cells", it.Steps(), cfg.Cell)
	}
}

// writeSnapshot saves the world, zstd compressed for a .zst name.
func writeSnapshot(it *interp.Interpreter, name string) (err error) {
	ouf, err := os.Create(name)
	if err != nil {
		return
	}
	defer func() {
		closeErr := ouf.Close()
		if err == nil {
			err = closeErr
		}
	}()

	snap := it.Snapshot()
	if strings.HasSuffix(name, ".zst") {
		return snap.EncodeZstd(ouf)
	}

	return snap.Encode(ouf)
}

// readSnapshot restores the world, zstd compressed for a .zst name.
func readSnapshot(it *interp.Interpreter, name string) (err error) {
	inf, err := os.Open(name)
	if err != nil {
		return
	}
	defer inf.Close()

	snap, err := world.DecodeSnapshot(inf, strings.HasSuffix(name, ".zst"))
	if err != nil {
		return
	}

	return it.Restore(snap)
}
