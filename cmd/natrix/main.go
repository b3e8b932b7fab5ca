// Command natrix runs a single natrix source file.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/natrix-lang/natrix"
)

type args struct {
	verbose    *bool
	configPath *string
	astOnly    *bool
	tokensOnly *bool

	filename string
	arg      *int64
}

func readArgs() *args {
	a := &args{
		verbose:    flag.Bool("verbose", false, "Log evaluator progress to stderr"),
		configPath: flag.String("config", "", "Path to a YAML tuning config overriding defaults"),
		astOnly:    flag.Bool("ast-only", false, "Print the parsed AST and exit"),
		tokensOnly: flag.Bool("tokens-only", false, "Print the token stream and exit"),
	}
	flag.Parse()

	rest := flag.Args()
	if len(rest) < 1 || len(rest) > 2 {
		fmt.Fprintln(os.Stderr, "usage: natrix <filename> [arg]")
		os.Exit(1)
	}
	a.filename = rest[0]
	if len(rest) == 2 {
		n, err := strconv.ParseInt(rest[1], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "natrix: argument %q is not an integer\n", rest[1])
			os.Exit(1)
		}
		a.arg = &n
	}
	return a
}

func main() {
	a := readArgs()
	log := natrix.NewLogger(*a.verbose)

	cfg := natrix.NewTuningConfig()
	if *a.configPath != "" {
		var err error
		cfg, err = natrix.LoadTuningConfig(*a.configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "natrix: %s\n", err)
			os.Exit(1)
		}
	}

	log.Debug().Str("file", a.filename).Msg("parsing")

	src := natrix.LoadFile(a.filename)
	if src.Empty() {
		fmt.Fprintf(os.Stderr, "natrix: could not read %q\n", a.filename)
		os.Exit(1)
	}

	if *a.tokensOnly {
		fmt.Print(natrix.DumpTokens(src))
		return
	}

	result, err := natrix.ParseStringTuned(a.filename, src.Text, cfg)
	if err != nil {
		reportParseError(src, err)
		os.Exit(1)
	}

	if *a.astOnly {
		fmt.Print(natrix.DumpAST(result.Stmts))
		return
	}

	log.Debug().Int("statements", len(result.Stmts)).Msg("parsed")

	astats := result.Arena.Stats()
	log.Debug().
		Int("chunks", astats.ChunkCount).
		Int("payload_bytes", astats.PayloadBytes).
		Int("allocs", astats.AllocCount).
		Msg("arena stats")

	ev := natrix.NewEvaluator(result.Source, os.Stdout)
	err = ev.Run(result.Stmts, a.arg)

	gstats := ev.GCStats()
	log.Debug().
		Int("live_objects", gstats.LiveObjects).
		Int("threshold", gstats.Threshold).
		Msg("gc stats")

	if err != nil {
		fmt.Fprintf(os.Stderr, "natrix: %s\n", err)
		os.Exit(1)
	}
	log.Debug().Msg("done")
}

// reportParseError prints every diagnostic a failed parse collected,
// in spec.md §4.5's stderr format.
func reportParseError(src *natrix.Source, err error) {
	pe, ok := err.(*natrix.ParsingError)
	if !ok {
		fmt.Fprintf(os.Stderr, "natrix: %s\n", err)
		return
	}
	w := natrix.NewWriterHandler(os.Stderr)
	for _, d := range pe.Diagnostics {
		w(src, d)
	}
}
