package main

import (
	"context"
	"flag"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/jcorbin/matcalc/internal/logio"
)

type runner interface {
	Run(ctx context.Context) error
	Close() error
	ExitCode() int
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()

	var (
		timeout    time.Duration
		trace      bool
		cellLimit  uint
		depthLimit int
		strict     bool
		scalar     bool
		prompt     bool
	)
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.UintVar(&cellLimit, "cell-limit", 0, "limit the number of matrix cells in use")
	flag.IntVar(&depthLimit, "depth-limit", 0, "limit the operand stack depth")
	flag.BoolVar(&strict, "strict", false, "exit non-zero if any problem was reported")
	flag.BoolVar(&scalar, "scalar", false, "calculate with integers rather than matrices")
	flag.BoolVar(&prompt, "prompt", false, "prompt for input even if stdin is not a terminal")
	flag.Parse()

	log := logio.NewLogger(os.Stderr)

	var opts = []CalcOption{
		WithOutput(os.Stdout),
		WithDiagnosticLogger(log),
	}
	if args := flag.Args(); len(args) > 0 {
		for _, name := range args {
			f, err := os.Open(name)
			if err != nil {
				log.ErrorIf(err)
				return log.ExitCode()
			}
			opts = append(opts, WithInput(f))
		}
	} else if prompt || term.IsTerminal(int(os.Stdin.Fd())) {
		opts = append(opts, WithInput(newPromptReader("matcalc> ")))
	} else {
		opts = append(opts, WithInput(os.Stdin))
	}
	if trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}
	if cellLimit != 0 {
		opts = append(opts, WithCellLimit(cellLimit))
	}
	if depthLimit != 0 {
		opts = append(opts, WithDepthLimit(depthLimit))
	}

	var calc runner
	if scalar {
		calc = NewScalar(opts...)
	} else {
		calc = New(opts...)
	}
	defer calc.Close()

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := calc.Run(ctx); err != nil {
		log.ErrorIf(err)
		return 1
	}
	if strict {
		return calc.ExitCode()
	}
	return 0
}
