package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
)

// defaultValues are the inputs used when no --value flag is given.
// One value per arm of the chain, in the order 1, >50, <25, between.
var defaultValues = []int{1, 51, 24, 30}

// if / else if / else — the first true condition wins, the rest are skipped.
//
// Run:
//
//	go run .
//	go run . --value 25 --value 50
//	go run . -v 0,-5 --verbose
func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var values []int
	var verbose bool

	flagSet := pflag.NewFlagSet("control-flow", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.IntSliceVarP(&values, "value", "v", nil, "integer to classify (repeatable, comma-separated)")
	flagSet.BoolVar(&verbose, "verbose", false, "log which branch each value took (stderr)")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return fmt.Errorf("parsing flags: %w", err)
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected arguments: %v", rest)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if len(values) == 0 {
		values = defaultValues
	}

	for _, x := range values {
		logger.Debug("classified value", "value", x, "branch", branchOf(x))
		controlFlow(stdout, x)
	}
	return nil
}
