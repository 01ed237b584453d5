package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/idelchi/dirsize/internal/dirsize"
)

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func logic(ctx context.Context, options Options, stdout, stderr io.Writer) error {
	log := newLogger(stderr, options.Debug)

	engine, err := dirsize.ParseEngine(options.Engine)
	if err != nil {
		return err
	}

	policy := dirsize.DiskUsage
	if options.ApparentSize {
		policy = dirsize.ApparentSize
	}

	result, err := dirsize.Walk(ctx, dirsize.Config{
		Roots:   options.Paths,
		Threads: options.Threads,
		Policy:  policy,
		Engine:  engine,
		Logger:  log,
	})
	if err != nil {
		return err
	}

	output := options.Output
	if output == "auto" {
		output = "raw"
		if isTerminal(stdout) {
			output = "human"
		}
	}

	log.Debug("printing result", "output", output)

	switch output {
	case "json":
		return PrintJSON(result, stdout)
	case "human":
		return PrintHuman(result, stdout, stderr, options.Verbose)
	case "raw":
		return PrintRaw(result, stdout)
	default:
		return fmt.Errorf("unknown output format: %s", options.Output)
	}
}
