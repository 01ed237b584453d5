package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Options holds the parsed command-line options.
type Options struct {
	// Paths are the roots to measure.
	Paths []string
	// Threads is the number of walker threads.
	Threads int
	// ApparentSize selects apparent sizes instead of disk usage.
	ApparentSize bool
	// Engine is the traversal engine (pool or fastwalk).
	Engine string
	// Output is the output format (auto, human, raw or json).
	Output string
	// Verbose prints statistics and every error.
	Verbose bool
	// Debug enables debug logging.
	Debug bool
}

// DefaultThreads is 3 x the number of cores: enough in-flight requests for the
// IO scheduler on a cold cache without much synchronization overhead on a warm one.
func DefaultThreads() int {
	return 3 * runtime.NumCPU()
}

//nolint:gochecknoglobals // Config constant
var allowedOutputs = []string{"auto", "human", "raw", "json"}

func registerFlags(flags *pflag.FlagSet, options *Options) {
	flags.IntVarP(&options.Threads, "threads", "j", DefaultThreads(), "Number of threads")
	flags.BoolVarP(&options.ApparentSize, "apparent-size", "b", false, "Compute apparent size instead of disk usage")
	flags.StringVar(&options.Engine, "engine", "pool", "Traversal engine: pool or fastwalk")
	flags.StringVarP(&options.Output, "output", "o", "auto", "Output format: auto, human, raw or json")
	flags.BoolVarP(&options.Verbose, "verbose", "v", false, "Print statistics and all errors")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")

	flags.SortFlags = false
}

// Command builds the root command.
func (c CLI) Command() *cobra.Command {
	var options Options

	cmd := &cobra.Command{
		Use:   "dirsize [flags] [path...]",
		Short: "Compute the disk usage of files and directories",
		Long: heredoc.Doc(`
			dirsize computes the total size of the given paths, walking directories in parallel.

			Files with several hard links are counted once. Symbolic links are not followed.
			Entries that cannot be read are skipped and reported with --verbose.

			Positional Arguments:
			  path                   Paths to measure. Defaults to the current directory.

			Output:
			  auto prints a human readable size on a terminal and the raw byte count otherwise.
		`),
		Version:       c.version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(*cobra.Command, []string) error {
			if !slices.Contains(allowedOutputs, options.Output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			options.Paths = args
			if len(options.Paths) == 0 {
				options.Paths = []string{"."}
			}

			return logic(cmd.Context(), options, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.SetVersionTemplate("{{.Version}}\n")
	registerFlags(cmd.Flags(), &options)

	return cmd
}

// Execute runs the CLI with the process arguments. An interrupt cancels the walk.
func (c CLI) Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return c.Command().ExecuteContext(ctx)
}
