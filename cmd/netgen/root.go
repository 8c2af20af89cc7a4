// SPDX-License-Identifier: MIT
// Package: netgen/cmd/netgen

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/netgen/batch"
	"github.com/katalvlaran/netgen/netgen"
	"github.com/katalvlaran/netgen/observability"
)

// errProblemsFailed is returned when at least one record was skipped.
var errProblemsFailed = errors.New("some problems failed")

var generateExample = `  # one problem from positional arguments
  netgen 13502460 1 512 10 10 2000 5 500 1000 3 3 20 80 50 2000

  # a stream of records terminated by "0 0"
  netgen < problems.txt > problems.dmx

  # a YAML batch on four workers
  netgen --yaml problems.yaml --workers 4 -o problems.dmx`

// IOStreams are the standard streams of a command.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// LogFlags configure the stderr logger.
type LogFlags struct {
	Level  string
	Format string
}

func (f *LogFlags) BindFlags(flags *pflag.FlagSet) {
	flags.StringVar(&f.Level, "log-level", "warn", "Log level: debug, info, warn or error.")
	flags.StringVar(&f.Format, "log-format", observability.FormatText, "Log format: text or json.")
}

func (f *LogFlags) ToLogger(w io.Writer) (*slog.Logger, error) {
	return observability.NewLogger(w, f.Level, f.Format)
}

// GenerateFlags are the flags of the root command.
type GenerateFlags struct {
	Output      string
	Input       string
	YAML        string
	Workers     int
	MaxAttempts int

	Log LogFlags
}

func (f *GenerateFlags) BindFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&f.Output, "output", "o", "", "Write DIMACS output to this file instead of stdout.")
	flags.StringVar(&f.Input, "input", "", "Read whitespace-separated records from this file instead of stdin.")
	flags.StringVar(&f.YAML, "yaml", "", "Read records from this YAML batch file.")
	flags.IntVar(&f.Workers, "workers", 1, "Number of problems generated concurrently.")
	flags.IntVar(&f.MaxAttempts, "max-attempts", netgen.DefaultMaxAttempts, "Redraw limit of the extra-arc budget loop of each tail node.")
	f.Log.BindFlags(flags)
}

// ToOptions resolves the flags and positional arguments.
func (f *GenerateFlags) ToOptions(args []string, streams IOStreams) (*GenerateOptions, error) {
	logger, err := f.Log.ToLogger(streams.ErrOut)
	if err != nil {
		return nil, err
	}
	return &GenerateOptions{
		Args:        args,
		Input:       f.Input,
		YAML:        f.YAML,
		Output:      f.Output,
		Workers:     f.Workers,
		MaxAttempts: f.MaxAttempts,
		Logger:      logger,
		IOStreams:   streams,
	}, nil
}

// GenerateOptions drive one invocation of the root command.
type GenerateOptions struct {
	Args        []string
	Input       string
	YAML        string
	Output      string
	Workers     int
	MaxAttempts int
	Logger      *slog.Logger

	Records []batch.Record

	IOStreams
}

// NewRootCommand builds the netgen command tree.
func NewRootCommand(streams IOStreams) *cobra.Command {
	flags := &GenerateFlags{}

	cmd := &cobra.Command{
		Use:   "netgen [SEED PROBLEM NODES SOURCES SINKS DENSITY MINCOST MAXCOST SUPPLY TSOURCES TSINKS HICOST CAPACITATED MINCAP MAXCAP]",
		Short: "Generate NETGEN network-flow problems in DIMACS format",
		Long: `Generate minimum cost flow, maximum flow and assignment problems with the
NETGEN algorithm. Records are read from the arguments, from a stream of
whitespace-separated integers ending at a non-positive seed or problem
number, or from a YAML batch file.`,
		Example:       generateExample,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			opts, err := flags.ToOptions(args, streams)
			if err != nil {
				return err
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			if err := opts.Complete(); err != nil {
				return err
			}
			return opts.Run(c)
		},
	}
	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	flags.BindFlags(cmd.Flags())
	cmd.AddCommand(NewCmdVerify(streams))
	return cmd
}

func (o *GenerateOptions) Validate() error {
	if n := len(o.Args); n != 0 && n != batch.RecordFields {
		return fmt.Errorf("expected %d arguments or none, got %d", batch.RecordFields, n)
	}
	sources := 0
	for _, set := range []bool{len(o.Args) > 0, o.Input != "", o.YAML != ""} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return errors.New("positional arguments, --input and --yaml are mutually exclusive")
	}
	if o.Workers < 1 {
		return fmt.Errorf("--workers must be at least 1, got %d", o.Workers)
	}
	if o.MaxAttempts < 1 {
		return fmt.Errorf("--max-attempts must be at least 1, got %d", o.MaxAttempts)
	}
	return nil
}

// Complete loads the records.
func (o *GenerateOptions) Complete() error {
	switch {
	case len(o.Args) > 0:
		rec, err := batch.ParseArgs(o.Args)
		if err != nil {
			return err
		}
		if !rec.Valid() {
			return fmt.Errorf("seed and problem number must be positive, got %d and %d", rec.Seed, rec.Problem)
		}
		o.Records = []batch.Record{rec}
		return nil

	case o.YAML != "":
		recs, err := batch.LoadYAML(o.YAML)
		if err != nil {
			return err
		}
		o.Records = recs
		return nil
	}

	in := o.In
	if o.Input != "" && o.Input != "-" {
		fh, err := os.Open(o.Input)
		if err != nil {
			return err
		}
		defer fh.Close()
		in = fh
	}
	recs, err := batch.ReadAll(in)
	if err != nil {
		return err
	}
	o.Records = recs
	return nil
}

func (o *GenerateOptions) Run(c *cobra.Command) (err error) {
	out := o.Out
	if o.Output != "" && o.Output != "-" {
		fh, cerr := os.Create(o.Output)
		if cerr != nil {
			return cerr
		}
		defer func() {
			if cerr := fh.Close(); err == nil {
				err = cerr
			}
		}()
		out = fh
	}
	w := bufio.NewWriter(out)

	sum, err := batch.Run(c.Context(), o.Records, w,
		batch.WithWorkers(o.Workers),
		batch.WithLogger(o.Logger),
		batch.WithSpanManager(observability.NewSpanManager()),
		batch.WithMetrics(observability.NewMetricsRecorder()),
		batch.WithGenerateOptions(netgen.WithMaxAttempts(o.MaxAttempts), netgen.WithLogger(o.Logger)),
	)
	if ferr := w.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		return err
	}

	if len(sum.Failures) > 0 {
		return fmt.Errorf("%w: %d of %d", errProblemsFailed, len(sum.Failures), len(o.Records))
	}
	return nil
}
