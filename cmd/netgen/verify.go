// SPDX-License-Identifier: MIT
// Package: netgen/cmd/netgen

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/netgen/dimacs"
	"github.com/katalvlaran/netgen/netgen"
	"github.com/katalvlaran/netgen/verify"
)

var (
	errInfeasible   = errors.New("supply cannot be routed")
	errNoHeader     = errors.New("no NETGEN parameter header")
	errRegenerated  = errors.New("regenerated output differs")
	errVerifyFailed = errors.New("verification failed")
)

// VerifyFlags are the flags of the verify command.
type VerifyFlags struct {
	Regenerate bool
}

func (f *VerifyFlags) BindFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&f.Regenerate, "regenerate", false, "Regenerate every problem from its header and compare the bytes.")
}

// VerifyOptions drive one invocation of the verify command.
type VerifyOptions struct {
	Files      []string
	Regenerate bool

	IOStreams
}

// NewCmdVerify checks DIMACS files written by netgen.
func NewCmdVerify(streams IOStreams) *cobra.Command {
	flags := &VerifyFlags{}

	cmd := &cobra.Command{
		Use:   "verify FILE...",
		Short: "Check DIMACS problems for structural soundness and feasibility",
		Long: `Read DIMACS problems, check their arcs and supply balance, and route the
supply with a maximum flow computation. Maximum flow problems only need every
source to reach a sink. With --regenerate each problem is
generated again from the parameters in its header and compared byte for
byte.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			opts := &VerifyOptions{Files: args, Regenerate: flags.Regenerate, IOStreams: streams}
			return opts.Run(c)
		},
	}
	flags.BindFlags(cmd.Flags())
	return cmd
}

func (o *VerifyOptions) Run(c *cobra.Command) error {
	failed := 0
	for _, name := range o.Files {
		if err := o.verifyFile(c, name); err != nil {
			fmt.Fprintf(o.ErrOut, "%s: %v\n", name, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", errVerifyFailed, failed, len(o.Files))
	}
	return nil
}

func (o *VerifyOptions) verifyFile(c *cobra.Command, name string) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	probs, err := dimacs.ReadAll(bytes.NewReader(data))
	if err != nil {
		return err
	}

	var regen bytes.Buffer
	for i, p := range probs {
		if err := verify.Check(p.Result); err != nil {
			return fmt.Errorf("problem %d: %w", i+1, err)
		}
		ok, err := verify.Feasible(c.Context(), p.Result)
		if err != nil {
			return fmt.Errorf("problem %d: %w", i+1, err)
		}
		if !ok {
			return fmt.Errorf("problem %d: %w", i+1, errInfeasible)
		}
		fmt.Fprintf(o.Out, "%s: problem %d: %s, %d nodes, %d arcs: ok\n",
			name, i+1, p.Result.Kind, p.Result.Nodes, p.Result.NumArcs())

		if !o.Regenerate {
			continue
		}
		if !p.Header.HasParams {
			return fmt.Errorf("problem %d: %w", i+1, errNoHeader)
		}
		res, err := netgen.Generate(p.Header.Seed, p.Header.Params)
		if err != nil {
			return fmt.Errorf("problem %d: %w", i+1, err)
		}
		if err := dimacs.Write(&regen, p.Header.Seed, p.Header.Problem, p.Header.Params, res); err != nil {
			return err
		}
	}

	if o.Regenerate && !bytes.Equal(regen.Bytes(), data) {
		return errRegenerated
	}
	return nil
}
