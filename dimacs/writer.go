// SPDX-License-Identifier: MIT
// Package: netgen/dimacs
//
// writer.go - legacy NETGEN DIMACS writer.
//
// Contract:
//   - Output is byte-identical to the legacy tool for the same problem.
//   - Node lines list only nodes with non-zero supply, ascending.
//   - Arc lines follow Result.Arcs order.
//   - Every write error is returned; a failed write leaves partial output.

package dimacs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/netgen/netgen"
)

// header line labels, in parameter order, before the transshipment block
var leadLabels = [...]string{
	"Number of nodes:      ",
	"Source nodes:         ",
	"Sink nodes:           ",
	"Number of arcs:       ",
	"Minimum arc cost:     ",
	"Maximum arc cost:     ",
	"Total supply:         ",
}

// Banner returns the legacy problem banner text for k.
func Banner(k netgen.ProblemKind) string {
	switch k {
	case netgen.Assignment:
		return "Assignment"
	case netgen.MaxFlow:
		return "Maximum flow"
	default:
		return "Minimum cost flow"
	}
}

// Write emits a complete problem block: header then network.
func Write(w io.Writer, seed, problem int64, p netgen.Params, res *netgen.Result) error {
	bw := bufio.NewWriter(w)
	if err := writeHeader(bw, seed, problem, p); err != nil {
		return fmt.Errorf("%s: %w", methodWrite, err)
	}
	if err := writeNetwork(bw, res); err != nil {
		return fmt.Errorf("%s: %w", methodWrite, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", methodWrite, err)
	}
	return nil
}

// WriteHeader emits only the parameter comment block.
func WriteHeader(w io.Writer, seed, problem int64, p netgen.Params) error {
	bw := bufio.NewWriter(w)
	if err := writeHeader(bw, seed, problem, p); err != nil {
		return fmt.Errorf("%s: %w", methodWriteHeader, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", methodWriteHeader, err)
	}
	return nil
}

// WriteNetwork emits the banner, problem line, node lines and arc lines.
func WriteNetwork(w io.Writer, res *netgen.Result) error {
	bw := bufio.NewWriter(w)
	if err := writeNetwork(bw, res); err != nil {
		return fmt.Errorf("%s: %w", methodWriteNetwork, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", methodWriteNetwork, err)
	}
	return nil
}

func writeHeader(w *bufio.Writer, seed, problem int64, p netgen.Params) error {
	v := p.Slice()
	lines := []string{
		"c NETGEN flow network generator (C version)\n",
		fmt.Sprintf("c  Problem %2d input parameters\n", problem),
		"c  ---------------------------\n",
		fmt.Sprintf("c   Random seed:          %10d\n", seed),
	}
	for i, label := range leadLabels {
		lines = append(lines, fmt.Sprintf("c   %s%10d\n", label, v[i]))
	}
	lines = append(lines,
		"c   Transshipment -\n",
		fmt.Sprintf("c     Sources:            %10d\n", p.TSources),
		fmt.Sprintf("c     Sinks:              %10d\n", p.TSinks),
		"c   Skeleton arcs -\n",
		fmt.Sprintf("c     With max cost:      %10d%%\n", p.HiCostPct),
		fmt.Sprintf("c     Capacitated:        %10d%%\n", p.CapacitatedPct),
		fmt.Sprintf("c   Minimum arc capacity: %10d\n", p.MinCap),
		fmt.Sprintf("c   Maximum arc capacity: %10d\n", p.MaxCap),
	)
	for _, l := range lines {
		if _, err := w.WriteString(l); err != nil {
			return err
		}
	}
	return nil
}

func writeNetwork(w *bufio.Writer, res *netgen.Result) error {
	if res == nil {
		return ErrNilResult
	}
	if _, err := fmt.Fprintf(w, "c\nc  *** %s ***\nc\np %s %d %d\n",
		Banner(res.Kind), res.Kind.Token(), res.Nodes, len(res.Arcs)); err != nil {
		return err
	}

	for i, s := range res.Supply {
		var err error
		switch {
		case s == 0:
			continue
		case res.Kind == netgen.Assignment:
			if s > 0 {
				_, err = fmt.Fprintf(w, "n %d\n", i+1)
			}
		case res.Kind == netgen.MaxFlow:
			role := "s"
			if s < 0 {
				role = "t"
			}
			_, err = fmt.Fprintf(w, "n %d %s\n", i+1, role)
		default:
			_, err = fmt.Fprintf(w, "n %d %d\n", i+1, s)
		}
		if err != nil {
			return err
		}
	}

	for _, a := range res.Arcs {
		var err error
		switch res.Kind {
		case netgen.Assignment:
			_, err = fmt.Fprintf(w, "a %d %d %d\n", a.From, a.To, a.Cost)
		case netgen.MaxFlow:
			_, err = fmt.Fprintf(w, "a %d %d %d\n", a.From, a.To, a.Capacity)
		default:
			_, err = fmt.Fprintf(w, "a %d %d 0 %d %d\n", a.From, a.To, a.Capacity, a.Cost)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
