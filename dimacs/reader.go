// SPDX-License-Identifier: MIT
// Package: netgen/dimacs
//
// reader.go - DIMACS reader for NETGEN output.
//
// Contract:
//   - Comment lines before a "p" line belong to that problem; the NETGEN
//     parameter echo is recovered from them when complete.
//   - Assignment: listed nodes get supply +1, all others -1; capacity 1.
//   - Max flow: "s" nodes get +1, "t" nodes -1; cost 1.
//   - Min cost flow: the lower bound must be 0.
//   - Arc endpoints are not range checked here; see package verify.

package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/netgen/netgen"
)

// Header is the NETGEN parameter echo of a block.
// HasParams is true only when every field was present.
type Header struct {
	Seed      int64
	Problem   int64
	Params    netgen.Params
	HasParams bool
}

// Problem is one parsed block.
type Problem struct {
	Header Header
	Result *netgen.Result
}

// headerFields maps comment labels to positions: -2 seed, 0..12 params.
var headerFields = map[string]int{
	"Random seed":          -2,
	"Number of nodes":      0,
	"Source nodes":         1,
	"Sink nodes":           2,
	"Number of arcs":       3,
	"Minimum arc cost":     4,
	"Maximum arc cost":     5,
	"Total supply":         6,
	"Sources":              7,
	"Sinks":                8,
	"With max cost":        9,
	"Capacitated":          10,
	"Minimum arc capacity": 11,
	"Maximum arc capacity": 12,
}

// headerState accumulates the parameter echo of the next block.
type headerState struct {
	seed, problem       int64
	hasSeed, hasProblem bool
	values              [netgen.NumParams]int64
	seen                [netgen.NumParams]bool
}

func (h *headerState) header() Header {
	out := Header{Seed: h.seed, Problem: h.problem}
	complete := h.hasSeed && h.hasProblem
	for _, ok := range h.seen {
		complete = complete && ok
	}
	if complete {
		out.Params, _ = netgen.FromSlice(h.values[:])
		out.HasParams = true
	}
	return out
}

// comment parses one "c ..." line; unknown comments are ignored.
func (h *headerState) comment(text string) {
	body := strings.TrimSpace(strings.TrimPrefix(text, "c"))
	if strings.HasPrefix(body, "Problem ") && strings.HasSuffix(body, "input parameters") {
		f := strings.Fields(body)
		if v, err := strconv.ParseInt(f[1], 10, 64); err == nil {
			h.problem, h.hasProblem = v, true
		}
		return
	}
	label, value, ok := strings.Cut(body, ":")
	if !ok {
		return
	}
	pos, known := headerFields[strings.TrimSpace(label)]
	if !known {
		return
	}
	v, err := strconv.ParseInt(strings.TrimSuffix(strings.TrimSpace(value), "%"), 10, 64)
	if err != nil {
		return
	}
	if pos == -2 {
		h.seed, h.hasSeed = v, true
		return
	}
	h.values[pos], h.seen[pos] = v, true
}

// Read parses the first problem block of r.
func Read(r io.Reader) (*Problem, error) {
	probs, err := ReadAll(r)
	if err != nil {
		return nil, err
	}
	return probs[0], nil
}

// ReadAll parses every problem block of r.
func ReadAll(r io.Reader) ([]*Problem, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		out      []*Problem
		cur      *Problem
		declared int
		pending  headerState
		lineNo   int
	)
	finish := func() error {
		if cur == nil {
			return nil
		}
		if len(cur.Result.Arcs) != declared {
			return fmt.Errorf("%s: problem %d: %w: declared %d, found %d",
				methodRead, len(out)+1, ErrArcCount, declared, len(cur.Result.Arcs))
		}
		out = append(out, cur)
		return nil
	}

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		f := strings.Fields(line)
		switch f[0] {
		case "c":
			pending.comment(line)
		case "p":
			if err := finish(); err != nil {
				return nil, err
			}
			p, n, err := parseProblemLine(lineNo, f)
			if err != nil {
				return nil, err
			}
			cur = &Problem{Header: pending.header(), Result: p}
			declared = n
			pending = headerState{}
		case "n":
			if cur == nil {
				return nil, fmt.Errorf("%s: line %d: %w", methodRead, lineNo, ErrNoProblemLine)
			}
			if err := parseNodeLine(lineNo, f, cur.Result); err != nil {
				return nil, err
			}
		case "a":
			if cur == nil {
				return nil, fmt.Errorf("%s: line %d: %w", methodRead, lineNo, ErrNoProblemLine)
			}
			a, err := parseArcLine(lineNo, f, cur.Result.Kind)
			if err != nil {
				return nil, err
			}
			cur.Result.Arcs = append(cur.Result.Arcs, a)
		default:
			return nil, syntaxErrorf(lineNo, "unknown line type %q", f[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRead, err)
	}
	if err := finish(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", methodRead, ErrNoProblemLine)
	}
	return out, nil
}

func parseInts(lineNo int, fields []string) ([]int64, error) {
	out := make([]int64, len(fields))
	for i, s := range fields {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, syntaxErrorf(lineNo, "bad integer %q", s)
		}
		out[i] = v
	}
	return out, nil
}

func parseProblemLine(lineNo int, f []string) (*netgen.Result, int, error) {
	if len(f) != 4 {
		return nil, 0, syntaxErrorf(lineNo, "problem line wants 4 fields, got %d", len(f))
	}
	kind, ok := netgen.KindFromToken(f[1])
	if !ok {
		return nil, 0, syntaxErrorf(lineNo, "unknown problem type %q", f[1])
	}
	v, err := parseInts(lineNo, f[2:])
	if err != nil {
		return nil, 0, err
	}
	nodes, arcs := v[0], v[1]
	if nodes < 1 || nodes > netgen.MaxNodes || arcs < 0 || arcs > netgen.MaxParam {
		return nil, 0, syntaxErrorf(lineNo, "sizes out of range: %d nodes, %d arcs", nodes, arcs)
	}

	res := &netgen.Result{
		Kind:   kind,
		Nodes:  int(nodes),
		Supply: make([]int64, nodes),
		Arcs:   make([]netgen.Arc, 0, int(min(arcs, 1<<16))),
	}
	if kind == netgen.Assignment {
		for i := range res.Supply {
			res.Supply[i] = -1
		}
	}
	return res, int(arcs), nil
}

func parseNodeLine(lineNo int, f []string, res *netgen.Result) error {
	want := 3
	if res.Kind == netgen.Assignment {
		want = 2
	}
	if len(f) != want {
		return syntaxErrorf(lineNo, "node line wants %d fields, got %d", want, len(f))
	}
	id, err := strconv.Atoi(f[1])
	if err != nil || id < 1 || id > res.Nodes {
		return syntaxErrorf(lineNo, "bad node id %q", f[1])
	}

	switch res.Kind {
	case netgen.Assignment:
		res.Supply[id-1] = 1
	case netgen.MaxFlow:
		switch f[2] {
		case "s":
			res.Supply[id-1] = 1
		case "t":
			res.Supply[id-1] = -1
		default:
			return syntaxErrorf(lineNo, "node role %q is neither s nor t", f[2])
		}
	default:
		v, err := strconv.ParseInt(f[2], 10, 64)
		if err != nil {
			return syntaxErrorf(lineNo, "bad supply %q", f[2])
		}
		res.Supply[id-1] = v
	}
	return nil
}

func parseArcLine(lineNo int, f []string, kind netgen.ProblemKind) (netgen.Arc, error) {
	want := 6
	if kind != netgen.MinCostFlow {
		want = 4
	}
	if len(f) != want {
		return netgen.Arc{}, syntaxErrorf(lineNo, "arc line wants %d fields, got %d", want, len(f))
	}
	v, err := parseInts(lineNo, f[1:])
	if err != nil {
		return netgen.Arc{}, err
	}
	a := netgen.Arc{From: int(v[0]), To: int(v[1])}
	switch kind {
	case netgen.Assignment:
		a.Cost, a.Capacity = v[2], 1
	case netgen.MaxFlow:
		a.Cost, a.Capacity = 1, v[2]
	default:
		if v[2] != 0 {
			return netgen.Arc{}, syntaxErrorf(lineNo, "lower bound %d is not supported", v[2])
		}
		a.Capacity, a.Cost = v[3], v[4]
	}
	return a, nil
}
