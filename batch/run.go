// SPDX-License-Identifier: MIT
// Package: netgen/batch
//
// run.go - batch driver.
//
// Contract:
//   - Each record is generated with its own engine; workers share nothing.
//   - Blocks are written in record order no matter which worker finishes
//     first.
//   - At most 2*workers finished or running blocks are held at once.
//   - A record that fails validation or generation is logged, counted in
//     Summary.Failures and skipped; later records still run.
//   - A write error or context cancellation stops the batch and is returned.

package batch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/netgen/dimacs"
	"github.com/katalvlaran/netgen/netgen"
	"github.com/katalvlaran/netgen/observability"
)

// Failure describes one skipped record.
type Failure struct {
	Index   int
	Seed    int64
	Problem int64
	Err     error
}

func (f Failure) Error() string {
	return fmt.Sprintf("problem %d (seed %d): %v", f.Problem, f.Seed, f.Err)
}

func (f Failure) Unwrap() error { return f.Err }

// Summary reports a finished (or stopped) batch.
type Summary struct {
	RunID    string
	Problems int // blocks written
	Arcs     int64
	Failures []Failure
}

type outcome struct {
	index int
	block []byte
	arcs  int
	err   error
}

// Run generates every record and writes its DIMACS block to w.
func Run(ctx context.Context, records []Record, w io.Writer, opts ...Option) (Summary, error) {
	cfg := newRunConfig(opts...)
	sum := Summary{RunID: uuid.NewString()}
	cfg.logger = observability.EnrichLogger(cfg.logger, sum.RunID)
	elapsed := observability.TimedOperation()

	ctx, span := cfg.spans.StartBatchSpan(ctx, sum.RunID, len(records))
	observability.LogBatchStart(cfg.logger, sum.RunID, cfg.workers)

	gen := func(ctx context.Context, idx int) outcome {
		return generate(ctx, cfg, idx, records[idx])
	}
	err := run(ctx, cfg.workers, len(records), gen, func(o outcome) error {
		if o.err != nil {
			rec := records[o.index]
			sum.Failures = append(sum.Failures, Failure{Index: o.index, Seed: rec.Seed, Problem: rec.Problem, Err: o.err})
			return nil
		}
		if _, err := w.Write(o.block); err != nil {
			return fmt.Errorf("batch: write problem %d: %w", records[o.index].Problem, err)
		}
		sum.Problems++
		sum.Arcs += int64(o.arcs)
		return nil
	})

	cfg.spans.EndSpanWithError(span, err)
	observability.LogBatchDone(cfg.logger, sum.RunID, sum.Problems, len(sum.Failures), elapsed())
	return sum, err
}

// run feeds indexes 0..n-1 to the workers and hands outcomes to emit in
// index order. A record is admitted only while fewer than 2*workers records
// are generating or waiting for an earlier one, so one slow record cannot
// make the others pile up in memory.
func run(ctx context.Context, workers, n int, gen func(context.Context, int) outcome, emit func(outcome) error) error {
	eg, ctx := errgroup.WithContext(ctx)
	jobs := make(chan int)
	outs := make(chan outcome, workers)
	window := make(chan struct{}, 2*workers)

	eg.Go(func() error {
		defer close(jobs)
		for i := 0; i < n; i++ {
			select {
			case window <- struct{}{}:
			case <-ctx.Done():
				return ctx.Err()
			}
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	pool, wctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		pool.Go(func() error {
			for idx := range jobs {
				o := gen(wctx, idx)
				select {
				case outs <- o:
				case <-wctx.Done():
					return wctx.Err()
				}
			}
			return nil
		})
	}
	eg.Go(func() error {
		defer close(outs)
		return pool.Wait()
	})

	eg.Go(func() error {
		pending := make(map[int]outcome)
		next := 0
		for o := range outs {
			pending[o.index] = o
			for {
				p, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := emit(p); err != nil {
					return err
				}
				<-window
			}
		}
		return nil
	})

	return eg.Wait()
}

// generate produces the DIMACS block of one record.
func generate(ctx context.Context, cfg runConfig, idx int, rec Record) outcome {
	ctx, span := cfg.spans.StartProblemSpan(ctx, rec.Seed, rec.Problem)
	observability.LogProblemStart(cfg.logger, rec.Seed, rec.Problem)
	start := time.Now()

	res, err := netgen.Generate(rec.Seed, rec.Params, cfg.genOptions...)
	var buf bytes.Buffer
	if err == nil {
		err = dimacs.Write(&buf, rec.Seed, rec.Problem, rec.Params, res)
	}

	if err != nil {
		cfg.metrics.RecordProblem(ctx, "", 0, time.Since(start), err)
		cfg.spans.EndSpanWithError(span, err)
		observability.LogProblemError(cfg.logger, rec.Seed, rec.Problem, err)
		return outcome{index: idx, err: err}
	}

	cfg.spans.AddSpanEvent(ctx, "problem.encoded",
		attribute.String("kind", res.Kind.Token()),
		attribute.Int("arcs", res.NumArcs()),
		attribute.Int("bytes", buf.Len()),
	)
	cfg.metrics.RecordProblem(ctx, res.Kind.Token(), res.NumArcs(), time.Since(start), nil)
	cfg.spans.EndSpanWithError(span, nil)
	observability.LogProblemDone(cfg.logger, rec.Problem, res.Kind.Token(), res.NumArcs(),
		float64(time.Since(start).Microseconds())/1000)
	return outcome{index: idx, block: buf.Bytes(), arcs: res.NumArcs()}
}
