// SPDX-License-Identifier: MIT

package distance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tswarp/dtw"
)

// ErrEmptyBatch indicates Cross or Matrix received no sequences.
var ErrEmptyBatch = errors.New("distance: empty batch")

const tracerName = "github.com/katalvlaran/tswarp/distance"

// Pairwise evaluates one Distance over many sequence pairs in parallel.
// It is safe for concurrent use; each call owns its output matrix.
type Pairwise struct {
	dist    Distance
	workers int
	metrics *Metrics
	tracer  trace.Tracer
	logger  *slog.Logger
}

// PairwiseOption customizes NewPairwise.
type PairwiseOption func(*Pairwise)

// WithWorkers bounds the number of concurrent Compute calls.
// n < 1 selects GOMAXPROCS.
func WithWorkers(n int) PairwiseOption {
	return func(p *Pairwise) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		p.workers = n
	}
}

// WithMetrics records per-pair counts and latencies.
func WithMetrics(m *Metrics) PairwiseOption {
	return func(p *Pairwise) { p.metrics = m }
}

// WithTracer overrides the global OpenTelemetry tracer.
func WithTracer(t trace.Tracer) PairwiseOption {
	return func(p *Pairwise) {
		if t != nil {
			p.tracer = t
		}
	}
}

// WithLogger sets the logger for batch summaries (debug level).
func WithLogger(l *slog.Logger) PairwiseOption {
	return func(p *Pairwise) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewPairwise binds d to a worker pool.
func NewPairwise(d Distance, opts ...PairwiseOption) (*Pairwise, error) {
	if d == nil {
		return nil, ErrNilDistance
	}
	p := &Pairwise{
		dist:    d,
		workers: runtime.GOMAXPROCS(0),
		tracer:  otel.Tracer(tracerName),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	return p, nil
}

// Workers returns the effective worker bound.
func (p *Pairwise) Workers() int { return p.workers }

// pair indexes one cell of the output.
type pair struct{ i, j int }

// Cross returns the len(xs)×len(ys) matrix with cell (i,j) = d(xs[i], ys[j]).
// The first failing pair cancels the rest and its error is returned,
// prefixed with the pair indices.
func (p *Pairwise) Cross(ctx context.Context, xs, ys []dtw.Sequence) (*mat.Dense, error) {
	if len(xs) == 0 || len(ys) == 0 {
		return nil, ErrEmptyBatch
	}
	pairs := make([]pair, 0, len(xs)*len(ys))
	for i := range xs {
		for j := range ys {
			pairs = append(pairs, pair{i, j})
		}
	}

	out := mat.NewDense(len(xs), len(ys), nil)
	err := p.run(ctx, "Cross", pairs, xs, ys, out.Set)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Matrix returns the symmetric self-distance matrix of xs. Only the upper
// triangle (diagonal included) is computed, so the Distance must be
// symmetric, which holds for DTW under a symmetric pointwise cost.
func (p *Pairwise) Matrix(ctx context.Context, xs []dtw.Sequence) (*mat.SymDense, error) {
	if len(xs) == 0 {
		return nil, ErrEmptyBatch
	}
	n := len(xs)
	pairs := make([]pair, 0, n*(n+1)/2)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			pairs = append(pairs, pair{i, j})
		}
	}

	out := mat.NewSymDense(n, nil)
	err := p.run(ctx, "Matrix", pairs, xs, xs, out.SetSym)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// run evaluates pairs with at most p.workers goroutines. Every pair writes
// a distinct cell, so store needs no locking.
func (p *Pairwise) run(
	ctx context.Context,
	op string,
	pairs []pair,
	xs, ys []dtw.Sequence,
	store func(i, j int, v float64),
) error {
	ctx, span := p.tracer.Start(ctx, "distance.Pairwise."+op, trace.WithAttributes(
		attribute.Int("distance.pairs", len(pairs)),
		attribute.Int("distance.workers", p.workers),
	))
	defer span.End()

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for _, pr := range pairs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t0 := time.Now()
			v, err := p.dist.Compute(xs[pr.i], ys[pr.j])
			p.metrics.observe(time.Since(t0), err)
			if err != nil {
				return fmt.Errorf("pair (%d,%d): %w", pr.i, pr.j, err)
			}
			store(pr.i, pr.j, v)

			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		// A caller cancellation before the first pair leaves nothing to wait on.
		err = ctx.Err()
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		p.logger.DebugContext(ctx, "pairwise failed", "op", op, "pairs", len(pairs), "error", err)

		return err
	}
	p.logger.DebugContext(ctx, "pairwise done",
		"op", op, "pairs", len(pairs), "workers", p.workers, "elapsed", time.Since(start))

	return nil
}
