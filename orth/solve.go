package orth

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/orthtest/matrix"
)

// Solve runs the approximate orthogonalization test for every column listed in
// p.Tested.
//
// Algorithm, per tested column j (independently, no shared partial results):
//  1. v = ProjectionVector(X, j, K)      — (K·I + X₋ⱼX₋ⱼᵀ)·v = xⱼ
//  2. ts = (v·y) / (SigHat·‖v‖₂)
//  3. pval = 2·(1−Φ(|ts|))
//
// Concurrency:
//   - Columns fan out over an errgroup bounded by WithWorkers. Each task owns
//     its scratch (X₋ⱼ, the n×n system, v) and writes only its own slot of the
//     pre-sized output slices, so no locking is needed.
//   - The first failing column cancels the rest and fails the call; ctx
//     cancellation is observed before each column starts.
//
// Contract:
//   - Inputs are validated up front (ErrInvalidArgument); p.X and p.Y are
//     never mutated.
//   - Output order follows p.Tested exactly; no filtering, no early exit on
//     extreme values. A degenerate column (‖v‖₂ = 0) yields NaN, not an error.
//
// Errors: ErrInvalidArgument, *ColumnError wrapping ErrNumericalFailure,
// ctx.Err().
//
// Complexity: O(m·(n²·q1 + n³)) time for m tested columns, O(workers·n²) memory.
func Solve(ctx context.Context, p Problem, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	if err := validateProblem(p); err != nil {
		return Result{}, err
	}

	n, q1 := p.X.Shape()
	m := len(p.Tested)
	res := Result{
		Tested:   append(make([]int, 0, m), p.Tested...),
		TS:       make([]float64, m),
		PVal:     make([]float64, m),
		ProjNorm: make([]float64, m),
	}

	log := o.logger.With().
		Int("n", n).
		Int("q1", q1).
		Int("tests", m).
		Float64("k", p.K).
		Str("solver", o.solver.String()).
		Logger()
	log.Debug().Int("workers", o.workers).Msg("orthogonalization started")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, j := range p.Tested {
		i, j := i, j
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := projection(p.X, j, p.K, o.solver, log)
			if err != nil {
				return &ColumnError{Column: j, Err: err}
			}
			ts, norm := Statistic(v, p.Y, p.SigHat)
			res.TS[i] = ts
			res.PVal[i] = TwoSidedPValue(ts)
			res.ProjNorm[i] = norm
			log.Debug().Int("column", j).Float64("ts", ts).Float64("proj_norm", norm).Msg("column tested")

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("orthogonalization failed")
		return Result{}, err
	}

	if bad := countNonFinite(res.TS); bad > 0 {
		log.Warn().Int("non_finite", bad).Msg("degenerate projections produced non-finite statistics")
	}
	log.Debug().Msg("orthogonalization finished")

	return res, nil
}

// AppOrth is the positional entry point (y, X, sig_hat, k, q2). It tests the
// leading q1-(q2+1) columns of x, as described by LeadingColumns, and returns
// the labelled ts/pval pair (plus diagnostics) in column order.
func AppOrth(y []float64, x *matrix.Dense, sigHat, k float64, q2 int, opts ...Option) (Result, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return Result{}, invalidf("X: %v", err)
	}
	tested, err := LeadingColumns(x.Cols(), q2)
	if err != nil {
		return Result{}, err
	}

	return Solve(context.Background(), Problem{Y: y, X: x, SigHat: sigHat, K: k, Tested: tested}, opts...)
}

func countNonFinite(xs []float64) int {
	var c int
	for _, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			c++
		}
	}

	return c
}
