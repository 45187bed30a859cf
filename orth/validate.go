package orth

import (
	"fmt"
	"math"

	"github.com/katalvlaran/orthtest/matrix"
)

// invalidf wraps ErrInvalidArgument with a formatted detail message.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// invalidWrap tags a matrix-layer error as ErrInvalidArgument while keeping
// its own sentinel reachable through errors.Is.
func invalidWrap(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
}

// LeadingColumns returns the tested-column set implied by the (q1, q2)
// convention: the first n_tests = q1-(q2+1) columns, 0..n_tests-1. The
// remaining q2+1 trailing columns are base covariates and are never tested.
//
// Errors: ErrInvalidArgument when q2 < 0 or q2 >= q1.
func LeadingColumns(q1, q2 int) ([]int, error) {
	if q2 < 0 || q2 >= q1 {
		return nil, invalidf("q2=%d must satisfy 0 <= q2 < q1=%d", q2, q1)
	}
	nTests := q1 - (q2 + 1)
	cols := make([]int, nTests)
	for j := range cols {
		cols[j] = j
	}

	return cols, nil
}

// validateProblem checks the full call contract before any work is scheduled.
//
// Order: X present → rows → tested set (incl. q1 >= 2 when non-empty) →
// scalars → finite data.
// Complexity: O(n*q1) for the finiteness scan.
func validateProblem(p Problem) error {
	if err := matrix.ValidateNotNil(p.X); err != nil {
		return invalidf("X: %v", err)
	}
	n, q1 := p.X.Shape()
	if len(p.Y) != n {
		return invalidf("len(y)=%d does not match X rows=%d", len(p.Y), n)
	}

	// A tested column needs at least one other column to adjust for. With
	// nothing tested, a single-column X is a valid (empty) problem.
	if len(p.Tested) > 0 && q1 < 2 {
		return invalidf("X has %d column(s); testing a column needs at least 2", q1)
	}
	seen := make(map[int]struct{}, len(p.Tested))
	for _, j := range p.Tested {
		if j < 0 || j >= q1 {
			return invalidf("tested column %d out of range [0,%d)", j, q1)
		}
		if _, dup := seen[j]; dup {
			return invalidf("tested column %d listed twice", j)
		}
		seen[j] = struct{}{}
	}

	if math.IsNaN(p.SigHat) || math.IsInf(p.SigHat, 0) || p.SigHat <= 0 {
		return invalidf("sig_hat=%g must be finite and > 0", p.SigHat)
	}
	if math.IsNaN(p.K) || math.IsInf(p.K, 0) || p.K < 0 {
		return invalidf("k=%g must be finite and >= 0", p.K)
	}

	if err := matrix.ValidateFiniteVec(p.Y); err != nil {
		return invalidf("y: %v", err)
	}
	if err := matrix.ValidateFinite(p.X); err != nil {
		return invalidf("X: %v", err)
	}

	return nil
}
