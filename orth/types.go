package orth

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/orthtest/matrix"
)

var (
	// ErrInvalidArgument indicates inputs that violate the call contract:
	// shape mismatch, q2 out of range, sig_hat <= 0, k < 0, non-finite data,
	// or a malformed tested-column set. Returned before any column is solved.
	ErrInvalidArgument = errors.New("orth: invalid argument")

	// ErrNumericalFailure indicates the regularized system of some column is
	// singular to working precision. The whole call fails; no column is skipped.
	ErrNumericalFailure = errors.New("orth: numerical failure")
)

// ColumnError attributes a per-column failure to the tested column index.
type ColumnError struct {
	Column int
	Err    error
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("orth: column %d: %v", e.Column, e.Err)
}

func (e *ColumnError) Unwrap() error { return e.Err }

// SolverKind selects the dense solver used for (k·I + X₋ⱼX₋ⱼᵀ)·v = xⱼ.
type SolverKind int

const (
	// SolverGeneral uses an LU factorization with partial pivoting. It does not
	// assume the system is positive definite and is the default.
	SolverGeneral SolverKind = iota

	// SolverCholesky tries a Cholesky factorization first (valid for k > 0,
	// where the system is symmetric positive definite) and falls back to
	// SolverGeneral when the factorization fails.
	SolverCholesky
)

const (
	solverGeneralName  = "general"
	solverCholeskyName = "cholesky"
)

// String returns the lower-case solver name used by ParseSolverKind.
func (k SolverKind) String() string {
	switch k {
	case SolverGeneral:
		return solverGeneralName
	case SolverCholesky:
		return solverCholeskyName
	default:
		return fmt.Sprintf("SolverKind(%d)", int(k))
	}
}

// ParseSolverKind maps "general" / "cholesky" to a SolverKind.
func ParseSolverKind(s string) (SolverKind, error) {
	switch s {
	case solverGeneralName, "":
		return SolverGeneral, nil
	case solverCholeskyName:
		return SolverCholesky, nil
	default:
		return 0, fmt.Errorf("%w: unknown solver %q", ErrInvalidArgument, s)
	}
}

// Problem is one orthogonalization test request.
//
// Fields:
//   - Y      — response vector, length n.
//   - X      — combined predictor matrix, n×q1. Never mutated.
//   - SigHat — estimated noise standard deviation, > 0.
//   - K      — ridge regularization strength, >= 0. Not tuned internally.
//   - Tested — column indices of X to test, in output order. Every column not
//     listed still takes part in each X₋ⱼ. Use LeadingColumns to reproduce the
//     (q1, q2) convention.
type Problem struct {
	Y      []float64
	X      *matrix.Dense
	SigHat float64
	K      float64
	Tested []int
}

// Result holds one entry per tested column, index-aligned with Tested.
//
//   - TS       — signed test statistic (v·y)/(sig_hat·‖v‖₂).
//   - PVal     — two-sided normal p-value 2·(1−Φ(|ts|)).
//   - ProjNorm — ‖v‖₂ of the projection vector; 0 marks a degenerate column
//     whose TS/PVal are NaN.
type Result struct {
	Tested   []int     `json:"tested" yaml:"tested"`
	TS       []float64 `json:"ts" yaml:"ts"`
	PVal     []float64 `json:"pval" yaml:"pval"`
	ProjNorm []float64 `json:"proj_norm" yaml:"proj_norm"`
}
