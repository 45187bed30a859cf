package orth

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/orthtest/matrix"
)

// ProjectionVector computes v solving (k·I_n + X₋ⱼX₋ⱼᵀ)·v = xⱼ for column j of x.
//
// Steps:
//  1. xⱼ = copy of column j.
//  2. X₋ⱼ = fresh copy of x without column j (x is not modified).
//  3. A = k·I + X₋ⱼX₋ⱼᵀ via matrix.RidgeGram.
//  4. Dense solve with the selected solver.
//
// Nothing is shared between calls, so concurrent calls on the same x are safe.
//
// Errors:
//   - ErrInvalidArgument for a nil x, a single-column x, j out of range, or a bad k.
//   - ErrNumericalFailure when A is singular to working precision.
//
// Complexity: O(n²·q1) to form A, O(n³) to solve.
func ProjectionVector(x *matrix.Dense, j int, k float64, kind SolverKind) ([]float64, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, invalidWrap(err)
	}

	return projection(x, j, k, kind, zerolog.Nop())
}

func projection(x *matrix.Dense, j int, k float64, kind SolverKind, log zerolog.Logger) ([]float64, error) {
	xj, err := x.Col(j)
	if err != nil {
		return nil, invalidWrap(err)
	}
	xmj, err := x.DropCol(j)
	if err != nil {
		return nil, invalidWrap(err)
	}
	A, err := matrix.RidgeGram(xmj, k)
	if err != nil {
		return nil, invalidWrap(err)
	}

	if kind == SolverCholesky {
		v, ok, err := solveCholesky(A, xj)
		if err != nil {
			return nil, err
		}
		if ok {
			return v, nil
		}
		log.Debug().Int("column", j).Float64("k", k).Msg("cholesky factorization failed, falling back to general solver")
	}

	return solveGeneral(A, xj)
}

// solveGeneral solves A·v = b with gonum's LU (partial pivoting). A is not
// assumed positive definite.
func solveGeneral(A *matrix.Dense, b []float64) ([]float64, error) {
	var v mat.VecDense
	if err := v.SolveVec(matrix.ToGonum(A), mat.NewVecDense(len(b), b)); err != nil {
		return nil, classifySolveErr(err)
	}

	return v.RawVector().Data, nil
}

// solveCholesky is the symmetric positive definite fast path. ok is false when
// A does not factorize; the caller then retries with solveGeneral.
func solveCholesky(A *matrix.Dense, b []float64) (v []float64, ok bool, err error) {
	sym, err := matrix.ToGonumSym(A)
	if err != nil {
		return nil, false, invalidWrap(err)
	}
	var chol mat.Cholesky
	if !chol.Factorize(sym) {
		return nil, false, nil
	}
	var out mat.VecDense
	if err = chol.SolveVecTo(&out, mat.NewVecDense(len(b), b)); err != nil {
		return nil, true, classifySolveErr(err)
	}

	return out.RawVector().Data, true, nil
}

// classifySolveErr maps gonum solver errors onto ErrNumericalFailure. gonum
// reports mat.ErrSingular for an exactly singular matrix and mat.Condition
// when the condition number exceeds mat.ConditionTolerance.
func classifySolveErr(err error) error {
	var cond mat.Condition
	if errors.As(err, &cond) {
		return fmt.Errorf("%w: system singular to working precision (condition number %g)", ErrNumericalFailure, float64(cond))
	}

	return fmt.Errorf("%w: %v", ErrNumericalFailure, err)
}
