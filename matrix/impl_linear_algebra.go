// SPDX-License-Identifier: MIT
// Package matrix: the ridge-regularized Gram kernel behind every
// leave-one-column-out projection.
//
// Notes:
//   - Kernels run on flat *Dense buffers; rows are contiguous, so each Gram
//     entry is one vek.Dot over two row slices.
//   - Failures are wrapped via matrixErrorf with an operation tag.

package matrix

import (
	"fmt"
	"math"

	"github.com/viterin/vek"
)

// Operation name constants for unified error wrapping.
const (
	opRidgeGram = "RidgeGram"
	opToGonum   = "ToGonumSym"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// RidgeGram builds the regularized Gram matrix A = k·I_r + M·Mᵀ for an r×c matrix M.
// MAIN DESCRIPTION:
//   - The n×n system matrix of a ridge projection onto the row space of M.
//
// Implementation:
//   - Stage 1: validate M non-nil and k finite, non-negative.
//   - Stage 2: A[a,b] = ⟨row a, row b⟩ via vek.Dot on contiguous row-major rows,
//     computed on the upper triangle and mirrored; k added on the diagonal.
//
// Behavior highlights:
//   - Result is exactly symmetric (mirrored, not recomputed).
//   - PSD for k = 0, PD for k > 0. M is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrNegativeRidge.
//
// Complexity:
//   - Time O(r²·c), Space O(r²).
func RidgeGram(m *Dense, k float64) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opRidgeGram, ErrNilMatrix)
	}
	if k < 0 || math.IsNaN(k) || math.IsInf(k, 0) {
		return nil, matrixErrorf(opRidgeGram, ErrNegativeRidge)
	}

	n, c := m.r, m.c
	A, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opRidgeGram, err)
	}
	A.validateNaNInf = m.validateNaNInf

	var a, b int
	var rowA []float64
	var v float64
	for a = 0; a < n; a++ {
		rowA = m.data[a*c : (a+1)*c]
		for b = a; b < n; b++ {
			v = vek.Dot(rowA, m.data[b*c:(b+1)*c])
			A.data[a*n+b] = v
			A.data[b*n+a] = v
		}
		A.data[a*n+a] += k
	}

	return A, nil
}
