// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/finite checks here.
//  - Return tagged sentinel errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Each validator describes what it validates and what it assumes (e.g. no nil check).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Assumes m is not nil.
// Errors: ErrDimensionMismatch if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite – Ensures every element of m is finite (no NaN, no ±Inf).
//
// Assumes m is not nil. Dense fast-path walks the flat buffer.
// Errors: ErrNaNInf with the first offending coordinates.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if d, ok := m.(*Dense); ok {
		for off, v := range d.data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFinite", denseErrorf(ctxAt, off/d.c, off%d.c, ErrNaNInf))
			}
		}
		return nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFinite", denseErrorf(ctxAt, i, j, ErrNaNInf))
			}
		}
	}

	return nil
}

// ValidateFiniteVec – vector counterpart of ValidateFinite.
// Complexity: O(n).
func ValidateFiniteVec(x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf("ValidateFiniteVec", fmt.Errorf("index %d: %w", i, ErrNaNInf))
		}
	}

	return nil
}

// IsSymmetric reports whether m is square and |m[i,j] − m[j,i]| ≤ tol for all i<j.
// Non-square or nil input reports false.
// Complexity: O(n²) on the upper triangle.
func IsSymmetric(m Matrix, tol float64) bool {
	if ValidateNotNil(m) != nil || ValidateSquare(m) != nil {
		return false
	}
	n := m.Rows()
	var i, j int
	var a, b float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			a, _ = m.At(i, j)
			b, _ = m.At(j, i)
			if math.Abs(a-b) > tol {
				return false
			}
		}
	}

	return true
}
