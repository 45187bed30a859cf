// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum returns a gonum *mat.Dense sharing d's row-major storage (no copy).
// Both layouts are row-major with stride == cols, so writes through either view
// are visible in the other. Returns nil for a nil or zero-area d.
func ToGonum(d *Dense) *mat.Dense {
	if d == nil || d.r == 0 || d.c == 0 {
		return nil
	}

	return mat.NewDense(d.r, d.c, d.data)
}

// ToGonumSym returns a gonum *mat.SymDense over a square, symmetric d (no
// copy). gonum reads only the upper triangle; asymmetric input is rejected
// with ErrAsymmetric.
func ToGonumSym(d *Dense) (*mat.SymDense, error) {
	if err := ValidateNotNil(d); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	if err := ValidateSquare(d); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	if !IsSymmetric(d, DefaultEpsilon) {
		return nil, matrixErrorf(opToGonum, ErrAsymmetric)
	}

	return mat.NewSymDense(d.r, d.data), nil
}
