// Package matrix offers a small dense linear-algebra layer for design matrices.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-only numeric policy.
//   - Copying constructors (NewDenseFromRows, NewDenseFromColumns) and
//     submatrix helpers (Col, Induced, and DropCol built on Induced) that
//     never mutate their source.
//   - RidgeGram (k·I + M·Mᵀ), the system matrix of a ridge projection.
//   - Zero-copy bridges to gonum (ToGonum, ToGonumSym) for pivoted and
//     Cholesky solvers.
//
// All failures are reported through the sentinels in errors.go and can be
// matched with errors.Is.
package matrix
