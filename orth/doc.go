// Package orth implements a fast approximate orthogonalization test.
//
// For every tested column xⱼ of a design matrix X (n×q1) it adjusts for all
// other columns through a ridge-regularized projection and reports a z-type
// statistic against the response y together with a two-sided normal p-value:
//
//	A    = k·I_n + X₋ⱼ·X₋ⱼᵀ          (X₋ⱼ: X without column j)
//	v    = A⁻¹·xⱼ                    (general dense solve)
//	ts   = (v·y) / (sig_hat·‖v‖₂)
//	pval = 2·(1 − Φ(|ts|))
//
// ✨ Key features:
//   - explicit tested-column sets (Problem.Tested); LeadingColumns reproduces
//     the positional (q1, q2) convention used by AppOrth
//   - general LU solve by default, optional Cholesky fast path (WithSolver)
//   - columns solved concurrently with per-task scratch (WithWorkers)
//   - structured diagnostics through zerolog (WithLogger)
//
// ⚙️ Usage:
//
//	x, _ := matrix.NewDenseFromRows(rows)
//	res, err := orth.Solve(ctx, orth.Problem{
//		Y: y, X: x, SigHat: 1.0, K: 0.01, Tested: []int{0, 1},
//	})
//	// res.TS[i], res.PVal[i] belong to column res.Tested[i]
//
// The ridge strength k is a caller-supplied constant; nothing is tuned.
// Degenerate columns (‖v‖₂ = 0) surface as NaN in TS and PVal; callers must
// check for non-finite values themselves.
//
// Performance:
//
//   - Time:   O(m·(n²·q1 + n³)) for m tested columns
//   - Memory: O(workers·n²)
package orth
