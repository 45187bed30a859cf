// Package orthtest is a fast approximate orthogonalization test for
// high-dimensional regression designs.
//
// 🚀 What is orthtest?
//
//	For every tested covariate xⱼ of an n×q1 design X it solves the
//	ridge-regularized leave-one-column-out system
//		(k·I + X₋ⱼX₋ⱼᵀ)·v = xⱼ
//	and reports the z statistic ts = (v·y)/(sig_hat·‖v‖₂) together with
//	the two-sided normal p-value 2·(1−Φ(|ts|)).
//
// ✨ Why choose orthtest?
//
//   - Works when q1 > n: k > 0 keeps every system well-posed.
//   - Concurrent: tested columns fan out over a bounded worker pool and
//     land in pre-sized, index-aligned result slices.
//   - Honest failures: singular systems surface as errors, degenerate
//     projections as NaN, never silently dropped.
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/       — row-major Dense, leave-one-column-out copies, RidgeGram, gonum bridges
//	orth/         — Solve / AppOrth, projection vectors, statistics and p-values
//	dataset/      — YAML/JSON problem files and result reports
//	cmd/orthtest/ — command-line front end (run, version)
//
// Quick example:
//
//	x, _ := matrix.NewDenseFromRows(rows)
//	res, err := orth.AppOrth(y, x, sigHat, k, q2)
//	// res.TS[i], res.PVal[i] belong to column res.Tested[i]
//
//	go install github.com/katalvlaran/orthtest/cmd/orthtest@latest
package orthtest
