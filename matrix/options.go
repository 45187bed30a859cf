// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults (single source of truth).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
package matrix

// Numeric policy.
const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks
	// such as IsSymmetric.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set and
	// on the slice constructors (NewDenseFromRows / NewDenseFromColumns).
	DefaultValidateNaNInf = true
)
