package orth

import (
	"math"

	"github.com/viterin/vek"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Statistic reduces a projection vector to the test statistic
// (v·y) / (sigHat·‖v‖₂) and also returns ‖v‖₂.
//
// A zero projection (‖v‖₂ = 0) is not special-cased: the division yields
// NaN or ±Inf and the caller sees it in the result.
func Statistic(v, y []float64, sigHat float64) (ts, projNorm float64) {
	projNorm = floats.Norm(v, 2)
	ts = vek.Dot(v, y) / (sigHat * projNorm)

	return ts, projNorm
}

// TwoSidedPValue returns 2·(1−Φ(|ts|)), evaluated as 2·Φ(−|ts|).
// gonum's Normal.CDF goes through math.Erfc, so the lower tail keeps full
// relative precision far out, where 1−Φ would cancel to zero.
// NaN in gives NaN out; ±Inf gives 0.
func TwoSidedPValue(ts float64) float64 {
	return 2 * distuv.UnitNormal.CDF(-math.Abs(ts))
}
