package orth_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/orthtest/matrix"
)

// scenario returns the four-row fixture with duplicated rows: columns 0 and 1
// are tested (q2=0) and column 2 is the base covariate.
func scenario(t testing.TB) ([]float64, *matrix.Dense) {
	t.Helper()
	x, err := matrix.NewDenseFromRows([][]float64{
		{1, 1, 0},
		{1, -1, 1},
		{1, 1, 0},
		{1, -1, 1},
	})
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return []float64{1, 0, 1, 0}, x
}

// matrixFrom RETURNS an r×c Dense with deterministic U(-1,1) entries.
func matrixFrom(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}
	raw := m.Raw()
	rng := rand.New(rand.NewSource(seed))
	for i := range raw {
		raw[i] = rng.Float64()*2 - 1
	}

	return m
}

// vectorFrom RETURNS n deterministic standard normal draws.
func vectorFrom(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.NormFloat64()
	}

	return v
}
