// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Col/DropCol return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support copy-based submatrix extraction (Induced, DropCol) so inputs are never mutated.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see impl_linear_algebra.go): operate on the flat data slice directly.
//   - Use DropCol to build leave-one-column-out designs; the source matrix stays untouched.
//   - Raw exposes the backing slice for zero-copy bridges (see gonum.go); treat it as read-only.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Induced: O(r'*c'); DropCol: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxInduce  = "Induced" // ctor/tag for Dense.Induced
	ctxCol     = "Col"     // column extraction
	ctxDropCol = "DropCol" // leave-one-column-out copy
	ctxRows    = "NewDenseFromRows"
	ctxColumns = "NewDenseFromColumns"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves sentinel via %w.
// Complexity: Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set (policy default from options.go).
type Dense struct {
	r, c           int       // row and column counts (>=0; zero allowed only for Induced with empty index sets)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewDenseFromRows copies a slice of equal-length rows into a fresh Dense.
// MAIN DESCRIPTION:
//   - Ingestion constructor for callers holding data as [][]float64 (one row per observation).
//
// Implementation:
//   - Stage 1: reject empty input (ErrInvalidDimensions) and ragged rows (ErrDimensionMismatch).
//   - Stage 2: copy row by row; under the default policy reject NaN/±Inf (ErrNaNInf).
//
// Behavior highlights:
//   - The caller keeps ownership of rows; mutations after the call do not leak in.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxRows, err)
	}

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxRows, i, len(rows[i]), c, ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			v = rows[i][j]
			if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, denseErrorf(ctxRows, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// NewDenseFromColumns is the column-oriented twin of NewDenseFromRows:
// cols[j] holds column j (length = number of rows).
// Complexity: Time O(r*c), Space O(r*c).
func NewDenseFromColumns(cols [][]float64) (*Dense, error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxColumns, ErrInvalidDimensions)
	}
	r, c := len(cols[0]), len(cols)
	m, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxColumns, err)
	}

	var i, j int
	var v float64
	for j = 0; j < c; j++ {
		if len(cols[j]) != r {
			return nil, fmt.Errorf("%s: column %d has %d values, want %d: %w", ctxColumns, j, len(cols[j]), r, ErrDimensionMismatch)
		}
		for i = 0; i < r; i++ {
			v = cols[j][i]
			if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, denseErrorf(ctxColumns, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Raw returns the row-major backing slice (len == Rows*Cols) without copying.
// The slice aliases the matrix: callers must treat it as read-only unless they
// own the matrix.
func (m *Dense) Raw() []float64 { return m.data }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
// Complexity: Time O(1), Space O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns sentinel error.
// Complexity: Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	// Numeric policy: optional finite-only enforcement.
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Not for hot paths; intended for logs and debugging.
// Complexity: Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// Induced copies the rows rowsIdx × columns colsIdx of m into a fresh Dense.
// Index lists may repeat or reorder; an empty list yields a legal 0-area Dense.
//
// Implementation:
//   - Stage 1: bounds-check every index once, up front.
//   - Stage 2: gather row by row; consecutive column indices are copied as one
//     run with copy(), so a leave-one-out column list costs two runs per row.
//
// Errors:
//   - ErrOutOfRange (index outside bounds).
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	for _, ri := range rowsIdx {
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
	}
	for _, cj := range colsIdx {
		if cj < 0 || cj >= m.c {
			return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
		}
	}

	rp, cp := len(rowsIdx), len(colsIdx)
	res := &Dense{r: rp, c: cp, data: make([]float64, rp*cp), validateNaNInf: m.validateNaNInf}
	if rp == 0 || cp == 0 {
		return res, nil
	}

	var src, dst []float64
	var start, end int
	for i, ri := range rowsIdx {
		src = m.data[ri*m.c : (ri+1)*m.c]
		dst = res.data[i*cp : (i+1)*cp]
		for start = 0; start < cp; start = end {
			end = start + 1
			for end < cp && colsIdx[end] == colsIdx[end-1]+1 {
				end++
			}
			copy(dst[start:end], src[colsIdx[start]:colsIdx[start]+end-start])
		}
	}

	return res, nil
}

// Col returns a copy of column j as a fresh slice of length Rows().
// Complexity: Time O(r), Space O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// DropCol returns a new r×(c-1) Dense equal to m with column j removed:
// Induced over every row and every column but j. m is never mutated.
//
// Errors:
//   - ErrOutOfRange, ErrInvalidDimensions (single-column m has nothing left).
//
// Complexity:
//   - Time O(r*c), Space O(r*(c-1)).
func (m *Dense) DropCol(j int) (*Dense, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxDropCol, 0, j, ErrOutOfRange)
	}
	if m.c == 1 {
		return nil, denseErrorf(ctxDropCol, 0, j, ErrInvalidDimensions)
	}

	rows := make([]int, m.r)
	for i := range rows {
		rows[i] = i
	}
	cols := make([]int, 0, m.c-1)
	for c := 0; c < m.c; c++ {
		if c != j {
			cols = append(cols, c)
		}
	}

	return m.Induced(rows, cols)
}
