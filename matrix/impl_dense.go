// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Column return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Carry the numeric policy (optional NaN/Inf rejection) per instance.
//
// Tables:
//   - NewTable / NewTableFromColumns copy caller data, so later mutation of the
//     source slices never leaks into a table.
//   - Table constructors accept zero-size shapes (0×k, r×0, 0×0); NewDense does not.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/Column: O(r*c)/O(r).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxApply  = "Apply"
	ctxColumn = "Column"

	opNewTable            = "NewTable"
	opNewTableFromColumns = "NewTableFromColumns"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps a sentinel with Dense method context and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set and Apply.
type Dense struct {
	r, c           int       // row and column counts (zero allowed for table constructors)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Behavior highlights:
//   - Strict shape: rows>0 && cols>0, else ErrInvalidDimensions.
//   - Numeric policy resolved from opts (default: NaN allowed).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// newDenseZeroOK is the internal constructor that allows rows==0 or cols==0.
// Used by kernels and table constructors for legal zero-size results.
func newDenseZeroOK(rows, cols int, validateNaNInf bool) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: validateNaNInf,
	}, nil
}

// NewTable builds an m×k table from m row slices of equal length k.
//
// Implementation:
//   - Stage 1: resolve options; derive k from rows[0] (0×0 for no rows).
//   - Stage 2: validate every row length (ErrRaggedRows) and, under the strict
//     policy, every value (ErrNaNInf).
//   - Stage 3: copy rows into the flat buffer.
//
// Behavior highlights:
//   - The input is copied; the table never aliases caller memory.
//   - NaN is a legal cell value unless WithValidateNaNInf is given.
//
// Errors:
//   - ErrRaggedRows, ErrNaNInf (strict policy only).
//
// Complexity:
//   - Time O(m*k), Space O(m*k).
func NewTable(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	m := len(rows)
	k := 0
	if m > 0 {
		k = len(rows[0])
	}

	out, err := newDenseZeroOK(m, k, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opNewTable, err)
	}

	var i, j int
	for i = 0; i < m; i++ {
		if len(rows[i]) != k {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", opNewTable, i, len(rows[i]), k, ErrRaggedRows)
		}
		if o.validateNaNInf {
			for j = 0; j < k; j++ {
				if isNonFinite(rows[i][j]) {
					return nil, denseErrorf(opNewTable, i, j, ErrNaNInf)
				}
			}
		}
		copy(out.data[i*k:(i+1)*k], rows[i])
	}

	return out, nil
}

// NewTableFromColumns builds an m×k table from k column samples of equal length m.
// It is the column-stacking counterpart of NewTable: column j of the result is cols[j].
//
// Errors:
//   - ErrRaggedRows when the columns differ in length.
//   - ErrNaNInf under the strict policy.
//
// Complexity:
//   - Time O(m*k), Space O(m*k).
func NewTableFromColumns(cols [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	k := len(cols)
	m := 0
	if k > 0 {
		m = len(cols[0])
	}

	out, err := newDenseZeroOK(m, k, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opNewTableFromColumns, err)
	}

	var i, j int
	var v float64
	for j = 0; j < k; j++ {
		if len(cols[j]) != m {
			return nil, fmt.Errorf("%s: column %d has %d values, want %d: %w", opNewTableFromColumns, j, len(cols[j]), m, ErrRaggedRows)
		}
		for i = 0; i < m; i++ {
			v = cols[j][i]
			if o.validateNaNInf && isNonFinite(v) {
				return nil, denseErrorf(opNewTableFromColumns, i, j, ErrNaNInf)
			}
			out.data[i*k+j] = v // strided write into row-major storage
		}
	}

	return out, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange (unwrapped;
// public methods add coordinates).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bounds.
//   - ErrNaNInf for non-finite v when the strict policy is on.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// Column returns a copy of column j as a Sample (length Rows()).
// Complexity: O(r), strided read over the row-major buffer.
func (m *Dense) Column(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxColumn, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// String renders rows as lines of comma-separated values (%g).
// Intended for debugging and examples; not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. No allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, in row-major order.
//
// Behavior highlights:
//   - Respects the strict numeric policy: a non-finite result aborts with ErrNaNInf.
//   - Elements written before the error remain updated; transform a Clone for
//     all-or-nothing semantics.
//
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && isNonFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
