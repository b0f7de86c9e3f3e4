// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Allow buffer reuse (Fill, CopyFrom) so iterative solvers never reallocate.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxRow      = "Row"
	ctxCopyFrom = "CopyFrom"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); either may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>=0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrBadShape.
//   - Stage 2: allocate a zero-filled buffer.
//
// Zero-sized shapes (0×k, k×0) are legal: the aligner builds an empty real
// block for a contact map without nodes and must not special-case it.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewFilled creates an r×c matrix with every element set to v.
// Complexity: O(r*c).
func NewFilled(rows, cols int, v float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	m.Fill(v)

	return m, nil
}

// NewFromRows copies a rectangular [][]float64 into a new Dense.
// All rows must have equal length, otherwise ErrDimensionMismatch.
// Complexity: O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, denseErrorf("NewFromRows", i, len(rows[i]), ErrDimensionMismatch)
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col). NaN and ±Inf are rejected with ErrNaNInf.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Row returns a no-copy view of row i. Writes through the slice mutate m.
// It panics on an out-of-range row: callers in hot loops iterate within
// [0, Rows()) by construction, and a bad index there is a programmer error.
//
// Complexity: O(1).
func (m *Dense) Row(i int) []float64 {
	if i < 0 || i >= m.r {
		panic(denseErrorf(ctxRow, i, 0, ErrOutOfRange))
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
}

// Fill sets every element to v.
// Complexity: O(r*c).
func (m *Dense) Fill(v float64) {
	for i := range m.data {
		m.data[i] = v
	}
}

// CopyFrom overwrites m with the contents of src. Shapes must match.
// Complexity: O(r*c), no allocation.
func (m *Dense) CopyFrom(src *Dense) error {
	if src == nil {
		return ErrNilMatrix
	}
	if src.r != m.r || src.c != m.c {
		return denseErrorf(ctxCopyFrom, src.r, src.c, ErrDimensionMismatch)
	}
	copy(m.data, src.data)

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.CloneDense()
}

// CloneDense is Clone with a concrete return type.
func (m *Dense) CloneDense() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// RowSum returns the sum of row i. Out-of-range rows sum to 0.
// Complexity: O(c).
func (m *Dense) RowSum(i int) float64 {
	if i < 0 || i >= m.r {
		return 0
	}
	var s float64
	for _, v := range m.data[i*m.c : (i+1)*m.c] {
		s += v
	}

	return s
}

// ColSum returns the sum of column j. Out-of-range columns sum to 0.
// Complexity: O(r).
func (m *Dense) ColSum(j int) float64 {
	if j < 0 || j >= m.c {
		return 0
	}
	var s float64
	for i := 0; i < m.r; i++ {
		s += m.data[i*m.c+j]
	}

	return s
}

// NonZero lists all cells with a strictly positive value in row-major order.
// Complexity: O(r*c).
func (m *Dense) NonZero() []Cell {
	var out []Cell
	for i := 0; i < m.r; i++ {
		row := m.data[i*m.c : (i+1)*m.c]
		for j, v := range row {
			if v > 0 {
				out = append(out, Cell{Row: i, Col: j})
			}
		}
	}

	return out
}

// AbsDiff returns Σ|m[i][j] - o[i][j]| over the top-left rows×cols block.
// The block must fit inside both matrices, otherwise ErrDimensionMismatch.
// Complexity: O(rows*cols).
func (m *Dense) AbsDiff(o *Dense, rows, cols int) (float64, error) {
	if o == nil {
		return 0, ErrNilMatrix
	}
	if rows < 0 || cols < 0 || rows > m.r || rows > o.r || cols > m.c || cols > o.c {
		return 0, denseErrorf("AbsDiff", rows, cols, ErrDimensionMismatch)
	}
	var s float64
	for i := 0; i < rows; i++ {
		a := m.data[i*m.c : i*m.c+cols]
		b := o.data[i*o.c : i*o.c+cols]
		for j := range a {
			s += math.Abs(a[j] - b[j])
		}
	}

	return s, nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
