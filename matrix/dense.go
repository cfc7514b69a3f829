// SPDX-License-Identifier: MIT
// Package matrix: Dense is the concrete, row-major rational matrix,
// storing elements in a flat slice for cache friendliness and cheap cloning.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linsteps/fraction"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of exact rationals.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int                 // number of rows and columns
	data []fraction.Fraction // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice (Fraction zero value is 0).
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]fraction.Fraction, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c
}

// IsSquare reports Rows() == Cols().
func (m *Dense) IsSquare() bool {
	return m.r == m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (fraction.Fraction, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return fraction.Fraction{}, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v fraction.Fraction) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// at is the unchecked accessor used by kernels after validation.
func (m *Dense) at(row, col int) fraction.Fraction {
	return m.data[row*m.c+col]
}

// set is the unchecked writer used by kernels after validation.
func (m *Dense) set(row, col int, v fraction.Fraction) {
	m.data[row*m.c+col] = v
}

// Row returns a copy of row i, or ErrOutOfRange.
func (m *Dense) Row(i int) ([]fraction.Fraction, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]fraction.Fraction, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy of the Dense matrix.
// Fractions are values, so copying the flat slice is a deep copy.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	copyData := make([]fraction.Fraction, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// Equal reports whether m and o have the same shape and equal entries.
// Two nil matrices are equal; nil never equals a non-nil matrix.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if !m.data[i].Equal(o.data[i]) {
			return false
		}
	}

	return true
}

// Rational returns the entries as a fresh [][]Fraction (row-major).
func (m *Dense) Rational() [][]fraction.Fraction {
	out := make([][]fraction.Fraction, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]fraction.Fraction, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Floats returns the decimal approximation of every entry (for numeric display).
func (m *Dense) Floats() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		for j := 0; j < m.c; j++ {
			out[i][j] = m.at(i, j).Float64()
		}
	}

	return out
}

// Strings returns every entry in its "a" or "a/b" display form.
func (m *Dense) Strings() [][]string {
	out := make([][]string, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]string, m.c)
		for j := 0; j < m.c; j++ {
			out[i][j] = m.at(i, j).String()
		}
	}

	return out
}
