// SPDX-License-Identifier: MIT
// Package matrix — constructors and boundary conversions.
//
// Purpose:
//   - Turn raw caller input ([][]float64, [][]int64, [][]Fraction) into Dense.
//   - Validate shape once, at the boundary, so kernels can trust their operands.
//
// Determinism & Policy:
//   - Float entries go through fraction.FromFloat (tolerance 1e-10, denominator
//     scan up to 10000); the reconstruction is best-effort and documented there.
//   - Empty input → ErrInvalidDimensions; ragged input → ErrBadShape.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linsteps/fraction"
)

// Operation tags for constructor errors.
const (
	opFromFloats = "FromFloats"
	opFromRows   = "FromRows"
	opFromInts   = "FromInts"
	opVector     = "VectorFromFloats"
	opIdentity   = "NewIdentity"
)

// shape validates a row-length profile and returns (rows, cols).
func shape(rowLens []int) (int, int, error) {
	if len(rowLens) == 0 || rowLens[0] == 0 {
		return 0, 0, ErrInvalidDimensions
	}
	cols := rowLens[0]
	for i, n := range rowLens {
		if n != cols {
			return 0, 0, fmt.Errorf("row %d has %d entries, want %d: %w", i, n, cols, ErrBadShape)
		}
	}

	return len(rowLens), cols, nil
}

func lens[T any](rows [][]T) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = len(r)
	}

	return out
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		I.set(i, i, fraction.One())
	}

	return I, nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return NewIdentity(m.Rows())
}

// FromRows copies a rectangular [][]Fraction into a new Dense.
func FromRows(rows [][]fraction.Fraction) (*Dense, error) {
	r, c, err := shape(lens(rows))
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	m, _ := NewDense(r, c) // shape already validated
	for i := 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// FromFloats converts user-entered float64 rows into an exact Dense.
//
// Implementation:
//   - Stage 1: Validate shape (non-empty, rectangular).
//   - Stage 2: Convert each entry with fraction.FromFloat in i→j order.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape, fraction.ErrNotRepresentable (NaN/Inf).
//
// Complexity: O(r*c*10000) worst case (denominator scan per entry).
func FromFloats(rows [][]float64) (*Dense, error) {
	r, c, err := shape(lens(rows))
	if err != nil {
		return nil, matrixErrorf(opFromFloats, err)
	}
	m, _ := NewDense(r, c)
	var f fraction.Fraction
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			f, err = fraction.FromFloat(rows[i][j])
			if err != nil {
				return nil, matrixErrorf(opFromFloats, fmt.Errorf("entry (%d,%d): %w", i, j, err))
			}
			m.set(i, j, f)
		}
	}

	return m, nil
}

// FromInts converts integer rows into an exact Dense.
func FromInts(rows [][]int64) (*Dense, error) {
	r, c, err := shape(lens(rows))
	if err != nil {
		return nil, matrixErrorf(opFromInts, err)
	}
	m, _ := NewDense(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.set(i, j, fraction.FromInt(rows[i][j]))
		}
	}

	return m, nil
}

// MustFromInts is like FromInts but panics on bad shape.
// Intended for literals in tests and examples.
func MustFromInts(rows [][]int64) *Dense {
	m, err := FromInts(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// VectorFromFloats converts a constants vector at the boundary.
// An empty vector yields ErrInvalidDimensions.
func VectorFromFloats(v []float64) ([]fraction.Fraction, error) {
	if len(v) == 0 {
		return nil, matrixErrorf(opVector, ErrInvalidDimensions)
	}
	out := make([]fraction.Fraction, len(v))
	var err error
	for i, x := range v {
		if out[i], err = fraction.FromFloat(x); err != nil {
			return nil, matrixErrorf(opVector, fmt.Errorf("entry %d: %w", i, err))
		}
	}

	return out, nil
}
