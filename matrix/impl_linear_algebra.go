// SPDX-License-Identifier: MIT
// Package matrix provides exact operations on Dense: multiplication,
// transpose, scalar scaling and the structural helpers (minor, column
// replacement, augmentation) the step engines compose. All functions
// perform strict fail-fast validation and return clear errors on
// dimension mismatches.
//
// Notes:
//   - Every kernel allocates a fresh result; operands are never mutated.
//   - All kernels use central validators and wrap failures via matrixErrorf.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linsteps/fraction"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul           = "Mul"
	opTranspose     = "Transpose"
	opScale         = "Scale"
	opMinor         = "Minor"
	opReplaceColumn = "ReplaceColumn"
	opAppendColumn  = "AppendColumn"
	opDeterminant   = "Determinant"
	opCofactors     = "Cofactors"
	opRREF          = "RREF"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(A, B): both non-nil and A.Cols == B.Rows.
//     Nothing is computed on mismatch, so no silent truncation can occur.
//   - Stage 2: C[i][j] = Σ_k A[i][k]·B[k][j], accumulated with exact rational addition.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed i→j→k loop order; the sum is exact so order never changes the value.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k int               // loop iterators
		sum     fraction.Fraction // dot-product accumulator
		av      fraction.Fraction
	)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum = fraction.Zero()
			for k = 0; k < aCols; k++ {
				av = a.at(i, k)
				if av.IsZero() {
					continue // skip zero; exact arithmetic makes this value-neutral
				}
				sum = sum.Add(av.Mul(b.at(k, j)))
			}
			res.set(i, j, sum)
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	res, err := NewDense(m.c, m.r) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.set(j, i, m.at(i, j))
		}
	}

	return res, nil
}

// Scale returns α·m as a new matrix.
// Complexity: O(r*c).
func Scale(m *Dense, alpha fraction.Fraction) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := m.Clone()
	for idx := range res.data {
		res.data[idx] = res.data[idx].Mul(alpha)
	}

	return res, nil
}

// Minor returns m with the given row and column deleted.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (bad row/col), ErrInvalidDimensions when the
//     result would be empty (m is 1×n or n×1).
//
// Complexity: O(r*c).
func Minor(m *Dense, row, col int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}

	res, err := NewDense(m.r-1, m.c-1)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	copyMinor(res, m, row, col)

	return res, nil
}

// copyMinor copies m without (row, col) into res; shapes are trusted.
func copyMinor(res, m *Dense, row, col int) {
	var i, j, ri, rj int
	for i = 0; i < m.r; i++ {
		if i == row {
			continue
		}
		rj = 0
		for j = 0; j < m.c; j++ {
			if j == col {
				continue
			}
			res.set(ri, rj, m.at(i, j))
			rj++
		}
		ri++
	}
}

// ReplaceColumn returns a copy of m whose column col is replaced by v.
// Used by Cramer's rule to build A_i.
// Errors: ErrNilMatrix, ErrOutOfRange, ErrDimensionMismatch (len(v) != Rows).
func ReplaceColumn(m *Dense, col int, v []fraction.Fraction) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReplaceColumn, err)
	}
	if col < 0 || col >= m.c {
		return nil, matrixErrorf(opReplaceColumn, fmt.Errorf("column %d: %w", col, ErrOutOfRange))
	}
	if err := ValidateVecLen(v, m.r); err != nil {
		return nil, matrixErrorf(opReplaceColumn, err)
	}

	res := m.Clone()
	for i := 0; i < m.r; i++ {
		res.set(i, col, v[i])
	}

	return res, nil
}

// AppendColumn returns the augmented matrix [m | v].
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(v) != Rows).
func AppendColumn(m *Dense, v []fraction.Fraction) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAppendColumn, err)
	}
	if err := ValidateVecLen(v, m.r); err != nil {
		return nil, matrixErrorf(opAppendColumn, err)
	}

	res, err := NewDense(m.r, m.c+1)
	if err != nil {
		return nil, matrixErrorf(opAppendColumn, err)
	}
	for i := 0; i < m.r; i++ {
		copy(res.data[i*res.c:i*res.c+m.c], m.data[i*m.c:(i+1)*m.c])
		res.set(i, m.c, v[i])
	}

	return res, nil
}
