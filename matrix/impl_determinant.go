// SPDX-License-Identifier: MIT
// Package matrix — determinant and cofactor kernels (cofactor expansion).
//
// Purpose:
//   - Compute det(M) exactly by recursive expansion along the first row, the
//     way the derivation is written by hand.
//   - Build the cofactor matrix C[i][j] = (−1)^(i+j)·det(minor(M,i,j)) used by
//     the adjugate inverse.
//
// Complexity:
//   - O(n!) time. This is intentional: the kernels reproduce the textbook
//     derivation. Callers rendering these derivations cap n (5 in the calculators).
//
// Conventions:
//   - The determinant of the empty 0×0 minor is 1, so a 1×1 matrix [a] has
//     cofactor matrix [1] and inverse [1/a].

package matrix

import "github.com/katalvlaran/linsteps/fraction"

// ExpansionTerm is one summand of a first-row cofactor expansion:
// Term = Sign · Entry · MinorDet.
type ExpansionTerm struct {
	Col      int               // 0-based column j
	Sign     int               // (−1)^j
	Entry    fraction.Fraction // M[0][j]
	Minor    *Dense            // minor(M,0,j); nil for a 1×1 matrix
	MinorDet fraction.Fraction // det(Minor)
	Term     fraction.Fraction // signed contribution to det(M)
}

// Determinant returns det(m) for a square m.
//
// Implementation:
//   - n = 1: the single entry.
//   - n = 2: ad − bc.
//   - n > 2: Σ_j (−1)^j · M[0][j] · det(minor(M,0,j)).
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n!).
func Determinant(m *Dense) (fraction.Fraction, error) {
	if err := ValidateSquare(m); err != nil {
		return fraction.Fraction{}, matrixErrorf(opDeterminant, err)
	}

	return det(m), nil
}

// det assumes a square, non-nil m. n == 0 only occurs for minors of 1×1 matrices.
func det(m *Dense) fraction.Fraction {
	switch m.r {
	case 0:
		return fraction.One()
	case 1:
		return m.at(0, 0)
	case 2:
		return m.at(0, 0).Mul(m.at(1, 1)).Sub(m.at(0, 1).Mul(m.at(1, 0)))
	}

	sum := fraction.Zero()
	minor := &Dense{r: m.r - 1, c: m.c - 1, data: make([]fraction.Fraction, (m.r-1)*(m.c-1))}
	var entry fraction.Fraction
	for j := 0; j < m.c; j++ {
		entry = m.at(0, j)
		if entry.IsZero() {
			continue // zero entry contributes nothing
		}
		copyMinor(minor, m, 0, j) // minor buffer is reused across j
		if j%2 == 1 {
			entry = entry.Neg()
		}
		sum = sum.Add(entry.Mul(det(minor)))
	}

	return sum
}

// minorOf returns minor(m,row,col) for a square m, allowing the 0×0 result.
func minorOf(m *Dense, row, col int) *Dense {
	res := &Dense{r: m.r - 1, c: m.c - 1, data: make([]fraction.Fraction, (m.r-1)*(m.c-1))}
	copyMinor(res, m, row, col)

	return res
}

// Expansion returns the first-row cofactor expansion of m, one term per
// column in ascending order, and the resulting determinant.
// Errors: ErrNilMatrix, ErrNonSquare.
func Expansion(m *Dense) ([]ExpansionTerm, fraction.Fraction, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, fraction.Fraction{}, matrixErrorf(opDeterminant, err)
	}

	n := m.r
	terms := make([]ExpansionTerm, n)
	total := fraction.Zero()
	for j := 0; j < n; j++ {
		t := ExpansionTerm{Col: j, Sign: 1, Entry: m.at(0, j), MinorDet: fraction.One()}
		if j%2 == 1 {
			t.Sign = -1
		}
		if n > 1 {
			t.Minor = minorOf(m, 0, j)
			t.MinorDet = det(t.Minor)
		}
		t.Term = t.Entry.Mul(t.MinorDet)
		if t.Sign < 0 {
			t.Term = t.Term.Neg()
		}
		total = total.Add(t.Term)
		terms[j] = t
	}

	return terms, total, nil
}

// Cofactors returns the cofactor matrix C with C[i][j] = (−1)^(i+j)·det(minor(m,i,j)).
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n² · (n−1)!).
func Cofactors(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}

	n := m.r
	res, _ := NewDense(n, n)
	var c fraction.Fraction
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c = det(minorOf(m, i, j))
			if (i+j)%2 == 1 {
				c = c.Neg()
			}
			res.set(i, j, c)
		}
	}

	return res, nil
}
