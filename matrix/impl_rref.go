// SPDX-License-Identifier: MIT
// Package matrix — Gauss–Jordan elimination to reduced row echelon form.
//
// Purpose:
//   - Reduce a matrix to RREF with exact arithmetic while logging every
//     elementary row operation, so the derivation can be replayed.
//
// Determinism & Policy:
//   - Pivot choice is "first non-zero at or below the current row", not the
//     largest magnitude: exact arithmetic has no rounding to control, and the
//     textbook derivation picks the first usable row.
//   - The input is cloned once at entry; all swaps, scalings and additions run
//     on that exclusively-owned working copy.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linsteps/fraction"
)

// RowOpKind enumerates elementary row operations.
type RowOpKind int

const (
	// RowSwap exchanges rows Target and Source.
	RowSwap RowOpKind = iota
	// RowScale multiplies row Target by Scalar.
	RowScale
	// RowAdd replaces row Target with Target + Scalar·Source.
	RowAdd
)

// String returns "swap", "scale" or "add".
func (k RowOpKind) String() string {
	switch k {
	case RowSwap:
		return "swap"
	case RowScale:
		return "scale"
	case RowAdd:
		return "add"
	default:
		return fmt.Sprintf("RowOpKind(%d)", int(k))
	}
}

// RowOp is one logged elementary row operation. Rows are 0-based.
type RowOp struct {
	Kind   RowOpKind
	Target int               // row that changes (row1)
	Source int               // other row for swap/add; -1 for scale
	Scalar fraction.Fraction // multiplier for scale/add; zero for swap
}

// String renders the operation with 1-based row labels:
//
//	Swap R1 and R2
//	Multiply R1 by \frac{1}{2}
//	R2 = R2 + (-3) × R1
func (op RowOp) String() string {
	switch op.Kind {
	case RowSwap:
		return fmt.Sprintf("Swap R%d and R%d", op.Target+1, op.Source+1)
	case RowScale:
		return fmt.Sprintf("Multiply R%d by %s", op.Target+1, op.Scalar.Latex())
	default:
		return fmt.Sprintf("R%d = R%d + (%s) × R%d", op.Target+1, op.Target+1, op.Scalar.Latex(), op.Source+1)
	}
}

// RREFHook observes each row operation right after it is applied.
// state is a snapshot; the hook may keep it.
type RREFHook func(op RowOp, state *Dense)

// Reduction is the outcome of RREF.
type Reduction struct {
	Reduced   *Dense  // the matrix in reduced row echelon form
	Ops       []RowOp // row operations in the order applied
	PivotCols []int   // pivot column of each pivot row, ascending
}

// Rank returns the number of pivots.
func (r *Reduction) Rank() int { return len(r.PivotCols) }

// RREF reduces m to reduced row echelon form (Gauss–Jordan).
//
// Implementation (state machine over (row, col), both from 0; stop when either leaves bounds):
//   - Stage 1: pivot = first row p ≥ row with M[p][col] ≠ 0; none → col++ (free column).
//   - Stage 2: p ≠ row → swap rows (log RowSwap).
//   - Stage 3: pivot ≠ 1 → multiply row by 1/pivot (log RowScale).
//   - Stage 4: every other row i with M[i][col] ≠ 0 → R_i += (−M[i][col])·R_row (log RowAdd).
//   - Stage 5: row++, col++.
//
// Inputs:
//   - m: non-nil matrix; never mutated.
//   - hook: optional observer (nil allowed).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r²·c), Space O(r*c) for the working copy.
func RREF(m *Dense, hook RREFHook) (*Reduction, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRREF, err)
	}

	w := m.Clone() // exclusively-owned working buffer
	res := &Reduction{}
	emit := func(op RowOp) {
		res.Ops = append(res.Ops, op)
		if hook != nil {
			hook(op, w.Clone())
		}
	}

	var (
		row, col, p, i int
		pivot, factor  fraction.Fraction
	)
	for row < w.r && col < w.c {
		// Stage 1: first non-zero at or below row
		for p = row; p < w.r && w.at(p, col).IsZero(); p++ {
		}
		if p == w.r {
			col++ // free column
			continue
		}

		// Stage 2
		if p != row {
			w.swapRows(row, p)
			emit(RowOp{Kind: RowSwap, Target: row, Source: p})
		}

		// Stage 3
		pivot = w.at(row, col)
		if !pivot.IsOne() {
			factor, _ = pivot.Reciprocal() // pivot is non-zero by Stage 1
			w.scaleRow(row, factor)
			emit(RowOp{Kind: RowScale, Target: row, Source: -1, Scalar: factor})
		}

		// Stage 4
		for i = 0; i < w.r; i++ {
			if i == row || w.at(i, col).IsZero() {
				continue
			}
			factor = w.at(i, col).Neg()
			w.addScaledRow(i, row, factor)
			emit(RowOp{Kind: RowAdd, Target: i, Source: row, Scalar: factor})
		}

		res.PivotCols = append(res.PivotCols, col)
		row++
		col++
	}
	res.Reduced = w

	return res, nil
}

// Rank returns rank(m) as the pivot count of its RREF.
func Rank(m *Dense) (int, error) {
	red, err := RREF(m, nil)
	if err != nil {
		return 0, err
	}

	return red.Rank(), nil
}

func (m *Dense) swapRows(a, b int) {
	for j := 0; j < m.c; j++ {
		m.data[a*m.c+j], m.data[b*m.c+j] = m.data[b*m.c+j], m.data[a*m.c+j]
	}
}

func (m *Dense) scaleRow(row int, s fraction.Fraction) {
	for j := 0; j < m.c; j++ {
		m.set(row, j, m.at(row, j).Mul(s))
	}
}

// addScaledRow performs R_target += s·R_source.
func (m *Dense) addScaledRow(target, source int, s fraction.Fraction) {
	for j := 0; j < m.c; j++ {
		m.set(target, j, m.at(target, j).Add(m.at(source, j).Mul(s)))
	}
}
