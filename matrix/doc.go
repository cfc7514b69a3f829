// SPDX-License-Identifier: MIT

// Package matrix provides exact rational matrices and the textbook kernels
// the step-by-step calculators are built on.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix of fraction.Fraction values with
//     bounds-checked At/Set and deep Clone.
//   - Boundary constructors (FromFloats, FromRows, FromInts) that turn raw
//     user input into exact rationals.
//   - Kernels: Mul, Transpose, Scale, Minor, ReplaceColumn, AppendColumn,
//     Determinant and Cofactors (recursive cofactor expansion) and RREF
//     (Gauss–Jordan elimination with a logged sequence of row operations).
//
// Every kernel validates its operands up front, never mutates them, and
// returns a freshly allocated result. Failures are reported through the
// sentinel errors in errors.go, matched with errors.Is.
//
// Determinant and Cofactors are O(n!) by construction: they reproduce the
// hand derivation rather than an elimination-based shortcut. Callers that
// render these derivations are expected to cap n (the calculators use 5).
package matrix
