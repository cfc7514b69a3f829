// SPDX-License-Identifier: MIT
// Package calc: sentinel error set.
// Operand shape errors come from package matrix (ErrNilMatrix, ErrNonSquare,
// ErrDimensionMismatch); the sentinels below cover calculator policy.

package calc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidExponent is returned for a negative or non-integer power.
	ErrInvalidExponent = errors.New("calc: exponent must be a non-negative integer")

	// ErrTooLarge is returned when an input exceeds an admission cap
	// (matrix size for cofactor-based tools, exponent for Power).
	ErrTooLarge = errors.New("calc: input exceeds the configured limit")

	// ErrTooManyUnknowns is returned when a system has more unknowns than
	// there are variable letters.
	ErrTooManyUnknowns = errors.New("calc: too many unknowns")
)

// Operation tags for error wrapping.
const (
	opInverse     = "Inverse"
	opDeterminant = "Determinant"
	opRREF        = "RREF"
	opRank        = "Rank"
	opMultiply    = "Multiply"
	opSolve       = "SolveSystem"
	opCramer      = "Cramer"
	opPower       = "Power"
)

// calcErrorf wraps err with an operation tag, preserving it for errors.Is.
func calcErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
