// SPDX-License-Identifier: MIT
// Package fraction: sentinel error set.
// All constructors and operations return these sentinels (optionally wrapped
// with context via %w); callers match them with errors.Is.

package fraction

import "errors"

var (
	// ErrDivisionByZero is returned when a zero denominator is constructed or
	// a Fraction is divided by a zero-valued Fraction.
	ErrDivisionByZero = errors.New("fraction: division by zero")

	// ErrNotRepresentable signals a float64 input (NaN, ±Inf or magnitude
	// beyond int64) that cannot be turned into a Fraction.
	ErrNotRepresentable = errors.New("fraction: value not representable")

	// ErrSyntax signals malformed textual input passed to Parse.
	ErrSyntax = errors.New("fraction: invalid syntax")
)
