// SPDX-License-Identifier: MIT
// Package fraction: boundary conversions (float64 and text → Fraction).
//
// Determinism:
//   - FromFloat scans denominators in ascending order and returns the first
//     candidate inside the tolerance, so identical inputs always produce
//     identical Fractions (and identical derivation snapshots downstream).

package fraction

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

const (
	// FloatTolerance is the acceptance window |x - n/d| < FloatTolerance used by FromFloat.
	FloatTolerance = 1e-10

	// MaxSearchDenominator bounds the denominator scan of FromFloat and is
	// also the fallback denominator.
	MaxSearchDenominator = 10000
)

// maxExactFloat is the largest float64 magnitude converted to int64 safely.
const maxExactFloat = float64(math.MaxInt64 / 2)

// FromFloat reconstructs a simple rational from a user-entered float64.
//
// Implementation:
//   - Stage 1: Reject NaN/±Inf and magnitudes beyond int64 (ErrNotRepresentable).
//   - Stage 2: Separate the sign; work on |x|.
//   - Stage 3: If |x| is within FloatTolerance of an integer, return it over 1.
//   - Stage 4: Scan d = 1..MaxSearchDenominator; return round(|x|·d)/d for the
//     first d whose candidate lies within FloatTolerance.
//   - Stage 5: Fall back to round(|x|·10000)/10000.
//
// Notes:
//   - This is a lossy, best-effort heuristic: 1/3 entered as 0.333333333 (nine
//     digits) is NOT recovered as 1/3 (the gap exceeds 1e-10) and lands on
//     the fallback 3333/10000. The constants are part of the observable behavior.
//
// Complexity: O(MaxSearchDenominator) in the worst case.
func FromFloat(x float64) (Fraction, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.Abs(x) > maxExactFloat {
		return Fraction{}, fmt.Errorf("FromFloat(%v): %w", x, ErrNotRepresentable)
	}

	var sign int64 = 1
	if x < 0 {
		sign = -1
	}
	x = math.Abs(x)

	// integer fast path
	if r := math.Round(x); math.Abs(x-r) < FloatTolerance {
		return FromInt(sign * int64(r)), nil
	}

	// ascending denominator scan; first hit wins
	var n, fd float64
	for d := 1; d <= MaxSearchDenominator; d++ {
		fd = float64(d)
		n = math.Round(x * fd)
		if math.Abs(x-n/fd) < FloatTolerance {
			return Fraction{val: big.NewRat(sign*int64(n), int64(d))}, nil
		}
	}

	scaled := math.Round(x * MaxSearchDenominator)
	if scaled > maxExactFloat {
		return Fraction{}, fmt.Errorf("FromFloat(%v): %w", x, ErrNotRepresentable)
	}

	return Fraction{val: big.NewRat(sign*int64(scaled), MaxSearchDenominator)}, nil
}

// MustFromFloat is like FromFloat but panics on non-representable input.
func MustFromFloat(x float64) Fraction {
	f, err := FromFloat(x)
	if err != nil {
		panic(err)
	}

	return f
}

// Parse reads a Fraction from text.
// Accepted forms (surrounding spaces ignored):
//
//	"7", "-7"         integers of any size (exact)
//	"3/4", "-6/8"     ratios of any size (exact, reduced)
//	"0.75", "1e-3"    decimals (through FromFloat, best-effort)
//
// Errors: ErrSyntax for malformed text, ErrDivisionByZero for "n/0",
// ErrNotRepresentable for "NaN"/"Inf".
func Parse(s string) (Fraction, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Fraction{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}

	if numText, denText, ok := strings.Cut(s, "/"); ok {
		n, ok := new(big.Int).SetString(strings.TrimSpace(numText), 10)
		if !ok {
			return Fraction{}, fmt.Errorf("Parse(%q): numerator: %w", s, ErrSyntax)
		}
		d, ok := new(big.Int).SetString(strings.TrimSpace(denText), 10)
		if !ok {
			return Fraction{}, fmt.Errorf("Parse(%q): denominator: %w", s, ErrSyntax)
		}

		return FromBig(n, d)
	}

	if n, ok := new(big.Int).SetString(s, 10); ok {
		return Fraction{val: new(big.Rat).SetInt(n)}, nil
	}

	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Fraction{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}

	return FromFloat(x)
}
