// SPDX-License-Identifier: MIT
// Package fraction: the Fraction value type and its exact arithmetic.
//
// Purpose:
//   - Provide a reduced, sign-normalized rational number with value semantics.
//   - Never lose precision: numerators and denominators are arbitrary-size
//     integers, so sums and products cannot overflow.
//
// Invariants (hold after every constructor and operation):
//   - den > 0 and gcd(|num|, den) == 1 (math/big keeps Rat values normalized).
//   - The wrapped *big.Rat is never mutated after construction; every
//     operation allocates its result, so Fractions are safe to share.
//   - Equality is value equality of the reduced forms.

package fraction

import (
	"fmt"
	"math/big"
)

// zeroRat backs the zero value. Read-only.
var zeroRat = new(big.Rat)

// Fraction is an exact rational number num/den in lowest terms.
// The zero value is 0. Compare Fractions with Equal or Cmp, not ==.
type Fraction struct {
	val *big.Rat // nil in the zero value; never mutated once set
}

// rat returns the backing value, zeroRat for the zero value.
func (f Fraction) rat() *big.Rat {
	if f.val == nil {
		return zeroRat
	}

	return f.val
}

// Zero returns 0/1.
func Zero() Fraction { return Fraction{val: new(big.Rat)} }

// One returns 1/1.
func One() Fraction { return FromInt(1) }

// FromInt returns n/1.
func FromInt(n int64) Fraction { return Fraction{val: new(big.Rat).SetInt64(n)} }

// New returns n/d reduced to lowest terms with the sign on the numerator.
// Stage 1 (Validate): reject d == 0 with ErrDivisionByZero.
// Stage 2 (Normalize): big.Rat moves the sign to n and divides by gcd(|n|, |d|).
// Complexity: O(log min(|n|, |d|)).
func New(n, d int64) (Fraction, error) {
	if d == 0 {
		return Fraction{}, fmt.Errorf("New(%d, %d): %w", n, d, ErrDivisionByZero)
	}

	return Fraction{val: big.NewRat(n, d)}, nil
}

// FromBig returns num/den for arbitrary-size integers. The arguments are copied.
// Errors: ErrDivisionByZero when den is zero.
func FromBig(num, den *big.Int) (Fraction, error) {
	if den == nil || den.Sign() == 0 {
		return Fraction{}, fmt.Errorf("FromBig(%v, %v): %w", num, den, ErrDivisionByZero)
	}
	if num == nil {
		return Zero(), nil
	}

	return Fraction{val: new(big.Rat).SetFrac(num, den)}, nil
}

// MustNew is like New but panics on a zero denominator.
// Intended for literals in tests and examples.
func MustNew(n, d int64) Fraction {
	f, err := New(n, d)
	if err != nil {
		panic(err)
	}

	return f
}

// Num returns a copy of the reduced numerator (carries the sign).
func (f Fraction) Num() *big.Int { return new(big.Int).Set(f.rat().Num()) }

// Den returns a copy of the reduced, strictly positive denominator.
func (f Fraction) Den() *big.Int { return new(big.Int).Set(f.rat().Denom()) }

// Add returns f + g.
func (f Fraction) Add(g Fraction) Fraction {
	return Fraction{val: new(big.Rat).Add(f.rat(), g.rat())}
}

// Sub returns f - g.
func (f Fraction) Sub(g Fraction) Fraction {
	return Fraction{val: new(big.Rat).Sub(f.rat(), g.rat())}
}

// Mul returns f × g.
func (f Fraction) Mul(g Fraction) Fraction {
	return Fraction{val: new(big.Rat).Mul(f.rat(), g.rat())}
}

// Div returns f ÷ g, or ErrDivisionByZero when g is zero.
func (f Fraction) Div(g Fraction) (Fraction, error) {
	if g.IsZero() {
		return Fraction{}, fmt.Errorf("Div(%s, %s): %w", f, g, ErrDivisionByZero)
	}

	return Fraction{val: new(big.Rat).Quo(f.rat(), g.rat())}, nil
}

// Reciprocal returns 1/f, or ErrDivisionByZero when f is zero.
func (f Fraction) Reciprocal() (Fraction, error) {
	if f.IsZero() {
		return Fraction{}, fmt.Errorf("Reciprocal(0): %w", ErrDivisionByZero)
	}

	return Fraction{val: new(big.Rat).Inv(f.rat())}, nil
}

// Neg returns -f.
func (f Fraction) Neg() Fraction {
	return Fraction{val: new(big.Rat).Neg(f.rat())}
}

// Equal reports value equality.
func (f Fraction) Equal(g Fraction) bool { return f.rat().Cmp(g.rat()) == 0 }

// IsZero reports whether f == 0.
func (f Fraction) IsZero() bool { return f.rat().Sign() == 0 }

// IsOne reports whether f == 1.
func (f Fraction) IsOne() bool {
	r := f.rat()

	return r.IsInt() && r.Num().IsInt64() && r.Num().Int64() == 1
}

// IsInteger reports whether the reduced denominator is 1.
func (f Fraction) IsInteger() bool { return f.rat().IsInt() }

// Sign returns -1, 0 or +1.
func (f Fraction) Sign() int { return f.rat().Sign() }

// Cmp compares f and g and returns -1, 0 or +1.
func (f Fraction) Cmp(g Fraction) int { return f.rat().Cmp(g.rat()) }

// Float64 returns the nearest float64 to f.
// For f·(1/f) the result is exactly 1.0 because the product reduces to 1/1.
func (f Fraction) Float64() float64 {
	x, _ := f.rat().Float64()

	return x
}

// String returns "n" for integers and "n/d" otherwise.
func (f Fraction) String() string {
	return f.rat().RatString()
}

// Latex returns "n" for integers and `\frac{n}{d}` otherwise.
// The sign stays inside the numerator: -1/2 → `\frac{-1}{2}`.
func (f Fraction) Latex() string {
	r := f.rat()
	if r.IsInt() {
		return r.Num().String()
	}

	return `\frac{` + r.Num().String() + `}{` + r.Denom().String() + `}`
}

// MarshalText encodes f in its String form, so JSON and YAML carry "3/4".
func (f Fraction) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText decodes any form accepted by Parse.
func (f *Fraction) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = v

	return nil
}
