// SPDX-License-Identifier: MIT

package fraction_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/linsteps/fraction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_ReducesAndNormalizesSign checks gcd(|n|, d) == 1 and d > 0 for a grid of inputs.
func TestNew_ReducesAndNormalizesSign(t *testing.T) {
	t.Parallel()
	for n := int64(-12); n <= 12; n++ {
		for d := int64(-12); d <= 12; d++ {
			if d == 0 {
				continue
			}
			f, err := fraction.New(n, d)
			require.NoError(t, err)
			num, den := f.Num(), f.Den()
			assert.Equal(t, 1, den.Sign(), "denominator of %d/%d", n, d)
			g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
			if num.Sign() != 0 {
				assert.Equal(t, int64(1), g.Int64(), "%d/%d not reduced: %s", n, d, f)
			}
			// value preserved: n*den == num*d
			assert.Equal(t, n*den.Int64(), num.Int64()*d, "%d/%d changed value", n, d)
		}
	}
}

func TestNew_ZeroDenominator(t *testing.T) {
	_, err := fraction.New(3, 0)
	assert.ErrorIs(t, err, fraction.ErrDivisionByZero)
	assert.Panics(t, func() { fraction.MustNew(1, 0) })
}

func TestZeroValueIsZero(t *testing.T) {
	var f fraction.Fraction
	assert.True(t, f.IsZero())
	assert.Equal(t, int64(1), f.Den().Int64())
	assert.True(t, f.Equal(fraction.Zero()))
	assert.Equal(t, "0", f.String())
	assert.True(t, f.Add(fraction.One()).IsOne())
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  fraction.Fraction
		want fraction.Fraction
	}{
		{"1/3+1/6", fraction.MustNew(1, 3).Add(fraction.MustNew(1, 6)), fraction.MustNew(1, 2)},
		{"1/2-3/4", fraction.MustNew(1, 2).Sub(fraction.MustNew(3, 4)), fraction.MustNew(-1, 4)},
		{"2/3*3/4", fraction.MustNew(2, 3).Mul(fraction.MustNew(3, 4)), fraction.MustNew(1, 2)},
		{"-5/7*0", fraction.MustNew(-5, 7).Mul(fraction.Zero()), fraction.Zero()},
		{"neg", fraction.MustNew(3, -9).Neg(), fraction.MustNew(1, 3)},
		{"2/4", fraction.MustNew(2, 4), fraction.MustNew(1, 2)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.want.Equal(tc.got), "want %s, got %s", tc.want, tc.got)
		})
	}
}

func TestDiv(t *testing.T) {
	q, err := fraction.MustNew(3, 4).Div(fraction.MustNew(-3, 8))
	require.NoError(t, err)
	assert.True(t, q.Equal(fraction.FromInt(-2)))

	_, err = fraction.One().Div(fraction.Zero())
	assert.ErrorIs(t, err, fraction.ErrDivisionByZero)

	_, err = fraction.Zero().Reciprocal()
	assert.ErrorIs(t, err, fraction.ErrDivisionByZero)
}

// TestInverseLaw verifies (a/b)·(b/a) == 1 and converts to exactly 1.0.
func TestInverseLaw(t *testing.T) {
	for _, pair := range [][2]int64{{1, 2}, {-3, 7}, {12, -5}, {9999, 10000}, {-1, -1}} {
		a, b := pair[0], pair[1]
		p := fraction.MustNew(a, b).Mul(fraction.MustNew(b, a))
		assert.True(t, p.Equal(fraction.MustNew(1, 1)), "%d/%d inverse law", a, b)
		assert.Equal(t, 1.0, p.Float64())
	}
}

func TestCmpAndSign(t *testing.T) {
	assert.Equal(t, -1, fraction.MustNew(1, 3).Cmp(fraction.MustNew(1, 2)))
	assert.Equal(t, 0, fraction.MustNew(2, 4).Cmp(fraction.MustNew(1, 2)))
	assert.Equal(t, 1, fraction.MustNew(-1, 3).Cmp(fraction.MustNew(-1, 2)))
	assert.Equal(t, -1, fraction.MustNew(-1, 3).Sign())
	assert.Equal(t, 0, fraction.Zero().Sign())
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "-2", fraction.FromInt(-2).String())
	assert.Equal(t, "3/2", fraction.MustNew(3, 2).String())
	assert.Equal(t, "-1/2", fraction.MustNew(1, -2).String())
	assert.Equal(t, "5", fraction.FromInt(5).Latex())
	assert.Equal(t, `\frac{-1}{2}`, fraction.MustNew(-1, 2).Latex())
	assert.Equal(t, 1.5, fraction.MustNew(3, 2).Float64())
}

func TestFromFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want fraction.Fraction
	}{
		{0, fraction.Zero()},
		{3, fraction.FromInt(3)},
		{-4, fraction.FromInt(-4)},
		{1.5, fraction.MustNew(3, 2)},
		{-0.5, fraction.MustNew(-1, 2)},
		{0.75, fraction.MustNew(3, 4)},
		{1.0 / 3.0, fraction.MustNew(1, 3)},
		{2.0 / 7.0, fraction.MustNew(2, 7)},
		{0.1 + 0.2, fraction.MustNew(3, 10)},
		{0.333333333, fraction.MustNew(3333, 10000)}, // outside tolerance → fallback
		{math.Pi, fraction.MustNew(31416, 10000)},     // irrational → fallback
	}
	for _, tc := range tests {
		got, err := fraction.FromFloat(tc.in)
		require.NoError(t, err)
		assert.True(t, tc.want.Equal(got), "FromFloat(%v): want %s, got %s", tc.in, tc.want, got)
	}
}

func TestFromFloat_NotRepresentable(t *testing.T) {
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1e30} {
		_, err := fraction.FromFloat(x)
		assert.ErrorIs(t, err, fraction.ErrNotRepresentable, "input %v", x)
	}
	assert.Panics(t, func() { fraction.MustFromFloat(math.NaN()) })
}

func TestParse(t *testing.T) {
	ok := map[string]fraction.Fraction{
		"7":      fraction.FromInt(7),
		" -6/8 ": fraction.MustNew(-3, 4),
		"0.25":   fraction.MustNew(1, 4),
		"3 / -9": fraction.MustNew(-1, 3),
		"-1.5e0": fraction.MustNew(-3, 2),
	}
	for in, want := range ok {
		got, err := fraction.Parse(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "Parse(%q): want %s, got %s", in, want, got)
	}

	for _, in := range []string{"", "abc", "1/x", "x/2", "1/2/3"} {
		_, err := fraction.Parse(in)
		assert.ErrorIs(t, err, fraction.ErrSyntax, "input %q", in)
	}
	_, err := fraction.Parse("4/0")
	assert.ErrorIs(t, err, fraction.ErrDivisionByZero)
	_, err = fraction.Parse("NaN")
	assert.ErrorIs(t, err, fraction.ErrNotRepresentable)
}

func TestTextRoundTrip(t *testing.T) {
	var f fraction.Fraction
	require.NoError(t, f.UnmarshalText([]byte("-10/4")))
	text, err := f.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "-5/2", string(text))
	assert.Error(t, f.UnmarshalText([]byte("bad")))
}

// TestArithmetic_BeyondInt64 covers sums and products whose operands or
// results leave the int64 range; they stay exact and keep den > 0.
func TestArithmetic_BeyondInt64(t *testing.T) {
	t.Parallel()
	huge := func(s string) fraction.Fraction {
		f, err := fraction.Parse(s)
		require.NoError(t, err)

		return f
	}
	maxInt := fraction.FromInt(math.MaxInt64)
	minInt := fraction.FromInt(math.MinInt64)
	third := fraction.MustNew(1, 3037000500)

	tests := []struct {
		name string
		got  fraction.Fraction
		want string
	}{
		{"max+max", maxInt.Add(maxInt), "18446744073709551614"},
		{"max+1", maxInt.Add(fraction.One()), "9223372036854775808"},
		{"min-1", minInt.Sub(fraction.One()), "-9223372036854775809"},
		{"-min", minInt.Neg(), "9223372036854775808"},
		{"max*max", maxInt.Mul(maxInt), "85070591730234615847396907784232501249"},
		{"1/3037000500 squared", third.Mul(third), "1/9223372037000250000"},
		{"1/max+1/max", huge("1/9223372036854775807").Add(huge("1/9223372036854775807")), "2/9223372036854775807"},
		{"10^20 - 1", huge("100000000000000000000").Sub(fraction.One()), "99999999999999999999"},
		{"cancel back", maxInt.Mul(maxInt).Mul(huge("1/85070591730234615847396907784232501249")), "1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got.String())
			assert.Equal(t, 1, tc.got.Den().Sign(), "denominator must stay positive")
		})
	}
}

func TestParse_BeyondInt64(t *testing.T) {
	t.Parallel()
	f, err := fraction.Parse("-18446744073709551616/4")
	require.NoError(t, err)
	assert.Equal(t, "-4611686018427387904", f.String())
	assert.True(t, f.IsInteger())

	f, err = fraction.Parse("99999999999999999999")
	require.NoError(t, err)
	assert.Equal(t, `99999999999999999999`, f.Latex())

	_, err = fraction.FromBig(big.NewInt(1), new(big.Int))
	assert.ErrorIs(t, err, fraction.ErrDivisionByZero)
}

func TestOperationsDoNotMutate(t *testing.T) {
	t.Parallel()
	a := fraction.MustNew(2, 3)
	b := fraction.MustNew(5, 7)
	_ = a.Add(b)
	_ = a.Mul(b)
	_ = a.Neg()
	_, _ = a.Div(b)
	assert.Equal(t, "2/3", a.String())
	assert.Equal(t, "5/7", b.String())

	num := a.Num()
	num.SetInt64(100)
	assert.Equal(t, "2/3", a.String(), "Num returns a copy")
}
