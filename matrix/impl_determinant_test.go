// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the cofactor-expansion kernels.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsteps/fraction"
	"github.com/katalvlaran/linsteps/matrix"
)

func TestDeterminant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    *matrix.Dense
		want fraction.Fraction
	}{
		{"1x1", ints(t, []int64{-7}), fraction.FromInt(-7)},
		{"2x2", ints(t, []int64{1, 2}, []int64{3, 4}), fraction.FromInt(-2)},
		{"2x2 singular", ints(t, []int64{1, 2}, []int64{2, 4}), fraction.Zero()},
		{"3x3", ints(t, []int64{6, 1, 1}, []int64{4, -2, 5}, []int64{2, 8, 7}), fraction.FromInt(-306)},
		{"3x3 zero row entries", ints(t, []int64{0, 0, 2}, []int64{0, 3, 0}, []int64{4, 0, 0}), fraction.FromInt(-24)},
		{"4x4 identity", ints(t, []int64{1, 0, 0, 0}, []int64{0, 1, 0, 0}, []int64{0, 0, 1, 0}, []int64{0, 0, 0, 1}), fraction.One()},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.Determinant(tc.m)
			require.NoError(t, err)
			assert.Truef(t, got.Equal(tc.want), "det = %s, want %s", got, tc.want)
		})
	}
}

func TestDeterminant_Rational(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromRows([][]fraction.Fraction{
		{frac(1, 2), frac(1, 3)},
		{frac(1, 4), frac(1, 5)},
	})
	require.NoError(t, err)
	got, err := matrix.Determinant(m)
	require.NoError(t, err)
	// 1/10 - 1/12 = 1/60
	assert.True(t, got.Equal(frac(1, 60)))
}

func TestDeterminant_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Determinant(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Determinant(ints(t, []int64{1, 2}))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Cofactors(ints(t, []int64{1, 2}))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
	_, _, err = matrix.Expansion(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestExpansion(t *testing.T) {
	t.Parallel()

	terms, total, err := matrix.Expansion(ints(t, []int64{6, 1, 1}, []int64{4, -2, 5}, []int64{2, 8, 7}))
	require.NoError(t, err)
	require.Len(t, terms, 3)
	assert.True(t, total.Equal(fraction.FromInt(-306)))

	wantSign := []int{1, -1, 1}
	wantMinorDet := []int64{-54, 18, 36}
	wantTerm := []int64{-324, -18, 36}
	for j, term := range terms {
		assert.Equal(t, j, term.Col)
		assert.Equal(t, wantSign[j], term.Sign)
		assert.True(t, term.MinorDet.Equal(fraction.FromInt(wantMinorDet[j])), "minor %d", j)
		assert.True(t, term.Term.Equal(fraction.FromInt(wantTerm[j])), "term %d", j)
		require.NotNil(t, term.Minor)
		assert.Equal(t, 2, term.Minor.Rows())
	}

	terms, total, err = matrix.Expansion(ints(t, []int64{9}))
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.Nil(t, terms[0].Minor)
	assert.True(t, total.Equal(fraction.FromInt(9)))
}

func TestCofactors(t *testing.T) {
	t.Parallel()

	c, err := matrix.Cofactors(ints(t, []int64{1, 2}, []int64{3, 4}))
	require.NoError(t, err)
	requireEntries(t, [][]string{{"4", "-3"}, {"-2", "1"}}, c)

	c, err = matrix.Cofactors(ints(t, []int64{5}))
	require.NoError(t, err)
	requireEntries(t, [][]string{{"1"}}, c)
}
