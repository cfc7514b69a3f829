// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense and the boundary constructors.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsteps/fraction"
	"github.com/katalvlaran/linsteps/matrix"
)

func TestNewDense_ZeroFilled(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.False(t, m.IsSquare())
	requireEntries(t, [][]string{{"0", "0", "0"}, {"0", "0", "0"}}, m)

	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 2}} {
		_, err = matrix.NewDense(dims[0], dims[1])
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "dims %v", dims)
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m := ints(t, []int64{1, 2}, []int64{3, 4})
	require.NoError(t, m.Set(1, 0, frac(1, 2)))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.True(t, v.Equal(frac(1, 2)))

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, fraction.One()), matrix.ErrOutOfRange)
	_, err = m.Row(5)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_CloneIsDeep(t *testing.T) {
	t.Parallel()

	m := ints(t, []int64{1, 2}, []int64{3, 4})
	c := m.Clone()
	require.True(t, c.Equal(m))

	require.NoError(t, c.Set(0, 0, fraction.FromInt(9)))
	assert.False(t, c.Equal(m))
	requireEntries(t, [][]string{{"1", "2"}, {"3", "4"}}, m)

	row, err := m.Row(0)
	require.NoError(t, err)
	row[0] = fraction.FromInt(7)
	requireEntries(t, [][]string{{"1", "2"}, {"3", "4"}}, m)
}

func TestDense_EqualNil(t *testing.T) {
	t.Parallel()

	var a, b *matrix.Dense
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(ints(t, []int64{1})))
	assert.False(t, ints(t, []int64{1, 2}).Equal(ints(t, []int64{1}, []int64{2})))
}

func TestFromFloats(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromFloats([][]float64{{0.5, 2}, {-0.25, 1.5}})
	require.NoError(t, err)
	requireEntries(t, [][]string{{"1/2", "2"}, {"-1/4", "3/2"}}, m)
	assert.Equal(t, [][]float64{{0.5, 2}, {-0.25, 1.5}}, m.Floats())

	_, err = matrix.FromFloats(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.FromFloats([][]float64{{}})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.FromFloats([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.FromFloats([][]float64{{math.NaN()}})
	assert.ErrorIs(t, err, fraction.ErrNotRepresentable)
}

func TestFromRows_Copies(t *testing.T) {
	t.Parallel()

	rows := [][]fraction.Fraction{{frac(1, 3), fraction.One()}}
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	rows[0][0] = fraction.Zero()
	requireEntries(t, [][]string{{"1/3", "1"}}, m)
	got := m.Rational()
	require.Len(t, got, 1)
	require.Len(t, got[0], 2)
	assert.True(t, frac(1, 3).Equal(got[0][0]))
	assert.True(t, got[0][1].IsOne())
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	requireEntries(t, [][]string{{"1", "0", "0"}, {"0", "1", "0"}, {"0", "0", "1"}}, id)

	like, err := matrix.IdentityLike(ints(t, []int64{5, 6}, []int64{7, 8}))
	require.NoError(t, err)
	assert.Equal(t, 2, like.Rows())

	_, err = matrix.IdentityLike(ints(t, []int64{1, 2}))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestVectorFromFloats(t *testing.T) {
	t.Parallel()

	v, err := matrix.VectorFromFloats([]float64{3, 0.5})
	require.NoError(t, err)
	require.Len(t, v, 2)
	assert.True(t, fraction.FromInt(3).Equal(v[0]), "got %s", v[0])
	assert.True(t, frac(1, 2).Equal(v[1]), "got %s", v[1])

	_, err = matrix.VectorFromFloats(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.VectorFromFloats([]float64{math.Inf(1)})
	assert.ErrorIs(t, err, fraction.ErrNotRepresentable)
}
