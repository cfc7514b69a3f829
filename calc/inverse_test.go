// SPDX-License-Identifier: MIT
package calc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/katalvlaran/linsteps/calc"
	"github.com/katalvlaran/linsteps/i18n"
	"github.com/katalvlaran/linsteps/matrix"
)

func TestInverse_2x2(t *testing.T) {
	t.Parallel()

	res, err := calc.Inverse(ints(t, []int64{1, 2}, []int64{3, 4}))
	require.NoError(t, err)
	require.True(t, res.Exists)
	assert.Equal(t, "-2", res.Determinant.String())
	assert.Equal(t, [][]string{{"-2", "1"}, {"3/2", "-1/2"}}, res.Inverse.Strings())

	require.Len(t, res.Steps, 4)
	assert.Equal(t, "Step 1: Find the Determinant", res.Steps[0].Title)
	assert.Equal(t, `\det(A) = -2`, res.Steps[0].Latex)
	assert.Equal(t, "Step 2: Find the Cofactor Matrix", res.Steps[1].Title)
	assert.Equal(t, `C = \begin{pmatrix}4 & -3 \\ -2 & 1\end{pmatrix}`, res.Steps[1].Latex)
	assert.Equal(t, "Step 3: Find the Adjugate Matrix", res.Steps[2].Title)
	assert.Equal(t, `\operatorname{adj}(A) = \begin{pmatrix}4 & -2 \\ -3 & 1\end{pmatrix}`, res.Steps[2].Latex)
	assert.Equal(t, "Step 4: Multiply by 1/Determinant", res.Steps[3].Title)
	assert.Contains(t, res.Steps[3].Latex, `\frac{3}{2}`)
}

func TestInverse_Singular(t *testing.T) {
	t.Parallel()

	res, err := calc.Inverse(ints(t, []int64{1, 2}, []int64{2, 4}))
	require.NoError(t, err)
	assert.False(t, res.Exists)
	assert.Nil(t, res.Inverse)
	assert.True(t, res.Determinant.IsZero())
	require.Len(t, res.Steps, 1)
	assert.Contains(t, res.Steps[0].Description, i18n.MsgInverseSingularComment)
}

func TestInverse_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, m := range []*matrix.Dense{
		ints(t, []int64{4}),
		ints(t, []int64{2, 1}, []int64{7, 4}),
		ints(t, []int64{4, 7}, []int64{2, 6}),
		ints(t, []int64{1, 2, 3}, []int64{0, 1, 4}, []int64{5, 6, 0}),
		ints(t, []int64{2, -1, 0, 0}, []int64{-1, 2, -1, 0}, []int64{0, -1, 2, -1}, []int64{0, 0, -1, 2}),
	} {
		first, err := calc.Inverse(m)
		require.NoError(t, err)
		require.True(t, first.Exists)

		second, err := calc.Inverse(first.Inverse)
		require.NoError(t, err)
		require.True(t, second.Exists)
		assert.True(t, second.Inverse.Equal(m), "inverse(inverse(M)) != M for\n%s", m)

		prod, err := matrix.Mul(m, first.Inverse)
		require.NoError(t, err)
		id, err := matrix.IdentityLike(m)
		require.NoError(t, err)
		assert.True(t, prod.Equal(id))
	}
}

func TestInverse_OneByOne(t *testing.T) {
	t.Parallel()

	res, err := calc.Inverse(ints(t, []int64{4}))
	require.NoError(t, err)
	require.True(t, res.Exists)
	assert.Equal(t, [][]string{{"1/4"}}, res.Inverse.Strings())
}

func TestInverse_Errors(t *testing.T) {
	t.Parallel()

	_, err := calc.Inverse(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = calc.Inverse(ints(t, []int64{1, 2, 3}))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	big, err := matrix.NewIdentity(6)
	require.NoError(t, err)
	_, err = calc.Inverse(big)
	assert.ErrorIs(t, err, calc.ErrTooLarge)

	res, err := calc.Inverse(big, calc.WithMaxCofactorSize(6))
	require.NoError(t, err)
	assert.True(t, res.Inverse.Equal(big))
}

func TestInverse_Spanish(t *testing.T) {
	t.Parallel()

	res, err := calc.Inverse(ints(t, []int64{1, 2}, []int64{3, 4}), calc.WithLanguage(language.Spanish))
	require.NoError(t, err)
	assert.Equal(t, "Paso 1: Calcular el determinante", res.Steps[0].Title)
	assert.Equal(t, "Paso 4: Multiplicar por 1/determinante", res.Steps[3].Title)

	// unsupported locales fall back to English
	res, err = calc.Inverse(ints(t, []int64{1, 2}, []int64{3, 4}), calc.WithLanguage(language.Japanese))
	require.NoError(t, err)
	assert.Equal(t, "Step 1: Find the Determinant", res.Steps[0].Title)
}

func TestWithOptions_PanicOnNonsense(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { calc.WithMaxCofactorSize(0) })
	assert.Panics(t, func() { calc.WithMaxExponent(-1) })
}

// TestInverse_DeterminantBeyondInt64 keeps det = 10^20 − 1 exact, so the
// inverse multiplies back to the identity.
func TestInverse_DeterminantBeyondInt64(t *testing.T) {
	t.Parallel()

	a := ints(t, []int64{10000000000, 1}, []int64{1, 10000000000})
	res, err := calc.Inverse(a)
	require.NoError(t, err)
	require.True(t, res.Exists)
	assert.Equal(t, "99999999999999999999", res.Determinant.String())
	assert.Equal(t, [][]string{
		{"10000000000/99999999999999999999", "-1/99999999999999999999"},
		{"-1/99999999999999999999", "10000000000/99999999999999999999"},
	}, res.Inverse.Strings())

	prod, err := matrix.Mul(a, res.Inverse)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	assert.True(t, prod.Equal(id))
}
