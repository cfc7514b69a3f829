// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for kernels.
//   - Compare matrices through their "a"/"a/b" string form so failures print readably.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsteps/fraction"
	"github.com/katalvlaran/linsteps/matrix"
)

// ints builds a Dense from integer rows or fails the test.
func ints(t *testing.T, rows ...[]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromInts(rows)
	require.NoError(t, err)

	return m
}

// frac is shorthand for fraction.MustNew.
func frac(n, d int64) fraction.Fraction { return fraction.MustNew(n, d) }

// requireEntries asserts m's entries in display form.
func requireEntries(t *testing.T, want [][]string, m *matrix.Dense) {
	t.Helper()
	require.NotNil(t, m)
	require.Equal(t, want, m.Strings())
}
