// SPDX-License-Identifier: MIT
package calc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsteps/calc"
	"github.com/katalvlaran/linsteps/fraction"
	"github.com/katalvlaran/linsteps/matrix"
)

func ints(t *testing.T, rows ...[]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromInts(rows)
	require.NoError(t, err)

	return m
}

func vec(vals ...int64) []fraction.Fraction {
	out := make([]fraction.Fraction, len(vals))
	for i, v := range vals {
		out[i] = fraction.FromInt(v)
	}

	return out
}

// solutionStrings renders assignments as "x = 2" / "y = free".
func solutionStrings(sol []calc.Assignment) []string {
	out := make([]string, len(sol))
	for i, a := range sol {
		out[i] = a.String()
	}

	return out
}
