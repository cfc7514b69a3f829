// SPDX-License-Identifier: MIT

package calc

import "fmt"

// variableLetters is the naming order of unknowns: x, y, z, then a..w.
const variableLetters = "xyzabcdefghijklmnopqrstuvw"

// MaxUnknowns is the number of distinct variable names.
const MaxUnknowns = len(variableLetters)

// VariableName returns the name of the i-th (0-based) unknown.
// Errors: ErrTooManyUnknowns when i is outside [0, MaxUnknowns).
func VariableName(i int) (string, error) {
	if i < 0 || i >= MaxUnknowns {
		return "", fmt.Errorf("unknown #%d: %w", i+1, ErrTooManyUnknowns)
	}

	return variableLetters[i : i+1], nil
}

// Variables returns the names of n unknowns in order.
func Variables(n int) ([]string, error) {
	if n > MaxUnknowns {
		return nil, fmt.Errorf("%d unknowns, at most %d: %w", n, MaxUnknowns, ErrTooManyUnknowns)
	}
	out := make([]string, n)
	for i := range out {
		out[i] = variableLetters[i : i+1]
	}

	return out, nil
}
