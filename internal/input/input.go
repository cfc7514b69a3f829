// SPDX-License-Identifier: MIT

// Package input converts user-facing text into exact engine operands.
//
// Matrix literals separate rows with ';' or newlines and entries with ','
// or whitespace. Entries are integers, fractions ("3/4") or decimals
// ("0.25"); decimals go through fraction.FromFloat.
//
//	1, 2; 3, 4        → [[1 2] [3 4]]
//	1/2 0.25\n-3 4    → [[1/2 1/4] [-3 4]]
//
// Problem files (TOML or YAML, chosen by extension) carry the same operands
// for non-interactive runs.
package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/linsteps/fraction"
	"github.com/katalvlaran/linsteps/matrix"
)

var (
	// ErrEmpty is returned when no entries were supplied.
	ErrEmpty = errors.New("input: empty value")

	// ErrUnknownFormat is returned for problem files that are neither TOML nor YAML.
	ErrUnknownFormat = errors.New("input: unknown problem file format")

	// ErrBadEntry is returned for entries of an unsupported type in a problem file.
	ErrBadEntry = errors.New("input: unsupported entry")
)

// ParseMatrix parses a matrix literal.
// Errors: ErrEmpty, fraction.ErrSyntax, fraction.ErrDivisionByZero, matrix.ErrBadShape.
func ParseMatrix(s string) (*matrix.Dense, error) {
	var rows [][]fraction.Fraction
	for _, line := range strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '\n' }) {
		row, err := parseEntries(line)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(rows)+1, err)
		}
		if len(row) == 0 {
			continue // blank line
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("matrix: %w", ErrEmpty)
	}

	return matrix.FromRows(rows)
}

// ParseVector parses a comma or whitespace separated list of entries.
// Errors: ErrEmpty, fraction.ErrSyntax, fraction.ErrDivisionByZero.
func ParseVector(s string) ([]fraction.Fraction, error) {
	v, err := parseEntries(s)
	if err != nil {
		return nil, err
	}
	if len(v) == 0 {
		return nil, fmt.Errorf("vector: %w", ErrEmpty)
	}

	return v, nil
}

func parseEntries(s string) ([]fraction.Fraction, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
	out := make([]fraction.Fraction, 0, len(fields))
	for _, f := range fields {
		v, err := fraction.Parse(f)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", f, err)
		}
		out = append(out, v)
	}

	return out, nil
}
