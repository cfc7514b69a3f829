// SPDX-License-Identifier: MIT
// Package matrix — display and serialization forms of Dense.
//
// Forms:
//   - Latex: \begin{pmatrix}1 & \frac{1}{2} \\ 3 & 4\end{pmatrix}
//   - String: one bracketed row per line, entries in "a" or "a/b" form.
//   - JSON/YAML: a list of rows of "a"/"a/b" strings, so no precision is lost.

package matrix

import (
	"encoding/json"
	"strings"
)

// Latex renders m as a pmatrix environment. A nil matrix renders as "".
func (m *Dense) Latex() string {
	if m == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(`\begin{pmatrix}`)
	for i := 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteString(` \\ `)
		}
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(" & ")
			}
			sb.WriteString(m.at(i, j).Latex())
		}
	}
	sb.WriteString(`\end{pmatrix}`)

	return sb.String()
}

// String renders m as
//
//	[1 1/2]
//	[3 4]
//
// without a trailing newline. A nil matrix renders as "<nil>".
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}
	rows := m.Strings()
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = "[" + strings.Join(row, " ") + "]"
	}

	return strings.Join(lines, "\n")
}

// MarshalJSON encodes m as [["1","1/2"],["3","4"]].
func (m *Dense) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}

	return json.Marshal(m.Strings())
}

// MarshalYAML implements yaml.Marshaler with the same row-of-strings layout.
func (m *Dense) MarshalYAML() (interface{}, error) {
	if m == nil {
		return nil, nil
	}

	return m.Strings(), nil
}
