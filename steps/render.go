// SPDX-License-Identifier: MIT

package steps

import (
	"fmt"
	"io"
	"strings"
)

// FlatStep is a Step without nesting; Depth is 0 for top-level entries.
type FlatStep struct {
	Depth       int    `json:"depth"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Latex       string `json:"latex"`
}

// Flatten walks list depth-first (pre-order) and returns one FlatStep per node.
// Order is the reading order of the derivation.
func Flatten(list []Step) []FlatStep {
	out := make([]FlatStep, 0, Count(list))

	return flatten(out, list, 0)
}

func flatten(out []FlatStep, list []Step, depth int) []FlatStep {
	for _, s := range list {
		out = append(out, FlatStep{Depth: depth, Title: s.Title, Description: s.Description, Latex: s.Latex})
		out = flatten(out, s.SubSteps, depth+1)
	}

	return out
}

// indentUnit is the per-level indentation of Fprint.
const indentUnit = "  "

// Fprint writes list as indented plain text:
//
//	Step 1: Find the Determinant
//	  First, we calculate the determinant ...
//	  \det(A) = -2
//
// Sub-steps are indented one level below their parent. Empty descriptions
// and LaTeX lines are skipped.
func Fprint(w io.Writer, list []Step) error {
	for _, f := range Flatten(list) {
		pad := strings.Repeat(indentUnit, f.Depth)
		if _, err := fmt.Fprintf(w, "%s%s\n", pad, f.Title); err != nil {
			return err
		}
		for _, line := range []string{f.Description, f.Latex} {
			if line == "" {
				continue
			}
			if _, err := fmt.Fprintf(w, "%s%s%s\n", pad, indentUnit, line); err != nil {
				return err
			}
		}
	}

	return nil
}
