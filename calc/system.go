// SPDX-License-Identifier: MIT
// Package calc — systems of linear equations by Gauss–Jordan elimination.
//
// Classification of the reduced augmented matrix [R | r] (n unknowns):
//   - a pivot in the augmented column (0 = r_i with r_i ≠ 0) → inconsistent;
//   - fewer than n pivots → infinitely many solutions, non-pivot unknowns free;
//   - otherwise unique, x_j read off the row whose pivot is column j.

package calc

import (
	"fmt"
	"strings"

	"golang.org/x/text/message"

	"github.com/katalvlaran/linsteps/fraction"
	"github.com/katalvlaran/linsteps/i18n"
	"github.com/katalvlaran/linsteps/matrix"
	"github.com/katalvlaran/linsteps/steps"
)

// Assignment binds one unknown to its value. Value is nil when Free is true.
type Assignment struct {
	Variable string             `json:"variable" yaml:"variable"`
	Value    *fraction.Fraction `json:"value,omitempty" yaml:"value,omitempty"`
	Free     bool               `json:"free,omitempty" yaml:"free,omitempty"`
}

// String renders "x = 1/2" or "x = free".
func (a Assignment) String() string {
	if a.Free || a.Value == nil {
		return a.Variable + " = free"
	}

	return a.Variable + " = " + a.Value.String()
}

// SystemResult is the outcome of SolveSystem.
//
// HasSolution is false for inconsistent systems (Solution is then nil).
// IsInfinite marks free variables; pivot unknowns then carry the particular
// solution obtained with every free variable set to 0.
type SystemResult struct {
	HasSolution bool         `json:"hasSolution" yaml:"hasSolution"`
	IsInfinite  bool         `json:"isInfinite" yaml:"isInfinite"`
	Solution    []Assignment `json:"solution,omitempty" yaml:"solution,omitempty"` // in unknown order
	Steps       []steps.Step `json:"steps" yaml:"steps"`
}

// SolveSystem solves A·x = b. Unknowns are the columns of A, named by
// VariableName; b must have one entry per row.
//
// Steps: augmented matrix, elimination (with the RREF trace nested), solution.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrInvalidDimensions (empty b),
//     matrix.ErrDimensionMismatch (len(b) != rows), ErrTooManyUnknowns.
//
// Complexity: O(r²·(n+1)).
func SolveSystem(a *matrix.Dense, b []fraction.Fraction, opts ...Option) (*SystemResult, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, calcErrorf(opSolve, err)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return nil, calcErrorf(opSolve, err)
	}
	names, err := Variables(a.Cols())
	if err != nil {
		return nil, calcErrorf(opSolve, err)
	}
	p := o.printer
	rec := steps.NewRecorder(p)

	aug, err := matrix.AppendColumn(a, b)
	if err != nil {
		return nil, calcErrorf(opSolve, err)
	}
	rec.Add(p.Sprintf(i18n.MsgSysAugmentTitle), p.Sprintf(i18n.MsgSysAugmentDesc), `[A \mid B] = `+aug.Latex())

	red, trace, err := rrefTrace(aug, p)
	if err != nil {
		return nil, calcErrorf(opSolve, err)
	}
	rec.AddNested(p.Sprintf(i18n.MsgSysEliminateTitle), p.Sprintf(i18n.MsgSysEliminateDesc), red.Reduced.Latex(), trace)

	res := classify(red, names)
	switch {
	case !res.HasSolution:
		rec.Add(p.Sprintf(i18n.MsgSysExtractTitle), p.Sprintf(i18n.MsgSysNoneDesc),
			`\text{`+p.Sprintf(i18n.MsgNoSolution)+`}`)
	case res.IsInfinite:
		rec.Add(p.Sprintf(i18n.MsgSysExtractTitle), p.Sprintf(i18n.MsgSysInfiniteDesc), solutionLatex(p, res.Solution))
	default:
		rec.Add(p.Sprintf(i18n.MsgSysExtractTitle), p.Sprintf(i18n.MsgSysUniqueDesc), solutionLatex(p, res.Solution))
	}
	res.Steps = rec.Steps()

	return res, nil
}

// classify reads the solution off the reduced augmented matrix.
func classify(red *matrix.Reduction, names []string) *SystemResult {
	n := len(names) // augmented column index
	pivots := red.PivotCols
	if len(pivots) > 0 && pivots[len(pivots)-1] == n {
		return &SystemResult{HasSolution: false}
	}

	rows := red.Reduced.Rational()
	pivotRow := make([]int, n)
	for j := range pivotRow {
		pivotRow[j] = -1
	}
	for i, col := range pivots {
		pivotRow[col] = i
	}

	res := &SystemResult{HasSolution: true, IsInfinite: len(pivots) < n, Solution: make([]Assignment, n)}
	for j, name := range names {
		if pivotRow[j] < 0 {
			res.Solution[j] = Assignment{Variable: name, Free: true}
			continue
		}
		v := rows[pivotRow[j]][n]
		res.Solution[j] = Assignment{Variable: name, Value: &v}
	}

	return res
}

// solutionLatex renders x = 2,\; y = \text{free}.
func solutionLatex(p *message.Printer, sol []Assignment) string {
	parts := make([]string, len(sol))
	for i, s := range sol {
		if s.Free {
			parts[i] = fmt.Sprintf(`%s = \text{%s}`, s.Variable, p.Sprintf(i18n.MsgFree))
			continue
		}
		parts[i] = fmt.Sprintf("%s = %s", s.Variable, s.Value.Latex())
	}

	return `\text{` + p.Sprintf(i18n.MsgSolution) + `} ` + strings.Join(parts, `,\; `)
}
