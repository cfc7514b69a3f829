// SPDX-License-Identifier: MIT
// Package calc — Cramer's rule.

package calc

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linsteps/fraction"
	"github.com/katalvlaran/linsteps/i18n"
	"github.com/katalvlaran/linsteps/matrix"
	"github.com/katalvlaran/linsteps/steps"
)

// CramerResult is the outcome of Cramer.
// HasSolution is false when D = 0; Solution is then nil.
type CramerResult struct {
	HasSolution bool              `json:"hasSolution" yaml:"hasSolution"`
	Determinant fraction.Fraction `json:"determinant" yaml:"determinant"`
	Solution    []Assignment      `json:"solution,omitempty" yaml:"solution,omitempty"`
	Steps       []steps.Step      `json:"steps" yaml:"steps"`
}

// Cramer solves the square system A·x = b by x_i = D_i / D, where D_i is the
// determinant of A with column i replaced by b.
//
// Steps:
//  1. D = det(A).
//  2. Value of D. D = 0 stops here with HasSolution=false.
//  3. For each unknown: the substituted matrix, then its determinant D_i.
//  4. The quotients D_i / D.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrInvalidDimensions,
//     matrix.ErrDimensionMismatch, ErrTooLarge, ErrTooManyUnknowns.
//
// Complexity: O((n+1)·n!).
func Cramer(a *matrix.Dense, b []fraction.Fraction, opts ...Option) (*CramerResult, error) {
	o := gatherOptions(opts...)
	if err := checkCofactorInput(a, o); err != nil {
		return nil, calcErrorf(opCramer, err)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return nil, calcErrorf(opCramer, err)
	}
	names, err := Variables(a.Cols())
	if err != nil {
		return nil, calcErrorf(opCramer, err)
	}
	p := o.printer
	rec := steps.NewRecorder(p)

	d, err := matrix.Determinant(a)
	if err != nil {
		return nil, calcErrorf(opCramer, err)
	}
	rec.Add(p.Sprintf(i18n.MsgCramerDTitle), p.Sprintf(i18n.MsgCramerDDesc), `D = \det`+a.Latex())
	if d.IsZero() {
		rec.Add(p.Sprintf(i18n.MsgCramerDResultTitle), p.Sprintf(i18n.MsgCramerNoUniqueDesc), "D = 0")

		return &CramerResult{HasSolution: false, Determinant: d, Steps: rec.Steps()}, nil
	}
	rec.Add(p.Sprintf(i18n.MsgCramerDResultTitle), p.Sprintf(i18n.MsgCramerDResultDesc, d.String()), "D = "+d.Latex())

	sol := make([]Assignment, len(names))
	quotients := make([]string, len(names))
	for i, name := range names {
		ai, err := matrix.ReplaceColumn(a, i, b)
		if err != nil {
			return nil, calcErrorf(opCramer, err)
		}
		di, err := matrix.Determinant(ai)
		if err != nil {
			return nil, calcErrorf(opCramer, err)
		}
		rec.Add(p.Sprintf(i18n.MsgCramerDiTitle, name), p.Sprintf(i18n.MsgCramerDiDesc, i+1, name),
			fmt.Sprintf(`D_{%s} = \det%s`, name, ai.Latex()))
		rec.Add(p.Sprintf(i18n.MsgCramerDiResTitle, name), p.Sprintf(i18n.MsgCramerDiResDesc, name, di.String()),
			fmt.Sprintf(`D_{%s} = %s`, name, di.Latex()))

		v, _ := di.Div(d) // d != 0 checked above
		sol[i] = Assignment{Variable: name, Value: &v}
		quotients[i] = fmt.Sprintf(`%s = \frac{D_{%s}}{D} = \frac{%s}{%s} = %s`, name, name, di.Latex(), d.Latex(), v.Latex())
	}
	rec.Add(p.Sprintf(i18n.MsgCramerRuleTitle), p.Sprintf(i18n.MsgCramerRuleDesc), strings.Join(quotients, `,\; `))

	return &CramerResult{HasSolution: true, Determinant: d, Solution: sol, Steps: rec.Steps()}, nil
}
