// SPDX-License-Identifier: MIT
// Package calc — determinant with the first-row expansion spelled out.

package calc

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linsteps/fraction"
	"github.com/katalvlaran/linsteps/i18n"
	"github.com/katalvlaran/linsteps/matrix"
	"github.com/katalvlaran/linsteps/steps"
)

// DeterminantResult is the outcome of Determinant.
type DeterminantResult struct {
	Determinant fraction.Fraction `json:"determinant" yaml:"determinant"`
	Singular    bool              `json:"singular" yaml:"singular"`
	Steps       []steps.Step      `json:"steps" yaml:"steps"`
}

// Determinant computes det(A) and records three steps: the matrix, the rule
// applied (1×1, 2×2 ad − bc, or first-row expansion with one sub-step per
// minor), and the result.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrTooLarge.
// Complexity: O(n!).
func Determinant(a *matrix.Dense, opts ...Option) (*DeterminantResult, error) {
	o := gatherOptions(opts...)
	if err := checkCofactorInput(a, o); err != nil {
		return nil, calcErrorf(opDeterminant, err)
	}
	p := o.printer
	rec := steps.NewRecorder(p)

	rec.Add(p.Sprintf(i18n.MsgDetMatrixTitle), p.Sprintf(i18n.MsgDetMatrixDesc), "A = "+a.Latex())

	var det fraction.Fraction
	switch a.Rows() {
	case 1, 2:
		d, err := matrix.Determinant(a)
		if err != nil {
			return nil, calcErrorf(opDeterminant, err)
		}
		det = d
		desc, latex := p.Sprintf(i18n.MsgDetRule1Desc), fmt.Sprintf(`\det(A) = %s`, det.Latex())
		if a.Rows() == 2 {
			e := a.Rational()
			desc = p.Sprintf(i18n.MsgDetRule2Desc)
			latex = fmt.Sprintf(`\det(A) = (%s)(%s) - (%s)(%s) = %s`,
				e[0][0].Latex(), e[1][1].Latex(), e[0][1].Latex(), e[1][0].Latex(), det.Latex())
		}
		rec.Add(p.Sprintf(i18n.MsgDetRuleTitle), desc, latex)
	default:
		terms, total, err := matrix.Expansion(a)
		if err != nil {
			return nil, calcErrorf(opDeterminant, err)
		}
		det = total
		sub := make([]steps.Step, len(terms))
		for j, t := range terms {
			sub[j] = steps.Step{
				Title:       p.Sprintf(i18n.MsgDetMinorTitle, j+1),
				Description: p.Sprintf(i18n.MsgDetMinorDesc, j+1, t.MinorDet.String()),
				Latex:       fmt.Sprintf(`M_{1,%d} = %s`, j+1, t.Minor.Latex()),
			}
		}
		rec.AddNested(p.Sprintf(i18n.MsgDetRuleTitle), p.Sprintf(i18n.MsgDetRuleNDesc), expansionLatex(terms, det), sub)
	}

	note := p.Sprintf(i18n.MsgDetInvertibleNote)
	if det.IsZero() {
		note = p.Sprintf(i18n.MsgDetSingularNote)
	}
	rec.Add(p.Sprintf(i18n.MsgDetResultTitle), p.Sprintf(i18n.MsgDetResultDesc)+" "+note,
		fmt.Sprintf(`\det(A) = %s`, det.Latex()))

	return &DeterminantResult{Determinant: det, Singular: det.IsZero(), Steps: rec.Steps()}, nil
}

// expansionLatex renders Σ (−1)^j a_{1j} det(M_{1j}) as
// \det(A) = (6)(-54) - (1)(18) + (1)(36) = -306.
func expansionLatex(terms []matrix.ExpansionTerm, det fraction.Fraction) string {
	var sb strings.Builder
	sb.WriteString(`\det(A) = `)
	for j, t := range terms {
		switch {
		case t.Sign < 0:
			sb.WriteString(" - ")
		case j > 0:
			sb.WriteString(" + ")
		}
		fmt.Fprintf(&sb, "(%s)(%s)", t.Entry.Latex(), t.MinorDet.Latex())
	}
	sb.WriteString(" = ")
	sb.WriteString(det.Latex())

	return sb.String()
}
