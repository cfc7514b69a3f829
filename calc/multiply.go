// SPDX-License-Identifier: MIT
// Package calc — matrix multiplication.

package calc

import (
	"golang.org/x/text/message"

	"github.com/katalvlaran/linsteps/i18n"
	"github.com/katalvlaran/linsteps/matrix"
	"github.com/katalvlaran/linsteps/steps"
)

// MultiplyResult is the outcome of Multiply.
type MultiplyResult struct {
	Result *matrix.Dense `json:"result" yaml:"result"`
	Steps  []steps.Step  `json:"steps" yaml:"steps"`
}

// Multiply computes A × B.
//
// Dimensions are checked before any arithmetic; incompatible operands fail
// with matrix.ErrDimensionMismatch and no partial result.
//
// Steps: dimension check, row-by-column rule, result.
func Multiply(a, b *matrix.Dense, opts ...Option) (*MultiplyResult, error) {
	o := gatherOptions(opts...)
	c, trace, err := multiplyTrace(a, b, o.printer)
	if err != nil {
		return nil, calcErrorf(opMultiply, err)
	}

	return &MultiplyResult{Result: c, Steps: trace}, nil
}

func multiplyTrace(a, b *matrix.Dense, p *message.Printer) (*matrix.Dense, []steps.Step, error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, nil, err
	}
	c, err := matrix.Mul(a, b)
	if err != nil {
		return nil, nil, err
	}

	rec := steps.NewRecorder(p)
	rec.Add(p.Sprintf(i18n.MsgMulDimsTitle),
		p.Sprintf(i18n.MsgMulDimsDesc, a.Rows(), a.Cols(), b.Rows(), b.Cols()),
		`A = `+a.Latex()+`,\quad B = `+b.Latex())
	rec.Add(p.Sprintf(i18n.MsgMulRuleTitle), p.Sprintf(i18n.MsgMulRuleDesc),
		`c_{ij} = \sum_{k} a_{ik} \, b_{kj}`)
	rec.Add(p.Sprintf(i18n.MsgMulResultTitle), p.Sprintf(i18n.MsgMulResultDesc), `AB = `+c.Latex())

	return c, rec.Steps(), nil
}
