// SPDX-License-Identifier: MIT
// Package calc — reduced row echelon form and rank.

package calc

import (
	"fmt"
	"strings"

	"golang.org/x/text/message"

	"github.com/katalvlaran/linsteps/i18n"
	"github.com/katalvlaran/linsteps/matrix"
	"github.com/katalvlaran/linsteps/steps"
)

// RREFResult is the outcome of RREF.
type RREFResult struct {
	RREF         *matrix.Dense `json:"rref" yaml:"rref"`
	PivotColumns []int         `json:"pivotColumns" yaml:"pivotColumns"` // 0-based
	Steps        []steps.Step  `json:"steps" yaml:"steps"`
}

// RankResult is the outcome of Rank.
type RankResult struct {
	Rank  int           `json:"rank" yaml:"rank"`
	RREF  *matrix.Dense `json:"rref" yaml:"rref"`
	Steps []steps.Step  `json:"steps" yaml:"steps"`
}

// RREF reduces A by Gauss–Jordan elimination.
//
// Steps:
//  1. Initial matrix.
//  2. Row operations: the operations joined with \rightarrow; every operation
//     is also a sub-step showing the matrix right after it.
//  3. Final RREF matrix.
//
// Errors: matrix.ErrNilMatrix.
func RREF(a *matrix.Dense, opts ...Option) (*RREFResult, error) {
	o := gatherOptions(opts...)
	red, trace, err := rrefTrace(a, o.printer)
	if err != nil {
		return nil, calcErrorf(opRREF, err)
	}

	return &RREFResult{RREF: red.Reduced, PivotColumns: red.PivotCols, Steps: trace}, nil
}

// Rank computes rank(A) as the number of pivots of its RREF; the RREF trace
// is nested under the first step.
// Errors: matrix.ErrNilMatrix.
func Rank(a *matrix.Dense, opts ...Option) (*RankResult, error) {
	o := gatherOptions(opts...)
	p := o.printer
	red, trace, err := rrefTrace(a, p)
	if err != nil {
		return nil, calcErrorf(opRank, err)
	}

	rec := steps.NewRecorder(p)
	rec.AddNested(p.Sprintf(i18n.MsgRankReduceTitle), p.Sprintf(i18n.MsgRankReduceDesc),
		red.Reduced.Latex(), trace)
	rec.Add(p.Sprintf(i18n.MsgRankCountTitle), p.Sprintf(i18n.MsgRankCountDesc, red.Rank()),
		fmt.Sprintf(`\operatorname{rank}(A) = %d`, red.Rank()))

	return &RankResult{Rank: red.Rank(), RREF: red.Reduced, Steps: rec.Steps()}, nil
}

// rrefTrace runs the kernel and builds the three-step RREF trace.
func rrefTrace(a *matrix.Dense, p *message.Printer) (*matrix.Reduction, []steps.Step, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, nil, err
	}
	rec := steps.NewRecorder(p)
	rec.Add(p.Sprintf(i18n.MsgRREFInitialTitle), p.Sprintf(i18n.MsgRREFInitialDesc), a.Latex())

	var (
		descs []string
		sub   []steps.Step
	)
	red, err := matrix.RREF(a, func(op matrix.RowOp, state *matrix.Dense) {
		d := describeRowOp(p, op)
		descs = append(descs, d)
		sub = append(sub, steps.Step{Title: d, Description: p.Sprintf(i18n.MsgRREFOpStateDesc), Latex: state.Latex()})
	})
	if err != nil {
		return nil, nil, err
	}

	if len(descs) == 0 {
		rec.Add(p.Sprintf(i18n.MsgRREFOpsTitle), p.Sprintf(i18n.MsgRREFNoOpsDesc), "")
	} else {
		rec.AddNested(p.Sprintf(i18n.MsgRREFOpsTitle), p.Sprintf(i18n.MsgRREFOpsDesc),
			strings.Join(descs, ` \rightarrow `), sub)
	}
	rec.Add(p.Sprintf(i18n.MsgRREFFinalTitle), p.Sprintf(i18n.MsgRREFFinalDesc), red.Reduced.Latex())

	return red, rec.Steps(), nil
}

// describeRowOp renders op in the printer's language with 1-based rows.
func describeRowOp(p *message.Printer, op matrix.RowOp) string {
	switch op.Kind {
	case matrix.RowSwap:
		return p.Sprintf(i18n.MsgRowOpSwap, op.Target+1, op.Source+1)
	case matrix.RowScale:
		return p.Sprintf(i18n.MsgRowOpScale, op.Target+1, op.Scalar.Latex())
	default:
		return p.Sprintf(i18n.MsgRowOpAdd, op.Target+1, op.Target+1, op.Scalar.Latex(), op.Source+1)
	}
}
