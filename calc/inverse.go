// SPDX-License-Identifier: MIT
// Package calc — matrix inverse by the adjugate method.

package calc

import (
	"fmt"

	"github.com/katalvlaran/linsteps/fraction"
	"github.com/katalvlaran/linsteps/i18n"
	"github.com/katalvlaran/linsteps/matrix"
	"github.com/katalvlaran/linsteps/steps"
)

// InverseResult is the outcome of Inverse.
// When Exists is false the matrix is singular and Inverse is nil.
type InverseResult struct {
	Exists      bool              `json:"exists" yaml:"exists"`
	Determinant fraction.Fraction `json:"determinant" yaml:"determinant"`
	Inverse     *matrix.Dense     `json:"inverse,omitempty" yaml:"inverse,omitempty"`
	Steps       []steps.Step      `json:"steps" yaml:"steps"`
}

// Inverse computes A⁻¹ = adj(A) / det(A) and records the derivation.
//
// Implementation:
//   - Stage 1: det(A) (step 1). det = 0 → Exists=false, no further steps.
//   - Stage 2: cofactor matrix C (step 2).
//   - Stage 3: adjugate Cᵀ (step 3).
//   - Stage 4: A⁻¹ = (1/det)·adj(A) (step 4).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrTooLarge (n above WithMaxCofactorSize).
//
// Complexity:
//   - O(n²·(n−1)!) for the cofactors.
func Inverse(a *matrix.Dense, opts ...Option) (*InverseResult, error) {
	o := gatherOptions(opts...)
	if err := checkCofactorInput(a, o); err != nil {
		return nil, calcErrorf(opInverse, err)
	}
	p := o.printer
	rec := steps.NewRecorder(p)

	// Stage 1
	det, err := matrix.Determinant(a)
	if err != nil {
		return nil, calcErrorf(opInverse, err)
	}
	detLatex := fmt.Sprintf(`\det(A) = %s`, det.Latex())
	if det.IsZero() {
		rec.Add(p.Sprintf(i18n.MsgInverseDetTitle),
			p.Sprintf(i18n.MsgInverseDetDesc)+" "+p.Sprintf(i18n.MsgInverseSingularComment),
			detLatex)

		return &InverseResult{Exists: false, Determinant: det, Steps: rec.Steps()}, nil
	}
	rec.Add(p.Sprintf(i18n.MsgInverseDetTitle), p.Sprintf(i18n.MsgInverseDetDesc), detLatex)

	// Stage 2
	cof, err := matrix.Cofactors(a)
	if err != nil {
		return nil, calcErrorf(opInverse, err)
	}
	rec.Add(p.Sprintf(i18n.MsgInverseCofactorTitle), p.Sprintf(i18n.MsgInverseCofactorDesc), "C = "+cof.Latex())

	// Stage 3
	adj, err := matrix.Transpose(cof)
	if err != nil {
		return nil, calcErrorf(opInverse, err)
	}
	rec.Add(p.Sprintf(i18n.MsgInverseAdjugateTitle), p.Sprintf(i18n.MsgInverseAdjugateDesc), `\operatorname{adj}(A) = `+adj.Latex())

	// Stage 4
	scale, _ := det.Reciprocal() // det != 0 checked above
	inv, err := matrix.Scale(adj, scale)
	if err != nil {
		return nil, calcErrorf(opInverse, err)
	}
	rec.Add(p.Sprintf(i18n.MsgInverseScaleTitle), p.Sprintf(i18n.MsgInverseScaleDesc),
		fmt.Sprintf(`A^{-1} = %s \cdot \operatorname{adj}(A) = %s`, scale.Latex(), inv.Latex()))

	return &InverseResult{Exists: true, Determinant: det, Inverse: inv, Steps: rec.Steps()}, nil
}

// checkCofactorInput validates a square operand within the cofactor cap.
func checkCofactorInput(a *matrix.Dense, o Options) error {
	if err := matrix.ValidateSquare(a); err != nil {
		return err
	}
	if n := a.Rows(); n > o.maxCofactor {
		return fmt.Errorf("%dx%d, at most %dx%d: %w", n, n, o.maxCofactor, o.maxCofactor, ErrTooLarge)
	}

	return nil
}
