// SPDX-License-Identifier: MIT
// Package calc — integer matrix powers by repeated multiplication.

package calc

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsteps/i18n"
	"github.com/katalvlaran/linsteps/matrix"
	"github.com/katalvlaran/linsteps/steps"
)

// PowerResult is the outcome of Power.
type PowerResult struct {
	Result *matrix.Dense `json:"result" yaml:"result"`
	Power  int           `json:"power" yaml:"power"`
	Steps  []steps.Step  `json:"steps" yaml:"steps"`
}

// Power computes A^k for a square A.
//
// Implementation:
//   - k = 0: the identity of matching size, one step, no multiplication.
//   - k = 1: a copy of A, one step, no multiplication.
//   - k ≥ 2: an initialization step, then one step per increment i = 2..k
//     computing A^i = A^(i−1)·A, with that multiplication's own trace nested.
//
// Limits:
//   - Every k ≥ 0 is a valid power. Exponents above the configured cap
//     (DefaultMaxExponent = 50 unless WithMaxExponent says otherwise) are
//     refused with ErrTooLarge to bound the length of the derivation, not
//     because of the arithmetic: entries are exact at any size.
//
// Errors:
//   - ErrInvalidExponent (k < 0), ErrTooLarge (k above the cap),
//     matrix.ErrNilMatrix, matrix.ErrNonSquare.
//
// Complexity: O(k·n³).
func Power(a *matrix.Dense, k int, opts ...Option) (*PowerResult, error) {
	o := gatherOptions(opts...)
	if k < 0 {
		return nil, calcErrorf(opPower, fmt.Errorf("%d: %w", k, ErrInvalidExponent))
	}
	if k > o.maxExponent {
		return nil, calcErrorf(opPower, fmt.Errorf("exponent %d, at most %d: %w", k, o.maxExponent, ErrTooLarge))
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, calcErrorf(opPower, err)
	}
	p := o.printer
	rec := steps.NewRecorder(p)

	switch k {
	case 0:
		id, err := matrix.IdentityLike(a)
		if err != nil {
			return nil, calcErrorf(opPower, err)
		}
		rec.Add(p.Sprintf(i18n.MsgPow0Title), p.Sprintf(i18n.MsgPow0Desc), `A^{0} = I = `+id.Latex())

		return &PowerResult{Result: id, Power: 0, Steps: rec.Steps()}, nil
	case 1:
		rec.Add(p.Sprintf(i18n.MsgPow1Title), p.Sprintf(i18n.MsgPow1Desc), `A^{1} = A = `+a.Latex())

		return &PowerResult{Result: a.Clone(), Power: 1, Steps: rec.Steps()}, nil
	}

	rec.Add(p.Sprintf(i18n.MsgPowInitTitle), p.Sprintf(i18n.MsgPowInitDesc, k, k-1), fmt.Sprintf(`A = %s`, a.Latex()))
	cur := a
	for i := 2; i <= k; i++ {
		next, trace, err := multiplyTrace(cur, a, p)
		if err != nil {
			return nil, calcErrorf(opPower, err)
		}
		rec.AddNested(p.Sprintf(i18n.MsgPowStepTitle, i), p.Sprintf(i18n.MsgPowStepDesc, i-1, i),
			fmt.Sprintf(`A^{%d} = %s`, i, next.Latex()), trace)
		cur = next
	}

	return &PowerResult{Result: cur, Power: k, Steps: rec.Steps()}, nil
}

// ExponentFromFloat validates a user-supplied exponent: it must be finite,
// integral and non-negative. Errors: ErrInvalidExponent.
func ExponentFromFloat(x float64) (int, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) || x < 0 || x > math.MaxInt32 {
		return 0, fmt.Errorf("%v: %w", x, ErrInvalidExponent)
	}

	return int(x), nil
}
