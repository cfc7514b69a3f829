// SPDX-License-Identifier: MIT

// Package fraction implements exact rational numbers for step-by-step
// linear algebra.
//
// 🚀 What is a Fraction?
//
//	A Fraction is an immutable numerator/denominator pair of arbitrary-size
//	integers (math/big), always kept in lowest terms with the sign carried
//	by the numerator:
//
//	  6/-8  →  -3/4
//	  0/5   →  0
//
//	Every engine in linsteps computes on Fractions so that derivations such
//	as A⁻¹ = adj(A)/det(A) never drift the way float64 arithmetic does.
//
// ✨ Key features:
//   - value semantics: Add/Sub/Mul/Neg never mutate the receiver
//   - no overflow: results grow as large as they need to
//   - the zero value Fraction{} is a valid 0
//   - display forms: String() → "3/4", Latex() → `\frac{3}{4}`
//   - FromFloat: best-effort reconstruction of user-entered decimals
//   - Parse: "3", "-3/4", "0.75" for boundary input
//
// ⚠️ Precision boundary:
//
//	FromFloat is a lossy heuristic. It accepts a candidate n/d only when
//	|x - n/d| < 1e-10 and scans denominators 1..10000; otherwise it falls back
//	to round(x·10000)/10000. Irrational inputs and long-period decimals are
//	approximated silently. This is documented behavior, not an error.
//
//	Arithmetic itself is exact: there is no int64 limit, so sums and
//	products never wrap. 10^20 and the entries of [[2,1],[1,1]]^50 are
//	represented in full.
//
// Usage:
//
//	a := fraction.MustNew(1, 3)
//	b := fraction.MustNew(1, 6)
//	fmt.Println(a.Add(b)) // 1/2
package fraction
