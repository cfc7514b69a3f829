// SPDX-License-Identifier: MIT

// Package calc turns the exact matrix kernels into step-by-step calculators.
//
// 🚀 What it does
//
// Every engine takes rational input (*matrix.Dense, constant vectors,
// exponents), runs one textbook algorithm and returns a result struct that
// pairs the final value with an ordered derivation trace ([]steps.Step):
//
//   - Inverse      adjugate method: det → cofactors → adjugate → scale
//   - Determinant  first-row cofactor expansion with one sub-step per minor
//   - RREF         Gauss–Jordan elimination with every row operation logged
//   - Rank         RREF, then count the pivots
//   - Multiply     row-by-column product with an up-front dimension check
//   - SolveSystem  [A | b] → RREF → unique / infinite / inconsistent
//   - Cramer       D and D_i determinants, x_i = D_i / D
//   - Power        repeated multiplication with the product traces nested
//
// ✨ Options
//
//	res, err := calc.Inverse(a,
//		calc.WithLanguage(language.Spanish), // step text in Spanish
//		calc.WithMaxCofactorSize(4),         // admission cap for O(n!) tools
//	)
//
// ⚠️ Outcomes vs errors
//
// Singular matrices, inconsistent systems, free variables and D = 0 are
// ordinary outcomes reported through result flags. Errors are reserved for
// malformed calls: nil or non-square operands, dimension mismatches,
// negative exponents and inputs above the admission caps. Match them with
// errors.Is against the sentinels here and in package matrix.
//
// Engines are pure: inputs are never mutated, nothing is shared between
// calls, and the trace for a given input is reproduced exactly.
package calc
