// SPDX-License-Identifier: MIT

// Package linsteps is a step-by-step linear algebra toolkit: every result is
// computed in exact rational arithmetic and comes with the derivation that
// produced it, ready to show a student.
//
// 🚀 What is linsteps?
//
//	A small, deterministic library plus a CLI and an MCP server:
//		• Exact numbers: arbitrary-precision fractions, parsed from "3", "-1/2", "0.25"
//		• Dense matrices: multiply, transpose, minors, cofactors, determinant
//		• Gauss–Jordan: RREF with a logged trace of every row operation
//		• Calculators: inverse, determinant, RREF, rank, product, power,
//		  linear systems by elimination and by Cramer's rule
//		• Steps: titled, described, LaTeX-annotated and nestable derivations
//		• Languages: English and Spanish step text
//
// ✨ Why choose linsteps?
//
//   - Exact – no floating point anywhere in a derivation
//   - Reproducible – same input, byte-identical steps
//   - Teachable – the steps follow the textbook method, not the fastest one
//
// Under the hood, everything is organized into a handful of packages:
//
//	fraction/  — the exact rational type and its parsers
//	matrix/    — Dense matrices of fractions and the exact kernels
//	steps/     — Step trees, the numbering Recorder and text rendering
//	i18n/      — message catalog (en, es) behind golang.org/x/text
//	calc/      — the calculators that turn kernels into derivations
//	cmd/linsteps — the command line (cobra) with an MCP stdio mode
//
// Quick example:
//
//	a, _ := matrix.FromInts([][]int64{{1, 2}, {3, 4}})
//	res, _ := calc.Inverse(a)
//	_ = steps.Fprint(os.Stdout, res.Steps)
//
// prints the four steps of the adjugate method ending in
//
//	A^{-1} = -\frac{1}{2} \cdot \operatorname{adj}(A) = ...
//
//	go install github.com/katalvlaran/linsteps/cmd/linsteps@latest
package linsteps
