// SPDX-License-Identifier: MIT

package mcpserver

import (
	"github.com/katalvlaran/linsteps/calc"
	"github.com/katalvlaran/linsteps/matrix"
	"github.com/katalvlaran/linsteps/steps"
)

// MatrixInput is the input of the single-matrix tools.
type MatrixInput struct {
	Matrix   [][]float64 `json:"matrix" jsonschema:"matrix as an array of rows of numbers"`
	Language string      `json:"language,omitempty" jsonschema:"optional locale for step text (en or es)"`
}

// MultiplyInput is the input of matrix_multiply.
type MultiplyInput struct {
	A        [][]float64 `json:"a" jsonschema:"left matrix as an array of rows"`
	B        [][]float64 `json:"b" jsonschema:"right matrix as an array of rows"`
	Language string      `json:"language,omitempty" jsonschema:"optional locale for step text (en or es)"`
}

// SystemInput is the input of solve_linear_system and cramers_rule.
type SystemInput struct {
	Matrix    [][]float64 `json:"matrix" jsonschema:"coefficient matrix A as an array of rows"`
	Constants []float64   `json:"constants" jsonschema:"constants vector b, one entry per row of A"`
	Language  string      `json:"language,omitempty" jsonschema:"optional locale for step text (en or es)"`
}

// PowerInput is the input of matrix_power.
type PowerInput struct {
	Matrix   [][]float64 `json:"matrix" jsonschema:"square matrix as an array of rows"`
	Exponent float64     `json:"exponent" jsonschema:"non-negative integer exponent"`
	Language string      `json:"language,omitempty" jsonschema:"optional locale for step text (en or es)"`
}

// MatrixOutput renders one rational matrix three ways.
type MatrixOutput struct {
	Rational [][]string  `json:"rational" jsonschema:"entries as exact fractions (a or a/b)"`
	Decimal  [][]float64 `json:"decimal" jsonschema:"decimal approximation of every entry"`
	Latex    string      `json:"latex" jsonschema:"LaTeX pmatrix rendering"`
}

// AssignmentOutput is one solved unknown.
type AssignmentOutput struct {
	Variable string  `json:"variable" jsonschema:"unknown name (x, y, z, ...)"`
	Value    string  `json:"value,omitempty" jsonschema:"exact value; empty for free variables"`
	Decimal  float64 `json:"decimal,omitempty" jsonschema:"decimal approximation of value"`
	Free     bool    `json:"free,omitempty" jsonschema:"true when the unknown is a free variable"`
}

// InverseOutput is the output of matrix_inverse.
type InverseOutput struct {
	Exists      bool             `json:"exists" jsonschema:"false when the matrix is singular"`
	Determinant string           `json:"determinant" jsonschema:"exact determinant"`
	Inverse     *MatrixOutput    `json:"inverse,omitempty" jsonschema:"the inverse when it exists"`
	Steps       []steps.FlatStep `json:"steps" jsonschema:"derivation steps in reading order"`
}

// RREFOutput is the output of matrix_rref.
type RREFOutput struct {
	RREF         MatrixOutput     `json:"rref" jsonschema:"reduced row echelon form"`
	PivotColumns []int            `json:"pivot_columns,omitempty" jsonschema:"0-based pivot columns"`
	Steps        []steps.FlatStep `json:"steps" jsonschema:"derivation steps in reading order"`
}

// DeterminantOutput is the output of matrix_determinant.
type DeterminantOutput struct {
	Determinant string           `json:"determinant" jsonschema:"exact determinant"`
	Decimal     float64          `json:"decimal" jsonschema:"decimal approximation"`
	Singular    bool             `json:"singular" jsonschema:"true when the determinant is 0"`
	Steps       []steps.FlatStep `json:"steps" jsonschema:"derivation steps in reading order"`
}

// RankOutput is the output of matrix_rank.
type RankOutput struct {
	Rank  int              `json:"rank" jsonschema:"number of pivots"`
	RREF  MatrixOutput     `json:"rref" jsonschema:"reduced row echelon form"`
	Steps []steps.FlatStep `json:"steps" jsonschema:"derivation steps in reading order"`
}

// MultiplyOutput is the output of matrix_multiply.
type MultiplyOutput struct {
	Result MatrixOutput     `json:"result" jsonschema:"the product A × B"`
	Steps  []steps.FlatStep `json:"steps" jsonschema:"derivation steps in reading order"`
}

// SystemOutput is the output of solve_linear_system.
type SystemOutput struct {
	HasSolution bool               `json:"has_solution" jsonschema:"false when the system is inconsistent"`
	IsInfinite  bool               `json:"is_infinite" jsonschema:"true when free variables exist"`
	Solution    []AssignmentOutput `json:"solution,omitempty" jsonschema:"one entry per unknown"`
	Steps       []steps.FlatStep   `json:"steps" jsonschema:"derivation steps in reading order"`
}

// CramerOutput is the output of cramers_rule.
type CramerOutput struct {
	HasSolution bool               `json:"has_solution" jsonschema:"false when D = 0"`
	Determinant string             `json:"determinant" jsonschema:"D, the determinant of A"`
	Solution    []AssignmentOutput `json:"solution,omitempty" jsonschema:"one entry per unknown"`
	Steps       []steps.FlatStep   `json:"steps" jsonschema:"derivation steps in reading order"`
}

// PowerOutput is the output of matrix_power.
type PowerOutput struct {
	Result MatrixOutput     `json:"result" jsonschema:"A raised to the exponent"`
	Power  int              `json:"power" jsonschema:"the exponent"`
	Steps  []steps.FlatStep `json:"steps" jsonschema:"derivation steps in reading order"`
}

func matrixOutput(m *matrix.Dense) MatrixOutput {
	return MatrixOutput{Rational: m.Strings(), Decimal: m.Floats(), Latex: m.Latex()}
}

func assignmentsOutput(sol []calc.Assignment) []AssignmentOutput {
	if len(sol) == 0 {
		return nil
	}
	out := make([]AssignmentOutput, len(sol))
	for i, a := range sol {
		out[i] = AssignmentOutput{Variable: a.Variable, Free: a.Free}
		if a.Value != nil {
			out[i].Value = a.Value.String()
			out[i].Decimal = a.Value.Float64()
		}
	}

	return out
}
