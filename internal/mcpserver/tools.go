// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/katalvlaran/linsteps/calc"
	"github.com/katalvlaran/linsteps/matrix"
	"github.com/katalvlaran/linsteps/steps"
)

// Tool names.
const (
	ToolInverse     = "matrix_inverse"
	ToolRREF        = "matrix_rref"
	ToolDeterminant = "matrix_determinant"
	ToolRank        = "matrix_rank"
	ToolMultiply    = "matrix_multiply"
	ToolSolve       = "solve_linear_system"
	ToolCramer      = "cramers_rule"
	ToolPower       = "matrix_power"
)

// InverseTool defines the MCP tool schema for matrix inverses.
func InverseTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        ToolInverse,
		Description: "Invert a square matrix (at most 5x5 by default) with the adjugate method, showing every step in exact fractions",
	}
}

// RREFTool defines the MCP tool schema for row reduction.
func RREFTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        ToolRREF,
		Description: "Reduce a matrix to reduced row echelon form by Gauss-Jordan elimination, listing every row operation",
	}
}

// DeterminantTool defines the MCP tool schema for determinants.
func DeterminantTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        ToolDeterminant,
		Description: "Compute the exact determinant of a square matrix by cofactor expansion along the first row",
	}
}

// RankTool defines the MCP tool schema for matrix rank.
func RankTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        ToolRank,
		Description: "Compute the rank of a matrix as the number of pivots of its reduced row echelon form",
	}
}

// MultiplyTool defines the MCP tool schema for matrix products.
func MultiplyTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        ToolMultiply,
		Description: "Multiply two matrices A x B; the columns of A must match the rows of B",
	}
}

// SolveTool defines the MCP tool schema for linear systems.
func SolveTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        ToolSolve,
		Description: "Solve a linear system Ax = b by Gaussian elimination and classify it as unique, infinite or inconsistent",
	}
}

// CramerTool defines the MCP tool schema for Cramer's rule.
func CramerTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        ToolCramer,
		Description: "Solve a square linear system Ax = b with Cramer's rule, showing each determinant",
	}
}

// PowerTool defines the MCP tool schema for matrix powers.
func PowerTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        ToolPower,
		Description: "Raise a square matrix to a non-negative integer power by repeated multiplication. Exponents above the server's max_exponent (default 50) are refused to keep the step list short",
	}
}

func (s *Server) inverseHandler() mcp.ToolHandlerFor[MatrixInput, InverseOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, in MatrixInput) (*mcp.CallToolResult, InverseOutput, error) {
		a, err := matrix.FromFloats(in.Matrix)
		if err != nil {
			return nil, InverseOutput{}, s.fail(ToolInverse, err)
		}
		res, err := calc.Inverse(a, s.options(in.Language)...)
		if err != nil {
			return nil, InverseOutput{}, s.fail(ToolInverse, err)
		}
		out := InverseOutput{Exists: res.Exists, Determinant: res.Determinant.String(), Steps: steps.Flatten(res.Steps)}
		if res.Exists {
			inv := matrixOutput(res.Inverse)
			out.Inverse = &inv
		}

		return nil, out, nil
	}
}

func (s *Server) rrefHandler() mcp.ToolHandlerFor[MatrixInput, RREFOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, in MatrixInput) (*mcp.CallToolResult, RREFOutput, error) {
		a, err := matrix.FromFloats(in.Matrix)
		if err != nil {
			return nil, RREFOutput{}, s.fail(ToolRREF, err)
		}
		res, err := calc.RREF(a, s.options(in.Language)...)
		if err != nil {
			return nil, RREFOutput{}, s.fail(ToolRREF, err)
		}

		return nil, RREFOutput{
			RREF:         matrixOutput(res.RREF),
			PivotColumns: res.PivotColumns,
			Steps:        steps.Flatten(res.Steps),
		}, nil
	}
}

func (s *Server) determinantHandler() mcp.ToolHandlerFor[MatrixInput, DeterminantOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, in MatrixInput) (*mcp.CallToolResult, DeterminantOutput, error) {
		a, err := matrix.FromFloats(in.Matrix)
		if err != nil {
			return nil, DeterminantOutput{}, s.fail(ToolDeterminant, err)
		}
		res, err := calc.Determinant(a, s.options(in.Language)...)
		if err != nil {
			return nil, DeterminantOutput{}, s.fail(ToolDeterminant, err)
		}

		return nil, DeterminantOutput{
			Determinant: res.Determinant.String(),
			Decimal:     res.Determinant.Float64(),
			Singular:    res.Singular,
			Steps:       steps.Flatten(res.Steps),
		}, nil
	}
}

func (s *Server) rankHandler() mcp.ToolHandlerFor[MatrixInput, RankOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, in MatrixInput) (*mcp.CallToolResult, RankOutput, error) {
		a, err := matrix.FromFloats(in.Matrix)
		if err != nil {
			return nil, RankOutput{}, s.fail(ToolRank, err)
		}
		res, err := calc.Rank(a, s.options(in.Language)...)
		if err != nil {
			return nil, RankOutput{}, s.fail(ToolRank, err)
		}

		return nil, RankOutput{Rank: res.Rank, RREF: matrixOutput(res.RREF), Steps: steps.Flatten(res.Steps)}, nil
	}
}

func (s *Server) multiplyHandler() mcp.ToolHandlerFor[MultiplyInput, MultiplyOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, in MultiplyInput) (*mcp.CallToolResult, MultiplyOutput, error) {
		a, err := matrix.FromFloats(in.A)
		if err != nil {
			return nil, MultiplyOutput{}, s.fail(ToolMultiply, err)
		}
		b, err := matrix.FromFloats(in.B)
		if err != nil {
			return nil, MultiplyOutput{}, s.fail(ToolMultiply, err)
		}
		res, err := calc.Multiply(a, b, s.options(in.Language)...)
		if err != nil {
			return nil, MultiplyOutput{}, s.fail(ToolMultiply, err)
		}

		return nil, MultiplyOutput{Result: matrixOutput(res.Result), Steps: steps.Flatten(res.Steps)}, nil
	}
}

func (s *Server) solveHandler() mcp.ToolHandlerFor[SystemInput, SystemOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, in SystemInput) (*mcp.CallToolResult, SystemOutput, error) {
		a, err := matrix.FromFloats(in.Matrix)
		if err != nil {
			return nil, SystemOutput{}, s.fail(ToolSolve, err)
		}
		b, err := matrix.VectorFromFloats(in.Constants)
		if err != nil {
			return nil, SystemOutput{}, s.fail(ToolSolve, err)
		}
		res, err := calc.SolveSystem(a, b, s.options(in.Language)...)
		if err != nil {
			return nil, SystemOutput{}, s.fail(ToolSolve, err)
		}

		return nil, SystemOutput{
			HasSolution: res.HasSolution,
			IsInfinite:  res.IsInfinite,
			Solution:    assignmentsOutput(res.Solution),
			Steps:       steps.Flatten(res.Steps),
		}, nil
	}
}

func (s *Server) cramerHandler() mcp.ToolHandlerFor[SystemInput, CramerOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, in SystemInput) (*mcp.CallToolResult, CramerOutput, error) {
		a, err := matrix.FromFloats(in.Matrix)
		if err != nil {
			return nil, CramerOutput{}, s.fail(ToolCramer, err)
		}
		b, err := matrix.VectorFromFloats(in.Constants)
		if err != nil {
			return nil, CramerOutput{}, s.fail(ToolCramer, err)
		}
		res, err := calc.Cramer(a, b, s.options(in.Language)...)
		if err != nil {
			return nil, CramerOutput{}, s.fail(ToolCramer, err)
		}

		return nil, CramerOutput{
			HasSolution: res.HasSolution,
			Determinant: res.Determinant.String(),
			Solution:    assignmentsOutput(res.Solution),
			Steps:       steps.Flatten(res.Steps),
		}, nil
	}
}

func (s *Server) powerHandler() mcp.ToolHandlerFor[PowerInput, PowerOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, in PowerInput) (*mcp.CallToolResult, PowerOutput, error) {
		k, err := calc.ExponentFromFloat(in.Exponent)
		if err != nil {
			return nil, PowerOutput{}, s.fail(ToolPower, err)
		}
		a, err := matrix.FromFloats(in.Matrix)
		if err != nil {
			return nil, PowerOutput{}, s.fail(ToolPower, err)
		}
		res, err := calc.Power(a, k, s.options(in.Language)...)
		if err != nil {
			return nil, PowerOutput{}, s.fail(ToolPower, err)
		}

		return nil, PowerOutput{Result: matrixOutput(res.Result), Power: res.Power, Steps: steps.Flatten(res.Steps)}, nil
	}
}
