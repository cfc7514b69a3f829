// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linsteps/calc"
)

func (a *app) inverseCmd() *cobra.Command {
	var ops operands
	cmd := &cobra.Command{
		Use:   "inverse",
		Short: "Inverse of a square matrix by the adjugate method",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := ops.matrixA()
			if err != nil {
				return err
			}
			res, err := calc.Inverse(m, a.options()...)
			if err != nil {
				return err
			}
			a.log.Debug("inverse computed", "size", m.Rows(), "exists", res.Exists)

			summary := []string{"Determinant: " + res.Determinant.String()}
			if res.Exists {
				summary = append(summary, block("Inverse", res.Inverse)...)
			} else {
				summary = append(summary, "The matrix is singular; no inverse exists.")
			}

			return a.render(cmd.OutOrStdout(), report{result: res, summary: summary, trace: res.Steps})
		},
	}
	ops.bindMatrix(cmd)

	return cmd
}

func (a *app) determinantCmd() *cobra.Command {
	var ops operands
	cmd := &cobra.Command{
		Use:     "determinant",
		Aliases: []string{"det"},
		Short:   "Determinant by cofactor expansion along the first row",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := ops.matrixA()
			if err != nil {
				return err
			}
			res, err := calc.Determinant(m, a.options()...)
			if err != nil {
				return err
			}
			a.log.Debug("determinant computed", "size", m.Rows())

			summary := []string{"Determinant: " + res.Determinant.String()}
			if res.Singular {
				summary = append(summary, "The matrix is singular.")
			}

			return a.render(cmd.OutOrStdout(), report{result: res, summary: summary, trace: res.Steps})
		},
	}
	ops.bindMatrix(cmd)

	return cmd
}

func (a *app) rrefCmd() *cobra.Command {
	var ops operands
	cmd := &cobra.Command{
		Use:   "rref",
		Short: "Reduced row echelon form by Gauss-Jordan elimination",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := ops.matrixA()
			if err != nil {
				return err
			}
			res, err := calc.RREF(m, a.options()...)
			if err != nil {
				return err
			}
			a.log.Debug("rref computed", "rows", m.Rows(), "cols", m.Cols(), "pivots", len(res.PivotColumns))

			summary := block("RREF", res.RREF)
			summary = append(summary, "Pivot columns: "+oneBased(res.PivotColumns))

			return a.render(cmd.OutOrStdout(), report{result: res, summary: summary, trace: res.Steps})
		},
	}
	ops.bindMatrix(cmd)

	return cmd
}

func (a *app) rankCmd() *cobra.Command {
	var ops operands
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank as the number of pivots of the RREF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := ops.matrixA()
			if err != nil {
				return err
			}
			res, err := calc.Rank(m, a.options()...)
			if err != nil {
				return err
			}
			a.log.Debug("rank computed", "rank", res.Rank)

			summary := []string{"Rank: " + strconv.Itoa(res.Rank)}

			return a.render(cmd.OutOrStdout(), report{result: res, summary: summary, trace: res.Steps})
		},
	}
	ops.bindMatrix(cmd)

	return cmd
}

func (a *app) multiplyCmd() *cobra.Command {
	var ops operands
	cmd := &cobra.Command{
		Use:   "multiply",
		Short: "Matrix product A x B",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := ops.matrixA()
			if err != nil {
				return err
			}
			b, err := ops.matrixB()
			if err != nil {
				return err
			}
			res, err := calc.Multiply(m, b, a.options()...)
			if err != nil {
				return err
			}
			a.log.Debug("product computed", "rows", res.Result.Rows(), "cols", res.Result.Cols())

			return a.render(cmd.OutOrStdout(), report{result: res, summary: block("AB", res.Result), trace: res.Steps})
		},
	}
	ops.bindMatrix(cmd)
	cmd.Flags().StringVarP(&ops.b, "b", "b", "", "matrix B, same syntax as --matrix")

	return cmd
}

func (a *app) solveCmd() *cobra.Command {
	var ops operands
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve Ax = b by Gauss-Jordan elimination",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := ops.matrixA()
			if err != nil {
				return err
			}
			b, err := ops.vector()
			if err != nil {
				return err
			}
			res, err := calc.SolveSystem(m, b, a.options()...)
			if err != nil {
				return err
			}
			a.log.Debug("system solved", "unknowns", m.Cols(), "has_solution", res.HasSolution, "infinite", res.IsInfinite)

			var summary []string
			switch {
			case !res.HasSolution:
				summary = []string{"No solution exists."}
			case res.IsInfinite:
				summary = append([]string{"Infinitely many solutions; particular solution:"}, assignmentLines(res.Solution)...)
			default:
				summary = append([]string{"Solution:"}, assignmentLines(res.Solution)...)
			}

			return a.render(cmd.OutOrStdout(), report{result: res, summary: summary, trace: res.Steps})
		},
	}
	ops.bindMatrix(cmd)
	cmd.Flags().StringVarP(&ops.constants, "constants", "c", "", `constants vector b (e.g. "3,1")`)

	return cmd
}

func (a *app) cramerCmd() *cobra.Command {
	var ops operands
	cmd := &cobra.Command{
		Use:   "cramer",
		Short: "Solve Ax = b by Cramer's rule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := ops.matrixA()
			if err != nil {
				return err
			}
			b, err := ops.vector()
			if err != nil {
				return err
			}
			res, err := calc.Cramer(m, b, a.options()...)
			if err != nil {
				return err
			}
			a.log.Debug("cramer computed", "unknowns", m.Cols(), "has_solution", res.HasSolution)

			summary := []string{"D = " + res.Determinant.String()}
			if res.HasSolution {
				summary = append(summary, "Solution:")
				summary = append(summary, assignmentLines(res.Solution)...)
			} else {
				summary = append(summary, "D = 0: Cramer's rule does not apply.")
			}

			return a.render(cmd.OutOrStdout(), report{result: res, summary: summary, trace: res.Steps})
		},
	}
	ops.bindMatrix(cmd)
	cmd.Flags().StringVarP(&ops.constants, "constants", "c", "", `constants vector b (e.g. "3,1")`)

	return cmd
}

func (a *app) powerCmd() *cobra.Command {
	var ops operands
	cmd := &cobra.Command{
		Use:   "power",
		Short: "Integer power A^k by repeated multiplication",
		Long: `Compute A^k for a square A and a non-negative integer k, one
multiplication step per increment.

Any k >= 0 is mathematically valid; linsteps refuses exponents above
max_exponent (default 50) so the step list stays readable. Raise the limit
with max_exponent in the config file or LINSTEPS_MAX_EXPONENT.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := ops.matrixA()
			if err != nil {
				return err
			}
			k, err := ops.power(cmd.Flags().Changed("exponent"))
			if err != nil {
				return err
			}
			res, err := calc.Power(m, k, a.options()...)
			if err != nil {
				return err
			}
			a.log.Debug("power computed", "size", m.Rows(), "exponent", k)

			return a.render(cmd.OutOrStdout(), report{
				result:  res,
				summary: block(fmt.Sprintf("A^%d", res.Power), res.Result),
				trace:   res.Steps,
			})
		},
	}
	ops.bindMatrix(cmd)
	cmd.Flags().Float64VarP(&ops.exponent, "exponent", "k", 0, "non-negative integer exponent; values above max_exponent (default 50, set in the config file or $LINSTEPS_MAX_EXPONENT) are refused to keep the derivation short")

	return cmd
}

// oneBased renders 0-based column indices as "1, 3"; "none" when empty.
func oneBased(cols []int) string {
	if len(cols) == 0 {
		return "none"
	}
	s := ""
	for i, c := range cols {
		if i > 0 {
			s += ", "
		}
		s += strconv.Itoa(c + 1)
	}

	return s
}
