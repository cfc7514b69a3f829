// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linsteps/calc"
	"github.com/katalvlaran/linsteps/fraction"
	"github.com/katalvlaran/linsteps/internal/input"
	"github.com/katalvlaran/linsteps/matrix"
)

// errMissingOperand reports an operand given neither as a flag nor in --file.
var errMissingOperand = errors.New("missing operand")

// operands collects the operand flags of one calculator command. A flag
// always wins over the same field of the problem file.
type operands struct {
	matrix    string
	b         string
	constants string
	exponent  float64
	file      string

	problem *input.Problem
}

func (o *operands) bindMatrix(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.matrix, "matrix", "m", "", `matrix A, rows separated by ';' (e.g. "1,2;3,4")`)
	cmd.Flags().StringVarP(&o.file, "file", "f", "", "problem file (.toml, .yaml) supplying missing operands")
}

// load reads the problem file once, if one was given.
func (o *operands) load() error {
	if o.file == "" || o.problem != nil {
		return nil
	}
	p, err := input.LoadProblem(o.file)
	if err != nil {
		return err
	}
	o.problem = p

	return nil
}

func (o *operands) matrixA() (*matrix.Dense, error) {
	if o.matrix != "" {
		return input.ParseMatrix(o.matrix)
	}
	if err := o.load(); err != nil {
		return nil, err
	}
	if o.problem != nil {
		m, err := o.problem.MatrixA()
		if err != nil || m != nil {
			return m, err
		}
	}

	return nil, fmt.Errorf("--matrix: %w", errMissingOperand)
}

func (o *operands) matrixB() (*matrix.Dense, error) {
	if o.b != "" {
		return input.ParseMatrix(o.b)
	}
	if err := o.load(); err != nil {
		return nil, err
	}
	if o.problem != nil {
		m, err := o.problem.MatrixB()
		if err != nil || m != nil {
			return m, err
		}
	}

	return nil, fmt.Errorf("--b: %w", errMissingOperand)
}

func (o *operands) vector() ([]fraction.Fraction, error) {
	if o.constants != "" {
		return input.ParseVector(o.constants)
	}
	if err := o.load(); err != nil {
		return nil, err
	}
	if o.problem != nil {
		v, err := o.problem.Vector()
		if err != nil || v != nil {
			return v, err
		}
	}

	return nil, fmt.Errorf("--constants: %w", errMissingOperand)
}

// power resolves the exponent; explicit reports whether --exponent was set.
func (o *operands) power(explicit bool) (int, error) {
	if explicit {
		return calc.ExponentFromFloat(o.exponent)
	}
	if err := o.load(); err != nil {
		return 0, err
	}
	if o.problem != nil && o.problem.Exponent != nil {
		return *o.problem.Exponent, nil
	}

	return 0, fmt.Errorf("--exponent: %w", errMissingOperand)
}
