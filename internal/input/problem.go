// SPDX-License-Identifier: MIT

package input

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linsteps/fraction"
	"github.com/katalvlaran/linsteps/matrix"
)

// Problem is the content of a problem file. Entries may be numbers or
// strings in any form ParseMatrix accepts ("1/3", "0.5").
//
//	# system.toml
//	matrix    = [[1, 1], [1, -1]]
//	constants = [3, 1]
type Problem struct {
	Matrix    [][]any `toml:"matrix" yaml:"matrix"`
	B         [][]any `toml:"b" yaml:"b"`
	Constants []any   `toml:"constants" yaml:"constants"`
	Exponent  *int    `toml:"exponent" yaml:"exponent"`
}

// LoadProblem reads a .toml, .yaml or .yml problem file.
func LoadProblem(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read problem: %w", err)
	}

	return DecodeProblem(data, strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))
}

// DecodeProblem decodes data in the given format ("toml", "yaml" or "yml").
func DecodeProblem(data []byte, format string) (*Problem, error) {
	var p Problem
	switch format {
	case "toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&p); err != nil {
			return nil, fmt.Errorf("parse problem: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("parse problem: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	return &p, nil
}

// MatrixA returns the main operand; nil when the file has none.
func (p *Problem) MatrixA() (*matrix.Dense, error) { return toDense("matrix", p.Matrix) }

// MatrixB returns the right-hand operand of a product; nil when absent.
func (p *Problem) MatrixB() (*matrix.Dense, error) { return toDense("b", p.B) }

// Vector returns the constants vector; nil when absent.
func (p *Problem) Vector() ([]fraction.Fraction, error) {
	if len(p.Constants) == 0 {
		return nil, nil
	}
	out := make([]fraction.Fraction, len(p.Constants))
	for i, v := range p.Constants {
		f, err := entry(v)
		if err != nil {
			return nil, fmt.Errorf("constants[%d]: %w", i, err)
		}
		out[i] = f
	}

	return out, nil
}

func toDense(field string, rows [][]any) (*matrix.Dense, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	out := make([][]fraction.Fraction, len(rows))
	for i, row := range rows {
		out[i] = make([]fraction.Fraction, len(row))
		for j, v := range row {
			f, err := entry(v)
			if err != nil {
				return nil, fmt.Errorf("%s[%d][%d]: %w", field, i, j, err)
			}
			out[i][j] = f
		}
	}
	m, err := matrix.FromRows(out)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}

	return m, nil
}

// entry converts a decoded TOML/YAML scalar.
func entry(v any) (fraction.Fraction, error) {
	switch x := v.(type) {
	case int:
		return fraction.FromInt(int64(x)), nil
	case int64:
		return fraction.FromInt(x), nil
	case float64:
		return fraction.FromFloat(x)
	case string:
		return fraction.Parse(x)
	default:
		return fraction.Fraction{}, fmt.Errorf("%v (%T): %w", v, v, ErrBadEntry)
	}
}
