// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linsteps/calc"
	"github.com/katalvlaran/linsteps/internal/config"
	"github.com/katalvlaran/linsteps/steps"
)

// report is one calculator outcome ready for rendering. result is the calc
// result struct written as-is in json and yaml; summary and trace feed text.
type report struct {
	result  any
	summary []string
	trace   []steps.Step
}

// render writes r in the configured output format.
func (a *app) render(w io.Writer, r report) error {
	switch a.cfg.Output {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(r.result)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r.result); err != nil {
			return err
		}

		return enc.Close()
	default:
		for _, line := range r.summary {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		if len(r.trace) == 0 {
			return nil
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}

		return steps.Fprint(w, r.trace)
	}
}

// block renders a labelled multi-line value such as a matrix.
func block(label string, v fmt.Stringer) []string {
	return append([]string{label + ":"}, indent(v.String())...)
}

func indent(s string) []string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = "  " + lines[i]
	}

	return lines
}

func assignmentLines(sol []calc.Assignment) []string {
	out := make([]string, 0, len(sol))
	for _, as := range sol {
		out = append(out, "  "+as.String())
	}

	return out
}
