// SPDX-License-Identifier: MIT

package steps

import (
	"golang.org/x/text/message"

	"github.com/katalvlaran/linsteps/i18n"
)

// Step is one labeled entry of a derivation trace.
// SubSteps nests a complete trace of the same type (composition, not inheritance).
type Step struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Latex       string `json:"latex" yaml:"latex"`
	SubSteps    []Step `json:"subSteps,omitempty" yaml:"subSteps,omitempty"`
}

// Recorder accumulates Steps in insertion order and numbers their titles.
// A Recorder is owned by a single calculation; it is not safe for concurrent use.
type Recorder struct {
	p     *message.Printer // localizes the "Step %d: %s" prefix
	steps []Step           // append-only trace
}

// NewRecorder returns an empty Recorder. A nil printer selects English.
func NewRecorder(p *message.Printer) *Recorder {
	if p == nil {
		p = i18n.Default()
	}

	return &Recorder{p: p}
}

// Add appends a step; title is prefixed with its 1-based position.
func (r *Recorder) Add(title, description, latex string) {
	r.AddNested(title, description, latex, nil)
}

// AddNested appends a step carrying sub as its sub-trace.
// sub is copied, so later changes by the caller do not leak into the trace.
func (r *Recorder) AddNested(title, description, latex string, sub []Step) {
	r.steps = append(r.steps, Step{
		Title:       r.p.Sprintf(i18n.MsgStepTitle, len(r.steps)+1, title),
		Description: description,
		Latex:       latex,
		SubSteps:    Clone(sub),
	})
}

// Len reports how many top-level steps were recorded.
func (r *Recorder) Len() int { return len(r.steps) }

// Steps returns a deep copy of the trace in insertion order.
func (r *Recorder) Steps() []Step { return Clone(r.steps) }

// Clone deep-copies a trace. A nil or empty trace clones to nil.
func Clone(list []Step) []Step {
	if len(list) == 0 {
		return nil
	}
	out := make([]Step, len(list))
	for i, s := range list {
		out[i] = Step{
			Title:       s.Title,
			Description: s.Description,
			Latex:       s.Latex,
			SubSteps:    Clone(s.SubSteps),
		}
	}

	return out
}

// Count returns the number of steps in list including all nested sub-steps.
func Count(list []Step) int {
	n := 0
	for _, s := range list {
		n += 1 + Count(s.SubSteps)
	}

	return n
}
