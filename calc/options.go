// SPDX-License-Identifier: MIT
// Package calc — functional options shared by every engine.
//
// Contract:
//   - Option setters panic only on nonsensical values (programmer error).
//   - Engines resolve options once via gatherOptions; last writer wins.

package calc

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/linsteps/i18n"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultMaxCofactorSize caps n for the O(n!) cofactor tools
	// (Inverse, Determinant, Cramer).
	DefaultMaxCofactorSize = 5

	// DefaultMaxExponent caps the exponent of Power. Mathematically any
	// non-negative integer is valid; the cap is a product limit because each
	// increment adds a nested multiplication trace. Raise it with WithMaxExponent.
	DefaultMaxExponent = 50
)

const (
	panicMaxCofactorInvalid = "calc: WithMaxCofactorSize: n must be >= 1"
	panicMaxExponentInvalid = "calc: WithMaxExponent: k must be >= 0"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; engines accept ...Option.
type Options struct {
	lang        language.Tag     // step text locale
	maxCofactor int              // >= 1
	maxExponent int              // >= 0
	printer     *message.Printer // resolved from lang
}

// WithLanguage selects the locale of step titles and descriptions.
// Unsupported tags fall back to the closest supported one (English by default).
func WithLanguage(tag language.Tag) Option {
	return func(o *Options) { o.lang = tag }
}

// WithMaxCofactorSize sets the largest n accepted by Inverse, Determinant
// and Cramer. Panics if n < 1.
func WithMaxCofactorSize(n int) Option {
	if n < 1 {
		panic(panicMaxCofactorInvalid)
	}

	return func(o *Options) { o.maxCofactor = n }
}

// WithMaxExponent sets the largest exponent accepted by Power. Panics if k < 0.
func WithMaxExponent(k int) Option {
	if k < 0 {
		panic(panicMaxExponentInvalid)
	}

	return func(o *Options) { o.maxExponent = k }
}

// gatherOptions applies user setters over the defaults and binds the printer.
func gatherOptions(user ...Option) Options {
	o := Options{
		lang:        language.English,
		maxCofactor: DefaultMaxCofactorSize,
		maxExponent: DefaultMaxExponent,
	}
	for _, set := range user {
		set(&o)
	}
	o.printer = i18n.Printer(i18n.Match(o.lang.String()))

	return o
}
