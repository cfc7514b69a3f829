// SPDX-License-Identifier: MIT

// Package i18n localizes derivation text for the calculators.
//
// Every step title and description is produced through a *message.Printer.
// Message keys are the English format strings themselves (the x/text
// convention), so an English printer needs no catalog entries and any key
// missing from another locale degrades to English instead of failing.
//
// Supported locales mirror the calculator site: English (default) and Spanish.
//
//	p := i18n.Printer(i18n.Match("es-MX"))
//	p.Sprintf(i18n.MsgStepTitle, 1, p.Sprintf(i18n.MsgInverseDetTitle))
//	// "Paso 1: Calcular el determinante"
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported lists the locales with a full catalog, default first.
var Supported = []language.Tag{language.English, language.Spanish}

var (
	matcher = language.NewMatcher(Supported)
	cat     = newCatalog()
)

// Match maps a free-form locale (BCP 47 tag or Accept-Language value such as
// "es-MX,es;q=0.9") to the closest supported tag. Unparsable or empty input
// yields English.
func Match(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return language.English
	}
	prefs, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(prefs) == 0 {
		return language.English
	}
	_, idx, _ := matcher.Match(prefs...)

	return Supported[idx]
}

// Printer returns a printer bound to the package catalog for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(cat))
}

// Default returns the English printer.
func Default() *message.Printer {
	return Printer(language.English)
}

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range spanish {
		// SetString only fails on malformed messages; the table is static.
		if err := b.SetString(language.Spanish, key, msg); err != nil {
			panic("i18n: bad catalog entry " + key + ": " + err.Error())
		}
	}

	return b
}
