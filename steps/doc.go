// SPDX-License-Identifier: MIT

// Package steps models the derivation trace returned by every calculator.
//
// A trace is an ordered []Step. Each Step carries a short title, a prose
// description, a LaTeX expression and, optionally, its own ordered list of
// sub-steps (for example Matrix Power nests the trace of every
// multiplication it performs). The order of a trace IS the derivation
// narrative: engines only append, never reorder, and the same input always
// yields the same trace.
//
// Recorder is the append-only builder used by the engines. It numbers titles
// ("Step 1: ...", "Paso 1: ...") through a localized *message.Printer, so
// nested traces restart their own numbering at 1.
//
// Flatten and Fprint turn a trace into flat records or indented text for
// transports and terminals that do not render nested structures.
package steps
