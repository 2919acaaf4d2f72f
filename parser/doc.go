// Package parser turns CSS source text into a Stylesheet: a recursive-
// descent parser over a hand-written tokenizer, producing rules with
// selectors, declarations and (for @media) an opaque predicate tree.
// Parsing never fails a whole stylesheet: malformed rules are dropped
// and malformed declarations skipped, each recorded as a Diagnostic, so
// the rest of the stylesheet still parses (spec.md §4.1, §7).
package parser

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("cssengine.parser")
}
