// Package engine is the public facade (spec.md §4.5): parse_stylesheet,
// set_inline_style, compute_styles, get_computed_style, invalidate, and
// update_stylesheet, composing the types/parser/matcher/cascade/stylist
// packages into the single entry point callers use.
package engine

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("cssengine.engine")
}
