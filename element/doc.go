// Package element defines the Tree contract the engine requires from a
// caller-supplied DOM (spec.md §6): elements are addressed by a stable
// ElementId handle into an arena the caller owns, exposing tag, id,
// classes, attributes, tree relations, inline style text and
// pseudo-class state bits. Arena is a minimal reference implementation
// used by the engine's own tests and examples; production embedders are
// expected to implement Tree directly over their own DOM.
package element

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("cssengine.element")
}
