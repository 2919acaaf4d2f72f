// Package stylist is the computation engine (spec.md §4.4): it owns a
// RuleIndex bucketed by key-selector-component and walks the element tree
// producing a StyleTree of ComputedValues. It keeps no cache of computed
// results: every Compute call builds a fresh StyleTree.
package stylist

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("cssengine.stylist")
}
