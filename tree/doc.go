// Package tree provides a generic, concurrency-safe tree of nodes with
// a pipeline-based Walker for chained top-down/bottom-up traversals.
// The stylist package builds its StyleTree on top of this: one Node[T]
// per element, walked by Walker to run the per-element compute pass,
// optionally in parallel across independent subtrees.
package tree

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("cssengine.tree")
}
