// Package types holds the value types shared by the parser, matcher,
// cascade and stylist: specificity triples, the property/origin/length/
// colour value model, and the closed error taxonomy.
//
// Nothing in this package depends on the others; it is the vocabulary
// they all share.
package types

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("cssengine.types")
}
