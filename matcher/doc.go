// Package matcher evaluates a parsed selector against a candidate
// element within its Tree, walking the selector right to left (spec.md
// §4.2): the rightmost compound tests the candidate itself; each
// preceding compound is sought by walking ancestors or siblings per the
// intervening combinator.
package matcher

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("cssengine.matcher")
}
