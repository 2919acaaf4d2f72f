// Package cascade orders the declarations applicable to one element for
// one property and resolves the winner (spec.md §4.3): compare
// importance first, then origin, then specificity, then source order.
// The algorithm's shape (accumulate a running winner per property,
// replace on strictly higher priority, replace on a tie only when later
// in source order) is grounded on the applyDeclaration winner-selection
// logic found among the retrieved examples, generalized from a single
// Author-only origin to the full UserAgent/User/Author/Inline ordering.
package cascade

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("cssengine.cascade")
}
