package stylist

import (
	"github.com/npillmayer/cssengine/parser"
	"github.com/npillmayer/cssengine/types"
)

// StyleSheetId identifies one loaded stylesheet (spec.md §4.5). Ids are
// assigned in load order and never reused within an engine instance.
type StyleSheetId int

// styleSheet bundles a parsed stylesheet with the bookkeeping the cascade
// and invalidation logic need: its origin, its position among all loaded
// sheets (for source-order tie-breaking), and its own diagnostics.
type styleSheet struct {
	id         StyleSheetId
	origin     types.Origin
	sheetOrder int
	source     string
	parsed     *parser.Stylesheet
}
