package stylist

import (
	"strings"

	"github.com/npillmayer/cssengine/parser"
	"github.com/npillmayer/cssengine/types"
)

// shorthandPrefixSuffix maps a shorthand declaration name to the
// prefix/suffix types.SplitCompound needs to build its four longhand
// names (spec.md §4 expanded Types section; grounded on the teacher's
// style.SplitCompoundProperty switch).
var shorthandPrefixSuffix = map[string][2]string{
	"margin":       {"margin", ""},
	"padding":      {"padding", ""},
	"border-width": {"border", "width"},
	"border-style": {"border", "style"},
	"border-color": {"border", "color"},
}

// expandShorthand splits a shorthand declaration into its longhand
// (PropertyId, PropertyValue) pairs, if d names a recognised shorthand.
func expandShorthand(d *parser.Declaration) ([]types.KeyValue, bool) {
	ps, ok := shorthandPrefixSuffix[strings.ToLower(d.Name)]
	if !ok {
		return nil, false
	}
	var values []types.PropertyValue
	if d.Value.Kind == types.ValList {
		values = d.Value.List
	} else {
		values = []types.PropertyValue{d.Value}
	}
	kvs, err := types.SplitCompound(ps[0], ps[1], values)
	if err != nil {
		tracer().Debugf("shorthand %q did not split: %v", d.Name, err)
		return nil, false
	}
	return kvs, true
}
