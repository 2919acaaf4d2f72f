package stylist

import "github.com/npillmayer/cssengine/types"

// ComputedValues is a dense record with one slot per PropertyId (spec.md
// §3 invariant iii): every property always has a value, defaulting to its
// initial value when neither the cascade nor inheritance supplied one.
// viewportDependent tracks, per property, whether its resolved value was
// derived from a vw/vh length (reported by IsViewportDependent); the
// engine's ViewportChange invalidation does not consult it and
// recomputes the whole tree.
type ComputedValues struct {
	values            [types.NumProperties]types.PropertyValue
	viewportDependent [types.NumProperties]bool

	// custom holds this element's custom-property environment: the
	// parent's custom properties (they always inherit) overridden by any
	// declared on this element. Values are stored as declared, with any
	// var() references in them left unsubstituted until a property using
	// them is resolved. var() lookups walk this map, never
	// the ancestor chain directly, mirroring the teacher's
	// PropertyGroup.Cascade ancestor-search idiom for "search own
	// declarations then ancestors" (spec.md §4.4 step 6).
	custom map[string]types.PropertyValue
}

// newComputedValues returns a ComputedValues pre-filled with every
// property's initial value (invariant iii holds from construction).
func newComputedValues() *ComputedValues {
	cv := &ComputedValues{custom: make(map[string]types.PropertyValue)}
	for i := 0; i < types.NumProperties; i++ {
		cv.values[i] = initialValueOf(types.PropertyId(i))
	}
	return cv
}

// CustomProperty returns the declared value of a custom property
// (leading "--"), if one is set on this element or inherited from an
// ancestor; var() references inside it are not substituted.
func (cv *ComputedValues) CustomProperty(name string) (types.PropertyValue, bool) {
	v, ok := cv.custom[name]
	return v, ok
}

// Get returns the resolved value for p. Always succeeds per invariant iii.
func (cv *ComputedValues) Get(p types.PropertyId) types.PropertyValue {
	return cv.values[p]
}

// IsViewportDependent reports whether p's resolved value depends on the
// current viewport dimensions.
func (cv *ComputedValues) IsViewportDependent(p types.PropertyId) bool {
	return cv.viewportDependent[p]
}

func (cv *ComputedValues) set(p types.PropertyId, v types.PropertyValue, viewportDep bool) {
	cv.values[p] = v
	cv.viewportDependent[p] = viewportDep
}

// clone makes an independent copy, used when a child ComputedValues starts
// from its parent's values before the cascade overrides anything
// (spec.md §4.4 step 5, "apply inheritance from the parent's
// ComputedValues").
func (cv *ComputedValues) clone() *ComputedValues {
	out := *cv
	out.custom = make(map[string]types.PropertyValue, len(cv.custom))
	for k, v := range cv.custom {
		out.custom[k] = v
	}
	return &out
}

// initialValueOf returns the initial value CSS defines for p. The table
// covers every PropertyId in the closed enumeration (spec.md §4 expanded
// Types section); unrecognised ids (there are none in the closed set)
// fall back to the empty keyword.
func initialValueOf(p types.PropertyId) types.PropertyValue {
	if v, ok := initialValues[p]; ok {
		return v
	}
	return types.Keyword("")
}

var initialValues = map[types.PropertyId]types.PropertyValue{
	types.PropColor:              colourInitial(0, 0, 0, 255),
	types.PropBackgroundColor:    colourInitial(0, 0, 0, 0),
	types.PropDisplay:            types.Keyword("inline"),
	types.PropPosition:           types.Keyword("static"),
	types.PropFloat:              types.Keyword("none"),
	types.PropVisibility:         types.Keyword("visible"),
	types.PropWidth:              types.Keyword("auto"),
	types.PropHeight:             types.Keyword("auto"),
	types.PropMinWidth:           types.LengthValue(types.Px(0)),
	types.PropMinHeight:          types.LengthValue(types.Px(0)),
	types.PropMaxWidth:           types.Keyword("none"),
	types.PropMaxHeight:          types.Keyword("none"),
	types.PropMarginTop:          types.LengthValue(types.Px(0)),
	types.PropMarginRight:        types.LengthValue(types.Px(0)),
	types.PropMarginBottom:       types.LengthValue(types.Px(0)),
	types.PropMarginLeft:         types.LengthValue(types.Px(0)),
	types.PropPaddingTop:         types.LengthValue(types.Px(0)),
	types.PropPaddingRight:       types.LengthValue(types.Px(0)),
	types.PropPaddingBottom:      types.LengthValue(types.Px(0)),
	types.PropPaddingLeft:        types.LengthValue(types.Px(0)),
	types.PropBorderTopWidth:     types.LengthValue(types.Px(3)),
	types.PropBorderRightWidth:   types.LengthValue(types.Px(3)),
	types.PropBorderBottomWidth:  types.LengthValue(types.Px(3)),
	types.PropBorderLeftWidth:    types.LengthValue(types.Px(3)),
	types.PropBorderTopStyle:     types.Keyword("none"),
	types.PropBorderRightStyle:   types.Keyword("none"),
	types.PropBorderBottomStyle:  types.Keyword("none"),
	types.PropBorderLeftStyle:    types.Keyword("none"),
	types.PropBorderTopColor:     types.Keyword("currentcolor"),
	types.PropBorderRightColor:   types.Keyword("currentcolor"),
	types.PropBorderBottomColor:  types.Keyword("currentcolor"),
	types.PropBorderLeftColor:    types.Keyword("currentcolor"),
	types.PropFontSize:           types.LengthValue(types.Px(16)),
	types.PropFontFamily:         types.Keyword("sans-serif"),
	types.PropFontWeight:         types.Keyword("normal"),
	types.PropFontStyle:          types.Keyword("normal"),
	types.PropLineHeight:         types.Keyword("normal"),
	types.PropTextAlign:          types.Keyword("start"),
	types.PropWhiteSpace:         types.Keyword("normal"),
	types.PropDirection:          types.Keyword("ltr"),
	types.PropLetterSpacing:      types.Keyword("normal"),
	types.PropWordSpacing:        types.Keyword("normal"),
	types.PropCursor:             types.Keyword("auto"),
	types.PropListStyleType:      types.Keyword("disc"),
}

func colourInitial(r, g, b, a uint8) types.PropertyValue {
	return types.ColorValue(types.Colour{R: r, G: g, B: b, A: a})
}
