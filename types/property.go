package types

import "strings"

// PropertyId is the closed enumeration of supported CSS properties
// (spec.md §3: "a sufficient illustrative subset is mandated", §2 Non-goals).
type PropertyId int

const (
	PropUnknown PropertyId = iota

	PropColor
	PropBackgroundColor
	PropDisplay
	PropPosition
	PropFloat
	PropVisibility

	PropWidth
	PropHeight
	PropMinWidth
	PropMinHeight
	PropMaxWidth
	PropMaxHeight

	PropMarginTop
	PropMarginRight
	PropMarginBottom
	PropMarginLeft

	PropPaddingTop
	PropPaddingRight
	PropPaddingBottom
	PropPaddingLeft

	PropBorderTopWidth
	PropBorderRightWidth
	PropBorderBottomWidth
	PropBorderLeftWidth

	PropBorderTopStyle
	PropBorderRightStyle
	PropBorderBottomStyle
	PropBorderLeftStyle

	PropBorderTopColor
	PropBorderRightColor
	PropBorderBottomColor
	PropBorderLeftColor

	PropFontSize
	PropFontFamily
	PropFontWeight
	PropFontStyle
	PropLineHeight

	PropTextAlign
	PropWhiteSpace
	PropDirection
	PropLetterSpacing
	PropWordSpacing
	PropCursor
	PropListStyleType

	numProperties // sentinel: one past the last id (44 supported properties plus PropUnknown)
)

// NumProperties is the size of the closed PropertyId universe, used to
// size dense per-property arrays such as ComputedValues.
const NumProperties = int(numProperties)

var propertyNames = map[string]PropertyId{
	"color":                PropColor,
	"background-color":     PropBackgroundColor,
	"display":              PropDisplay,
	"position":             PropPosition,
	"float":                PropFloat,
	"visibility":            PropVisibility,
	"width":                PropWidth,
	"height":               PropHeight,
	"min-width":            PropMinWidth,
	"min-height":           PropMinHeight,
	"max-width":            PropMaxWidth,
	"max-height":           PropMaxHeight,
	"margin-top":           PropMarginTop,
	"margin-right":         PropMarginRight,
	"margin-bottom":        PropMarginBottom,
	"margin-left":          PropMarginLeft,
	"padding-top":          PropPaddingTop,
	"padding-right":        PropPaddingRight,
	"padding-bottom":       PropPaddingBottom,
	"padding-left":         PropPaddingLeft,
	"border-top-width":     PropBorderTopWidth,
	"border-right-width":   PropBorderRightWidth,
	"border-bottom-width":  PropBorderBottomWidth,
	"border-left-width":    PropBorderLeftWidth,
	"border-top-style":     PropBorderTopStyle,
	"border-right-style":   PropBorderRightStyle,
	"border-bottom-style":  PropBorderBottomStyle,
	"border-left-style":    PropBorderLeftStyle,
	"border-top-color":     PropBorderTopColor,
	"border-right-color":   PropBorderRightColor,
	"border-bottom-color":  PropBorderBottomColor,
	"border-left-color":    PropBorderLeftColor,
	"font-size":            PropFontSize,
	"font-family":          PropFontFamily,
	"font-weight":          PropFontWeight,
	"font-style":           PropFontStyle,
	"line-height":          PropLineHeight,
	"text-align":           PropTextAlign,
	"white-space":          PropWhiteSpace,
	"direction":            PropDirection,
	"letter-spacing":       PropLetterSpacing,
	"word-spacing":         PropWordSpacing,
	"cursor":               PropCursor,
	"list-style-type":      PropListStyleType,
}

var propertyIdNames = func() map[PropertyId]string {
	m := make(map[PropertyId]string, len(propertyNames))
	for name, id := range propertyNames {
		m[id] = name
	}
	return m
}()

// LookupProperty resolves a lower-cased CSS property name to a PropertyId.
// Unknown names return (PropUnknown, false); the parser attaches an
// UnsupportedProperty diagnostic but keeps the declaration for later
// inspection rather than failing the rule.
func LookupProperty(name string) (PropertyId, bool) {
	id, ok := propertyNames[strings.ToLower(name)]
	return id, ok
}

// String returns the canonical CSS name for a PropertyId, or "" for
// PropUnknown.
func (p PropertyId) String() string {
	return propertyIdNames[p]
}

// inheritedProperties lists the properties that, per CSS semantics,
// adopt the parent's computed value when the cascade produces no entry
// (spec.md §3 invariant iv, §4.3). Grounded on the teacher's
// style.IsCascading table, generalized to the closed PropertyId set.
var inheritedProperties = map[PropertyId]bool{
	PropColor:          true,
	PropCursor:         true,
	PropDirection:      true,
	PropFontFamily:     true,
	PropFontSize:       true,
	PropFontStyle:      true,
	PropFontWeight:     true,
	PropLineHeight:     true,
	PropLetterSpacing:  true,
	PropListStyleType:  true,
	PropTextAlign:      true,
	PropVisibility:     true,
	PropWhiteSpace:     true,
	PropWordSpacing:    true,
}

// IsInherited reports whether a property inherits from parent to child by
// default.
func IsInherited(p PropertyId) bool {
	return inheritedProperties[p]
}

// viewportUnitCapableProperties lists properties whose resolved pixel
// value can depend on vw/vh units; CanCarryViewportUnit consults it when
// the stylist flags a computed value as viewport-dependent.
var viewportUnitCapableProperties = map[PropertyId]bool{
	PropWidth: true, PropHeight: true,
	PropMinWidth: true, PropMinHeight: true,
	PropMaxWidth: true, PropMaxHeight: true,
	PropMarginTop: true, PropMarginRight: true, PropMarginBottom: true, PropMarginLeft: true,
	PropPaddingTop: true, PropPaddingRight: true, PropPaddingBottom: true, PropPaddingLeft: true,
	PropFontSize: true,
}

// CanCarryViewportUnit reports whether a property's value is ever resolved
// from a vw/vh length.
func CanCarryViewportUnit(p PropertyId) bool {
	return viewportUnitCapableProperties[p]
}

// layoutResolvedLaterProperties are the properties for which a percentage
// may legitimately survive cascade+inheritance unresolved (spec.md §3
// invariant v), because their percentage basis (e.g. containing-block
// width) is only known during layout.
var layoutResolvedLaterProperties = map[PropertyId]bool{
	PropWidth: true, PropHeight: true,
	PropMinWidth: true, PropMinHeight: true,
	PropMaxWidth: true, PropMaxHeight: true,
	PropMarginTop: true, PropMarginRight: true, PropMarginBottom: true, PropMarginLeft: true,
	PropPaddingTop: true, PropPaddingRight: true, PropPaddingBottom: true, PropPaddingLeft: true,
}

// IsLayoutResolvedLater reports whether a property is allowed to retain a
// percentage value into ComputedValues instead of being resolved to pixels.
func IsLayoutResolvedLater(p PropertyId) bool {
	return layoutResolvedLaterProperties[p]
}
