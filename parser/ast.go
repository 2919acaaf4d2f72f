package parser

import "github.com/npillmayer/cssengine/types"

// Stylesheet is the parsed form of a single CSS source text: an ordered
// list of style rules plus any recovered diagnostics (spec.md §4.1).
type Stylesheet struct {
	Rules       []*StyleRule
	Diagnostics []types.Diagnostic
}

// StyleRule is a selector list sharing one declaration block, optionally
// nested inside @media predicates.
type StyleRule struct {
	Selectors    []*Selector
	Declarations []*Declaration
	Media        *MediaQuery // nil outside any @media block
}

// Selector is one compound-selector chain linked by combinators, read
// left to right as written in source (e.g. "div.foo > p:hover").
// Matching walks it right to left (spec.md §4.2).
type Selector struct {
	Compounds    []*CompoundSelector
	Combinators  []Combinator // len(Combinators) == len(Compounds)-1, Combinators[i] joins Compounds[i] and Compounds[i+1]
	Specificity  types.Specificity
	PseudoElement string // e.g. "before", "after"; "" if none
}

// Combinator is the relation between two adjacent compound selectors.
type Combinator int

const (
	CombinatorDescendant Combinator = iota // whitespace
	CombinatorChild                        // >
	CombinatorAdjacent                      // +
	CombinatorGeneralSibling                // ~
)

// CompoundSelector is a single non-combinator unit: a type selector plus
// zero or more id/class/attribute/pseudo-class simple selectors, all of
// which must match the same element.
type CompoundSelector struct {
	Type    string // "" means universal ('*')
	Simples []SimpleSelector
}

// SimpleSelectorKind discriminates the SimpleSelector union.
type SimpleSelectorKind int

const (
	SimpleID SimpleSelectorKind = iota
	SimpleClass
	SimpleAttribute
	SimplePseudoClass
)

// AttributeOp is the comparison operator inside an attribute selector.
type AttributeOp int

const (
	AttrExists   AttributeOp = iota // [attr]
	AttrEquals                      // [attr=val]
	AttrIncludes                    // [attr~=val]
	AttrDash                        // [attr|=val]
	AttrPrefix                      // [attr^=val]
	AttrSuffix                      // [attr$=val]
	AttrSubstring                   // [attr*=val]
)

// SimpleSelector is one atomic matching condition within a compound
// selector.
type SimpleSelector struct {
	Kind SimpleSelectorKind

	// SimpleID / SimpleClass
	Name string

	// SimpleAttribute
	AttrName string
	AttrOp   AttributeOp
	AttrVal  string

	// SimplePseudoClass: "hover", "focus", "active", "visited",
	// "first-child", "last-child", or "nth-child" (An+B in NthA/NthB),
	// or "not" (Not holds the negated compound).
	PseudoName string
	NthA       int
	NthB       int
	Not        *CompoundSelector
}

// MediaQuery is the opaque @media predicate tree (spec.md §4.1): the
// core engine never evaluates it, and ViewportChange invalidation does
// not consult it (a viewport change recomputes every element).
type MediaQuery struct {
	Root MediaNode
}

// MediaNodeKind discriminates the MediaNode union.
type MediaNodeKind int

const (
	MediaFeature MediaNodeKind = iota
	MediaAnd
	MediaOr
	MediaNot
)

// MediaNode is one node of the boolean predicate tree built from an
// @media prelude.
type MediaNode struct {
	Kind     MediaNodeKind
	Feature  string // e.g. "min-width"; set only for MediaFeature
	Value    string // feature's literal value, e.g. "768px"
	Children []MediaNode
}

// ViewportDependent reports whether any feature in the tree is one whose
// truth value can change on a viewport resize (width/height features).
func (m MediaQuery) ViewportDependent() bool {
	return mediaNodeViewportDependent(m.Root)
}

func mediaNodeViewportDependent(n MediaNode) bool {
	if n.Kind == MediaFeature {
		switch n.Feature {
		case "min-width", "max-width", "width", "min-height", "max-height", "height":
			return true
		}
		return false
	}
	for _, c := range n.Children {
		if mediaNodeViewportDependent(c) {
			return true
		}
	}
	return false
}

// Declaration is one `property: value [!important];` pair. Value carries
// the fully parsed PropertyValue (retaining var()/calc() as an
// unevaluated Function where present); PropertyId is PropUnknown when
// Name names a property outside the closed enumeration (spec.md §3),
// in which case the parser still keeps the declaration for diagnostics.
type Declaration struct {
	Name       string
	PropertyId types.PropertyId
	Value      types.PropertyValue
	Important  bool
	CustomName string // set, with a leading "--", when Name is a custom property
}
