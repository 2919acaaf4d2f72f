package matcher

import (
	"strings"

	"github.com/npillmayer/cssengine/element"
	"github.com/npillmayer/cssengine/parser"
)

// Matches reports whether sel applies to elem within tree (spec.md
// §4.2). The rightmost compound selector is tested against elem itself;
// each earlier compound is sought by walking ancestors/siblings
// according to the combinator that follows it.
func Matches(sel *parser.Selector, elem element.ElementId, tree element.Tree) bool {
	if len(sel.Compounds) == 0 {
		return false
	}
	last := len(sel.Compounds) - 1
	if !matchesCompound(sel.Compounds[last], elem, tree) {
		return false
	}
	return matchChain(sel, last-1, elem, tree)
}

// matchChain walks the selector leftward from compound index i, each
// step required to hold for some candidate reachable from cur via the
// combinator at index i (sel.Combinators[i] joins Compounds[i] and
// Compounds[i+1]).
func matchChain(sel *parser.Selector, i int, cur element.ElementId, tree element.Tree) bool {
	if i < 0 {
		return true
	}
	comb := sel.Combinators[i]
	compound := sel.Compounds[i]
	switch comb {
	case parser.CombinatorChild:
		parent, ok := tree.Parent(cur)
		if !ok || !matchesCompound(compound, parent, tree) {
			return false
		}
		return matchChain(sel, i-1, parent, tree)
	case parser.CombinatorDescendant:
		anc, ok := tree.Parent(cur)
		for ok {
			if matchesCompound(compound, anc, tree) && matchChain(sel, i-1, anc, tree) {
				return true
			}
			anc, ok = tree.Parent(anc)
		}
		return false
	case parser.CombinatorAdjacent:
		prev, ok := tree.PrevSibling(cur)
		if !ok || !matchesCompound(compound, prev, tree) {
			return false
		}
		return matchChain(sel, i-1, prev, tree)
	case parser.CombinatorGeneralSibling:
		prev, ok := tree.PrevSibling(cur)
		for ok {
			if matchesCompound(compound, prev, tree) && matchChain(sel, i-1, prev, tree) {
				return true
			}
			prev, ok = tree.PrevSibling(prev)
		}
		return false
	}
	return false
}

// matchesCompound reports whether every simple part of cs holds for elem.
func matchesCompound(cs *parser.CompoundSelector, elem element.ElementId, tree element.Tree) bool {
	if cs.Type != "" && !strings.EqualFold(cs.Type, tree.Tag(elem)) {
		return false
	}
	for _, s := range cs.Simples {
		if !matchesSimple(s, elem, tree) {
			return false
		}
	}
	return true
}

func matchesSimple(s parser.SimpleSelector, elem element.ElementId, tree element.Tree) bool {
	switch s.Kind {
	case parser.SimpleID:
		id, ok := tree.ID(elem)
		return ok && id == s.Name
	case parser.SimpleClass:
		for _, c := range tree.Classes(elem) {
			if c == s.Name {
				return true
			}
		}
		return false
	case parser.SimpleAttribute:
		return matchesAttribute(s, elem, tree)
	case parser.SimplePseudoClass:
		return matchesPseudoClass(s, elem, tree)
	}
	return false
}

func matchesAttribute(s parser.SimpleSelector, elem element.ElementId, tree element.Tree) bool {
	val, ok := tree.Attribute(elem, s.AttrName)
	if !ok {
		return false
	}
	switch s.AttrOp {
	case parser.AttrExists:
		return true
	case parser.AttrEquals:
		return val == s.AttrVal
	case parser.AttrIncludes:
		for _, word := range strings.Fields(val) {
			if word == s.AttrVal {
				return true
			}
		}
		return false
	case parser.AttrDash:
		return val == s.AttrVal || strings.HasPrefix(val, s.AttrVal+"-")
	case parser.AttrPrefix:
		return s.AttrVal != "" && strings.HasPrefix(val, s.AttrVal)
	case parser.AttrSuffix:
		return s.AttrVal != "" && strings.HasSuffix(val, s.AttrVal)
	case parser.AttrSubstring:
		return s.AttrVal != "" && strings.Contains(val, s.AttrVal)
	}
	return false
}

func matchesPseudoClass(s parser.SimpleSelector, elem element.ElementId, tree element.Tree) bool {
	switch s.PseudoName {
	case "hover":
		return tree.State(elem).Has(element.StateHover)
	case "focus":
		return tree.State(elem).Has(element.StateFocus)
	case "active":
		return tree.State(elem).Has(element.StateActive)
	case "visited":
		return tree.State(elem).Has(element.StateVisited)
	case "first-child":
		_, ok := tree.PrevSibling(elem)
		return !ok
	case "last-child":
		_, ok := tree.NextSibling(elem)
		return !ok
	case "nth-child":
		return matchesNthChild(s, elem, tree)
	case "not":
		return s.Not != nil && !matchesCompound(s.Not, elem, tree)
	}
	// Unrecognized pseudo-classes (and pseudo-elements surfaced here in
	// error) never match, per the closed set in spec.md §3.
	return false
}

// matchesNthChild evaluates An+B against elem's 1-based position among
// its siblings (spec.md §4.2/§3).
func matchesNthChild(s parser.SimpleSelector, elem element.ElementId, tree element.Tree) bool {
	pos := 1
	prev, ok := tree.PrevSibling(elem)
	for ok {
		pos++
		prev, ok = tree.PrevSibling(prev)
	}
	a, b := s.NthA, s.NthB
	if a == 0 {
		return pos == b
	}
	// pos == a*n + b for some integer n >= 0 <=> (pos-b) is a non-negative
	// multiple of a (or a negative multiple when a < 0).
	diff := pos - b
	if diff%a != 0 {
		return false
	}
	n := diff / a
	return n >= 0
}
