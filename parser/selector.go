package parser

import (
	"strconv"
	"strings"

	"github.com/npillmayer/cssengine/types"
)

// parseSelectorList parses a comma-separated list of selectors up to the
// rule's opening '{'.
func (p *Parser) parseSelectorList() ([]*Selector, bool) {
	var sels []*Selector
	for {
		sel, ok := p.parseSelector()
		if !ok {
			return nil, false
		}
		sels = append(sels, sel)
		p.skipWS()
		if p.peek().Kind == TokenComma {
			p.next()
			p.skipWS()
			continue
		}
		break
	}
	return sels, true
}

// parseSelector parses one compound-selector chain joined by
// combinators, accumulating total specificity (spec.md §4.2/§3) and
// recording a trailing pseudo-element if present.
func (p *Parser) parseSelector() (*Selector, bool) {
	sel := &Selector{}
	first, ok := p.parseCompoundSelector(sel)
	if !ok {
		return nil, false
	}
	sel.Compounds = append(sel.Compounds, first)
	for {
		comb, hasMore := p.parseCombinator()
		if !hasMore {
			break
		}
		next, ok := p.parseCompoundSelector(sel)
		if !ok {
			return nil, false
		}
		sel.Combinators = append(sel.Combinators, comb)
		sel.Compounds = append(sel.Compounds, next)
	}
	return sel, true
}

// parseCombinator looks ahead past whitespace for '>' '+' '~', defaulting
// to the descendant combinator when a following compound selector exists
// with only whitespace between. Returns hasMore=false at the end of the
// selector (next non-whitespace token is ',', '{' or EOF).
func (p *Parser) parseCombinator() (Combinator, bool) {
	sawWhitespace := false
	for p.peek().Kind == TokenWhitespace {
		p.next()
		sawWhitespace = true
	}
	tok := p.peek()
	switch {
	case tok.Kind == TokenDelim && tok.Value == ">":
		p.next()
		p.skipWS()
		return CombinatorChild, true
	case tok.Kind == TokenDelim && tok.Value == "+":
		p.next()
		p.skipWS()
		return CombinatorAdjacent, true
	case tok.Kind == TokenDelim && tok.Value == "~":
		p.next()
		p.skipWS()
		return CombinatorGeneralSibling, true
	case tok.Kind == TokenComma || tok.Kind == TokenLBrace || tok.Kind == TokenEOF:
		return 0, false
	default:
		if sawWhitespace {
			return CombinatorDescendant, true
		}
		return 0, false
	}
}

// parseCompoundSelector parses a type/universal selector followed by any
// number of id/class/attribute/pseudo-class simple selectors, folding
// each into sel's running Specificity.
func (p *Parser) parseCompoundSelector(sel *Selector) (*CompoundSelector, bool) {
	cs := &CompoundSelector{}
	sawSimple := false
	tok := p.peek()
	switch {
	case tok.Kind == TokenIdent:
		cs.Type = strings.ToLower(tok.Value)
		p.next()
		sel.Specificity.C++
		sawSimple = true
	case tok.Kind == TokenDelim && tok.Value == "*":
		p.next()
		// universal selector contributes no specificity
		sawSimple = true
	default:
		// no type/universal: must have at least one simple selector
	}
	for {
		tok = p.peek()
		switch {
		case tok.Kind == TokenHash:
			p.next()
			cs.Simples = append(cs.Simples, SimpleSelector{Kind: SimpleID, Name: tok.Value})
			sel.Specificity.A++
			sawSimple = true
		case tok.Kind == TokenDelim && tok.Value == ".":
			p.next()
			if p.peek().Kind != TokenIdent {
				return nil, false
			}
			name := p.next().Value
			cs.Simples = append(cs.Simples, SimpleSelector{Kind: SimpleClass, Name: name})
			sel.Specificity.B++
			sawSimple = true
		case tok.Kind == TokenLBrack:
			attr, ok := p.parseAttributeSelector()
			if !ok {
				return nil, false
			}
			cs.Simples = append(cs.Simples, attr)
			sel.Specificity.B++
			sawSimple = true
		case tok.Kind == TokenColon:
			p.next()
			pseudoElement := false
			if p.peek().Kind == TokenColon {
				p.next()
				pseudoElement = true
			}
			simple, addedSpec, ok := p.parsePseudo(sel)
			if !ok {
				return nil, false
			}
			if pseudoElement {
				sel.PseudoElement = simple.PseudoName
				sel.Specificity.C++
			} else {
				cs.Simples = append(cs.Simples, simple)
				sel.Specificity = sel.Specificity.Add(addedSpec)
				if simple.PseudoName != "not" {
					// :not(X) itself adds no specificity beyond X's,
					// already folded into addedSpec; every other
					// pseudo-class counts like a class (spec.md §3).
					sel.Specificity.B++
				}
			}
			sawSimple = true
		default:
			if !sawSimple {
				return nil, false
			}
			return cs, true
		}
	}
}

func (p *Parser) parseAttributeSelector() (SimpleSelector, bool) {
	p.next() // '['
	p.skipWS()
	if p.peek().Kind != TokenIdent {
		return SimpleSelector{}, false
	}
	name := strings.ToLower(p.next().Value)
	p.skipWS()
	ss := SimpleSelector{Kind: SimpleAttribute, AttrName: name, AttrOp: AttrExists}
	switch p.peek().Kind {
	case TokenRBrack:
		p.next()
		return ss, true
	case TokenDelim:
		if p.peek().Value != "=" {
			return SimpleSelector{}, false
		}
		p.next()
		ss.AttrOp = AttrEquals
	case TokenIncludeMatch:
		p.next()
		ss.AttrOp = AttrIncludes
	case TokenDashMatch:
		p.next()
		ss.AttrOp = AttrDash
	case TokenPrefixMatch:
		p.next()
		ss.AttrOp = AttrPrefix
	case TokenSuffixMatch:
		p.next()
		ss.AttrOp = AttrSuffix
	case TokenSubstringMatch:
		p.next()
		ss.AttrOp = AttrSubstring
	default:
		return SimpleSelector{}, false
	}
	p.skipWS()
	valTok := p.peek()
	if valTok.Kind != TokenString && valTok.Kind != TokenIdent {
		return SimpleSelector{}, false
	}
	ss.AttrVal = valTok.Value
	p.next()
	p.skipWS()
	if p.peek().Kind != TokenRBrack {
		return SimpleSelector{}, false
	}
	p.next()
	return ss, true
}

// parsePseudo parses the name (and, for functional pseudo-classes, the
// parenthesized argument) following a single or double colon. The
// returned Specificity is normally zero except for `:not(X)`, whose
// contained compound's specificity is added to the enclosing selector
// (spec.md §3).
func (p *Parser) parsePseudo(sel *Selector) (SimpleSelector, types.Specificity, bool) {
	if p.peek().Kind != TokenIdent && p.peek().Kind != TokenFunction {
		return SimpleSelector{}, types.Specificity{}, false
	}
	isFunc := p.peek().Kind == TokenFunction
	name := strings.ToLower(p.next().Value)

	if !isFunc {
		switch name {
		case "hover", "focus", "active", "visited", "first-child", "last-child":
			return SimpleSelector{Kind: SimplePseudoClass, PseudoName: name}, types.Specificity{}, true
		case "before", "after":
			return SimpleSelector{Kind: SimplePseudoClass, PseudoName: name}, types.Specificity{}, true
		}
		return SimpleSelector{}, types.Specificity{}, false
	}

	switch name {
	case "nth-child":
		a, b, ok := p.parseNthExpr()
		if !ok {
			return SimpleSelector{}, types.Specificity{}, false
		}
		p.skipWS()
		if p.peek().Kind != TokenRParen {
			return SimpleSelector{}, types.Specificity{}, false
		}
		p.next()
		return SimpleSelector{Kind: SimplePseudoClass, PseudoName: "nth-child", NthA: a, NthB: b}, types.Specificity{}, true
	case "not":
		p.skipWS()
		inner := &Selector{}
		compound, ok := p.parseCompoundSelector(inner)
		if !ok {
			return SimpleSelector{}, types.Specificity{}, false
		}
		p.skipWS()
		if p.peek().Kind != TokenRParen {
			return SimpleSelector{}, types.Specificity{}, false
		}
		p.next()
		return SimpleSelector{Kind: SimplePseudoClass, PseudoName: "not", Not: compound}, inner.Specificity, true
	}
	// Unrecognized functional pseudo: consume balanced args and ignore.
	depth := 0
	for {
		tok := p.peek()
		if tok.Kind == TokenEOF {
			break
		}
		if tok.Kind == TokenRParen && depth == 0 {
			p.next()
			break
		}
		if tok.Kind == TokenLParen || tok.Kind == TokenFunction {
			depth++
		}
		if tok.Kind == TokenRParen {
			depth--
		}
		p.next()
	}
	return SimpleSelector{Kind: SimplePseudoClass, PseudoName: name}, types.Specificity{}, true
}

// parseNthExpr parses the An+B micro-syntax inside nth-child(): "odd",
// "even", "<integer>", or "<integer>n[ +/- <integer>]".
func (p *Parser) parseNthExpr() (a, b int, ok bool) {
	p.skipWS()
	if p.peek().Kind == TokenIdent {
		switch strings.ToLower(p.peek().Value) {
		case "odd":
			p.next()
			return 2, 1, true
		case "even":
			p.next()
			return 2, 0, true
		}
	}
	var text strings.Builder
	for {
		tok := p.peek()
		if tok.Kind == TokenNumber || tok.Kind == TokenDimension ||
			(tok.Kind == TokenDelim && (tok.Value == "+" || tok.Value == "-")) ||
			(tok.Kind == TokenIdent && (strings.EqualFold(tok.Value, "n") || strings.EqualFold(tok.Value, "-n"))) {
			text.WriteString(tok.Value)
			p.next()
			p.skipWS()
			continue
		}
		break
	}
	expr := strings.ToLower(strings.ReplaceAll(text.String(), " ", ""))
	return parseAnB(expr)
}

// parseAnB interprets a normalized An+B string such as "2n+1", "n", "-n+3"
// or a bare integer.
func parseAnB(expr string) (a, b int, ok bool) {
	if expr == "" {
		return 0, 0, false
	}
	idx := strings.IndexByte(expr, 'n')
	if idx < 0 {
		v, err := strconv.Atoi(expr)
		if err != nil {
			return 0, 0, false
		}
		return 0, v, true
	}
	aPart := expr[:idx]
	switch aPart {
	case "", "+":
		a = 1
	case "-":
		a = -1
	default:
		v, err := strconv.Atoi(aPart)
		if err != nil {
			return 0, 0, false
		}
		a = v
	}
	rest := expr[idx+1:]
	if rest == "" {
		return a, 0, true
	}
	v, err := strconv.Atoi(rest)
	if err != nil {
		return 0, 0, false
	}
	return a, v, true
}
