package parser

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cssengine/types"
)

// maxNestingDepth guards against pathological @media nesting driving the
// parser into unbounded recursion (spec.md §6 resource limits).
const maxNestingDepth = 32

// Parser is a hand-written recursive-descent CSS parser. It never
// returns a hard Go error from Parse: malformed rules are dropped and
// recorded as a types.Diagnostic so the rest of the stylesheet still
// parses (spec.md §4.1, §7). An @media block nested deeper than
// maxNestingDepth is skipped with a ResourceLimitExceeded diagnostic.
type Parser struct {
	sc     *Scanner
	buf    []Token // lookahead buffer
	diags  []types.Diagnostic
	depth  int
	source string
}

// NewParser creates a Parser over CSS source text.
func NewParser(src string) *Parser {
	return &Parser{sc: NewScanner(src), source: src}
}

// Parse runs the parser to completion and returns the resulting
// Stylesheet, which always carries any recovered diagnostics.
func Parse(src string) *Stylesheet {
	p := NewParser(src)
	return p.Parse()
}

// ParseDeclarations parses a bare declaration list with no surrounding
// selector or braces, the grammar of an element's `style="..."` attribute
// (spec.md §6 "inline-style text"). It reuses the same
// parseDeclarationList/parseDeclaration machinery a rule body uses,
// stopping at EOF instead of a closing brace.
func ParseDeclarations(src string) ([]*Declaration, []types.Diagnostic) {
	p := NewParser(src)
	decls := p.parseDeclarationList()
	return decls, p.diags
}

func (p *Parser) peekN(n int) Token {
	for len(p.buf) <= n {
		p.buf = append(p.buf, p.sc.Scan())
	}
	return p.buf[n]
}

func (p *Parser) peek() Token { return p.peekN(0) }

func (p *Parser) next() Token {
	tok := p.peek()
	if len(p.buf) > 0 {
		p.buf = p.buf[1:]
	}
	return tok
}

func (p *Parser) skipWS() {
	for p.peek().Kind == TokenWhitespace {
		p.next()
	}
}

func (p *Parser) errorf(kind types.ErrorKind, pos Pos, format string, args ...interface{}) {
	p.diags = append(p.diags, types.Diagnostic{
		Kind:    kind,
		Line:    pos.Line,
		Column:  pos.Col,
		Message: fmt.Sprintf(format, args...),
	})
}

// Parse tokenizes and parses the whole stylesheet top-level.
func (p *Parser) Parse() *Stylesheet {
	sheet := &Stylesheet{}
	for {
		p.skipWS()
		tok := p.peek()
		if tok.Kind == TokenEOF {
			break
		}
		if tok.Kind == TokenAtKeyword && strings.EqualFold(tok.Value, "media") {
			rules, ok := p.parseMediaBlock()
			if ok {
				sheet.Rules = append(sheet.Rules, rules...)
			}
			continue
		}
		if tok.Kind == TokenAtKeyword {
			// Unsupported at-rule (e.g. @keyframes, @font-face, @import):
			// skip it wholesale and keep going. Non-fatal per spec.md §7.
			p.errorf(types.ErrUnsupportedProperty, tok.Pos, "unsupported at-rule @%s skipped", tok.Value)
			p.skipAtRule()
			continue
		}
		rule, ok := p.parseStyleRule(nil)
		if ok && rule != nil {
			sheet.Rules = append(sheet.Rules, rule)
		}
	}
	sheet.Diagnostics = p.diags
	return sheet
}

// skipAtRule consumes an at-rule's prelude and, if present, its braced
// body, without interpreting it.
func (p *Parser) skipAtRule() {
	for {
		tok := p.peek()
		if tok.Kind == TokenEOF || tok.Kind == TokenSemicolon {
			if tok.Kind == TokenSemicolon {
				p.next()
			}
			return
		}
		if tok.Kind == TokenLBrace {
			p.skipBlock()
			return
		}
		p.next()
	}
}

// skipBlock consumes a balanced {...} block, including nested blocks.
func (p *Parser) skipBlock() {
	depth := 0
	for {
		tok := p.next()
		if tok.Kind == TokenEOF {
			return
		}
		if tok.Kind == TokenLBrace {
			depth++
		}
		if tok.Kind == TokenRBrace {
			depth--
			if depth == 0 {
				return
			}
		}
	}
}

// parseMediaBlock parses `@media <predicate> { <style rules> }` and
// returns the contained rules with Media attached. Nested @media blocks
// combine their predicates with a MediaAnd node.
func (p *Parser) parseMediaBlock() ([]*StyleRule, bool) {
	atPos := p.peek().Pos
	p.next() // '@media'
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxNestingDepth {
		p.errorf(types.ErrResourceLimitExceeded, atPos, "exceeded max @media nesting depth")
		p.skipAtRule()
		return nil, false
	}
	p.skipWS()
	predicate, ok := p.parseMediaPredicate()
	if !ok {
		p.errorf(types.ErrParse, atPos, "malformed @media predicate")
		p.skipAtRule()
		return nil, false
	}
	p.skipWS()
	if p.peek().Kind != TokenLBrace {
		p.errorf(types.ErrParse, p.peek().Pos, "expected '{' after @media predicate")
		p.skipAtRule()
		return nil, false
	}
	p.next() // '{'
	mq := &MediaQuery{Root: predicate}
	var rules []*StyleRule
	for {
		p.skipWS()
		tok := p.peek()
		if tok.Kind == TokenRBrace || tok.Kind == TokenEOF {
			if tok.Kind == TokenRBrace {
				p.next()
			}
			break
		}
		if tok.Kind == TokenAtKeyword && strings.EqualFold(tok.Value, "media") {
			inner, ok := p.parseMediaBlock()
			if ok {
				for _, r := range inner {
					r.Media = &MediaQuery{Root: MediaNode{Kind: MediaAnd, Children: []MediaNode{mq.Root, r.Media.Root}}}
					rules = append(rules, r)
				}
			}
			continue
		}
		rule, ok := p.parseStyleRule(mq)
		if ok && rule != nil {
			rules = append(rules, rule)
		}
	}
	return rules, true
}

// parseMediaPredicate parses a boolean combination of media features:
// `(min-width: 768px) and (orientation: landscape)`, `not (...)`, or a
// comma-separated `or`-joined list. This tree is opaque to the rest of
// the engine (spec.md §4.1): it is retained and never evaluated.
func (p *Parser) parseMediaPredicate() (MediaNode, bool) {
	left, ok := p.parseMediaAndExpr()
	if !ok {
		return MediaNode{}, false
	}
	for {
		p.skipWS()
		if p.peek().Kind == TokenComma {
			p.next()
			p.skipWS()
			right, ok := p.parseMediaAndExpr()
			if !ok {
				return MediaNode{}, false
			}
			left = MediaNode{Kind: MediaOr, Children: []MediaNode{left, right}}
			continue
		}
		break
	}
	return left, true
}

func (p *Parser) parseMediaAndExpr() (MediaNode, bool) {
	left, ok := p.parseMediaUnary()
	if !ok {
		return MediaNode{}, false
	}
	for {
		p.skipWS()
		if p.peek().Kind == TokenIdent && strings.EqualFold(p.peek().Value, "and") {
			p.next()
			p.skipWS()
			right, ok := p.parseMediaUnary()
			if !ok {
				return MediaNode{}, false
			}
			left = MediaNode{Kind: MediaAnd, Children: []MediaNode{left, right}}
			continue
		}
		break
	}
	return left, true
}

func (p *Parser) parseMediaUnary() (MediaNode, bool) {
	p.skipWS()
	if p.peek().Kind == TokenIdent && strings.EqualFold(p.peek().Value, "not") {
		p.next()
		p.skipWS()
		child, ok := p.parseMediaUnary()
		if !ok {
			return MediaNode{}, false
		}
		return MediaNode{Kind: MediaNot, Children: []MediaNode{child}}, true
	}
	if p.peek().Kind == TokenIdent {
		// Bare media type (e.g. "screen", "print"): model it as a feature
		// with an empty value.
		tok := p.next()
		return MediaNode{Kind: MediaFeature, Feature: strings.ToLower(tok.Value)}, true
	}
	if p.peek().Kind != TokenLParen {
		return MediaNode{}, false
	}
	p.next()
	p.skipWS()
	if p.peek().Kind != TokenIdent {
		return MediaNode{}, false
	}
	feature := strings.ToLower(p.next().Value)
	p.skipWS()
	var value string
	if p.peek().Kind == TokenColon {
		p.next()
		p.skipWS()
		var b strings.Builder
		for p.peek().Kind != TokenRParen && p.peek().Kind != TokenEOF {
			b.WriteString(p.next().Value)
		}
		value = strings.TrimSpace(b.String())
	}
	p.skipWS()
	if p.peek().Kind != TokenRParen {
		return MediaNode{}, false
	}
	p.next()
	return MediaNode{Kind: MediaFeature, Feature: feature, Value: value}, true
}

// parseStyleRule parses `<selector-list> { <declarations> }`. On a
// malformed prelude, the rule is dropped (the scanner is advanced past
// the block where possible) and a diagnostic recorded; the caller
// continues with the next rule (spec.md §7). A block still open at end
// of input ends there: the rule is kept with the declarations read so
// far, and no diagnostic is recorded.
func (p *Parser) parseStyleRule(mq *MediaQuery) (*StyleRule, bool) {
	selectors, ok := p.parseSelectorList()
	if !ok {
		p.errorf(types.ErrInvalidSelector, p.peek().Pos, "malformed selector, rule dropped")
		p.recoverToRuleBoundary()
		return nil, false
	}
	if len(selectors) == 0 {
		p.errorf(types.ErrInvalidSelector, p.peek().Pos, "empty selector list, rule dropped")
		p.recoverToRuleBoundary()
		return nil, false
	}
	p.skipWS()
	if p.peek().Kind != TokenLBrace {
		p.errorf(types.ErrParse, p.peek().Pos, "expected '{' to open rule body")
		p.recoverToRuleBoundary()
		return nil, false
	}
	p.next() // '{'
	decls := p.parseDeclarationList()
	return &StyleRule{Selectors: selectors, Declarations: decls, Media: mq}, true
}

// recoverToRuleBoundary skips forward to (and past) the next top-level
// '}', or to EOF, so parsing can resume at the next rule.
func (p *Parser) recoverToRuleBoundary() {
	depth := 0
	for {
		tok := p.next()
		if tok.Kind == TokenEOF {
			return
		}
		if tok.Kind == TokenLBrace {
			depth++
		}
		if tok.Kind == TokenRBrace {
			if depth == 0 {
				return
			}
			depth--
			if depth == 0 {
				return
			}
		}
	}
}

// parseDeclarationList parses `prop: value; prop2: value2 !important; }`.
// A single malformed declaration is dropped (diagnostic recorded) and
// parsing resumes at the next ';' or the closing '}' (spec.md §7).
func (p *Parser) parseDeclarationList() []*Declaration {
	var decls []*Declaration
	for {
		p.skipWS()
		for p.peek().Kind == TokenSemicolon {
			p.next()
			p.skipWS()
		}
		tok := p.peek()
		if tok.Kind == TokenRBrace || tok.Kind == TokenEOF {
			if tok.Kind == TokenRBrace {
				p.next()
			}
			break
		}
		d, ok := p.parseDeclaration()
		if ok && d != nil {
			decls = append(decls, d)
		}
	}
	return decls
}

func (p *Parser) parseDeclaration() (*Declaration, bool) {
	startPos := p.peek().Pos
	if p.peek().Kind != TokenIdent {
		p.errorf(types.ErrInvalidValue, startPos, "expected property name")
		p.skipToDeclarationBoundary()
		return nil, false
	}
	name := p.next().Value
	p.skipWS()
	if p.peek().Kind != TokenColon {
		p.errorf(types.ErrInvalidValue, startPos, "expected ':' after property name %q", name)
		p.skipToDeclarationBoundary()
		return nil, false
	}
	p.next() // ':'
	p.skipWS()

	value, important, ok := p.parseValueAndImportance()
	if !ok {
		p.errorf(types.ErrInvalidValue, startPos, "malformed value for property %q", name)
		p.skipToDeclarationBoundary()
		return nil, false
	}

	d := &Declaration{Name: strings.ToLower(name), Value: value, Important: important}
	if strings.HasPrefix(name, "--") {
		d.CustomName = name
		d.PropertyId = types.PropUnknown
		return d, true
	}
	if id, found := types.LookupProperty(name); found {
		d.PropertyId = id
	} else {
		p.errorf(types.ErrUnsupportedProperty, startPos, "unsupported property %q", name)
		d.PropertyId = types.PropUnknown
	}
	return d, true
}

// skipToDeclarationBoundary advances to (and past) the next top-level
// ';' or stops before a closing '}', so the declaration list loop can
// resume.
func (p *Parser) skipToDeclarationBoundary() {
	depth := 0
	for {
		tok := p.peek()
		if tok.Kind == TokenEOF {
			return
		}
		if tok.Kind == TokenRBrace && depth == 0 {
			return
		}
		p.next()
		if tok.Kind == TokenLParen || tok.Kind == TokenFunction {
			depth++
		}
		if tok.Kind == TokenRParen {
			if depth > 0 {
				depth--
			}
		}
		if tok.Kind == TokenSemicolon && depth == 0 {
			return
		}
	}
}
