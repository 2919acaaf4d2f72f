package parser

import (
	"strconv"
	"strings"

	"github.com/npillmayer/cssengine/types"
)

// parseValueAndImportance parses the component list after a declaration's
// ':' up to (but not including) the terminating ';' or '}', honoring a
// trailing "!important". Multiple space-separated components (as used by
// shorthand properties, e.g. "1px solid red") are folded into a
// types.ValList; a single component is returned unwrapped.
func (p *Parser) parseValueAndImportance() (types.PropertyValue, bool, bool) {
	var components []types.PropertyValue
	for {
		p.skipWS()
		tok := p.peek()
		if tok.Kind == TokenSemicolon || tok.Kind == TokenRBrace || tok.Kind == TokenEOF || tok.Kind == TokenRParen {
			break
		}
		if tok.Kind == TokenDelim && tok.Value == "!" {
			break
		}
		val, ok := p.parseValueComponent()
		if !ok {
			return types.PropertyValue{}, false, false
		}
		components = append(components, val)
		if p.peek().Kind == TokenComma {
			p.next()
		}
	}
	important := false
	p.skipWS()
	if p.peek().Kind == TokenDelim && p.peek().Value == "!" {
		p.next()
		p.skipWS()
		if p.peek().Kind == TokenIdent && strings.EqualFold(p.peek().Value, "important") {
			p.next()
			important = true
		}
	}
	if len(components) == 0 {
		return types.PropertyValue{}, false, false
	}
	if len(components) == 1 {
		return components[0], important, true
	}
	return types.PropertyValue{Kind: types.ValList, List: components}, important, true
}

// parseValueComponent parses a single value token or function call.
func (p *Parser) parseValueComponent() (types.PropertyValue, bool) {
	tok := p.peek()
	switch tok.Kind {
	case TokenIdent:
		p.next()
		kw := strings.ToLower(tok.Value)
		switch kw {
		case "initial":
			return types.Initial, true
		case "inherit":
			return types.Inherit, true
		case "unset":
			return types.Unset, true
		}
		if c, ok := types.LookupNamedColour(kw); ok {
			return types.ColorValue(c), true
		}
		return types.Keyword(kw), true
	case TokenString:
		p.next()
		return types.PropertyValue{Kind: types.ValString, Str: tok.Value}, true
	case TokenHash:
		p.next()
		c, ok := parseHexColour(tok.Value)
		if !ok {
			return types.PropertyValue{}, false
		}
		return types.ColorValue(c), true
	case TokenNumber:
		p.next()
		return types.NumberValue(tok.Number), true
	case TokenPercentage:
		p.next()
		return types.LengthValue(types.Length{Unit: types.UnitPercent, Magnitude: float32(tok.Number)}), true
	case TokenDimension:
		p.next()
		unit, ok := lengthUnitFromString(tok.Unit)
		if !ok {
			return types.PropertyValue{}, false
		}
		return types.LengthValue(types.Length{Unit: unit, Magnitude: float32(tok.Number)}), true
	case TokenFunction:
		return p.parseFunctionCall()
	}
	return types.PropertyValue{}, false
}

func lengthUnitFromString(unit string) (types.LengthUnit, bool) {
	switch strings.ToLower(unit) {
	case "px":
		return types.UnitPx, true
	case "em":
		return types.UnitEm, true
	case "rem":
		return types.UnitRem, true
	case "vw":
		return types.UnitVw, true
	case "vh":
		return types.UnitVh, true
	}
	return 0, false
}

func parseHexColour(hex string) (types.Colour, bool) {
	parseByte := func(s string) (uint8, bool) {
		v, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			return 0, false
		}
		return uint8(v), true
	}
	switch len(hex) {
	case 3:
		r, ok1 := parseByte(strings.Repeat(string(hex[0]), 2))
		g, ok2 := parseByte(strings.Repeat(string(hex[1]), 2))
		b, ok3 := parseByte(strings.Repeat(string(hex[2]), 2))
		if !ok1 || !ok2 || !ok3 {
			return types.Colour{}, false
		}
		return types.Colour{R: r, G: g, B: b, A: 255}, true
	case 6:
		r, ok1 := parseByte(hex[0:2])
		g, ok2 := parseByte(hex[2:4])
		b, ok3 := parseByte(hex[4:6])
		if !ok1 || !ok2 || !ok3 {
			return types.Colour{}, false
		}
		return types.Colour{R: r, G: g, B: b, A: 255}, true
	case 8:
		r, ok1 := parseByte(hex[0:2])
		g, ok2 := parseByte(hex[2:4])
		b, ok3 := parseByte(hex[4:6])
		a, ok4 := parseByte(hex[6:8])
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return types.Colour{}, false
		}
		return types.Colour{R: r, G: g, B: b, A: a}, true
	}
	return types.Colour{}, false
}

// parseFunctionCall parses `name( ... )`, specializing var() and calc()
// into their retained, unevaluated forms (spec.md §4.1, §4.4) and
// treating any other function (e.g. rgba(), url()) as opaque: its
// balanced argument list is consumed and discarded, and only the
// function name is kept.
func (p *Parser) parseFunctionCall() (types.PropertyValue, bool) {
	nameTok := p.next() // consumes the TokenFunction, which already swallowed '('
	name := strings.ToLower(nameTok.Value)

	switch name {
	case "var":
		ref, ok := p.parseVarArgs()
		if !ok {
			return types.PropertyValue{}, false
		}
		return types.PropertyValue{Kind: types.ValFunction, Function: &types.FunctionCall{Name: "var", Var: ref}}, true
	case "calc":
		expr, ok := p.parseCalcExpr()
		if !ok {
			return types.PropertyValue{}, false
		}
		p.skipWS()
		if p.peek().Kind != TokenRParen {
			return types.PropertyValue{}, false
		}
		p.next()
		return types.PropertyValue{Kind: types.ValFunction, Function: &types.FunctionCall{Name: "calc", Calc: expr}}, true
	default:
		// Opaque function: consume a balanced arg list; only the name is
		// kept, the arguments are neither retained nor resolved.
		var b strings.Builder
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
			b.WriteString(tok.Value)
			p.next()
		}
		return types.PropertyValue{Kind: types.ValFunction, Function: &types.FunctionCall{Name: name}}, true
	}
}

// parseVarArgs parses `--name[, fallback]`.
func (p *Parser) parseVarArgs() (*types.VarRef, bool) {
	p.skipWS()
	if p.peek().Kind != TokenIdent || !strings.HasPrefix(p.peek().Value, "--") {
		return nil, false
	}
	name := p.next().Value
	ref := &types.VarRef{Name: name}
	p.skipWS()
	if p.peek().Kind == TokenComma {
		p.next()
		p.skipWS()
		fb, _, ok := p.parseValueAndImportance()
		if !ok {
			return nil, false
		}
		ref.Fallback = &fb
		p.skipWS()
		if p.peek().Kind != TokenRParen {
			return nil, false
		}
		p.next()
		return ref, true
	}
	p.skipWS()
	if p.peek().Kind != TokenRParen {
		return nil, false
	}
	p.next()
	return ref, true
}

// parseCalcExpr parses a calc() arithmetic expression with the usual
// precedence: + and - bind loosest, * and / bind tighter, parentheses
// override (spec.md §4.4 step 7).
func (p *Parser) parseCalcExpr() (*types.CalcExpr, bool) {
	return p.parseCalcAddSub()
}

func (p *Parser) parseCalcAddSub() (*types.CalcExpr, bool) {
	left, ok := p.parseCalcMulDiv()
	if !ok {
		return nil, false
	}
	for {
		p.skipWS()
		tok := p.peek()
		if tok.Kind == TokenDelim && (tok.Value == "+" || tok.Value == "-") {
			op := types.CalcAdd
			if tok.Value == "-" {
				op = types.CalcSub
			}
			p.next()
			p.skipWS()
			right, ok := p.parseCalcMulDiv()
			if !ok {
				return nil, false
			}
			left = &types.CalcExpr{Op: op, Left: left, Right: right}
			continue
		}
		break
	}
	return left, true
}

func (p *Parser) parseCalcMulDiv() (*types.CalcExpr, bool) {
	left, ok := p.parseCalcUnary()
	if !ok {
		return nil, false
	}
	for {
		p.skipWS()
		tok := p.peek()
		if tok.Kind == TokenDelim && (tok.Value == "*" || tok.Value == "/") {
			op := types.CalcMul
			if tok.Value == "/" {
				op = types.CalcDiv
			}
			p.next()
			p.skipWS()
			right, ok := p.parseCalcUnary()
			if !ok {
				return nil, false
			}
			left = &types.CalcExpr{Op: op, Left: left, Right: right}
			continue
		}
		break
	}
	return left, true
}

func (p *Parser) parseCalcUnary() (*types.CalcExpr, bool) {
	p.skipWS()
	if p.peek().Kind == TokenLParen {
		p.next()
		inner, ok := p.parseCalcAddSub()
		if !ok {
			return nil, false
		}
		p.skipWS()
		if p.peek().Kind != TokenRParen {
			return nil, false
		}
		p.next()
		return inner, true
	}
	val, ok := p.parseValueComponent()
	if !ok {
		return nil, false
	}
	return &types.CalcExpr{Op: types.CalcLeaf, Leaf: val}, true
}
