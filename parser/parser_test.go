package parser

import (
	"testing"

	"github.com/npillmayer/cssengine/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleRule(t *testing.T) {
	sheet := Parse(`div.foo { color: red; }`)
	require.Len(t, sheet.Rules, 1)
	rule := sheet.Rules[0]
	require.Len(t, rule.Selectors, 1)
	sel := rule.Selectors[0]
	assert.Equal(t, types.Specificity{A: 0, B: 1, C: 1}, sel.Specificity)
	require.Len(t, rule.Declarations, 1)
	decl := rule.Declarations[0]
	assert.Equal(t, types.PropColor, decl.PropertyId)
	assert.Equal(t, types.ValColor, decl.Value.Kind)
	assert.Equal(t, types.Colour{R: 255, A: 255}, decl.Value.Color)
}

func TestParseImportant(t *testing.T) {
	sheet := Parse(`p { color: blue !important; }`)
	require.Len(t, sheet.Rules, 1)
	require.Len(t, sheet.Rules[0].Declarations, 1)
	assert.True(t, sheet.Rules[0].Declarations[0].Important)
}

func TestParseIdAndAttributeSelector(t *testing.T) {
	sheet := Parse(`#main[data-x~="y"] { display: none; }`)
	require.Len(t, sheet.Rules, 1)
	sel := sheet.Rules[0].Selectors[0]
	assert.Equal(t, 1, sel.Specificity.A)
	assert.Equal(t, 1, sel.Specificity.B)
	require.Len(t, sel.Compounds, 1)
	require.Len(t, sel.Compounds[0].Simples, 2)
	assert.Equal(t, SimpleID, sel.Compounds[0].Simples[0].Kind)
	assert.Equal(t, AttrIncludes, sel.Compounds[0].Simples[1].AttrOp)
}

func TestParseCombinators(t *testing.T) {
	sheet := Parse(`div > p + span ~ a em { color: red; }`)
	require.Len(t, sheet.Rules, 1)
	sel := sheet.Rules[0].Selectors[0]
	require.Len(t, sel.Compounds, 5)
	assert.Equal(t, []Combinator{CombinatorChild, CombinatorAdjacent, CombinatorGeneralSibling, CombinatorDescendant}, sel.Combinators)
}

func TestParseNotPseudoClassAddsSpecificity(t *testing.T) {
	sheet := Parse(`li:not(.active) { color: red; }`)
	require.Len(t, sheet.Rules, 1)
	sel := sheet.Rules[0].Selectors[0]
	// type (c=1) + :not(.active) folds in class specificity (b=1)
	assert.Equal(t, types.Specificity{A: 0, B: 1, C: 1}, sel.Specificity)
}

func TestParseNthChild(t *testing.T) {
	sheet := Parse(`li:nth-child(2n+1) { color: red; }`)
	require.Len(t, sheet.Rules, 1)
	simples := sheet.Rules[0].Selectors[0].Compounds[0].Simples
	require.Len(t, simples, 1)
	assert.Equal(t, "nth-child", simples[0].PseudoName)
	assert.Equal(t, 2, simples[0].NthA)
	assert.Equal(t, 1, simples[0].NthB)
}

func TestParseNthChildOdd(t *testing.T) {
	sheet := Parse(`li:nth-child(odd) { color: red; }`)
	simples := sheet.Rules[0].Selectors[0].Compounds[0].Simples
	assert.Equal(t, 2, simples[0].NthA)
	assert.Equal(t, 1, simples[0].NthB)
}

func TestParsePseudoElement(t *testing.T) {
	sheet := Parse(`p::before { color: red; }`)
	require.Len(t, sheet.Rules, 1)
	assert.Equal(t, "before", sheet.Rules[0].Selectors[0].PseudoElement)
}

func TestParseSelectorList(t *testing.T) {
	sheet := Parse(`h1, h2, h3 { color: red; }`)
	require.Len(t, sheet.Rules, 1)
	assert.Len(t, sheet.Rules[0].Selectors, 3)
}

func TestParseCustomProperty(t *testing.T) {
	sheet := Parse(`html { --brand: #336699; }`)
	require.Len(t, sheet.Rules, 1)
	decl := sheet.Rules[0].Declarations[0]
	assert.Equal(t, "--brand", decl.CustomName)
}

func TestParseVarWithFallback(t *testing.T) {
	sheet := Parse(`p { color: var(--brand, blue); }`)
	require.Len(t, sheet.Rules, 1)
	decl := sheet.Rules[0].Declarations[0]
	require.Equal(t, types.ValFunction, decl.Value.Kind)
	require.NotNil(t, decl.Value.Function.Var)
	assert.Equal(t, "--brand", decl.Value.Function.Var.Name)
	require.NotNil(t, decl.Value.Function.Var.Fallback)
	assert.Equal(t, types.ValColor, decl.Value.Function.Var.Fallback.Kind)
}

func TestParseCalc(t *testing.T) {
	sheet := Parse(`div { width: calc(100% - 20px); }`)
	require.Len(t, sheet.Rules, 1)
	decl := sheet.Rules[0].Declarations[0]
	require.Equal(t, types.ValFunction, decl.Value.Kind)
	require.NotNil(t, decl.Value.Function.Calc)
	assert.Equal(t, types.CalcSub, decl.Value.Function.Calc.Op)
}

func TestParseMediaQuery(t *testing.T) {
	sheet := Parse(`@media (min-width: 768px) { p { color: red; } }`)
	require.Len(t, sheet.Rules, 1)
	rule := sheet.Rules[0]
	require.NotNil(t, rule.Media)
	assert.Equal(t, "min-width", rule.Media.Root.Feature)
	assert.True(t, rule.Media.ViewportDependent())
}

func TestParseUnsupportedAtRuleSkippedWithDiagnostic(t *testing.T) {
	sheet := Parse(`@font-face { font-family: "X"; src: url(x.woff); } p { color: red; }`)
	require.Len(t, sheet.Rules, 1)
	require.NotEmpty(t, sheet.Diagnostics)
	assert.Equal(t, types.ErrUnsupportedProperty, sheet.Diagnostics[0].Kind)
}

func TestParseMalformedRuleRecovers(t *testing.T) {
	sheet := Parse(`div { color: red; } ### { color: blue; } p { color: green; }`)
	require.Len(t, sheet.Rules, 2)
	assert.NotEmpty(t, sheet.Diagnostics)
}

func TestParseUnterminatedStringIsDiagnosed(t *testing.T) {
	sheet := Parse(`p { content: "unterminated; }`)
	assert.NotEmpty(t, sheet.Diagnostics)
}

func TestParseShorthandMultipleComponents(t *testing.T) {
	sheet := Parse(`div { border-top-width: 1px; margin: 1px 2px 3px 4px; }`)
	require.Len(t, sheet.Rules, 1)
	margin := sheet.Rules[0].Declarations[1]
	require.Equal(t, types.ValList, margin.Value.Kind)
	assert.Len(t, margin.Value.List, 4)
}
