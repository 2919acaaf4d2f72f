package matcher

import (
	"testing"

	"github.com/npillmayer/cssengine/element"
	"github.com/npillmayer/cssengine/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selOf(t *testing.T, css string) *parser.Selector {
	t.Helper()
	sheet := parser.Parse(css + " { color: red; }")
	require.Len(t, sheet.Rules, 1)
	require.Len(t, sheet.Rules[0].Selectors, 1)
	return sheet.Rules[0].Selectors[0]
}

func buildTree(t *testing.T) (*element.Arena, element.ElementId, element.ElementId, element.ElementId) {
	t.Helper()
	a := element.NewArena()
	root := a.AddRoot("html")
	body := a.AddChild(root, "body")
	p := a.AddChild(body, "p")
	a.SetID(p, "x")
	a.SetClasses(p, "warn")
	return a, root, body, p
}

func TestMatchesTypeClassId(t *testing.T) {
	a, _, _, p := buildTree(t)
	assert.True(t, Matches(selOf(t, "p"), p, a))
	assert.True(t, Matches(selOf(t, ".warn"), p, a))
	assert.True(t, Matches(selOf(t, "#x"), p, a))
	assert.True(t, Matches(selOf(t, "p#x.warn"), p, a))
	assert.False(t, Matches(selOf(t, "div"), p, a))
}

func TestMatchesDescendantAndChild(t *testing.T) {
	a, _, body, p := buildTree(t)
	assert.True(t, Matches(selOf(t, "html p"), p, a))
	assert.True(t, Matches(selOf(t, "body > p"), p, a))
	assert.False(t, Matches(selOf(t, "html > p"), p, a))
	_ = body
}

func TestMatchesSiblingCombinators(t *testing.T) {
	a := element.NewArena()
	root := a.AddRoot("div")
	p1 := a.AddChild(root, "p")
	span := a.AddChild(root, "span")
	p2 := a.AddChild(root, "p")
	_ = p1

	assert.True(t, Matches(selOf(t, "p + span"), span, a))
	assert.True(t, Matches(selOf(t, "p ~ p"), p2, a))
	assert.False(t, Matches(selOf(t, "span + p"), p1, a))
}

func TestMatchesAttribute(t *testing.T) {
	a := element.NewArena()
	root := a.AddRoot("a")
	a.SetAttribute(root, "href", "https://example.com/path")
	assert.True(t, Matches(selOf(t, `a[href]`), root, a))
	assert.True(t, Matches(selOf(t, `a[href^="https"]`), root, a))
	assert.True(t, Matches(selOf(t, `a[href$="path"]`), root, a))
	assert.True(t, Matches(selOf(t, `a[href*="example"]`), root, a))
	assert.False(t, Matches(selOf(t, `a[href$="xyz"]`), root, a))
}

func TestMatchesNthChild(t *testing.T) {
	a := element.NewArena()
	root := a.AddRoot("ul")
	var lis []element.ElementId
	for i := 0; i < 5; i++ {
		lis = append(lis, a.AddChild(root, "li"))
	}
	assert.True(t, Matches(selOf(t, "li:nth-child(odd)"), lis[0], a))
	assert.False(t, Matches(selOf(t, "li:nth-child(odd)"), lis[1], a))
	assert.True(t, Matches(selOf(t, "li:nth-child(2n+1)"), lis[2], a))
	assert.True(t, Matches(selOf(t, "li:first-child"), lis[0], a))
	assert.True(t, Matches(selOf(t, "li:last-child"), lis[4], a))
}

func TestMatchesNot(t *testing.T) {
	a, _, _, p := buildTree(t)
	assert.False(t, Matches(selOf(t, "p:not(.warn)"), p, a))
	assert.True(t, Matches(selOf(t, "p:not(.safe)"), p, a))
}

func TestMatchesPseudoClassState(t *testing.T) {
	a := element.NewArena()
	root := a.AddRoot("a")
	a.SetState(root, element.StateHover)
	assert.True(t, Matches(selOf(t, "a:hover"), root, a))
	assert.False(t, Matches(selOf(t, "a:focus"), root, a))
}
