package stylist

import (
	"testing"

	"github.com/npillmayer/cssengine/element"
	"github.com/npillmayer/cssengine/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBareStylist() *Stylist {
	return &Stylist{
		sheets: make(map[StyleSheetId]*styleSheet),
		index:  newRuleIndex(),
		inline: make(map[element.ElementId]*inlineDecl),
	}
}

func keywordOf(t *testing.T, cv *ComputedValues, p types.PropertyId) string {
	t.Helper()
	v := cv.Get(p)
	require.Equal(t, types.ValKeyword, v.Kind, "expected keyword value for %s, got kind %d", p, v.Kind)
	return v.Keyword
}

func TestCascadeBasicScenario(t *testing.T) {
	sl := newBareStylist()
	_, _, err := sl.AddStylesheet(`* {color:black}`, types.Author)
	require.NoError(t, err)
	_, _, err = sl.AddStylesheet(`p{color:red}`, types.Author)
	require.NoError(t, err)
	_, _, err = sl.AddStylesheet(`p.warn{color:orange !important}`, types.Author)
	require.NoError(t, err)
	_, _, err = sl.AddStylesheet(`p#x.warn{color:blue}`, types.Author)
	require.NoError(t, err)

	a := element.NewArena()
	root := a.AddRoot("p")
	a.SetID(root, "x")
	a.SetClasses(root, "warn")

	st, err := sl.Compute(root, a, DefaultViewport)
	require.NoError(t, err)
	node, ok := st.NodeFor(root)
	require.True(t, ok)
	assert.Equal(t, types.ColorValue(types.Colour{R: 255, G: 165, A: 255}), node.Computed().Get(types.PropColor))
}

func TestInheritanceScenario(t *testing.T) {
	sl := newBareStylist()
	_, _, err := sl.AddStylesheet(`parent{color:red; border-width: 1px}`, types.Author)
	require.NoError(t, err)

	a := element.NewArena()
	root := a.AddRoot("parent")
	child := a.AddChild(root, "child")
	_ = child

	st, err := sl.Compute(root, a, DefaultViewport)
	require.NoError(t, err)
	childNode, ok := st.NodeFor(child)
	require.True(t, ok)
	assert.Equal(t, types.ColorValue(types.Colour{R: 255, A: 255}), childNode.Computed().Get(types.PropColor), "color is inherited")

	bw := childNode.Computed().Get(types.PropBorderTopWidth)
	require.Equal(t, types.ValLength, bw.Kind)
	px, ok := bw.Length.ResolvePixels(types.ResolutionContext{})
	require.True(t, ok)
	assert.Equal(t, float32(3), px, "border-width is not inherited, so child keeps the initial value")
}

func TestSpecificityTieBreakScenario(t *testing.T) {
	sl := newBareStylist()
	_, _, err := sl.AddStylesheet(`.a{color:green}`, types.Author)
	require.NoError(t, err)
	_, _, err = sl.AddStylesheet(`.b{color:blue}`, types.Author)
	require.NoError(t, err)

	a := element.NewArena()
	root := a.AddRoot("p")
	a.SetClasses(root, "a", "b")

	st, err := sl.Compute(root, a, DefaultViewport)
	require.NoError(t, err)
	node, _ := st.NodeFor(root)
	assert.Equal(t, types.ColorValue(types.Colour{B: 255, A: 255}), node.Computed().Get(types.PropColor))
}

func TestLengthResolutionScenario(t *testing.T) {
	sl := newBareStylist()
	_, _, err := sl.AddStylesheet(`parent{font-size: 10px} child{font-size: 2em} grandchild{margin-top: 1rem}`, types.Author)
	require.NoError(t, err)

	a := element.NewArena()
	root := a.AddRoot("parent")
	child := a.AddChild(root, "child")
	grandchild := a.AddChild(child, "grandchild")

	st, err := sl.Compute(root, a, Viewport{Width: 800, Height: 600, RootFontSizePx: 16})
	require.NoError(t, err)

	childNode, _ := st.NodeFor(child)
	fs := childNode.Computed().Get(types.PropFontSize)
	px, ok := fs.Length.ResolvePixels(types.ResolutionContext{})
	require.True(t, ok)
	assert.Equal(t, float32(20), px, "2em against a 10px parent resolves to 20px")

	gcNode, _ := st.NodeFor(grandchild)
	mt := gcNode.Computed().Get(types.PropMarginTop)
	mtPx, ok := mt.Length.ResolvePixels(types.ResolutionContext{})
	require.True(t, ok)
	assert.Equal(t, float32(16), mtPx, "1rem resolves against the root font-size regardless of ancestor font-size")
}

func TestCustomPropertyFallbackScenario(t *testing.T) {
	sl := newBareStylist()
	_, _, err := sl.AddStylesheet(`p{--c: red; color: var(--c, blue)}`, types.Author)
	require.NoError(t, err)

	a := element.NewArena()
	root := a.AddRoot("p")
	st, err := sl.Compute(root, a, DefaultViewport)
	require.NoError(t, err)
	node, _ := st.NodeFor(root)
	assert.Equal(t, types.ColorValue(types.Colour{R: 255, A: 255}), node.Computed().Get(types.PropColor))

	sl2 := newBareStylist()
	_, _, err = sl2.AddStylesheet(`p{color: var(--c, blue)}`, types.Author)
	require.NoError(t, err)
	st2, err := sl2.Compute(root, a, DefaultViewport)
	require.NoError(t, err)
	node2, _ := st2.NodeFor(root)
	assert.Equal(t, types.ColorValue(types.Colour{B: 255, A: 255}), node2.Computed().Get(types.PropColor), "missing --c falls back to the var() fallback")
}

func TestVarCycleResolvesToInitial(t *testing.T) {
	sl := newBareStylist()
	_, _, err := sl.AddStylesheet(`p{--a: var(--b); --b: var(--a); color: var(--a)}`, types.Author)
	require.NoError(t, err)

	a := element.NewArena()
	root := a.AddRoot("p")
	st, err := sl.Compute(root, a, DefaultViewport)
	require.NoError(t, err)
	node, _ := st.NodeFor(root)
	// Cycle detected: falls back to color's initial value (black), never
	// hangs the compute pass.
	assert.Equal(t, "black", keywordOrColorName(t, node.Computed().Get(types.PropColor)))
}

func keywordOrColorName(t *testing.T, v types.PropertyValue) string {
	t.Helper()
	if v.Kind == types.ValColor && v.Color == (types.Colour{A: 255}) {
		return "black"
	}
	if v.Kind == types.ValKeyword {
		return v.Keyword
	}
	return "?"
}

func TestUserAgentStylesheetAppliesByDefault(t *testing.T) {
	sl := New()
	a := element.NewArena()
	root := a.AddRoot("div")
	st, err := sl.Compute(root, a, DefaultViewport)
	require.NoError(t, err)
	node, _ := st.NodeFor(root)
	assert.Equal(t, "block", keywordOf(t, node.Computed(), types.PropDisplay))
}

func TestRuleIndexBucketing(t *testing.T) {
	idx := newRuleIndex()
	sl := newBareStylist()
	_, _, _ = sl.AddStylesheet(`#x{color:red} .y{color:blue} div{color:green} *{color:black}`, types.Author)
	for _, sheet := range sl.sheets {
		idx.add(sheet)
	}
	assert.Len(t, idx.byID["x"], 1)
	assert.Len(t, idx.byClass["y"], 1)
	assert.Len(t, idx.byTag["div"], 1)
	assert.Len(t, idx.universal, 1)
}
