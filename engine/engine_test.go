package engine

import (
	"testing"

	"github.com/npillmayer/cssengine/element"
	"github.com/npillmayer/cssengine/stylist"
	"github.com/npillmayer/cssengine/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidationScenario(t *testing.T) {
	a := element.NewArena()
	root := a.AddRoot("p")

	eng := New(a, root, stylist.DefaultViewport)
	_, _, err := eng.ParseStylesheet(`p.warn{color:orange}`, types.Author)
	require.NoError(t, err)

	cv, err := eng.GetComputedStyle(root)
	require.NoError(t, err)
	assert.Equal(t, types.ValColor, cv.Get(types.PropColor).Kind)
	assert.Equal(t, types.Colour{A: 255}, cv.Get(types.PropColor).Color, "unstyled <p> computes the initial color (black)")

	a.AddClass(root, "warn")
	require.NoError(t, eng.Invalidate(Invalidation{Kind: ClassChange, Element: root}))

	cv, err = eng.GetComputedStyle(root)
	require.NoError(t, err)
	require.Equal(t, types.ValColor, cv.Get(types.PropColor).Kind)
	assert.Equal(t, types.Colour{R: 255, G: 165, A: 255}, cv.Get(types.PropColor).Color)

	a.RemoveClass(root, "warn")
	require.NoError(t, eng.Invalidate(Invalidation{Kind: ClassChange, Element: root}))

	cv, err = eng.GetComputedStyle(root)
	require.NoError(t, err)
	assert.Equal(t, types.Colour{A: 255}, cv.Get(types.PropColor).Color, "removing the class reverts color to initial")
}

func TestInvalidationCompletenessMatchesFromScratch(t *testing.T) {
	a := element.NewArena()
	root := a.AddRoot("div")
	child := a.AddChild(root, "span")
	a.SetClasses(child, "x")

	eng := New(a, root, stylist.DefaultViewport)
	_, _, err := eng.ParseStylesheet(`.x{color:red}`, types.Author)
	require.NoError(t, err)

	_, err = eng.GetComputedStyle(child) // force a compute, populating the cache
	require.NoError(t, err)

	require.NoError(t, eng.Invalidate(Invalidation{Kind: AttributeChange, Element: child}))
	afterInvalidation, err := eng.ComputeStyles(root)
	require.NoError(t, err)

	fresh := stylist.New()
	_, _, err = fresh.AddStylesheet(`.x{color:red}`, types.Author)
	require.NoError(t, err)
	fromScratch, err := fresh.Compute(root, a, stylist.DefaultViewport)
	require.NoError(t, err)

	n1, ok1 := afterInvalidation.NodeFor(child)
	n2, ok2 := fromScratch.NodeFor(child)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, n2.Computed().Get(types.PropColor), n1.Computed().Get(types.PropColor))
}

func TestSetInlineStyleOverridesStylesheet(t *testing.T) {
	a := element.NewArena()
	root := a.AddRoot("p")

	eng := New(a, root, stylist.DefaultViewport)
	_, _, err := eng.ParseStylesheet(`p{color:red}`, types.Author)
	require.NoError(t, err)

	_, err = eng.SetInlineStyle(root, "color: green")
	require.NoError(t, err)

	cv, err := eng.GetComputedStyle(root)
	require.NoError(t, err)
	assert.Equal(t, types.Colour{G: 128, A: 255}, cv.Get(types.PropColor).Color)
}

func TestViewportChangeInvalidatesVwDependentProperty(t *testing.T) {
	a := element.NewArena()
	root := a.AddRoot("div")

	eng := New(a, root, stylist.Viewport{Width: 800, Height: 600, RootFontSizePx: 16})
	_, _, err := eng.ParseStylesheet(`div{width: 50vw}`, types.Author)
	require.NoError(t, err)

	cv, err := eng.GetComputedStyle(root)
	require.NoError(t, err)
	px, ok := cv.Get(types.PropWidth).Length.ResolvePixels(types.ResolutionContext{})
	require.True(t, ok)
	assert.Equal(t, float32(400), px)

	require.NoError(t, eng.Invalidate(Invalidation{Kind: ViewportChange, Viewport: stylist.Viewport{Width: 1000, Height: 600, RootFontSizePx: 16}}))
	cv, err = eng.GetComputedStyle(root)
	require.NoError(t, err)
	px, ok = cv.Get(types.PropWidth).Length.ResolvePixels(types.ResolutionContext{})
	require.True(t, ok)
	assert.Equal(t, float32(500), px)
}
