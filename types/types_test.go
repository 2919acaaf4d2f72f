package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpecificityOrdering(t *testing.T) {
	low := Specificity{0, 0, 1}
	mid := Specificity{0, 1, 0}
	high := Specificity{1, 0, 0}
	assert.True(t, low.Less(mid))
	assert.True(t, mid.Less(high))
	assert.False(t, high.Less(low))
}

func TestSpecificityAdd(t *testing.T) {
	a := Specificity{0, 1, 0}
	b := Specificity{0, 0, 2}
	assert.Equal(t, Specificity{0, 1, 2}, a.Add(b))
}

func TestCascadeRankImportantBeatsNormal(t *testing.T) {
	normalAuthor := CascadeRank(Author, false)
	importantUserAgent := CascadeRank(UserAgent, true)
	assert.Less(t, normalAuthor, importantUserAgent)
}

func TestCascadeRankNormalOrder(t *testing.T) {
	assert.Less(t, CascadeRank(UserAgent, false), CascadeRank(User, false))
	assert.Less(t, CascadeRank(User, false), CascadeRank(Author, false))
	assert.Less(t, CascadeRank(Author, false), CascadeRank(Inline, false))
}

func TestCascadeRankImportantOrderIsReversed(t *testing.T) {
	assert.Less(t, CascadeRank(Author, true), CascadeRank(User, true))
	assert.Less(t, CascadeRank(User, true), CascadeRank(UserAgent, true))
}

func TestLookupProperty(t *testing.T) {
	id, ok := LookupProperty("margin-top")
	assert.True(t, ok)
	assert.Equal(t, PropMarginTop, id)

	_, ok = LookupProperty("not-a-real-property")
	assert.False(t, ok)
}

func TestIsInherited(t *testing.T) {
	assert.True(t, IsInherited(PropColor))
	assert.False(t, IsInherited(PropMarginTop))
}

func TestLengthResolvePixels(t *testing.T) {
	ctx := ResolutionContext{RootFontSize: 16, CurrentFontSize: 20, ViewportWidth: 1000, ViewportHeight: 500}

	px, ok := Length{Unit: UnitPx, Magnitude: 10}.ResolvePixels(ctx)
	assert.True(t, ok)
	assert.Equal(t, float32(10), px)

	em, ok := Length{Unit: UnitEm, Magnitude: 2}.ResolvePixels(ctx)
	assert.True(t, ok)
	assert.Equal(t, float32(40), em)

	rem, ok := Length{Unit: UnitRem, Magnitude: 2}.ResolvePixels(ctx)
	assert.True(t, ok)
	assert.Equal(t, float32(32), rem)

	vw, ok := Length{Unit: UnitVw, Magnitude: 50}.ResolvePixels(ctx)
	assert.True(t, ok)
	assert.Equal(t, float32(500), vw)
}

func TestLengthResolvePercentWithoutBasisIsUnresolved(t *testing.T) {
	ctx := ResolutionContext{}
	_, ok := Length{Unit: UnitPercent, Magnitude: 50}.ResolvePixels(ctx)
	assert.False(t, ok)
}

func TestLengthResolvePercentWithBasis(t *testing.T) {
	ctx := ResolutionContext{HasPercentBasis: true, PercentBasis: 200}
	px, ok := Length{Unit: UnitPercent, Magnitude: 50}.ResolvePixels(ctx)
	assert.True(t, ok)
	assert.Equal(t, float32(100), px)
}

func TestLookupNamedColour(t *testing.T) {
	c, ok := LookupNamedColour("red")
	assert.True(t, ok)
	assert.Equal(t, Colour{255, 0, 0, 255}, c)

	_, ok = LookupNamedColour("currentcolor")
	assert.False(t, ok, "currentcolor must not resolve statically")
	assert.True(t, IsCurrentColor("currentcolor"))
}

func TestSplitCompoundOneValue(t *testing.T) {
	kvs, err := SplitCompound("margin", "", []PropertyValue{LengthValue(Px(3))})
	assert.NoError(t, err)
	assert.Len(t, kvs, 4)
	for _, kv := range kvs {
		assert.Equal(t, Px(3), kv.Value.Length)
	}
}

func TestSplitCompoundFourValues(t *testing.T) {
	vals := []PropertyValue{
		LengthValue(Px(1)), LengthValue(Px(2)), LengthValue(Px(3)), LengthValue(Px(4)),
	}
	kvs, err := SplitCompound("margin", "", vals)
	assert.NoError(t, err)
	assert.Equal(t, PropMarginTop, kvs[0].Property)
	assert.Equal(t, PropMarginRight, kvs[1].Property)
	assert.Equal(t, PropMarginBottom, kvs[2].Property)
	assert.Equal(t, PropMarginLeft, kvs[3].Property)
	assert.Equal(t, Px(4), kvs[3].Value.Length)
}

func TestSplitCompoundThreeValuesWraps(t *testing.T) {
	vals := []PropertyValue{LengthValue(Px(1)), LengthValue(Px(2)), LengthValue(Px(3))}
	kvs, err := SplitCompound("padding", "", vals)
	assert.NoError(t, err)
	assert.Equal(t, Px(2), kvs[1].Value.Length) // right
	assert.Equal(t, Px(2), kvs[3].Value.Length) // left reuses "right" value
}

func TestSplitCompoundWithSuffix(t *testing.T) {
	kvs, err := SplitCompound("border", "width", []PropertyValue{LengthValue(Px(1))})
	assert.NoError(t, err)
	assert.Equal(t, PropBorderTopWidth, kvs[0].Property)
	assert.Equal(t, PropBorderLeftWidth, kvs[3].Property)
}

func TestEngineErrorFormatting(t *testing.T) {
	err := NewParseError(ErrParse, 3, 7, "unexpected token")
	assert.Contains(t, err.Error(), "3")
	assert.Contains(t, err.Error(), "7")
	assert.Equal(t, ErrParse, err.Kind)
}
