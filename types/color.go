package types

import "fmt"

// Colour is an RGBA quadruple. Named keywords are resolved to RGBA at
// parse time (spec.md §3).
type Colour struct {
	R, G, B, A uint8
}

func (c Colour) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%d)", c.R, c.G, c.B, c.A)
}

// namedColours is the fixed keyword table resolved at parse time. It
// covers the CSS1/CSS2 basic colour names plus a handful of commonly
// used extended names exercised by the end-to-end scenarios in spec.md §8.
var namedColours = map[string]Colour{
	"black":       {0, 0, 0, 255},
	"white":       {255, 255, 255, 255},
	"red":         {255, 0, 0, 255},
	"green":       {0, 128, 0, 255},
	"blue":        {0, 0, 255, 255},
	"yellow":      {255, 255, 0, 255},
	"orange":      {255, 165, 0, 255},
	"gray":        {128, 128, 128, 255},
	"grey":        {128, 128, 128, 255},
	"silver":      {192, 192, 192, 255},
	"maroon":      {128, 0, 0, 255},
	"purple":      {128, 0, 128, 255},
	"navy":        {0, 0, 128, 255},
	"teal":        {0, 128, 128, 255},
	"olive":       {128, 128, 0, 255},
	"lime":        {0, 255, 0, 255},
	"aqua":        {0, 255, 255, 255},
	"fuchsia":     {255, 0, 255, 255},
	"transparent": {0, 0, 0, 0},
	// "currentcolor" is absent: it depends on the resolved value of
	// `color` on the same element and is not a static keyword. It stays a
	// plain keyword value; nothing in the engine resolves it to RGBA.
}

// LookupNamedColour resolves a CSS colour keyword to RGBA.
func LookupNamedColour(name string) (Colour, bool) {
	c, ok := namedColours[name]
	return c, ok
}

// IsCurrentColor reports whether name is the special "currentcolor" keyword.
func IsCurrentColor(name string) bool {
	return name == "currentcolor"
}
