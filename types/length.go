package types

// LengthUnit tags the unit carried by a Length (spec.md §3).
type LengthUnit int

const (
	UnitPx LengthUnit = iota
	UnitEm
	UnitRem
	UnitPercent
	UnitVw
	UnitVh
)

func (u LengthUnit) String() string {
	switch u {
	case UnitPx:
		return "px"
	case UnitEm:
		return "em"
	case UnitRem:
		return "rem"
	case UnitPercent:
		return "%"
	case UnitVw:
		return "vw"
	case UnitVh:
		return "vh"
	}
	return "?"
}

// Length is a tagged length value. Magnitude is carried as float32 per
// spec.md §3; resolving it to absolute pixels requires a ResolutionContext.
type Length struct {
	Unit      LengthUnit
	Magnitude float32
}

// Px constructs an already-absolute length.
func Px(v float32) Length { return Length{Unit: UnitPx, Magnitude: v} }

// IsAbsolute reports whether the length is already expressed in pixels.
func (l Length) IsAbsolute() bool { return l.Unit == UnitPx }

// IsRelative reports whether resolving l to pixels needs a
// ResolutionContext (anything but UnitPx).
func (l Length) IsRelative() bool { return l.Unit != UnitPx }

// ResolutionContext supplies everything a relative Length needs to
// resolve to absolute pixels (spec.md §3): root/current font sizes, an
// optional percentage basis, and viewport dimensions.
type ResolutionContext struct {
	RootFontSize    float32
	CurrentFontSize float32
	ViewportWidth   float32
	ViewportHeight  float32

	// HasPercentBasis/PercentBasis: a percentage has no meaning without a
	// basis (e.g. containing-block width). When the basis is not known at
	// compute time the caller leaves HasPercentBasis false and the length
	// must be retained rather than resolved (spec.md §3 invariant v).
	HasPercentBasis bool
	PercentBasis    float32
}

// ResolvePixels resolves l to an absolute pixel value given ctx. ok is
// false only for a percentage without ctx.HasPercentBasis, in which case
// the caller must retain the percentage (invariant v) rather than use the
// returned value.
func (l Length) ResolvePixels(ctx ResolutionContext) (px float32, ok bool) {
	switch l.Unit {
	case UnitPx:
		return l.Magnitude, true
	case UnitEm:
		return l.Magnitude * ctx.CurrentFontSize, true
	case UnitRem:
		return l.Magnitude * ctx.RootFontSize, true
	case UnitVw:
		return l.Magnitude * ctx.ViewportWidth / 100, true
	case UnitVh:
		return l.Magnitude * ctx.ViewportHeight / 100, true
	case UnitPercent:
		if !ctx.HasPercentBasis {
			return 0, false
		}
		return l.Magnitude * ctx.PercentBasis / 100, true
	}
	return 0, false
}
