package geometry

import (
	"fmt"
	"image/color"
	"strings"
)

// Point is a position in the vertical plane: X along track, Y height (m).
type Point struct {
	X, Y float64
}

// Polyline is an ordered point sequence. It satisfies the Len/XY point-source
// interface used by the renderers.
type Polyline []Point

func (p Polyline) Len() int { return len(p) }

func (p Polyline) XY(i int) (float64, float64) { return p[i].X, p[i].Y }

// Bounds is an optional (lo, hi) pair. The zero value is absent.
type Bounds struct {
	lo, hi float64
	ok     bool
}

// Between returns present bounds. No ordering is enforced.
func Between(lo, hi float64) Bounds {
	return Bounds{lo: lo, hi: hi, ok: true}
}

// Get returns the pair and whether it is present.
func (b Bounds) Get() (lo, hi float64, ok bool) {
	return b.lo, b.hi, b.ok
}

// IsSet reports whether the bounds are present.
func (b Bounds) IsSet() bool { return b.ok }

func (b Bounds) String() string {
	if !b.ok {
		return "none"
	}
	return fmt.Sprintf("[%g, %g]", b.lo, b.hi)
}

// AngleConvention selects the reference the view angle is measured from.
type AngleConvention int

const (
	// LookAngle is measured from nadir: 0 points straight down.
	LookAngle AngleConvention = iota
	// DepressionAngle is measured from the horizontal: 90 points straight down.
	DepressionAngle
)

func (c AngleConvention) String() string {
	switch c {
	case DepressionAngle:
		return "depression"
	default:
		return "look"
	}
}

// ParseAngleConvention accepts "look" or "depression" (case-insensitive).
func ParseAngleConvention(s string) (AngleConvention, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "look", "":
		return LookAngle, nil
	case "depression":
		return DepressionAngle, nil
	}
	return LookAngle, fmt.Errorf("geometry: unknown angle convention %q (want look or depression)", s)
}

// ToLook converts an angle in this convention to a look angle in degrees.
func (c AngleConvention) ToLook(deg float64) float64 {
	if c == DepressionAngle {
		return 90 - deg
	}
	return deg
}

// Frame is one immutable snapshot of the viewing geometry.
type Frame struct {
	Carrier     Point
	ViewAngle   float64 // degrees, interpreted per Convention
	Convention  AngleConvention
	Aperture    Bounds // angle bounds in degrees, same convention as ViewAngle
	RangeWindow Bounds // ground-plane radii in meters
}

// Kind identifies what a Primitive represents.
type Kind int

const (
	KindCarrier Kind = iota
	KindViewRay
	KindLobe
	KindNearRange
	KindFarRange
)

func (k Kind) String() string {
	switch k {
	case KindCarrier:
		return "carrier"
	case KindViewRay:
		return "view-ray"
	case KindLobe:
		return "lobe"
	case KindNearRange:
		return "near-range"
	case KindFarRange:
		return "far-range"
	default:
		return "unknown"
	}
}

// Style carries drawing hints only; it never affects the computed points.
type Style struct {
	Dashed bool
	Color  color.Color
	Width  float64 // points, 0 means renderer default
}

// Primitive is a labeled polyline produced by Project.
type Primitive struct {
	Kind   Kind
	Label  string
	Points Polyline
	Style  Style
}

var (
	colorWhite     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorDarkGreen = color.RGBA{G: 100, A: 255}
	colorBlue      = color.RGBA{B: 255, A: 255}
	colorYellow    = color.RGBA{R: 255, G: 255, A: 255}
)
