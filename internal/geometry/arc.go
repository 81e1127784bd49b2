package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"sarconf/internal/config"
)

func deg2rad(d float64) float64 { return d * math.Pi / 180 }

func rad2deg(r float64) float64 { return r * 180 / math.Pi }

// Arc samples config.ArcSamples points of the circle of the given radius
// around center, from startDeg to endDeg inclusive. Angle 0 points along +X
// and angles grow downward: x = cx + r·cos(a), y = cy - r·sin(a).
func Arc(radius, startDeg, endDeg float64, center Point) Polyline {
	angles := floats.Span(make([]float64, config.ArcSamples), startDeg, endDeg)
	pts := make(Polyline, len(angles))
	for i, a := range angles {
		rad := deg2rad(a)
		pts[i] = Point{
			X: center.X + radius*math.Cos(rad),
			Y: center.Y - radius*math.Sin(rad),
		}
	}
	return pts
}

// VisibleArcEnd returns the end angle (degrees) of the arc that stays at or
// above ground for a circle of the given radius around a carrier at height.
// A circle that cannot reach the ground is drawn through the full quarter
// turn; otherwise it stops where it crosses y = 0.
func VisibleArcEnd(radius, height float64) float64 {
	if radius <= height {
		return 90
	}
	ratio := math.Max(-1, math.Min(1, height/radius))
	return 90 - rad2deg(math.Acos(ratio))
}

// VisibleArc samples the above-ground part of the range circle around center.
func VisibleArc(radius float64, center Point) Polyline {
	return Arc(radius, 0, VisibleArcEnd(radius, center.Y), center)
}
