package geometry

import "math"

// GroundIntersection returns where a ray leaving carrier at lookDeg from nadir
// meets y = 0.
func GroundIntersection(carrier Point, lookDeg float64) Point {
	return Point{X: carrier.X + carrier.Y*math.Tan(deg2rad(lookDeg)), Y: 0}
}

// Project builds the primitives of the geometry view for one frame: the
// carrier reference line, the view ray, the aperture lobe when Aperture is
// set, and the near/far range arcs when RangeWindow is set with near < far.
// Crossed aperture bounds are drawn as given.
func Project(f Frame) []Primitive {
	look := f.Convention.ToLook(f.ViewAngle)

	prims := make([]Primitive, 0, 5)
	prims = append(prims,
		Primitive{
			Kind:   KindCarrier,
			Label:  "Carrier",
			Points: Polyline{{X: 0, Y: 0}, f.Carrier},
			Style:  Style{Dashed: true, Color: colorWhite},
		},
		Primitive{
			Kind:   KindViewRay,
			Label:  "Target",
			Points: Polyline{f.Carrier, GroundIntersection(f.Carrier, look)},
			Style:  Style{Color: colorDarkGreen},
		},
	)

	if lo, hi, ok := f.Aperture.Get(); ok {
		prims = append(prims, Primitive{
			Kind:  KindLobe,
			Label: "Lobe",
			Points: Polyline{
				GroundIntersection(f.Carrier, f.Convention.ToLook(lo)),
				f.Carrier,
				GroundIntersection(f.Carrier, f.Convention.ToLook(hi)),
			},
			Style: Style{Color: colorBlue},
		})
	}

	if near, far, ok := f.RangeWindow.Get(); ok && near < far {
		prims = append(prims,
			Primitive{
				Kind:   KindNearRange,
				Label:  "RX Window",
				Points: VisibleArc(near, f.Carrier),
				Style:  Style{Color: colorYellow, Width: 2},
			},
			Primitive{
				Kind:   KindFarRange,
				Label:  "RX Window",
				Points: VisibleArc(far, f.Carrier),
				Style:  Style{Dashed: true, Color: colorYellow, Width: 2},
			},
		)
	}

	return prims
}

// Incidence returns the incidence angle (degrees) for a look angle.
func Incidence(lookDeg float64) float64 {
	return 90 - lookDeg
}

// SlantDistance returns the carrier-to-target distance along the view ray.
func SlantDistance(height, lookDeg float64) float64 {
	return height / math.Cos(deg2rad(lookDeg))
}
