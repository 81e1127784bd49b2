package radar

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Path is any ordered point source: geometry.Polyline, chronogram.Outline,
// or gonum plotter.XYs.
type Path interface {
	Len() int
	XY(i int) (x, y float64)
}

// Viewport is the world-space rectangle shown on a canvas.
type Viewport struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// FitPaths returns the smallest viewport holding every finite point of paths.
// An empty or all-degenerate input yields the unit square at the origin.
func FitPaths(paths ...Path) Viewport {
	var xs, ys []float64
	for _, p := range paths {
		for i := 0; i < p.Len(); i++ {
			x, y := p.XY(i)
			if isFinite(x) && isFinite(y) {
				xs = append(xs, x)
				ys = append(ys, y)
			}
		}
	}
	if len(xs) == 0 {
		return Viewport{MaxX: 1, MaxY: 1}
	}
	return Viewport{
		MinX: floats.Min(xs), MaxX: floats.Max(xs),
		MinY: floats.Min(ys), MaxY: floats.Max(ys),
	}.nonEmpty()
}

// Pad grows the viewport by frac of its size on every side.
func (v Viewport) Pad(frac float64) Viewport {
	dx := (v.MaxX - v.MinX) * frac
	dy := (v.MaxY - v.MinY) * frac
	return Viewport{v.MinX - dx, v.MaxX + dx, v.MinY - dy, v.MaxY + dy}
}

// EqualAspect grows the viewport so one world unit covers the same on-screen
// distance on both axes of a width x height cell grid. aspect is the
// cell width/height ratio.
func (v Viewport) EqualAspect(width, height int, aspect float64) Viewport {
	if width < 1 || height < 1 {
		return v
	}
	w, h := v.MaxX-v.MinX, v.MaxY-v.MinY
	// World units per column, and per row expressed in columns.
	perCol := w / float64(width)
	perRow := h / (float64(height) / aspect)
	if perCol < perRow {
		grow := (perRow*float64(width) - w) / 2
		v.MinX -= grow
		v.MaxX += grow
	} else {
		grow := (perCol*float64(height)/aspect - h) / 2
		v.MinY -= grow
		v.MaxY += grow
	}
	return v
}

func (v Viewport) nonEmpty() Viewport {
	if v.MaxX-v.MinX <= 0 {
		v.MinX -= 0.5
		v.MaxX += 0.5
	}
	if v.MaxY-v.MinY <= 0 {
		v.MinY -= 0.5
		v.MaxY += 0.5
	}
	return v
}

// ToCell maps a world point to a fractional cell position. Row 0 is the top.
func (v Viewport) ToCell(x, y float64, width, height int) (col, row float64) {
	col = (x - v.MinX) / (v.MaxX - v.MinX) * float64(width-1)
	row = (v.MaxY - y) / (v.MaxY - v.MinY) * float64(height-1)
	return col, row
}

// LineChar returns the character that best follows a segment direction
// (dx columns right, dy rows down).
func LineChar(dx, dy float64) rune {
	angle := NormalizeAngle(math.Atan2(-dy, dx))
	// 8 sectors for character selection
	sector := int(math.Round(angle/(math.Pi/4))) % 8

	switch sector {
	case 0, 4: // horizontal
		return '-'
	case 1, 5: // rising
		return '/'
	case 2, 6: // vertical
		return '|'
	case 3, 7: // falling
		return '\\'
	default:
		return '.'
	}
}

// NormalizeAngle wraps an angle to [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
