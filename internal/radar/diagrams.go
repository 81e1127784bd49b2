package radar

import (
	"fmt"
	"strings"

	"sarconf/internal/chronogram"
	"sarconf/internal/config"
	"sarconf/internal/geometry"
)

// RenderChronogram draws the folded timeline across the full visible span,
// with a time axis label line underneath. height includes the label line.
func RenderChronogram(width, height int, tl chronogram.Timeline) string {
	if width < 10 || height < 3 {
		return ""
	}
	view := Viewport{MinX: 0, MaxX: tl.Span(), MinY: 0, MaxY: config.ChronogramTop}
	if !isFinite(view.MaxX) || view.MaxX <= 0 {
		view.MaxX = 1
	}

	c := NewCanvas(width, height-1, view)
	c.HLine(0, '_')

	// Period boundaries
	boundary := c.Layer(nil, false)
	for i := 1; i < tl.Replicas; i++ {
		x := tl.Period * float64(i)
		c.Plot(boundary, geometry.Polyline{{X: x, Y: 0}, {X: x, Y: config.ChronogramTop}}, true)
	}

	for _, in := range tl.Instances {
		layer := c.Layer(in.Color, in.Replica == 0)
		c.Plot(layer, in.Outline(), in.Dashed)
	}

	labels := axisLabels(width, "0 µs", fmt.Sprintf("%.1f µs", tl.Span()))
	return c.Render() + "\n" + labels
}

// RenderGeometry draws the projected primitives on an equal-aspect canvas.
// height includes the label line.
func RenderGeometry(width, height int, prims []geometry.Primitive) string {
	if width < 10 || height < 3 {
		return ""
	}
	paths := make([]Path, len(prims))
	for i, p := range prims {
		paths[i] = p.Points
	}
	view := FitPaths(paths...).Pad(0.05).EqualAspect(width, height-1, config.AspectRatio)

	c := NewCanvas(width, height-1, view)
	c.HLine(0, '_')
	for _, p := range prims {
		c.Plot(c.Layer(p.Style.Color, p.Style.Width > 1), p.Points, p.Style.Dashed)
	}

	labels := axisLabels(width,
		fmt.Sprintf("%.0f m", view.MinX),
		fmt.Sprintf("%.0f m", view.MaxX))
	return c.Render() + "\n" + labels
}

// RenderLegend lists primitive labels once each, in order of appearance.
func RenderLegend(prims []geometry.Primitive) string {
	seen := make(map[string]bool)
	var parts []string
	for _, p := range prims {
		if seen[p.Label] {
			continue
		}
		seen[p.Label] = true
		mark := "-"
		if p.Style.Dashed {
			mark = "- -"
		}
		fg := colorDefault
		if p.Style.Color != nil {
			fg = HexColor(p.Style.Color)
		}
		parts = append(parts, styleLabel.Foreground(fg).Render(mark+" "+p.Label))
	}
	return strings.Join(parts, "  ")
}
