package radar

import (
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sarconf/internal/chronogram"
	"sarconf/internal/geometry"
	"sarconf/internal/sar"
)

func TestViewportToCellCorners(t *testing.T) {
	v := Viewport{MinX: 0, MaxX: 100, MinY: 0, MaxY: 10}
	col, row := v.ToCell(0, 10, 11, 6)
	assert.Equal(t, 0.0, col)
	assert.Equal(t, 0.0, row)

	col, row = v.ToCell(100, 0, 11, 6)
	assert.Equal(t, 10.0, col)
	assert.Equal(t, 5.0, row)
}

func TestFitPaths(t *testing.T) {
	v := FitPaths(
		geometry.Polyline{{X: -3, Y: 1}, {X: 4, Y: math.NaN()}},
		geometry.Polyline{{X: 2, Y: 9}},
	)
	assert.Equal(t, Viewport{MinX: -3, MaxX: 2, MinY: 1, MaxY: 9}, v)

	assert.Equal(t, Viewport{MaxX: 1, MaxY: 1}, FitPaths())

	single := FitPaths(geometry.Polyline{{X: 5, Y: 5}})
	assert.Greater(t, single.MaxX, single.MinX)
	assert.Greater(t, single.MaxY, single.MinY)
}

func TestEqualAspect(t *testing.T) {
	v := Viewport{MinX: 0, MaxX: 100, MinY: 0, MaxY: 100}.EqualAspect(40, 10, 0.5)
	// 40 columns span the same distance as 20 rows, so x must be twice y.
	w, h := v.MaxX-v.MinX, v.MaxY-v.MinY
	assert.InDelta(t, 2.0, w/h, 1e-9)
	assert.InDelta(t, 50.0, (v.MinX+v.MaxX)/2, 1e-9)
}

func TestLineChar(t *testing.T) {
	assert.Equal(t, '-', LineChar(5, 0))
	assert.Equal(t, '-', LineChar(-5, 0))
	assert.Equal(t, '|', LineChar(0, 3))
	assert.Equal(t, '/', LineChar(2, -2))
	assert.Equal(t, '\\', LineChar(2, 2))
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0.0, NormalizeAngle(2*math.Pi), 1e-12)
	assert.InDelta(t, 3*math.Pi/2, NormalizeAngle(-math.Pi/2), 1e-12)
}

func TestCanvasPlotHorizontalLine(t *testing.T) {
	c := NewCanvas(11, 3, Viewport{MinX: 0, MaxX: 10, MinY: 0, MaxY: 2})
	layer := c.Layer(color.RGBA{R: 255, A: 255}, false)
	c.Plot(layer, geometry.Polyline{{X: 0, Y: 1}, {X: 10, Y: 1}}, false)

	lines := strings.Split(c.String(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Repeat("-", 11), lines[1])
	assert.Equal(t, strings.Repeat(" ", 11), lines[0])
}

func TestCanvasDashedSkipsCells(t *testing.T) {
	c := NewCanvas(12, 1, Viewport{MinX: 0, MaxX: 11, MinY: -1, MaxY: 1})
	c.Plot(c.Layer(nil, false), geometry.Polyline{{X: 0, Y: 0}, {X: 11, Y: 0}}, true)
	assert.Equal(t, "--  --  --  ", c.String())
}

func TestCanvasAxisDoesNotOverwritePlot(t *testing.T) {
	c := NewCanvas(5, 3, Viewport{MinX: 0, MaxX: 4, MinY: 0, MaxY: 2})
	c.Plot(c.Layer(nil, false), geometry.Polyline{{X: 2, Y: 0}, {X: 2, Y: 2}}, false)
	c.HLine(0, '_')
	assert.Equal(t, '|', c.At(2, 2))
	assert.Equal(t, '_', c.At(0, 2))
	assert.Equal(t, rune(0), c.At(9, 9))
}

func TestCanvasClipsOutsidePoints(t *testing.T) {
	c := NewCanvas(10, 5, Viewport{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1})
	assert.NotPanics(t, func() {
		c.Plot(c.Layer(nil, false), geometry.Polyline{{X: -1e9, Y: -1e9}, {X: 1e9, Y: 1e9}}, false)
		c.Plot(c.Layer(nil, false), geometry.Polyline{{X: math.Inf(1), Y: 0}, {X: 0, Y: 0}}, false)
	})
	w, h := c.Size()
	assert.Equal(t, 10, w)
	assert.Equal(t, 5, h)
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#FFD700"), HexColor(color.RGBA{R: 255, G: 215, A: 255}))
}

func TestRenderChronogramDimensions(t *testing.T) {
	tl, err := sar.Default().Timeline()
	require.NoError(t, err)

	out := RenderChronogram(60, 8, tl)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 8)
	for _, l := range lines[:7] {
		assert.Equal(t, 60, lipgloss.Width(l))
	}
	assert.Contains(t, lines[7], "100.0 µs")

	assert.Empty(t, RenderChronogram(5, 2, tl))
}

func TestRenderChronogramZeroTimeline(t *testing.T) {
	assert.NotPanics(t, func() {
		RenderChronogram(40, 6, chronogram.Timeline{})
	})
}

func TestRenderGeometry(t *testing.T) {
	prims := sar.Default().Primitives()
	out := RenderGeometry(80, 20, prims)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 20)
	assert.Contains(t, lines[19], " m")

	legend := RenderLegend(prims)
	for _, label := range []string{"Carrier", "Target", "Lobe", "RX Window"} {
		assert.Contains(t, legend, label)
	}
	assert.Equal(t, 1, strings.Count(legend, "RX Window"))
}
