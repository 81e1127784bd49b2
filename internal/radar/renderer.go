package radar

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorAxis    = lipgloss.Color("#004A0A")
	colorDefault = lipgloss.Color("#00CC33")

	styleAxis  = lipgloss.NewStyle().Foreground(colorAxis)
	styleLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#008F11"))
)

type cell struct {
	ch    rune
	layer int // index into Canvas.styles, -1 for axis
}

// Canvas rasterizes world-space polylines onto a character grid.
type Canvas struct {
	width, height int
	view          Viewport
	cells         []cell
	styles        []lipgloss.Style
}

// NewCanvas creates an empty canvas showing view.
func NewCanvas(width, height int, view Viewport) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c := &Canvas{
		width:  width,
		height: height,
		view:   view,
		cells:  make([]cell, width*height),
	}
	for i := range c.cells {
		c.cells[i] = cell{ch: ' ', layer: -1}
	}
	return c
}

// Size returns the canvas dimensions in cells.
func (c *Canvas) Size() (width, height int) { return c.width, c.height }

// At returns the character at a cell, or 0 when outside the canvas.
func (c *Canvas) At(col, row int) rune {
	if col < 0 || col >= c.width || row < 0 || row >= c.height {
		return 0
	}
	return c.cells[row*c.width+col].ch
}

// Layer registers a drawing style and returns its handle for Plot.
// A nil col uses the default foreground.
func (c *Canvas) Layer(col color.Color, bold bool) int {
	fg := colorDefault
	if col != nil {
		fg = HexColor(col)
	}
	c.styles = append(c.styles, lipgloss.NewStyle().Foreground(fg).Bold(bold))
	return len(c.styles) - 1
}

// HLine draws a horizontal axis at world height y.
func (c *Canvas) HLine(y float64, ch rune) {
	_, row := c.view.ToCell(c.view.MinX, y, c.width, c.height)
	r := int(math.Round(row))
	for col := 0; col < c.width; col++ {
		c.set(col, r, ch, -1)
	}
}

// Plot draws the segments of p on layer. Dashed paths skip every other
// pair of cells. Non-finite points break the path.
func (c *Canvas) Plot(layer int, p Path, dashed bool) {
	step := 0
	for i := 1; i < p.Len(); i++ {
		x0, y0 := p.XY(i - 1)
		x1, y1 := p.XY(i)
		if !isFinite(x0) || !isFinite(y0) || !isFinite(x1) || !isFinite(y1) {
			continue
		}
		c0, r0 := c.view.ToCell(x0, y0, c.width, c.height)
		c1, r1 := c.view.ToCell(x1, y1, c.width, c.height)
		ch := LineChar(c1-c0, r1-r0)
		step = c.segment(layer, c0, r0, c1, r1, ch, dashed, step)
	}
}

// segment walks a DDA line between two fractional cells.
func (c *Canvas) segment(layer int, c0, r0, c1, r1 float64, ch rune, dashed bool, step int) int {
	n := int(math.Ceil(math.Max(math.Abs(c1-c0), math.Abs(r1-r0))))
	// Clamp pathological lengths from far-off points.
	if limit := 4 * (c.width + c.height); n > limit {
		n = limit
	}
	if n == 0 {
		if !dashed || (step/2)%2 == 0 {
			c.set(int(math.Round(c0)), int(math.Round(r0)), ch, layer)
		}
		return step + 1
	}
	for s := 0; s <= n; s++ {
		t := float64(s) / float64(n)
		col := int(math.Round(c0 + t*(c1-c0)))
		row := int(math.Round(r0 + t*(r1-r0)))
		if !dashed || (step/2)%2 == 0 {
			c.set(col, row, ch, layer)
		}
		step++
	}
	return step
}

func (c *Canvas) set(col, row int, ch rune, layer int) {
	if col < 0 || col >= c.width || row < 0 || row >= c.height {
		return
	}
	idx := row*c.width + col
	// Axes never overwrite plotted cells.
	if layer < 0 && c.cells[idx].layer >= 0 {
		return
	}
	c.cells[idx] = cell{ch: ch, layer: layer}
}

// Render produces the canvas as a styled multi-line string.
func (c *Canvas) Render() string {
	var sb strings.Builder
	for row := 0; row < c.height; row++ {
		for col := 0; col < c.width; col++ {
			cl := c.cells[row*c.width+col]
			switch {
			case cl.ch == ' ':
				sb.WriteByte(' ')
			case cl.layer < 0:
				sb.WriteString(styleAxis.Render(string(cl.ch)))
			default:
				sb.WriteString(c.styles[cl.layer].Render(string(cl.ch)))
			}
		}
		if row < c.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// String returns the canvas without styling.
func (c *Canvas) String() string {
	var sb strings.Builder
	for row := 0; row < c.height; row++ {
		for col := 0; col < c.width; col++ {
			sb.WriteRune(c.cells[row*c.width+col].ch)
		}
		if row < c.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// HexColor converts an image color to a lipgloss colour string.
func HexColor(col color.Color) lipgloss.Color {
	r, g, b, _ := col.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", r>>8, g>>8, b>>8))
}

// axisLabels lays out a left and right label on one line of the given width.
func axisLabels(width int, left, right string) string {
	gap := width - len([]rune(left)) - len([]rune(right))
	if gap < 1 {
		return styleLabel.Render(left)
	}
	return styleLabel.Render(left + strings.Repeat(" ", gap) + right)
}
