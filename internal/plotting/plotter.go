package plotting

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"sarconf/internal/chronogram"
	"sarconf/internal/config"
	"sarconf/internal/geometry"
	"sarconf/internal/monitoring"
	"sarconf/internal/sar"
)

// Formats accepted by Export. gonum/plot picks the encoder from the extension.
var Formats = []string{"png", "svg", "pdf"}

var dashes = []vg.Length{vg.Points(5), vg.Points(5)}

// Chronogram builds the timing plot: one filled outline per folded instance,
// later replicas more transparent, x axis covering the whole visible span.
func Chronogram(tl chronogram.Timeline) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Chronogram"
	p.X.Label.Text = "Time (µs)"
	p.X.Min = 0
	p.X.Max = tl.Span()
	p.Y.Min = 0
	p.Y.Max = config.ChronogramTop
	p.Add(plotter.NewGrid())

	for _, in := range tl.Instances {
		line, err := plotter.NewLine(outlineXYs(in.Outline()))
		if err != nil {
			return nil, fmt.Errorf("instance %q: %w", in.Label, err)
		}
		line.Width = vg.Points(2)
		if in.Color != nil {
			line.Color = in.Color
		}
		line.FillColor = withAlpha(line.Color, in.Alpha())
		if in.Dashed {
			line.Dashes = dashes
		}
		p.Add(line)
		p.Legend.Add(in.Label, line)
	}

	p.Legend.Top = false
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = 10
	return p, nil
}

// Geometry builds the side view of the carrier, beam and range window.
func Geometry(prims []geometry.Primitive) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Geometry"
	p.X.Label.Text = "Ground range (m)"
	p.Y.Label.Text = "Height (m)"
	p.Add(plotter.NewGrid())

	for _, prim := range prims {
		line, err := plotter.NewLine(polylineXYs(prim.Points))
		if err != nil {
			return nil, fmt.Errorf("primitive %s: %w", prim.Kind, err)
		}
		line.Width = vg.Points(1)
		if prim.Style.Width > 0 {
			line.Width = vg.Points(prim.Style.Width)
		}
		if prim.Style.Color != nil {
			line.Color = visibleOnWhite(prim.Style.Color)
		}
		if prim.Style.Dashed {
			line.Dashes = dashes
		}
		p.Add(line)
		// Near and far arcs share a label; list it once.
		if prim.Kind != geometry.KindFarRange {
			p.Legend.Add(prim.Label, line)
		}
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
	return p, nil
}

// Export writes chronogram.<format> and geometry.<format> for params into dir
// and returns the written paths.
func Export(dir, format string, params sar.Params) ([]string, error) {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	if !validFormat(format) {
		return nil, fmt.Errorf("unsupported export format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	tl, err := params.Timeline()
	if err != nil {
		return nil, err
	}
	chrono, err := Chronogram(tl)
	if err != nil {
		return nil, fmt.Errorf("build chronogram plot: %w", err)
	}
	prims := params.Primitives()
	geo, err := Geometry(prims)
	if err != nil {
		return nil, fmt.Errorf("build geometry plot: %w", err)
	}

	w := vg.Length(config.ExportWidthInches) * vg.Inch
	h := vg.Length(config.ExportHeightInches) * vg.Inch

	chronoFile := filepath.Join(dir, "chronogram."+format)
	if err := chrono.Save(w, h/2, chronoFile); err != nil {
		return nil, fmt.Errorf("save chronogram plot: %w", err)
	}
	geoFile := filepath.Join(dir, "geometry."+format)
	if err := geo.Save(w, h, geoFile); err != nil {
		return nil, fmt.Errorf("save geometry plot: %w", err)
	}

	monitoring.Logf("exported %s and %s (%d replicas, %d primitives)", chronoFile, geoFile, tl.Replicas, len(prims))
	return []string{chronoFile, geoFile}, nil
}

func validFormat(f string) bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

func outlineXYs(o chronogram.Outline) plotter.XYs {
	xys := make(plotter.XYs, o.Len())
	for i := range xys {
		xys[i].X, xys[i].Y = o.XY(i)
	}
	return xys
}

func polylineXYs(pl geometry.Polyline) plotter.XYs {
	xys := make(plotter.XYs, len(pl))
	for i, pt := range pl {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	return xys
}

func withAlpha(c color.Color, alpha float64) color.Color {
	if c == nil {
		c = color.Black
	}
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(alpha * 255)}
}

// visibleOnWhite darkens pure white, which the terminal uses on a black
// background but disappears on a white page.
func visibleOnWhite(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	if r == 0xFFFF && g == 0xFFFF && b == 0xFFFF {
		return color.Gray{Y: 96}
	}
	return c
}
