package chronogram

import (
	"fmt"
	"image/color"
)

// Window is a named interval on the pulse timeline. Times are in µs.
type Window struct {
	Name     string
	Start    float64
	Duration float64
	Height   float64     // Normalized amplitude, drawing only
	Dashed   bool
	Color    color.Color // nil lets the renderer pick
}

// End returns Start + Duration.
func (w Window) End() float64 {
	return w.Start + w.Duration
}

// Instance is one folded copy of a Window, shifted by Replica periods.
type Instance struct {
	Window
	Replica uint
	Label   string
}

// Alpha returns the fill opacity for the instance; later replicas fade.
func (in Instance) Alpha() float64 {
	return 0.6 / float64(in.Replica+1)
}

// Outline returns the rectangle drawn for the instance:
// (start,0) (start,h) (end,h) (end,0).
func (in Instance) Outline() Outline {
	s, e, h := in.Start, in.End(), in.Height
	return Outline{{s, 0}, {s, h}, {e, h}, {e, 0}}
}

// Outline is a four-point polyline. It satisfies the Len/XY point-source
// interface used by the renderers.
type Outline [4][2]float64

func (o Outline) Len() int { return len(o) }

func (o Outline) XY(i int) (float64, float64) { return o[i][0], o[i][1] }

func replicaLabel(name string, replica uint) string {
	if replica == 0 {
		return name
	}
	return fmt.Sprintf("%s (Ambiguity %d)", name, replica)
}
