package sar

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"sarconf/internal/chronogram"
	"sarconf/internal/config"
	"sarconf/internal/geometry"
)

// ErrInvalidParams is wrapped by Validate for values the command line refuses.
var ErrInvalidParams = errors.New("sar: invalid parameters")

// Params is one snapshot of every value an operator can enter. It is passed
// by value; nothing downstream keeps a reference to it.
type Params struct {
	Name     string
	Bistatic bool

	// Antenna (degrees)
	ElevationAperture float64
	AzimuthAperture   float64

	// Carrier
	Velocity   float64 // m/s
	Height     float64 // m
	LookAngle  float64 // degrees, interpreted per Convention
	Convention geometry.AngleConvention

	// Transmission (µs)
	PRI        float64
	TxOffset   float64
	TxDuration float64
	Agility    int

	// Receiver (µs unless noted)
	Channels      int
	SamplingFreq  float64 // MHz
	RxOffset      float64
	RxDuration    float64
	NoiseOffset   float64
	NoiseDuration float64
	ReinjOffset   float64
	ReinjDuration float64

	// Sensitivity
	PeakPower       float64 // W
	LossPower       float64 // dB
	AntennaGain     float64 // dB
	NoiseFactor     float64 // dB
	CenterFrequency float64 // GHz
	Bandwidth       float64 // MHz

	// Levels
	Backscatter float64 // dB
	RxGain      float64 // dB

	// Interferometry
	HeightAmbiguity         float64 // m
	HeightAmbiguityAccuracy float64 // m
}

// Default returns the startup parameters.
func Default() Params {
	return Params{
		Name:              config.DefaultName,
		ElevationAperture: config.DefaultElevationAperture,
		AzimuthAperture:   config.DefaultAzimuthAperture,
		Velocity:          config.DefaultVelocity,
		Height:            config.DefaultHeight,
		LookAngle:         config.DefaultLookAngle,
		Convention:        geometry.LookAngle,
		PRI:               config.DefaultPRI,
		TxOffset:          config.DefaultTxOffset,
		TxDuration:        config.DefaultTxDuration,
		Agility:           config.DefaultAgility,
		Channels:          config.DefaultChannels,
		RxOffset:          config.DefaultRxOffset,
		RxDuration:        config.DefaultRxDuration,
		NoiseOffset:       config.DefaultNoiseOffset,
		NoiseDuration:     config.DefaultNoiseDuration,
		ReinjOffset:       config.DefaultReinjOffset,
		ReinjDuration:     config.DefaultReinjDuration,
	}
}

// Validate rejects values outside the ranges the editor allows.
func (p Params) Validate() error {
	for _, f := range Fields() {
		v := f.Get(p)
		if math.IsNaN(v) || v < f.Min || v > f.Max {
			return fmt.Errorf("%w: %s = %g, want [%g, %g]", ErrInvalidParams, f.Key, v, f.Min, f.Max)
		}
	}
	return nil
}

// Clamp pulls every field into its editor range.
func (p Params) Clamp() Params {
	for _, f := range Fields() {
		f.Set(&p, f.Get(p))
	}
	return p
}

// PRF returns the pulse repetition frequency in Hz.
func (p Params) PRF() float64 {
	return 1e6 / p.PRI
}

// FinalPRF returns the PRF seen by one agility slot, in Hz.
func (p Params) FinalPRF() float64 {
	return p.PRF() / float64(p.Agility)
}

// Look returns the view angle as a look angle (from nadir), in degrees.
func (p Params) Look() float64 {
	return p.Convention.ToLook(p.LookAngle)
}

// Incidence returns the incidence angle in degrees.
func (p Params) Incidence() float64 {
	return geometry.Incidence(p.Look())
}

// TargetDistance returns the slant distance to the beam centre on ground, in m.
func (p Params) TargetDistance() float64 {
	return geometry.SlantDistance(p.Height, p.Look())
}

// NadirDelay returns the two-way travel time to the ground below the
// carrier, in µs.
func (p Params) NadirDelay() float64 {
	return p.Height / config.SpeedOfLight * 2e6
}

// FullResolutionDuration is the part of the receive window that follows the
// end of the transmitted pulse, in µs. It may be non-positive.
func (p Params) FullResolutionDuration() float64 {
	return p.RxDuration - p.TxOffset - p.TxDuration
}

// RangeWindow returns the near and far ground-plane radii (m) covered by the
// full-resolution receive window.
func (p Params) RangeWindow() (near, far float64) {
	near = 0.5e-6 * config.SpeedOfLight * p.RxOffset
	far = 0.5e-6 * config.SpeedOfLight * (p.RxOffset + p.FullResolutionDuration())
	return near, far
}

var (
	colorRed         = color.RGBA{R: 255, A: 255}
	colorWhite       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorLightYellow = color.RGBA{R: 255, G: 255, B: 0xE0, A: 255}
	colorGold        = color.RGBA{R: 255, G: 215, A: 255}
	colorYellow      = color.RGBA{R: 255, G: 255, A: 255}
)

// Windows returns the timing windows drawn on the chronogram, in legend order.
func (p Params) Windows() []chronogram.Window {
	windows := []chronogram.Window{
		{Name: "TX", Start: p.TxOffset, Duration: p.TxDuration, Height: 1, Color: colorRed},
		{Name: "Nadir", Start: p.TxOffset + p.NadirDelay(), Duration: p.TxDuration, Height: 0.2, Dashed: true, Color: colorWhite},
		{Name: "RX", Start: p.RxOffset, Duration: p.RxDuration, Height: 1, Color: colorLightYellow},
		{Name: "Noise", Start: p.NoiseOffset, Duration: p.NoiseDuration, Height: 0.8, Color: colorGold},
		{Name: "Reinj", Start: p.ReinjOffset, Duration: p.ReinjDuration, Height: 0.8, Color: colorGold},
	}
	if d := p.FullResolutionDuration(); d > 0 {
		windows = append(windows, chronogram.Window{
			Name: "RX (full resol)", Start: p.RxOffset, Duration: d, Height: 1, Dashed: true, Color: colorYellow,
		})
	}
	return windows
}

// Timeline folds Windows over the PRI.
func (p Params) Timeline() (chronogram.Timeline, error) {
	return chronogram.Fold(p.Windows(), p.PRI)
}

// Frame returns the viewing geometry: carrier above the origin, aperture
// centred on the view angle, range window from RangeWindow.
func (p Params) Frame() geometry.Frame {
	half := p.ElevationAperture / 2
	near, far := p.RangeWindow()
	return geometry.Frame{
		Carrier:     geometry.Point{X: 0, Y: p.Height},
		ViewAngle:   p.LookAngle,
		Convention:  p.Convention,
		Aperture:    geometry.Between(p.LookAngle-half, p.LookAngle+half),
		RangeWindow: geometry.Between(near, far),
	}
}

// Primitives projects Frame.
func (p Params) Primitives() []geometry.Primitive {
	return geometry.Project(p.Frame())
}
