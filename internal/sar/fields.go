package sar

import "math"

// Group names used to section the parameter list.
const (
	GroupCarrier     = "Carrier"
	GroupAntenna     = "Antenna"
	GroupTransmit    = "Transmission"
	GroupReceive     = "Receiver"
	GroupSensitivity = "Sensitivity"
	GroupLevels      = "Levels"
	GroupInterfero   = "Interferometry"
)

var unbounded = math.Inf(1)

// Field describes one editable numeric parameter. The same table backs the
// command-line flags and the interactive editor.
type Field struct {
	Key   string // flag name
	Label string
	Unit  string
	Group string
	Help  string
	Step  float64
	Min   float64
	Max   float64

	float func(*Params) *float64
	count func(*Params) *int
}

// IsCount reports whether the field holds an integer.
func (f Field) IsCount() bool { return f.count != nil }

// Get returns the field value from p.
func (f Field) Get(p Params) float64 {
	if f.count != nil {
		return float64(*f.count(&p))
	}
	return *f.float(&p)
}

// Set stores v into p, clamped to [Min, Max]. NaN is treated as zero.
func (f Field) Set(p *Params, v float64) {
	if math.IsNaN(v) {
		v = 0
	}
	v = math.Max(f.Min, math.Min(f.Max, v))
	if f.count != nil {
		*f.count(p) = int(math.Round(v))
		return
	}
	*f.float(p) = v
}

// Nudge moves the field by steps increments.
func (f Field) Nudge(p *Params, steps float64) {
	f.Set(p, f.Get(*p)+steps*f.Step)
}

// FloatRef returns the address of a float field inside p, or nil for counts.
func (f Field) FloatRef(p *Params) *float64 {
	if f.float == nil {
		return nil
	}
	return f.float(p)
}

// CountRef returns the address of an integer field inside p, or nil.
func (f Field) CountRef(p *Params) *int {
	if f.count == nil {
		return nil
	}
	return f.count(p)
}

// Fields returns the editable parameters in display order.
func Fields() []Field {
	return []Field{
		{Key: "height", Label: "Height", Unit: "m", Group: GroupCarrier, Step: 100, Max: unbounded,
			Help: "Carrier height above ground", float: func(p *Params) *float64 { return &p.Height }},
		{Key: "velocity", Label: "Velocity", Unit: "m/s", Group: GroupCarrier, Step: 10, Max: unbounded,
			Help: "Carrier ground speed", float: func(p *Params) *float64 { return &p.Velocity }},
		{Key: "look-angle", Label: "View angle", Unit: "°", Group: GroupCarrier, Step: 1, Max: 90,
			Help: "Beam centre angle (see --angle-convention)", float: func(p *Params) *float64 { return &p.LookAngle }},

		{Key: "elevation-aperture", Label: "Elev. aperture", Unit: "°", Group: GroupAntenna, Step: 1, Max: 360,
			Help: "Elevation beam width", float: func(p *Params) *float64 { return &p.ElevationAperture }},
		{Key: "azimuth-aperture", Label: "Azim. aperture", Unit: "°", Group: GroupAntenna, Step: 1, Max: 360,
			Help: "Azimuth beam width", float: func(p *Params) *float64 { return &p.AzimuthAperture }},

		{Key: "pri", Label: "PRI", Unit: "µs", Group: GroupTransmit, Step: 1, Min: 1, Max: unbounded,
			Help: "Pulse repetition interval", float: func(p *Params) *float64 { return &p.PRI }},
		{Key: "tx-offset", Label: "TX offset", Unit: "µs", Group: GroupTransmit, Step: 0.5, Max: unbounded,
			Help: "Pulse start within the PRI", float: func(p *Params) *float64 { return &p.TxOffset }},
		{Key: "tx-duration", Label: "Pulse duration", Unit: "µs", Group: GroupTransmit, Step: 0.5, Max: unbounded,
			Help: "Transmitted pulse length", float: func(p *Params) *float64 { return &p.TxDuration }},
		{Key: "agility", Label: "Agility", Group: GroupTransmit, Step: 1, Min: 1, Max: math.MaxInt32,
			Help: "Number of frequency agility slots", count: func(p *Params) *int { return &p.Agility }},

		{Key: "channels", Label: "Channels", Group: GroupReceive, Step: 1, Min: 1, Max: math.MaxInt32,
			Help: "Receive channel count", count: func(p *Params) *int { return &p.Channels }},
		{Key: "sampling-freq", Label: "Sampling freq.", Unit: "MHz", Group: GroupReceive, Step: 1, Max: unbounded,
			Help: "ADC sampling frequency", float: func(p *Params) *float64 { return &p.SamplingFreq }},
		{Key: "rx-offset", Label: "RX offset", Unit: "µs", Group: GroupReceive, Step: 0.5, Max: unbounded,
			Help: "Receive window start", float: func(p *Params) *float64 { return &p.RxOffset }},
		{Key: "rx-duration", Label: "RX duration", Unit: "µs", Group: GroupReceive, Step: 0.5, Max: unbounded,
			Help: "Receive window length", float: func(p *Params) *float64 { return &p.RxDuration }},
		{Key: "noise-offset", Label: "Noise offset", Unit: "µs", Group: GroupReceive, Step: 0.5, Max: unbounded,
			Help: "Noise measurement start", float: func(p *Params) *float64 { return &p.NoiseOffset }},
		{Key: "noise-duration", Label: "Noise duration", Unit: "µs", Group: GroupReceive, Step: 0.5, Max: unbounded,
			Help: "Noise measurement length", float: func(p *Params) *float64 { return &p.NoiseDuration }},
		{Key: "reinj-offset", Label: "Reinj. offset", Unit: "µs", Group: GroupReceive, Step: 0.5, Max: unbounded,
			Help: "Calibration reinjection start", float: func(p *Params) *float64 { return &p.ReinjOffset }},
		{Key: "reinj-duration", Label: "Reinj. duration", Unit: "µs", Group: GroupReceive, Step: 0.5, Max: unbounded,
			Help: "Calibration reinjection length", float: func(p *Params) *float64 { return &p.ReinjDuration }},

		{Key: "peak-power", Label: "Peak power", Unit: "W", Group: GroupSensitivity, Step: 1, Max: unbounded,
			float: func(p *Params) *float64 { return &p.PeakPower }},
		{Key: "loss-power", Label: "Losses", Unit: "dB", Group: GroupSensitivity, Step: 0.5, Min: -unbounded, Max: unbounded,
			float: func(p *Params) *float64 { return &p.LossPower }},
		{Key: "antenna-gain", Label: "Antenna gain", Unit: "dB", Group: GroupSensitivity, Step: 0.5, Min: -unbounded, Max: unbounded,
			float: func(p *Params) *float64 { return &p.AntennaGain }},
		{Key: "noise-factor", Label: "Noise factor", Unit: "dB", Group: GroupSensitivity, Step: 0.5, Min: -unbounded, Max: unbounded,
			float: func(p *Params) *float64 { return &p.NoiseFactor }},
		{Key: "center-frequency", Label: "Centre freq.", Unit: "GHz", Group: GroupSensitivity, Step: 0.1, Max: unbounded,
			float: func(p *Params) *float64 { return &p.CenterFrequency }},
		{Key: "bandwidth", Label: "Bandwidth", Unit: "MHz", Group: GroupSensitivity, Step: 1, Max: unbounded,
			float: func(p *Params) *float64 { return &p.Bandwidth }},

		{Key: "backscatter", Label: "Backscatter", Unit: "dB", Group: GroupLevels, Step: 0.5, Min: -unbounded, Max: unbounded,
			float: func(p *Params) *float64 { return &p.Backscatter }},
		{Key: "rx-gain", Label: "RX gain", Unit: "dB", Group: GroupLevels, Step: 0.5, Min: -unbounded, Max: unbounded,
			float: func(p *Params) *float64 { return &p.RxGain }},

		{Key: "height-ambiguity", Label: "Height amb.", Unit: "m", Group: GroupInterfero, Step: 1, Max: unbounded,
			float: func(p *Params) *float64 { return &p.HeightAmbiguity }},
		{Key: "height-ambiguity-accuracy", Label: "Height amb. acc.", Unit: "m", Group: GroupInterfero, Step: 0.1, Max: unbounded,
			float: func(p *Params) *float64 { return &p.HeightAmbiguityAccuracy }},
	}
}
