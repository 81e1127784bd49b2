package config

const (
	SpeedOfLight = 299792458.0 // m/s

	// Carrier and antenna defaults
	DefaultName              = "Untitled"
	DefaultHeight            = 3000.0 // m
	DefaultVelocity          = 120.0  // m/s
	DefaultLookAngle         = 45.0   // degrees
	DefaultElevationAperture = 18.0   // degrees
	DefaultAzimuthAperture   = 0.0    // degrees

	// Transmission defaults (µs)
	DefaultPRI        = 100.0
	DefaultTxOffset   = 0.0
	DefaultTxDuration = 10.0
	DefaultAgility    = 1

	// Receiver defaults (µs)
	DefaultChannels      = 1
	DefaultRxOffset      = 24.0
	DefaultRxDuration    = 21.0
	DefaultNoiseOffset   = 15.0
	DefaultNoiseDuration = 3.0
	DefaultReinjOffset   = 20.0
	DefaultReinjDuration = 3.0

	// Geometry sampling
	ArcSamples = 101 // points per range arc, endpoints included

	// Ambiguity folding
	MaxReplicas = 4096 // upper bound on folded copies per window

	// Terminal display
	AspectRatio     = 0.5 // Terminal char aspect correction (chars are ~2:1 tall)
	ChronogramTop   = 1.1 // Upper y bound of the chronogram (window heights are normalized)
	HistoryDepth    = 64  // Undo snapshots kept by the interactive editor
	CoarseStepScale = 10  // Multiplier applied to a field step with shift held

	// Export
	ExportWidthInches  = 10.0
	ExportHeightInches = 6.0

	// App
	AppName    = "SAR-CONF"
	AppVersion = "1.0"
)
