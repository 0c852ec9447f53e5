package config

import "time"

const (
	WindowWidth  = 500
	WindowHeight = 650
	DefaultTPS   = 60

	// Poster view box; the composition is authored in these units
	ViewWidth  = 1000
	ViewHeight = 1300

	// Composition center as a fraction of the view box
	CenterXRatio = 0.22
	CenterYRatio = 0.83

	// Angular grid: a full turn is Steps steps of StepDeg, step 0 points up
	StepDeg        = 11.25
	Steps          = 32
	AngleOffsetDeg = -90.0

	// Hover nudge
	HoverMaxDeg   = 11.25
	HoverSpeedDeg = 80.0

	// Wave phases in seconds
	WaveOutT         = 0.055
	WaveHoldT        = 0.080
	WaveBackT        = 0.055
	WaveBlend        = 0.35
	WaveStaggerRatio = 0.5

	// Viewport fit
	Headroom    = 1.42
	FallbackGap = 2.0

	// Whole composition placement
	WholeX      = -20.0
	WholeY      = -100.0
	WholeScale  = 0.9
	WholeRotate = 0.0

	// Decorative text placement
	TextX     = 27.0
	TextY     = 973.0
	TextScale = 1.5

	// Frame clock
	MaxFrameDelta = 33 * time.Millisecond
	EventQueueLen = 64

	// HUD
	PushHistorySize = 240
)
