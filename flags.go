package main

import (
	"flag"
	"time"

	"github.com/iburimskiy/sunburst/internal/config"
)

var (
	// Window
	widthFlag  = flag.Int("width", config.WindowWidth, "window width in pixels")
	heightFlag = flag.Int("height", config.WindowHeight, "window height in pixels")
	tpsFlag    = flag.Int("tps", config.DefaultTPS, "ticks per second; each tick runs one frame")
	debugFlag  = flag.Bool("debug", false, "show the HUD with wave state, hover and radii")

	// Decorative text
	decorFlag     = flag.String("decor", "", "decorative text block: an SVG fragment or a PNG/JPEG image")
	pickDecorFlag = flag.Bool("pick-decor", false, "choose the decorative text block in a file dialog")

	// Headless snapshot
	svgFlag     = flag.String("svg", "", "write an SVG snapshot to this path instead of opening a window")
	svgAtFlag   = flag.Float64("svg-at", 0, "wave time in seconds to capture; 0 captures the poster at rest")
	svgStepFlag = flag.Duration("svg-step", time.Second/config.DefaultTPS, "simulated frame interval while playing the wave for a snapshot")

	envFlag = flag.String("env", ".env", "dotenv file with SUNBURST_* overrides")
)

// applyFlags copies flags given on the command line over cfg, so they win
// over the environment.
func applyFlags(cfg *config.Config) error {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Window.Width = *widthFlag
		case "height":
			cfg.Window.Height = *heightFlag
		case "tps":
			cfg.Window.TPS = *tpsFlag
		case "debug":
			cfg.Window.Debug = *debugFlag
		case "decor":
			cfg.Decor.Path = *decorFlag
		case "pick-decor":
			cfg.Decor.Pick = *pickDecorFlag
		case "svg":
			cfg.Snapshot.Path = *svgFlag
		case "svg-at":
			cfg.Snapshot.At = *svgAtFlag
		case "svg-step":
			cfg.Snapshot.Step = *svgStepFlag
		}
	})
	return cfg.Validate()
}
