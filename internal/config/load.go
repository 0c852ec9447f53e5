package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the poster hosts. Authored geometry
// and timing live in the constants above and are not configurable.
type Config struct {
	Window   WindowConfig
	Decor    DecorConfig
	Snapshot SnapshotConfig
}

// WindowConfig controls the interactive ebiten host.
type WindowConfig struct {
	Width  int
	Height int
	TPS    int
	Debug  bool
	Title  string
}

// DecorConfig points at the optional decorative text asset.
type DecorConfig struct {
	Path string
	Pick bool
}

// SnapshotConfig drives the headless SVG host. An empty Path disables it.
type SnapshotConfig struct {
	Path string
	At   float64
	Step time.Duration
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			TPS:    DefaultTPS,
			Title:  "Sunburst - hover the rings, click or Space to play the wave, Esc/Q to quit",
		},
		Snapshot: SnapshotConfig{
			Step: time.Second / DefaultTPS,
		},
	}
}

// Load starts from Default, applies the dotenv file at envFile (a missing
// file only logs a warning) and then SUNBURST_* environment variables.
func Load(envFile string) (*Config, error) {
	cfg := Default()

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("loading %s: %w", envFile, err)
			}
			log.Printf("Warning: no env file at %s, using defaults\n", envFile)
		}
	}

	if err := applyEnvironmentOverrides(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnvironmentOverrides(cfg *Config) error {
	var err error
	if cfg.Window.Width, err = envInt("SUNBURST_WIDTH", cfg.Window.Width); err != nil {
		return err
	}
	if cfg.Window.Height, err = envInt("SUNBURST_HEIGHT", cfg.Window.Height); err != nil {
		return err
	}
	if cfg.Window.TPS, err = envInt("SUNBURST_TPS", cfg.Window.TPS); err != nil {
		return err
	}
	if cfg.Window.Debug, err = envBool("SUNBURST_DEBUG", cfg.Window.Debug); err != nil {
		return err
	}
	if v := os.Getenv("SUNBURST_DECOR"); v != "" {
		cfg.Decor.Path = v
	}
	if v := os.Getenv("SUNBURST_SVG"); v != "" {
		cfg.Snapshot.Path = v
	}
	if cfg.Snapshot.At, err = envFloat("SUNBURST_SVG_AT", cfg.Snapshot.At); err != nil {
		return err
	}
	return cfg.Validate()
}

// Validate rejects settings the hosts cannot run with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("tps %d must be positive", c.Window.TPS)
	}
	if c.Snapshot.At < 0 {
		return fmt.Errorf("snapshot time %.3fs must not be negative", c.Snapshot.At)
	}
	if c.Snapshot.Step <= 0 {
		return fmt.Errorf("snapshot step %v must be positive", c.Snapshot.Step)
	}
	return nil
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func envBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
