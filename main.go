package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/sunburst/internal/config"
	"github.com/iburimskiy/sunburst/internal/decor"
	"github.com/iburimskiy/sunburst/internal/engine"
	"github.com/iburimskiy/sunburst/internal/game"
	"github.com/iburimskiy/sunburst/internal/svgout"
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*envFlag)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := applyFlags(cfg); err != nil {
		log.Fatalf("flags: %v", err)
	}

	d := loadDecor(cfg.Decor)
	opts := engine.DefaultOptions()

	if cfg.Snapshot.Path != "" {
		doc := svgout.NewDocument(opts, d)
		snap := svgout.Capture(opts, doc, cfg.Snapshot.At, cfg.Snapshot.Step)
		if err := doc.WriteFile(cfg.Snapshot.Path); err != nil {
			log.Fatalf("snapshot: %v", err)
		}
		log.Printf("Wrote %s at %.3fs (%s, frame %d)\n", cfg.Snapshot.Path, cfg.Snapshot.At, snap.State, snap.Frame)
		return
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)

	g, err := game.New(cfg.Window, opts, d)
	if err != nil {
		log.Fatalf("game: %v", err)
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("run: %v", err)
	}
}

// loadDecor resolves the decorative text block. Every failure is a warning:
// the rings render without it.
func loadDecor(dc config.DecorConfig) *decor.Decor {
	path := dc.Path
	if dc.Pick {
		picked, err := decor.Pick()
		if err != nil {
			log.Printf("Warning: file dialog failed: %v\n", err)
		} else if picked != "" {
			path = picked
		}
	}

	d, err := decor.Load(path)
	if err != nil {
		if errors.Is(err, decor.ErrNotFound) {
			log.Printf("Warning: %v, rendering rings only\n", err)
		} else {
			log.Printf("Warning: decorative text unusable: %v\n", err)
		}
		return nil
	}
	log.Printf("Loaded %s decorative text from %s\n", d.Kind, d.Path)
	return d
}
