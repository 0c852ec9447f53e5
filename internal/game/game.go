// Package game is the interactive host: an ebiten window that drives the
// engine once per tick, turns the cursor into hover events and draws the
// sectors the engine emits.
package game

import (
	"bytes"
	"fmt"
	"image"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/sunburst/internal/config"
	"github.com/iburimskiy/sunburst/internal/decor"
	"github.com/iburimskiy/sunburst/internal/engine"
	"github.com/iburimskiy/sunburst/internal/geometry"
	"github.com/iburimskiy/sunburst/internal/rings"
)

// Game implements ebiten.Game, and engine.FrameSource and engine.Renderer
// for the clock it owns.
type Game struct {
	cfg   config.WindowConfig
	opts  engine.Options
	clock *engine.Clock

	onFrame func(now time.Time)

	// latest frame
	sectors [][]geometry.Sector
	snap    engine.Snapshot
	caps    []float64
	tap     *pushTap

	view      view
	maxRadius float64

	// hover edge detection
	hovering  bool
	hoverRing int
	hoverSeg  int
	touches   []ebiten.TouchID

	decor      *ebiten.Image
	decorKind  decor.Kind
	fontSource *text.GoTextFaceSource

	// fill scratch
	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// New builds the window host. d may be nil.
func New(cfg config.WindowConfig, opts engine.Options, d *decor.Decor) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("loading HUD font: %w", err)
	}

	g := &Game{
		cfg:        cfg,
		opts:       opts,
		sectors:    make([][]geometry.Sector, len(opts.Rings)),
		tap:        newPushTap(config.PushHistorySize),
		maxRadius:  rings.MaxRadius(opts.Rings),
		hoverRing:  -1,
		hoverSeg:   -1,
		fontSource: src,
	}
	for i, r := range opts.Rings {
		g.sectors[i] = make([]geometry.Sector, len(r.Segments))
	}
	g.view = newView(cfg.Width, cfg.Height, opts.Center, g.maxRadius)

	if d != nil {
		g.decorKind = d.Kind
		switch d.Kind {
		case decor.Raster:
			g.decor = ebiten.NewImageFromImage(d.Image)
		case decor.Vector:
			log.Printf("Warning: %s is vector text, it is only drawn in SVG snapshots\n", d.Path)
		}
	}

	white := image.NewRGBA(image.Rect(0, 0, 3, 3))
	for i := range white.Pix {
		white.Pix[i] = 0xff
	}
	g.white = ebiten.NewImageFromImage(white).SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	g.clock = engine.New(opts, g)
	g.clock.Start(g)
	g.caps = g.clock.Caps()
	return g, nil
}

// RegisterFrameCallback implements engine.FrameSource. The callback runs once
// per Update.
func (g *Game) RegisterFrameCallback(fn func(now time.Time)) {
	g.onFrame = fn
}

// SetSegmentPath implements engine.Renderer.
func (g *Game) SetSegmentPath(ring, seg int, s geometry.Sector) {
	if ring < 0 || ring >= len(g.sectors) || seg < 0 || seg >= len(g.sectors[ring]) {
		return
	}
	g.sectors[ring][seg] = s
}

// FrameDone implements engine.FrameObserver.
func (g *Game) FrameDone(snap engine.Snapshot) {
	g.snap = snap
	g.tap.record(snap.Push, g.caps)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.updateHover()

	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		len(g.touches) > 0 {
		g.clock.Post(engine.Event{Kind: engine.Activate})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.cfg.Debug = !g.cfg.Debug
	}

	if g.onFrame != nil {
		g.onFrame(time.Now())
	}
	return nil
}

// updateHover posts a leave/enter pair whenever the segment under the cursor
// changes.
func (g *Game) updateHover() {
	x, y := ebiten.CursorPosition()
	ring, seg, ok := -1, -1, false
	if image.Pt(x, y).In(g.view.poster) {
		ring, seg, ok = g.clock.HitTest(g.view.toPoster(x, y))
	}
	if ok == g.hovering && (!ok || (ring == g.hoverRing && seg == g.hoverSeg)) {
		return
	}
	if g.hovering {
		g.clock.Post(engine.Event{Kind: engine.PointerLeave, Ring: g.hoverRing, Segment: g.hoverSeg})
	}
	if ok {
		g.clock.Post(engine.Event{Kind: engine.PointerEnter, Ring: ring, Segment: seg})
	}
	g.hovering, g.hoverRing, g.hoverSeg = ok, ring, seg
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(letterboxColor)
	if g.view.poster.Empty() {
		return
	}
	poster := screen.SubImage(g.view.poster).(*ebiten.Image)
	poster.Fill(paperColor)

	if g.decor != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM = g.view.text
		op.Filter = ebiten.FilterLinear
		poster.DrawImage(g.decor, op)
	}

	for i, ring := range g.sectors {
		for j, s := range ring {
			if s.Outer <= 0 || s.Span() <= 0 {
				continue
			}
			clr := inkColor
			if g.cfg.Debug && g.hovering && i == g.hoverRing && j == g.hoverSeg {
				clr = hoverInkColor
			}
			g.fillSector(poster, s, clr)
		}
	}

	if g.cfg.Debug {
		g.drawHUD(screen)
	}
}

// Layout follows the window size; the fit is recomputed only when it
// changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.view.width || outsideHeight != g.view.height {
		g.view = newView(outsideWidth, outsideHeight, g.opts.Center, g.maxRadius)
		log.Printf("Viewport %dx%d: poster %v, rings %q\n",
			outsideWidth, outsideHeight, g.view.poster, g.view.groupAttr)
	}
	return outsideWidth, outsideHeight
}
