package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudX        = 12
	hudY        = 12
	hudWidth    = 260
	hudFontSize = 13
	hudLineGap  = 1.4
	traceHeight = 40
)

func (g *Game) hudLines() []string {
	lines := []string{
		fmt.Sprintf("FPS %.1f  TPS %.1f  dt %s", ebiten.ActualFPS(), ebiten.ActualTPS(), formatSeconds(g.snap.Dt)),
		fmt.Sprintf("wave %s  %s / %s  (%.0f%%)", g.snap.State, formatSeconds(g.snap.Elapsed),
			formatSeconds(g.clock.TotalDuration()), g.snap.Progress*100),
	}
	if g.hovering {
		lines = append(lines, fmt.Sprintf("hover ring %d seg %d  %+.2f°", g.hoverRing, g.hoverSeg,
			g.clock.HoverOffset(g.hoverRing, g.hoverSeg)))
	} else if !g.snap.HoverSettled {
		lines = append(lines, "hover - (returning)")
	} else {
		lines = append(lines, "hover -")
	}
	var radii strings.Builder
	for i, r := range g.snap.Radii {
		if i > 0 {
			radii.WriteByte(' ')
		}
		fmt.Fprintf(&radii, "%.1f", r.Outer)
	}
	lines = append(lines, "outer "+radii.String())
	if g.decor != nil {
		lines = append(lines, "decor "+g.decorKind.String())
	}
	return lines
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := g.hudLines()
	lineHeight := hudFontSize * hudLineGap
	textHeight := float32(float64(len(lines)) * lineHeight)

	vector.DrawFilledRect(screen, hudX-6, hudY-6, hudWidth+12, textHeight+traceHeight+18,
		color.RGBA{0, 0, 0, 170}, false)

	face := &text.GoTextFace{Source: g.fontSource, Size: hudFontSize}
	op := &text.DrawOptions{}
	op.GeoM.Translate(hudX, hudY)
	op.ColorScale.ScaleWithColor(color.RGBA{220, 220, 220, 255})
	op.LineSpacing = lineHeight
	text.Draw(screen, strings.Join(lines, "\n"), face, op)

	g.drawTrace(screen, hudX, hudY+textHeight+6, hudWidth, traceHeight)

	ebitenutil.DebugPrintAt(screen, "D: HUD  Space/Click: wave  Esc/Q: quit", hudX, g.view.height-20)
}

// drawTrace plots the recent wave level, tinted from blue at rest to red at
// full swell.
func (g *Game) drawTrace(screen *ebiten.Image, x, y, w, h float32) {
	vector.StrokeLine(screen, x, y+h, x+w, y+h, 1, color.RGBA{90, 90, 90, 255}, false)

	levels := g.tap.snapshot(int(w))
	if len(levels) < 2 {
		return
	}
	step := w / float32(len(levels)-1)
	for i := 1; i < len(levels); i++ {
		l0, l1 := clamp01(levels[i-1]), clamp01(levels[i])
		r, gr, b := hsvToRgb(220-220*l1, 0.8, 1)
		vector.StrokeLine(screen,
			x+float32(i-1)*step, y+h-float32(l0)*h,
			x+float32(i)*step, y+h-float32(l1)*h,
			1.5, color.RGBA{r, gr, b, 255}, true)
	}
}
