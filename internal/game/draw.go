package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/sunburst/internal/geometry"
)

var (
	paperColor     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	inkColor       = color.RGBA{0x00, 0x00, 0x00, 0xff}
	hoverInkColor  = color.RGBA{0xd0, 0x20, 0x20, 0xff}
	letterboxColor = color.RGBA{0xe6, 0xe6, 0xe6, 0xff}
)

// fillSector fills one annular sector. The outline follows the same order as
// its SVG descriptor: outer arc with increasing angle, a line inward, then
// the inner arc back.
func (g *Game) fillSector(dst *ebiten.Image, s geometry.Sector, clr color.RGBA) {
	cx, cy := g.view.toScreen(s.Center)
	rOut := float32(s.Outer * g.view.ringScale)
	rIn := float32(s.Inner * g.view.ringScale)
	a0 := float32((s.Start + g.view.rotateDeg) * math.Pi / 180)
	a1 := float32((s.End + g.view.rotateDeg) * math.Pi / 180)

	var path vector.Path
	x, y := g.view.toScreen(s.P0)
	path.MoveTo(x, y)
	path.Arc(cx, cy, rOut, a0, a1, vector.Clockwise)
	x, y = g.view.toScreen(s.P2)
	path.LineTo(x, y)
	path.Arc(cx, cy, rIn, a1, a0, vector.CounterClockwise)
	path.Close()

	g.vertices, g.indices = path.AppendVerticesAndIndicesForFilling(g.vertices[:0], g.indices[:0])
	r := float32(clr.R) / 0xff
	gr := float32(clr.G) / 0xff
	b := float32(clr.B) / 0xff
	a := float32(clr.A) / 0xff
	for i := range g.vertices {
		g.vertices[i].SrcX = 1
		g.vertices[i].SrcY = 1
		g.vertices[i].ColorR = r
		g.vertices[i].ColorG = gr
		g.vertices[i].ColorB = b
		g.vertices[i].ColorA = a
	}

	op := &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.NonZero,
		AntiAlias: true,
	}
	dst.DrawTriangles(g.vertices, g.indices, g.white, op)
}
