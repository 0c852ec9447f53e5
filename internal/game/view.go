package game

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/sunburst/internal/config"
	"github.com/iburimskiy/sunburst/internal/geometry"
)

// view maps poster units onto the window. The poster is fitted like
// preserveAspectRatio="xMidYMid meet", then the whole placement and the ring
// group scale are applied on top.
type view struct {
	width, height int

	poster image.Rectangle // screen area covered by the view box
	ring   ebiten.GeoM     // ring group space to screen
	text   ebiten.GeoM     // decor space to screen

	ringScale float64 // radius multiplier from ring space to screen
	rotateDeg float64
	baseScale float64
	groupAttr string
	wholeAttr string
	textAttr  string
}

func newView(width, height int, center geometry.Point, maxRadius float64) view {
	viewBox := geometry.Size{W: config.ViewWidth, H: config.ViewHeight}
	fit := math.Min(float64(width)/viewBox.W, float64(height)/viewBox.H)
	ox := (float64(width) - viewBox.W*fit) / 2
	oy := (float64(height) - viewBox.H*fit) / 2

	whole := geometry.WholePlacement()
	textPl := geometry.TextPlacement()
	base := geometry.BaseScale(viewBox, center, maxRadius)

	var outer ebiten.GeoM
	outer.Scale(whole.Scale, whole.Scale)
	outer.Rotate(whole.Rotate * math.Pi / 180)
	outer.Translate(whole.X, whole.Y)
	outer.Scale(fit, fit)
	outer.Translate(ox, oy)

	var ring ebiten.GeoM
	ring.Translate(-center.X, -center.Y)
	ring.Scale(base, base)
	ring.Translate(center.X, center.Y)
	ring.Concat(outer)

	var text ebiten.GeoM
	text.Scale(textPl.Scale, textPl.Scale)
	text.Rotate(textPl.Rotate * math.Pi / 180)
	text.Translate(textPl.X, textPl.Y)
	text.Concat(outer)

	return view{
		width:  width,
		height: height,
		poster: image.Rect(
			int(math.Round(ox)), int(math.Round(oy)),
			int(math.Round(ox+viewBox.W*fit)), int(math.Round(oy+viewBox.H*fit)),
		),
		ring:      ring,
		text:      text,
		ringScale: base * whole.Scale * fit,
		rotateDeg: whole.Rotate,
		baseScale: base,
		groupAttr: geometry.GroupTransform(center, base),
		wholeAttr: whole.String(),
		textAttr:  textPl.String(),
	}
}

// toScreen maps a point in ring space to screen pixels.
func (v *view) toScreen(p geometry.Point) (float32, float32) {
	x, y := v.ring.Apply(p.X, p.Y)
	return float32(x), float32(y)
}

// toPoster maps a screen pixel back into ring space.
func (v *view) toPoster(x, y int) geometry.Point {
	inv := v.ring
	if !inv.IsInvertible() {
		return geometry.Point{X: math.NaN(), Y: math.NaN()}
	}
	inv.Invert()
	px, py := inv.Apply(float64(x), float64(y))
	return geometry.Point{X: px, Y: py}
}
