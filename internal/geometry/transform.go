package geometry

import (
	"math"
	"strings"

	"github.com/iburimskiy/sunburst/internal/config"
)

// BaseScale returns the uniform scale at which a composition of radius
// maxRadius centred on c reaches the farthest corner of the viewport, with
// config.Headroom to spare.
func BaseScale(viewport Size, c Point, maxRadius float64) float64 {
	if maxRadius <= 0 {
		return 0
	}
	d := math.Max(
		math.Max(math.Hypot(c.X, c.Y), math.Hypot(viewport.W-c.X, c.Y)),
		math.Max(math.Hypot(c.X, viewport.H-c.Y), math.Hypot(viewport.W-c.X, viewport.H-c.Y)),
	)
	return d / maxRadius * config.Headroom
}

// GroupTransform scales the ring group about c.
func GroupTransform(c Point, scale float64) string {
	return "translate(" + formatNum(c.X) + ", " + formatNum(c.Y) + ") scale(" + formatNum(scale) +
		") translate(" + formatNum(-c.X) + ", " + formatNum(-c.Y) + ")"
}

// Placement is a translate, rotate and scale applied in that order.
type Placement struct {
	X, Y   float64
	Rotate float64
	Scale  float64
}

// WholePlacement is the authored placement of the full composition.
func WholePlacement() Placement {
	return Placement{X: config.WholeX, Y: config.WholeY, Rotate: config.WholeRotate, Scale: config.WholeScale}
}

// TextPlacement is the authored placement of the decorative text.
func TextPlacement() Placement {
	return Placement{X: config.TextX, Y: config.TextY, Scale: config.TextScale}
}

// String renders the SVG transform attribute, leaving out identity parts.
// An identity placement renders as "".
func (p Placement) String() string {
	parts := make([]string, 0, 3)
	if p.X != 0 || p.Y != 0 {
		parts = append(parts, "translate("+formatNum(p.X)+" "+formatNum(p.Y)+")")
	}
	if p.Rotate != 0 {
		parts = append(parts, "rotate("+formatNum(p.Rotate)+")")
	}
	if p.Scale != 1 {
		parts = append(parts, "scale("+formatNum(p.Scale)+")")
	}
	return strings.Join(parts, " ")
}

// Apply maps a point through the placement.
func (p Placement) Apply(pt Point) Point {
	x, y := pt.X*p.Scale, pt.Y*p.Scale
	if p.Rotate != 0 {
		sin, cos := math.Sincos(p.Rotate * math.Pi / 180)
		x, y = x*cos-y*sin, x*sin+y*cos
	}
	return Point{X: x + p.X, Y: y + p.Y}
}

// Invert maps a point from placed space back to local space.
func (p Placement) Invert(pt Point) Point {
	x, y := pt.X-p.X, pt.Y-p.Y
	if p.Rotate != 0 {
		sin, cos := math.Sincos(-p.Rotate * math.Pi / 180)
		x, y = x*cos-y*sin, x*sin+y*cos
	}
	if p.Scale == 0 {
		return Point{}
	}
	return Point{X: x / p.Scale, Y: y / p.Scale}
}
