// Package geometry turns ring radii and angles into annular-sector paths and
// computes the poster's fit and placement transforms.
package geometry

import (
	"math"
	"strconv"
	"strings"
)

// Point is a position in poster units; y grows downward.
type Point struct {
	X, Y float64
}

// Size is a width/height pair in poster units.
type Size struct {
	W, H float64
}

// Polar converts a radius and an angle in degrees around c to a point.
// Positive angles turn clockwise on screen.
func Polar(c Point, radius, angleDeg float64) Point {
	rad := angleDeg * math.Pi / 180
	return Point{X: c.X + radius*math.Cos(rad), Y: c.Y + radius*math.Sin(rad)}
}

// Sector is a closed annular sector: outer arc from P0 to P1, a line to P2,
// inner arc back to P3.
type Sector struct {
	Center   Point
	Inner    float64
	Outer    float64
	Start    float64
	End      float64
	P0       Point
	P1       Point
	P2       Point
	P3       Point
	LargeArc bool
}

// ArcPath builds the sector between radii rIn..rOut and angles a0..a1 (degrees).
// The outer boundary sweeps with increasing angle and the inner one against
// it, so the outline never crosses itself, even for spans close to 360°.
func ArcPath(c Point, rIn, rOut, a0, a1 float64) Sector {
	return Sector{
		Center:   c,
		Inner:    rIn,
		Outer:    rOut,
		Start:    a0,
		End:      a1,
		P0:       Polar(c, rOut, a0),
		P1:       Polar(c, rOut, a1),
		P2:       Polar(c, rIn, a1),
		P3:       Polar(c, rIn, a0),
		LargeArc: math.Abs(a1-a0) > 180,
	}
}

// Span is the signed angular extent in degrees.
func (s Sector) Span() float64 { return s.End - s.Start }

// String renders the sector as SVG path data:
//
//	M x0 y0 A rOut rOut 0 large 1 x1 y1 L x2 y2 A rIn rIn 0 large 0 x3 y3 Z
func (s Sector) String() string {
	large := "0"
	if s.LargeArc {
		large = "1"
	}
	var b strings.Builder
	b.Grow(160)
	b.WriteString("M ")
	writePoint(&b, s.P0)
	b.WriteString(" A ")
	writeNum(&b, s.Outer)
	b.WriteByte(' ')
	writeNum(&b, s.Outer)
	b.WriteString(" 0 ")
	b.WriteString(large)
	b.WriteString(" 1 ")
	writePoint(&b, s.P1)
	b.WriteString(" L ")
	writePoint(&b, s.P2)
	b.WriteString(" A ")
	writeNum(&b, s.Inner)
	b.WriteByte(' ')
	writeNum(&b, s.Inner)
	b.WriteString(" 0 ")
	b.WriteString(large)
	b.WriteString(" 0 ")
	writePoint(&b, s.P3)
	b.WriteString(" Z")
	return b.String()
}

func writePoint(b *strings.Builder, p Point) {
	writeNum(b, p.X)
	b.WriteByte(' ')
	writeNum(b, p.Y)
}

func writeNum(b *strings.Builder, v float64) {
	b.WriteString(formatNum(v))
}

// formatNum prints the shortest decimal that round-trips.
func formatNum(v float64) string {
	if v == 0 {
		// avoid "-0"
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
