package geometry

import "github.com/iburimskiy/sunburst/internal/rings"

// Radii is one ring's extent for a single frame.
type Radii struct {
	Inner float64
	Outer float64
}

// Thickness is Outer - Inner.
func (r Radii) Thickness() float64 { return r.Outer - r.Inner }

// SolveRadii lays the rings out from the inside: ring 0 keeps its authored
// inner radius, every ring is its base thickness plus push thick, and the
// next ring starts gap beyond it. Missing push entries count as zero.
func SolveRadii(bases []rings.Base, push []float64, gap float64) []Radii {
	out := make([]Radii, len(bases))
	if len(bases) == 0 {
		return out
	}
	inner := bases[0].Inner
	for i, b := range bases {
		var p float64
		if i < len(push) {
			p = push[i]
		}
		outer := inner + b.Thickness + p
		out[i] = Radii{Inner: inner, Outer: outer}
		inner = outer + gap
	}
	return out
}
