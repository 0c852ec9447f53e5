// Package rings holds the authored sunburst geometry: concentric rings, each
// cut into angular segments on a fixed grid of steps.
package rings

import (
	"sort"

	"github.com/iburimskiy/sunburst/internal/config"
)

// Segment is an inclusive run of angular steps. End < Start wraps past the
// last step back to step 0.
type Segment struct {
	Start int
	End   int
}

// Wraps reports whether the segment crosses step 0.
func (s Segment) Wraps() bool { return s.End < s.Start }

// Span returns the first step and the step just past the segment, unwrapped
// so that end > start. steps is the number of steps in a full turn.
func (s Segment) Span(steps int) (start, end int) {
	end = s.End
	if s.Wraps() {
		end += steps
	}
	return s.Start, end + 1
}

// Ring is one concentric band.
type Ring struct {
	Mid       float64
	Thickness float64
	Segments  []Segment
}

// Inner is the authored inner radius.
func (r Ring) Inner() float64 { return r.Mid - r.Thickness*0.5 }

// Outer is the authored outer radius.
func (r Ring) Outer() float64 { return r.Mid + r.Thickness*0.5 }

// Base is the rest geometry of a ring the radius solver starts from.
type Base struct {
	Inner     float64
	Outer     float64
	Thickness float64
}

// Default returns the poster's rings, innermost first.
func Default() []Ring {
	return []Ring{
		{Mid: 74.25, Thickness: 2.5, Segments: []Segment{{6, 11}, {20, 22}}},
		{Mid: 78.6, Thickness: 5.0, Segments: []Segment{{4, 10}, {16, 21}}},
		{Mid: 86.7, Thickness: 10.0, Segments: []Segment{{1, 7}, {12, 27}}},
		{Mid: 102.3, Thickness: 20.0, Segments: []Segment{{0, 24}}},
		{Mid: 132.9, Thickness: 40.0, Segments: []Segment{{4, 16}, {17, 20}}},
		{Mid: 193.5, Thickness: 80.0, Segments: []Segment{{31, 15}}},
		{Mid: 314.1, Thickness: 160.0, Segments: []Segment{{0, 24}}},
	}
}

// Bases converts rings to their rest geometry.
func Bases(rs []Ring) []Base {
	out := make([]Base, len(rs))
	for i, r := range rs {
		out[i] = Base{Inner: r.Inner(), Outer: r.Outer(), Thickness: r.Thickness}
	}
	return out
}

// Thicknesses lists the authored thickness of every ring.
func Thicknesses(rs []Ring) []float64 {
	out := make([]float64, len(rs))
	for i, r := range rs {
		out[i] = r.Thickness
	}
	return out
}

// Gap is the median of the authored gaps between adjacent rings, taking the
// upper middle value for an even count. Fewer than two rings yield
// config.FallbackGap.
func Gap(bases []Base) float64 {
	if len(bases) < 2 {
		return config.FallbackGap
	}
	gaps := make([]float64, 0, len(bases)-1)
	for i := 0; i < len(bases)-1; i++ {
		gaps = append(gaps, bases[i+1].Inner-bases[i].Outer)
	}
	sort.Float64s(gaps)
	return gaps[len(gaps)/2]
}

// MaxRadius is the farthest authored outer edge, or 0 without rings.
func MaxRadius(rs []Ring) float64 {
	var m float64
	for _, r := range rs {
		if o := r.Outer(); o > m {
			m = o
		}
	}
	return m
}

// SegmentCount totals the segments of all rings.
func SegmentCount(rs []Ring) int {
	n := 0
	for _, r := range rs {
		n += len(r.Segments)
	}
	return n
}
