package geometry

import "math"

// SegmentArc is the angular extent of one segment in a frame, in degrees.
type SegmentArc struct {
	Ring    int
	Segment int
	Start   float64
	End     float64
}

// HitTest finds the segment under p. Arcs are tested in drawing order and the
// last match wins, as the topmost shape would.
func HitTest(c Point, p Point, radii []Radii, arcs []SegmentArc) (ring, seg int, ok bool) {
	dx, dy := p.X-c.X, p.Y-c.Y
	dist := math.Hypot(dx, dy)
	angle := math.Atan2(dy, dx) * 180 / math.Pi

	ring, seg = -1, -1
	for _, a := range arcs {
		if a.Ring < 0 || a.Ring >= len(radii) {
			continue
		}
		r := radii[a.Ring]
		if dist < r.Inner || dist > r.Outer {
			continue
		}
		if angleWithin(angle, a.Start, a.End) {
			ring, seg, ok = a.Ring, a.Segment, true
		}
	}
	return ring, seg, ok
}

// angleWithin reports whether angle lies on the arc from start to end,
// measured in the direction of increasing angle.
func angleWithin(angle, start, end float64) bool {
	span := end - start
	if span >= 360 {
		return true
	}
	if span <= 0 {
		return false
	}
	rel := math.Mod(angle-start, 360)
	if rel < 0 {
		rel += 360
	}
	return rel <= span
}
