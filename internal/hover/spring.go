// Package hover nudges segments sideways while the pointer rests on them and
// brings them back at a constant angular speed.
package hover

import "math"

// State is one segment's angular offset in degrees.
type State struct {
	Current float64
	Target  float64
}

// Direction is +1 or -1 in a checkerboard over ring and segment index, so
// neighbours turn against each other.
func Direction(ring, seg int) float64 {
	if (ring+seg)%2 == 0 {
		return 1
	}
	return -1
}

// snapTolerance absorbs the rounding that builds up over repeated steps, so
// a distance that is a whole number of steps is covered in exactly that many.
const snapTolerance = 1e-9

// Advance moves Current toward Target by at most speed*dt and lands on Target
// exactly once it is within reach, so it never overshoots.
func Advance(s State, dt, speed float64) State {
	diff := s.Target - s.Current
	if diff == 0 || dt <= 0 {
		return s
	}
	step := speed * dt
	if math.Abs(diff) <= step*(1+snapTolerance) {
		s.Current = s.Target
		return s
	}
	if diff > 0 {
		s.Current += step
	} else {
		s.Current -= step
	}
	return s
}

// Field holds the hover state of every segment, indexed [ring][segment].
type Field struct {
	states [][]State
	maxDeg float64
	speed  float64
}

// NewField sizes a field from the segment count of each ring.
func NewField(segmentsPerRing []int, maxDeg, speed float64) *Field {
	states := make([][]State, len(segmentsPerRing))
	for i, n := range segmentsPerRing {
		states[i] = make([]State, n)
	}
	return &Field{states: states, maxDeg: maxDeg, speed: speed}
}

func (f *Field) valid(ring, seg int) bool {
	return ring >= 0 && ring < len(f.states) && seg >= 0 && seg < len(f.states[ring])
}

// Enter aims the segment at its full nudge. Unknown indices are ignored.
func (f *Field) Enter(ring, seg int) bool {
	if !f.valid(ring, seg) {
		return false
	}
	f.states[ring][seg].Target = Direction(ring, seg) * f.maxDeg
	return true
}

// Leave sends the segment back to rest.
func (f *Field) Leave(ring, seg int) bool {
	if !f.valid(ring, seg) {
		return false
	}
	f.states[ring][seg].Target = 0
	return true
}

// Advance steps every segment by dt seconds.
func (f *Field) Advance(dt float64) {
	for i := range f.states {
		for j := range f.states[i] {
			f.states[i][j] = Advance(f.states[i][j], dt, f.speed)
		}
	}
}

// Offset is the current nudge of a segment, 0 for unknown indices.
func (f *Field) Offset(ring, seg int) float64 {
	if !f.valid(ring, seg) {
		return 0
	}
	return f.states[ring][seg].Current
}

// State returns a copy of a segment's state.
func (f *Field) State(ring, seg int) State {
	if !f.valid(ring, seg) {
		return State{}
	}
	return f.states[ring][seg]
}

// Settled reports whether every segment has reached its target.
func (f *Field) Settled() bool {
	for i := range f.states {
		for _, s := range f.states[i] {
			if s.Current != s.Target {
				return false
			}
		}
	}
	return true
}
