// Package wave schedules the traveling thickness wave: every ring swells
// out, holds and settles back inside its own window, and consecutive windows
// overlap.
package wave

import (
	"math"

	"github.com/iburimskiy/sunburst/internal/config"
)

// Schedule holds the wave timing in seconds.
type Schedule struct {
	OutT         float64
	HoldT        float64
	BackT        float64
	Blend        float64
	StaggerRatio float64
}

// DefaultSchedule returns the authored timing.
func DefaultSchedule() Schedule {
	return Schedule{
		OutT:         config.WaveOutT,
		HoldT:        config.WaveHoldT,
		BackT:        config.WaveBackT,
		Blend:        config.WaveBlend,
		StaggerRatio: config.WaveStaggerRatio,
	}
}

// RingDuration is the length of one ring's window.
func (s Schedule) RingDuration() float64 { return s.OutT + s.HoldT + s.BackT }

// Stagger is the delay between the starts of consecutive windows.
func (s Schedule) Stagger() float64 { return s.RingDuration() * s.StaggerRatio }

// TotalDuration is the time from activation until the last ring settles.
func (s Schedule) TotalDuration(rings int) float64 {
	if rings <= 0 {
		return 0
	}
	return s.Stagger()*float64(rings-1) + s.RingDuration()
}

// Window returns ring i's active interval.
func (s Schedule) Window(i int) (start, end float64) {
	start = float64(i) * s.Stagger()
	return start, start + s.RingDuration()
}

// Progress is elapsed as a fraction of the whole wave, clamped to [0,1].
func (s Schedule) Progress(elapsed float64, rings int) float64 {
	total := s.TotalDuration(rings)
	if total <= 0 {
		return 0
	}
	return Clamp(elapsed/total, 0, 1)
}

// PushAt is the push of a ring with the given cap at local time u ∈ [0,1] of
// its window. The out and back phases are smootherstep ramps; each phase
// seam is blended over Blend of the adjacent phase so the velocity has no
// kink. Outside (0,1) the push is 0.
func (s Schedule) PushAt(u, capacity float64) float64 {
	if !(u > 0 && u < 1) {
		return 0
	}

	t := u * s.RingDuration()
	outEnd := s.OutT
	holdEnd := s.OutT + s.HoldT

	outV := capacity
	if t <= outEnd {
		outV = capacity * Smootherstep(t/s.OutT)
	}

	backV := capacity
	if t >= holdEnd {
		backV = capacity * (1 - Smootherstep((t-holdEnd)/s.BackT))
	}

	blendOut := Clamp((t-outEnd)/(s.OutT*s.Blend), 0, 1)
	v1 := Mix(outV, capacity, Smootherstep(blendOut))

	blendBack := Clamp((t-holdEnd)/(s.BackT*s.Blend), 0, 1)
	v2 := Mix(capacity, backV, Smootherstep(blendBack))

	if t < holdEnd {
		return v1
	}
	return v2
}

// Sample writes every ring's push at the given elapsed time into dst and
// returns it. Rings outside their window get 0. dst is grown to len(caps)
// when too short.
func (s Schedule) Sample(elapsed float64, caps []float64, dst []float64) []float64 {
	if cap(dst) < len(caps) {
		dst = make([]float64, len(caps))
	}
	dst = dst[:len(caps)]
	dur := s.RingDuration()
	for i, c := range caps {
		start, end := s.Window(i)
		if elapsed >= start && elapsed <= end && dur > 0 {
			dst[i] = s.PushAt((elapsed-start)/dur, c)
		} else {
			dst[i] = 0
		}
	}
	return dst
}

// PushAt evaluates the authored schedule.
func PushAt(u, capacity float64) float64 {
	return DefaultSchedule().PushAt(u, capacity)
}

// Caps returns each ring's maximum push: thicker rings may swell more, with
// the growth following the square root of their thickness relative to the
// first ring and limited to four base units.
func Caps(thicknesses []float64) []float64 {
	out := make([]float64, len(thicknesses))
	if len(thicknesses) == 0 {
		return out
	}
	ref := thicknesses[0]
	baseUnit := ref * 2
	limit := baseUnit * 4
	for i, th := range thicknesses {
		if ref <= 0 {
			out[i] = 0
			continue
		}
		out[i] = math.Min(limit, baseUnit*math.Sqrt(th/ref))
	}
	return out
}
