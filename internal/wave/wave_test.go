package wave

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmootherstep(t *testing.T) {
	assert.Equal(t, 0.0, Smootherstep(0))
	assert.Equal(t, 1.0, Smootherstep(1))
	assert.InDelta(t, 0.5, Smootherstep(0.5), 1e-12)

	// clamped outside the domain
	assert.Equal(t, 0.0, Smootherstep(-3))
	assert.Equal(t, 1.0, Smootherstep(7))

	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := Smootherstep(float64(i) / 100)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestMixAndClamp(t *testing.T) {
	assert.Equal(t, 2.0, Mix(2, 6, 0))
	assert.Equal(t, 6.0, Mix(2, 6, 1))
	assert.Equal(t, 4.0, Mix(2, 6, 0.5))
	assert.Equal(t, 1.0, Clamp(3, 0, 1))
	assert.Equal(t, 0.0, Clamp(-3, 0, 1))
}

func TestCaps(t *testing.T) {
	caps := Caps([]float64{2.5, 5, 10, 20, 40, 80, 160})
	require.Len(t, caps, 7)

	assert.InDelta(t, 5, caps[0], 1e-12)
	assert.InDelta(t, 5*math.Sqrt2, caps[1], 1e-12)
	assert.InDelta(t, 10, caps[2], 1e-12)
	assert.InDelta(t, 20, caps[4], 1e-12)
	// limited to four base units
	assert.InDelta(t, 20, caps[5], 1e-12)
	assert.InDelta(t, 20, caps[6], 1e-12)

	assert.Empty(t, Caps(nil))
}

func TestSchedule_Durations(t *testing.T) {
	s := DefaultSchedule()
	assert.InDelta(t, 0.19, s.RingDuration(), 1e-12)
	assert.InDelta(t, 0.095, s.Stagger(), 1e-12)
	assert.InDelta(t, 0.095*6+0.19, s.TotalDuration(7), 1e-12)
	assert.InDelta(t, 0.19, s.TotalDuration(1), 1e-12)
	assert.Equal(t, 0.0, s.TotalDuration(0))

	start, end := s.Window(2)
	assert.InDelta(t, 0.19, start, 1e-12)
	assert.InDelta(t, 0.38, end, 1e-12)

	// consecutive windows overlap by half
	_, end0 := s.Window(0)
	start1, _ := s.Window(1)
	assert.InDelta(t, s.RingDuration()/2, end0-start1, 1e-12)
}

func TestPushAt_Endpoints(t *testing.T) {
	const c = 10.0
	assert.Equal(t, 0.0, PushAt(0, c))
	assert.Equal(t, 0.0, PushAt(1, c))
	assert.Equal(t, 0.0, PushAt(-0.5, c))
	assert.Equal(t, 0.0, PushAt(1.5, c))
	assert.Equal(t, 0.0, PushAt(math.NaN(), c))
}

func TestPushAt_BoundedByCap(t *testing.T) {
	for _, c := range []float64{5, 7.07, 20} {
		peak := 0.0
		for i := 1; i < 10000; i++ {
			v := PushAt(float64(i)/10000, c)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, c+1e-12)
			peak = math.Max(peak, v)
		}
		assert.InDelta(t, c, peak, 1e-9, "the hold phase reaches the cap")
	}
}

func TestPushAt_ContinuousAtSeams(t *testing.T) {
	s := DefaultSchedule()
	const c = 20.0
	dur := s.RingDuration()
	seams := []float64{
		s.OutT / dur,
		(s.OutT + s.HoldT) / dur,
		s.OutT * (1 + s.Blend) / dur,
		(s.OutT + s.HoldT + s.BackT*s.Blend) / dur,
	}
	for _, u := range seams {
		prevDiff := math.Inf(1)
		for _, d := range []float64{1e-3, 1e-5, 1e-7} {
			diff := math.Abs(s.PushAt(u+d, c) - s.PushAt(u, c))
			assert.Less(t, diff, c*d*100, "seam at u=%v, delta %v", u, d)
			assert.LessOrEqual(t, diff, prevDiff)
			prevDiff = diff
		}
		left := s.PushAt(u-1e-9, c)
		right := s.PushAt(u+1e-9, c)
		assert.InDelta(t, left, right, 1e-6, "seam at u=%v", u)
	}
}

// Scenario B: the wave starts from rest and ring 0 is fully out after OutT.
func TestPushAt_StartAndOutEnd(t *testing.T) {
	s := DefaultSchedule()
	caps := Caps([]float64{2.5, 5, 10, 20, 40, 80, 160})

	push := s.Sample(0, caps, nil)
	assert.Equal(t, 0.0, push[0])

	push = s.Sample(s.OutT, caps, push)
	assert.InDelta(t, caps[0], push[0], 1e-9)
	assert.Equal(t, 0.0, push[2], "ring 2 has not started")
}

func TestPushAt_HoldEndTieBreak(t *testing.T) {
	s := DefaultSchedule()
	const c = 8.0
	u := (s.OutT + s.HoldT) / s.RingDuration()
	assert.InDelta(t, c, s.PushAt(u, c), 1e-9)
}

func TestSample_ZeroOutsideWindows(t *testing.T) {
	s := DefaultSchedule()
	caps := []float64{5, 5, 5}

	push := s.Sample(0.2, caps, nil)
	assert.Equal(t, 0.0, push[0], "window 0 ended at 0.19")
	assert.Greater(t, push[1], 0.0)
	assert.Greater(t, push[2], 0.0)

	push = s.Sample(10, caps, push)
	assert.Equal(t, []float64{0, 0, 0}, push)

	assert.Empty(t, s.Sample(0.1, nil, nil))
}

func TestTimeline_ActivateAndAutoReset(t *testing.T) {
	s := DefaultSchedule()
	total := s.TotalDuration(7)
	var tl Timeline

	_, ok := tl.Step(0.016, total)
	assert.False(t, ok, "idle timeline does not advance")
	assert.Equal(t, Idle, tl.State())

	require.True(t, tl.Activate())
	assert.Equal(t, Playing, tl.State())

	const dt = 0.016
	steps := 0
	var last float64
	for tl.Playing {
		at, ok := tl.Step(dt, total)
		require.True(t, ok)
		last = at
		steps++
		require.Less(t, steps, 1000)
	}
	assert.Equal(t, int(math.Ceil(total/dt-1e-9)), steps)
	assert.GreaterOrEqual(t, last, total, "the crossing step still samples its time")
	assert.Equal(t, 0.0, tl.Elapsed)
	assert.Equal(t, Idle, tl.State())
}

func TestTimeline_ReactivateWhilePlayingIsNoop(t *testing.T) {
	var tl Timeline
	require.True(t, tl.Activate())
	tl.Step(0.1, 1)

	assert.False(t, tl.Activate())
	assert.True(t, tl.Playing)
	assert.InDelta(t, 0.1, tl.Elapsed, 1e-12)

	tl.Step(1, 1)
	assert.False(t, tl.Playing)
	assert.True(t, tl.Activate(), "idle again after the wave")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "playing", Playing.String())
}
