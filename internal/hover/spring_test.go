package hover

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	maxDeg = 11.25
	speed  = 80.0
)

func TestDirection_Checkerboard(t *testing.T) {
	assert.Equal(t, 1.0, Direction(0, 0))
	assert.Equal(t, -1.0, Direction(0, 1))
	assert.Equal(t, -1.0, Direction(1, 0))
	assert.Equal(t, 1.0, Direction(1, 1))
	assert.Equal(t, 1.0, Direction(5, 1))
}

func TestAdvance_ReachesTargetExactly(t *testing.T) {
	for _, tc := range []struct {
		target, dt float64
	}{
		{maxDeg, 1.0 / 60},
		{-maxDeg, 1.0 / 60},
		{maxDeg, 0.033},
		{maxDeg, 1.0 / 64},
		{-maxDeg, 0.005},
		// whole numbers of steps that do not add up exactly in floating point
		{maxDeg, maxDeg / (speed * 13)},
		{maxDeg, maxDeg / (speed * 28)},
		{-maxDeg, maxDeg / (speed * 25)},
		{maxDeg, maxDeg / (speed * 61)},
	} {
		s := State{Target: tc.target}
		ticks := expectedTicks(tc.target, tc.dt)
		for i := 0; i < ticks; i++ {
			s = Advance(s, tc.dt, speed)
			assert.LessOrEqual(t, math.Abs(s.Current), math.Abs(tc.target), "tick %d", i)
			if i < ticks-1 {
				assert.NotEqual(t, tc.target, s.Current, "arrived early at tick %d", i)
			}
		}
		assert.Equal(t, tc.target, s.Current, "dt %v", tc.dt)

		// stays put afterwards
		s = Advance(s, tc.dt, speed)
		assert.Equal(t, tc.target, s.Current)
	}
}

// expectedTicks is ceil(|target|/(speed*dt)) with the quotient's last-bit
// rounding removed, so exact multiples are not counted one tick long.
func expectedTicks(target, dt float64) int {
	return int(math.Ceil(math.Abs(target)/(speed*dt) - 1e-9))
}

func TestAdvance_ArrivesOnTimeForAnyFrameDelta(t *testing.T) {
	for n := 1; n <= 2000; n++ {
		dt := maxDeg / (speed * float64(n))
		if dt > 0.033 {
			continue
		}
		for _, target := range []float64{maxDeg, -maxDeg} {
			ticks := expectedTicks(target, dt)
			require.Equal(t, n, ticks)
			s := State{Target: target}
			for i := 0; i < ticks; i++ {
				s = Advance(s, dt, speed)
				if i < ticks-1 {
					require.NotEqual(t, target, s.Current, "n %d arrived early at tick %d", n, i)
				}
			}
			require.Equal(t, target, s.Current, "n %d dt %v", n, dt)
		}
	}
}

func TestAdvance_ConstantRate(t *testing.T) {
	s := State{Target: 10}
	s = Advance(s, 0.01, speed)
	assert.InDelta(t, 0.8, s.Current, 1e-12)
	s = Advance(s, 0.01, speed)
	assert.InDelta(t, 1.6, s.Current, 1e-12)

	s = State{Current: 5, Target: 0}
	s = Advance(s, 0.01, speed)
	assert.InDelta(t, 4.2, s.Current, 1e-12)
}

func TestAdvance_IgnoresNonPositiveDt(t *testing.T) {
	s := State{Current: 1, Target: 5}
	assert.Equal(t, s, Advance(s, 0, speed))
	assert.Equal(t, s, Advance(s, -1, speed))
}

func TestField_EnterLeave(t *testing.T) {
	f := NewField([]int{2, 2, 1}, maxDeg, speed)

	require.True(t, f.Enter(0, 1))
	assert.Equal(t, -maxDeg, f.State(0, 1).Target)
	require.True(t, f.Enter(2, 0))
	assert.Equal(t, maxDeg, f.State(2, 0).Target)

	assert.False(t, f.Enter(2, 1))
	assert.False(t, f.Enter(-1, 0))
	assert.False(t, f.Leave(3, 0))
	assert.Equal(t, 0.0, f.Offset(9, 9))

	assert.False(t, f.Settled())
	for i := 0; i < 60; i++ {
		f.Advance(1.0 / 60)
		assert.LessOrEqual(t, math.Abs(f.Offset(0, 1)), maxDeg)
	}
	assert.True(t, f.Settled())
	assert.Equal(t, -maxDeg, f.Offset(0, 1))
	assert.Equal(t, 0.0, f.Offset(0, 0))

	require.True(t, f.Leave(0, 1))
	for i := 0; i < 60; i++ {
		f.Advance(1.0 / 60)
	}
	assert.Equal(t, 0.0, f.Offset(0, 1))
	assert.Equal(t, maxDeg, f.Offset(2, 0))
}
