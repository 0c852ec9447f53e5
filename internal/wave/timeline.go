package wave

// State of the wave timeline.
type State int

const (
	Idle State = iota
	Playing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	default:
		return "unknown"
	}
}

// Timeline tracks the one process-wide wave.
type Timeline struct {
	Elapsed float64
	Playing bool
}

// State reports Idle or Playing.
func (tl *Timeline) State() State {
	if tl.Playing {
		return Playing
	}
	return Idle
}

// Activate starts the wave from zero. It returns false and changes nothing
// while a wave is already playing.
func (tl *Timeline) Activate() bool {
	if tl.Playing {
		return false
	}
	tl.Playing = true
	tl.Elapsed = 0
	return true
}

// Step advances a playing timeline by dt and returns the elapsed time to
// sample this frame. Once that time reaches total the timeline goes idle and
// rewinds to 0 on the same step. An idle timeline returns ok == false.
func (tl *Timeline) Step(dt, total float64) (at float64, ok bool) {
	if !tl.Playing {
		return 0, false
	}
	tl.Elapsed += dt
	at = tl.Elapsed
	if tl.Elapsed >= total {
		tl.Playing = false
		tl.Elapsed = 0
	}
	return at, true
}
