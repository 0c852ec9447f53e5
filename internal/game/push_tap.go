package game

// pushTap records the wave's overall swell for the last N frames in a ring
// buffer so the HUD can draw a trace of recent activity.
type pushTap struct {
	buffer    []float64
	nextIndex int
	filled    int
}

func newPushTap(ringSize int) *pushTap {
	if ringSize < 1 {
		ringSize = 1
	}
	return &pushTap{buffer: make([]float64, ringSize)}
}

// record stores one frame's level: the summed push relative to the summed
// caps, so 1 means every ring is fully out.
func (t *pushTap) record(push, caps []float64) {
	var sum, total float64
	for i, p := range push {
		sum += p
		if i < len(caps) {
			total += caps[i]
		}
	}
	level := 0.0
	if total > 0 {
		level = clamp01(sum / total)
	}
	t.buffer[t.nextIndex] = level
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
	}
	if t.filled < len(t.buffer) {
		t.filled++
	}
}

// snapshot returns up to the last n levels, oldest first.
func (t *pushTap) snapshot(n int) []float64 {
	n = min(max(n, 0), t.filled)
	start := t.nextIndex - n
	if start >= 0 {
		return append([]float64(nil), t.buffer[start:t.nextIndex]...)
	}
	out := make([]float64, 0, n)
	out = append(out, t.buffer[len(t.buffer)+start:]...)
	return append(out, t.buffer[:t.nextIndex]...)
}
