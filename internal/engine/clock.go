// Package engine runs the poster's per-frame update: it advances the hover
// springs and the wave, solves ring radii and emits one arc path per segment.
package engine

import (
	"log"
	"time"

	"github.com/iburimskiy/sunburst/internal/config"
	"github.com/iburimskiy/sunburst/internal/geometry"
	"github.com/iburimskiy/sunburst/internal/hover"
	"github.com/iburimskiy/sunburst/internal/rings"
	"github.com/iburimskiy/sunburst/internal/wave"
)

// Options configures a Clock.
type Options struct {
	Rings    []rings.Ring
	Center   geometry.Point
	Schedule wave.Schedule

	StepDeg        float64
	Steps          int
	AngleOffsetDeg float64

	HoverMaxDeg   float64
	HoverSpeedDeg float64

	MaxDelta time.Duration
	QueueLen int
}

// DefaultOptions describes the authored poster.
func DefaultOptions() Options {
	return Options{
		Rings:          rings.Default(),
		Center:         geometry.Point{X: config.ViewWidth * config.CenterXRatio, Y: config.ViewHeight * config.CenterYRatio},
		Schedule:       wave.DefaultSchedule(),
		StepDeg:        config.StepDeg,
		Steps:          config.Steps,
		AngleOffsetDeg: config.AngleOffsetDeg,
		HoverMaxDeg:    config.HoverMaxDeg,
		HoverSpeedDeg:  config.HoverSpeedDeg,
		MaxDelta:       config.MaxFrameDelta,
		QueueLen:       config.EventQueueLen,
	}
}

// Snapshot summarizes one frame.
type Snapshot struct {
	Frame    uint64
	Dt       float64
	State    wave.State
	Elapsed  float64
	Progress float64
	Push     []float64
	Radii    []geometry.Radii

	// HoverSettled is set once every segment has reached its hover target.
	HoverSettled bool
}

// Clock owns all animation state and is its only writer. Step, Frame and
// the direct input methods must be called from one goroutine; Post may be
// called from any.
type Clock struct {
	opts     Options
	renderer Renderer

	bases []rings.Base
	gap   float64
	caps  []float64
	total float64

	timeline wave.Timeline
	hover    *hover.Field

	push  []float64
	radii []geometry.Radii
	arcs  []geometry.SegmentArc

	events chan Event
	last   time.Time
	frame  uint64
	dt     float64
}

// New builds a clock for opts that emits paths to r.
func New(opts Options, r Renderer) *Clock {
	bases := rings.Bases(opts.Rings)
	gap := rings.Gap(bases)
	perRing := make([]int, len(opts.Rings))
	for i, ring := range opts.Rings {
		perRing[i] = len(ring.Segments)
	}
	queueLen := opts.QueueLen
	if queueLen <= 0 {
		queueLen = config.EventQueueLen
	}
	return &Clock{
		opts:     opts,
		renderer: r,
		bases:    bases,
		gap:      gap,
		caps:     wave.Caps(rings.Thicknesses(opts.Rings)),
		total:    opts.Schedule.TotalDuration(len(opts.Rings)),
		hover:    hover.NewField(perRing, opts.HoverMaxDeg, opts.HoverSpeedDeg),
		push:     make([]float64, len(opts.Rings)),
		radii:    geometry.SolveRadii(bases, nil, gap),
		arcs:     make([]geometry.SegmentArc, 0, rings.SegmentCount(opts.Rings)),
		events:   make(chan Event, queueLen),
	}
}

// Start hooks the clock to a frame source.
func (c *Clock) Start(src FrameSource) {
	src.RegisterFrameCallback(c.Frame)
}

// Frame runs one update for a frame at wall-clock time now. The delta to the
// previous frame is capped at MaxDelta so a suspended host does not jump;
// the first frame has a delta of zero.
func (c *Clock) Frame(now time.Time) {
	var dt time.Duration
	if !c.last.IsZero() {
		dt = now.Sub(c.last)
	}
	c.last = now
	if dt < 0 {
		dt = 0
	}
	if c.opts.MaxDelta > 0 && dt > c.opts.MaxDelta {
		dt = c.opts.MaxDelta
	}
	c.Step(dt.Seconds())
}

// Step runs one update advancing time by dt seconds.
func (c *Clock) Step(dt float64) {
	c.drainEvents()
	c.frame++
	c.dt = dt

	c.hover.Advance(dt)

	if at, ok := c.timeline.Step(dt, c.total); ok {
		c.push = c.opts.Schedule.Sample(at, c.caps, c.push)
		if !c.timeline.Playing {
			log.Printf("Wave finished after %.3fs\n", at)
		}
	} else {
		clear(c.push)
	}

	c.radii = geometry.SolveRadii(c.bases, c.push, c.gap)
	c.emit()

	if obs, ok := c.renderer.(FrameObserver); ok {
		obs.FrameDone(c.Snapshot())
	}
}

func (c *Clock) emit() {
	c.arcs = c.arcs[:0]
	for i, ring := range c.opts.Rings {
		r := c.radii[i]
		for j, seg := range ring.Segments {
			start, end := seg.Span(c.opts.Steps)
			off := c.hover.Offset(i, j)
			a0 := float64(start)*c.opts.StepDeg + c.opts.AngleOffsetDeg + off
			a1 := float64(end)*c.opts.StepDeg + c.opts.AngleOffsetDeg + off

			c.arcs = append(c.arcs, geometry.SegmentArc{Ring: i, Segment: j, Start: a0, End: a1})
			if c.renderer != nil {
				c.renderer.SetSegmentPath(i, j, geometry.ArcPath(c.opts.Center, r.Inner, r.Outer, a0, a1))
			}
		}
	}
}

// Snapshot returns a copy of the latest frame's state.
func (c *Clock) Snapshot() Snapshot {
	return Snapshot{
		Frame:    c.frame,
		Dt:       c.dt,
		State:    c.timeline.State(),
		Elapsed:  c.timeline.Elapsed,
		Progress: c.opts.Schedule.Progress(c.timeline.Elapsed, len(c.opts.Rings)),
		Push:     append([]float64(nil), c.push...),
		Radii:    append([]geometry.Radii(nil), c.radii...),

		HoverSettled: c.hover.Settled(),
	}
}

// HitTest finds the segment drawn under p, in poster units, as of the last
// frame.
func (c *Clock) HitTest(p geometry.Point) (ring, seg int, ok bool) {
	return geometry.HitTest(c.opts.Center, p, c.radii, c.arcs)
}

// Gap is the spacing kept between adjacent rings.
func (c *Clock) Gap() float64 { return c.gap }

// Caps returns each ring's maximum push.
func (c *Clock) Caps() []float64 { return append([]float64(nil), c.caps...) }

// TotalDuration is the length of one wave in seconds.
func (c *Clock) TotalDuration() float64 { return c.total }

// Timeline returns a copy of the wave timeline.
func (c *Clock) Timeline() wave.Timeline { return c.timeline }

// HoverOffset is the current nudge of a segment in degrees.
func (c *Clock) HoverOffset(ring, seg int) float64 { return c.hover.Offset(ring, seg) }
