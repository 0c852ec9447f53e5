package engine

import "log"

// Post queues an event for the next frame without blocking. It is safe to
// call concurrently with a running frame. A full queue drops the event.
func (c *Clock) Post(ev Event) bool {
	select {
	case c.events <- ev:
		return true
	default:
		log.Printf("Warning: input queue full, dropping %s event\n", ev.Kind)
		return false
	}
}

// Enter starts nudging a segment.
func (c *Clock) Enter(ring, seg int) {
	c.apply(Event{Kind: PointerEnter, Ring: ring, Segment: seg})
}

// Leave lets a segment return to rest.
func (c *Clock) Leave(ring, seg int) {
	c.apply(Event{Kind: PointerLeave, Ring: ring, Segment: seg})
}

// Activate starts the wave unless one is playing.
func (c *Clock) Activate() bool {
	return c.apply(Event{Kind: Activate})
}

func (c *Clock) drainEvents() {
	for {
		select {
		case ev := <-c.events:
			c.apply(ev)
		default:
			return
		}
	}
}

func (c *Clock) apply(ev Event) bool {
	switch ev.Kind {
	case PointerEnter:
		return c.hover.Enter(ev.Ring, ev.Segment)
	case PointerLeave:
		return c.hover.Leave(ev.Ring, ev.Segment)
	case Activate:
		if !c.timeline.Activate() {
			return false
		}
		log.Printf("Wave started: %d rings over %.3fs\n", len(c.opts.Rings), c.total)
		return true
	default:
		return false
	}
}
