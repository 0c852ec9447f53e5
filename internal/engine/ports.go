package engine

import (
	"time"

	"github.com/iburimskiy/sunburst/internal/geometry"
)

// FrameSource calls back once per host frame with the frame's wall-clock time.
// A display refresh loop, a fixed ticker or a test harness can all serve.
type FrameSource interface {
	RegisterFrameCallback(fn func(now time.Time))
}

// Renderer receives every segment's path each frame. The engine only knows
// ring and segment indices, never the renderer's own handles.
type Renderer interface {
	SetSegmentPath(ring, seg int, s geometry.Sector)
}

// FrameObserver is optionally implemented by a Renderer that wants a summary
// after all segments of a frame were emitted.
type FrameObserver interface {
	FrameDone(snap Snapshot)
}

// EventKind tells pointer events apart.
type EventKind int

const (
	PointerEnter EventKind = iota
	PointerLeave
	Activate
)

func (k EventKind) String() string {
	switch k {
	case PointerEnter:
		return "enter"
	case PointerLeave:
		return "leave"
	case Activate:
		return "activate"
	default:
		return "unknown"
	}
}

// Event is an input for the next frame. Ring and Segment are ignored for
// Activate.
type Event struct {
	Kind    EventKind
	Ring    int
	Segment int
}
