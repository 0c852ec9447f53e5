package svgout

import (
	"time"

	"github.com/iburimskiy/sunburst/internal/engine"
)

// Capture drives a clock headlessly and leaves doc holding the frame at the
// given wave time. A zero at renders the resting poster; a positive at plays
// the wave from its start in fixed steps of step. Times past the end of the
// wave render the poster at rest again without stepping further.
func Capture(opts engine.Options, doc *Document, at float64, step time.Duration) engine.Snapshot {
	c := engine.New(opts, doc)
	c.Step(0)
	if at <= 0 {
		return c.Snapshot()
	}

	dt := step.Seconds()
	if dt <= 0 {
		dt = at
	}
	c.Activate()
	for remaining := at; remaining > 1e-12; {
		d := min(dt, remaining)
		c.Step(d)
		remaining -= d
		if !c.Timeline().Playing {
			// at rest from here on; one more frame clears the last push
			c.Step(0)
			break
		}
	}
	return c.Snapshot()
}
