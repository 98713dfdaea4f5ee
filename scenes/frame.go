package scenes

import (
	"time"

	cfg "github.com/automoto/sweeper/config"
)

// FrameClock turns wall-clock frame times into tick lengths. Short frames are
// skipped without moving the reference time, so their duration is carried
// into the next tick. Long frames are clamped, which slows the game down
// instead of letting it jump.
type FrameClock struct {
	last    time.Time
	started bool
}

// Step reports the elapsed seconds for a frame at now, or ok=false when the
// frame should not tick.
func (c *FrameClock) Step(now time.Time) (elapsed float64, ok bool) {
	if !c.started {
		c.started = true
		c.last = now
		return cfg.Frame.Nominal.Seconds(), true
	}
	d := now.Sub(c.last)
	if d < cfg.Frame.MinElapsed {
		return 0, false
	}
	c.last = now
	return min(d, cfg.Frame.MaxElapsed).Seconds(), true
}
