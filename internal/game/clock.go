package game

import "time"

// tickClock turns variable frame times into a whole number of fixed logic
// ticks. Long frames are clamped so a stall does not replay seconds of input.
type tickClock struct {
	step     time.Duration
	maxFrame time.Duration
	acc      time.Duration
}

func newTickClock(tickRate int, maxFrameSec float64) *tickClock {
	return &tickClock{
		step:     time.Second / time.Duration(tickRate),
		maxFrame: time.Duration(maxFrameSec * float64(time.Second)),
	}
}

// Advance adds one frame's elapsed time and returns the ticks to run.
func (c *tickClock) Advance(elapsed time.Duration) int {
	if elapsed > c.maxFrame {
		elapsed = c.maxFrame
	}
	if elapsed < 0 {
		elapsed = 0
	}
	c.acc += elapsed

	ticks := int(c.acc / c.step)
	c.acc -= time.Duration(ticks) * c.step
	return ticks
}

// frameCounter reports frames per second once per interval.
type frameCounter struct {
	interval time.Duration
	started  time.Time
	frames   int
}

func newFrameCounter(now time.Time, interval time.Duration) *frameCounter {
	return &frameCounter{interval: interval, started: now}
}

// Frame records one frame. When an interval has passed it returns the
// measured rate and true, then starts a new interval.
func (f *frameCounter) Frame(now time.Time) (float64, bool) {
	f.frames++
	elapsed := now.Sub(f.started)
	if elapsed < f.interval {
		return 0, false
	}
	fps := float64(f.frames) / elapsed.Seconds()
	f.frames = 0
	f.started = now
	return fps, true
}
