// Package timing provides the frame clock: elapsed seconds between frames
// for movement scaling, and a frames-per-second measurement over a rolling
// one-second window. Both sample the monotonic wall clock and accept an
// injected clock in tests.
package timing

import "time"

// FrameTimer reports the elapsed seconds since its previous sample.
type FrameTimer struct {
	now  func() time.Time
	last time.Time
}

// NewFrameTimer returns a timer primed at the current time, so the first
// Delta is near zero rather than the process start-up cost.
func NewFrameTimer() *FrameTimer {
	return newFrameTimer(time.Now)
}

func newFrameTimer(now func() time.Time) *FrameTimer {
	return &FrameTimer{now: now, last: now()}
}

// Delta returns the seconds elapsed since the previous call (or since
// construction) and re-arms the timer.
func (t *FrameTimer) Delta() float64 {
	n := t.now()
	d := n.Sub(t.last).Seconds()
	t.last = n
	return d
}

// FPSCounter counts frames and publishes a rate each time a one-second
// window elapses.
type FPSCounter struct {
	now         func() time.Time
	windowStart time.Time
	frames      int
	fps         float64
}

// NewFPSCounter returns a counter with its window starting now.
func NewFPSCounter() *FPSCounter {
	return newFPSCounter(time.Now)
}

func newFPSCounter(now func() time.Time) *FPSCounter {
	return &FPSCounter{now: now, windowStart: now()}
}

// Tick records one frame and returns the most recent measurement. The value
// holds steady within a window and updates when the window rolls over.
func (c *FPSCounter) Tick() float64 {
	c.frames++
	n := c.now()
	if elapsed := n.Sub(c.windowStart).Seconds(); elapsed >= 1.0 {
		c.fps = float64(c.frames) / elapsed
		c.frames = 0
		c.windowStart = n
	}
	return c.fps
}
