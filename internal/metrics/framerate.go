// Package metrics measures presentation-side quantities of a running host.
package metrics

import "time"

// FrameRate estimates delivered frames per second over a sliding window of
// frame timestamps.
type FrameRate struct {
	name   string
	window int
	stamps []time.Time
}

func NewFrameRate(window int) *FrameRate {
	if window < 2 {
		window = 2
	}
	return &FrameRate{
		name:   "frame_rate",
		window: window,
		stamps: make([]time.Time, 0, window),
	}
}

func (f *FrameRate) Name() string {
	return f.name
}

// Observe records a delivered frame. Timestamps older than the previous one
// restart the window.
func (f *FrameRate) Observe(now time.Time) {
	if n := len(f.stamps); n > 0 && now.Before(f.stamps[n-1]) {
		f.stamps = f.stamps[:0]
	}
	if len(f.stamps) == f.window {
		copy(f.stamps, f.stamps[1:])
		f.stamps = f.stamps[:f.window-1]
	}
	f.stamps = append(f.stamps, now)
}

func (f *FrameRate) Value() float64 {
	n := len(f.stamps)
	if n < 2 {
		return 0
	}
	span := f.stamps[n-1].Sub(f.stamps[0]).Seconds()
	if span <= 0 {
		return 0
	}
	return float64(n-1) / span
}

func (f *FrameRate) Reset() {
	f.stamps = f.stamps[:0]
}
