package engine

import "time"

// FrameFunc is invoked by a Scheduler with the frame timestamp.
type FrameFunc func(now time.Time)

// Handle identifies a scheduled frame. The zero Handle is never issued.
type Handle uint64

// Scheduler requests a single future frame, like requestAnimationFrame.
type Scheduler interface {
	Schedule(fn FrameFunc) Handle
	Cancel(h Handle)
}

// Clock supplies timestamps for the animation origin and for frames that are
// rendered outside a scheduler callback.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}

// FrameQueue is a Scheduler whose frames run when the owner calls Fire.
// Hosts pump it from their own loop, which keeps every callback on the
// host goroutine.
type FrameQueue struct {
	last    Handle
	pending map[Handle]FrameFunc
	order   []Handle
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: make(map[Handle]FrameFunc)}
}

func (q *FrameQueue) Schedule(fn FrameFunc) Handle {
	q.last++
	q.pending[q.last] = fn
	q.order = append(q.order, q.last)
	return q.last
}

func (q *FrameQueue) Cancel(h Handle) { delete(q.pending, h) }

// Len reports the number of frames still waiting to fire.
func (q *FrameQueue) Len() int { return len(q.pending) }

// Fire runs the frames pending at call time and returns how many ran.
// Frames scheduled by those callbacks wait for the next Fire.
func (q *FrameQueue) Fire(now time.Time) int {
	batch := q.order
	q.order = nil
	n := 0
	for _, h := range batch {
		fn, ok := q.pending[h]
		if !ok {
			continue
		}
		delete(q.pending, h)
		fn(now)
		n++
	}
	return n
}
