package viz

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/fieldlab/internal/engine"
)

// FrameMsg delivers a frame timestamp to the program's Update.
type FrameMsg time.Time

// TeaScheduler turns driver frame requests into tea.Tick commands. Frames
// fire inside Update, so the driver only ever runs on the program goroutine.
type TeaScheduler struct {
	queue    *engine.FrameQueue
	interval time.Duration
	inFlight bool
}

func NewTeaScheduler(fps int) *TeaScheduler {
	if fps <= 0 {
		fps = 30
	}
	return &TeaScheduler{
		queue:    engine.NewFrameQueue(),
		interval: time.Second / time.Duration(fps),
	}
}

func (s *TeaScheduler) Schedule(fn engine.FrameFunc) engine.Handle { return s.queue.Schedule(fn) }
func (s *TeaScheduler) Cancel(h engine.Handle)                     { s.queue.Cancel(h) }

func (s *TeaScheduler) Interval() time.Duration { return s.interval }

// Cmd returns the tick for the next frame, or nil when nothing is waiting or
// a tick is already on its way.
func (s *TeaScheduler) Cmd() tea.Cmd {
	if s.inFlight || s.queue.Len() == 0 {
		return nil
	}
	s.inFlight = true
	return tea.Tick(s.interval, func(t time.Time) tea.Msg { return FrameMsg(t) })
}

// Deliver fires the pending frames and returns the tick for the next one.
func (s *TeaScheduler) Deliver(msg FrameMsg) tea.Cmd {
	s.inFlight = false
	s.queue.Fire(time.Time(msg))
	return s.Cmd()
}
