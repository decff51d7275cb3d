package viz

import (
	"testing"
	"time"
)

func TestTeaSchedulerSingleTickInFlight(t *testing.T) {
	s := NewTeaScheduler(30)
	if s.Interval() != time.Second/30 {
		t.Errorf("interval = %v", s.Interval())
	}
	if s.Cmd() != nil {
		t.Fatal("empty queue produced a tick")
	}

	fired := 0
	s.Schedule(func(time.Time) { fired++ })
	if s.Cmd() == nil {
		t.Fatal("pending frame produced no tick")
	}
	if s.Cmd() != nil {
		t.Fatal("second tick while one is in flight")
	}

	if next := s.Deliver(FrameMsg(time.Now())); next != nil {
		t.Error("nothing rescheduled, want nil")
	}
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
}

func TestTeaSchedulerCancel(t *testing.T) {
	s := NewTeaScheduler(0)
	h := s.Schedule(func(time.Time) { t.Error("cancelled frame ran") })
	s.Cancel(h)
	if s.Cmd() != nil {
		t.Error("cancelled frame produced a tick")
	}
}
