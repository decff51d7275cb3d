package engine

import (
	"math"
	"reflect"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fieldlab/internal/params"
	"github.com/san-kum/fieldlab/internal/scene"
	"github.com/san-kum/fieldlab/internal/topics"
)

const frameStep = time.Second / 60

var _ = Describe("Driver", func() {
	var (
		queue *FrameQueue
		clock *fakeClock
		rec   *scene.Recorder
		d     *Driver
	)

	// tick advances the clock by one frame and fires the queue.
	tick := func() int {
		return queue.Fire(clock.Advance(frameStep))
	}

	BeforeEach(func() {
		queue = NewFrameQueue()
		clock = &fakeClock{now: time.Unix(1_700_000_000, 0)}
		rec = scene.NewRecorder()
		d = New(queue, WithClock(clock))
		d.SelectTopic(string(topics.ElectricCharge))
	})

	Context("without a surface", func() {
		It("stays idle and draws nothing", func() {
			d.Play()
			d.Pause()
			d.Reset()
			d.Resize(100, 100)

			Expect(d.State()).To(Equal(Idle))
			Expect(d.Draws()).To(BeZero())
			Expect(queue.Len()).To(BeZero())
		})

		It("still renders explicit frames", func() {
			cmds := d.FrameAt(2 * time.Second)
			Expect(cmds).NotTo(BeEmpty())
			Expect(cmds[0].Kind).To(Equal(scene.KindClear))
		})
	})

	Context("once attached", func() {
		BeforeEach(func() {
			d.Attach(rec, 800, 384)
		})

		It("starts paused with exactly one static frame", func() {
			Expect(d.State()).To(Equal(Paused))
			Expect(d.Draws()).To(Equal(uint64(1)))
			Expect(queue.Len()).To(BeZero())
		})

		It("draws once per fired frame while playing", func() {
			d.Play()
			Expect(d.State()).To(Equal(Playing))
			Expect(queue.Len()).To(Equal(1))

			for i := 0; i < 5; i++ {
				Expect(tick()).To(Equal(1))
			}
			Expect(d.Draws()).To(Equal(uint64(6)))
			Expect(queue.Len()).To(Equal(1))
		})

		It("feeds monotonically increasing elapsed time", func() {
			d.Play()
			prev := -1.0
			for i := 0; i < 4; i++ {
				tick()
				Expect(d.Elapsed()).To(BeNumerically(">", prev))
				prev = d.Elapsed()
			}

			queue.Fire(clock.Advance(-time.Minute))
			Expect(d.Elapsed()).To(Equal(prev))
		})

		It("is idempotent for play and pause", func() {
			d.Play()
			d.Play()
			Expect(queue.Len()).To(Equal(1))

			d.Pause()
			draws := d.Draws()
			d.Pause()
			Expect(d.Draws()).To(Equal(draws))
		})

		It("leaves no stray frame after pause", func() {
			d.Play()
			d.Pause()
			afterPause := d.Draws()

			Expect(queue.Len()).To(BeZero())
			Expect(d.Pending()).To(BeZero())
			Expect(tick()).To(BeZero())
			Expect(d.Draws()).To(Equal(afterPause))
		})

		It("ignores a stale callback that escaped cancellation", func() {
			var stale FrameFunc
			spy := &spyScheduler{inner: queue, onSchedule: func(fn FrameFunc) { stale = fn }, dropCancel: true}
			d = New(spy, WithClock(clock))
			d.SelectTopic(string(topics.ElectricCharge))
			d.Attach(rec, 800, 384)

			d.Play()
			d.Pause()
			draws := d.Draws()

			stale(clock.Advance(frameStep))
			Expect(d.Draws()).To(Equal(draws))
			Expect(d.Pending()).To(BeZero())
		})

		It("keeps a single chain across topic changes while playing", func() {
			d.Play()
			tick()

			d.SelectTopic(string(topics.ElectricField))
			Expect(d.State()).To(Equal(Playing))
			Expect(queue.Len()).To(Equal(1))
			Expect(d.Topic()).To(Equal(topics.ElectricField))

			d.SelectTopic(string(topics.Capacitors))
			Expect(queue.Len()).To(Equal(1))

			before := d.Draws()
			Expect(tick()).To(Equal(1))
			Expect(d.Draws()).To(Equal(before + 1))
		})

		It("has no outstanding frame after a paused topic change", func() {
			d.SelectTopic(string(topics.OhmsLaw))
			Expect(d.State()).To(Equal(Paused))
			Expect(queue.Len()).To(BeZero())
		})

		It("restarts the elapsed origin on topic change", func() {
			d.Play()
			tick()
			tick()
			Expect(d.Elapsed()).To(BeNumerically(">", 0))

			d.SelectTopic(string(topics.Resistivity))
			Expect(d.Elapsed()).To(BeZero())
		})

		It("binds the placeholder for unknown topics", func() {
			d.SelectTopic("thermodynamics")
			Expect(d.Topic()).To(Equal(topics.Placeholder))
			Expect(d.State()).To(Equal(Paused))

			last := rec.Commands()
			Expect(last[len(last)-1].Text).To(Equal("Interactive visualization coming soon!"))
		})

		It("redraws once when a parameter changes while paused", func() {
			draws := d.Draws()
			Expect(d.SetParameter("distance", 999)).To(BeTrue())
			Expect(d.Params().Distance).To(Equal(150.0))
			Expect(d.Draws()).To(Equal(draws + 1))

			Expect(d.SetParameter("resistance", 3)).To(BeFalse())
			Expect(d.Draws()).To(Equal(draws + 1))
		})

		It("shows parameter writes on the very next frame while playing", func() {
			d.Play()
			tick()
			draws := d.Draws()

			d.SetParameter("distance", 60)
			Expect(d.Draws()).To(Equal(draws))

			rec.Reset()
			tick()
			var xs []float64
			for _, c := range rec.Commands() {
				if c.Kind == scene.KindCircle {
					xs = append(xs, c.Points[0].X)
				}
			}
			Expect(xs).To(Equal([]float64{340, 460}))
		})

		It("keeps the Ohm invariant through the driver", func() {
			d.SelectTopic(string(topics.OhmsLaw))
			d.SetParameter("resistance", 4)
			Expect(d.Params().Current).To(Equal(3.0))
			Expect(d.Params().Voltage).To(Equal(12.0))
		})

		It("restores defaults on reset and stops playback", func() {
			d.SetParameter("charge1", -1.5)
			d.SetParameter("distance", 70)
			d.Play()
			tick()

			d.Reset()
			Expect(d.State()).To(Equal(Paused))
			Expect(queue.Len()).To(BeZero())
			Expect(d.Params()).To(Equal(params.Set{
				Charge1: 1, Charge2: -1, Distance: 100, FieldStrength: 1,
				Voltage: 12, Current: 2, Resistance: 6,
			}))
			Expect(d.Elapsed()).To(BeZero())
		})

		It("goes idle and silent on detach", func() {
			d.Play()
			d.Detach()
			draws := d.Draws()

			Expect(d.State()).To(Equal(Idle))
			Expect(queue.Len()).To(BeZero())
			Expect(tick()).To(BeZero())
			d.SetParameter("distance", 80)
			Expect(d.Draws()).To(Equal(draws))
		})

		It("renders the current state on demand without drawing", func() {
			draws := d.Draws()
			static := d.Frame()
			Expect(d.Draws()).To(Equal(draws))
			Expect(reflect.DeepEqual(static, rec.Commands())).To(BeTrue())
		})

		It("matches FrameAt with the scheduled frame at the same time", func() {
			d.Play()
			tick()
			tick()
			rec.Reset()
			tick()

			at := d.FrameAt(time.Duration(d.Elapsed() * float64(time.Second)))
			Expect(len(at)).To(Equal(len(rec.Commands())))
		})
	})
})

var _ = Describe("Driver sizing", func() {
	DescribeTable("ignores sizes that are not finite and positive",
		func(w, h float64) {
			q := NewFrameQueue()
			d := New(q, WithSize(w, h))
			d.SelectTopic(string(topics.MaxwellEquations))

			gw, gh := d.Size()
			Expect(gw).To(Equal(float64(DefaultWidth)))
			Expect(gh).To(Equal(float64(DefaultHeight)))

			d.Resize(w, h)
			d.Attach(scene.NewRecorder(), w, h)
			gw, gh = d.Size()
			Expect(gw).To(Equal(float64(DefaultWidth)))
			Expect(gh).To(Equal(float64(DefaultHeight)))

			Expect(func() { d.FrameAt(time.Second) }).NotTo(Panic())
			Expect(d.FrameAt(time.Second)).NotTo(BeEmpty())
		},
		Entry("negative", -10.0, -10.0),
		Entry("zero width", 0.0, 400.0),
		Entry("NaN width", math.NaN(), 400.0),
		Entry("NaN height", 800.0, math.NaN()),
		Entry("infinite width", math.Inf(1), 400.0),
		Entry("infinite height", 800.0, math.Inf(-1)),
	)

	It("accepts a finite positive resize", func() {
		d := New(NewFrameQueue())
		d.Resize(640, 320)
		w, h := d.Size()
		Expect(w).To(Equal(640.0))
		Expect(h).To(Equal(320.0))
	})
})

// spyScheduler forwards to a queue but can swallow cancellations, standing in
// for a host whose callback fires anyway.
type spyScheduler struct {
	inner      *FrameQueue
	onSchedule func(FrameFunc)
	dropCancel bool
}

func (s *spyScheduler) Schedule(fn FrameFunc) Handle {
	s.onSchedule(fn)
	return s.inner.Schedule(fn)
}

func (s *spyScheduler) Cancel(h Handle) {
	if !s.dropCancel {
		s.inner.Cancel(h)
	}
}
