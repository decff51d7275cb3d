package engine

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/san-kum/fieldlab/internal/params"
	"github.com/san-kum/fieldlab/internal/scene"
	"github.com/san-kum/fieldlab/internal/topics"
)

type State uint8

const (
	Idle State = iota
	Paused
	Playing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Paused:
		return "paused"
	case Playing:
		return "playing"
	}
	return fmt.Sprintf("state(%d)", s)
}

const (
	DefaultWidth  = 800
	DefaultHeight = 384
)

type Option func(*Driver)

func WithRegistry(r *topics.Registry) Option { return func(d *Driver) { d.reg = r } }
func WithClock(c Clock) Option               { return func(d *Driver) { d.clock = c } }
func WithLogger(l *slog.Logger) Option       { return func(d *Driver) { d.log = l } }

// WithSize sets the initial surface size. Sizes that are not finite and
// positive are ignored.
func WithSize(w, h float64) Option {
	return func(d *Driver) {
		if validSize(w, h) {
			d.width, d.height = w, h
		}
	}
}

func validSize(w, h float64) bool {
	return w > 0 && h > 0 && !math.IsInf(w, 0) && !math.IsInf(h, 0)
}

// Driver owns the play state, the bound topic and its parameter store, and
// the single frame chain that animates the surface.
type Driver struct {
	reg   *topics.Registry
	sched Scheduler
	clock Clock
	log   *slog.Logger

	surface       scene.Surface
	width, height float64

	topic string
	entry topics.Entry
	store *params.Store

	state       State
	origin      time.Time
	hasOrigin   bool
	lastElapsed float64

	token      uint64
	pending    Handle
	hasPending bool
	draws      uint64
}

func New(sched Scheduler, opts ...Option) *Driver {
	d := &Driver{
		reg:    topics.Default,
		sched:  sched,
		clock:  SystemClock,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		width:  DefaultWidth,
		height: DefaultHeight,
	}
	for _, o := range opts {
		o(d)
	}
	d.entry = d.reg.Lookup(d.topic)
	d.store = params.NewStore(d.entry.Params, d.entry.Coupling)
	return d
}

// Attach mounts a surface and renders one static frame of the current topic.
// A nil surface is equivalent to Detach.
func (d *Driver) Attach(s scene.Surface, width, height float64) {
	d.teardown()
	d.surface = s
	if validSize(width, height) {
		d.width, d.height = width, height
	}
	if s == nil {
		return
	}
	d.state = Paused
	d.log.Debug("surface attached", "topic", d.entry.Topic, "width", d.width, "height", d.height)
	d.renderStatic()
}

// Detach unmounts the surface; nothing is drawn until the next Attach.
func (d *Driver) Detach() {
	d.teardown()
	d.surface = nil
	d.log.Debug("surface detached")
}

// SelectTopic tears the current binding down and binds id. Unknown ids bind
// the placeholder. A driver that was playing starts a fresh chain for the
// new topic.
func (d *Driver) SelectTopic(id string) {
	wasPlaying := d.state == Playing
	d.teardown()

	d.topic = id
	d.entry = d.reg.Lookup(id)
	d.store.Bind(d.entry.Params, d.entry.Coupling)
	d.log.Debug("topic selected", "id", id, "topic", d.entry.Topic, "known", d.reg.Known(id))

	if d.surface == nil {
		return
	}
	d.state = Paused
	d.renderStatic()
	if wasPlaying {
		d.Play()
	}
}

// Play starts the frame chain. It is a no-op unless the driver is paused.
func (d *Driver) Play() {
	if d.state != Paused {
		return
	}
	d.state = Playing
	if !d.hasOrigin {
		d.origin = d.clock.Now()
		d.hasOrigin = true
	}
	d.token++
	d.scheduleNext(d.token)
	d.log.Debug("playing", "topic", d.entry.Topic)
}

// Pause cancels the pending frame and renders one static frame. It is a
// no-op unless the driver is playing.
func (d *Driver) Pause() {
	if d.state != Playing {
		return
	}
	d.cancelChain()
	d.state = Paused
	d.renderStatic()
	d.log.Debug("paused", "topic", d.entry.Topic, "elapsed", d.lastElapsed)
}

// Toggle flips between playing and paused.
func (d *Driver) Toggle() {
	if d.state == Playing {
		d.Pause()
	} else {
		d.Play()
	}
}

// Reset stops playback, restores default parameters, restarts the clock
// origin and renders one static frame.
func (d *Driver) Reset() {
	if d.state == Playing {
		d.cancelChain()
		d.state = Paused
	}
	d.store.Reset()
	d.hasOrigin = false
	d.lastElapsed = 0
	d.log.Debug("reset", "topic", d.entry.Topic)
	if d.state == Paused {
		d.renderStatic()
	}
}

// SetParameter writes through the clamping store. A paused driver redraws
// immediately; a playing one shows the value on its next frame.
func (d *Driver) SetParameter(name string, value float64) bool {
	if !d.store.Set(name, value) {
		d.log.Debug("parameter rejected", "topic", d.entry.Topic, "name", name, "value", value)
		return false
	}
	d.afterWrite()
	return true
}

// Nudge moves a parameter by steps domain increments.
func (d *Driver) Nudge(name string, steps int) bool {
	if !d.store.Nudge(name, steps) {
		return false
	}
	d.afterWrite()
	return true
}

// Apply writes a batch of parameters and returns how many were accepted.
func (d *Driver) Apply(values map[string]float64) int {
	n := d.store.Apply(values)
	if n > 0 {
		d.afterWrite()
	}
	return n
}

func (d *Driver) Resize(width, height float64) {
	if !validSize(width, height) {
		d.log.Debug("resize rejected", "width", width, "height", height)
		return
	}
	d.width, d.height = width, height
	if d.state == Paused {
		d.renderStatic()
	}
}

// Frame renders the current state without touching the surface or the
// scheduler.
func (d *Driver) Frame() []scene.Command {
	if d.state == Playing {
		return d.entry.Render(d.frame(d.peekElapsed(d.clock.Now()), true), d.store.Get())
	}
	return d.entry.Render(d.frame(d.lastElapsed, false), d.store.Get())
}

// FrameAt renders the animated frame at an explicit elapsed time without
// starting the scheduler.
func (d *Driver) FrameAt(elapsed time.Duration) []scene.Command {
	return d.entry.Render(d.frame(elapsed.Seconds(), true), d.store.Get())
}

func (d *Driver) State() State               { return d.state }
func (d *Driver) Topic() topics.Topic        { return d.entry.Topic }
func (d *Driver) Entry() topics.Entry        { return d.entry }
func (d *Driver) Params() params.Set         { return d.store.Get() }
func (d *Driver) Adjustable() []params.Param { return d.store.Adjustable() }
func (d *Driver) Elapsed() float64           { return d.lastElapsed }
func (d *Driver) Draws() uint64              { return d.draws }
func (d *Driver) Size() (float64, float64)   { return d.width, d.height }
func (d *Driver) Registry() *topics.Registry { return d.reg }

func (d *Driver) Reading() (topics.Reading, bool) { return d.entry.Reading(d.store.Get()) }

// Pending reports whether this driver has a frame outstanding.
func (d *Driver) Pending() int {
	if d.hasPending {
		return 1
	}
	return 0
}

func (d *Driver) afterWrite() {
	if d.state == Paused {
		d.renderStatic()
	}
}

func (d *Driver) scheduleNext(tok uint64) {
	d.pending = d.sched.Schedule(func(now time.Time) { d.onFrame(tok, now) })
	d.hasPending = true
}

func (d *Driver) onFrame(tok uint64, now time.Time) {
	if tok != d.token || d.state != Playing {
		return
	}
	d.hasPending = false
	d.lastElapsed = d.peekElapsed(now)
	d.render(d.lastElapsed, true)
	d.scheduleNext(tok)
}

// cancelChain invalidates the running chain. Any callback that escapes the
// Cancel still carries the old token and returns without drawing.
func (d *Driver) cancelChain() {
	d.token++
	if d.hasPending {
		d.sched.Cancel(d.pending)
		d.hasPending = false
	}
}

func (d *Driver) teardown() {
	d.cancelChain()
	d.hasOrigin = false
	d.lastElapsed = 0
	d.state = Idle
}

// peekElapsed never runs backwards, even if the clock does.
func (d *Driver) peekElapsed(now time.Time) float64 {
	if !d.hasOrigin {
		return d.lastElapsed
	}
	e := now.Sub(d.origin).Seconds()
	if e < d.lastElapsed {
		return d.lastElapsed
	}
	return e
}

func (d *Driver) frame(elapsed float64, playing bool) topics.Frame {
	return topics.Frame{Width: d.width, Height: d.height, Elapsed: elapsed, Playing: playing}
}

func (d *Driver) renderStatic() { d.render(d.lastElapsed, false) }

func (d *Driver) render(elapsed float64, playing bool) {
	if d.surface == nil {
		return
	}
	scene.Replay(d.surface, d.entry.Render(d.frame(elapsed, playing), d.store.Get()))
	d.draws++
}
