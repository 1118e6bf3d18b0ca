// Package engine drives the Pong simulation: it owns the world state, runs
// the input, physics and render systems once per tick, and keeps the loop
// going until a quit event arrives.
package engine

import (
	"context"
	"time"

	"github.com/plus3/memong/pong"
)

// Presenter receives the drawable state after every tick. A Presenter that
// blocks until the frame is on screen paces the loop.
type Presenter interface {
	Present(frame pong.Frame)
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(frame pong.Frame)

func (f PresenterFunc) Present(frame pong.Frame) { f(frame) }

// Source yields the input events gathered since the previous call. Poll must
// not block waiting for new input.
type Source interface {
	Poll() []pong.Event
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func() []pong.Event

func (f SourceFunc) Poll() []pong.Event { return f() }

// Counters tallies what the simulation has done since the loop started.
type Counters struct {
	Ticks       uint64
	LeftHits    uint64
	RightHits   uint64
	WallBounces uint64
	LeftResets  uint64
	RightResets uint64
}

func (c *Counters) add(out pong.Outcome) {
	c.Ticks++
	if out.Has(pong.HitLeft) {
		c.LeftHits++
	}
	if out.Has(pong.HitRight) {
		c.RightHits++
	}
	if out.Has(pong.BounceWall) {
		c.WallBounces++
	}
	if out.Has(pong.ResetLeft) {
		c.LeftResets++
	}
	if out.Has(pong.ResetRight) {
		c.RightResets++
	}
}

// Loop owns the simulation state and sequences one tick at a time.
type Loop struct {
	state     pong.State
	scheduler *Scheduler
	counters  Counters
	interval  time.Duration
	verbose   bool
	extra     []System
}

// Option configures a Loop.
type Option func(*Loop)

// WithInterval paces Run with a ticker instead of relying on the presenter.
func WithInterval(d time.Duration) Option {
	return func(l *Loop) { l.interval = d }
}

// WithState starts the loop from s instead of pong.NewState().
func WithState(s pong.State) Option {
	return func(l *Loop) { l.state = s }
}

// WithVerbose logs contacts and resets as they happen.
func WithVerbose(v bool) Option {
	return func(l *Loop) { l.verbose = v }
}

// WithSystems registers extra systems after physics and before rendering.
func WithSystems(systems ...System) Option {
	return func(l *Loop) { l.extra = append(l.extra, systems...) }
}

// NewLoop builds a loop that presents every tick to p. A nil Presenter runs
// the simulation headless.
func NewLoop(p Presenter, opts ...Option) *Loop {
	l := &Loop{state: pong.NewState()}
	for _, opt := range opts {
		opt(l)
	}

	l.scheduler = NewScheduler()
	l.scheduler.Register(&InputSystem{})
	l.scheduler.Register(&PhysicsSystem{Verbose: l.verbose})
	for _, system := range l.extra {
		l.scheduler.Register(system)
	}
	if p != nil {
		l.scheduler.Register(&RenderSystem{Presenter: p})
	}
	return l
}

// Tick runs one iteration with the given events. It returns false, without
// touching the state, when events contain a quit.
func (l *Loop) Tick(events []pong.Event) bool {
	if pong.HasQuit(events) {
		return false
	}
	frame := l.scheduler.Once(&l.state, events)
	l.counters.add(frame.Outcome)
	return true
}

// Run polls src and ticks until a quit event is seen, returning nil, or until
// ctx is done, returning ctx.Err().
func (l *Loop) Run(ctx context.Context, src Source) error {
	var pace <-chan time.Time
	if l.interval > 0 {
		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()
		pace = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !l.Tick(src.Poll()) {
			return nil
		}

		if pace != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-pace:
			}
		}
	}
}

// State returns a copy of the current world.
func (l *Loop) State() pong.State {
	return l.state
}

// Counters returns the running tallies.
func (l *Loop) Counters() Counters {
	return l.counters
}

// Stats returns the scheduler's per-system timings.
func (l *Loop) Stats() *SchedulerStats {
	return l.scheduler.GetStats()
}
