package engine_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/plus3/memong/engine"
	"github.com/plus3/memong/pong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type framesPresenter struct {
	frames []pong.Frame
}

func (p *framesPresenter) Present(frame pong.Frame) {
	p.frames = append(p.frames, frame)
}

// scriptedSource replays one batch of events per Poll and then quits.
type scriptedSource struct {
	batches [][]pong.Event
	polls   int
}

func (s *scriptedSource) Poll() []pong.Event {
	s.polls++
	if len(s.batches) == 0 {
		return []pong.Event{pong.Quit()}
	}
	batch := s.batches[0]
	s.batches = s.batches[1:]
	return batch
}

func TestLoopTick(t *testing.T) {
	t.Run("input then physics then present", func(t *testing.T) {
		presenter := &framesPresenter{}
		loop := engine.NewLoop(presenter)

		ok := loop.Tick([]pong.Event{pong.KeyDown(pong.ActionLeftDown)})
		require.True(t, ok)

		state := loop.State()
		assert.Equal(t, 32.0, state.Left.Y)
		assert.Equal(t, pong.Vec2{X: 322, Y: 238}, state.Ball.Pos)

		require.Len(t, presenter.frames, 1)
		assert.Equal(t, state.Frame(), presenter.frames[0])
	})

	t.Run("quit stops before the step", func(t *testing.T) {
		presenter := &framesPresenter{}
		loop := engine.NewLoop(presenter)

		ok := loop.Tick([]pong.Event{pong.KeyDown(pong.ActionLeftDown), pong.Quit()})

		assert.False(t, ok)
		assert.Equal(t, pong.NewState(), loop.State())
		assert.Empty(t, presenter.frames)
		assert.Equal(t, uint64(0), loop.Counters().Ticks)
	})

	t.Run("headless loop has no render system", func(t *testing.T) {
		loop := engine.NewLoop(nil)
		loop.Tick(nil)

		stats := loop.Stats()
		require.Equal(t, 2, stats.SystemCount)
		assert.Equal(t, "InputSystem", stats.Systems[0].Name)
		assert.Equal(t, "PhysicsSystem", stats.Systems[1].Name)
	})

	t.Run("extra systems run between physics and render", func(t *testing.T) {
		var trace []string
		presenter := engine.PresenterFunc(func(pong.Frame) { trace = append(trace, "present") })
		extra := &recordingSystem{name: "extra", trace: &trace, onFrame: func(frame *engine.UpdateFrame) {
			assert.Equal(t, pong.Vec2{X: 322, Y: 238}, frame.State.Ball.Pos)
		}}

		loop := engine.NewLoop(presenter, engine.WithSystems(extra))
		loop.Tick(nil)

		assert.Equal(t, []string{"extra", "present"}, trace)
	})
}

func TestLoopCounters(t *testing.T) {
	start := pong.NewState()
	start.Ball.Pos = pong.Vec2{X: 10, Y: 30}
	start.Ball.Vel = pong.Vec2{X: -2, Y: 2}

	loop := engine.NewLoop(nil, engine.WithState(start))
	loop.Tick(nil)

	c := loop.Counters()
	assert.Equal(t, uint64(1), c.Ticks)
	assert.Equal(t, uint64(1), c.LeftHits)
	assert.Equal(t, uint64(0), c.RightHits)

	// Run the ball off the left edge.
	s := pong.NewState()
	s.Ball.Pos = pong.Vec2{X: -1, Y: 300}
	s.Ball.Vel = pong.Vec2{X: -2, Y: 2}
	loop = engine.NewLoop(nil, engine.WithState(s))
	loop.Tick(nil)

	c = loop.Counters()
	assert.Equal(t, uint64(1), c.LeftResets)
	assert.Equal(t, uint64(0), c.RightResets)
}

func TestLoopRun(t *testing.T) {
	t.Run("runs until quit", func(t *testing.T) {
		presenter := &framesPresenter{}
		src := &scriptedSource{batches: [][]pong.Event{
			{pong.KeyDown(pong.ActionRightDown)},
			nil,
			{pong.KeyDown(pong.ActionRightDown), pong.KeyDown(pong.ActionRightUp)},
		}}

		loop := engine.NewLoop(presenter)
		err := loop.Run(context.Background(), src)

		require.NoError(t, err)
		assert.Equal(t, 4, src.polls)
		assert.Len(t, presenter.frames, 3)
		assert.Equal(t, 32.0, loop.State().Right.Y)
		assert.Equal(t, pong.Vec2{X: 326, Y: 234}, loop.State().Ball.Pos)
	})

	t.Run("context cancellation", func(t *testing.T) {
		loop := engine.NewLoop(nil, engine.WithInterval(time.Millisecond))
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() {
			done <- loop.Run(ctx, engine.SourceFunc(func() []pong.Event { return nil }))
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(time.Second):
			t.Fatal("loop did not stop after context cancellation")
		}
	})

	t.Run("already cancelled context never ticks", func(t *testing.T) {
		loop := engine.NewLoop(nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := loop.Run(ctx, engine.SourceFunc(func() []pong.Event { return nil }))

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, uint64(0), loop.Counters().Ticks)
	})
}

// ExampleLoop drives the simulation headless for a few ticks.
func ExampleLoop() {
	loop := engine.NewLoop(engine.PresenterFunc(func(f pong.Frame) {
		fmt.Printf("ball at (%.0f, %.0f)\n", f.Ball.X, f.Ball.Y)
	}))

	for range 3 {
		loop.Tick(nil)
	}
	loop.Tick([]pong.Event{pong.Quit()})

	fmt.Println("ticks:", loop.Counters().Ticks)
	// Output:
	// ball at (322, 238)
	// ball at (324, 236)
	// ball at (326, 234)
	// ticks: 3
}
