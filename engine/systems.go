package engine

import (
	"log"

	"github.com/plus3/memong/pong"
)

// InputSystem applies the tick's key-down events to the paddles.
type InputSystem struct{}

func (s *InputSystem) Execute(frame *UpdateFrame) {
	*frame.State = pong.ApplyInput(*frame.State, frame.Events)
}

// PhysicsSystem advances the ball by one tick and records what happened.
type PhysicsSystem struct {
	// Verbose logs every tick that produced a contact or a reset.
	Verbose bool
}

func (s *PhysicsSystem) Execute(frame *UpdateFrame) {
	var out pong.Outcome
	*frame.State, out = pong.Step(*frame.State)
	frame.Outcome |= out

	if s.Verbose && out != 0 {
		tick, ball := frame.Tick, frame.State.Ball
		frame.Commands.Defer(func() {
			log.Printf("tick %d: %s ball=%v vel=%v", tick, out, ball.Pos, ball.Vel)
		})
	}
}

// RenderSystem hands the finished frame to a Presenter once every other
// system of the tick has run.
type RenderSystem struct {
	Presenter Presenter
}

func (s *RenderSystem) Execute(frame *UpdateFrame) {
	state := frame.State
	frame.Commands.Defer(func() {
		s.Presenter.Present(state.Frame())
	})
}
