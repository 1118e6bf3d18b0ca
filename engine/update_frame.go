package engine

import "github.com/plus3/memong/pong"

// UpdateFrame carries everything a System needs for one tick.
type UpdateFrame struct {
	Tick     uint64
	Events   []pong.Event
	State    *pong.State
	Outcome  pong.Outcome
	Commands *Commands
}

func newUpdateFrame(tick uint64, state *pong.State, events []pong.Event, commands *Commands) *UpdateFrame {
	return &UpdateFrame{
		Tick:     tick,
		Events:   events,
		State:    state,
		Commands: commands,
	}
}
