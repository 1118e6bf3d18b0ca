package pong

// Action is a discrete paddle move request.
type Action int

const (
	ActionNone Action = iota
	ActionLeftUp
	ActionLeftDown
	ActionRightUp
	ActionRightDown
)

var actionNames = [...]string{
	ActionNone:      "none",
	ActionLeftUp:    "left-up",
	ActionLeftDown:  "left-down",
	ActionRightUp:   "right-up",
	ActionRightDown: "right-down",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// EventKind distinguishes the events a frontend can report.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventQuit
)

// Event is one input occurrence observed since the previous tick.
type Event struct {
	Kind   EventKind
	Action Action
}

// KeyDown returns a key-down event carrying action a.
func KeyDown(a Action) Event {
	return Event{Kind: EventKeyDown, Action: a}
}

// Quit returns a quit event.
func Quit() Event {
	return Event{Kind: EventQuit}
}

// HasQuit reports whether events contains a quit event.
func HasQuit(events []Event) bool {
	for _, ev := range events {
		if ev.Kind == EventQuit {
			return true
		}
	}
	return false
}

// Move applies a single paddle action. A move that fails its guard is dropped,
// not clamped: an up move needs the paddle below the top edge, a down move
// needs two steps of room below the paddle's top. It reports whether the
// paddle moved.
func (s *State) Move(a Action) bool {
	var p *Paddle
	up := false
	switch a {
	case ActionLeftUp:
		p, up = &s.Left, true
	case ActionLeftDown:
		p = &s.Left
	case ActionRightUp:
		p, up = &s.Right, true
	case ActionRightDown:
		p = &s.Right
	default:
		return false
	}

	if up {
		if p.Y > 0 {
			p.Y -= MoveStep
			return true
		}
		return false
	}

	if p.Y+2*MoveStep < Height {
		p.Y += MoveStep
		return true
	}
	return false
}

// ApplyInput returns s with every key-down event in events applied in order.
// Quit events and unknown actions are ignored.
func ApplyInput(s State, events []Event) State {
	for _, ev := range events {
		if ev.Kind != EventKeyDown {
			continue
		}
		s.Move(ev.Action)
	}
	return s
}
