package engine

// System is one stage of a tick. Systems run in registration order and may
// keep their own state between ticks.
type System interface {
	Execute(frame *UpdateFrame)
}
