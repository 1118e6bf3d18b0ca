package pong

// Ball is the single ball in play.
type Ball struct {
	Pos Vec2
	Vel Vec2
}

// Rect returns the area covered by the ball.
func (b Ball) Rect() Rect {
	return Rect{X: b.Pos.X, Y: b.Pos.Y, W: BallSize, H: BallSize}
}

// Paddle is a vertically moving paddle. Only the top edge is stored; the
// horizontal position is fixed by the side it plays on.
type Paddle struct {
	Y float64
}

// Side identifies one of the two paddles.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// X returns the fixed left edge of the paddle on side s.
func (s Side) X() float64 {
	if s == Left {
		return PaddleOffset
	}
	return Width - PaddleWidth - PaddleOffset
}

// Rect returns the area covered by a paddle on side s.
func (p Paddle) Rect(s Side) Rect {
	return Rect{X: s.X(), Y: p.Y, W: PaddleWidth, H: PaddleHeight}
}

// State is the whole simulated world. It is a plain value: copying a State
// snapshots the world.
type State struct {
	Ball  Ball
	Left  Paddle
	Right Paddle
}

var (
	startVelocity     = Vec2{X: 2, Y: -2}
	leftMissVelocity  = Vec2{X: 2, Y: 2}
	rightMissVelocity = Vec2{X: -2, Y: 2}
)

// NewState returns the world as it is at startup: the ball centered and moving
// up-right, both paddles at the top of the arena.
func NewState() State {
	return State{
		Ball: Ball{Pos: Center(), Vel: startVelocity},
	}
}

// Paddle returns a pointer to the paddle on side s.
func (s *State) Paddle(side Side) *Paddle {
	if side == Left {
		return &s.Left
	}
	return &s.Right
}

// Reset recenters the ball and gives it velocity vel.
func (s *State) Reset(vel Vec2) {
	s.Ball.Pos = Center()
	s.Ball.Vel = vel
}

// Frame is the drawable view of a State handed to renderers.
type Frame struct {
	Ball       Rect
	Left       Rect
	Right      Rect
	Centerline Dashes
}

// Frame returns the render snapshot of the current state.
func (s State) Frame() Frame {
	return Frame{
		Ball:       s.Ball.Rect(),
		Left:       s.Left.Rect(Left),
		Right:      s.Right.Rect(Right),
		Centerline: centerline,
	}
}
