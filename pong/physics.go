package pong

import "strings"

// Paddle hit response. The vertical factor is a scale, not a reflection: the
// ball keeps its vertical direction and only speeds up.
const (
	hitScaleX = -1.2
	hitScaleY = 1.2
)

// Outcome records what happened during a Step. It is informational only.
type Outcome uint8

const (
	HitLeft Outcome = 1 << iota
	HitRight
	BounceWall
	ResetLeft
	ResetRight
)

var outcomeNames = []struct {
	flag Outcome
	name string
}{
	{HitLeft, "hit-left"},
	{HitRight, "hit-right"},
	{BounceWall, "bounce-wall"},
	{ResetLeft, "reset-left"},
	{ResetRight, "reset-right"},
}

// Has reports whether every flag in f is set in o.
func (o Outcome) Has(f Outcome) bool {
	return o&f == f
}

func (o Outcome) String() string {
	if o == 0 {
		return "none"
	}
	var parts []string
	for _, n := range outcomeNames {
		if o.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// inSpan reports whether y lies strictly inside the paddle's vertical extent.
func (p Paddle) inSpan(y float64) bool {
	return p.Y < y && y < p.Y+PaddleHeight
}

// Step advances the world by one tick and returns the new state. The rules are
// applied in a fixed order: paddle hits, wall bounce, miss reset, then the
// position update using whatever velocity the earlier rules left behind.
func Step(s State) (State, Outcome) {
	var out Outcome
	b := &s.Ball

	// Both sides are tested; a ball touching both in one tick is scaled twice.
	if b.Pos.X < BallSize+PaddleOffset && s.Left.inSpan(b.Pos.Y) {
		b.Vel.X *= hitScaleX
		b.Vel.Y *= hitScaleY
		out |= HitLeft
	}
	if b.Pos.X > Width-BallSize-PaddleOffset-PaddleWidth && s.Right.inSpan(b.Pos.Y) {
		b.Vel.X *= hitScaleX
		b.Vel.Y *= hitScaleY
		out |= HitRight
	}

	// Look ahead one displacement so the ball never sinks past a wall.
	nextY := b.Pos.Y + b.Vel.Y
	if nextY < 0 || nextY > Height-BallSize {
		b.Vel.Y *= -1
		out |= BounceWall
	}

	if b.Pos.X < 0 {
		s.Reset(leftMissVelocity)
		out |= ResetLeft
	}
	if b.Pos.X+BallSize > Width {
		s.Reset(rightMissVelocity)
		out |= ResetRight
	}

	b.Pos = b.Pos.Add(b.Vel)
	return s, out
}
