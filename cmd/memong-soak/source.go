package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/plus3/memong/pong"
)

// randomSource presses a uniformly chosen paddle key with probability rate on
// each poll. It never quits.
type randomSource struct {
	rng     *rand.Rand
	rate    float64
	presses uint64
}

func newRandomSource(seed uint64, rate float64) *randomSource {
	return &randomSource{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		rate: rate,
	}
}

func (s *randomSource) Poll() []pong.Event {
	if s.rng.Float64() >= s.rate {
		return nil
	}
	s.presses++
	action := pong.Action(1 + s.rng.IntN(4))
	return []pong.Event{pong.KeyDown(action)}
}

// checkState reports the first bound a reachable state must never break.
func checkState(s pong.State) error {
	for _, side := range []pong.Side{pong.Left, pong.Right} {
		y := s.Paddle(side).Y
		if y < 0 || y+pong.PaddleHeight > pong.Height {
			return fmt.Errorf("%s paddle out of bounds at y=%v", side, y)
		}
	}
	// The look-ahead bounce lets the ball overshoot a wall by at most one
	// vertical displacement.
	b := s.Ball
	slack := abs(b.Vel.Y) + 1e-9
	if b.Pos.Y < -slack || b.Pos.Y > pong.Height-pong.BallSize+slack {
		return fmt.Errorf("ball escaped vertically at y=%v vy=%v", b.Pos.Y, b.Vel.Y)
	}
	return nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
