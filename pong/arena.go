// Package pong implements the two-paddle Pong simulation: the arena geometry,
// the world state, the input translator and the per-tick physics step.
//
// Everything in this package is pure arithmetic over value types. Presentation,
// input capture and frame pacing live in the engine and frontend packages.
package pong

// Arena geometry, in pixels. These are fixed for the life of the process.
const (
	Width  = 640
	Height = 480

	BallSize = 16

	PaddleWidth  = 16
	PaddleHeight = 64
	// PaddleOffset is the horizontal gap between each paddle and its wall.
	PaddleOffset = 8

	// MoveStep is the vertical distance a paddle travels per key press.
	MoveStep = 32
)

// Centerline dash geometry.
const (
	dashStart  = 8
	dashLength = 8
	dashPitch  = 20

	dashCount = (Height - 2*dashStart + dashPitch - 1) / dashPitch
)

// Vec2 is a 2D position or velocity.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Segment is a line from (X0, Y0) to (X1, Y1).
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Center returns the middle of the arena, where the ball starts and restarts.
func Center() Vec2 {
	return Vec2{X: Width / 2, Y: Height / 2}
}

// Dashes is the dashed divider down the middle of the arena. It is an array
// so every holder has its own copy.
type Dashes [dashCount]Segment

var centerline = buildCenterline()

func buildCenterline() Dashes {
	var d Dashes
	for i := range d {
		y := float64(dashStart + i*dashPitch)
		d[i] = Segment{X0: Width / 2, Y0: y, X1: Width / 2, Y1: y + dashLength}
	}
	return d
}

// Centerline returns the static divider drawn down the middle of the arena.
func Centerline() Dashes {
	return centerline
}
