package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/memong/pong"
)

var (
	background    = color.Black
	centerlineClr = color.Gray{Y: 0x80}
	foreground    = color.White
)

// DrawFrame paints f onto dst, which is expected to be pong.Width by
// pong.Height logical pixels.
func DrawFrame(dst *ebiten.Image, f pong.Frame) {
	dst.Fill(background)

	for _, seg := range f.Centerline {
		vector.StrokeLine(dst,
			float32(seg.X0), float32(seg.Y0), float32(seg.X1), float32(seg.Y1),
			1, centerlineClr, false)
	}

	for _, r := range []pong.Rect{f.Left, f.Right, f.Ball} {
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), foreground, false)
	}
}
