package tty

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/memong/pong"
)

var (
	centerlineStyle = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	solidStyle      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	emptyStyle      = tcell.StyleDefault.Background(tcell.ColorBlack)
)

const (
	centerlineRune = '│'
	solidRune      = '█'
)

// grid maps arena coordinates onto terminal cells.
type grid struct {
	cols, rows int
}

// span returns the half-open cell range covering [lo, lo+size) along an axis
// of n cells spanning extent arena units. A non-empty span covers at least
// one cell.
func span(lo, size float64, n int, extent float64) (int, int) {
	first := int(math.Floor(lo * float64(n) / extent))
	last := int(math.Ceil((lo + size) * float64(n) / extent))
	if last <= first {
		last = first + 1
	}
	return max(first, 0), min(last, n)
}

func (g grid) fill(screen tcell.Screen, r pong.Rect, ch rune, style tcell.Style) {
	x0, x1 := span(r.X, r.W, g.cols, pong.Width)
	y0, y1 := span(r.Y, r.H, g.rows, pong.Height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// Draw renders f scaled to the whole screen. It does not call Show.
func Draw(screen tcell.Screen, f pong.Frame) {
	cols, rows := screen.Size()
	g := grid{cols: cols, rows: rows}

	screen.Fill(' ', emptyStyle)

	for _, seg := range f.Centerline {
		g.fill(screen, pong.Rect{X: seg.X0, Y: seg.Y0, H: seg.Y1 - seg.Y0}, centerlineRune, centerlineStyle)
	}
	for _, r := range []pong.Rect{f.Left, f.Right, f.Ball} {
		g.fill(screen, r, solidRune, solidStyle)
	}
}
