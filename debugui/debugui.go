// Package debugui draws a Dear ImGui diagnostics overlay on top of the ebiten
// frontend. It shows the live ball and paddle state, the running counters and
// per-system timings of the engine loop.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/memong/engine"
	"github.com/plus3/memong/pong"
)

// LoopView is the read-only slice of *engine.Loop the overlay reports on.
type LoopView interface {
	State() pong.State
	Counters() engine.Counters
	Stats() *engine.SchedulerStats
}

// Overlay wraps the ebiten ImGui backend. BeginFrame and EndFrame must bracket
// every tick that renders widgets.
type Overlay struct {
	*ebitenbackend.EbitenBackend
}

// NewOverlay creates the game window through the ImGui backend so both share
// one ebiten context.
func NewOverlay(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &Overlay{EbitenBackend: backend}
}

// WantsKeyboard reports whether ImGui is consuming keyboard input this frame.
func (o *Overlay) WantsKeyboard() bool {
	return imgui.CurrentIO().WantCaptureKeyboard()
}

// System queues the diagnostics panel once per tick. Register it with
// engine.WithSystems and set View once the loop exists.
type System struct {
	View  LoopView
	Stats *PerformanceStats

	timer *FrameTimer
}

// NewSystem returns a System keeping historyFrames samples of tick time.
func NewSystem(historyFrames int) *System {
	return &System{
		Stats: NewPerformanceStats(historyFrames),
		timer: NewFrameTimer(),
	}
}

func (s *System) Execute(frame *engine.UpdateFrame) {
	s.Stats.Record(s.timer.GetDeltaTime())
	if s.View == nil {
		return
	}
	tick := frame.Tick
	frame.Commands.Defer(func() {
		s.Stats.Render(tick, s.View)
	})
}
