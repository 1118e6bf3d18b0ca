package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
)

type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	samples       int
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	if historyFrames < 1 {
		historyFrames = 1
	}
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Record stores one tick duration, given in seconds, overwriting the oldest
// sample once the history is full.
func (ps *PerformanceStats) Record(deltaTime float32) {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
	if ps.samples < ps.historyFrames {
		ps.samples++
	}
}

// Average returns the mean recorded tick time in milliseconds.
func (ps *PerformanceStats) Average() float32 {
	if ps.samples == 0 {
		return 0
	}
	var total float32
	for _, ft := range ps.frameHistory[:ps.samples] {
		total += ft
	}
	return total / float32(ps.samples)
}

func (ps *PerformanceStats) Render(tick uint64, view LoopView) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 320), imgui.CondOnce)
	if !imgui.BeginV("Memong Debug", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	state := view.State()
	counters := view.Counters()

	imgui.Text(fmt.Sprintf("Tick: %d", tick))
	imgui.Text(fmt.Sprintf("Ball: (%.1f, %.1f) vel (%.2f, %.2f)",
		state.Ball.Pos.X, state.Ball.Pos.Y, state.Ball.Vel.X, state.Ball.Vel.Y))
	imgui.Text(fmt.Sprintf("Paddles: left %.0f  right %.0f", state.Left.Y, state.Right.Y))

	avg := ps.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Tick Time: %.2f ms (%.0f TPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Tick Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##ticktime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Counters") {
		imgui.BulletText(fmt.Sprintf("Left hits: %d", counters.LeftHits))
		imgui.BulletText(fmt.Sprintf("Right hits: %d", counters.RightHits))
		imgui.BulletText(fmt.Sprintf("Wall bounces: %d", counters.WallBounces))
		imgui.BulletText(fmt.Sprintf("Resets: %d left, %d right", counters.LeftResets, counters.RightResets))
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("System Timings") {
		stats := view.Stats()
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
