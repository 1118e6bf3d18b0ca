package debugui_test

import (
	"testing"
	"time"

	"github.com/plus3/memong/debugui"
	"github.com/plus3/memong/engine"
	"github.com/stretchr/testify/assert"
)

func TestPerformanceStats(t *testing.T) {
	t.Run("empty history averages to zero", func(t *testing.T) {
		ps := debugui.NewPerformanceStats(4)
		assert.Equal(t, float32(0), ps.Average())
	})

	t.Run("average covers recorded samples only", func(t *testing.T) {
		ps := debugui.NewPerformanceStats(4)
		ps.Record(0.010)
		ps.Record(0.020)
		assert.InDelta(t, 15.0, ps.Average(), 1e-4)
	})

	t.Run("oldest sample is overwritten", func(t *testing.T) {
		ps := debugui.NewPerformanceStats(2)
		ps.Record(0.100)
		ps.Record(0.002)
		ps.Record(0.004)
		assert.InDelta(t, 3.0, ps.Average(), 1e-4)
	})

	t.Run("history is never empty", func(t *testing.T) {
		ps := debugui.NewPerformanceStats(0)
		ps.Record(0.001)
		assert.InDelta(t, 1.0, ps.Average(), 1e-4)
	})
}

func TestFrameTimer(t *testing.T) {
	timer := debugui.NewFrameTimer()
	time.Sleep(2 * time.Millisecond)

	first := timer.GetDeltaTime()
	second := timer.GetDeltaTime()

	assert.GreaterOrEqual(t, first, float32(0.002))
	assert.Less(t, second, first)
}

func TestSystemWithoutView(t *testing.T) {
	sys := debugui.NewSystem(8)
	loop := engine.NewLoop(nil, engine.WithSystems(sys))

	for range 3 {
		loop.Tick(nil)
	}

	assert.Greater(t, sys.Stats.Average(), float32(0))
	stats := loop.Stats()
	assert.Equal(t, 3, stats.SystemCount)
	assert.Equal(t, "System", stats.Systems[2].Name)
}
