package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/memong/engine"
)

type Report struct {
	// Configuration
	RunID     string
	Seed      uint64
	Duration  time.Duration
	TickLimit uint64
	InputRate float64

	// Results
	TotalUpdates   uint64
	TotalTime      time.Duration
	UpdateTime     Stats
	KeyPresses     uint64
	Counters       engine.Counters
	Systems        []engine.SystemStats
	Violations     []string
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Stats aggregates durations as they arrive; individual samples are not kept.
type Stats struct {
	Count int64
	Total time.Duration
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
}

func (s *Stats) Record(d time.Duration) {
	if s.Count == 0 || d < s.Min {
		s.Min = d
	}
	s.Max = max(s.Max, d)
	s.Total += d
	s.Count++
}

func (s *Stats) Finalize() {
	if s.Count == 0 {
		return
	}
	s.Avg = s.Total / time.Duration(s.Count)
}

const reportTemplate = `
# Memong Soak Report

## Run
- **Run ID:** {{.RunID}}
- **Seed:** {{.Seed}}
- **Duration Limit:** {{.Duration}}
- **Tick Limit:** {{if .TickLimit}}{{.TickLimit}}{{else}}none{{end}}
- **Input Rate:** {{printf "%.3f" .InputRate}}

## Simulation
- **Ticks:** {{.TotalUpdates}}
- **Key Presses:** {{.KeyPresses}}
- **Paddle Hits:** {{.Counters.LeftHits}} left, {{.Counters.RightHits}} right
- **Wall Bounces:** {{.Counters.WallBounces}}
- **Resets:** {{.Counters.LeftResets}} left, {{.Counters.RightResets}} right
{{- if .Violations}}

## Invariant Violations ({{len .Violations}})
{{- range .Violations}}
- {{.}}
{{- end}}
{{- else}}
- **Invariant Violations:** none
{{- end}}

## Performance Results
- **Total Run Time:** {{.TotalTime}}
- **Tick Time:**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

| System | Runs | Avg | Min | Max |
|---|---|---|---|---|
{{- range .Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{end}}`

var reportFuncs = template.FuncMap{
	"bsub": func(a, b uint64) int64 {
		return int64(a) - int64(b)
	},
	"usub": func(a, b uint32) uint32 {
		return a - b
	},
	"ns": func(ns uint64) string {
		return time.Duration(ns).String()
	},
}

func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}
	return tmpl.Execute(w, r)
}
