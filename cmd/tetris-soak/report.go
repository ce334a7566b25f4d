package main

import (
	"image/color"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/arcade/scene"
	"github.com/plus3/arcade/tetris"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Seed     uint64
	TPS      int

	// Results
	TotalTime     time.Duration
	SimulatedTime time.Duration
	FrameTime     Stats
	Host          scene.Stats
	DrawCalls     int64

	Sessions  int
	Pieces    int
	Lines     int
	BestScore int
	BestLevel int
	Events    map[string]int

	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Observe tallies engine events.
func (r *Report) Observe(e tetris.Event) {
	r.Events[e.Kind.String()]++

	switch e.Kind {
	case tetris.EventLock:
		r.Pieces++
	case tetris.EventLineClear:
		r.Lines += e.Lines
	case tetris.EventGameOver:
		r.Sessions++
		r.BestScore = max(r.BestScore, e.Score)
		r.BestLevel = max(r.BestLevel, e.Level)
	}
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetris Soak Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Simulated TPS:** {{.TPS}}

## Gameplay
- **Simulated Time:** {{.SimulatedTime}}
- **Finished Sessions:** {{.Sessions}}
- **Pieces Locked:** {{.Pieces}}
- **Lines Cleared:** {{.Lines}}
- **Best Score:** {{.BestScore}} (level {{.BestLevel}})
- **Events:**{{range $kind, $n := .Events}}
  - {{$kind}}: {{$n}}{{end}}

## Performance Results
- **Total Frames:** {{.Host.TotalFrames}}
- **Total Test Time:** {{.TotalTime}}
- **Draw Calls:** {{.DrawCalls}}
- **Frame Time (update + render):**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}
{{range .Host.Scenes}}
### Scene {{.Title}}
- Updates: {{.UpdateCount}}
- Update Time: avg {{.AvgDuration}}, min {{.MinDuration}}, max {{.MaxDuration}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}
`

	fm := template.FuncMap{
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

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}

// discardSurface counts draw calls without drawing anything.
type discardSurface struct {
	calls int64
}

func (s *discardSurface) FillRect(x, y, w, h float32, c color.Color)   { s.calls++ }
func (s *discardSurface) StrokeRect(x, y, w, h float32, c color.Color) { s.calls++ }
func (s *discardSurface) Line(x0, y0, x1, y1 float32, c color.Color)   { s.calls++ }
func (s *discardSurface) Text(str string, x, y float32, c color.Color) { s.calls++ }
