package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/arcade/scene"
)

// StatsSource supplies host statistics. *scene.Host satisfies it.
type StatsSource interface {
	Stats() *scene.Stats
}

// PerformanceWindow plots frame times and lists per-scene update timings.
type PerformanceWindow struct {
	source  StatsSource
	history *FrameHistory
}

func NewPerformanceWindow(source StatsSource, historyFrames int) *PerformanceWindow {
	return &PerformanceWindow{
		source:  source,
		history: NewFrameHistory(historyFrames),
	}
}

// Record adds one frame's elapsed time to the graph.
func (w *PerformanceWindow) Record(dt float64) {
	w.history.Push(dt)
}

// Item wraps the window for an Overlay.
func (w *PerformanceWindow) Item() Item {
	return Item{Render: w.Render}
}

func (w *PerformanceWindow) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 260), imgui.CondOnce)
	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := w.source.Stats()

	imgui.Text(fmt.Sprintf("Scenes: %d", stats.SceneCount))
	imgui.Text(fmt.Sprintf("Total Frames: %d", stats.TotalFrames))
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", w.history.Average(), w.history.FPS()))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	samples := w.history.Samples()
	imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))

	if imgui.TreeNodeStr("Scene Updates") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SceneStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Scene")
			imgui.TableSetupColumn("Updates")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, s := range stats.Scenes {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(s.Title)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", s.UpdateCount))
				imgui.TableNextColumn()
				imgui.Text(s.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(s.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
