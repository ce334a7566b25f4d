package scene

import "time"

// Stats provides statistics about host execution.
type Stats struct {
	SceneCount  int
	TotalFrames int64
	Scenes      []SceneStats
}

// SceneStats provides update timings for a single scene.
type SceneStats struct {
	ID            ID
	Title         string
	UpdateCount   int64
	MinDuration   time.Duration
	MaxDuration   time.Duration
	AvgDuration   time.Duration
	LastDuration  time.Duration
	TotalDuration time.Duration
}

type sceneStatsInternal struct {
	updateCount   int64
	minDuration   time.Duration
	maxDuration   time.Duration
	totalDuration time.Duration
	lastDuration  time.Duration
}

func (s *sceneStatsInternal) record(d time.Duration) {
	s.updateCount++
	s.lastDuration = d
	s.totalDuration += d

	if d < s.minDuration {
		s.minDuration = d
	}
	if d > s.maxDuration {
		s.maxDuration = d
	}
}

// Stats returns update statistics for every registered scene.
func (h *Host) Stats() *Stats {
	stats := &Stats{
		SceneCount:  len(h.order),
		TotalFrames: h.frames,
		Scenes:      make([]SceneStats, 0, len(h.order)),
	}

	for _, id := range h.order {
		r, _ := h.scenes.Get(id)
		internal := r.stats

		var avg, minDuration time.Duration
		if internal.updateCount > 0 {
			avg = internal.totalDuration / time.Duration(internal.updateCount)
			minDuration = internal.minDuration
		}

		stats.Scenes = append(stats.Scenes, SceneStats{
			ID:            r.id,
			Title:         r.title,
			UpdateCount:   internal.updateCount,
			MinDuration:   minDuration,
			MaxDuration:   internal.maxDuration,
			AvgDuration:   avg,
			LastDuration:  internal.lastDuration,
			TotalDuration: internal.totalDuration,
		})
	}

	return stats
}
