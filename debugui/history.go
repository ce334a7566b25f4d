package debugui

// FrameHistory is a fixed-size ring of frame times in milliseconds, laid out
// for imgui.PlotLinesFloatPtr.
type FrameHistory struct {
	samples []float32
	index   int
	filled  int
}

func NewFrameHistory(frames int) *FrameHistory {
	if frames <= 0 {
		frames = 1
	}
	return &FrameHistory{samples: make([]float32, frames)}
}

// Push records a frame time given in seconds.
func (h *FrameHistory) Push(seconds float64) {
	h.samples[h.index] = float32(seconds * 1000)
	h.index = (h.index + 1) % len(h.samples)
	if h.filled < len(h.samples) {
		h.filled++
	}
}

// Average returns the mean of the recorded frame times in milliseconds.
func (h *FrameHistory) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, s := range h.samples[:h.filled] {
		sum += s
	}
	return sum / float32(h.filled)
}

// FPS derived from Average, or zero before the first frame.
func (h *FrameHistory) FPS() float32 {
	avg := h.Average()
	if avg == 0 {
		return 0
	}
	return 1000 / avg
}

// Samples returns the backing ring. Index 0 is not necessarily the oldest
// sample.
func (h *FrameHistory) Samples() []float32 {
	return h.samples
}
