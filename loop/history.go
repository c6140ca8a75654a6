package loop

// FrameHistory keeps the most recent frame times, in milliseconds, in a
// fixed ring.
type FrameHistory struct {
	samples []float32
	index   int
	filled  int
}

func NewFrameHistory(frames int) *FrameHistory {
	return &FrameHistory{samples: make([]float32, max(1, frames))}
}

// Add records a frame of dt seconds.
func (h *FrameHistory) Add(dt float64) {
	h.samples[h.index] = float32(dt * 1000.0)
	h.index = (h.index + 1) % len(h.samples)
	h.filled = min(h.filled+1, len(h.samples))
}

// Samples returns the ring in storage order. It is never empty, which lets it
// back a plot directly.
func (h *FrameHistory) Samples() []float32 {
	return h.samples
}

// Average is the mean frame time over the recorded frames.
func (h *FrameHistory) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, ms := range h.samples {
		sum += ms
	}
	return sum / float32(h.filled)
}

// FPS derived from Average. Zero until a frame with a duration was added.
func (h *FrameHistory) FPS() float32 {
	avg := h.Average()
	if avg == 0 {
		return 0
	}
	return 1000.0 / avg
}
