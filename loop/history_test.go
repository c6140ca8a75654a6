package loop_test

import (
	"testing"

	"github.com/plus3/blockfall/loop"
	"github.com/stretchr/testify/assert"
)

func TestFrameHistory(t *testing.T) {
	h := loop.NewFrameHistory(4)
	assert.Len(t, h.Samples(), 4)
	assert.Zero(t, h.Average())
	assert.Zero(t, h.FPS())

	h.Add(0.010)
	h.Add(0.030)
	assert.InDelta(t, 20.0, h.Average(), 0.001)
	assert.InDelta(t, 50.0, h.FPS(), 0.01)

	h.Add(0.020)
	h.Add(0.020)
	h.Add(0.020) // overwrites the 10ms frame
	assert.InDelta(t, 22.5, h.Average(), 0.001)
	assert.InDeltaSlice(t, []float32{20, 30, 20, 20}, h.Samples(), 0.001)
}

func TestFrameHistoryClampsSize(t *testing.T) {
	h := loop.NewFrameHistory(0)
	h.Add(0.5)
	h.Add(0.25)
	assert.Equal(t, []float32{250}, h.Samples())
	assert.InDelta(t, 250.0, h.Average(), 0.001)
}
