package main

import (
	"strings"
	"testing"
	"time"

	"github.com/plus3/blockfall/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	var s Stats
	s.Finalize()
	assert.Zero(t, s.Avg)

	s.Samples = []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}
	s.Finalize()
	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)
	assert.Equal(t, 3*time.Millisecond, s.P99)
	assert.Equal(t, 3*time.Millisecond, s.Samples[0], "samples keep their order")
}

func TestReportGenerate(t *testing.T) {
	r := &Report{Duration: time.Second, Width: 10, Height: 20, Seed: 7}
	r.add(game.Stats{Ticks: 100, PiecesSpawned: 20, RowsCleared: 3})
	r.add(game.Stats{Ticks: 50, PiecesSpawned: 10, RowsCleared: 1})

	var out strings.Builder
	require.NoError(t, r.Generate(&out))

	text := out.String()
	assert.Contains(t, text, "**Field:** 10x20")
	assert.Contains(t, text, "**Games Played:** 2")
	assert.Contains(t, text, "**Ticks:** 150")
	assert.Contains(t, text, "**Rows Cleared:** 4 (2 per game)")
	assert.NotContains(t, text, "GC Pause")
}
