package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/field"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var domino = piece.Blueprint{
	Type:   "domino",
	Color:  piece.ColorGreen,
	Points: []piece.Point{{X: 0, Y: 0}, {X: 1, Y: 0}},
}

func newController(t testing.TB, sizeX, sizeY int) *game.Controller {
	t.Helper()
	c, err := game.New(game.Config{
		Field:      field.New(sizeX, sizeY),
		Blueprints: []piece.Blueprint{domino},
		Rand:       game.NewRand(1),
	})
	require.NoError(t, err)
	return c
}

type recordingSystem struct {
	name     string
	trace    *[]string
	deferred bool
	stop     bool
}

func (s *recordingSystem) Execute(frame *loop.Frame) {
	*s.trace = append(*s.trace, s.name)
	if s.deferred {
		frame.Commands.Defer(func() { *s.trace = append(*s.trace, s.name+" deferred") })
	}
	if s.stop {
		frame.Commands.Stop()
	}
}

func TestScheduler(t *testing.T) {
	t.Run("systems run in order and deferred work runs last", func(t *testing.T) {
		var trace []string
		scheduler := loop.NewScheduler(newController(t, 4, 4))
		scheduler.Register(&recordingSystem{name: "first", trace: &trace, deferred: true})
		scheduler.Register(&recordingSystem{name: "second", trace: &trace})

		assert.True(t, scheduler.Once(0.1))
		assert.Equal(t, []string{"first", "second", "first deferred"}, trace)

		assert.True(t, scheduler.Once(0.1))
		assert.Len(t, trace, 6)
	})

	t.Run("stop ends the loop after the frame", func(t *testing.T) {
		var trace []string
		scheduler := loop.NewScheduler(newController(t, 4, 4))
		scheduler.Register(&recordingSystem{name: "stopper", trace: &trace, stop: true})
		scheduler.Register(&recordingSystem{name: "after", trace: &trace})

		assert.False(t, scheduler.Once(0.1))
		assert.True(t, scheduler.Stopped())
		assert.Equal(t, []string{"stopper", "after"}, trace)

		assert.False(t, scheduler.Once(0.1))
		assert.Len(t, trace, 2)
	})

	t.Run("stats", func(t *testing.T) {
		var trace []string
		scheduler := loop.NewScheduler(newController(t, 4, 4))
		scheduler.Register(&recordingSystem{name: "a", trace: &trace})
		scheduler.Register(&loop.TerminalSystem{})

		stats := scheduler.GetStats()
		assert.Equal(t, 2, stats.SystemCount)
		assert.Equal(t, time.Duration(0), stats.Systems[0].MinDuration)

		for range 3 {
			scheduler.Once(0.1)
		}

		stats = scheduler.GetStats()
		assert.Equal(t, int64(3), stats.Frames)
		assert.Equal(t, int64(6), stats.TotalExecutions)
		require.Len(t, stats.Systems, 2)
		assert.Equal(t, "recordingSystem", stats.Systems[0].Name)
		assert.Equal(t, "TerminalSystem", stats.Systems[1].Name)
		for _, s := range stats.Systems {
			assert.Equal(t, int64(3), s.ExecutionCount)
			assert.LessOrEqual(t, s.MinDuration, s.MaxDuration)
			assert.GreaterOrEqual(t, s.TotalDuration, s.LastDuration)
		}
	})

	t.Run("run stops on cancellation", func(t *testing.T) {
		var trace []string
		scheduler := loop.NewScheduler(newController(t, 4, 4))
		scheduler.Register(&recordingSystem{name: "a", trace: &trace})

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
		defer cancel()

		err := scheduler.Run(ctx, time.Millisecond)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.NotEmpty(t, trace)
	})
}

func TestCommandsFlush(t *testing.T) {
	var order []int
	var cmds loop.Commands
	cmds.Defer(func() { order = append(order, 1) })
	cmds.Defer(func() { order = append(order, 2) })

	assert.False(t, cmds.Flush())
	assert.Equal(t, []int{1, 2}, order)

	cmds.Stop()
	assert.True(t, cmds.Flush())
	assert.False(t, cmds.Flush())
	assert.Equal(t, []int{1, 2}, order)
}
