// Package loop runs a game: it polls input, ticks the controller on a fixed
// interval and hands the result to renderers and cue players.
package loop

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/plus3/blockfall/game"
)

const (
	DefaultInterval     = 500 * time.Millisecond
	DefaultPollInterval = 16 * time.Millisecond
)

// Options configures a Session. Every collaborator is optional.
type Options struct {
	Input    InputSource
	Renderer Renderer
	Cues     CuePlayer
	// Interval between ticks. Defaults to DefaultInterval.
	Interval time.Duration
	// PollInterval between loop iterations in Run. Defaults to DefaultPollInterval.
	PollInterval time.Duration
	Logger       *log.Logger
}

// Session wires a controller to its input, gravity, cue and render systems.
type Session struct {
	controller   *game.Controller
	scheduler    *Scheduler
	pollInterval time.Duration
	log          *log.Logger
}

// NewSession builds the system pipeline for controller.
func NewSession(controller *game.Controller, opts Options) *Session {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}

	scheduler := NewScheduler(controller)
	scheduler.Register(&InputSystem{Source: opts.Input})
	scheduler.Register(&GravitySystem{Interval: opts.Interval})
	scheduler.Register(&CueSystem{Player: opts.Cues})
	scheduler.Register(&RenderSystem{Renderer: opts.Renderer, Logger: opts.Logger})
	scheduler.Register(&TerminalSystem{})

	return &Session{
		controller:   controller,
		scheduler:    scheduler,
		pollInterval: opts.PollInterval,
		log:          opts.Logger,
	}
}

func (s *Session) Controller() *game.Controller { return s.controller }
func (s *Session) Scheduler() *Scheduler        { return s.scheduler }

// View returns the current picture of the game.
func (s *Session) View() View {
	return ViewOf(s.controller)
}

// Once runs a single loop iteration of dt seconds. It reports false once the
// loop has stopped.
func (s *Session) Once(dt float64) bool {
	return s.scheduler.Once(dt)
}

// Run polls until the game ends or ctx is done and returns the final state.
// The error is non-nil only when ctx ended the loop.
func (s *Session) Run(ctx context.Context) (game.State, error) {
	s.log.Printf("loop started, polling every %s", s.pollInterval)

	err := s.scheduler.Run(ctx, s.pollInterval)

	state := s.controller.State()
	s.log.Printf("loop stopped after %d frames: %s", s.scheduler.GetStats().Frames, state)
	return state, err
}
