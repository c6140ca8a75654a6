package loop

import (
	"log"
	"time"

	"github.com/plus3/blockfall/field"
	"github.com/plus3/blockfall/game"
)

// InputSource hands over the intents gathered since the last call. Poll must
// not block.
type InputSource interface {
	Poll() []game.Intent
}

// Renderer draws the current state of a game.
type Renderer interface {
	Draw(view View) error
}

// CuePlayer is told about notable tick outcomes, typically to play a sound.
type CuePlayer interface {
	RowsCleared(n int)
	GameOver()
}

// View is the read-only picture of a game handed to renderers.
type View struct {
	Field *field.Field
	State game.State
	Stats game.Stats
}

// ViewOf captures the current view of controller.
func ViewOf(controller *game.Controller) View {
	return View{
		Field: controller.Field(),
		State: controller.State(),
		Stats: controller.Stats(),
	}
}

// InputSystem applies every pending intent to the controller.
type InputSystem struct {
	Source InputSource
}

func (s *InputSystem) Execute(frame *Frame) {
	if s.Source == nil {
		return
	}
	for _, intent := range s.Source.Poll() {
		frame.Controller.Apply(intent)
	}
}

// GravitySystem ticks the controller whenever Interval has passed. At most
// one tick runs per frame; a late loop catches up over the next frames.
type GravitySystem struct {
	Interval    time.Duration
	accumulator float64
}

func (s *GravitySystem) Execute(frame *Frame) {
	if frame.Controller.State().Terminal() {
		return
	}

	s.accumulator += frame.DeltaTime
	interval := s.Interval.Seconds()
	if s.accumulator < interval {
		return
	}
	s.accumulator -= interval

	result := frame.Controller.Tick()
	frame.Result = &result
}

// CueSystem forwards row clears and the end of the game to a CuePlayer once
// the frame is flushed. The game over cue plays once, also for a game that
// ended before its first tick.
type CueSystem struct {
	Player   CuePlayer
	gameOver bool
}

func (s *CueSystem) Execute(frame *Frame) {
	if s.Player == nil {
		return
	}

	if frame.Result != nil {
		if n := frame.Result.RowsCleared; n > 0 {
			frame.Commands.Defer(func() { s.Player.RowsCleared(n) })
		}
	}
	if !s.gameOver && frame.Controller.State() == game.GameOver {
		s.gameOver = true
		frame.Commands.Defer(s.Player.GameOver)
	}
}

// RenderSystem draws every frame. A failing renderer stops the loop.
type RenderSystem struct {
	Renderer Renderer
	Logger   *log.Logger
}

func (s *RenderSystem) Execute(frame *Frame) {
	if s.Renderer == nil {
		return
	}
	if err := s.Renderer.Draw(ViewOf(frame.Controller)); err != nil {
		if s.Logger != nil {
			s.Logger.Printf("render: %v", err)
		}
		frame.Commands.Stop()
	}
}

// TerminalSystem stops the loop once the game has ended.
type TerminalSystem struct{}

func (s *TerminalSystem) Execute(frame *Frame) {
	if frame.Controller.State().Terminal() {
		frame.Commands.Stop()
	}
}
