// Package window runs a game in an ebiten window with an optional Dear ImGui
// debug overlay.
package window

import (
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
)

const (
	DefaultCellSize = 28
	tps             = 60
	margin          = 16
	statusHeight    = 40
)

// Options configures a Game. Controller is required.
type Options struct {
	Controller *game.Controller
	Cues       loop.CuePlayer
	Interval   time.Duration
	CellSize   int
	Title      string
	// Overlay shows the debug windows. F1 toggles them at runtime.
	Overlay bool
	Logger  *log.Logger
}

// Game implements ebiten.Game on top of a loop.Session.
type Game struct {
	session  *loop.Session
	input    loop.IntentQueue
	latest   latestView
	cellSize int
	title    string
	overlay  *Overlay
	linger   loop.Linger
	log      *log.Logger
}

// latestView is the session's renderer. ebiten draws on its own schedule, so
// the view is only kept until the next Draw.
type latestView struct {
	view loop.View
}

func (l *latestView) Draw(view loop.View) error {
	l.view = view
	return nil
}

func New(opts Options) *Game {
	if opts.CellSize <= 0 {
		opts.CellSize = DefaultCellSize
	}
	if opts.Title == "" {
		opts.Title = "blockfall"
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}

	g := &Game{
		cellSize: opts.CellSize,
		title:    opts.Title,
		log:      opts.Logger,
	}
	g.session = loop.NewSession(opts.Controller, loop.Options{
		Input:    &g.input,
		Renderer: &g.latest,
		Cues:     opts.Cues,
		Interval: opts.Interval,
		Logger:   opts.Logger,
	})
	g.latest.view = g.session.View()

	if opts.Overlay {
		g.overlay = NewOverlay(g.session)
	}
	return g
}

// Size is the window size needed to show the whole field.
func (g *Game) Size() (int, int) {
	f := g.session.Controller().Field()
	return f.SizeX()*g.cellSize + 2*margin, f.SizeY()*g.cellSize + 2*margin + statusHeight
}

func (g *Game) Update() error {
	if g.overlay == nil || !g.overlay.CapturesKeyboard() {
		g.input.Push(pressedIntents()...)
	}
	if g.overlay != nil && justPressed(ebiten.KeyF1) {
		g.overlay.Toggle()
	}

	dt := 1.0 / float64(ebiten.TPS())
	if g.overlay != nil {
		g.overlay.BeginFrame(dt)
	}
	running := g.session.Once(dt)
	if g.overlay != nil {
		g.overlay.EndFrame()
	}

	if running {
		return nil
	}
	// Show the final board, and let the game over cue play, before closing.
	if g.session.Controller().State() != game.GameOver || g.linger.Done(dt, anyKeyPressed()) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawView(screen, g.latest.view, g.cellSize)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until the game ends or the window is
// closed. It returns the final state.
func Run(g *Game) (game.State, error) {
	width, height := g.Size()
	if g.overlay != nil {
		g.overlay.CreateWindow(g.title, width, height)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(g.title)
	}
	ebiten.SetTPS(tps)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g.log.Printf("window opened at %dx%d", width, height)
	err := ebiten.RunGame(g)
	state := g.session.Controller().State()
	g.log.Printf("window closed: %s", state)
	return state, err
}
