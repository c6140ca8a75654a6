// Package terminal renders a game with tcell and turns key presses into
// intents.
package terminal

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/palette"
	"github.com/plus3/blockfall/piece"
)

// ErrClosed is returned by Draw after Close.
var ErrClosed = errors.New("terminal closed")

const eventBuffer = 100

const (
	lockedGlyph = '█'
	activeGlyph = '▓'
	emptyGlyph  = '·'
)

// Screen draws views on a terminal and collects key presses. Draw, Poll and
// Close must be called from one goroutine.
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	wg     sync.WaitGroup
	styles *intmap.Map[uint16, tcell.Style]
	border tcell.Style
	closed bool
}

// New opens the controlling terminal.
func New() (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return NewWithScreen(screen)
}

// NewWithScreen initialises screen and starts forwarding its events.
func NewWithScreen(screen tcell.Screen) (*Screen, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	s := &Screen{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
		styles: intmap.New[uint16, tcell.Style](2 * (len(piece.Colors()) + 1)),
		border: tcell.StyleDefault.Foreground(tcell.ColorGray),
	}

	s.wg.Add(1)
	go s.pump()
	return s, nil
}

func (s *Screen) pump() {
	defer s.wg.Done()
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// Poll returns the intents typed since the last call without blocking.
func (s *Screen) Poll() []game.Intent {
	var intents []game.Intent
	for {
		select {
		case ev := <-s.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if intent := keyIntent(ev); intent != game.IntentNone {
					intents = append(intents, intent)
				}
			case *tcell.EventResize:
				s.screen.Sync()
			}
		default:
			return intents
		}
	}
}

func keyIntent(ev *tcell.EventKey) game.Intent {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.IntentLeft
	case tcell.KeyRight:
		return game.IntentRight
	case tcell.KeyDown:
		return game.IntentDown
	case tcell.KeyUp:
		return game.IntentRotate
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.IntentQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h', 'a':
			return game.IntentLeft
		case 'l', 'd':
			return game.IntentRight
		case 'j', 's':
			return game.IntentDown
		case 'k', 'w', ' ':
			return game.IntentRotate
		case 'q', 'Q':
			return game.IntentQuit
		}
	}
	return game.IntentNone
}

// Draw paints the field inside a border with a status line below it. Each
// cell takes two columns.
func (s *Screen) Draw(view loop.View) error {
	if s.closed {
		return ErrClosed
	}

	f := view.Field
	width, height := f.SizeX()*2+2, f.SizeY()+2

	s.screen.Clear()
	for x := 0; x < width; x++ {
		s.screen.SetContent(x, 0, '─', nil, s.border)
		s.screen.SetContent(x, height-1, '─', nil, s.border)
	}
	for y := 0; y < height; y++ {
		s.screen.SetContent(0, y, '│', nil, s.border)
		s.screen.SetContent(width-1, y, '│', nil, s.border)
	}
	s.screen.SetContent(0, 0, '┌', nil, s.border)
	s.screen.SetContent(width-1, 0, '┐', nil, s.border)
	s.screen.SetContent(0, height-1, '└', nil, s.border)
	s.screen.SetContent(width-1, height-1, '┘', nil, s.border)

	for y := 0; y < f.SizeY(); y++ {
		for x := 0; x < f.SizeX(); x++ {
			cell := f.Cell(x, y)
			if cell.Occupied {
				s.putCell(x, y, lockedGlyph, s.style(cell.Color, false))
			} else {
				s.putCell(x, y, emptyGlyph, s.border)
			}
		}
	}
	if active, ok := f.ActivePiece(); ok {
		style := s.style(active.Color, true)
		for _, p := range active.Points {
			s.putCell(p.X, p.Y, activeGlyph, style)
		}
	}

	status := fmt.Sprintf("rows %d  pieces %d", view.Stats.RowsCleared, view.Stats.PiecesSpawned)
	s.text(0, height, status, tcell.StyleDefault)
	switch view.State {
	case game.GameOver:
		s.text(0, height+1, "GAME OVER", tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	case game.Quit:
		s.text(0, height+1, "quit", tcell.StyleDefault)
	}

	s.screen.Show()
	return nil
}

func (s *Screen) putCell(x, y int, glyph rune, style tcell.Style) {
	s.screen.SetContent(1+2*x, 1+y, glyph, nil, style)
	s.screen.SetContent(2+2*x, 1+y, glyph, nil, style)
}

func (s *Screen) text(x, y int, str string, style tcell.Style) {
	for _, r := range str {
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (s *Screen) style(c piece.Color, active bool) tcell.Style {
	key := uint16(c) << 1
	if active {
		key |= 1
	}
	if style, ok := s.styles.Get(key); ok {
		return style
	}

	rgba := palette.RGBA(c)
	if active {
		rgba = palette.Active(c)
	}
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B)))
	s.styles.Put(key, style)
	return style
}

// Close restores the terminal.
func (s *Screen) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	close(s.done)
	s.screen.Fini()
	s.wg.Wait()
	return nil
}
