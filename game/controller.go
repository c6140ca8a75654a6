package game

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfall/field"
	"github.com/plus3/blockfall/piece"
)

// ErrNoBlueprints is returned when a controller is created without pieces.
var ErrNoBlueprints = errors.New("no blueprints")

// Config holds everything a Controller needs. Field and Blueprints are
// required; Rand and Logger fall back to a time seeded source and a
// discarding logger.
type Config struct {
	Field      *field.Field
	Blueprints []piece.Blueprint
	Rand       *rand.Rand
	Logger     *log.Logger
}

// Controller drives a Field: it spawns pieces, advances them each tick,
// clears rows and detects the end of the game.
type Controller struct {
	field      *field.Field
	blueprints []piece.Blueprint
	rand       *rand.Rand
	log        *log.Logger
	anchor     piece.Point
	state      State
	stats      Stats
}

// NewRand returns a seeded random source so piece sequences can be replayed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// New validates cfg and spawns the first piece. If that piece cannot enter the
// field the controller starts in the GameOver state.
func New(cfg Config) (*Controller, error) {
	if cfg.Field == nil {
		return nil, errors.New("game: nil field")
	}
	if len(cfg.Blueprints) == 0 {
		return nil, ErrNoBlueprints
	}
	for _, b := range cfg.Blueprints {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
	}

	if cfg.Rand == nil {
		cfg.Rand = NewRand(uint64(time.Now().UnixNano()))
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}

	c := &Controller{
		field:      cfg.Field,
		blueprints: cfg.Blueprints,
		rand:       cfg.Rand,
		log:        cfg.Logger,
		anchor:     piece.Point{X: max(0, cfg.Field.SizeX()/2-2), Y: 0},
	}

	c.log.Printf("field %dx%d, %d blueprints, spawn anchor %s",
		c.field.SizeX(), c.field.SizeY(), len(c.blueprints), c.anchor)

	if !c.Spawn() {
		c.end(GameOver)
	}
	return c, nil
}

func (c *Controller) Field() *field.Field { return c.field }
func (c *Controller) State() State        { return c.state }
func (c *Controller) Stats() Stats        { return c.stats }

// Anchor is the field position blueprint points are offset by when spawning.
func (c *Controller) Anchor() piece.Point { return c.anchor }

// Spawn places a random blueprint at the anchor. It reports false, leaving the
// field untouched, when the piece would collide.
func (c *Controller) Spawn() bool {
	b := c.blueprints[c.rand.IntN(len(c.blueprints))]
	points := piece.Translate(b.Points, c.anchor.X, c.anchor.Y)

	if c.field.Collision(points) {
		c.log.Printf("spawn of %s blocked", b.Type)
		return false
	}

	c.field.SetActivePiece(points, b.Color, b.Type)
	c.stats.PiecesSpawned++
	c.log.Printf("spawned %s", b.Type)
	return true
}

// Tick advances the game by one step. The active piece falls one row; if it
// cannot, it is frozen, full rows are cleared and exactly one new piece is
// spawned. A blocked spawn ends the game.
func (c *Controller) Tick() TickResult {
	if c.state.Terminal() {
		return TickResult{State: c.state}
	}
	c.stats.Ticks++

	var result TickResult
	switch {
	case !c.field.HasActivePiece():
		result.Spawned = c.Spawn()
		if !result.Spawned {
			c.end(GameOver)
		}
	case c.field.MoveDown():
		result.Moved = true
	default:
		c.field.FreezeActivePiece()
		c.stats.PiecesFrozen++
		result.Frozen = true
	}

	result.RowsCleared = c.field.ClearFullRows()
	if result.RowsCleared > 0 {
		c.stats.RowsCleared += int64(result.RowsCleared)
		c.log.Printf("cleared %d rows", result.RowsCleared)
	}

	if result.Frozen {
		result.Spawned = c.Spawn()
		if !result.Spawned {
			c.end(GameOver)
		}
	}

	result.State = c.state
	return result
}

// Apply forwards a player intent to the field. It reports whether anything
// changed. Intents are ignored once the game has ended.
func (c *Controller) Apply(intent Intent) bool {
	if c.state.Terminal() {
		return false
	}

	switch intent {
	case IntentLeft:
		return c.field.MoveLeft()
	case IntentRight:
		return c.field.MoveRight()
	case IntentDown:
		return c.field.MoveDown()
	case IntentRotate:
		return c.field.Rotate()
	case IntentQuit:
		c.end(Quit)
		return true
	default:
		return false
	}
}

func (c *Controller) end(state State) {
	c.state = state
	c.log.Printf("%s after %d ticks, %d rows cleared\n%s", state, c.stats.Ticks, c.stats.RowsCleared, c.field)
}
