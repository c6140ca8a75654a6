package game

// State is the lifecycle state of a game.
type State uint8

const (
	// Running means pieces keep falling.
	Running State = iota
	// GameOver means a new piece could not enter the field.
	GameOver
	// Quit means the player asked to stop.
	Quit
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case GameOver:
		return "game over"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Terminal reports whether the game has ended.
func (s State) Terminal() bool {
	return s != Running
}

// Intent is a discrete player command forwarded by a frontend.
type Intent uint8

const (
	IntentNone Intent = iota
	IntentLeft
	IntentRight
	IntentDown
	IntentRotate
	IntentQuit
)

func (i Intent) String() string {
	switch i {
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentDown:
		return "down"
	case IntentRotate:
		return "rotate"
	case IntentQuit:
		return "quit"
	default:
		return "none"
	}
}

// TickResult describes what a single tick did.
type TickResult struct {
	Moved       bool
	Frozen      bool
	RowsCleared int
	Spawned     bool
	State       State
}

// Stats counts what happened over the lifetime of a controller.
type Stats struct {
	Ticks         int64
	PiecesSpawned int64
	PiecesFrozen  int64
	RowsCleared   int64
}
