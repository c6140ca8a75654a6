package loop

import "github.com/plus3/blockfall/game"

// Frame is the context handed to every system during one loop iteration.
type Frame struct {
	// DeltaTime is the time since the previous iteration, in seconds.
	DeltaTime  float64
	Controller *game.Controller
	Commands   *Commands
	// Result is set when a tick ran during this frame.
	Result *game.TickResult
}

func newFrame(dt float64, controller *game.Controller) *Frame {
	return &Frame{
		DeltaTime:  dt,
		Controller: controller,
		Commands:   newCommands(),
	}
}
