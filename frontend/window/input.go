package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/game"
)

// Key repeat, in ticks.
const (
	repeatDelay    = 15
	repeatInterval = 4
)

var keyIntents = []struct {
	key    ebiten.Key
	intent game.Intent
	repeat bool
}{
	{ebiten.KeyArrowLeft, game.IntentLeft, true},
	{ebiten.KeyArrowRight, game.IntentRight, true},
	{ebiten.KeyArrowDown, game.IntentDown, true},
	{ebiten.KeyArrowUp, game.IntentRotate, false},
	{ebiten.KeySpace, game.IntentRotate, false},
	{ebiten.KeyQ, game.IntentQuit, false},
	{ebiten.KeyEscape, game.IntentQuit, false},
}

func pressedIntents() []game.Intent {
	var intents []game.Intent
	for _, k := range keyIntents {
		if justPressed(k.key) || (k.repeat && repeating(k.key)) {
			intents = append(intents, k.intent)
		}
	}
	return intents
}

func justPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

func anyKeyPressed() bool {
	return len(inpututil.AppendJustPressedKeys(nil)) > 0
}
