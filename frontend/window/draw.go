package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/palette"
)

var gridLine = color.RGBA{R: 40, G: 40, B: 48, A: 255}

func drawView(screen *ebiten.Image, view loop.View, cellSize int) {
	screen.Fill(palette.Background)
	if view.Field == nil {
		return
	}

	f := view.Field
	size := float32(cellSize)
	inner := size - 1

	vector.StrokeRect(screen, margin-1, margin-1, float32(f.SizeX())*size+2, float32(f.SizeY())*size+2, 1, gridLine, false)

	for y := 0; y < f.SizeY(); y++ {
		for x := 0; x < f.SizeX(); x++ {
			cell := f.Cell(x, y)
			if !cell.Occupied {
				continue
			}
			vector.DrawFilledRect(screen, margin+float32(x)*size, margin+float32(y)*size, inner, inner, palette.RGBA(cell.Color), false)
		}
	}

	if active, ok := f.ActivePiece(); ok {
		clr := palette.Active(active.Color)
		for _, p := range active.Points {
			vector.DrawFilledRect(screen, margin+float32(p.X)*size, margin+float32(p.Y)*size, inner, inner, clr, false)
		}
	}

	status := fmt.Sprintf("rows %d  pieces %d", view.Stats.RowsCleared, view.Stats.PiecesSpawned)
	if view.State == game.GameOver {
		status += "  GAME OVER"
	}
	ebitenutil.DebugPrintAt(screen, status, margin, margin+f.SizeY()*cellSize+8)
}
