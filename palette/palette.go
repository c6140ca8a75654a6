// Package palette maps piece colors to RGB values shared by the frontends.
package palette

import (
	"image/color"

	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/piece"
	"golang.org/x/image/colornames"
)

// Background is the color of empty cells.
var Background = colornames.Black

var (
	base   = intmap.New[piece.Color, color.RGBA](len(piece.Colors()) + 1)
	bright = intmap.New[piece.Color, color.RGBA](len(piece.Colors()) + 1)
)

func init() {
	named := map[piece.Color]color.RGBA{
		piece.ColorNone:    Background,
		piece.ColorCyan:    colornames.Cyan,
		piece.ColorBlue:    colornames.Royalblue,
		piece.ColorOrange:  colornames.Orange,
		piece.ColorYellow:  colornames.Gold,
		piece.ColorGreen:   colornames.Limegreen,
		piece.ColorMagenta: colornames.Magenta,
		piece.ColorRed:     colornames.Red,
	}
	for c, rgba := range named {
		base.Put(c, rgba)
		bright.Put(c, lighten(rgba))
	}
}

// RGBA returns the color of locked cells. Unknown colors render as the
// background.
func RGBA(c piece.Color) color.RGBA {
	if rgba, ok := base.Get(c); ok {
		return rgba
	}
	return Background
}

// Active returns the lighter variant used for the falling piece.
func Active(c piece.Color) color.RGBA {
	if rgba, ok := bright.Get(c); ok {
		return rgba
	}
	return Background
}

// lighten moves every channel a third of the way towards white.
func lighten(c color.RGBA) color.RGBA {
	up := func(v uint8) uint8 { return v + (255-v)/3 }
	return color.RGBA{R: up(c.R), G: up(c.G), B: up(c.B), A: c.A}
}
