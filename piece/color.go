package piece

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is the closed set of piece colors. Names are resolved once when a
// blueprint is loaded so renderers never compare strings.
type Color uint8

const (
	ColorNone Color = iota
	ColorCyan
	ColorBlue
	ColorOrange
	ColorYellow
	ColorGreen
	ColorMagenta
	ColorRed
)

var colorNames = [...]string{
	ColorNone:    "NONE",
	ColorCyan:    "CYAN",
	ColorBlue:    "BLUE",
	ColorOrange:  "ORANGE",
	ColorYellow:  "YELLOW",
	ColorGreen:   "GREEN",
	ColorMagenta: "MAGENTA",
	ColorRed:     "RED",
}

// Colors returns every color a piece may carry, in declaration order.
func Colors() []Color {
	return []Color{ColorCyan, ColorBlue, ColorOrange, ColorYellow, ColorGreen, ColorMagenta, ColorRed}
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// Valid reports whether c is one of the declared piece colors.
func (c Color) Valid() bool {
	return c > ColorNone && int(c) < len(colorNames)
}

// ParseColor resolves a color name such as "CYAN". Matching ignores case and
// surrounding space. NONE is not accepted.
func ParseColor(name string) (Color, error) {
	want := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range colorNames {
		if i > 0 && n == want {
			return Color(i), nil
		}
	}
	return ColorNone, fmt.Errorf("unknown color %q", name)
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseColor(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}
