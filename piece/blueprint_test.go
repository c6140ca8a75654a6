package piece_test

import (
	"strings"
	"testing"

	"github.com/plus3/blockfall/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultBlueprints(t *testing.T) {
	blueprints := piece.DefaultBlueprints()
	require.Len(t, blueprints, 7)

	types := make([]string, 0, len(blueprints))
	for _, b := range blueprints {
		types = append(types, b.Type)
		assert.NoError(t, b.Validate())
		assert.Len(t, b.Points, 4, b.Type)
		for _, p := range b.Points {
			assert.True(t, p.X >= 0 && p.X < 4 && p.Y >= 0 && p.Y < 2, "%s: %s outside the spawn box", b.Type, p)
		}
	}
	assert.Equal(t, []string{"I", "J", "L", "O", "S", "T", "Z"}, types)
}

func TestLoadBlueprintsSequence(t *testing.T) {
	src := `
- type: bar
  color: cyan
  points: [[0, 0], [1, 0]]
- type: dot
  color: RED
  points:
    - {x: 2, y: 3}
`
	blueprints, err := piece.LoadBlueprints(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, blueprints, 2)

	assert.Equal(t, piece.Blueprint{Type: "bar", Color: piece.ColorCyan, Points: pts(0, 0, 1, 0)}, blueprints[0])
	assert.Equal(t, piece.Blueprint{Type: "dot", Color: piece.ColorRed, Points: pts(2, 3)}, blueprints[1])
}

func TestLoadBlueprintsMappingKeepsOrder(t *testing.T) {
	src := `
Z:
  color: RED
  points: [[0, 0], [1, 0], [1, 1], [2, 1]]
A:
  color: GREEN
  points: [[0, 0]]
`
	blueprints, err := piece.LoadBlueprints(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, blueprints, 2)
	assert.Equal(t, "Z", blueprints[0].Type)
	assert.Equal(t, piece.ColorRed, blueprints[0].Color)
	assert.Equal(t, "A", blueprints[1].Type)
	assert.Equal(t, pts(0, 0), blueprints[1].Points)
}

func TestLoadBlueprintsErrors(t *testing.T) {
	tests := map[string]string{
		"empty":           "",
		"scalar":          "hello",
		"empty sequence":  "[]",
		"unknown color":   "- {type: a, color: PINK, points: [[0, 0]]}",
		"missing color":   "- {type: a, points: [[0, 0]]}",
		"no points":       "- {type: a, color: RED, points: []}",
		"short point":     "- {type: a, color: RED, points: [[0]]}",
		"duplicate point": "- {type: a, color: RED, points: [[0, 0], [0, 0]]}",
		"duplicate type":  "- {type: a, color: RED, points: [[0, 0]]}\n- {type: a, color: RED, points: [[1, 0]]}",
		"missing type":    "- {color: RED, points: [[0, 0]]}",
	}

	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := piece.LoadBlueprints(strings.NewReader(src))
			assert.ErrorIs(t, err, piece.ErrInvalidBlueprint)
		})
	}
}

func TestParseColor(t *testing.T) {
	for _, c := range piece.Colors() {
		parsed, err := piece.ParseColor(strings.ToLower(c.String()))
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
		assert.True(t, c.Valid())
	}

	_, err := piece.ParseColor("NONE")
	assert.Error(t, err)
	_, err = piece.ParseColor("purple")
	assert.Error(t, err)

	assert.False(t, piece.ColorNone.Valid())
	assert.Equal(t, "Color(42)", piece.Color(42).String())
}

func TestBlueprintMarshalYAML(t *testing.T) {
	out, err := yaml.Marshal([]piece.Blueprint{{Type: "O", Color: piece.ColorYellow, Points: pts(1, 0, 2, 0)}})
	require.NoError(t, err)

	assert.Contains(t, string(out), "color: YELLOW")
	assert.Contains(t, string(out), "[1, 0]")

	back, err := piece.LoadBlueprints(strings.NewReader(string(out)))
	require.NoError(t, err)
	assert.Equal(t, piece.ColorYellow, back[0].Color)
	assert.Equal(t, pts(1, 0, 2, 0), back[0].Points)
}
