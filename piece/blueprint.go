package piece

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrInvalidBlueprint is wrapped by every blueprint loading or validation error.
var ErrInvalidBlueprint = errors.New("invalid blueprint")

//go:embed pieces.yaml
var defaultPieces []byte

// Blueprint is the static template of a piece. Points are relative to the
// spawn anchor. Blueprints are loaded once and treated as read-only.
type Blueprint struct {
	Type   string  `yaml:"type"`
	Color  Color   `yaml:"color"`
	Points []Point `yaml:"points"`
}

// Validate checks that the blueprint can be placed on a field.
func (b Blueprint) Validate() error {
	if b.Type == "" {
		return fmt.Errorf("%w: missing type", ErrInvalidBlueprint)
	}
	if !b.Color.Valid() {
		return fmt.Errorf("%w: %s: missing color", ErrInvalidBlueprint, b.Type)
	}
	if len(b.Points) == 0 {
		return fmt.Errorf("%w: %s: no points", ErrInvalidBlueprint, b.Type)
	}

	seen := make(map[Point]struct{}, len(b.Points))
	for _, p := range b.Points {
		if _, dup := seen[p]; dup {
			return fmt.Errorf("%w: %s: duplicate point %s", ErrInvalidBlueprint, b.Type, p)
		}
		seen[p] = struct{}{}
	}
	return nil
}

// LoadBlueprints reads a blueprint set from YAML. Two layouts are accepted:
//
//   - type: I
//     color: CYAN
//     points: [[0, 0], [1, 0], [2, 0], [3, 0]]
//
// or a mapping keyed by type, kept in document order:
//
//	I:
//	  color: CYAN
//	  points: [[0, 0], [1, 0], [2, 0], [3, 0]]
func LoadBlueprints(r io.Reader) ([]Blueprint, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidBlueprint)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidBlueprint, err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidBlueprint)
	}

	var blueprints []Blueprint
	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&blueprints); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBlueprint, err)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(root.Content); i += 2 {
			key, value := root.Content[i], root.Content[i+1]
			var b Blueprint
			if err := value.Decode(&b); err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrInvalidBlueprint, key.Value, err)
			}
			b.Type = key.Value
			blueprints = append(blueprints, b)
		}
	default:
		return nil, fmt.Errorf("%w: line %d: expected a sequence or a mapping", ErrInvalidBlueprint, root.Line)
	}

	if len(blueprints) == 0 {
		return nil, fmt.Errorf("%w: no blueprints defined", ErrInvalidBlueprint)
	}

	types := make(map[string]struct{}, len(blueprints))
	for _, b := range blueprints {
		if err := b.Validate(); err != nil {
			return nil, err
		}
		if _, dup := types[b.Type]; dup {
			return nil, fmt.Errorf("%w: duplicate type %q", ErrInvalidBlueprint, b.Type)
		}
		types[b.Type] = struct{}{}
	}

	return blueprints, nil
}

// DefaultBlueprints returns the seven standard tetrominoes, each laid out in a
// four column box.
func DefaultBlueprints() []Blueprint {
	blueprints, err := LoadBlueprints(bytes.NewReader(defaultPieces))
	if err != nil {
		panic("embedded pieces.yaml: " + err.Error())
	}
	return blueprints
}
