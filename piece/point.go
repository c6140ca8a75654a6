package piece

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Point is a cell coordinate. X grows rightward, Y grows downward.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p offset by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// UnmarshalYAML accepts either a two element sequence ([x, y]) or a mapping
// with x and y keys.
func (p *Point) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var xy []int
		if err := value.Decode(&xy); err != nil {
			return err
		}
		if len(xy) != 2 {
			return fmt.Errorf("line %d: point needs exactly 2 coordinates, got %d", value.Line, len(xy))
		}
		p.X, p.Y = xy[0], xy[1]
		return nil
	case yaml.MappingNode:
		var xy struct {
			X int `yaml:"x"`
			Y int `yaml:"y"`
		}
		if err := value.Decode(&xy); err != nil {
			return err
		}
		p.X, p.Y = xy.X, xy.Y
		return nil
	default:
		return fmt.Errorf("line %d: point must be a sequence or a mapping", value.Line)
	}
}

// MarshalYAML writes the point in its compact [x, y] form.
func (p Point) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []int{p.X, p.Y} {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: fmt.Sprint(v),
		})
	}
	return node, nil
}

// Translate returns a copy of points with every point offset by (dx, dy).
func Translate(points []Point, dx, dy int) []Point {
	if points == nil {
		return nil
	}
	moved := make([]Point, len(points))
	for i, p := range points {
		moved[i] = Point{X: p.X + dx, Y: p.Y + dy}
	}
	return moved
}

// BoundingBoxCenter returns min + (max-min+1)/2 on each axis of the bounding
// box around points. The center need not be one of the points and does not
// depend on their order. An empty set has the zero point as its center.
func BoundingBoxCenter(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}

	return Point{
		X: minX + (maxX-minX+1)/2,
		Y: minY + (maxY-minY+1)/2,
	}
}

// RotateClockwise turns points a quarter turn clockwise (as seen on a grid
// whose y axis points down) around their bounding box center.
//
// Each point is moved to the origin, mapped through the row-vector product
// [x y]·[[0 1] [-1 0]] = (-y, x), and moved back. The integer center of an
// even-sized box sits half a cell off the true center, so the rotated set is
// then shifted to keep the original bounding box center. With that shift four
// rotations return exactly the input and a 2x2 square maps onto itself.
//
// The input is never modified. Bounds and collisions are the caller's concern.
func RotateClockwise(points []Point) []Point {
	if len(points) == 0 {
		return nil
	}

	center := BoundingBoxCenter(points)
	rotated := make([]Point, len(points))
	for i, p := range points {
		x, y := p.X-center.X, p.Y-center.Y
		rotated[i] = Point{X: center.X - y, Y: center.Y + x}
	}

	drift := BoundingBoxCenter(rotated)
	dx, dy := center.X-drift.X, center.Y-drift.Y
	if dx == 0 && dy == 0 {
		return rotated
	}
	for i := range rotated {
		rotated[i].X += dx
		rotated[i].Y += dy
	}
	return rotated
}
