// Package field holds the collision grid of a falling-block game together
// with the single piece that is currently falling through it.
package field

import (
	"slices"
	"strings"

	"github.com/plus3/blockfall/piece"
)

// Cell is one grid position. Color is set if and only if the cell is occupied.
type Cell struct {
	Occupied bool
	Color    piece.Color
}

// ActivePiece is the falling, player controlled piece in absolute coordinates.
type ActivePiece struct {
	Points []piece.Point
	Color  piece.Color
	Type   string
}

// Field owns the grid of locked cells and at most one active piece.
// Row 0 is the top of the field.
type Field struct {
	sizeX, sizeY int
	grid         [][]Cell
	active       *ActivePiece
}

// New creates an empty field of sizeX columns by sizeY rows.
func New(sizeX, sizeY int) *Field {
	if sizeX <= 0 || sizeY <= 0 {
		panic("field: size must be positive")
	}

	grid := make([][]Cell, sizeY)
	for y := range grid {
		grid[y] = make([]Cell, sizeX)
	}

	return &Field{
		sizeX: sizeX,
		sizeY: sizeY,
		grid:  grid,
	}
}

func (f *Field) SizeX() int { return f.sizeX }
func (f *Field) SizeY() int { return f.sizeY }

// Cell returns the locked cell at (x, y). Out of bounds positions read as empty.
func (f *Field) Cell(x, y int) Cell {
	if !f.inBounds(piece.Point{X: x, Y: y}) {
		return Cell{}
	}
	return f.grid[y][x]
}

// Grid returns a copy of the locked cells, indexed [y][x].
func (f *Field) Grid() [][]Cell {
	out := make([][]Cell, len(f.grid))
	for y, row := range f.grid {
		out[y] = slices.Clone(row)
	}
	return out
}

// ActivePiece returns a copy of the active piece, if there is one.
func (f *Field) ActivePiece() (ActivePiece, bool) {
	if f.active == nil {
		return ActivePiece{}, false
	}
	return ActivePiece{
		Points: slices.Clone(f.active.Points),
		Color:  f.active.Color,
		Type:   f.active.Type,
	}, true
}

// HasActivePiece reports whether a piece is currently falling.
func (f *Field) HasActivePiece() bool {
	return f.active != nil
}

// Collision reports whether any of points lies outside the field or on an
// occupied cell.
func (f *Field) Collision(points []piece.Point) bool {
	for _, p := range points {
		if !f.inBounds(p) || f.grid[p.Y][p.X].Occupied {
			return true
		}
	}
	return false
}

// SetActivePiece installs a new active piece without checking for collisions;
// callers test the points first. Any previous piece is dropped.
func (f *Field) SetActivePiece(points []piece.Point, color piece.Color, pieceType string) {
	f.active = &ActivePiece{
		Points: slices.Clone(points),
		Color:  color,
		Type:   pieceType,
	}
}

// FreezeActivePiece locks the active piece into the grid and clears it.
// It panics when no piece is active.
func (f *Field) FreezeActivePiece() {
	if f.active == nil {
		panic("field: freeze without an active piece")
	}

	for _, p := range f.active.Points {
		if f.inBounds(p) {
			f.grid[p.Y][p.X] = Cell{Occupied: true, Color: f.active.Color}
		}
	}
	f.active = nil
}

func (f *Field) MoveDown() bool  { return f.move(0, 1) }
func (f *Field) MoveLeft() bool  { return f.move(-1, 0) }
func (f *Field) MoveRight() bool { return f.move(1, 0) }

// Rotate turns the active piece clockwise if the result is free. A blocked
// rotation is dropped; no alternative positions are tried.
func (f *Field) Rotate() bool {
	if f.active == nil {
		return false
	}
	return f.commit(piece.RotateClockwise(f.active.Points))
}

// ClearFullRows removes every fully occupied row and refills the top of the
// field with empty rows. Rows that stay keep their relative order.
// It returns the number of rows removed.
func (f *Field) ClearFullRows() int {
	full := make([]bool, f.sizeY)
	cleared := 0
	for y, row := range f.grid {
		if rowFull(row) {
			full[y] = true
			cleared++
		}
	}
	if cleared == 0 {
		return 0
	}

	grid := make([][]Cell, 0, f.sizeY)
	for range cleared {
		grid = append(grid, make([]Cell, f.sizeX))
	}
	for y, row := range f.grid {
		if !full[y] {
			grid = append(grid, row)
		}
	}
	f.grid = grid

	return cleared
}

// String draws the grid as [x] (locked), [o] (active) and [ ] (empty) cells.
func (f *Field) String() string {
	active := make(map[piece.Point]bool)
	if f.active != nil {
		for _, p := range f.active.Points {
			active[p] = true
		}
	}

	var sb strings.Builder
	for y, row := range f.grid {
		for x, cell := range row {
			switch {
			case active[piece.Point{X: x, Y: y}]:
				sb.WriteString("[o]")
			case cell.Occupied:
				sb.WriteString("[x]")
			default:
				sb.WriteString("[ ]")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (f *Field) move(dx, dy int) bool {
	if f.active == nil {
		return false
	}
	return f.commit(piece.Translate(f.active.Points, dx, dy))
}

func (f *Field) commit(points []piece.Point) bool {
	if f.Collision(points) {
		return false
	}
	f.active.Points = points
	return true
}

func (f *Field) inBounds(p piece.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < f.sizeX && p.Y < f.sizeY
}

func rowFull(row []Cell) bool {
	for _, cell := range row {
		if !cell.Occupied {
			return false
		}
	}
	return true
}
