// Package grid stores the placed tiles of a mosaic and handles queries to read and update them.
package grid

import (
	"errors"
	"fmt"

	"github.com/jacobpatterson1549/selene-mosaic/game/tile"
)

type (
	// Grid is a rows by cols matrix of cells.  Each cell is empty or holds exactly one tile.
	Grid struct {
		cells [][]*tile.Tile
	}

	// Cell is the address of a position in a grid.
	Cell struct {
		Row int `json:"row"`
		Col int `json:"col"`
	}
)

var (
	// ErrInvalidDimensions is returned when a grid would not have at least one row and one column.
	ErrInvalidDimensions = errors.New("rows and columns must be positive")
	// ErrOccupied is returned when placing a tile on a cell that already has one.
	ErrOccupied = errors.New("cell is occupied")
	// ErrOutOfBounds is returned for cells that are not in the grid.
	ErrOutOfBounds = errors.New("cell is not in grid")
)

// New creates an empty grid.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("creating %vx%v grid: %w", rows, cols, ErrInvalidDimensions)
	}
	g := Grid{
		cells: newCells(rows, cols),
	}
	return &g, nil
}

// newCells creates empty cells for the dimensions.
func newCells(rows, cols int) [][]*tile.Tile {
	cells := make([][]*tile.Tile, rows)
	for r := range cells {
		cells[r] = make([]*tile.Tile, cols)
	}
	return cells
}

// Rows is the number of rows in the grid.
func (g Grid) Rows() int {
	return len(g.cells)
}

// Cols is the number of columns in the grid.
func (g Grid) Cols() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// InBounds determines if the cell is in the grid.
func (g Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows() && c.Col >= 0 && c.Col < g.Cols()
}

// At returns a copy of the tile at the cell.  False is returned if the cell is empty or not in the grid.
func (g Grid) At(c Cell) (tile.Tile, bool) {
	if !g.InBounds(c) || g.cells[c.Row][c.Col] == nil {
		return tile.Tile{}, false
	}
	return *g.cells[c.Row][c.Col], true
}

// TryPlace puts the tile in the cell if the cell is empty.
// The grid is not changed if the cell is occupied or out of bounds.
func (g *Grid) TryPlace(c Cell, t tile.Tile) error {
	switch {
	case !g.InBounds(c):
		return fmt.Errorf("placing tile %v at %v: %w", t.ID, c, ErrOutOfBounds)
	case g.cells[c.Row][c.Col] != nil:
		return fmt.Errorf("placing tile %v at %v: %w", t.ID, c, ErrOccupied)
	}
	placed := t.Placed()
	g.cells[c.Row][c.Col] = &placed
	return nil
}

// Clear empties the cell, returning the tile that was removed, if any.
func (g *Grid) Clear(c Cell) (tile.Tile, bool) {
	t, ok := g.At(c)
	if ok {
		g.cells[c.Row][c.Col] = nil
	}
	return t, ok
}

// ClearAll empties every cell, keeping the dimensions.
func (g *Grid) ClearAll() {
	g.cells = newCells(g.Rows(), g.Cols())
}

// Rotate turns the tile in the cell one step clockwise.  Empty cells are not changed.
// The new rotation is returned with true if a tile was rotated.
func (g *Grid) Rotate(c Cell) (tile.Rotation, bool) {
	if _, ok := g.At(c); !ok {
		return 0, false
	}
	t := g.cells[c.Row][c.Col]
	t.Rotation = t.Rotation.Next()
	return t.Rotation, true
}

// Resize changes the dimensions of the grid.
// Tiles in cells that are in both the old and new dimensions keep their cells.
// Tiles outside the new dimensions are discarded and returned.
func (g *Grid) Resize(rows, cols int) ([]tile.Tile, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("resizing grid to %vx%v: %w", rows, cols, ErrInvalidDimensions)
	}
	cells := newCells(rows, cols)
	var discarded []tile.Tile
	for r, row := range g.cells {
		for c, t := range row {
			switch {
			case t == nil:
			case r < rows && c < cols:
				cells[r][c] = t
			default:
				discarded = append(discarded, *t)
			}
		}
	}
	g.cells = cells
	return discarded, nil
}

// FirstEmpty scans the grid top to bottom, left to right, for an empty cell.
func (g Grid) FirstEmpty() (Cell, bool) {
	for r, row := range g.cells {
		for c, t := range row {
			if t == nil {
				return Cell{Row: r, Col: c}, true
			}
		}
	}
	return Cell{}, false
}

// IsFull determines if no cell is empty.
func (g Grid) IsFull() bool {
	_, ok := g.FirstEmpty()
	return !ok
}

// Find searches the grid for the cell of the tile with the id.
func (g Grid) Find(id tile.ID) (Cell, bool) {
	for r, row := range g.cells {
		for c, t := range row {
			if t != nil && t.ID == id {
				return Cell{Row: r, Col: c}, true
			}
		}
	}
	return Cell{}, false
}

// Occupied is the number of cells that have tiles.
func (g Grid) Occupied() int {
	n := 0
	g.Each(func(c Cell, t tile.Tile) {
		n++
	})
	return n
}

// Each calls the function for every occupied cell in row-major order.
func (g Grid) Each(f func(c Cell, t tile.Tile)) {
	for r, row := range g.cells {
		for c, t := range row {
			if t != nil {
				f(Cell{Row: r, Col: c}, *t)
			}
		}
	}
}

// Snapshot copies the cells of the grid.  Changes to the snapshot do not affect the grid.
func (g Grid) Snapshot() [][]*tile.Tile {
	cells := newCells(g.Rows(), g.Cols())
	g.Each(func(c Cell, t tile.Tile) {
		cells[c.Row][c.Col] = &t
	})
	return cells
}

// Copy creates a grid with copies of the tiles, so changes to either grid do not affect the other.
func (g Grid) Copy() *Grid {
	g2 := Grid{
		cells: g.Snapshot(),
	}
	return &g2
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
