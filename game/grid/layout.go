package grid

import (
	"math"

	"github.com/jacobpatterson1549/selene-mosaic/game/tile"
)

type (
	// Layout is where a grid is drawn in the floating coordinate space.
	Layout struct {
		// Origin is the top-left corner of the grid.
		Origin tile.Point `json:"origin"`
		// CellSize is the width and height of each square cell.
		CellSize float64 `json:"cellSize"`
	}

	// Rect is an axis-aligned area in the floating coordinate space.
	Rect struct {
		Min tile.Point `json:"min"`
		Max tile.Point `json:"max"`
	}
)

// Cell maps the point to the cell of a rows by cols grid drawn with the layout.
// False is returned if the point is outside the grid.
func (l Layout) Cell(p tile.Point, rows, cols int) (Cell, bool) {
	if !l.Valid() {
		return Cell{}, false
	}
	col := math.Floor((p.X - l.Origin.X) / l.CellSize)
	row := math.Floor((p.Y - l.Origin.Y) / l.CellSize)
	if !finite(row) || !finite(col) || row < 0 || row >= float64(rows) || col < 0 || col >= float64(cols) {
		return Cell{}, false
	}
	c := Cell{
		Row: int(row),
		Col: int(col),
	}
	return c, true
}

// Valid determines if the layout has a finite origin and a finite, positive cell size.
func (l Layout) Valid() bool {
	return l.CellSize > 0 && finite(l.CellSize) && finite(l.Origin.X) && finite(l.Origin.Y)
}

// CellOrigin is the top-left corner of the cell when drawn with the layout.
func (l Layout) CellOrigin(c Cell) tile.Point {
	p := tile.Point{
		X: l.Origin.X + float64(c.Col)*l.CellSize,
		Y: l.Origin.Y + float64(c.Row)*l.CellSize,
	}
	return p
}

// Bounds is the area covered by a rows by cols grid drawn with the layout.
func (l Layout) Bounds(rows, cols int) Rect {
	r := Rect{
		Min: l.Origin,
		Max: l.CellOrigin(Cell{Row: rows, Col: cols}), // the corner past the last cell
	}
	return r
}

// Contains determines if the point is in the rectangle.  The max edges are exclusive.
func (r Rect) Contains(p tile.Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// finite determines if the float is not NaN or infinite.
func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
