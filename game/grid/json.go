package grid

import (
	"encoding/json"
	"fmt"

	"github.com/jacobpatterson1549/selene-mosaic/game/tile"
)

// jsonGrid is used for serialization with the json/encoding package
type jsonGrid struct {
	Rows  int            `json:"rows"`
	Cols  int            `json:"cols"`
	Cells [][]*tile.Tile `json:"cells"`
}

// MarshalJSON implements the encoding/json.Marshaler interface.
// Cells are written row by row, with null for empty cells.
func (g Grid) MarshalJSON() ([]byte, error) {
	jg := jsonGrid{
		Rows:  g.Rows(),
		Cols:  g.Cols(),
		Cells: g.cells,
	}
	return json.Marshal(jg)
}

// UnmarshalJSON implements the encoding/json.Unmarshaler interface.
// The cells must match the dimensions, which are checked before the grid is made, and no tile id may be repeated.
func (g *Grid) UnmarshalJSON(d []byte) error {
	var jg jsonGrid
	if err := json.Unmarshal(d, &jg); err != nil {
		return err
	}
	if len(jg.Cells) != jg.Rows {
		return fmt.Errorf("wanted %v rows of cells, got %v", jg.Rows, len(jg.Cells))
	}
	for r, row := range jg.Cells {
		if len(row) != jg.Cols {
			return fmt.Errorf("wanted %v cells in row %v, got %v", jg.Cols, r, len(row))
		}
	}
	g2, err := New(jg.Rows, jg.Cols)
	if err != nil {
		return err
	}
	for r, row := range jg.Cells {
		for c, t := range row {
			if t == nil {
				continue
			}
			if _, ok := g2.Find(t.ID); ok {
				return fmt.Errorf("tile %v is in more than one cell", t.ID)
			}
			if err := g2.TryPlace(Cell{Row: r, Col: c}, *t); err != nil {
				return err
			}
		}
	}
	*g = *g2
	return nil
}
