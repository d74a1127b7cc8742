// Package summary derives the quantities and prices of the tiles in a grid.
package summary

import (
	"github.com/jacobpatterson1549/selene-mosaic/game/catalog"
	"github.com/jacobpatterson1549/selene-mosaic/game/grid"
	"github.com/jacobpatterson1549/selene-mosaic/game/tile"
)

type (
	// Summary is the aggregate of a grid's contents.  It is always recomputed from the grid, never patched.
	Summary struct {
		// Counts is the number of occupied cells for each tile type.
		Counts map[tile.Type]int `json:"counts"`
		// Occupied is the total number of occupied cells.
		Occupied int `json:"occupied"`
		// Subtotal is the sum of unit prices of the placed tiles.
		Subtotal catalog.Price `json:"subtotal"`
		// Surcharge is the extra price of the alternate finish for all placed tiles.
		Surcharge catalog.Price `json:"surcharge,omitempty"`
		// Total is the Subtotal plus the Surcharge.
		Total catalog.Price `json:"total"`
	}

	// Finish determines the per-tile surcharge.
	Finish struct {
		// Alternate is true when the alternate finish is chosen.
		Alternate bool
		// Surcharge is added for each placed tile when Alternate is true.
		Surcharge catalog.Price
	}
)

// Summarize scans every cell of the grid and prices the tiles.
// Tiles with types that are not in the price table are counted but not priced.
// A nil grid has an empty summary.
func Summarize(g *grid.Grid, prices map[tile.Type]catalog.Price, f Finish) Summary {
	s := Summary{
		Counts: make(map[tile.Type]int),
	}
	if g == nil {
		return s
	}
	g.Each(func(c grid.Cell, t tile.Tile) {
		s.Counts[t.Type]++
		s.Occupied++
	})
	for t, n := range s.Counts {
		s.Subtotal += catalog.Price(n) * prices[t]
	}
	if f.Alternate {
		s.Surcharge = catalog.Price(s.Occupied) * f.Surcharge
	}
	s.Total = s.Subtotal + s.Surcharge
	return s
}
