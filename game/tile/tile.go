// Package tile contains the pieces a user arranges into a mosaic.
package tile

type (
	// Tile is a piece of the mosaic.
	Tile struct {
		ID       ID       `json:"id"`
		Type     Type     `json:"type"`
		Rotation Rotation `json:"rot"`
		// Position is where the tile floats while it is unplaced.
		// It is not meaningful after the tile is placed in a grid.
		Position Point `json:"pos"`
	}

	// ID is the id of a tile.  Ids are never reused within a session.
	ID int

	// Type is the index of the tile's kind in the catalog.
	Type int

	// Point is a location in the unsnapped, floating coordinate space.
	Point struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
)

// Placed returns a copy of the tile without its floating position.
func (t Tile) Placed() Tile {
	t.Position = Point{}
	return t
}
