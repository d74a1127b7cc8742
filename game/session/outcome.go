package session

import (
	"github.com/jacobpatterson1549/selene-mosaic/game/grid"
	"github.com/jacobpatterson1549/selene-mosaic/game/tile"
)

type (
	// Outcome is how a gesture on a tile or cell was handled.
	// No outcome is an error: rejected gestures leave the session unchanged.
	Outcome int

	// Result describes the effect of a gesture.
	Result struct {
		// Outcome is what happened.
		Outcome Outcome `json:"outcome"`
		// Tile is the tile the gesture affected, as it is after the gesture.
		Tile tile.Tile `json:"tile"`
		// Cell is the grid cell the gesture targeted, if any.
		Cell *grid.Cell `json:"cell,omitempty"`
		// Spawned is the replacement tile added to the pool after a placement.
		Spawned *tile.Tile `json:"spawned,omitempty"`
	}
)

const (
	_ Outcome = iota
	// Placed is the Outcome when a tile moved from the pool to an empty cell.
	Placed
	// Repositioned is the Outcome when a tile was dropped outside the grid and floats at the drop point.
	Repositioned
	// SnappedBack is the Outcome when a tile was dropped on a snap-back zone and stayed where it was.
	SnappedBack
	// Occupied is the Outcome when a tile was dropped on a cell that already has a tile.
	Occupied
	// GridFull is the Outcome when there is no empty cell for a tile.
	GridFull
	// NoGrid is the Outcome of a grid gesture before the grid is started.
	NoGrid
	// AlreadyPlaced is the Outcome when the tile is already in the grid, such as when a gesture is repeated.
	AlreadyPlaced
	// NotFound is the Outcome when the tile is in neither the pool nor the grid.
	NotFound
	// Removed is the Outcome when a tile was discarded from the grid.
	Removed
	// Rotated is the Outcome when a tile was turned.
	Rotated
	// EmptyCell is the Outcome of removing or rotating an empty cell.
	EmptyCell
	// OutOfBounds is the Outcome of removing or rotating a cell that is not in the grid.
	OutOfBounds
)

// String returns the display value for the outcome.
func (o Outcome) String() string {
	switch o {
	case Placed:
		return "placed"
	case Repositioned:
		return "repositioned"
	case SnappedBack:
		return "snapped back"
	case Occupied:
		return "cell occupied"
	case GridFull:
		return "grid full"
	case NoGrid:
		return "grid not started"
	case AlreadyPlaced:
		return "already placed"
	case NotFound:
		return "tile not found"
	case Removed:
		return "removed"
	case Rotated:
		return "rotated"
	case EmptyCell:
		return "cell empty"
	case OutOfBounds:
		return "cell out of bounds"
	}
	return "?"
}

// Changed determines if the outcome changed the pool or grid.
func (o Outcome) Changed() bool {
	switch o {
	case Placed, Repositioned, Removed, Rotated:
		return true
	}
	return false
}
