package session

import (
	"github.com/jacobpatterson1549/selene-mosaic/game/grid"
	"github.com/jacobpatterson1549/selene-mosaic/game/summary"
	"github.com/jacobpatterson1549/selene-mosaic/game/tile"
)

// View is a read-only copy of the state of a session, for rendering and exporting.
type View struct {
	// Started is true when the grid has been started.
	Started bool `json:"started"`
	// Rows is the number of rows in the grid.
	Rows int `json:"rows"`
	// Cols is the number of columns in the grid.
	Cols int `json:"cols"`
	// Grid is a copy of the grid.  It is nil until the grid is started.
	Grid *grid.Grid `json:"grid"`
	// Pool contains the floating tiles.
	Pool []tile.Tile `json:"pool"`
	// Layout is where the grid is drawn.
	Layout grid.Layout `json:"layout"`
	// Bounds is the area covered by the grid when it is drawn with the layout.
	Bounds grid.Rect `json:"bounds"`
	// AlternateFinish is true when the alternate finish surcharge is added.
	AlternateFinish bool `json:"alternateFinish"`
	// Summary contains the quantities and prices of the placed tiles.
	Summary summary.Summary `json:"summary"`
}

// View copies the current state of the session.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := View{
		Pool:            s.pool.Tiles(),
		Layout:          s.layout,
		AlternateFinish: s.alternateFinish,
		Summary:         s.summaryCopy(),
	}
	if s.grid != nil {
		v.Started = true
		v.Rows = s.grid.Rows()
		v.Cols = s.grid.Cols()
		v.Grid = s.grid.Copy()
		v.Bounds = s.layout.Bounds(v.Rows, v.Cols)
	}
	return v
}

// Summary copies the current summary of the grid.
func (s *Session) Summary() summary.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summaryCopy()
}

// Order creates the order for the tiles in the grid.
func (s *Session) Order() summary.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return summary.NewOrder(s.summary, s.Catalog)
}

// summaryCopy copies the summary so its counts cannot be changed by callers.
func (s *Session) summaryCopy() summary.Summary {
	sum := s.summary
	sum.Counts = make(map[tile.Type]int, len(s.summary.Counts))
	for t, n := range s.summary.Counts {
		sum.Counts[t] = n
	}
	return sum
}
