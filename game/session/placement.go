package session

import (
	"fmt"

	"github.com/jacobpatterson1549/selene-mosaic/game/grid"
	"github.com/jacobpatterson1549/selene-mosaic/game/tile"
)

// PlaceByDrag handles a floating tile being dropped at the point.
// Tiles dropped on an empty cell are moved into the grid and a replacement is added to the pool where the tile floated.
// Tiles dropped on an occupied cell or a snap-back zone stay where they were.
// Tiles dropped anywhere else float at the drop point.
func (s *Session) PlaceByDrag(id tile.ID, p tile.Point) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.pool.Get(id)
	if !ok {
		return s.missingTile(id)
	}
	var c grid.Cell
	if s.grid != nil {
		c, ok = s.layout.Cell(p, s.grid.Rows(), s.grid.Cols())
	}
	switch {
	case s.grid == nil, !ok:
		if s.inSnapBackZone(p) {
			return Result{Outcome: SnappedBack, Tile: t}
		}
		s.pool.Reposition(id, p)
		t.Position = p
		return Result{Outcome: Repositioned, Tile: t}
	}
	return s.place(t, c)
}

// PlaceFirstEmpty moves the floating tile to the first empty cell of the grid, scanning row by row.
// The tile stays in the pool if the grid is full.
func (s *Session) PlaceFirstEmpty(id tile.ID) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.pool.Get(id)
	switch {
	case !ok:
		return s.missingTile(id)
	case s.grid == nil:
		return Result{Outcome: NoGrid, Tile: t}
	}
	c, ok := s.grid.FirstEmpty()
	if !ok {
		return Result{Outcome: GridFull, Tile: t}
	}
	return s.place(t, c)
}

// place commits the tile to the cell, then spawns its replacement.
// Both steps happen while the session is locked, so no other gesture sees the pool between them.
func (s *Session) place(t tile.Tile, c grid.Cell) Result {
	ps, err := s.commitPlacement(t, c)
	if err != nil {
		return Result{Outcome: Occupied, Tile: t, Cell: &c}
	}
	spawned := s.spawn(*ps)
	placed, _ := s.grid.At(c)
	r := Result{
		Outcome: Placed,
		Tile:    placed,
		Cell:    &c,
		Spawned: &spawned,
	}
	if s.Debug {
		s.Log.Printf("placed tile %v at %v, spawned tile %v", t.ID, c, spawned.ID)
	}
	return r
}

// commitPlacement moves the floating tile into the empty cell of the grid.
// The returned pendingSpawn must be spawned immediately afterward to replenish the pool.
// The grid and pool are not changed if the cell is not empty.
func (s *Session) commitPlacement(t tile.Tile, c grid.Cell) (*pendingSpawn, error) {
	if err := s.grid.TryPlace(c, t); err != nil {
		return nil, fmt.Errorf("committing placement: %w", err)
	}
	s.pool.Remove(t.ID)
	s.refreshSummary()
	ps := pendingSpawn{
		near: t.Position,
	}
	return &ps, nil
}

// spawn adds the replacement tile of a committed placement to the pool.
func (s *Session) spawn(ps pendingSpawn) tile.Tile {
	return s.pool.SpawnReplacement(ps.near)
}

// RemoveFromGrid discards the tile in the cell.  The tile is not returned to the pool and no replacement is made.
func (s *Session) RemoveFromGrid(row, col int) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := grid.Cell{Row: row, Col: col}
	if r, ok := s.checkCell(c); !ok {
		return r
	}
	t, ok := s.grid.Clear(c)
	if !ok {
		return Result{Outcome: EmptyCell, Cell: &c}
	}
	s.refreshSummary()
	return Result{Outcome: Removed, Tile: t, Cell: &c}
}

// RotateGridTile turns the tile in the cell one step clockwise.
func (s *Session) RotateGridTile(row, col int) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := grid.Cell{Row: row, Col: col}
	if r, ok := s.checkCell(c); !ok {
		return r
	}
	if _, ok := s.grid.Rotate(c); !ok {
		return Result{Outcome: EmptyCell, Cell: &c}
	}
	s.refreshSummary()
	t, _ := s.grid.At(c)
	return Result{Outcome: Rotated, Tile: t, Cell: &c}
}

// RotatePoolTile turns the floating tile one step clockwise.  The tile keeps the rotation when it is placed.
func (s *Session) RotatePoolTile(id tile.ID) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pool.Rotate(id); !ok {
		return s.missingTile(id)
	}
	t, _ := s.pool.Get(id)
	return Result{Outcome: Rotated, Tile: t}
}

// checkCell ensures the grid is started and has the cell.
// False is returned with the rejection Result otherwise.
func (s *Session) checkCell(c grid.Cell) (Result, bool) {
	switch {
	case s.grid == nil:
		return Result{Outcome: NoGrid, Cell: &c}, false
	case !s.grid.InBounds(c):
		return Result{Outcome: OutOfBounds, Cell: &c}, false
	}
	return Result{}, true
}

// missingTile creates the Result for a gesture on a tile that is not in the pool.
// A tile that is in neither the pool nor the grid means the session lost track of it, so it is logged.
func (s *Session) missingTile(id tile.ID) Result {
	if s.grid != nil {
		if c, ok := s.grid.Find(id); ok {
			t, _ := s.grid.At(c)
			return Result{Outcome: AlreadyPlaced, Tile: t, Cell: &c}
		}
	}
	s.Log.Printf("tile %v is in neither the pool nor the grid", id)
	return Result{Outcome: NotFound, Tile: tile.Tile{ID: id}}
}

// inSnapBackZone determines if the point is in any snap-back zone.
func (s *Session) inSnapBackZone(p tile.Point) bool {
	for _, z := range s.SnapBackZones {
		if z.Contains(p) {
			return true
		}
	}
	return false
}
