// Package pool stores the floating tiles that have not been placed in a grid.
package pool

import (
	"fmt"

	"github.com/jacobpatterson1549/selene-mosaic/game/tile"
)

type (
	// Pool is the collection of unplaced tiles, keyed by id.
	// Tiles are remembered in the order they were added so snapshots are stable.
	Pool struct {
		tiles    map[tile.ID]tile.Tile
		tileIDs  []tile.ID
		lastID   tile.ID
		numTypes int
		Config
	}

	// Config contains the properties to create pools.
	Config struct {
		// Random is used to choose the type and rotation of new tiles.
		Random Random
		// Layout positions the tiles created when the pool is seeded.
		Layout LayoutFunc
	}

	// Random is a source of uniformly distributed integers, such as *math/rand.Rand.
	Random interface {
		// Intn returns a non-negative number less than n.
		Intn(n int) int
	}
)

// Seed creates a pool of count new tiles with types drawn uniformly from [0, catalogSize).
func (cfg Config) Seed(catalogSize, count int) (*Pool, error) {
	if err := cfg.validate(catalogSize, count); err != nil {
		return nil, fmt.Errorf("seeding pool: validation: %w", err)
	}
	p := Pool{
		numTypes: catalogSize,
		Config:   cfg,
	}
	p.Reseed(count)
	return &p, nil
}

// validate ensures the configuration has no errors.
func (cfg Config) validate(catalogSize, count int) error {
	switch {
	case catalogSize <= 0:
		return fmt.Errorf("positive catalog size required")
	case count < 0:
		return fmt.Errorf("non-negative tile count required")
	case cfg.Random == nil:
		return fmt.Errorf("random source required")
	case cfg.Layout == nil:
		return fmt.Errorf("layout func required")
	}
	return nil
}

// Reseed replaces all the tiles in the pool with count new ones.
// Ids continue from the previous tiles, so no id is reused.
func (p *Pool) Reseed(count int) {
	p.tiles = make(map[tile.ID]tile.Tile, count)
	p.tileIDs = make([]tile.ID, 0, count)
	for i := 0; i < count; i++ {
		pos := p.Layout(i, count, p.Random)
		p.add(p.newTile(pos))
	}
}

// newTile creates a tile with a fresh id, a random type, and a random rotation.
func (p *Pool) newTile(pos tile.Point) tile.Tile {
	p.lastID++
	t := tile.Tile{
		ID:       p.lastID,
		Type:     p.RandomType(),
		Rotation: tile.RandomRotation(p.Random.Intn),
		Position: pos,
	}
	return t
}

// RandomType draws a tile type uniformly from the catalog.
func (p *Pool) RandomType() tile.Type {
	return tile.Type(p.Random.Intn(p.numTypes))
}

// NewTile creates a random tile with an id that is unique to the pool, without adding it to the pool.
func (p *Pool) NewTile() tile.Tile {
	return p.newTile(tile.Point{})
}

// add puts the tile at the end of the pool.
func (p *Pool) add(t tile.Tile) {
	p.tiles[t.ID] = t
	p.tileIDs = append(p.tileIDs, t.ID)
}

// SpawnReplacement adds a new random tile at the position, which is usually where a placed tile floated.
func (p *Pool) SpawnReplacement(near tile.Point) tile.Tile {
	t := p.newTile(near)
	p.add(t)
	return t
}

// Remove takes the tile out of the pool.  Nothing happens if the pool does not have the tile.
func (p *Pool) Remove(id tile.ID) {
	if _, ok := p.tiles[id]; !ok {
		return
	}
	delete(p.tiles, id)
	for i, id2 := range p.tileIDs {
		if id == id2 {
			p.tileIDs = append(p.tileIDs[:i], p.tileIDs[i+1:]...)
			return
		}
	}
}

// Reposition moves the floating tile to the position.  False is returned if the pool does not have the tile.
func (p *Pool) Reposition(id tile.ID, pos tile.Point) bool {
	t, ok := p.tiles[id]
	if !ok {
		return false
	}
	t.Position = pos
	p.tiles[id] = t
	return true
}

// Rotate turns the floating tile one step clockwise.
func (p *Pool) Rotate(id tile.ID) (tile.Rotation, bool) {
	t, ok := p.tiles[id]
	if !ok {
		return 0, false
	}
	t.Rotation = t.Rotation.Next()
	p.tiles[id] = t
	return t.Rotation, true
}

// Get returns the tile with the id.
func (p Pool) Get(id tile.ID) (tile.Tile, bool) {
	t, ok := p.tiles[id]
	return t, ok
}

// Has determines if the pool has the tile.
func (p Pool) Has(id tile.ID) bool {
	_, ok := p.tiles[id]
	return ok
}

// Len is the number of tiles in the pool.
func (p Pool) Len() int {
	return len(p.tileIDs)
}

// Tiles copies the tiles of the pool, in the order they were added.
func (p Pool) Tiles() []tile.Tile {
	tiles := make([]tile.Tile, 0, len(p.tileIDs))
	for _, id := range p.tileIDs {
		tiles = append(tiles, p.tiles[id])
	}
	return tiles
}
