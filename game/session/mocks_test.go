package session

import (
	"github.com/jacobpatterson1549/selene-mosaic/game/pool"
	"github.com/jacobpatterson1549/selene-mosaic/game/tile"
)

// mockRandom always draws zero unless IntnFunc is set.
type mockRandom struct {
	IntnFunc func(n int) int
}

func (m mockRandom) Intn(n int) int {
	if m.IntnFunc == nil {
		return 0
	}
	return m.IntnFunc(n)
}

// rowLayout floats the tiles in a row below the grid, 100 apart.
func rowLayout(i, count int, r pool.Random) tile.Point {
	return tile.Point{X: float64(i) * 100, Y: 1000}
}
