package mosaic

import (
	"testing"

	"github.com/jacobpatterson1549/selene-mosaic/game/catalog"
	"github.com/jacobpatterson1549/selene-mosaic/game/grid"
	"github.com/jacobpatterson1549/selene-mosaic/game/pool"
	"github.com/jacobpatterson1549/selene-mosaic/game/session"
	"github.com/jacobpatterson1549/selene-mosaic/game/tile"
	"github.com/jacobpatterson1549/selene-mosaic/server/log/logtest"
)

// zeroRandom always draws the first type and rotation.
type zeroRandom struct{}

func (zeroRandom) Intn(n int) int {
	return 0
}

// testSession creates a session with two tiles floating below where the grid is drawn.
// The tiles have ids 1 and 2 and type 0, which costs 5.
func testSession(t *testing.T) *session.Session {
	t.Helper()
	cfg := session.Config{
		Log: logtest.DiscardLogger,
		Catalog: catalog.Catalog{
			Types: []catalog.Entry{
				{Name: "red", Price: 5},
				{Name: "blue", Price: 10},
			},
			Surcharge: 1,
		},
		PoolSize: 2,
		PoolConfig: pool.Config{
			Random: zeroRandom{},
			Layout: func(i, count int, r pool.Random) tile.Point {
				return tile.Point{X: float64(i) * 10, Y: 500}
			},
		},
		MaxRows: 20,
		MaxCols: 20,
		Layout: grid.Layout{
			CellSize: 10,
		},
	}
	s, err := cfg.NewSession()
	if err != nil {
		t.Fatalf("unwanted error creating session: %v", err)
	}
	return s
}
