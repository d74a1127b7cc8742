package server

import (
	"net/http"

	"github.com/jacobpatterson1549/selene-mosaic/game/catalog"
	"github.com/jacobpatterson1549/selene-mosaic/game/grid"
	"github.com/jacobpatterson1549/selene-mosaic/game/pool"
	"github.com/jacobpatterson1549/selene-mosaic/game/session"
	"github.com/jacobpatterson1549/selene-mosaic/game/tile"
	"github.com/jacobpatterson1549/selene-mosaic/server/log/logtest"
	"github.com/jacobpatterson1549/selene-mosaic/server/socket"
)

type mockUpgrader func(w http.ResponseWriter, r *http.Request) (socket.Conn, error)

func (m mockUpgrader) Upgrade(w http.ResponseWriter, r *http.Request) (socket.Conn, error) {
	return m(w, r)
}

type zeroRandom struct{}

func (zeroRandom) Intn(n int) int {
	return 0
}

var testCatalog = catalog.Catalog{
	Types: []catalog.Entry{
		{Name: "red", Image: "/red.png", Price: 5},
		{Name: "blue", Image: "/blue.png", Price: 10},
	},
	Surcharge: 1,
}

func newTestSession() (*session.Session, error) {
	cfg := session.Config{
		Log:      logtest.DiscardLogger,
		Catalog:  testCatalog,
		PoolSize: 3,
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
	return cfg.NewSession()
}
