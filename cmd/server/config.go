package main

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/jacobpatterson1549/selene-mosaic/game/catalog"
	"github.com/jacobpatterson1549/selene-mosaic/game/grid"
	"github.com/jacobpatterson1549/selene-mosaic/game/pool"
	"github.com/jacobpatterson1549/selene-mosaic/game/session"
	"github.com/jacobpatterson1549/selene-mosaic/game/tile"
	"github.com/jacobpatterson1549/selene-mosaic/server"
	"github.com/jacobpatterson1549/selene-mosaic/server/log"
	"github.com/jacobpatterson1549/selene-mosaic/server/mosaic"
	"github.com/jacobpatterson1549/selene-mosaic/server/socket"
)

const (
	// scatterMargin keeps scattered tiles from floating off the right and bottom of the viewport.
	scatterMargin = 100
	// latticeSpacing is the distance between lattice tiles, in cells, so the tiles do not touch.
	latticeSpacing = 2

	poolLayoutScatter = "scatter"
	poolLayoutLattice = "lattice"
)

// serverConfig creates the server configuration.
func serverConfig(m mainFlags, c catalog.Catalog, log log.Logger) server.Config {
	timeFunc := func() int64 {
		return time.Now().UTC().Unix()
	}
	cfg := server.Config{
		HTTPPort:     m.httpPort,
		StopDur:      time.Second,
		CacheSec:     m.cacheSec,
		Catalog:      c,
		MosaicConfig: mosaicConfig(m, log),
		SocketConfig: socketConfig(m, log, timeFunc),
	}
	return cfg
}

// serverParameters creates the interfaces the server uses.
func serverParameters(m mainFlags, c catalog.Catalog, log log.Logger) (*server.Parameters, error) {
	sessionCfg, err := sessionConfig(m, c, log)
	if err != nil {
		return nil, err
	}
	p := server.Parameters{
		Logger:     log,
		Upgrader:   server.NewGorillaUpgrader(),
		NewSession: newSessionFunc(sessionCfg, m.seed),
	}
	return &p, nil
}

// mosaicConfig creates the configuration for handling the messages of each session.
func mosaicConfig(m mainFlags, log log.Logger) mosaic.Config {
	cfg := mosaic.Config{
		Debug: m.debugGame,
		Log:   log,
	}
	return cfg
}

// socketConfig creates the configuration for each websocket connection.
func socketConfig(m mainFlags, log log.Logger, timeFunc func() int64) socket.Config {
	cfg := socket.Config{
		Debug:      m.debugGame,
		Log:        log,
		TimeFunc:   timeFunc,
		ReadWait:   60 * time.Second,
		WriteWait:  10 * time.Second,
		PingPeriod: 54 * time.Second, // readWait * 0.9
		IdlePeriod: 60 * time.Minute,
	}
	return cfg
}

// sessionConfig creates the base configuration for all sessions.
// The random source is set for each session.
func sessionConfig(m mainFlags, c catalog.Catalog, log log.Logger) (session.Config, error) {
	layout, err := poolLayout(m)
	if err != nil {
		return session.Config{}, err
	}
	cfg := session.Config{
		Debug:    m.debugGame,
		Log:      log,
		Catalog:  c,
		PoolSize: m.poolSize,
		PoolConfig: pool.Config{
			Layout: layout,
		},
		MaxRows: m.maxRows,
		MaxCols: m.maxCols,
		Layout: grid.Layout{
			CellSize: float64(m.cellSize),
		},
	}
	return cfg, nil
}

// poolLayout creates the function that arranges the floating tiles in the viewport.
func poolLayout(m mainFlags) (pool.LayoutFunc, error) {
	viewport := pool.Size{
		Width:  float64(m.viewportWidth),
		Height: float64(m.viewportHeight),
	}
	switch m.poolLayout {
	case poolLayoutScatter:
		return pool.ScatterLayout(viewport, scatterMargin), nil
	case poolLayoutLattice:
		center := tile.Point{
			X: viewport.Width / 2,
			Y: viewport.Height / 2,
		}
		spacing := float64(m.cellSize * latticeSpacing)
		return pool.LatticeLayout(center, spacing), nil
	}
	return nil, fmt.Errorf("unknown pool layout %q, wanted %q or %q", m.poolLayout, poolLayoutScatter, poolLayoutLattice)
}

// newSessionFunc creates a function that makes sessions with their own random sources.
// The sources are seeded from a shared source, so the same seed produces the same mosaics.
func newSessionFunc(cfg session.Config, seed int64) func() (*session.Session, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	var mu sync.Mutex
	seeds := rand.New(rand.NewSource(seed))
	return func() (*session.Session, error) {
		mu.Lock()
		sessionSeed := seeds.Int63()
		mu.Unlock()
		sessionCfg := cfg
		sessionCfg.PoolConfig.Random = rand.New(rand.NewSource(sessionSeed))
		s, err := sessionCfg.NewSession()
		if err != nil {
			return nil, fmt.Errorf("creating session: %w", err)
		}
		return s, nil
	}
}
