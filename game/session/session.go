// Package session handles the logic to compose a mosaic by moving tiles from a pool into a grid.
package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/jacobpatterson1549/selene-mosaic/game/catalog"
	"github.com/jacobpatterson1549/selene-mosaic/game/grid"
	"github.com/jacobpatterson1549/selene-mosaic/game/pool"
	"github.com/jacobpatterson1549/selene-mosaic/game/summary"
	"github.com/jacobpatterson1549/selene-mosaic/game/tile"
	"github.com/jacobpatterson1549/selene-mosaic/server/log"
)

type (
	// Session is the state of one user's mosaic: the floating pool, the grid, and the derived summary.
	// All methods are safe to call concurrently; changes are serialized.
	Session struct {
		mu              sync.Mutex
		grid            *grid.Grid
		pool            *pool.Pool
		layout          grid.Layout
		alternateFinish bool
		prices          map[tile.Type]catalog.Price
		summary         summary.Summary
		Config
	}

	// Config contains the properties to create similar sessions.
	Config struct {
		// Debug is a flag that causes the session to log the gestures it handles.
		Debug bool
		// Log is used to log errors and other information.
		Log log.Logger
		// Catalog contains the types of tiles and their prices.
		Catalog catalog.Catalog
		// PoolSize is the number of tiles put in the pool when the session is created or restarted.
		PoolSize int
		// PoolConfig is used to create the pool and its tiles.
		PoolConfig pool.Config
		// MaxRows is the largest height the grid can be started or resized to.
		MaxRows int
		// MaxCols is the largest width the grid can be started or resized to.
		MaxCols int
		// Layout is where the grid is drawn when the session is created.
		Layout grid.Layout
		// SnapBackZones are areas where dropped tiles return to where they were rather than float at the drop point.
		SnapBackZones []grid.Rect
	}

	// pendingSpawn is a replacement tile that must be added to the pool after a placement is committed.
	pendingSpawn struct {
		near tile.Point
	}
)

var (
	// ErrInvalidDimensions is returned when starting a grid without a positive width and height or one larger than the maximum size.
	ErrInvalidDimensions = grid.ErrInvalidDimensions
	// ErrNotStarted is returned by commands that require a grid before one is started.
	ErrNotStarted = errors.New("grid has not been started")
)

// NewSession creates a session with a seeded pool and no grid.
func (cfg Config) NewSession() (*Session, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("creating session: validation: %w", err)
	}
	p, err := cfg.PoolConfig.Seed(cfg.Catalog.Len(), cfg.PoolSize)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	s := Session{
		pool:   p,
		layout: cfg.Layout,
		prices: cfg.Catalog.Prices(),
		Config: cfg,
	}
	s.refreshSummary()
	return &s, nil
}

// validate ensures the configuration has no errors.
func (cfg Config) validate() error {
	if err := cfg.Catalog.Validate(); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	switch {
	case cfg.Log == nil:
		return fmt.Errorf("log required")
	case cfg.PoolSize < 0:
		return fmt.Errorf("non-negative pool size required")
	case cfg.MaxRows <= 0:
		return fmt.Errorf("positive max rows required")
	case cfg.MaxCols <= 0:
		return fmt.Errorf("positive max cols required")
	case !cfg.Layout.Valid():
		return fmt.Errorf("finite layout with positive cell size required")
	}
	return nil
}

// Start creates an empty grid that is width cells wide and height cells tall.
// If the grid was already started, it is resized, keeping the tiles in cells that are in both sizes.
// The number of tiles discarded by shrinking the grid is returned.
func (s *Session) Start(width, height int) (int, error) {
	if width > s.MaxCols || height > s.MaxRows {
		return 0, fmt.Errorf("starting %vx%v grid larger than %vx%v: %w", width, height, s.MaxCols, s.MaxRows, ErrInvalidDimensions)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.grid == nil {
		g, err := grid.New(height, width)
		if err != nil {
			return 0, fmt.Errorf("starting grid: %w", err)
		}
		s.grid = g
		s.refreshSummary()
		return 0, nil
	}
	discarded, err := s.grid.Resize(height, width)
	if err != nil {
		return 0, fmt.Errorf("resizing grid: %w", err)
	}
	s.refreshSummary()
	return len(discarded), nil
}

// StartInput starts the grid from untrusted text, such as form fields.
// Text that is not a whole number is rejected like other invalid dimensions.
func (s *Session) StartInput(width, height string) (int, error) {
	w, err1 := strconv.Atoi(strings.TrimSpace(width))
	h, err2 := strconv.Atoi(strings.TrimSpace(height))
	if err1 != nil || err2 != nil {
		return 0, fmt.Errorf("starting grid from %q x %q: %w", width, height, ErrInvalidDimensions)
	}
	return s.Start(w, h)
}

// Clear removes all the tiles from the grid, keeping its dimensions.
// The tiles are discarded, not returned to the pool.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.grid == nil {
		return fmt.Errorf("clearing grid: %w", ErrNotStarted)
	}
	s.grid.ClearAll()
	s.refreshSummary()
	return nil
}

// Restart removes the grid and replaces the pool with newly seeded tiles.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid = nil
	s.alternateFinish = false
	s.pool.Reseed(s.PoolSize)
	s.refreshSummary()
}

// RandomFill puts a new random tile in every empty cell of the grid.
// The tiles are created directly in the grid, so the pool is not changed.
// The number of tiles added is returned.
func (s *Session) RandomFill() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.grid == nil {
		return 0, fmt.Errorf("filling grid: %w", ErrNotStarted)
	}
	n := 0
	for {
		c, ok := s.grid.FirstEmpty()
		if !ok {
			break
		}
		t := s.pool.NewTile()
		if err := s.grid.TryPlace(c, t); err != nil {
			return n, fmt.Errorf("filling grid: %w", err)
		}
		n++
	}
	s.refreshSummary()
	return n, nil
}

// SetAlternateFinish chooses whether the alternate finish surcharge is added to the price.
func (s *Session) SetAlternateFinish(alternate bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alternateFinish = alternate
	s.refreshSummary()
}

// SetLayout changes where the grid is drawn, such as after the window resizes.
func (s *Session) SetLayout(l grid.Layout) error {
	if !l.Valid() {
		return fmt.Errorf("setting layout: finite origin and positive cell size required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layout = l
	return nil
}

// refreshSummary recomputes the summary from the grid.  It should be called after every change to the grid.
func (s *Session) refreshSummary() {
	f := summary.Finish{
		Alternate: s.alternateFinish,
		Surcharge: s.Catalog.Surcharge,
	}
	s.summary = summary.Summarize(s.grid, s.prices, f)
}
