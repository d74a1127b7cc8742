package main

import (
	"errors"
	"io"
	"log"
	"reflect"
	"testing"

	"github.com/jacobpatterson1549/selene-mosaic/game/session"
	"github.com/jacobpatterson1549/selene-mosaic/game/tile"
	"github.com/jacobpatterson1549/selene-mosaic/server/log/logtest"
)

func testMainFlags() mainFlags {
	m := mainFlags{
		httpPort:       8000,
		poolSize:       4,
		cellSize:       50,
		maxRows:        20,
		maxCols:        30,
		poolLayout:     poolLayoutScatter,
		viewportWidth:  640,
		viewportHeight: 480,
		seed:           1257894000,
	}
	return m
}

func TestCreateServer(t *testing.T) {
	createServerTests := []struct {
		update func(m *mainFlags)
		wantOk bool
	}{
		{
			update: func(m *mainFlags) {},
			wantOk: true,
		},
		{
			update: func(m *mainFlags) { m.httpPort = 0 },
		},
		{
			update: func(m *mainFlags) { m.catalogFile = "/bad/catalog.yaml" },
		},
		{
			update: func(m *mainFlags) { m.poolLayout = "spiral" },
		},
		{
			update: func(m *mainFlags) { m.poolLayout = poolLayoutLattice },
			wantOk: true,
		},
	}
	for i, test := range createServerTests {
		m := testMainFlags()
		test.update(&m)
		log := log.New(io.Discard, "test", log.LstdFlags)
		_, err := createServer(m, log)
		switch {
		case !test.wantOk:
			if err == nil {
				t.Errorf("Test %v: wanted error", i)
			}
		case err != nil:
			t.Errorf("Test %v: unwanted error: %v", i, err)
		}
	}
}

func TestNewSessionFunc(t *testing.T) {
	m := testMainFlags()
	c, err := loadCatalog("")
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	cfg, err := sessionConfig(m, *c, logtest.DiscardLogger)
	if err != nil {
		t.Fatalf("unwanted error creating session config: %v", err)
	}
	newSession1 := newSessionFunc(cfg, m.seed)
	newSession2 := newSessionFunc(cfg, m.seed)
	for i := 0; i < 3; i++ {
		s1, err1 := newSession1()
		s2, err2 := newSession2()
		if err1 != nil || err2 != nil {
			t.Fatalf("Test %v: unwanted errors: %v, %v", i, err1, err2)
		}
		p1 := s1.View().Pool
		p2 := s2.View().Pool
		switch {
		case len(p1) != m.poolSize:
			t.Errorf("Test %v: wanted %v pool tiles, got %v", i, m.poolSize, len(p1))
		case !reflect.DeepEqual(p1, p2):
			t.Errorf("Test %v: wanted sessions with the same seed to have the same pools:\n%v\n%v", i, p1, p2)
		}
		for _, tl := range p1 {
			if tl.Position.X < 0 || tl.Position.X >= 640 || tl.Position.Y < 0 || tl.Position.Y >= 480 {
				t.Errorf("Test %v: wanted tile %v scattered in viewport", i, tl)
			}
		}
	}
}

func TestConfigsValid(t *testing.T) {
	m := testMainFlags()
	c, err := loadCatalog("")
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	cfg := serverConfig(m, *c, logtest.DiscardLogger)
	p, err := serverParameters(m, *c, logtest.DiscardLogger)
	if err != nil {
		t.Fatalf("unwanted error creating server parameters: %v", err)
	}
	if _, err := cfg.NewServer(*p); err != nil {
		t.Errorf("unwanted error creating server: %v", err)
	}
	if cfg.SocketConfig.PingPeriod >= cfg.SocketConfig.ReadWait {
		t.Errorf("wanted ping period less than read wait")
	}
	if _, err := p.NewSession(); err != nil {
		t.Errorf("unwanted error creating session: %v", err)
	}
}

func TestPoolLayout(t *testing.T) {
	poolLayoutTests := []struct {
		poolLayout string
		wantOk     bool
		want       []tile.Point
	}{
		{
			poolLayout: "",
		},
		{
			poolLayout: "spiral",
		},
		{
			poolLayout: poolLayoutLattice,
			wantOk:     true,
			want: []tile.Point{
				{X: 270, Y: 190},
				{X: 370, Y: 190},
				{X: 270, Y: 290},
				{X: 370, Y: 290},
			},
		},
	}
	for i, test := range poolLayoutTests {
		m := testMainFlags()
		m.poolLayout = test.poolLayout
		layout, err := poolLayout(m)
		switch {
		case !test.wantOk:
			if err == nil {
				t.Errorf("Test %v: wanted error", i)
			}
		case err != nil:
			t.Errorf("Test %v: unwanted error: %v", i, err)
		default:
			for j, want := range test.want {
				if got := layout(j, len(test.want), nil); want != got {
					t.Errorf("Test %v: wanted tile %v at %v, got %v", i, j, want, got)
				}
			}
		}
	}
}

func TestSessionMaxSize(t *testing.T) {
	m := testMainFlags()
	c, err := loadCatalog("")
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	cfg, err := sessionConfig(m, *c, logtest.DiscardLogger)
	if err != nil {
		t.Fatalf("unwanted error creating session config: %v", err)
	}
	s, err := newSessionFunc(cfg, m.seed)()
	if err != nil {
		t.Fatalf("unwanted error creating session: %v", err)
	}
	if _, err := s.StartInput("31", "20"); !errors.Is(err, session.ErrInvalidDimensions) {
		t.Errorf("wanted error starting grid wider than max cols, got %v", err)
	}
	if _, err := s.StartInput("30", "20"); err != nil {
		t.Errorf("unwanted error starting grid at max size: %v", err)
	}
}
