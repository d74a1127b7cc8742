package server

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jacobpatterson1549/selene-mosaic/game/catalog"
	"github.com/jacobpatterson1549/selene-mosaic/game/grid"
	"github.com/jacobpatterson1549/selene-mosaic/game/message"
	"github.com/jacobpatterson1549/selene-mosaic/game/session"
	"github.com/jacobpatterson1549/selene-mosaic/game/tile"
	"github.com/jacobpatterson1549/selene-mosaic/server/log/logtest"
	"github.com/jacobpatterson1549/selene-mosaic/server/mosaic"
	"github.com/jacobpatterson1549/selene-mosaic/server/socket"
)

func testServerConfig() Config {
	cfg := Config{
		HTTPPort: 8000,
		StopDur:  time.Second,
		CacheSec: 60,
		Catalog:  testCatalog,
		MosaicConfig: mosaic.Config{
			Log: logtest.DiscardLogger,
		},
		SocketConfig: socket.Config{
			Log:        logtest.DiscardLogger,
			TimeFunc:   func() int64 { return time.Now().Unix() },
			ReadWait:   time.Hour,
			WriteWait:  time.Hour,
			PingPeriod: time.Minute,
			IdlePeriod: time.Hour,
		},
	}
	return cfg
}

func testParameters() Parameters {
	p := Parameters{
		Logger:     logtest.DiscardLogger,
		Upgrader:   NewGorillaUpgrader(),
		NewSession: newTestSession,
	}
	return p
}

func TestNewServer(t *testing.T) {
	newServerTests := []struct {
		update func(cfg *Config, p *Parameters)
		wantOk bool
	}{
		{
			update: func(cfg *Config, p *Parameters) { p.Logger = nil },
		},
		{
			update: func(cfg *Config, p *Parameters) { p.Upgrader = nil },
		},
		{
			update: func(cfg *Config, p *Parameters) { p.NewSession = nil },
		},
		{
			update: func(cfg *Config, p *Parameters) { cfg.HTTPPort = 0 },
		},
		{
			update: func(cfg *Config, p *Parameters) { cfg.StopDur = 0 },
		},
		{
			update: func(cfg *Config, p *Parameters) { cfg.CacheSec = -1 },
		},
		{
			update: func(cfg *Config, p *Parameters) { cfg.Catalog = catalog.Catalog{} },
		},
		{
			update: func(cfg *Config, p *Parameters) {},
			wantOk: true,
		},
	}
	for i, test := range newServerTests {
		cfg := testServerConfig()
		p := testParameters()
		test.update(&cfg, &p)
		s, err := cfg.NewServer(p)
		switch {
		case !test.wantOk:
			if err == nil {
				t.Errorf("Test %v: wanted error", i)
			}
		case err != nil:
			t.Errorf("Test %v: unwanted error: %v", i, err)
		case s.httpServer.Addr != ":8000":
			t.Errorf("Test %v: wanted server address to be :8000, got %q", i, s.httpServer.Addr)
		}
	}
}

func newTestServer(t *testing.T, p Parameters) *Server {
	t.Helper()
	s, err := testServerConfig().NewServer(p)
	if err != nil {
		t.Fatalf("unwanted error creating server: %v", err)
	}
	return s
}

func TestCatalogHandler(t *testing.T) {
	catalogHandlerTests := []struct {
		method         string
		acceptEncoding string
		wantCode       int
		wantGzip       bool
	}{
		{
			method:   "GET",
			wantCode: 200,
		},
		{
			method:         "GET",
			acceptEncoding: "gzip, deflate",
			wantCode:       200,
			wantGzip:       true,
		},
		{
			method:   "POST",
			wantCode: 405,
		},
	}
	s := newTestServer(t, testParameters())
	for i, test := range catalogHandlerTests {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(test.method, "/catalog", nil)
		if len(test.acceptEncoding) != 0 {
			r.Header.Set(HeaderAcceptEncoding, test.acceptEncoding)
		}
		s.httpServer.Handler.ServeHTTP(w, r)
		if test.wantCode != w.Code {
			t.Errorf("Test %v: wanted %v status code, got %v", i, test.wantCode, w.Code)
			continue
		}
		if w.Code != 200 {
			continue
		}
		var body io.Reader = w.Body
		if test.wantGzip {
			if got := w.Header().Get(HeaderContentEncoding); got != "gzip" {
				t.Errorf("Test %v: wanted gzip content encoding, got %q", i, got)
			}
			gr, err := gzip.NewReader(w.Body)
			if err != nil {
				t.Errorf("Test %v: reading gzip: %v", i, err)
				continue
			}
			body = gr
		}
		var got catalog.Catalog
		switch err := json.NewDecoder(body).Decode(&got); {
		case err != nil:
			t.Errorf("Test %v: unwanted error decoding catalog: %v", i, err)
		case len(got.Types) != 2 || got.Types[1] != testCatalog.Types[1] || got.Surcharge != testCatalog.Surcharge:
			t.Errorf("Test %v: catalogs not equal:\nwanted: %v\ngot:    %v", i, testCatalog, got)
		case w.Header().Get(HeaderCacheControl) != "max-age=60":
			t.Errorf("Test %v: wanted cache control header, got %q", i, w.Header().Get(HeaderCacheControl))
		case !strings.HasPrefix(w.Header().Get(HeaderContentType), "application/json"):
			t.Errorf("Test %v: wanted json content type, got %q", i, w.Header().Get(HeaderContentType))
		}
	}
}

func TestMonitorHandler(t *testing.T) {
	s := newTestServer(t, testParameters())
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/monitor", nil)
	s.httpServer.Handler.ServeHTTP(w, r)
	body := w.Body.String()
	for _, want := range []string{"--- Memory Stats ---", "Open mosaic connections 0", "--- Goroutine Stack Traces ---"} {
		if !strings.Contains(body, want) {
			t.Errorf("wanted monitor to contain %q", want)
		}
	}
}

func TestGoroutineExpectations(t *testing.T) {
	var w strings.Builder
	writeGoroutineExpectations(&w)
	lines := strings.Split(w.String(), "\n")
	n := 0
	for _, e := range lines {
		if strings.HasPrefix(e, "* ") {
			n++
		}
	}
	if len(lines) < 2 || !strings.Contains(lines[1], "(4)") || n != 4 {
		t.Errorf("wanted 4 goroutine expectations, got %v:\n%v", n, w.String())
	}
}

func TestNotFound(t *testing.T) {
	s := newTestServer(t, testParameters())
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/index.html", nil)
	s.httpServer.Handler.ServeHTTP(w, r)
	if w.Code != 404 {
		t.Errorf("wanted not found, got %v", w.Code)
	}
}

func TestMosaicHandlerErrors(t *testing.T) {
	mosaicHandlerErrorTests := []struct {
		newSession func() (*session.Session, error)
		upgrader   Upgrader
		wantCode   int
		wantLog    string
	}{
		{
			newSession: func() (*session.Session, error) {
				return nil, errors.New("no sessions")
			},
			wantCode: 500,
			wantLog:  "server error: no sessions",
		},
		{
			newSession: newTestSession,
			upgrader: mockUpgrader(func(w http.ResponseWriter, r *http.Request) (socket.Conn, error) {
				httpError(w, http.StatusBadRequest)
				return nil, errors.New("not a websocket")
			}),
			wantCode: 400,
			wantLog:  "upgrading to websocket: not a websocket",
		},
		{
			newSession: newTestSession,
			upgrader:   NewGorillaUpgrader(),
			wantCode:   400,
			wantLog:    "upgrading to websocket: ",
		},
	}
	for i, test := range mosaicHandlerErrorTests {
		log := new(logtest.Logger)
		p := Parameters{
			Logger:     log,
			Upgrader:   test.upgrader,
			NewSession: test.newSession,
		}
		if p.Upgrader == nil {
			p.Upgrader = NewGorillaUpgrader()
		}
		s := newTestServer(t, p)
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/ws", nil)
		s.httpServer.Handler.ServeHTTP(w, r)
		switch {
		case test.wantCode != w.Code:
			t.Errorf("Test %v: wanted %v status code, got %v", i, test.wantCode, w.Code)
		case !log.Contains(test.wantLog):
			t.Errorf("Test %v: wanted log to contain %q, got %q", i, test.wantLog, log.String())
		}
	}
}

func TestMosaicHandler(t *testing.T) {
	s := newTestServer(t, testParameters())
	srv := httptest.NewServer(s.httpServer.Handler)
	defer srv.Close()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dialing server: %v", err)
	}
	defer conn.Close()
	exchange := func(m message.Message) message.Message {
		t.Helper()
		if err := conn.WriteJSON(m); err != nil {
			t.Fatalf("writing %v: %v", m.Type, err)
		}
		var reply message.Message
		if err := conn.ReadJSON(&reply); err != nil {
			t.Fatalf("reading reply to %v: %v", m.Type, err)
		}
		return reply
	}
	started := exchange(message.Message{Type: message.Start, Width: "3", Height: "2"})
	switch {
	case started.Type != message.View || started.View == nil:
		t.Fatalf("wanted view after start, got %v", started)
	case started.View.Rows != 2 || started.View.Cols != 3 || len(started.View.Pool) != 3:
		t.Errorf("wanted 2x3 grid and 3 pool tiles, got %v", *started.View)
	}
	placed := exchange(message.Message{Type: message.PlaceByDrag, TileID: 2, X: 25, Y: 15})
	var placedTile tile.Tile
	if placed.View != nil && placed.View.Grid != nil {
		placedTile, _ = placed.View.Grid.At(grid.Cell{Row: 1, Col: 2})
	}
	switch {
	case placed.Result == nil || placed.Result.Outcome != session.Placed:
		t.Errorf("wanted tile placed, got %v", placed.Result)
	case placedTile.ID != 2:
		t.Errorf("wanted tile 2 in cell (1,2)")
	case len(placed.View.Pool) != 3:
		t.Errorf("wanted pool replenished, got %v tiles", len(placed.View.Pool))
	case placed.View.Summary.Total != 5:
		t.Errorf("wanted total of 5, got %v", placed.View.Summary.Total)
	}
	order := exchange(message.Message{Type: message.ExportOrder})
	if order.Type != message.Order || order.Order == nil || order.Order.Total != 5 {
		t.Errorf("wanted order with total of 5, got %v", order)
	}
	warning := exchange(message.Message{Type: message.Start, Width: "x", Height: "2"})
	if warning.Type != message.Warning {
		t.Errorf("wanted warning for bad width, got %v", warning.Type)
	}
}

func TestConnectionsHaveSeparateSessions(t *testing.T) {
	s := newTestServer(t, testParameters())
	srv := httptest.NewServer(s.httpServer.Handler)
	defer srv.Close()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	var views [2]*session.View
	for i := range views {
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		if err != nil {
			t.Fatalf("Test %v: dialing server: %v", i, err)
		}
		m := message.Message{Type: message.Start, Width: "1", Height: "1"}
		if i == 1 {
			m = message.Message{Type: message.Refresh}
		}
		var reply message.Message
		if err := conn.WriteJSON(m); err != nil {
			t.Fatalf("Test %v: writing message: %v", i, err)
		}
		if err := conn.ReadJSON(&reply); err != nil {
			t.Fatalf("Test %v: reading message: %v", i, err)
		}
		views[i] = reply.View
		conn.Close()
	}
	switch {
	case views[0] == nil || views[1] == nil:
		t.Errorf("wanted views")
	case !views[0].Started:
		t.Errorf("wanted first connection's grid started")
	case views[1].Started:
		t.Errorf("wanted second connection to have its own session")
	}
}

func TestStop(t *testing.T) {
	s := newTestServer(t, testParameters())
	if err := s.Stop(context.Background()); err != nil {
		t.Errorf("unwanted error stopping server that was not started: %v", err)
	}
}
