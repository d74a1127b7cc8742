// Package server runs the http server which allows users to open websockets to compose mosaics.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jacobpatterson1549/selene-mosaic/game/catalog"
	"github.com/jacobpatterson1549/selene-mosaic/game/session"
	"github.com/jacobpatterson1549/selene-mosaic/server/log"
	"github.com/jacobpatterson1549/selene-mosaic/server/mosaic"
	"github.com/jacobpatterson1549/selene-mosaic/server/socket"
)

type (
	// Server runs the site.
	Server struct {
		wg          sync.WaitGroup
		connections atomic.Int64
		log         log.Logger
		httpServer  *http.Server
		Config
	}

	// Config contains fields which describe the server.
	Config struct {
		// HTTPPort is the TCP port for server http requests.
		HTTPPort int
		// StopDur is the maximum duration the server should take to shutdown gracefully.
		StopDur time.Duration
		// CacheSec is the number of seconds the catalog can be cached.
		CacheSec int
		// Catalog contains the types of tiles that can be placed and their prices.
		Catalog catalog.Catalog
		// MosaicConfig is used to create the mosaic for each connection.
		MosaicConfig mosaic.Config
		// SocketConfig is used to create the socket for each connection.
		SocketConfig socket.Config
	}

	// Parameters contains the interfaces needed to create a new server.
	Parameters struct {
		log.Logger
		Upgrader
		// NewSession creates the session for a new connection.
		NewSession func() (*session.Session, error)
	}

	// Upgrader creates socket connections from http requests.
	Upgrader interface {
		Upgrade(w http.ResponseWriter, r *http.Request) (socket.Conn, error)
	}
)

const (
	// HeaderContentType is used to set the document type header on http responses.
	HeaderContentType = "Content-Type"
	// HeaderCacheControl is used to tell browsers how long to cache http responses.
	HeaderCacheControl = "Cache-Control"
	// HeaderAcceptEncoding is specified by the browser to tell the server what types of document encoding it can handle.
	HeaderAcceptEncoding = "Accept-Encoding"
	// HeaderContentEncoding is used to tell browsers how the document is encoded.
	HeaderContentEncoding = "Content-Encoding"
)

// NewServer creates a Server from the Config.
func (cfg Config) NewServer(p Parameters) (*Server, error) {
	if err := cfg.validate(p); err != nil {
		return nil, fmt.Errorf("creating server: validation: %w", err)
	}
	catalogJSON, err := json.Marshal(cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("creating server: encoding catalog: %w", err)
	}
	s := Server{
		log:    p.Logger,
		Config: cfg,
	}
	cacheMaxAge := fmt.Sprintf("max-age=%d", cfg.CacheSec)
	getMux := http.NewServeMux()
	getMux.Handle("/catalog", fileHandler(jsonHandler(catalogJSON), cacheMaxAge))
	getMux.Handle("/ws", s.mosaicHandler(p))
	getMux.Handle("/monitor", http.HandlerFunc(s.handleMonitor))
	getMux.Handle("/ping", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// NOOP
	}))
	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: getHandler(getMux),
	}
	return &s, nil
}

// validate ensures the configuration has no errors.
func (cfg Config) validate(p Parameters) error {
	switch {
	case p.Logger == nil:
		return fmt.Errorf("log required")
	case p.Upgrader == nil:
		return fmt.Errorf("upgrader required")
	case p.NewSession == nil:
		return fmt.Errorf("session creator required")
	case cfg.HTTPPort <= 0:
		return fmt.Errorf("positive http port required")
	case cfg.StopDur <= 0:
		return fmt.Errorf("stop timeout duration required")
	case cfg.CacheSec < 0:
		return fmt.Errorf("non-negative cache time required")
	}
	if err := cfg.Catalog.Validate(); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	return nil
}

// Run the server asynchronously until it receives a shutdown signal.
// When the HTTP server stops, the error is sent on the returned channel.
func (s *Server) Run(ctx context.Context) <-chan error {
	errC := make(chan error, 1)
	ctx, cancelFunc := context.WithCancel(ctx)
	s.httpServer.BaseContext = func(l net.Listener) context.Context {
		return ctx
	}
	s.httpServer.RegisterOnShutdown(cancelFunc)
	s.log.Printf("starting http server at http://127.0.0.1%v", s.httpServer.Addr)
	go func() {
		errC <- s.httpServer.ListenAndServe()
	}()
	return errC
}

// Stop asks the server to shutdown and waits for the shutdown to complete.
// An error is returned if the server if the context times out.
func (s *Server) Stop(ctx context.Context) error {
	ctx, cancelFunc := context.WithTimeout(ctx, s.StopDur)
	defer cancelFunc()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-ctx.Done():
		return fmt.Errorf("waiting for connections to close: %w", ctx.Err())
	case <-done:
	}
	return nil
}
