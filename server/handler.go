package server

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/jacobpatterson1549/selene-mosaic/game/message"
	"github.com/jacobpatterson1549/selene-mosaic/server/log"
	"github.com/jacobpatterson1549/selene-mosaic/server/socket"
	"github.com/jacobpatterson1549/selene-mosaic/server/socket/gorilla"
)

type (
	// gorillaUpgrader creates socket connections with gorilla/websocket.
	gorillaUpgrader struct {
		*gorilla.Upgrader
	}

	// wrappedResponseWriter wraps response writing with another writer.
	wrappedResponseWriter struct {
		io.Writer
		http.ResponseWriter
	}
)

// NewGorillaUpgrader creates an Upgrader that makes gorilla websocket connections.
func NewGorillaUpgrader() Upgrader {
	u := gorillaUpgrader{
		Upgrader: gorilla.NewUpgrader(),
	}
	return u
}

// Upgrade creates a socket connection from the http request.
func (u gorillaUpgrader) Upgrade(w http.ResponseWriter, r *http.Request) (socket.Conn, error) {
	c, err := u.Upgrader.Upgrade(w, r)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// getHandler only allows GET requests.
func getHandler(h http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			httpError(w, http.StatusMethodNotAllowed)
			return
		}
		h.ServeHTTP(w, r)
	}
}

// mosaicHandler upgrades the request to a websocket and runs a new mosaic for it until the connection closes.
// Messages read from the socket are handled by the mosaic and its replies are written to the socket.
func (s *Server) mosaicHandler(p Parameters) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := p.NewSession()
		if err != nil {
			writeInternalError(err, s.log, w)
			return
		}
		mo, err := s.MosaicConfig.NewMosaic(sess)
		if err != nil {
			writeInternalError(err, s.log, w)
			return
		}
		conn, err := p.Upgrade(w, r)
		if err != nil {
			s.log.Printf("upgrading to websocket: %v", err) // the upgrader writes the http error
			return
		}
		so, err := s.SocketConfig.NewSocket(conn)
		if err != nil {
			conn.Close()
			s.log.Printf("server error: %v", err)
			return
		}
		s.wg.Add(1)
		s.connections.Add(1)
		defer func() {
			s.connections.Add(-1)
			s.wg.Done()
		}()
		ctx := r.Context()
		socketIn := make(chan message.Message)
		socketOut := make(chan message.Message)
		if err := mo.Run(ctx, socketOut, socketIn); err != nil {
			conn.Close()
			s.log.Printf("server error: %v", err)
			return
		}
		so.Run(ctx, socketIn, socketOut) // BLOCKING
		for range socketIn {
			// drain replies so the mosaic can stop
		}
	}
}

// jsonHandler writes the json document.
func jsonHandler(j []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderContentType, "application/json")
		w.Write(j)
	}
}

// fileHandler wraps the handling of the file, add cache-control header and gzip compression, if possible.
func fileHandler(h http.Handler, cacheMaxAge string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get(HeaderAcceptEncoding), "gzip") {
			w2 := gzip.NewWriter(w)
			defer w2.Close()
			w = wrappedResponseWriter{
				Writer:         w2,
				ResponseWriter: w,
			}
			w.Header().Add(HeaderContentEncoding, "gzip")
		}
		w.Header().Set(HeaderCacheControl, cacheMaxAge)
		h.ServeHTTP(w, r)
	}
}

// writeInternalError logs and writes the error as an internal server error (500).
func writeInternalError(err error, log log.Logger, w http.ResponseWriter) {
	log.Printf("server error: %v", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// httpError writes the error status code.
func httpError(w http.ResponseWriter, statusCode int) {
	http.Error(w, http.StatusText(statusCode), statusCode)
}

// Write delegates the write to the wrapped writer.
func (wrw wrappedResponseWriter) Write(p []byte) (n int, err error) {
	return wrw.Writer.Write(p)
}
