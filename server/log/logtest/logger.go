// Package logtest implements support for testing Loggers.
package logtest

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jacobpatterson1549/selene-mosaic/server/log"
)

// DiscardLogger is a Logger that logs nothing.
var DiscardLogger = new(discardLogger)

// discardLogger is a logger that logs nothing.
// This is more simple than using the standard log.Logger:New() with the io.Discard writer.
type discardLogger struct{}

// DiscardLogger (and other log.Loggers) implement the log.Logger interface.
var _ log.Logger = DiscardLogger

// Printf implements the log.Logger interface
func (discardLogger) Printf(format string, v ...interface{}) {
	// NOOP
}

// Logger is a logger that records each formatted entry to be read later.
// The zero value is ready to use.
type Logger struct {
	entries []string
	mu      sync.RWMutex
}

// Logger implements the log.Logger interface.
var _ log.Logger = new(Logger)

// Printf implements the log.Logger interface
func (l *Logger) Printf(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, fmt.Sprintf(format, v...))
}

// Entries copies the recorded entries, oldest first.
func (l *Logger) Entries() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	entries := make([]string, len(l.entries))
	copy(entries, l.entries)
	return entries
}

// String returns the recorded entries, one per line.
func (l *Logger) String() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return strings.Join(l.entries, "\n")
}

// Contains determines if any entry has the substring.
func (l *Logger) Contains(substr string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, e := range l.entries {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

// Empty returns if nothing has been logged since the logger was created or reset.
func (l *Logger) Empty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries) == 0
}

// Reset forgets the recorded entries.
func (l *Logger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}
