// Package runner guards parts of the server that can only be run once.
package runner

import (
	"errors"
	"sync"
)

type (
	// Runner records if something has started or stopped running.
	// The zero value is ready to be started.
	Runner struct {
		mu    sync.Mutex
		state state
		done  chan struct{}
	}

	// state is the lifecycle stage of a Runner.
	state int
)

const (
	notStarted state = iota
	running
	finished
)

// ErrAlreadyRun is returned when starting a runner that is running or has finished.
var ErrAlreadyRun = errors.New("already running or has finished running, it can only be run once")

// Start marks the runner as running.
func (r *Runner) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != notStarted {
		return ErrAlreadyRun
	}
	r.state = running
	r.doneC()
	return nil
}

// Finish marks the runner as done, regardless if it ran.  Finishing more than once has no effect.
func (r *Runner) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == finished {
		return
	}
	r.state = finished
	close(r.doneC())
}

// Running determines if the runner has started and not finished.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state == running
}

// Done is closed when the runner finishes.
func (r *Runner) Done() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.doneC()
}

// doneC lazily creates the done channel.  The mutex must be held.
func (r *Runner) doneC() chan struct{} {
	if r.done == nil {
		r.done = make(chan struct{})
	}
	return r.done
}
