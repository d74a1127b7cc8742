// Package mosaic runs the messages of a user's mosaic through a session one at a time.
package mosaic

import (
	"context"
	"errors"
	"fmt"

	"github.com/jacobpatterson1549/selene-mosaic/game/message"
	"github.com/jacobpatterson1549/selene-mosaic/game/session"
	"github.com/jacobpatterson1549/selene-mosaic/server/log"
	"github.com/jacobpatterson1549/selene-mosaic/server/runner"
)

type (
	// Mosaic handles the messages of a single user's session.
	Mosaic struct {
		runner.Runner
		session *session.Session
		Config
	}

	// Config contains the properties to create similar mosaics.
	Config struct {
		// Debug is a flag that causes the mosaic to log the types messages that are read.
		Debug bool
		// Log is used to log errors and other information.
		Log log.Logger
	}

	// messageHandler is a function which handles message.Messages, returning responses to the output channel.
	messageHandler func(ctx context.Context, m message.Message, send messageSender) error

	// messageSender is a function that sends a message somewhere.
	messageSender func(m message.Message)

	// mosaicWarning is an error for a request that could not be handled but does not indicate the mosaic is broken.
	mosaicWarning string
)

// NewMosaic creates a mosaic for the session.
func (cfg Config) NewMosaic(s *session.Session) (*Mosaic, error) {
	if err := cfg.validate(s); err != nil {
		return nil, fmt.Errorf("creating mosaic: validation: %w", err)
	}
	m := Mosaic{
		session: s,
		Config:  cfg,
	}
	return &m, nil
}

// validate ensures the configuration has no errors.
func (cfg Config) validate(s *session.Session) error {
	switch {
	case cfg.Log == nil:
		return fmt.Errorf("log required")
	case s == nil:
		return fmt.Errorf("session required")
	}
	return nil
}

// Run handles messages from the in channel asynchronously until the context is closed or in is closed.
// Replies are sent on the out channel, which is closed when Run stops.
// A mosaic can only be run once.
func (mo *Mosaic) Run(ctx context.Context, in <-chan message.Message, out chan<- message.Message) error {
	if err := mo.Start(); err != nil {
		return fmt.Errorf("running mosaic: %w", err)
	}
	send := mo.sendMessage(out)
	messageHandlers := map[message.Type]messageHandler{
		message.Start:           mo.handleStart,
		message.Clear:           mo.handleClear,
		message.Restart:         mo.handleRestart,
		message.PlaceByDrag:     mo.handlePlaceByDrag,
		message.PlaceFirstEmpty: mo.handlePlaceFirstEmpty,
		message.RemoveTile:      mo.handleRemoveTile,
		message.RotateTile:      mo.handleRotateTile,
		message.RotatePoolTile:  mo.handleRotatePoolTile,
		message.RandomFill:      mo.handleRandomFill,
		message.SetFinish:       mo.handleSetFinish,
		message.SetLayout:       mo.handleSetLayout,
		message.Refresh:         mo.handleRefresh,
		message.ExportOrder:     mo.handleExportOrder,
	}
	go func() {
		defer mo.Finish()
		defer close(out)
		for { // BLOCKING
			select {
			case <-ctx.Done():
				return
			case m, ok := <-in:
				if !ok || m.Type == message.Close {
					return
				}
				mo.handleMessage(ctx, m, send, messageHandlers)
			}
		}
	}()
	return nil
}

// sendMessage creates a messageSender that writes to the out channel.
func (mo *Mosaic) sendMessage(out chan<- message.Message) messageSender {
	return func(m message.Message) {
		message.Send(m, out, mo.Debug, mo.Log)
	}
}

// handleMessage handles the message with the appropriate message handler.
func (mo *Mosaic) handleMessage(ctx context.Context, m message.Message, send messageSender, messageHandlers map[message.Type]messageHandler) {
	if mo.Debug {
		mo.Log.Printf("mosaic reading message with type %v", m.Type)
	}
	var err error
	if mh, ok := messageHandlers[m.Type]; !ok {
		err = fmt.Errorf("mosaic does not know how to handle message type %v", m.Type)
	} else {
		err = mh(ctx, m, send)
	}
	if err != nil {
		var mt message.Type
		switch err.(type) {
		case mosaicWarning:
			mt = message.Warning
		default:
			mt = message.Error
			mo.Log.Printf("mosaic error: %v", err)
		}
		m := message.Message{
			Type: mt,
			Info: err.Error(),
		}
		send(m)
	}
}

// handleStart creates or resizes the grid.
func (mo *Mosaic) handleStart(ctx context.Context, m message.Message, send messageSender) error {
	discarded, err := mo.session.StartInput(m.Width, m.Height)
	switch {
	case errors.Is(err, session.ErrInvalidDimensions):
		return mosaicWarning(fmt.Sprintf("width must be a whole number from 1 to %v and height from 1 to %v", mo.session.MaxCols, mo.session.MaxRows))
	case err != nil:
		return err
	}
	var info string
	if discarded > 0 {
		info = fmt.Sprintf("resizing the grid discarded %v tiles", discarded)
	}
	mo.sendView(send, info, nil)
	return nil
}

// handleClear discards the tiles in the grid.
func (mo *Mosaic) handleClear(ctx context.Context, m message.Message, send messageSender) error {
	if err := mo.session.Clear(); err != nil {
		return checkStarted(err)
	}
	mo.sendView(send, "", nil)
	return nil
}

// handleRestart removes the grid and gets a new pool.
func (mo *Mosaic) handleRestart(ctx context.Context, m message.Message, send messageSender) error {
	mo.session.Restart()
	mo.sendView(send, "", nil)
	return nil
}

// handlePlaceByDrag drops the tile at the point.
func (mo *Mosaic) handlePlaceByDrag(ctx context.Context, m message.Message, send messageSender) error {
	r := mo.session.PlaceByDrag(m.TileID, m.Point())
	mo.sendView(send, "", &r)
	return nil
}

// handlePlaceFirstEmpty moves the tile to the first empty cell.
func (mo *Mosaic) handlePlaceFirstEmpty(ctx context.Context, m message.Message, send messageSender) error {
	r := mo.session.PlaceFirstEmpty(m.TileID)
	mo.sendView(send, "", &r)
	return nil
}

// handleRemoveTile discards the tile in the cell.
func (mo *Mosaic) handleRemoveTile(ctx context.Context, m message.Message, send messageSender) error {
	r := mo.session.RemoveFromGrid(m.Row, m.Col)
	mo.sendView(send, "", &r)
	return nil
}

// handleRotateTile turns the tile in the cell.
func (mo *Mosaic) handleRotateTile(ctx context.Context, m message.Message, send messageSender) error {
	r := mo.session.RotateGridTile(m.Row, m.Col)
	mo.sendView(send, "", &r)
	return nil
}

// handleRotatePoolTile turns the floating tile.
func (mo *Mosaic) handleRotatePoolTile(ctx context.Context, m message.Message, send messageSender) error {
	r := mo.session.RotatePoolTile(m.TileID)
	mo.sendView(send, "", &r)
	return nil
}

// handleRandomFill puts random tiles in the empty cells.
func (mo *Mosaic) handleRandomFill(ctx context.Context, m message.Message, send messageSender) error {
	n, err := mo.session.RandomFill()
	if err != nil {
		return checkStarted(err)
	}
	info := fmt.Sprintf("added %v random tiles", n)
	mo.sendView(send, info, nil)
	return nil
}

// handleSetFinish chooses the finish.
func (mo *Mosaic) handleSetFinish(ctx context.Context, m message.Message, send messageSender) error {
	mo.session.SetAlternateFinish(m.Finish)
	mo.sendView(send, "", nil)
	return nil
}

// handleSetLayout moves the grid.
func (mo *Mosaic) handleSetLayout(ctx context.Context, m message.Message, send messageSender) error {
	if m.Layout == nil {
		return mosaicWarning("layout required")
	}
	if err := mo.session.SetLayout(*m.Layout); err != nil {
		return mosaicWarning(err.Error())
	}
	mo.sendView(send, "", nil)
	return nil
}

// handleRefresh sends the current view.
func (mo *Mosaic) handleRefresh(ctx context.Context, m message.Message, send messageSender) error {
	mo.sendView(send, "", nil)
	return nil
}

// handleExportOrder sends the order for the tiles in the grid.
func (mo *Mosaic) handleExportOrder(ctx context.Context, m message.Message, send messageSender) error {
	o := mo.session.Order()
	if len(o.Lines) == 0 {
		return mosaicWarning("no tiles to order")
	}
	m2 := message.Message{
		Type:  message.Order,
		Order: &o,
	}
	send(m2)
	return nil
}

// sendView sends the state of the session with the info and result.
func (mo *Mosaic) sendView(send messageSender, info string, r *session.Result) {
	v := mo.session.View()
	m := message.Message{
		Type:   message.View,
		Info:   info,
		Result: r,
		View:   &v,
	}
	send(m)
}

// checkStarted converts errors from requests before the grid is started to warnings.
func checkStarted(err error) error {
	if errors.Is(err, session.ErrNotStarted) {
		return mosaicWarning("start the grid first")
	}
	return err
}

// Error returns the text of the warning.
func (w mosaicWarning) Error() string {
	return string(w)
}
