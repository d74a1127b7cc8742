// Package message contains structures to pass between the ui and server.
package message

import (
	"github.com/jacobpatterson1549/selene-mosaic/game/grid"
	"github.com/jacobpatterson1549/selene-mosaic/game/session"
	"github.com/jacobpatterson1549/selene-mosaic/game/summary"
	"github.com/jacobpatterson1549/selene-mosaic/game/tile"
)

type (
	// Type represents what the purpose of a message.
	Type int

	// Message contains information to or from a socket for a mosaic.
	Message struct {
		// Type is the purpose of the message.
		Type Type `json:"type"`
		// Width is the requested number of grid columns, as typed by the user.
		Width string `json:"width,omitempty"`
		// Height is the requested number of grid rows, as typed by the user.
		Height string `json:"height,omitempty"`
		// TileID is the pool tile the message is about.
		TileID tile.ID `json:"tileID,omitempty"`
		// X is the horizontal drop location, in pixels.
		X float64 `json:"x,omitempty"`
		// Y is the vertical drop location, in pixels.
		Y float64 `json:"y,omitempty"`
		// Row is the grid cell row the message is about.
		Row int `json:"row,omitempty"`
		// Col is the grid cell column the message is about.
		Col int `json:"col,omitempty"`
		// Finish is true when the alternate finish is chosen.
		Finish bool `json:"finish,omitempty"`
		// Layout is where the ui draws the grid.
		Layout *grid.Layout `json:"layout,omitempty"`
		// Info is a message to show to the user.
		Info string `json:"info,omitempty"`
		// Result is the effect of the last tile gesture.
		Result *session.Result `json:"result,omitempty"`
		// View is the state of the mosaic.
		View *session.View `json:"view,omitempty"`
		// Order is the exported list of tiles to buy.
		Order *summary.Order `json:"order,omitempty"`
	}
)

const (
	_ Type = iota
	// Start is a Type that users send to create or resize the grid from the Width and Height fields.
	Start
	// Clear is a Type that users send to discard all the tiles in the grid.
	Clear
	// Restart is a Type that users send to remove the grid and get a new pool of tiles.
	Restart
	// PlaceByDrag is a Type that users send when the TileID tile is dropped at X and Y.
	PlaceByDrag
	// PlaceFirstEmpty is a Type that users send to move the TileID tile to the first empty cell.
	PlaceFirstEmpty
	// RemoveTile is a Type that users send to discard the tile at Row and Col.
	RemoveTile
	// RotateTile is a Type that users send to turn the tile at Row and Col.
	RotateTile
	// RotatePoolTile is a Type that users send to turn the floating TileID tile.
	RotatePoolTile
	// RandomFill is a Type that users send to put random tiles in all the empty cells.
	RandomFill
	// SetFinish is a Type that users send to choose the alternate finish from the Finish field.
	SetFinish
	// SetLayout is a Type that users send after the grid is drawn somewhere else.
	SetLayout
	// Refresh is a Type that users send to get the current View.
	Refresh
	// ExportOrder is a Type that users send to get the Order for the grid.
	ExportOrder
	// View is a Type that the server sends with the state of the mosaic after it changes.
	View
	// Order is a Type that the server sends with an exported order.
	Order
	// Warning is a Type that servers send to inform users that a request is invalid.
	Warning
	// Error is a Type that servers send to users to report an unexpected state.
	Error
	// Close is sent when the socket is closed.
	Close // keep last for tests
)

// String returns the name of the message type.
func (t Type) String() string {
	switch t {
	case Start:
		return "Start"
	case Clear:
		return "Clear"
	case Restart:
		return "Restart"
	case PlaceByDrag:
		return "PlaceByDrag"
	case PlaceFirstEmpty:
		return "PlaceFirstEmpty"
	case RemoveTile:
		return "RemoveTile"
	case RotateTile:
		return "RotateTile"
	case RotatePoolTile:
		return "RotatePoolTile"
	case RandomFill:
		return "RandomFill"
	case SetFinish:
		return "SetFinish"
	case SetLayout:
		return "SetLayout"
	case Refresh:
		return "Refresh"
	case ExportOrder:
		return "ExportOrder"
	case View:
		return "View"
	case Order:
		return "Order"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	case Close:
		return "Close"
	}
	return "?"
}

// Point is the drop location of the message.
func (m Message) Point() tile.Point {
	return tile.Point{X: m.X, Y: m.Y}
}
