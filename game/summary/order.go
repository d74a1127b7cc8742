package summary

import (
	"sort"

	"github.com/jacobpatterson1549/selene-mosaic/game/catalog"
	"github.com/jacobpatterson1549/selene-mosaic/game/tile"
)

type (
	// Order is the list of tiles to buy for a mosaic.
	Order struct {
		Lines     []Line        `json:"lines"`
		Quantity  int           `json:"quantity"`
		Subtotal  catalog.Price `json:"subtotal"`
		Surcharge catalog.Price `json:"surcharge,omitempty"`
		Total     catalog.Price `json:"total"`
	}

	// Line is the quantity and price of a single tile type in an order.
	Line struct {
		Type      tile.Type     `json:"type"`
		Name      string        `json:"name"`
		Image     string        `json:"image,omitempty"`
		Quantity  int           `json:"quantity"`
		UnitPrice catalog.Price `json:"unitPrice"`
		Price     catalog.Price `json:"price"`
	}
)

// NewOrder creates an order with a line for each tile type in the summary, sorted by type.
// Types that are not in the catalog are listed without a name or price.
func NewOrder(s Summary, c catalog.Catalog) Order {
	types := make([]int, 0, len(s.Counts))
	for t, n := range s.Counts {
		if n > 0 {
			types = append(types, int(t))
		}
	}
	sort.Ints(types)
	o := Order{
		Lines:     make([]Line, 0, len(types)),
		Quantity:  s.Occupied,
		Subtotal:  s.Subtotal,
		Surcharge: s.Surcharge,
		Total:     s.Total,
	}
	for _, ti := range types {
		t := tile.Type(ti)
		e, _ := c.Entry(t)
		n := s.Counts[t]
		l := Line{
			Type:      t,
			Name:      e.Name,
			Image:     e.Image,
			Quantity:  n,
			UnitPrice: e.Price,
			Price:     catalog.Price(n) * e.Price,
		}
		o.Lines = append(o.Lines, l)
	}
	return o
}
