// Package catalog describes the kinds of tiles that can be used in a mosaic.
package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/jacobpatterson1549/selene-mosaic/game/tile"
	"gopkg.in/yaml.v3"
)

type (
	// Catalog is the immutable list of tile types and their prices.
	// A tile's Type is its index in Types.
	Catalog struct {
		// Types are the kinds of tiles.
		Types []Entry `yaml:"types" json:"types"`
		// Surcharge is the extra price for each placed tile when the alternate finish is chosen.
		Surcharge Price `yaml:"surcharge" json:"surcharge"`
	}

	// Entry describes a single type of tile.
	Entry struct {
		// Name is the display name of the tile type.
		Name string `yaml:"name" json:"name"`
		// Image is a reference to the picture of the tile, such as a url path.
		Image string `yaml:"image" json:"image"`
		// Price is the unit price of the tile.
		Price Price `yaml:"price" json:"price"`
	}

	// Price is an amount of money in the smallest currency unit (cents).
	Price int64
)

// Load reads a catalog from yaml.
func Load(r io.Reader) (*Catalog, error) {
	var c Catalog
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(&c); err != nil {
		return nil, fmt.Errorf("parsing catalog yaml: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &c, nil
}

// LoadFile reads a catalog from the yaml file at the path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Validate ensures the catalog has at least one type and no negative prices.
func (c Catalog) Validate() error {
	if len(c.Types) == 0 {
		return fmt.Errorf("at least one tile type required")
	}
	names := make(map[string]struct{}, len(c.Types))
	for i, e := range c.Types {
		switch {
		case len(e.Name) == 0:
			return fmt.Errorf("tile type %v: name required", i)
		case e.Price < 0:
			return fmt.Errorf("tile type %v (%v): price must not be negative", i, e.Name)
		}
		if _, ok := names[e.Name]; ok {
			return fmt.Errorf("tile type %v: duplicate name %q", i, e.Name)
		}
		names[e.Name] = struct{}{}
	}
	if c.Surcharge < 0 {
		return fmt.Errorf("surcharge must not be negative")
	}
	return nil
}

// Len is the number of tile types.
func (c Catalog) Len() int {
	return len(c.Types)
}

// Entry returns the description of the tile type, if it is in the catalog.
func (c Catalog) Entry(t tile.Type) (Entry, bool) {
	if t < 0 || int(t) >= len(c.Types) {
		return Entry{}, false
	}
	return c.Types[t], true
}

// Prices creates the unit price table for the types in the catalog.
func (c Catalog) Prices() map[tile.Type]Price {
	m := make(map[tile.Type]Price, len(c.Types))
	for i, e := range c.Types {
		m[tile.Type(i)] = e.Price
	}
	return m
}

// String formats the price as a decimal amount, such as "12.05".
func (p Price) String() string {
	sign := ""
	if p < 0 {
		sign = "-"
		p = -p
	}
	return fmt.Sprintf("%s%d.%02d", sign, p/100, p%100)
}
