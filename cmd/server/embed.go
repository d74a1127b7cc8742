package main

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/jacobpatterson1549/selene-mosaic/game/catalog"
)

//go:embed embed/catalog.yaml
var embeddedCatalog string

// loadCatalog reads the catalog file, or the embedded catalog if no file is specified.
func loadCatalog(catalogFile string) (*catalog.Catalog, error) {
	if len(catalogFile) != 0 {
		return catalog.LoadFile(catalogFile)
	}
	r := strings.NewReader(embeddedCatalog)
	c, err := catalog.Load(r)
	if err != nil {
		return nil, fmt.Errorf("loading embedded catalog: %w", err)
	}
	return c, nil
}
