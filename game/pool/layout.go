package pool

import (
	"math"

	"github.com/jacobpatterson1549/selene-mosaic/game/tile"
)

type (
	// LayoutFunc positions the i-th of count tiles created when seeding a pool.
	LayoutFunc func(i, count int, r Random) tile.Point

	// Size is the width and height of an area.
	Size struct {
		Width  float64
		Height float64
	}
)

// ScatterLayout positions tiles randomly so that each tile of the size fits inside the viewport.
// Positions are on whole coordinates.
func ScatterLayout(viewport Size, tileSize float64) LayoutFunc {
	maxX := int(viewport.Width - tileSize)
	maxY := int(viewport.Height - tileSize)
	return func(i, count int, r Random) tile.Point {
		p := tile.Point{
			X: float64(randomUpTo(r, maxX)),
			Y: float64(randomUpTo(r, maxY)),
		}
		return p
	}
}

// randomUpTo draws a number in [0, max), or 0 if max is not positive.
func randomUpTo(r Random, max int) int {
	if max <= 0 {
		return 0
	}
	return r.Intn(max)
}

// LatticeLayout positions tiles on a square lattice centered on the point, with spacing between neighbors.
// The lattice is filled row by row, with as many columns as rows or one more.
func LatticeLayout(center tile.Point, spacing float64) LayoutFunc {
	return func(i, count int, r Random) tile.Point {
		cols := int(math.Ceil(math.Sqrt(float64(count))))
		if cols == 0 {
			cols = 1
		}
		rows := (count + cols - 1) / cols
		row, col := i/cols, i%cols
		width := float64(cols-1) * spacing
		height := float64(rows-1) * spacing
		p := tile.Point{
			X: center.X - width/2 + float64(col)*spacing,
			Y: center.Y - height/2 + float64(row)*spacing,
		}
		return p
	}
}
