package pool

import "github.com/jacobpatterson1549/selene-mosaic/game/tile"

// mockRandom returns the values in order, repeating the last one, ignoring anything over n.
type mockRandom struct {
	values []int
	calls  []int
}

func (m *mockRandom) Intn(n int) int {
	m.calls = append(m.calls, n)
	if len(m.values) == 0 {
		return 0
	}
	v := m.values[0]
	if len(m.values) > 1 {
		m.values = m.values[1:]
	}
	return v % n
}

// fixedLayout positions every tile at the point.
func fixedLayout(p tile.Point) LayoutFunc {
	return func(i, count int, r Random) tile.Point {
		return p
	}
}

// indexLayout positions the tiles along the x axis by their index.
func indexLayout(i, count int, r Random) tile.Point {
	return tile.Point{X: float64(i)}
}
