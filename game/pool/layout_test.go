package pool

import (
	"testing"

	"github.com/jacobpatterson1549/selene-mosaic/game/tile"
)

func TestScatterLayout(t *testing.T) {
	r := &mockRandom{values: []int{650, 410}}
	l := ScatterLayout(Size{Width: 800, Height: 600}, 100)
	got := l(0, 1, r)
	want := tile.Point{X: 650, Y: 410}
	switch {
	case want != got:
		t.Errorf("wanted %v, got %v", want, got)
	case r.calls[0] != 700, r.calls[1] != 500:
		t.Errorf("wanted positions drawn within viewport less tile size, got bounds %v", r.calls)
	}
	tiny := ScatterLayout(Size{Width: 50, Height: 50}, 100)
	if got := tiny(0, 1, r); got != (tile.Point{}) {
		t.Errorf("wanted tiles in a viewport smaller than a tile at the origin, got %v", got)
	}
}

func TestLatticeLayout(t *testing.T) {
	l := LatticeLayout(tile.Point{X: 100, Y: 100}, 60)
	want := []tile.Point{
		{X: 40, Y: 70}, {X: 100, Y: 70}, {X: 160, Y: 70},
		{X: 40, Y: 130}, {X: 100, Y: 130},
	}
	for i, w := range want {
		got := l(i, len(want), nil)
		if w != got {
			t.Errorf("Test %v: wanted %v, got %v", i, w, got)
		}
	}
	if got := l(0, 1, nil); got != (tile.Point{X: 100, Y: 100}) {
		t.Errorf("wanted single tile at the center, got %v", got)
	}
}
