package mahjong

import "testing"

func TestHandToCountTable_FixedMeldsPlusConcealed(t *testing.T) {
	h := Hand{
		FixedMelds: []Meld{Pack(MeldPung, m(1), 0)},
		Concealed: []Tile{
			p(1), p(2), p(3),
			s(1), s(2), s(3),
			m(7), m(8), m(9),
			TileEast, TileEast,
		},
	}
	table, fixedCount, err := HandToCountTable(h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fixedCount != 1 {
		t.Fatalf("fixedCount = %d, want 1", fixedCount)
	}
	if table[m(1).index()] != 3 {
		t.Fatalf("m1 count = %d, want 3", table[m(1).index()])
	}
	if table[TileEast.index()] != 2 {
		t.Fatalf("east count = %d, want 2", table[TileEast.index()])
	}
}

func TestHandToCountTable_InvalidCount(t *testing.T) {
	h := Hand{Concealed: []Tile{m(1), m(2), m(3)}}
	if _, _, err := HandToCountTable(h); err != ErrInvalidHand {
		t.Fatalf("err = %v, want ErrInvalidHand", err)
	}
}

func TestHandToCountTable_TooManyCopies(t *testing.T) {
	h := Hand{Concealed: []Tile{m(1), m(1), m(1), m(1), m(1), m(2), m(2)}}
	if _, _, err := HandToCountTable(h); err != ErrInvalidHand {
		t.Fatalf("err = %v, want ErrInvalidHand for a 5th copy", err)
	}
}

func TestCountTableToTiles_RoundTrip(t *testing.T) {
	tiles := []Tile{m(1), m(1), p(3), TileRed}
	table := NewCountTable(tiles)

	out := make([]Tile, 4)
	n := CountTableToTiles(table, out, 4)
	if n != 4 {
		t.Fatalf("n = %d, want 4", n)
	}
	// Canonical order: m1,m1,p3,red.
	want := []Tile{m(1), m(1), p(3), TileRed}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestCountUseful(t *testing.T) {
	used := NewCountTable([]Tile{m(1), m(1), p(5)})
	var useful TileSet
	useful[m(1).index()] = true
	useful[p(5).index()] = true
	useful[s(9).index()] = true

	// m1: 4-2=2, p5: 4-1=3, s9: 4-0=4.
	if got := CountUseful(used, useful); got != 9 {
		t.Fatalf("CountUseful() = %d, want 9", got)
	}
}
