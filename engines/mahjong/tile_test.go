package mahjong

import "testing"

// Test helpers shared across this package's test files.
func m(r int) Tile { return NewTile(SuitMan, r) }
func p(r int) Tile { return NewTile(SuitPin, r) }
func s(r int) Tile { return NewTile(SuitSou, r) }

func TestTile_SuitAndRank(t *testing.T) {
	tile := m(5)
	if tile.Suit() != SuitMan {
		t.Fatalf("Suit() = %v, want SuitMan", tile.Suit())
	}
	if tile.Rank() != 5 {
		t.Fatalf("Rank() = %d, want 5", tile.Rank())
	}
	if !tile.IsNumbered() || tile.IsHonor() {
		t.Fatalf("m5 should be numbered, not honor")
	}
}

func TestTile_Valid(t *testing.T) {
	cases := []struct {
		tile Tile
		want bool
	}{
		{m(1), true},
		{m(9), true},
		{m(0), false},
		{p(10), false},
		{TileEast, true},
		{NewTile(SuitHonor, 8), false},
		{NewTile(0, 1), false},
	}
	for _, c := range cases {
		if got := c.tile.Valid(); got != c.want {
			t.Errorf("Tile(%d).Valid() = %v, want %v", c.tile, got, c.want)
		}
	}
}

func TestTile_Neighbor(t *testing.T) {
	if n, ok := m(5).Neighbor(1); !ok || n != m(6) {
		t.Fatalf("m5.Neighbor(1) = %v,%v want m6,true", n, ok)
	}
	if _, ok := m(9).Neighbor(1); ok {
		t.Fatalf("m9.Neighbor(1) should not exist")
	}
	if _, ok := m(1).Neighbor(-1); ok {
		t.Fatalf("m1.Neighbor(-1) should not exist")
	}
	if _, ok := TileEast.Neighbor(1); ok {
		t.Fatalf("honor tiles have no neighbors")
	}
}

func TestAllTiles_CanonicalOrder(t *testing.T) {
	if len(AllTiles) != 34 {
		t.Fatalf("len(AllTiles) = %d, want 34", len(AllTiles))
	}
	if AllTiles[0] != m(1) || AllTiles[8] != m(9) {
		t.Fatalf("man run misplaced: %v %v", AllTiles[0], AllTiles[8])
	}
	if AllTiles[9] != p(1) || AllTiles[18] != s(1) {
		t.Fatalf("suit boundaries misplaced")
	}
	if AllTiles[27] != TileEast || AllTiles[33] != TileRed {
		t.Fatalf("honor run misplaced: %v %v", AllTiles[27], AllTiles[33])
	}
}

func TestTileSet_Basics(t *testing.T) {
	var set TileSet
	if !set.Empty() {
		t.Fatalf("zero-value TileSet should be empty")
	}
	set[m(3).index()] = true
	if set.Empty() {
		t.Fatalf("TileSet with one member should not be empty")
	}
	if !set.Contains(m(3)) {
		t.Fatalf("Contains(m3) = false, want true")
	}
	if got := set.Tiles(); len(got) != 1 || got[0] != m(3) {
		t.Fatalf("Tiles() = %v, want [m3]", got)
	}
}
