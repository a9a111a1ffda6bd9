package mahjong

import "testing"

func TestSevenPairsShanten_OneAway(t *testing.T) {
	// Six pairs plus a lone 7m: waiting on the seventh pair.
	concealed := []Tile{
		m(1), m(1), m(2), m(2), m(3), m(3), m(4), m(4),
		m(5), m(5), m(6), m(6), m(7),
	}
	var useful TileSet
	got := SevenPairsShanten(concealed, &useful)
	if got != 0 {
		t.Fatalf("shanten = %d, want 0", got)
	}
	if !useful.Contains(m(7)) || len(useful.Tiles()) != 1 {
		t.Fatalf("useful = %v, want {7m}", useful.Tiles())
	}
	if !IsSevenPairsWait(concealed, nil) {
		t.Fatalf("IsSevenPairsWait() = false, want true")
	}
}

func TestSevenPairsShanten_FourOfAKindCountsAsOnePair(t *testing.T) {
	concealed := []Tile{
		m(1), m(1), m(1), m(1),
		m(2), m(2), m(3), m(3), m(4), m(4), m(5), m(5), m(6),
	}
	// Five distinct pairs (1m counts once despite four copies) + 6m
	// singleton: shanten = 6-5 = 1, with 6m among the useful tiles.
	var useful TileSet
	if got := SevenPairsShanten(concealed, &useful); got != 1 {
		t.Fatalf("shanten = %d, want 1", got)
	}
	if !useful.Contains(m(6)) {
		t.Fatalf("useful set missing 6m")
	}
}

func TestSevenPairsShanten_WrongLength(t *testing.T) {
	if got := SevenPairsShanten([]Tile{m(1), m(1)}, nil); got != MaxShanten {
		t.Fatalf("shanten = %d, want MaxShanten", got)
	}
}

func TestIsSevenPairsWin(t *testing.T) {
	concealed := []Tile{
		m(1), m(1), m(2), m(2), m(3), m(3), m(4), m(4),
		m(5), m(5), m(6), m(6), m(7),
	}
	if !IsSevenPairsWin(concealed, m(7)) {
		t.Fatalf("IsSevenPairsWin(7m) = false, want true")
	}
	if IsSevenPairsWin(concealed, m(8)) {
		t.Fatalf("IsSevenPairsWin(8m) = true, want false")
	}
}
