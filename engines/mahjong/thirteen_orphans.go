package mahjong

// Thirteen orphans: the six terminals plus the seven honors,
// any one of them doubled as the pair. Once a pair among the targets is
// held, a second copy of an already-held target is useless — only a
// still-missing target can reduce shanten further.

// ThirteenOrphansShanten computes the thirteen-orphans shanten of a
// 13-tile concealed hand. useful, if non-nil, is populated with every
// target tile still worth drawing.
func ThirteenOrphansShanten(concealed []Tile, useful *TileSet) int {
	if len(concealed) != 13 || !validTiles(concealed) {
		return MaxShanten
	}

	table := NewCountTable(concealed)
	distinct := 0
	hasPair := false
	for _, t := range thirteenOrphanTiles {
		n := table[t.index()]
		if n > 0 {
			distinct++
			if n > 1 {
				hasPair = true
			}
		}
	}

	if useful != nil {
		*useful = TileSet{}
		for _, t := range thirteenOrphanTiles {
			useful[t.index()] = true
		}
		if hasPair {
			for _, t := range thirteenOrphanTiles {
				if table[t.index()] > 0 {
					useful[t.index()] = false
				}
			}
		}
	}

	if hasPair {
		return 12 - distinct
	}
	return 13 - distinct
}

// IsThirteenOrphansWait reports whether a 13-tile concealed hand is one
// tile from thirteen orphans.
func IsThirteenOrphansWait(concealed []Tile, waiting *TileSet) bool {
	return ThirteenOrphansShanten(concealed, waiting) == 0
}

// IsThirteenOrphansWin reports whether concealed (13 tiles) plus
// testTile completes thirteen orphans.
func IsThirteenOrphansWin(concealed []Tile, testTile Tile) bool {
	var useful TileSet
	return ThirteenOrphansShanten(concealed, &useful) == 0 && useful.Contains(testTile)
}
