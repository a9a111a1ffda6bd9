package mahjong

// Knitted straight + meld + pair: one of the six knitted
// straights consumes nine tiles as three fixed "melds" for shanten
// purposes, and the basic engine runs on whatever tiles remain.

// KnittedStraightShanten computes the knitted-straight shanten of a
// concealed hand with 13 or 10 tiles. useful, if non-nil, is the union
// of useful-tile sets across every knitted straight tied for the
// minimum.
func KnittedStraightShanten(concealed []Tile, useful *TileSet) int {
	if (len(concealed) != 13 && len(concealed) != 10) || !validTiles(concealed) {
		return MaxShanten
	}
	if useful != nil {
		*useful = TileSet{}
	}

	table := NewCountTable(concealed)
	fixedCount := (13 - len(concealed)) / 3

	best := MaxShanten
	for _, ks := range knittedStraights {
		var temp TileSet
		st := knittedStraightShantenFor(table, ks, fixedCount, &temp)
		if st < best {
			best = st
			if useful != nil {
				*useful = temp
			}
		} else if st == best && useful != nil {
			for i := 0; i < numTileValues; i++ {
				if temp[i] {
					useful[i] = true
				}
			}
		}
	}
	return best
}

// knittedStraightShantenFor runs the basic engine on the residue after
// removing ks's present tiles: shanten = (9 - exist) + residue shanten.
// The knitted straight is credited as three already-complete melds, so
// the residue search only has to find the hand's fourth meld and its
// pair.
func knittedStraightShantenFor(table CountTable, ks knittedStraight, fixedCount int, useful *TileSet) int {
	*useful = TileSet{}

	residue := table
	exist := 0
	for _, t := range ks {
		i := t.index()
		if residue[i] > 0 {
			exist++
			residue[i]--
		} else {
			useful[i] = true
		}
	}

	var residueUseful TileSet
	residueShanten := basicShantenFromTable(residue, fixedCount+3, &residueUseful)
	for i := 0; i < numTileValues; i++ {
		if residueUseful[i] {
			useful[i] = true
		}
	}

	return (9 - exist) + residueShanten
}

// knittedStraightMissing returns the knitted-straight tiles absent from
// table, in ks order.
func knittedStraightMissing(table CountTable, ks knittedStraight) []Tile {
	var missing []Tile
	for _, t := range ks {
		if table[t.index()] == 0 {
			missing = append(missing, t)
		}
	}
	return missing
}

// IsKnittedStraightWait reports whether a 13- or 10-tile concealed hand
// is one tile from the knitted-straight shape. A straight missing two
// or more tiles can never be waiting, so only the first straight with
// fewer than two missing is tested; a later straight is never consulted
// once one qualifies.
func IsKnittedStraightWait(concealed []Tile, waiting *TileSet) bool {
	if (len(concealed) != 13 && len(concealed) != 10) || !validTiles(concealed) {
		return false
	}
	if waiting != nil {
		*waiting = TileSet{}
	}

	table := NewCountTable(concealed)

	var matched *knittedStraight
	var missing []Tile
	for i := range knittedStraights {
		m := knittedStraightMissing(table, knittedStraights[i])
		if len(m) < 2 {
			matched = &knittedStraights[i]
			missing = m
			break
		}
	}
	if matched == nil || len(missing) > 2 {
		return false
	}

	residue := table
	for _, t := range matched {
		if residue[t.index()] > 0 {
			residue[t.index()]--
		}
	}

	switch len(missing) {
	case 1:
		leftCnt := 2
		if len(concealed) == 13 {
			leftCnt = 5
		}
		if isBasicWinRecursive(&residue, leftCnt) {
			if waiting != nil {
				waiting[missing[0].index()] = true
			}
			return true
		}
		return false
	default: // 0
		if len(concealed) == 13 {
			return isBasicWaitRecursive(&residue, 4, waiting)
		}
		return isBasicWait1(&residue, waiting)
	}
}

// IsKnittedStraightWin reports whether concealed plus testTile completes
// the knitted-straight shape.
func IsKnittedStraightWin(concealed []Tile, testTile Tile) bool {
	var waiting TileSet
	return IsKnittedStraightWait(concealed, &waiting) && waiting.Contains(testTile)
}
