package mahjong

// Basic-shape win/wait fast paths: separate, non-memoized recursions
// used when the caller only needs a boolean, exploiting that a winning
// shape has exactly one pair and that the two-tiles-left leaf is a
// simple uniqueness check.

func isBasicWait1(table *CountTable, waiting *TileSet) bool {
	for i := 0; i < numTileValues; i++ {
		if table[i] != 1 {
			continue
		}
		table[i] = 0
		allZero := true
		for _, n := range table {
			if n != 0 {
				allZero = false
				break
			}
		}
		table[i] = 1
		if allZero {
			if waiting != nil {
				waiting[i] = true
			}
			return true
		}
	}
	return false
}

func isBasicWait2(table *CountTable, waiting *TileSet) bool {
	ret := false
	for i := 0; i < numTileValues; i++ {
		if table[i] < 1 {
			continue
		}
		if table[i] > 1 {
			if waiting != nil {
				waiting[i] = true
				ret = true
				continue
			}
			return true
		}

		t := tileFromIndex(i)
		if !t.IsNumbered() {
			continue
		}
		rank := t.Rank()
		if rank > 1 && table[i-1] > 0 {
			if waiting != nil {
				if rank < 9 {
					waiting[i+1] = true
				}
				if rank > 2 {
					waiting[i-2] = true
				}
				ret = true
				continue
			}
			return true
		}
		if rank > 2 && table[i-2] > 0 {
			if waiting != nil {
				waiting[i-1] = true
				ret = true
				continue
			}
			return true
		}
	}
	return ret
}

func isBasicWait4(table *CountTable, waiting *TileSet) bool {
	ret := false
	for i := 0; i < numTileValues; i++ {
		if table[i] < 2 {
			continue
		}
		table[i] -= 2
		if isBasicWait2(table, waiting) {
			ret = true
		}
		table[i] += 2
		if ret && waiting == nil {
			return true
		}
	}
	return ret
}

func isBasicWaitRecursive(table *CountTable, leftCnt int, waiting *TileSet) bool {
	if leftCnt == 1 {
		return isBasicWait1(table, waiting)
	}

	ret := false
	if leftCnt == 4 {
		ret = isBasicWait4(table, waiting)
		if ret && waiting == nil {
			return true
		}
	}

	for i := 0; i < numTileValues; i++ {
		if table[i] < 1 {
			continue
		}

		if table[i] > 2 {
			table[i] -= 3
			if isBasicWaitRecursive(table, leftCnt-3, waiting) {
				ret = true
			}
			table[i] += 3
			if ret && waiting == nil {
				return true
			}
		}

		t := tileFromIndex(i)
		if t.IsNumbered() && t.Rank() <= 7 && table[i+1] >= 1 && table[i+2] >= 1 {
			table[i]--
			table[i+1]--
			table[i+2]--
			if isBasicWaitRecursive(table, leftCnt-3, waiting) {
				ret = true
			}
			table[i]++
			table[i+1]++
			table[i+2]++
			if ret && waiting == nil {
				return true
			}
		}
	}

	return ret
}

// IsBasicWait reports whether a basic-shape concealed hand is waiting
// (shanten 0). When waiting is non-nil, enumeration continues past the
// first hit so the table is fully populated; otherwise the first hit
// short-circuits the search.
func IsBasicWait(concealed []Tile, waiting *TileSet) bool {
	if !validConcealedCount(len(concealed)) || !validTiles(concealed) {
		return false
	}
	if waiting != nil {
		*waiting = TileSet{}
	}
	table := NewCountTable(concealed)
	return isBasicWaitRecursive(&table, len(concealed), waiting)
}

func isBasicWin2(table *CountTable) bool {
	idx := -1
	for i := 0; i < numTileValues; i++ {
		if table[i] > 0 {
			idx = i
			break
		}
	}
	if idx == -1 || table[idx] != 2 {
		return false
	}
	for i := idx + 1; i < numTileValues; i++ {
		if table[i] > 0 {
			return false
		}
	}
	return true
}

func isBasicWinRecursive(table *CountTable, leftCnt int) bool {
	if leftCnt == 2 {
		return isBasicWin2(table)
	}

	for i := 0; i < numTileValues; i++ {
		if table[i] < 1 {
			continue
		}

		if table[i] > 2 {
			table[i] -= 3
			ok := isBasicWinRecursive(table, leftCnt-3)
			table[i] += 3
			if ok {
				return true
			}
		}

		t := tileFromIndex(i)
		if t.IsNumbered() && t.Rank() <= 7 && table[i+1] >= 1 && table[i+2] >= 1 {
			table[i]--
			table[i+1]--
			table[i+2]--
			ok := isBasicWinRecursive(table, leftCnt-3)
			table[i]++
			table[i+1]++
			table[i+2]++
			if ok {
				return true
			}
		}
	}

	return false
}

// IsBasicWin reports whether adding testTile to a basic-shape concealed
// hand completes it.
func IsBasicWin(concealed []Tile, testTile Tile) bool {
	if !validConcealedCount(len(concealed)) || !validTiles(concealed) || !testTile.Valid() {
		return false
	}
	table := NewCountTable(concealed)
	table[testTile.index()]++
	return isBasicWinRecursive(&table, len(concealed)+1)
}
