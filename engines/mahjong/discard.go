package mahjong

// ShapeFlags is a bitset selecting which winning shapes EnumDiscard
// evaluates for each candidate discard.
type ShapeFlags uint8

const (
	ShapeBasic ShapeFlags = 1 << iota
	ShapeSevenPairs
	ShapeThirteenOrphans
	ShapeKnittedStraight
	ShapeHonorsAndKnitted

	ShapeAll = ShapeBasic | ShapeSevenPairs | ShapeThirteenOrphans | ShapeKnittedStraight | ShapeHonorsAndKnitted
)

// DiscardResult is one (discard candidate, shape) evaluation emitted by
// EnumDiscard.
type DiscardResult struct {
	Discarded Tile
	Shape     ShapeFlags
	Shanten   int
	Useful    TileSet
}

type shapeProbe struct {
	flag    ShapeFlags
	shanten func([]Tile, *TileSet) int
}

// shapeProbes lists every shape in the fixed evaluation order used
// throughout this package: basic, seven pairs, thirteen orphans,
// honors-and-knitted, knitted straight.
var shapeProbes = [...]shapeProbe{
	{ShapeBasic, func(c []Tile, u *TileSet) int { return BasicShanten(c, u) }},
	{ShapeSevenPairs, SevenPairsShanten},
	{ShapeThirteenOrphans, ThirteenOrphansShanten},
	{ShapeHonorsAndKnitted, HonorsAndKnittedShanten},
	{ShapeKnittedStraight, KnittedStraightShanten},
}

// shapeApplies reports whether a shape's concealed-count precondition is
// met; shapes with a mismatched count are silently skipped.
func shapeApplies(flag ShapeFlags, n int) bool {
	switch flag {
	case ShapeBasic:
		return validConcealedCount(n)
	case ShapeSevenPairs, ShapeThirteenOrphans, ShapeHonorsAndKnitted:
		return n == 13
	case ShapeKnittedStraight:
		return n == 13 || n == 10
	default:
		return false
	}
}

// enumDiscardOnce evaluates every enabled, applicable shape for one
// discard candidate and reports whether the callback wants to continue.
// With tsumoCheck set (the keep-the-draw evaluation), a waiting shape
// whose useful set contains the discarded tile is reported as -1.
func enumDiscardOnce(concealed []Tile, discarded Tile, tsumoCheck bool, shapeFlags ShapeFlags, callback func(DiscardResult) bool) bool {
	for _, probe := range shapeProbes {
		if shapeFlags&probe.flag == 0 || !shapeApplies(probe.flag, len(concealed)) {
			continue
		}

		var useful TileSet
		shanten := probe.shanten(concealed, &useful)
		if tsumoCheck && shanten == 0 && useful.Contains(discarded) {
			shanten = -1
		}

		if !callback(DiscardResult{Discarded: discarded, Shape: probe.flag, Shanten: shanten, Useful: useful}) {
			return false
		}
	}
	return true
}

// EnumDiscard enumerates, for a 13-tile concealed hand plus a drawn
// tile, every legal discard and reports the resulting shanten and
// useful set under each enabled shape. The first evaluation
// simulates keeping the draw (discarding drawnTile itself, no change to
// the hand); the rest swap the draw in for each distinct tile value
// currently held. Only the keep-the-draw evaluation reports shanten -1
// (the draw completed the hand); each swap reports the plain shanten of
// the hand left after it. callback's return value is the sole cancellation
// mechanism: the first falsy return stops the walk immediately.
//
// drawnTile may be the zero Tile to evaluate a fixed 13-tile hand with
// no pending draw: the first evaluation still runs and reports
// the hand's plain shanten under each enabled shape, but the swap loop
// is skipped since there is no drawn tile to substitute in.
func EnumDiscard(concealed []Tile, drawnTile Tile, shapeFlags ShapeFlags, callback func(DiscardResult) bool) {
	if !validTiles(concealed) || (drawnTile != 0 && !drawnTile.Valid()) {
		return
	}
	if !enumDiscardOnce(concealed, drawnTile, true, shapeFlags, callback) {
		return
	}
	if drawnTile == 0 {
		return
	}

	table := NewCountTable(concealed)
	n := len(concealed)
	buf := make([]Tile, n)

	for i := 0; i < numTileValues; i++ {
		t := tileFromIndex(i)
		if table[i] == 0 || t == drawnTile || table[drawnTile.index()] >= 4 {
			continue
		}

		table[i]--
		table[drawnTile.index()]++
		got := CountTableToTiles(table, buf, n)
		ok := enumDiscardOnce(buf[:got], t, false, shapeFlags, callback)
		table[drawnTile.index()]--
		table[i]++

		if !ok {
			return
		}
	}
}
