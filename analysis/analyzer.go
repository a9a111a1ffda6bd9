// Package analysis wraps the engine package's stateless shanten/useful-
// tile queries behind a bounded cache, for callers that repeat the same
// queries many times over a long-lived process (a table server replaying
// discards for the same partial hand, say). It changes no algorithm's
// semantics; it is purely a repeated-call optimization.
package analysis

import (
	"fmt"

	"shanten/common/cache"
	"shanten/engines/mahjong"
)

// AnalyzerConfig tunes the cache backing an Analyzer.
type AnalyzerConfig struct {
	// MaxCost bounds the cache's memory cost (Ristretto cost units,
	// roughly bytes). Defaults to 1<<20 when zero or negative — cache
	// values here are a handful of bytes each, so this comfortably
	// holds tens of thousands of distinct queries.
	MaxCost int64
}

// Analyzer is a cache-backed facade over the engine's shanten/useful
// functions; wait and win queries are not wrapped. It owns its own cache instance; there is no global mutable
// state, so distinct Analyzers never interfere with each other.
type Analyzer struct {
	cache *cache.QueryCache
}

// NewAnalyzer builds an Analyzer with its own bounded cache.
func NewAnalyzer(cfg AnalyzerConfig) (*Analyzer, error) {
	maxCost := cfg.MaxCost
	if maxCost <= 0 {
		maxCost = 1 << 20
	}
	c, err := cache.NewQueryCache(maxCost)
	if err != nil {
		return nil, fmt.Errorf("analysis: build cache: %w", err)
	}
	return &Analyzer{cache: c}, nil
}

// Close releases the Analyzer's cache resources.
func (a *Analyzer) Close() {
	a.cache.Close()
}

// shantenEntry is the cached value for a shanten+useful-set query: a
// fixed-size value type, cheap to cost and copy.
type shantenEntry struct {
	shanten int
	useful  mahjong.TileSet
}

// signature builds a cache key from a hand's count table and a shape
// tag. A fixed-width byte string is a far better cache key than a
// re-serialized tile slice: two permutations of the same multiset
// collide to the same key for free.
func signature(concealed []mahjong.Tile, tag string) string {
	table := mahjong.NewCountTable(concealed)
	b := make([]byte, len(table)+len(tag))
	for i, n := range table {
		b[i] = byte(n)
	}
	copy(b[len(table):], tag)
	return string(b)
}

func (a *Analyzer) cachedShanten(concealed []mahjong.Tile, tag string, compute func([]mahjong.Tile, *mahjong.TileSet) int) (int, mahjong.TileSet) {
	for _, t := range concealed {
		if !t.Valid() {
			// No count-table signature exists for a malformed tile; let
			// the engine return its sentinel, uncached.
			var useful mahjong.TileSet
			return compute(concealed, &useful), useful
		}
	}

	key := signature(concealed, tag)
	if v, ok := a.cache.Get(key); ok {
		e := v.(shantenEntry)
		return e.shanten, e.useful
	}

	var useful mahjong.TileSet
	shanten := compute(concealed, &useful)
	a.cache.Set(key, shantenEntry{shanten: shanten, useful: useful}, int64(len(key))+48)
	return shanten, useful
}

// BasicShanten is the cached form of mahjong.BasicShanten.
func (a *Analyzer) BasicShanten(concealed []mahjong.Tile) (int, mahjong.TileSet) {
	return a.cachedShanten(concealed, "basic", mahjong.BasicShanten)
}

// SevenPairsShanten is the cached form of mahjong.SevenPairsShanten.
func (a *Analyzer) SevenPairsShanten(concealed []mahjong.Tile) (int, mahjong.TileSet) {
	return a.cachedShanten(concealed, "7pairs", mahjong.SevenPairsShanten)
}

// ThirteenOrphansShanten is the cached form of mahjong.ThirteenOrphansShanten.
func (a *Analyzer) ThirteenOrphansShanten(concealed []mahjong.Tile) (int, mahjong.TileSet) {
	return a.cachedShanten(concealed, "13orphans", mahjong.ThirteenOrphansShanten)
}

// KnittedStraightShanten is the cached form of mahjong.KnittedStraightShanten.
func (a *Analyzer) KnittedStraightShanten(concealed []mahjong.Tile) (int, mahjong.TileSet) {
	return a.cachedShanten(concealed, "knitted", mahjong.KnittedStraightShanten)
}

// HonorsAndKnittedShanten is the cached form of mahjong.HonorsAndKnittedShanten.
func (a *Analyzer) HonorsAndKnittedShanten(concealed []mahjong.Tile) (int, mahjong.TileSet) {
	return a.cachedShanten(concealed, "honors", mahjong.HonorsAndKnittedShanten)
}

// BestShanten returns the minimum shanten across every shape applicable
// to len(concealed), with the useful set of whichever shape achieved it
// (ties keep the first shape tried).
func (a *Analyzer) BestShanten(concealed []mahjong.Tile) (int, mahjong.TileSet) {
	best, bestUseful := a.BasicShanten(concealed)

	if len(concealed) == 13 {
		if s, u := a.SevenPairsShanten(concealed); s < best {
			best, bestUseful = s, u
		}
		if s, u := a.ThirteenOrphansShanten(concealed); s < best {
			best, bestUseful = s, u
		}
		if s, u := a.HonorsAndKnittedShanten(concealed); s < best {
			best, bestUseful = s, u
		}
	}
	if len(concealed) == 13 || len(concealed) == 10 {
		if s, u := a.KnittedStraightShanten(concealed); s < best {
			best, bestUseful = s, u
		}
	}

	return best, bestUseful
}
