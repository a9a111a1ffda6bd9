package main

import (
	"fmt"
	"strconv"
	"strings"

	"shanten/engines/mahjong"
)

// honorNames maps honor-tile shorthand tokens to their rank within
// SuitHonor.
var honorNames = map[string]int{
	"E": mahjong.East, "S": mahjong.South, "W": mahjong.West, "N": mahjong.North,
	"Wd": mahjong.White, "Gd": mahjong.Green, "Rd": mahjong.Red,
	"W_d": mahjong.White, "G_d": mahjong.Green, "R_d": mahjong.Red,
}

// parseTile parses one tile token: "<rank><suit>" for numbered tiles
// (e.g. "1m", "9s") or one of the honor shorthands above (e.g. "E",
// "W_d").
func parseTile(tok string) (mahjong.Tile, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return 0, fmt.Errorf("empty tile token")
	}
	if rank, ok := honorNames[tok]; ok {
		return mahjong.NewTile(mahjong.SuitHonor, rank), nil
	}

	suitCh := tok[len(tok)-1]
	var suit mahjong.Suit
	switch suitCh {
	case 'm', 'M':
		suit = mahjong.SuitMan
	case 'p', 'P':
		suit = mahjong.SuitPin
	case 's', 'S':
		suit = mahjong.SuitSou
	default:
		return 0, fmt.Errorf("unrecognized tile %q", tok)
	}

	rank, err := strconv.Atoi(tok[:len(tok)-1])
	if err != nil || rank < 1 || rank > 9 {
		return 0, fmt.Errorf("unrecognized tile %q", tok)
	}
	t := mahjong.NewTile(suit, rank)
	if !t.Valid() {
		return 0, fmt.Errorf("invalid tile %q", tok)
	}
	return t, nil
}

// parseTiles parses a comma-separated list of tile tokens, e.g.
// "1m,1m,1m,2m,3m,4m,5m,6m,7m,8m,9m,9m,9m".
func parseTiles(s string) ([]mahjong.Tile, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]mahjong.Tile, 0, len(parts))
	for _, p := range parts {
		t, err := parseTile(p)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// formatTile renders a tile back into the shorthand parseTile accepts,
// for printing useful/waiting sets.
func formatTile(t mahjong.Tile) string {
	if t.IsHonor() {
		switch t.Rank() {
		case mahjong.East:
			return "E"
		case mahjong.South:
			return "S"
		case mahjong.West:
			return "W"
		case mahjong.North:
			return "N"
		case mahjong.White:
			return "Wd"
		case mahjong.Green:
			return "Gd"
		case mahjong.Red:
			return "Rd"
		}
	}
	suitCh := byte('?')
	switch t.Suit() {
	case mahjong.SuitMan:
		suitCh = 'm'
	case mahjong.SuitPin:
		suitCh = 'p'
	case mahjong.SuitSou:
		suitCh = 's'
	}
	return fmt.Sprintf("%d%c", t.Rank(), suitCh)
}

func formatTiles(tiles []mahjong.Tile) string {
	parts := make([]string, len(tiles))
	for i, t := range tiles {
		parts[i] = formatTile(t)
	}
	return strings.Join(parts, ",")
}
