package mahjong

import "errors"

// MaxShanten is the sentinel returned by every shanten function on
// invalid input: the maximum representable distance, never a real
// shanten value. A bad concealed-tile count or a malformed tile yields
// this, not an error; only HandToCountTable, which already returns an
// error, reports its precondition violations as one.
const MaxShanten = int(^uint(0) >> 1)

// ErrInvalidHand is returned by HandToCountTable when a Hand violates
// the fixed-melds/concealed tile-count invariant.
var ErrInvalidHand = errors.New("mahjong: invalid hand: fixed melds and concealed tiles do not sum to a legal count")
