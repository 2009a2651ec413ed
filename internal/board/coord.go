// Package board implements the 14x14 occupancy bitboards, per-player
// corner-attachment cache, Zobrist hash and NNUE accumulators (spec §3),
// the incremental legality test and move generator (spec §4.2-§4.3), and
// the cache updater that repairs the corner cache after every placement
// or pass (spec §4.4).
package board

// Size is the board edge length.
const Size = 14

// Coord is an absolute board cell.
type Coord struct {
	X, Y uint8
}

// InBounds reports whether c lies on the 14x14 board.
func (c Coord) InBounds() bool {
	return c.X < Size && c.Y < Size
}
