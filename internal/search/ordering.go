package search

import (
	"sort"

	"github.com/blokuscore/engine/internal/move"
	"github.com/blokuscore/engine/internal/piece"
)

// orderMoves sorts moves largest-piece-first: placing big pieces early
// tends to cut off more of the tree under alpha-beta, and keeps Null
// last since a pass is only ever the last resort.
func orderMoves(moves []uint32) []uint32 {
	ordered := make([]uint32, len(moves))
	copy(ordered, moves)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a == move.Null {
			return false
		}
		if b == move.Null {
			return true
		}
		return piece.ByID(int(move.Piece(a))).Cells > piece.ByID(int(move.Piece(b))).Cells
	})
	return ordered
}
