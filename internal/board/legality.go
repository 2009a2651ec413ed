package board

import (
	"github.com/blokuscore/engine/internal/move"
	"github.com/blokuscore/engine/internal/piece"
)

// IsLegal reports whether packed is a legal move in state, without
// mutating state (spec §4.2). Null is always legal as a pass marker;
// callers decide whether a pass is actually available.
//
// For a non-first move, IsLegal does not itself check corner-attachment:
// that requirement is enforced structurally by generation (Generate only
// ever proposes moves landing a piece's own corner on an already-valid
// attach slot). IsLegal here checks only inventory, bounds, opponent
// overlap and own-halo adjacency.
func IsLegal(s *State, packed uint32) bool {
	if packed == move.Null {
		return true
	}

	m := move.Unpack(packed)
	player := Player(m.Player)
	if player != s.Player {
		return false
	}
	if int(m.Piece) >= piece.Count {
		return false
	}
	if s.Remaining[player]&(1<<uint(m.Piece)) == 0 {
		return false
	}

	info := piece.ByID(int(m.Piece))
	if int(m.Orientation) >= len(info.Orientations) {
		return false
	}
	orient := info.Orientations[m.Orientation]

	maxDX, maxDY := int(orient.ShortBBox[0]), int(orient.ShortBBox[1])
	if int(m.X)+maxDX >= Size || int(m.Y)+maxDY >= Size {
		return false
	}

	if overlapsOpponent(s, player, orient, m.X, m.Y) {
		return false
	}
	if touchesOwnHalo(s, player, orient, m.X, m.Y) {
		return false
	}

	if s.hasPlacedNothing(player) {
		a, b := anchors(s.StartPos)
		anchor := a
		if player == PlayerB {
			anchor = b
		}
		if !coversCell(orient, m.X, m.Y, anchor) {
			return false
		}
		if s.StartPos == StartMiddleBlokee && !piecesFitHomeTriangle(player, orient, m.X, m.Y) {
			return false
		}
		return true
	}

	return true
}

// overlapsOpponent tests orient's RowMask against the opponent's
// occupancy rows, shifted into absolute board position.
func overlapsOpponent(s *State, player Player, orient piece.Orientation, x, y uint8) bool {
	opp := player.Other()
	for dy, rowMask := range orient.RowMask {
		row := int(y) + dy
		if row < 0 || row >= Size {
			continue
		}
		shifted := rowMask << uint(x)
		if shifted&s.Occ[opp][row] != 0 {
			return true
		}
	}
	return false
}

// touchesOwnHalo tests orient's HaloMask (cells plus edge neighbors)
// against the mover's own occupancy, catching both self-overlap and
// same-color edge adjacency in a single shifted-AND test (spec §4.2).
// HaloMask rows are offset by +1 to represent "row -1"; columns are
// likewise offset by +1 within each mask.
func touchesOwnHalo(s *State, player Player, orient piece.Orientation, x, y uint8) bool {
	for dy, haloRow := range orient.HaloMask {
		row := int(y) + dy - 1
		if row < 0 || row >= Size {
			continue
		}
		if int(x) == 0 {
			// column -1 of the halo would shift left of the board; mask it off.
			haloRow &^= 1
		}
		var shifted uint32
		if x == 0 {
			shifted = haloRow >> 1
		} else {
			shifted = haloRow << uint(x-1)
		}
		if shifted&s.Occ[player][row] != 0 {
			return true
		}
	}
	return false
}

func coversCell(orient piece.Orientation, x, y uint8, target Coord) bool {
	for dy, rowMask := range orient.RowMask {
		row := int(y) + dy
		if row != int(target.Y) {
			continue
		}
		if rowMask<<uint(x)&(1<<uint(target.X)) != 0 {
			return true
		}
	}
	return false
}

func piecesFitHomeTriangle(player Player, orient piece.Orientation, x, y uint8) bool {
	for dy, rowMask := range orient.RowMask {
		for dx := 0; dx < Size; dx++ {
			if rowMask&(1<<uint(dx)) == 0 {
				continue
			}
			c := Coord{X: x + uint8(dx), Y: y + uint8(dy)}
			if !inHomeTriangle(player, c) {
				return false
			}
		}
	}
	return true
}
