package board

import (
	"github.com/blokuscore/engine/internal/move"
	"github.com/blokuscore/engine/internal/nnue"
	"github.com/blokuscore/engine/internal/piece"
)

// DoMove applies packed to state in place. Callers must ensure packed is
// legal (e.g. via IsLegal or by drawing it from Generate); DoMove does
// not re-validate. It repairs both players' corner-attachment caches
// incrementally rather than rebuilding them (spec §4.4).
func DoMove(s *State, packed uint32) {
	if packed == move.Null {
		old := s.PassCount
		s.PassCount++
		s.Hash ^= passKey(old)
		s.Hash ^= passKey(s.PassCount)
		s.skipTurn()
		filterCache(s, s.Player)
		return
	}

	old := s.PassCount
	s.PassCount = 0
	s.Hash ^= passKey(old)
	s.Hash ^= passKey(s.PassCount)

	m := move.Unpack(packed)
	player := Player(m.Player)
	info := piece.ByID(int(m.Piece))
	orient := info.Orientations[m.Orientation]

	s.Remaining[player] &^= 1 << uint(m.Piece)

	placed := make([]Coord, 0, len(orient.Cells))
	for _, cell := range orient.Cells {
		c := Coord{X: m.X + cell.X, Y: m.Y + cell.Y}
		placed = append(placed, c)

		s.Occ[player][c.Y] |= 1 << uint(c.X)
		s.Hash ^= cellKey(player, c.X, c.Y)

		feature := nnue.FeatureIndex(nnue.Side0, player.side(), c.X, c.Y)
		s.Acc[PlayerA].AddFeature(feature, s.Net)
		feature = nnue.FeatureIndex(nnue.Side1, player.side(), c.X, c.Y)
		s.Acc[PlayerB].AddFeature(feature, s.Net)

		delete(s.CornerCache[PlayerA], c)
		delete(s.CornerCache[PlayerB], c)
	}

	for _, c := range orient.CornerAttachers {
		attachAt := Coord{
			X: uint8(int(m.X) + int(c.DX)),
			Y: uint8(int(m.Y) + int(c.DY)),
		}
		if int(m.X)+int(c.DX) < 0 || int(m.Y)+int(c.DY) < 0 || !attachAt.InBounds() {
			continue
		}
		if occupied(s, attachAt) {
			continue
		}
		if _, ok := s.CornerCache[player][attachAt]; ok {
			continue
		}
		slot := LegalFrom(s, player, attachAt)
		if len(slot) > 0 {
			s.CornerCache[player][attachAt] = slot
		}
	}

	s.skipTurn()
	filterCache(s, s.Player)
}

func occupied(s *State, c Coord) bool {
	return s.Occ[PlayerA][c.Y]&(1<<uint(c.X)) != 0 || s.Occ[PlayerB][c.Y]&(1<<uint(c.X)) != 0
}

// filterCache drops any cached moves for player that IsLegal no longer
// accepts, and removes now-empty slots entirely.
func filterCache(s *State, player Player) {
	for coord, slot := range s.CornerCache[player] {
		kept := slot[:0]
		for _, packed := range slot {
			if IsLegal(s, packed) {
				kept = append(kept, packed)
			}
		}
		if len(kept) == 0 {
			delete(s.CornerCache[player], coord)
		} else {
			s.CornerCache[player][coord] = kept
		}
	}
}
