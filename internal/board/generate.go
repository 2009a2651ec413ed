package board

import (
	"github.com/blokuscore/engine/internal/move"
	"github.com/blokuscore/engine/internal/piece"
)

// Generate returns every legal move for the side to move. If none exist
// it returns the single-element slice [move.Null] (spec §4.3); once the
// game is over it returns nil.
func Generate(s *State) []uint32 {
	if s.IsGameOver() {
		return nil
	}
	if s.hasPlacedNothing(s.Player) {
		return generateFirstMoves(s)
	}

	moves := make([]uint32, 0, len(s.CornerCache[s.Player])*2)
	for _, bucket := range s.CornerCache[s.Player] {
		moves = append(moves, bucket...)
	}
	if len(moves) == 0 {
		return []uint32{move.Null}
	}
	return moves
}

// generateFirstMoves enumerates every legal placement of every piece,
// every orientation and every origin that covers the player's anchor
// cell, per the first-move rule (spec §4.3).
func generateFirstMoves(s *State) []uint32 {
	a, b := anchors(s.StartPos)
	anchor := a
	if s.Player == PlayerB {
		anchor = b
	}

	var moves []uint32
	for id := 0; id < piece.Count; id++ {
		if s.Remaining[s.Player]&(1<<uint(id)) == 0 {
			continue
		}
		info := piece.ByID(id)
		for ori, orient := range info.Orientations {
			maxDX, maxDY := int(orient.ShortBBox[0]), int(orient.ShortBBox[1])
			minX, maxX := 0, int(anchor.X)
			minY, maxY := 0, int(anchor.Y)
			if maxX > Size-1-maxDX {
				maxX = Size - 1 - maxDX
			}
			if maxY > Size-1-maxDY {
				maxY = Size - 1 - maxDY
			}
			for oy := minY; oy <= maxY; oy++ {
				for ox := minX; ox <= maxX; ox++ {
					m := move.Move{
						Orientation: uint8(ori),
						X:           uint8(ox),
						Y:           uint8(oy),
						Piece:       uint8(id),
						Player:      s.Player.side(),
					}
					packed := move.Pack(m)
					if IsLegal(s, packed) {
						moves = append(moves, packed)
					}
				}
			}
		}
	}
	if len(moves) == 0 {
		return []uint32{move.Null}
	}
	return moves
}

// LegalFrom enumerates every orientation and piece of player that, when
// placed so that one of its own Corners cells lands exactly on attachAt,
// produces a legal move. attachAt is an already-validated attach slot:
// landing a corner cell there gives the placement its diagonal touch.
// Used by the cache updater to refill a corner slot (spec §4.4).
func LegalFrom(s *State, player Player, attachAt Coord) []uint32 {
	var moves []uint32
	for id := 0; id < piece.Count; id++ {
		if s.Remaining[player]&(1<<uint(id)) == 0 {
			continue
		}
		info := piece.ByID(id)
		for ori, orient := range info.Orientations {
			for _, corner := range orient.Corners {
				if attachAt.X < corner.X || attachAt.Y < corner.Y {
					continue
				}
				ox := int(attachAt.X) - int(corner.X)
				oy := int(attachAt.Y) - int(corner.Y)
				if ox >= Size || oy >= Size {
					continue
				}
				m := move.Move{
					Orientation: uint8(ori),
					X:           uint8(ox),
					Y:           uint8(oy),
					Piece:       uint8(id),
					Player:      player.side(),
				}
				packed := move.Pack(m)
				if IsLegal(s, packed) {
					moves = append(moves, packed)
				}
			}
		}
	}
	return moves
}
