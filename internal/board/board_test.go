package board

import (
	"testing"

	"github.com/blokuscore/engine/internal/move"
	"github.com/blokuscore/engine/internal/nnue"
	"github.com/blokuscore/engine/internal/piece"
)

func freshGame() *State {
	net := nnue.NewNetwork()
	return New(StartCorner, net)
}

func TestFirstMoveMustCoverAnchor(t *testing.T) {
	s := freshGame()
	moves := Generate(s)
	if len(moves) == 0 {
		t.Fatal("expected at least one legal first move")
	}
	for _, packed := range moves {
		if packed == move.Null {
			t.Fatal("first move should never be forced to pass on an empty board")
		}
		m := move.Unpack(packed)
		orient := piece.ByID(int(m.Piece)).Orientations[m.Orientation]
		if !coversCell(orient, m.X, m.Y, Coord{X: 0, Y: 0}) {
			t.Fatalf("first move %d does not cover the corner anchor (0,0)", packed)
		}
	}
}

func TestGenerateProducesOnlyLegalMoves(t *testing.T) {
	s := freshGame()
	for _, packed := range Generate(s) {
		if !IsLegal(s, packed) {
			t.Fatalf("generated move %d failed IsLegal", packed)
		}
	}
}

func TestDoMoveUpdatesOccupancyAndInventory(t *testing.T) {
	s := freshGame()
	moves := Generate(s)
	chosen := moves[0]
	m := move.Unpack(chosen)

	before := s.Remaining[PlayerA]
	DoMove(s, chosen)

	if s.Remaining[PlayerA] == before {
		t.Fatal("inventory bit was not cleared")
	}
	if s.Player != PlayerB {
		t.Fatal("turn did not pass to player B")
	}
	for _, c := range piece.ByID(int(m.Piece)).Orientations[m.Orientation].Cells {
		x, y := m.X+c.X, m.Y+c.Y
		if s.Occ[PlayerA][y]&(1<<uint(x)) == 0 {
			t.Fatalf("occupancy not set at (%d,%d)", x, y)
		}
	}
}

func TestNoOverlapAfterPlacement(t *testing.T) {
	s := freshGame()
	for i := 0; i < 6; i++ {
		moves := Generate(s)
		if moves[0] == move.Null {
			break
		}
		DoMove(s, moves[0])
	}
	for y := uint8(0); y < Size; y++ {
		if s.Occ[PlayerA][y]&s.Occ[PlayerB][y] != 0 {
			t.Fatalf("overlap detected on row %d", y)
		}
	}
}

func TestPackUnpackStableUnderCache(t *testing.T) {
	s := freshGame()
	for i := 0; i < 4; i++ {
		moves := Generate(s)
		if moves[0] == move.Null {
			break
		}
		for _, packed := range moves {
			u := move.Unpack(packed)
			if move.Pack(u) != packed {
				t.Fatalf("round-trip mismatch for move %d", packed)
			}
		}
		DoMove(s, moves[0])
	}
}

func TestTwoConsecutivePassesEndGame(t *testing.T) {
	s := freshGame()
	DoMove(s, move.Null)
	if s.IsGameOver() {
		t.Fatal("one pass must not end the game")
	}
	DoMove(s, move.Null)
	if !s.IsGameOver() {
		t.Fatal("two consecutive passes must end the game")
	}
	if s.GameResult() != Draw {
		t.Fatalf("expected draw on an empty board, got %v", s.GameResult())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := freshGame()
	moves := Generate(s)
	clone := s.Clone()
	DoMove(s, moves[0])

	if clone.Player != PlayerA {
		t.Fatal("clone was mutated by the original's DoMove")
	}
	if clone.Remaining[PlayerA] != 0x1FFFFF {
		t.Fatal("clone inventory was mutated by the original's DoMove")
	}
}

func TestHashChangesAfterPlacement(t *testing.T) {
	s := freshGame()
	before := s.Hash
	moves := Generate(s)
	DoMove(s, moves[0])
	if s.Hash == before {
		t.Fatal("hash did not change after a real placement")
	}
}
