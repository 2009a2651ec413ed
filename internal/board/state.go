package board

import (
	"github.com/blokuscore/engine/internal/nnue"
	"github.com/blokuscore/engine/internal/piece"
)

// fullInventory is the initial remaining-piece mask: all 21 pieces in
// hand (spec §3).
const fullInventory uint32 = 0x1FFFFF

// Result is the outcome of a finished game.
type Result int

const (
	InProgress Result = iota
	PlayerAWon
	PlayerBWon
	Draw
)

// Score is the per-player cell count (spec §3: "Final score per player
// equals total cells covered").
type Score struct {
	A, B uint32
}

// State is the full, mutable position: occupancy, remaining pieces, pass
// counter, corner caches, Zobrist hash and NNUE accumulators (spec §3).
// DoMove does not validate its input, so callers must use Generate or
// check IsLegal first (spec §3, Lifecycle).
type State struct {
	Player Player

	Remaining [2]uint32
	Occ       [2][Size]uint32

	StartPos  StartPosition
	PassCount uint8

	CornerCache [2]map[Coord][]uint32

	Hash uint64

	Acc [2]nnue.Accumulator
	Net *nnue.Network
}

// New creates a fresh board: empty occupancy, full inventories, no
// passes, empty caches, accumulators seeded from net's bias.
func New(startPos StartPosition, net *nnue.Network) *State {
	s := &State{
		Player:    PlayerA,
		Remaining: [2]uint32{fullInventory, fullInventory},
		StartPos:  startPos,
		Net:       net,
		CornerCache: [2]map[Coord][]uint32{
			make(map[Coord][]uint32),
			make(map[Coord][]uint32),
		},
	}
	s.Acc[PlayerA] = nnue.NewAccumulator(net)
	s.Acc[PlayerB] = nnue.NewAccumulator(net)
	s.Hash = passKey(0)
	return s
}

// Clone deep-copies the state, including the corner caches, so that
// search (MCTS and alpha-beta) can explore independent branches from a
// shared position (spec §9: "state cloning in search").
func (s *State) Clone() *State {
	clone := &State{
		Player:    s.Player,
		Remaining: s.Remaining,
		Occ:       s.Occ,
		StartPos:  s.StartPos,
		PassCount: s.PassCount,
		Hash:      s.Hash,
		Acc:       s.Acc,
		Net:       s.Net,
	}
	for p := 0; p < 2; p++ {
		clone.CornerCache[p] = make(map[Coord][]uint32, len(s.CornerCache[p]))
		for c, moves := range s.CornerCache[p] {
			cp := make([]uint32, len(moves))
			copy(cp, moves)
			clone.CornerCache[p][c] = cp
		}
	}
	return clone
}

// IsGameOver reports whether two consecutive passes have ended the game.
func (s *State) IsGameOver() bool {
	return s.PassCount >= 2
}

// Score sums placed-piece sizes from the remaining masks.
func (s *State) Score() Score {
	var sc Score
	for i := 0; i < piece.Count; i++ {
		cells := uint32(piece.ByID(i).Cells)
		if s.Remaining[PlayerA]&(1<<uint(i)) == 0 {
			sc.A += cells
		}
		if s.Remaining[PlayerB]&(1<<uint(i)) == 0 {
			sc.B += cells
		}
	}
	return sc
}

// GameResult reports the terminal outcome, or InProgress if the game has
// not ended.
func (s *State) GameResult() Result {
	if !s.IsGameOver() {
		return InProgress
	}
	sc := s.Score()
	switch {
	case sc.A > sc.B:
		return PlayerAWon
	case sc.B > sc.A:
		return PlayerBWon
	default:
		return Draw
	}
}

func (s *State) skipTurn() {
	s.Player = s.Player.Other()
}

// hasPlacedNothing reports whether p still holds every piece, i.e. p's
// next move is subject to the first-move rule (spec §4.3).
func (s *State) hasPlacedNothing(p Player) bool {
	return s.Remaining[p] == fullInventory
}
