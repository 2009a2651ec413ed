package mcts

import (
	"math"
	"math/rand"

	"github.com/blokuscore/engine/internal/board"
	"github.com/blokuscore/engine/internal/move"
	"github.com/blokuscore/engine/internal/nnue"
)

// Evaluator produces a leaf value in [-1, 1] from the perspective of
// s.Player, the side to move at s (spec §4.5). Two implementations are
// provided: a random-playout rollout and an NNUE static evaluation.
type Evaluator interface {
	Evaluate(s *board.State, rng *rand.Rand) float64
}

// RandomPlayout plays uniformly random legal moves to a terminal
// position and scores it from the perspective of the player to move at
// the point Evaluate was called.
type RandomPlayout struct {
	// MaxPlies bounds pathological games; 0 means unlimited.
	MaxPlies int
}

func (p RandomPlayout) Evaluate(s *board.State, rng *rand.Rand) float64 {
	rollout := s.Clone()
	mover := rollout.Player
	for ply := 0; !rollout.IsGameOver(); ply++ {
		if p.MaxPlies > 0 && ply >= p.MaxPlies {
			break
		}
		moves := board.Generate(rollout)
		picked := moves[rng.Intn(len(moves))]
		board.DoMove(rollout, picked)
	}

	_ = move.Null
	switch rollout.GameResult() {
	case board.PlayerAWon:
		if mover == board.PlayerA {
			return 1
		}
		return -1
	case board.PlayerBWon:
		if mover == board.PlayerB {
			return 1
		}
		return -1
	default:
		return scoreDifferential(rollout, mover)
	}
}

// scoreDifferential converts an unfinished rollout cut short by
// MaxPlies into a signed value via cell-count margin, scaled into
// (-1, 1) with tanh.
func scoreDifferential(s *board.State, mover board.Player) float64 {
	sc := s.Score()
	margin := float64(sc.A) - float64(sc.B)
	if mover == board.PlayerB {
		margin = -margin
	}
	return math.Tanh(margin / 20.0)
}

// NNUE evaluates leaves with a quantised network instead of a rollout
// (spec §4.5, §4.6). The sign convention — negating the raw centipawn-like
// score before the tanh squash — matches the original engine's leaf
// evaluation exactly (spec §9).
type NNUE struct {
	Net *nnue.Network
}

func (n NNUE) Evaluate(s *board.State, rng *rand.Rand) float64 {
	eval := nnue.NewEvaluator(n.Net)
	stm := &s.Acc[s.Player]
	ntm := &s.Acc[s.Player.Other()]
	raw := eval.Evaluate(stm, ntm)
	return -math.Tanh(float64(raw) / 1500.0)
}
