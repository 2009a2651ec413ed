// Package search implements iterative-deepening negamax with alpha-beta
// pruning and a simple transposition table, the alternative to mcts for
// positions shallow or forced enough that exact lookahead beats
// sampling (spec §4.5, §9).
package search

import (
	"sync/atomic"
	"time"

	"github.com/blokuscore/engine/internal/board"
	"github.com/blokuscore/engine/internal/move"
)

const (
	Infinity = 1 << 20
	MaxDepth = 64
)

// Searcher holds the mutable state of one search: node count, stop
// signal and the shared transposition table.
type Searcher struct {
	tt       *Table
	nodes    uint64
	stopFlag atomic.Bool
	deadline time.Time
}

// NewSearcher creates a searcher backed by tt.
func NewSearcher(tt *Table) *Searcher {
	return &Searcher{tt: tt}
}

// Stop signals the running search to unwind immediately.
func (s *Searcher) Stop() { s.stopFlag.Store(true) }

// Nodes returns the number of positions visited by the last search.
func (s *Searcher) Nodes() uint64 { return s.nodes }

// IterativeDeepening searches root one ply deeper at a time up to
// maxDepth, stopping early once deadline passes. It always returns the
// best move found by the last depth that completed in full; a deadline
// hit mid-depth discards that depth's partial result (spec §4.5).
func (s *Searcher) IterativeDeepening(root *board.State, maxDepth int, deadline time.Time) (uint32, int) {
	s.stopFlag.Store(false)
	s.nodes = 0
	s.deadline = deadline

	bestMove := move.Null
	bestScore := 0

	for depth := 1; depth <= maxDepth; depth++ {
		if s.pastDeadline() {
			break
		}
		m, score, completed := s.rootSearch(root, depth)
		if !completed {
			break
		}
		bestMove, bestScore = m, score
	}
	return bestMove, bestScore
}

func (s *Searcher) pastDeadline() bool {
	return !s.deadline.IsZero() && !time.Now().Before(s.deadline)
}

func (s *Searcher) rootSearch(root *board.State, depth int) (uint32, int, bool) {
	moves := orderMoves(board.Generate(root))

	alpha, beta := -Infinity, Infinity
	bestMove := moves[0]
	bestScore := -Infinity

	for _, m := range moves {
		if s.pastDeadline() || s.stopFlag.Load() {
			return bestMove, bestScore, false
		}

		child := root.Clone()
		board.DoMove(child, m)
		score := -s.negamax(child, depth-1, 1, -beta, -alpha)

		if s.stopFlag.Load() {
			return bestMove, bestScore, false
		}
		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
	}
	return bestMove, bestScore, true
}

// negamax searches state to depth, returning a score from the
// perspective of state.Player.
func (s *Searcher) negamax(state *board.State, depth, ply int, alpha, beta int) int {
	if s.nodes&4095 == 0 && s.pastDeadline() {
		s.stopFlag.Store(true)
	}
	if s.stopFlag.Load() {
		return 0
	}
	s.nodes++

	if state.IsGameOver() {
		return terminalScore(state, ply)
	}

	if entry, ok := s.tt.Probe(state.Hash); ok && int(entry.Depth) >= depth {
		return int(entry.Score)
	}

	if depth <= 0 {
		return Evaluate(state)
	}

	moves := orderMoves(board.Generate(state))
	bestScore := -Infinity

	for _, m := range moves {
		child := state.Clone()
		board.DoMove(child, m)
		score := -s.negamax(child, depth-1, ply+1, -beta, -alpha)

		if s.stopFlag.Load() {
			return 0
		}
		if score > bestScore {
			bestScore = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	s.tt.Store(state.Hash, depth, bestScore)
	return bestScore
}

// terminalScore converts a finished game's outcome into a large score
// from state.Player's perspective, preferring faster wins and slower
// losses via the ply term.
func terminalScore(state *board.State, ply int) int {
	sc := state.Score()
	var margin int
	if state.Player == board.PlayerA {
		margin = int(sc.A) - int(sc.B)
	} else {
		margin = int(sc.B) - int(sc.A)
	}
	if margin == 0 {
		return 0
	}
	if margin > 0 {
		return Infinity/2 - ply
	}
	return -Infinity/2 + ply
}
