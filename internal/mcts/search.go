package mcts

import (
	"math/rand"
	"time"

	"github.com/blokuscore/engine/internal/board"
	"github.com/blokuscore/engine/internal/move"
)

// Named iteration budgets (spec §4.5). Hard games may run anywhere in
// [BudgetHardMin, BudgetHardMax]; callers pick a value in that range
// based on available time.
const (
	BudgetTest    = 1000
	BudgetEval    = 5000
	BudgetEasy    = 10000
	BudgetMedium  = 20000
	BudgetHardMin = 60000
	BudgetHardMax = 100000
)

// ExplorationRandomPlayout and ExplorationNNUE are the two fixed UCB1
// constants the original engine hard-codes per evaluator mode (spec §9):
// random-playout leaves are noisy and benefit from wide exploration,
// while NNUE leaves are confident enough that pure exploitation
// (c=0) performs better.
const (
	ExplorationRandomPlayout = 2.0
	ExplorationNNUE          = 0.0
)

// Config controls one search invocation. Exactly one of Iterations or
// Deadline should be set; if both are zero the search runs a single
// iteration.
type Config struct {
	Exploration float64
	Evaluator   Evaluator
	Iterations  int
	Deadline    time.Time
	Rand        *rand.Rand
}

// Stats summarizes a finished search, useful for logging and tuning.
type Stats struct {
	Iterations int
	RootVisits int
}

// Run grows a tree rooted at root (root is not mutated; Run clones it
// internally) until Config's budget is exhausted, then returns the move
// with the most root-level visits — not the highest win rate, since
// visit count is the more robust signal once the tree has converged
// (spec §4.5).
func Run(root *board.State, cfg Config) (uint32, Stats) {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	rootState := root.Clone()
	tree := newNode(rootState, nil)
	if tree.terminal || len(tree.untried) == 0 && len(tree.children) == 0 {
		return move.Null, Stats{}
	}

	hasBudget := cfg.Iterations > 0 || !cfg.Deadline.IsZero()

	iterations := 0
	for {
		if cfg.Iterations > 0 && iterations >= cfg.Iterations {
			break
		}
		if !cfg.Deadline.IsZero() && !time.Now().Before(cfg.Deadline) {
			break
		}
		if !hasBudget && iterations >= 1 {
			break
		}

		runIteration(tree, cfg, rng)
		iterations++
	}

	best := move.Null
	bestVisits := -1
	for packed, child := range tree.children {
		if child.visits > bestVisits {
			bestVisits = child.visits
			best = packed
		}
	}
	if best == move.Null && len(tree.untried) > 0 {
		best = tree.untried[0]
	}

	return best, Stats{Iterations: iterations, RootVisits: tree.visits}
}

func runIteration(root *node, cfg Config, rng *rand.Rand) {
	n := root
	for len(n.untried) == 0 && len(n.children) > 0 && !n.terminal {
		n = n.selectChild(cfg.Exploration)
	}

	if !n.terminal && len(n.untried) > 0 {
		n = n.expand(rng)
	}

	var result [2]float64
	if n.terminal {
		result = terminalResult(n.state)
	} else {
		v := cfg.Evaluator.Evaluate(n.state, rng)
		mover := n.state.Player
		result[mover] = 0.5 + 0.5*v
		result[mover.Other()] = 1 - result[mover]
	}

	backpropagate(n, result)
}

// BestMove is a convenience wrapper that always runs to a fixed
// iteration budget.
func BestMove(root *board.State, evaluator Evaluator, exploration float64, iterations int) uint32 {
	best, _ := Run(root, Config{
		Exploration: exploration,
		Evaluator:   evaluator,
		Iterations:  iterations,
	})
	return best
}
