// Package mcts implements Monte Carlo tree search over board.State with
// UCB1 selection and a pluggable leaf evaluator (spec §4.5), following
// the node/parent-pointer tree shape of melvinzhang-squava's MCTSNode.
package mcts

import (
	"math"
	"math/rand"

	"github.com/blokuscore/engine/internal/board"
)

// node is one tree entry. Like the teacher's MCTSNode, a node owns its
// own board.State snapshot rather than replaying moves on shared state,
// since board.State.Clone is cheap relative to search depth.
type node struct {
	state    *board.State
	parent   *node
	children map[uint32]*node
	visits   int
	value    float64 // accumulated credit for parent.state.Player
	untried  []uint32
	terminal bool
}

func newNode(state *board.State, parent *node) *node {
	n := &node{
		state:    state,
		parent:   parent,
		children: make(map[uint32]*node),
	}
	if state.IsGameOver() {
		n.terminal = true
		return n
	}
	n.untried = board.Generate(state)
	return n
}

// selectChild returns the child maximizing UCB1 with the given
// exploration constant. An unvisited child scores +Inf so every child is
// tried once before any is revisited, mirroring the teacher's
// UCTSelectChild.
func (n *node) selectChild(exploration float64) *node {
	logVisits := math.Log(float64(n.visits))
	best := math.Inf(-1)
	var bestChild *node
	for _, child := range n.children {
		score := math.Inf(1)
		if child.visits > 0 {
			winRate := child.value / float64(child.visits)
			explore := exploration * math.Sqrt(logVisits/float64(child.visits))
			score = winRate + explore
		}
		if score > best {
			best = score
			bestChild = child
		}
	}
	return bestChild
}

// expand pops a random untried move, applies it and attaches the
// resulting child.
func (n *node) expand(rng *rand.Rand) *node {
	i := rng.Intn(len(n.untried))
	picked := n.untried[i]
	n.untried[i] = n.untried[len(n.untried)-1]
	n.untried = n.untried[:len(n.untried)-1]

	child := n.state.Clone()
	board.DoMove(child, picked)
	c := newNode(child, n)
	n.children[picked] = c
	return c
}

// backpropagate credits result up to the root. result holds, per player,
// the win-rate-scale value ([0,1]) earned at the simulated leaf.
func backpropagate(leaf *node, result [2]float64) {
	for n := leaf; n != nil; n = n.parent {
		n.visits++
		if n.parent != nil {
			mover := n.parent.state.Player
			n.value += result[mover]
		}
	}
}

// terminalResult converts a finished game's score into the [0,1]
// win-rate-scale credit used throughout the tree.
func terminalResult(s *board.State) [2]float64 {
	switch s.GameResult() {
	case board.PlayerAWon:
		return [2]float64{1, 0}
	case board.PlayerBWon:
		return [2]float64{0, 1}
	default:
		return [2]float64{0.5, 0.5}
	}
}
