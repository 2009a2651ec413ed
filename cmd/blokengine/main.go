// Command blokengine is the CLI "executable" collaborator: it applies a
// space-separated list of packed moves to a fresh corner-start board,
// runs a one-second MCTS search, and writes the chosen packed move
// (decimal) to stdout (spec §6).
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/blokuscore/engine/internal/board"
	"github.com/blokuscore/engine/internal/mcts"
	"github.com/blokuscore/engine/internal/nnue"
)

var nnuePath = flag.String("nnue", "", "path to NNUE weights (classical random-playout evaluation if empty)")

func main() {
	flag.Parse()

	moves := ""
	if flag.NArg() > 0 {
		moves = strings.Join(flag.Args(), " ")
	}

	packed, err := run(moves, *nnuePath)
	if err != nil {
		log.Print(err)
		os.Exit(1)
	}

	fmt.Println(packed)
}

func run(moveArg, weightsPath string) (uint32, error) {
	net := nnue.NewNetwork()
	evaluator := mcts.Evaluator(mcts.RandomPlayout{MaxPlies: 0})
	exploration := mcts.ExplorationRandomPlayout

	if weightsPath != "" {
		if err := net.LoadWeights(weightsPath); err != nil {
			return 0, fmt.Errorf("blokengine: loading NNUE weights: %w", err)
		}
		evaluator = mcts.NNUE{Net: net}
		exploration = mcts.ExplorationNNUE
	}

	s := board.New(board.StartCorner, net)

	for _, field := range strings.Fields(moveArg) {
		parsed, err := strconv.ParseUint(field, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("blokengine: argument %q is not a packed move: %w", field, err)
		}
		packed := uint32(parsed)
		if !board.IsLegal(s, packed) {
			return 0, fmt.Errorf("blokengine: move %d is illegal in the current position", packed)
		}
		board.DoMove(s, packed)
	}

	deadline := time.Now().Add(time.Second)
	best, _ := mcts.Run(s, mcts.Config{
		Exploration: exploration,
		Evaluator:   evaluator,
		Deadline:    deadline,
		Rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
	})
	return best, nil
}
