// Package selfplay runs independent games on a fixed-size worker pool:
// parallelism is exploited only at this outer level, never inside a
// single search call (spec §4.8). Each worker owns its own board state,
// search tree and RNG; workers share only the immutable piece geometry
// tables and network weights (spec §5).
package selfplay

import (
	"context"
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/blokuscore/engine/internal/board"
	"github.com/blokuscore/engine/internal/mcts"
	"github.com/blokuscore/engine/internal/move"
	"github.com/blokuscore/engine/internal/nnue"
	"github.com/blokuscore/engine/internal/record"
)

// Config controls one self-play run.
type Config struct {
	Games       int
	Workers     int
	StartPos    board.StartPosition
	Net         *nnue.Network
	Iterations  int     // MCTS iterations per move
	Exploration float64 // UCB1 constant, matched to the evaluator in use
	Evaluator   func() mcts.Evaluator
	Seed        int64
}

// GameRecord is everything kept from one finished self-play game: the
// per-position training records and the terminal result.
type GameRecord struct {
	Positions []record.Record
	Result    record.Result
}

// Run plays cfg.Games games across cfg.Workers goroutines and returns
// one GameRecord per completed game. A worker error aborts the whole
// pool, since there is no partial-result recovery worth doing for a
// batch self-play run.
func Run(ctx context.Context, cfg Config) ([]GameRecord, error) {
	if cfg.Workers <= 0 {
		return nil, fmt.Errorf("selfplay: Workers must be positive, got %d", cfg.Workers)
	}

	jobs := make(chan int, cfg.Games)
	for i := 0; i < cfg.Games; i++ {
		jobs <- i
	}
	close(jobs)

	results := make([]GameRecord, cfg.Games)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.Workers; w++ {
		w := w
		g.Go(func() error {
			rng := rand.New(rand.NewSource(cfg.Seed + int64(w)))
			for gameIdx := range jobs {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				results[gameIdx] = playOneGame(cfg, rng)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// playOneGame drives one complete game to a terminal position using
// MCTS for both sides, recording a training record before every move.
func playOneGame(cfg Config, rng *rand.Rand) GameRecord {
	s := board.New(cfg.StartPos, cfg.Net)

	var positions []record.Record
	for !s.IsGameOver() {
		evaluator := cfg.Evaluator()
		packed, stats := mcts.Run(s, mcts.Config{
			Exploration: cfg.Exploration,
			Evaluator:   evaluator,
			Iterations:  cfg.Iterations,
			Rand:        rng,
		})

		positions = append(positions, record.FromState(s, uint32(stats.RootVisits), 0, record.ResultDraw))

		if packed == move.Null {
			board.DoMove(s, move.Null)
			continue
		}
		board.DoMove(s, packed)
	}

	result := gameResult(s)
	for i := range positions {
		positions[i].Result = result
	}
	return GameRecord{Positions: positions, Result: result}
}

func gameResult(s *board.State) record.Result {
	switch s.GameResult() {
	case board.PlayerAWon:
		return record.ResultAWon
	case board.PlayerBWon:
		return record.ResultBWon
	default:
		return record.ResultDraw
	}
}
