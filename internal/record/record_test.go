package record

import (
	"math/rand"
	"testing"

	"github.com/blokuscore/engine/internal/board"
	"github.com/blokuscore/engine/internal/move"
	"github.com/blokuscore/engine/internal/nnue"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	net := nnue.NewNetwork()

	for game := 0; game < 1000; game++ {
		s := board.New(board.StartCorner, net)
		plies := rng.Intn(12)
		for i := 0; i < plies; i++ {
			moves := board.Generate(s)
			if moves[0] == move.Null && len(moves) == 1 {
				break
			}
			board.DoMove(s, moves[rng.Intn(len(moves))])
		}

		want := FromState(s, uint32(rng.Intn(1<<14)), uint32(rng.Intn(1<<14)), Result(rng.Intn(3)))
		encoded := Encode(want)
		got, err := Decode(encoded[:])
		if err != nil {
			t.Fatalf("game %d: decode failed: %v", game, err)
		}

		if got.Occ != want.Occ {
			t.Fatalf("game %d: occupancy mismatch", game)
		}
		if got.Visits != want.Visits || got.WinCount != want.WinCount {
			t.Fatalf("game %d: visits/win-count mismatch: got %+v want %+v", game, got, want)
		}
		if got.SideToMove != want.SideToMove {
			t.Fatalf("game %d: side-to-move mismatch", game)
		}
		if got.Result != want.Result {
			t.Fatalf("game %d: result mismatch", game)
		}
	}
}

func TestDecodeRejectsWrongSize(t *testing.T) {
	if _, err := Decode(make([]byte, Size-1)); err == nil {
		t.Fatal("expected an error for undersized input")
	}
}
