package search

import "github.com/blokuscore/engine/internal/board"

// Evaluate returns a static score from the perspective of the side to
// move in s: positive favors s.Player. It combines placed-cell material
// with a mobility term derived from each player's corner-attachment
// cache size, the cheapest available proxy for "moves still open".
func Evaluate(s *board.State) int {
	sc := s.Score()
	material := int(sc.A) - int(sc.B)
	mobility := len(s.CornerCache[board.PlayerA]) - len(s.CornerCache[board.PlayerB])

	score := material*100 + mobility*10
	if s.Player == board.PlayerB {
		score = -score
	}
	return score
}
