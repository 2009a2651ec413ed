package board

// StartPosition selects which designated cell each player's first move
// must cover (spec §4.3).
type StartPosition int

const (
	StartMiddle StartPosition = iota
	StartCorner
	StartMiddleBlokee
)

// anchors returns the designated start cell for player A, then player B.
func anchors(sp StartPosition) (a, b Coord) {
	switch sp {
	case StartMiddle:
		return Coord{X: 4, Y: 4}, Coord{X: 9, Y: 9}
	case StartCorner:
		return Coord{X: 0, Y: 0}, Coord{X: 13, Y: 13}
	case StartMiddleBlokee:
		return Coord{X: 6, Y: 7}, Coord{X: 7, Y: 6}
	default:
		panic("board: unknown start position")
	}
}

// inHomeTriangle implements the "middleBlokee" variant's extra first-move
// restriction: every cell of the placed piece must lie in the player's
// home half-triangle.
func inHomeTriangle(p Player, c Coord) bool {
	if p == PlayerA {
		return c.X <= 6 && c.Y > 6
	}
	return c.X > 6 && c.Y <= 6
}
