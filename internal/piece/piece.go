// Package piece holds the static, read-only geometry of the 21 playable
// pieces: their symmetry-reduced orientations, row bitmasks, halo bitmasks,
// and the diagonal corner offsets used for attachment legality.
//
// Nothing here is loaded from disk. The canonical piece shapes are
// described in code (pieceShapes below) and every derived table is
// computed once, on the first call to All or ByID, by the routines in
// orientation.go and tables.go — so the tables are guaranteed identical across runs without
// needing an on-disk schema.
package piece

// Coord is an unsigned cell offset relative to a piece orientation's
// top-left bounding-box corner, or an absolute board cell.
type Coord struct {
	X, Y uint8
}

// Offset is a signed cell offset, used for the diagonal attachment points
// of a piece orientation, which may fall outside its bounding box (e.g.
// one row above or one column left of the origin).
type Offset struct {
	DX, DY int8
}

// Count is the number of distinct piece types (1..5 cells each).
const Count = 21

// Info describes one piece type: its size in cells and every
// symmetry-reduced orientation of it.
type Info struct {
	ID           int
	Cells        int // number of cells this piece covers
	Orientations []Orientation
}

// Orientation is one symmetry-reduced rotation/reflection of a piece.
type Orientation struct {
	// Cells relative to the orientation's top-left bounding-box corner.
	Cells []Coord

	// RowMask[r] is a bitmask of occupied columns in row r, r in
	// [0, height).
	RowMask []uint32

	// HaloMask[r] is a bitmask of cells that must not be same-color
	// occupied: the union of the piece's own cells and their
	// edge-adjacent neighbours. Indexed over H+2 rows (one above, one
	// below the piece), columns shifted +1 so column 0 aligns with
	// piece column -1.
	HaloMask []uint32

	// Corners lists the piece's own cells that have at least one open
	// diagonal direction (not occupied or edge-adjacent to another
	// cell of the same piece). LegalFrom subtracts one of these from an
	// attach slot to get the placement's origin: the slot is where this
	// cell of the piece lands, so the piece attaches there by diagonal
	// touch. A subset of Cells, always non-negative.
	Corners []Coord

	// CornerAttachers lists the diagonal-neighbour offsets of the
	// piece's outline that are not edge-adjacent to any piece cell:
	// the new empty slots a placement exposes for the player's own
	// next placement. Signed, since they can
	// fall outside the piece's own bounding box (e.g. one row above
	// or one column left of the origin).
	CornerAttachers []Offset

	// ShortBBox is (width-1, height-1), used for the fast bounds test.
	ShortBBox [2]uint8
}

// pieceShapes is the canonical description: the 21 standard piece shapes
// (1 monomino, 1 domino, 2 trominoes, 5 tetrominoes, 12 pentominoes), each
// given as its minimal cell list. Orientation derivation (rotation,
// reflection, symmetry dedup) happens once in tables.go.
var pieceShapes = [Count][]Coord{
	// monomino
	{{0, 0}},
	// domino
	{{0, 0}, {1, 0}},
	// trominoes
	{{0, 0}, {1, 0}, {2, 0}},         // I3
	{{0, 0}, {0, 1}, {1, 1}},         // V3 (L tromino)
	// tetrominoes
	{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, // I4
	{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, // O4 (square)
	{{0, 0}, {0, 1}, {0, 2}, {1, 2}}, // L4
	{{0, 0}, {1, 0}, {2, 0}, {1, 1}}, // T4
	{{1, 0}, {2, 0}, {0, 1}, {1, 1}}, // S4/Z4
	// pentominoes
	{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}}, // F
	{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}, // I5
	{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {1, 3}}, // L5
	{{0, 0}, {0, 1}, {1, 1}, {1, 2}, {1, 3}}, // N
	{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}}, // P
	{{0, 0}, {1, 0}, {2, 0}, {1, 1}, {1, 2}}, // T5
	{{0, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}, // U
	{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}}, // V5
	{{0, 0}, {0, 1}, {1, 1}, {1, 2}, {2, 2}}, // W
	{{1, 0}, {0, 1}, {1, 1}, {2, 1}, {1, 2}}, // X
	{{1, 0}, {0, 1}, {1, 1}, {1, 2}, {1, 3}}, // Y
	{{0, 0}, {1, 0}, {1, 1}, {1, 2}, {2, 2}}, // Z
}
