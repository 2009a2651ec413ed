package piece

import "sync"

var (
	tablesOnce sync.Once
	infos      [Count]Info
)

// All returns the derived geometry table for every piece, computing it
// (once, lazily) from the canonical shapes in piece.go.
func All() [Count]Info {
	tablesOnce.Do(buildTables)
	return infos
}

// ByID returns the derived geometry for a single piece (0..Count-1).
func ByID(id int) Info {
	tablesOnce.Do(buildTables)
	return infos[id]
}

func buildTables() {
	for id, shape := range pieceShapes {
		variants := distinctOrientations(shape)
		orientations := make([]Orientation, len(variants))
		for i, cells := range variants {
			orientations[i] = deriveOrientation(cells)
		}
		infos[id] = Info{
			ID:           id,
			Cells:        len(shape),
			Orientations: orientations,
		}
	}
}
