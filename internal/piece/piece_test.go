package piece

import "testing"

func TestAllPiecesHaveAtLeastOneOrientation(t *testing.T) {
	infos := All()
	if len(infos) != Count {
		t.Fatalf("expected %d pieces, got %d", Count, len(infos))
	}
	for _, info := range infos {
		if len(info.Orientations) == 0 {
			t.Fatalf("piece %d has no orientations", info.ID)
		}
		if len(info.Orientations) > 8 {
			t.Fatalf("piece %d has %d orientations, want <= 8", info.ID, len(info.Orientations))
		}
		for _, o := range info.Orientations {
			if len(o.Cells) != info.Cells {
				t.Fatalf("piece %d orientation has %d cells, want %d", info.ID, len(o.Cells), info.Cells)
			}
		}
	}
}

func TestMonominoHasExactlyOneOrientation(t *testing.T) {
	info := ByID(0)
	if len(info.Orientations) != 1 {
		t.Fatalf("monomino should have exactly 1 orientation, got %d", len(info.Orientations))
	}
}

func TestSquareTetrominoHasExactlyOneOrientation(t *testing.T) {
	// O4 (square tetromino) is fully symmetric under the dihedral group.
	info := ByID(5)
	if len(info.Orientations) != 1 {
		t.Fatalf("square tetromino should have exactly 1 orientation, got %d", len(info.Orientations))
	}
}

func TestRowMaskMatchesCells(t *testing.T) {
	for _, info := range All() {
		for oi, o := range info.Orientations {
			var fromMask int
			for _, row := range o.RowMask {
				for c := 0; c < 16; c++ {
					if row&(1<<uint(c)) != 0 {
						fromMask++
					}
				}
			}
			if fromMask != info.Cells {
				t.Fatalf("piece %d orientation %d: row masks cover %d cells, want %d", info.ID, oi, fromMask, info.Cells)
			}
		}
	}
}

func TestHaloMaskContainsAllCells(t *testing.T) {
	for _, info := range All() {
		for oi, o := range info.Orientations {
			for _, c := range o.Cells {
				row := int(c.Y) + 1
				col := int(c.X) + 1
				if o.HaloMask[row]&(1<<uint(col)) == 0 {
					t.Fatalf("piece %d orientation %d: halo mask missing own cell (%d,%d)", info.ID, oi, c.X, c.Y)
				}
			}
		}
	}
}

// TestCornersAreOwnCellsWithOpenDiagonal checks that Corners is a subset
// of the piece's own Cells, and that each one has at least one diagonal
// neighbour that is neither occupied nor edge-adjacent to the piece.
func TestCornersAreOwnCellsWithOpenDiagonal(t *testing.T) {
	diagDeltas := [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	for _, info := range All() {
		for oi, o := range info.Orientations {
			cellSet := make(map[[2]int]bool, len(o.Cells))
			for _, c := range o.Cells {
				cellSet[[2]int{int(c.X), int(c.Y)}] = true
			}
			for _, corner := range o.Corners {
				if !cellSet[[2]int{int(corner.X), int(corner.Y)}] {
					t.Fatalf("piece %d orientation %d: corner (%d,%d) is not one of the piece's own cells", info.ID, oi, corner.X, corner.Y)
				}
				open := false
				for _, d := range diagDeltas {
					nx, ny := int(corner.X)+d[0], int(corner.Y)+d[1]
					if cellSet[[2]int{nx, ny}] {
						continue
					}
					edgeOccupied := false
					for _, e := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
						if cellSet[[2]int{nx + e[0], ny + e[1]}] {
							edgeOccupied = true
							break
						}
					}
					if !edgeOccupied {
						open = true
						break
					}
				}
				if !open {
					t.Fatalf("piece %d orientation %d: corner (%d,%d) has no open diagonal direction", info.ID, oi, corner.X, corner.Y)
				}
			}
		}
	}
}

// TestCornerAttachersAreDiagonalAndNotHalo checks that CornerAttachers
// lists only exterior diagonal neighbours of the piece's cells, never a
// cell of the piece itself nor a cell edge-adjacent to one (the halo).
func TestCornerAttachersAreDiagonalAndNotHalo(t *testing.T) {
	for _, info := range All() {
		for oi, o := range info.Orientations {
			cellSet := make(map[[2]int]bool)
			for _, c := range o.Cells {
				cellSet[[2]int{int(c.X), int(c.Y)}] = true
			}
			for _, off := range o.CornerAttachers {
				touchesDiagonal := false
				touchesEdge := false
				for _, c := range o.Cells {
					dx := int(off.DX) - int(c.X)
					dy := int(off.DY) - int(c.Y)
					if dx == dy && (dx == 1 || dx == -1) {
						touchesDiagonal = true
					}
					if dx == -dy && (dx == 1 || dx == -1) {
						touchesDiagonal = true
					}
					if (dx == 0 && (dy == 1 || dy == -1)) || (dy == 0 && (dx == 1 || dx == -1)) {
						touchesEdge = true
					}
				}
				if !touchesDiagonal {
					t.Fatalf("piece %d orientation %d: attacher offset (%d,%d) is not diagonal to any cell", info.ID, oi, off.DX, off.DY)
				}
				if touchesEdge {
					t.Fatalf("piece %d orientation %d: attacher offset (%d,%d) is edge-adjacent to the piece", info.ID, oi, off.DX, off.DY)
				}
				if cellSet[[2]int{int(off.DX), int(off.DY)}] {
					t.Fatalf("piece %d orientation %d: attacher offset (%d,%d) overlaps the piece itself", info.ID, oi, off.DX, off.DY)
				}
			}
		}
	}
}
