package piece

import "sort"

// symmetries are the 8 transforms of the square's dihedral group, applied
// to a cell (x,y) before normalization. Four rotations, and the same four
// after a horizontal reflection.
var symmetries = [8]func(x, y int) (int, int){
	func(x, y int) (int, int) { return x, y },
	func(x, y int) (int, int) { return -y, x },
	func(x, y int) (int, int) { return -x, -y },
	func(x, y int) (int, int) { return y, -x },
	func(x, y int) (int, int) { return -x, y },
	func(x, y int) (int, int) { return y, x },
	func(x, y int) (int, int) { return x, -y },
	func(x, y int) (int, int) { return -y, -x },
}

type intCoord struct{ x, y int }

// normalize shifts a cell set so its bounding box starts at (0,0), and
// returns the cells sorted for stable, comparable ordering.
func normalize(cells []intCoord) []intCoord {
	minX, minY := cells[0].x, cells[0].y
	for _, c := range cells {
		if c.x < minX {
			minX = c.x
		}
		if c.y < minY {
			minY = c.y
		}
	}
	out := make([]intCoord, len(cells))
	for i, c := range cells {
		out[i] = intCoord{c.x - minX, c.y - minY}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].y != out[j].y {
			return out[i].y < out[j].y
		}
		return out[i].x < out[j].x
	})
	return out
}

// distinctOrientations applies all 8 symmetries to shape, normalizes each
// result, and returns the symmetry-reduced set (1 to 8 entries) in the
// order first produced.
func distinctOrientations(shape []Coord) [][]intCoord {
	base := make([]intCoord, len(shape))
	for i, c := range shape {
		base[i] = intCoord{int(c.X), int(c.Y)}
	}

	seen := make(map[string]bool, 8)
	var out [][]intCoord
	for _, sym := range symmetries {
		transformed := make([]intCoord, len(base))
		for i, c := range base {
			x, y := sym(c.x, c.y)
			transformed[i] = intCoord{x, y}
		}
		norm := normalize(transformed)
		key := cellsKey(norm)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, norm)
	}
	return out
}

func cellsKey(cells []intCoord) string {
	b := make([]byte, 0, len(cells)*4)
	for _, c := range cells {
		b = append(b, byte(c.x), byte(c.y), ';')
	}
	return string(b)
}

// deriveOrientation builds the full Orientation (row masks, halo masks,
// corner offsets, bounding box) from a normalized cell set.
func deriveOrientation(cells []intCoord) Orientation {
	cellSet := make(map[intCoord]bool, len(cells))
	width, height := 0, 0
	for _, c := range cells {
		cellSet[c] = true
		if c.x+1 > width {
			width = c.x + 1
		}
		if c.y+1 > height {
			height = c.y + 1
		}
	}

	out := Orientation{
		Cells:     make([]Coord, len(cells)),
		RowMask:   make([]uint32, height),
		ShortBBox: [2]uint8{uint8(width - 1), uint8(height - 1)},
	}
	for i, c := range cells {
		out.Cells[i] = Coord{X: uint8(c.x), Y: uint8(c.y)}
		out.RowMask[c.y] |= 1 << uint(c.x)
	}

	// halo: union of the piece's own cells and their edge-adjacent
	// neighbours, over H+2 rows (one above, one below), columns shifted
	// +1 so column 0 of the mask aligns with piece column -1.
	haloSet := make(map[intCoord]bool, len(cells)*5)
	edgeDeltas := [4]intCoord{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for c := range cellSet {
		haloSet[c] = true
		for _, d := range edgeDeltas {
			haloSet[intCoord{c.x + d.x, c.y + d.y}] = true
		}
	}
	out.HaloMask = make([]uint32, height+2)
	for cell := range haloSet {
		row := cell.y + 1 // row -1 -> index 0
		if row < 0 || row >= height+2 {
			continue
		}
		col := cell.x + 1 // column -1 -> bit 0
		if col < 0 {
			continue
		}
		out.HaloMask[row] |= 1 << uint(col)
	}

	// CornerAttachers: diagonal neighbours of piece cells that are not
	// themselves in the halo (i.e. not occupied and not edge-adjacent to
	// any piece cell) — the new slots this placement exposes.
	diagDeltas := [4]intCoord{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	attachSet := make(map[intCoord]bool)
	cornerSet := make(map[intCoord]bool)
	for c := range cellSet {
		open := false
		for _, d := range diagDeltas {
			cand := intCoord{c.x + d.x, c.y + d.y}
			if haloSet[cand] {
				continue
			}
			attachSet[cand] = true
			open = true
		}
		// Corners: the piece's own cells that have at least one open
		// diagonal direction — candidates for landing on an attach
		// slot exactly, so the piece attaches there by diagonal touch.
		if open {
			cornerSet[c] = true
		}
	}
	attachers := make([]intCoord, 0, len(attachSet))
	for c := range attachSet {
		attachers = append(attachers, c)
	}
	sort.Slice(attachers, func(i, j int) bool {
		if attachers[i].y != attachers[j].y {
			return attachers[i].y < attachers[j].y
		}
		return attachers[i].x < attachers[j].x
	})
	offsets := make([]Offset, len(attachers))
	for i, c := range attachers {
		offsets[i] = Offset{DX: int8(c.x), DY: int8(c.y)}
	}
	out.CornerAttachers = offsets

	corners := make([]intCoord, 0, len(cornerSet))
	for c := range cornerSet {
		corners = append(corners, c)
	}
	sort.Slice(corners, func(i, j int) bool {
		if corners[i].y != corners[j].y {
			return corners[i].y < corners[j].y
		}
		return corners[i].x < corners[j].x
	})
	out.Corners = make([]Coord, len(corners))
	for i, c := range corners {
		out.Corners[i] = Coord{X: uint8(c.x), Y: uint8(c.y)}
	}

	return out
}
