package nnue

import "testing"

// placement mirrors the shape of a real game placement event for test
// purposes: a cell that was added by `placer`.
type placement struct {
	placer uint8
	x, y   uint8
}

// rebuildFromScratch recomputes a perspective's accumulator by replaying
// every placement's feature on top of a fresh, bias-only accumulator, the reference implementation
// that the incremental path (AddFeature per move) must always match.
func rebuildFromScratch(net *Network, perspective uint8, placements []placement) Accumulator {
	acc := NewAccumulator(net)
	for _, p := range placements {
		acc.AddFeature(FeatureIndex(perspective, p.placer, p.x, p.y), net)
	}
	return acc
}

func TestIncrementalMatchesFromScratch(t *testing.T) {
	net := NewNetwork()
	net.InitRandom(42)

	var placements []placement
	incrementalA := NewAccumulator(net)
	incrementalB := NewAccumulator(net)

	seq := []placement{
		{Side0, 0, 0}, {Side1, 13, 13}, {Side0, 1, 0}, {Side0, 1, 1},
		{Side1, 12, 13}, {Side1, 12, 12}, {Side0, 4, 4}, {Side1, 9, 9},
	}

	for _, p := range seq {
		placements = append(placements, p)
		incrementalA.AddFeature(FeatureIndex(Side0, p.placer, p.x, p.y), net)
		incrementalB.AddFeature(FeatureIndex(Side1, p.placer, p.x, p.y), net)

		wantA := rebuildFromScratch(net, Side0, placements)
		wantB := rebuildFromScratch(net, Side1, placements)

		if incrementalA.Values != wantA.Values {
			t.Fatalf("perspective A diverged after placement %+v", p)
		}
		if incrementalB.Values != wantB.Values {
			t.Fatalf("perspective B diverged after placement %+v", p)
		}
	}
}

func TestFeatureIndexRanges(t *testing.T) {
	for x := uint8(0); x < 14; x++ {
		for y := uint8(0); y < 14; y++ {
			for _, perspective := range []uint8{Side0, Side1} {
				for _, placer := range []uint8{Side0, Side1} {
					idx := FeatureIndex(perspective, placer, x, y)
					if idx < 0 || idx >= Features {
						t.Fatalf("feature index %d out of range [0,%d)", idx, Features)
					}
				}
			}
		}
	}
}

func TestFeatureIndexOwnVsOpponentHalvesDistinct(t *testing.T) {
	// A cell placed by the perspective's own side must land in the first
	// half [0, BoardCells); placed by the opponent, the second half.
	for x := uint8(0); x < 14; x++ {
		for y := uint8(0); y < 14; y++ {
			if idx := FeatureIndex(Side0, Side0, x, y); idx >= BoardCells {
				t.Fatalf("own-color feature %d should be < %d", idx, BoardCells)
			}
			if idx := FeatureIndex(Side0, Side1, x, y); idx < BoardCells {
				t.Fatalf("opponent-color feature %d should be >= %d", idx, BoardCells)
			}
		}
	}
}

func TestForwardIsDeterministic(t *testing.T) {
	net := NewNetwork()
	net.InitRandom(7)

	stm := NewAccumulator(net)
	ntm := NewAccumulator(net)
	stm.AddFeature(FeatureIndex(Side0, Side0, 3, 3), net)
	ntm.AddFeature(FeatureIndex(Side1, Side0, 3, 3), net)

	a := net.Forward(&stm, &ntm)
	b := net.Forward(&stm, &ntm)
	if a != b {
		t.Fatalf("Forward is not deterministic: %d != %d", a, b)
	}
}
