// Package nnue implements the two-perspective, incrementally-updated
// quantised evaluator described in spec §4.6: a sparse 392-feature input
// (14x14 cells x {stm, ntm}), one quantised hidden layer with clipped-ReLU,
// and a single scalar output layer.
package nnue

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const (
	// BoardCells is 14x14.
	BoardCells = 196
	// Features is the input dimension: own-color cells followed by
	// other-color cells, both indexed in the placing perspective's
	// coordinate convention (see features.go).
	Features = 2 * BoardCells

	// Hidden is the width of the single quantised hidden layer, fixed
	// by the compiled network.
	Hidden = 128

	// OutputShift dequantises the raw dot product of the output layer
	// down to a centipawn-like integer range.
	OutputShift = 6
)

// Network holds the quantised weights of the evaluator. The zero value is
// a network with all-zero weights (useful only for tests); real use
// requires LoadWeights or InitRandom.
type Network struct {
	L1Weights [Features][Hidden]int16
	L1Bias    [Hidden]int16

	// L2Weights concatenates the stm accumulator's Hidden clipped
	// activations with the ntm accumulator's, hence 2*Hidden inputs to
	// a single output neuron.
	L2Weights [2 * Hidden]int16
	L2Bias    int32
}

// NewNetwork returns a network with zero weights.
func NewNetwork() *Network {
	return &Network{}
}

// ClippedReLU clamps an accumulator value to [0, 127], the quantised
// activation range (also called SCReLU/CReLU in training literature).
func ClippedReLU(x int16) int16 {
	if x < 0 {
		return 0
	}
	if x > 127 {
		return 127
	}
	return x
}

// Forward runs stm and ntm accumulators through clipped-ReLU and the
// output layer, returning a raw (not further dequantised by the caller)
// i32 score from the side-to-move's perspective.
func (n *Network) Forward(stm, ntm *Accumulator) int32 {
	var sum int32 = n.L2Bias
	for i := 0; i < Hidden; i++ {
		sum += int32(ClippedReLU(stm.Values[i])) * int32(n.L2Weights[i])
	}
	for i := 0; i < Hidden; i++ {
		sum += int32(ClippedReLU(ntm.Values[i])) * int32(n.L2Weights[Hidden+i])
	}
	return sum >> OutputShift
}

// InitRandom fills the network with small deterministic pseudo-random
// weights, for tests and for running the engine before a trained network
// is available. Not used once a real network file is loaded.
func (n *Network) InitRandom(seed uint64) {
	state := seed
	next := func() int16 {
		state = state*6364136223846793005 + 1442695040888963407
		return int16((state >> 48) & 0xFF) - 128
	}
	for f := 0; f < Features; f++ {
		for h := 0; h < Hidden; h++ {
			n.L1Weights[f][h] = next() >> 5
		}
	}
	for h := 0; h < Hidden; h++ {
		n.L1Bias[h] = next() >> 3
	}
	for i := 0; i < 2*Hidden; i++ {
		n.L2Weights[i] = next() >> 6
	}
	n.L2Bias = int32(next())
}

// fileLayout is the exact byte layout of a network file: L1Weights,
// L1Bias, L2Weights, L2Bias, all little-endian, with no header. A size
// mismatch is treated as a fatal load error, matching spec §6.
func fileLayout() int {
	return Features*Hidden*2 + Hidden*2 + 2*Hidden*2 + 4
}

// LoadWeights slurps a fixed-size binary network file and reinterprets it
// as the network structure. This is the only supported loading mode: the
// file is treated as an opaque, pre-built artifact (spec §6), not
// generated or validated beyond its size.
func (n *Network) LoadWeights(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if want := int64(fileLayout()); info.Size() != want {
		return fmt.Errorf("nnue: network file %s has size %d, want %d", path, info.Size(), want)
	}

	return n.readFrom(f)
}

func (n *Network) readFrom(r io.Reader) error {
	for f := 0; f < Features; f++ {
		if err := binary.Read(r, binary.LittleEndian, &n.L1Weights[f]); err != nil {
			return fmt.Errorf("nnue: reading L1 weights: %w", err)
		}
	}
	if err := binary.Read(r, binary.LittleEndian, &n.L1Bias); err != nil {
		return fmt.Errorf("nnue: reading L1 bias: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &n.L2Weights); err != nil {
		return fmt.Errorf("nnue: reading L2 weights: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &n.L2Bias); err != nil {
		return fmt.Errorf("nnue: reading L2 bias: %w", err)
	}
	return nil
}
