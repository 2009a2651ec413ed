package nnue

// Evaluator bundles a loaded network with the forward pass, so callers
// (the MCTS leaf evaluator, in particular) don't need to hold the network
// pointer themselves.
type Evaluator struct {
	net *Network
}

// NewEvaluator wraps net for evaluation. net may be filled by
// LoadWeights or InitRandom by the caller before first use.
func NewEvaluator(net *Network) *Evaluator {
	return &Evaluator{net: net}
}

// Evaluate runs the forward pass from the side-to-move's perspective,
// given its own accumulator (stm) and the opponent's (ntm).
func (e *Evaluator) Evaluate(stm, ntm *Accumulator) int32 {
	return e.net.Forward(stm, ntm)
}

// Network exposes the underlying network, e.g. so a BoardState can
// initialise fresh accumulators against it.
func (e *Evaluator) Network() *Network {
	return e.net
}
