package fibration

import (
	"github.com/katalvlaran/credmpg/address"
	"github.com/katalvlaran/credmpg/epochgrid"
)

// WebbingPair identifies two boundary indices (Prev, Curr) that are
// adjacent in the shared boundary list, i.e. Curr == Prev+1. The MPG
// Builder emits one forward and one backward webbing edge per pair, per
// owner (spec §4.4/§4.5 step 4).
type WebbingPair struct {
	Prev, Curr int
}

// Plan is the output of the Fibration Planner: the set of scoring
// addresses (in a deterministic order) and the shared boundary grid every
// scoring address is fibrated across. Epoch nodes exist one-per
// (scoring address, boundary index) pair, including the two open
// sentinels, matching the "Epoch: one per (scoring node, boundary) pair"
// row of spec §3.
type Plan struct {
	ScoringAddresses []address.Address
	Boundaries       []epochgrid.Boundary
}

// WebbingPairs returns every adjacent-boundary-index pair shared by all
// scoring addresses (the pairing is index-based and therefore identical
// across owners; only the owner differs at emission time).
//
// Complexity: O(k).
func (p *Plan) WebbingPairs() []WebbingPair {
	if len(p.Boundaries) < 2 {
		return nil
	}
	out := make([]WebbingPair, 0, len(p.Boundaries)-1)
	for i := 1; i < len(p.Boundaries); i++ {
		out = append(out, WebbingPair{Prev: i - 1, Curr: i})
	}
	return out
}

// EpochCount returns the number of epoch nodes planned per scoring
// address: one per boundary list entry.
func (p *Plan) EpochCount() int {
	return len(p.Boundaries)
}
