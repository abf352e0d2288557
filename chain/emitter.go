// SPDX-License-Identifier: MIT
// Package: credmpg/chain
//
// emitter.go — ToMarkovChain, spec §4.6.
package chain

import (
	"math"
	"sort"

	"github.com/katalvlaran/credmpg/address"
	"github.com/katalvlaran/credmpg/mpg"
	"gonum.org/v1/gonum/floats"
)

// ToMarkovChain builds the dense index-addressed view of g. It re-checks
// stochasticity independently of construction (spec §4.6's own pre-check),
// since a graph obtained via mpgio.Unmarshal was never revalidated (spec
// §4.7: "the deserializer trusts the payload").
//
// Complexity: O(n log n + e) for the node sort plus one pass over every edge.
func ToMarkovChain(g *mpg.MarkovProcessGraph) (*Chain, error) {
	nodes := g.Nodes()
	order := make([]address.Address, len(nodes))
	for i, n := range nodes {
		order[i] = n.Address
	}
	sort.Slice(order, func(i, j int) bool {
		return order[i].Compare(order[j]) < 0
	})

	index := make(map[string]int, len(order))
	for i, addr := range order {
		index[addr.String()] = i
	}

	for _, addr := range order {
		out := g.OutgoingEdges(addr)
		probs := make([]float64, len(out))
		for i, e := range out {
			probs[i] = e.Probability
		}
		sum := floats.Sum(probs)
		if math.Abs(sum-1.0) >= mpg.StochasticTolerance {
			return nil, &mpg.Error{Kind: mpg.KindInvariant, Sentinel: mpg.ErrNonStochasticNode, Offending: addr.String()}
		}
	}

	c := &Chain{
		NodeOrder:   order,
		SourceIndex: make([][]int, len(order)),
		Weight:      make([][]float64, len(order)),
		index:       index,
	}

	for i, addr := range order {
		in := g.IncomingEdges(addr)
		srcIdx := make([]int, 0, len(in))
		w := make([]float64, 0, len(in))
		for _, e := range in {
			si, ok := index[e.From.String()]
			if !ok {
				return nil, &mpg.Error{Kind: mpg.KindLookup, Sentinel: mpg.ErrUnknownSourceAddress, Offending: e.From.String()}
			}
			srcIdx = append(srcIdx, si)
			w = append(w, e.Probability)
		}
		c.SourceIndex[i] = srcIdx
		c.Weight[i] = w
	}

	return c, nil
}
