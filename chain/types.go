package chain

import "github.com/katalvlaran/credmpg/address"

// Chain is the dense-index view of a MarkovProcessGraph produced by
// ToMarkovChain (spec §4.6). NodeOrder is sorted by address.Compare, so two
// chains built from graphs with the same node set always assign the same
// index to the same address.
//
// For destination index i, SourceIndex[i] and Weight[i] are equal-length
// parallel slices over every incoming edge of NodeOrder[i]. Parallel input
// edges (repeated source index) are preserved, not merged.
type Chain struct {
	NodeOrder []address.Address

	SourceIndex [][]int
	Weight      [][]float64

	index map[string]int
}

// IndexOf returns the dense index NodeOrder assigns to addr, or (0, false)
// if addr is not a node of this chain.
//
// Complexity: O(1).
func (c *Chain) IndexOf(addr address.Address) (int, bool) {
	i, ok := c.index[addr.String()]
	return i, ok
}

// Len returns the number of nodes in the chain.
func (c *Chain) Len() int {
	return len(c.NodeOrder)
}
