// SPDX-License-Identifier: MIT
// Package: credmpg/chain
//
// matrix.go — ColumnStochasticMatrix, a convenience export for callers who
// want to hand the chain to gonum's own linear-algebra routines (power
// iteration, eigen-decomposition) instead of walking SourceIndex/Weight by
// hand. Dense storage is O(n^2); maxNodes is a caller-supplied ceiling so a
// large chain fails fast instead of silently allocating gigabytes.
package chain

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrChainTooLargeForDense is returned by ColumnStochasticMatrix when the
// chain's node count exceeds the caller's maxNodes ceiling.
type ErrChainTooLargeForDense struct {
	Len, MaxNodes int
}

func (e *ErrChainTooLargeForDense) Error() string {
	return fmt.Sprintf("chain: %d nodes exceeds dense ceiling of %d", e.Len, e.MaxNodes)
}

// ColumnStochasticMatrix renders the chain as a dense n x n matrix M where
// M.At(dst, src) is the transition weight from NodeOrder[src] to
// NodeOrder[dst]. Parallel edges between the same (src, dst) pair are
// summed into a single cell, since a dense matrix has no notion of
// parallel edges; every other consumer of the chain (SourceIndex/Weight)
// still sees them distinctly.
//
// Complexity: O(n^2 + e).
func (c *Chain) ColumnStochasticMatrix(maxNodes int) (*mat.Dense, error) {
	n := len(c.NodeOrder)
	if n > maxNodes {
		return nil, &ErrChainTooLargeForDense{Len: n, MaxNodes: maxNodes}
	}

	m := mat.NewDense(n, n, nil)
	for dst := 0; dst < n; dst++ {
		srcs, weights := c.SourceIndex[dst], c.Weight[dst]
		for i, src := range srcs {
			m.Set(dst, src, m.At(dst, src)+weights[i])
		}
	}
	return m, nil
}
