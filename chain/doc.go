// SPDX-License-Identifier: MIT

// Package chain converts a constructed MarkovProcessGraph into the dense,
// index-addressed form a power-iteration solver consumes: a canonical node
// order plus, per destination, parallel (source index, weight) buffers.
//
// Grounded on lvlath's matrix package: ToMarkovChain plays the role of
// matrix/impl_builder.go's NewMatrixFromGraph, and ColumnStochasticMatrix
// plays the role of matrix/impl_adjacency.go's dense-adjacency export,
// with the same Dense-fast-path-plus-explicit-ceiling structuring
// matrix/impl_statistics.go uses to keep an O(n^2) allocation opt-in.
package chain
