// SPDX-License-Identifier: MIT
package chain_test

import (
	"testing"

	"github.com/katalvlaran/credmpg/address"
	"github.com/katalvlaran/credmpg/chain"
	"github.com/katalvlaran/credmpg/contribgraph"
	"github.com/katalvlaran/credmpg/mpg"
	"github.com/katalvlaran/credmpg/weight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSmallGraph(t *testing.T) *mpg.MarkovProcessGraph {
	t.Helper()
	a, err := address.NewNode("repo", "a")
	require.NoError(t, err)
	b, err := address.NewNode("repo", "b")
	require.NoError(t, err)
	e1, err := address.NewEdge("e1")
	require.NoError(t, err)

	g := contribgraph.NewInMemory(weight.ConstantNodeWeight(1), weight.ConstantEdgeWeight(1, 0))
	require.NoError(t, g.AddNode(a, "a"))
	require.NoError(t, g.AddNode(b, "b"))
	require.NoError(t, g.AddEdge(e1, a, b, 0))

	got, err := mpg.New(g, mpg.FibrationOptions{}, mpg.SeedOptions{Alpha: 0.1})
	require.NoError(t, err)
	return got
}

func TestToMarkovChain_NodeOrderIsCanonical(t *testing.T) {
	g := buildSmallGraph(t)
	c, err := chain.ToMarkovChain(g)
	require.NoError(t, err)

	for i := 1; i < len(c.NodeOrder); i++ {
		assert.Negative(t, c.NodeOrder[i-1].Compare(c.NodeOrder[i]))
	}
	assert.Equal(t, len(g.Nodes()), c.Len())
}

func TestToMarkovChain_IncomingBuffersMatchGraph(t *testing.T) {
	g := buildSmallGraph(t)
	c, err := chain.ToMarkovChain(g)
	require.NoError(t, err)

	a, err := address.NewNode("repo", "a")
	require.NoError(t, err)
	b, err := address.NewNode("repo", "b")
	require.NoError(t, err)

	bIdx, ok := c.IndexOf(b)
	require.True(t, ok)

	aIdx, ok := c.IndexOf(a)
	require.True(t, ok)

	var found bool
	for i, src := range c.SourceIndex[bIdx] {
		if src == aIdx {
			assert.InDelta(t, 0.9, c.Weight[bIdx][i], 1e-9)
			found = true
		}
	}
	assert.True(t, found, "b's incoming buffer must contain a's base edge")
}

func TestToMarkovChain_ParallelEdgesNotMerged(t *testing.T) {
	a, err := address.NewNode("repo", "a")
	require.NoError(t, err)
	b, err := address.NewNode("repo", "b")
	require.NoError(t, err)
	e1, err := address.NewEdge("e1")
	require.NoError(t, err)
	e2, err := address.NewEdge("e2")
	require.NoError(t, err)

	weights := map[string]float64{e1.String(): 1, e2.String(): 1}
	edgeWeight := func(addr address.Address) (float64, float64, error) {
		return weights[addr.String()], 0, nil
	}
	g := contribgraph.NewInMemory(weight.ConstantNodeWeight(1), edgeWeight)
	require.NoError(t, g.AddNode(a, "a"))
	require.NoError(t, g.AddNode(b, "b"))
	require.NoError(t, g.AddEdge(e1, a, b, 0))
	require.NoError(t, g.AddEdge(e2, a, b, 0))

	got, err := mpg.New(g, mpg.FibrationOptions{}, mpg.SeedOptions{Alpha: 0.1})
	require.NoError(t, err)

	c, err := chain.ToMarkovChain(got)
	require.NoError(t, err)

	bIdx, _ := c.IndexOf(b)
	aIdx, _ := c.IndexOf(a)
	count := 0
	for _, src := range c.SourceIndex[bIdx] {
		if src == aIdx {
			count++
		}
	}
	assert.Equal(t, 2, count, "parallel edges must appear as two separate entries")
}

func TestToMarkovChain_ColumnStochasticMatrixHasOneRowPerNode(t *testing.T) {
	g := buildSmallGraph(t)
	c, err := chain.ToMarkovChain(g)
	require.NoError(t, err)

	m, err := c.ColumnStochasticMatrix(100)
	require.NoError(t, err)
	assert.Equal(t, c.Len(), m.RawMatrix().Rows)
}

func TestToMarkovChain_DenseCeilingRejectsOversizedChain(t *testing.T) {
	g := buildSmallGraph(t)
	c, err := chain.ToMarkovChain(g)
	require.NoError(t, err)

	_, err = c.ColumnStochasticMatrix(0)
	require.Error(t, err)
	var tooLarge *chain.ErrChainTooLargeForDense
	require.ErrorAs(t, err, &tooLarge)
}
