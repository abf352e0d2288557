// SPDX-License-Identifier: MIT
package contribgraph_test

import (
	"testing"

	"github.com/katalvlaran/credmpg/address"
	"github.com/katalvlaran/credmpg/contribgraph"
	"github.com/katalvlaran/credmpg/weight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixture() *contribgraph.InMemory {
	return contribgraph.NewInMemory(weight.ConstantNodeWeight(1), weight.ConstantEdgeWeight(1, 0))
}

func TestInMemory_AddNodeAndEdge(t *testing.T) {
	g := newFixture()
	a, _ := address.NewNode("a")
	b, _ := address.NewNode("b")
	e, _ := address.NewEdge("a", "b", "0")

	require.NoError(t, g.AddNode(a, "alice"))
	require.NoError(t, g.AddNode(b, "bob"))
	require.NoError(t, g.AddEdge(e, a, b, 0))

	nodes := g.Nodes()
	require.Len(t, nodes, 2)
	edges := g.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, a, edges[0].Src)
	assert.Equal(t, b, edges[0].Dst)
	assert.False(t, edges[0].Dangling)
}

func TestInMemory_DuplicateNodeRejected(t *testing.T) {
	g := newFixture()
	a, _ := address.NewNode("a")
	require.NoError(t, g.AddNode(a, ""))
	require.ErrorIs(t, g.AddNode(a, ""), contribgraph.ErrDuplicateNode)
}

func TestInMemory_UnknownEndpointRejectedUnlessDangling(t *testing.T) {
	g := newFixture()
	a, _ := address.NewNode("a")
	b, _ := address.NewNode("b")
	e1, _ := address.NewEdge("a", "b", "1")
	require.NoError(t, g.AddNode(a, ""))
	require.ErrorIs(t, g.AddEdge(e1, a, b, 0), contribgraph.ErrUnknownEndpoint)

	e2, _ := address.NewEdge("a", "b", "2")
	require.NoError(t, g.AddEdge(e2, a, b, 0, contribgraph.WithDangling()))
	require.Len(t, g.Edges(), 1)
	assert.True(t, g.Edges()[0].Dangling)
}

func TestNonDangling_FiltersInOrder(t *testing.T) {
	a, _ := address.NewNode("a")
	e1, _ := address.NewEdge("e1")
	e2, _ := address.NewEdge("e2")
	edges := []contribgraph.Edge{
		{Address: e1, Src: a, Dst: a},
		{Address: e2, Src: a, Dst: a, Dangling: true},
	}
	got := contribgraph.NonDangling(edges)
	require.Len(t, got, 1)
	assert.Equal(t, e1, got[0].Address)
}
