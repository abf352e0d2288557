// SPDX-License-Identifier: MIT
package address_test

import (
	"testing"

	"github.com/katalvlaran/credmpg/address"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsEmpty(t *testing.T) {
	_, err := address.NewNode()
	require.ErrorIs(t, err, address.ErrEmptyAddress)

	_, err = address.NewNode("a", "")
	require.ErrorIs(t, err, address.ErrEmptyPart)
}

func TestNew_RejectsSeparatorByte(t *testing.T) {
	_, err := address.NewNode("a\x1fb")
	require.ErrorIs(t, err, address.ErrPartContainsSeparator)
}

func TestAppend_PreservesKindAndOrder(t *testing.T) {
	a, err := address.NewNode("sourcecred", "core")
	require.NoError(t, err)

	b, err := a.Append("SEED")
	require.NoError(t, err)

	assert.Equal(t, []string{"sourcecred", "core", "SEED"}, b.Parts())
	assert.Equal(t, address.KindNode, b.Kind())
	// receiver is untouched
	assert.Equal(t, []string{"sourcecred", "core"}, a.Parts())
}

func TestHasPrefix(t *testing.T) {
	base, _ := address.NewNode("sourcecred", "core")
	seed, _ := base.Append("SEED")

	assert.True(t, seed.HasPrefix(base))
	assert.False(t, base.HasPrefix(seed))
	assert.True(t, seed.HasPrefix(seed))

	edgeBase, _ := address.NewEdge("sourcecred", "core")
	assert.False(t, seed.HasPrefix(edgeBase), "different kinds never share a prefix")
}

func TestEqual_KindMatters(t *testing.T) {
	nodeA, _ := address.NewNode("x", "y")
	edgeA, _ := address.NewEdge("x", "y")
	assert.False(t, nodeA.Equal(edgeA))
	assert.True(t, nodeA.Equal(nodeA))
}

func TestCompare_TotalOrder(t *testing.T) {
	a, _ := address.NewNode("a")
	ab, _ := a.Append("b")
	b, _ := address.NewNode("b")
	edgeA, _ := address.NewEdge("a")

	assert.Equal(t, -1, a.Compare(ab), "prefix sorts before its extension")
	assert.Equal(t, 1, ab.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Negative(t, a.Compare(b))
	assert.NotZero(t, a.Compare(edgeA), "different kinds never compare equal")
}

func TestPartsRoundTrip_Identity(t *testing.T) {
	parts := []string{"sourcecred", "core", "EPOCH", "1700000000000", "alice"}
	a, err := address.NewNode(parts...)
	require.NoError(t, err)
	assert.Equal(t, parts, a.Parts())

	// mutating the returned slice must not affect the address
	got := a.Parts()
	got[0] = "mutated"
	assert.Equal(t, "sourcecred", a.Parts()[0])
}

func TestMarkovEdge_AddressComposition(t *testing.T) {
	edge, err := address.NewEdge("repo", "pull", "42")
	require.NoError(t, err)

	fwd, err := address.NewMarkovEdge(address.Forward, edge)
	require.NoError(t, err)
	bwd, err := address.NewMarkovEdge(address.Backward, edge)
	require.NoError(t, err)

	assert.Equal(t, []string{"F", "repo", "pull", "42"}, fwd.Address().Parts())
	assert.Equal(t, []string{"B", "repo", "pull", "42"}, bwd.Address().Parts())
	assert.False(t, fwd.Address().Equal(bwd.Address()))
	assert.Equal(t, address.KindMarkovEdge, fwd.Address().Kind())
	assert.NotEqual(t, edge.Kind(), fwd.Address().Kind())
}

func TestMarkovEdge_RejectsNonEdgeAddress(t *testing.T) {
	node, _ := address.NewNode("x")
	_, err := address.NewMarkovEdge(address.Forward, node)
	require.ErrorIs(t, err, address.ErrKindMismatch)
}

func TestMustNew_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() {
		address.MustNew(address.KindNode)
	})
}
