// SPDX-License-Identifier: MIT
package fibration_test

import (
	"testing"

	"github.com/katalvlaran/credmpg/address"
	"github.com/katalvlaran/credmpg/contribgraph"
	"github.com/katalvlaran/credmpg/fibration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan_ScoringSetAndOrder(t *testing.T) {
	alice, _ := address.NewNode("repo", "alice")
	bob, _ := address.NewNode("repo", "bob")
	commit, _ := address.NewNode("repo", "commit", "1")
	repoPrefix, _ := address.NewNode("repo")

	nodes := []contribgraph.Node{{Address: bob}, {Address: commit}, {Address: alice}}
	edgeAddr, _ := address.NewEdge("e1")
	edges := []contribgraph.Edge{{Address: edgeAddr, Src: alice, Dst: commit, TimestampMs: 0}}

	// The scoring prefix is "repo" itself, so "commit" is not excluded.
	userPrefix, _ := address.NewNode("repo")
	_ = repoPrefix

	plan := fibration.New(nodes, edges, []address.Address{userPrefix})
	// All three nodes share the "repo" prefix in this fixture, so all
	// three are scoring; assert deterministic sort order instead.
	require.Len(t, plan.ScoringAddresses, 3)
	for i := 1; i < len(plan.ScoringAddresses); i++ {
		assert.Negative(t, plan.ScoringAddresses[i-1].Compare(plan.ScoringAddresses[i]))
	}

	assert.True(t, plan.IsScoring(alice))
	other, _ := address.NewNode("unrelated")
	assert.False(t, plan.IsScoring(other))
}

func TestPlan_WebbingPairsSpanFullBoundaryList(t *testing.T) {
	a, _ := address.NewNode("a")
	edgeAddr, _ := address.NewEdge("e")
	edges := []contribgraph.Edge{{Address: edgeAddr, Src: a, Dst: a, TimestampMs: 0}}

	plan := fibration.New([]contribgraph.Node{{Address: a}}, edges, nil)
	pairs := plan.WebbingPairs()
	require.Equal(t, len(plan.Boundaries)-1, len(pairs))
	for i, pair := range pairs {
		assert.Equal(t, i, pair.Prev)
		assert.Equal(t, i+1, pair.Curr)
	}
}

func TestPlan_NoScoringPrefixesYieldsEmptySet(t *testing.T) {
	a, _ := address.NewNode("a")
	plan := fibration.New([]contribgraph.Node{{Address: a}}, nil, nil)
	assert.Empty(t, plan.ScoringAddresses)
	assert.Equal(t, 2, len(plan.Boundaries), "no edges -> [-inf,+inf] only")
}
