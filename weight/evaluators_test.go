// SPDX-License-Identifier: MIT
package weight_test

import (
	"testing"

	"github.com/katalvlaran/credmpg/address"
	"github.com/katalvlaran/credmpg/weight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstantNodeWeight(t *testing.T) {
	fn := weight.ConstantNodeWeight(3.5)
	addr, _ := address.NewNode("anything")
	got, err := fn(addr)
	require.NoError(t, err)
	assert.Equal(t, 3.5, got)
}

func TestConstantNodeWeight_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { weight.ConstantNodeWeight(-1) })
}

func TestConstantEdgeWeight(t *testing.T) {
	fn := weight.ConstantEdgeWeight(2, 1)
	addr, _ := address.NewEdge("e")
	f, b, err := fn(addr)
	require.NoError(t, err)
	assert.Equal(t, 2.0, f)
	assert.Equal(t, 1.0, b)
}

func TestPrefixTableNodeWeight_FirstMatchWins(t *testing.T) {
	repoPrefix, _ := address.NewNode("repo")
	repoAlicePrefix, _ := address.NewNode("repo", "alice")
	fn := weight.PrefixTableNodeWeight([]weight.NodeWeightRule{
		{Prefix: repoPrefix, Weight: 1},
		{Prefix: repoAlicePrefix, Weight: 99},
	})

	alice, _ := address.NewNode("repo", "alice")
	got, err := fn(alice)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got, "declaration order wins even though a longer prefix also matches")

	unrelated, _ := address.NewNode("other")
	got, err = fn(unrelated)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestPrefixTableEdgeWeight_NoMatchIsZero(t *testing.T) {
	fn := weight.PrefixTableEdgeWeight(nil)
	addr, _ := address.NewEdge("x")
	f, b, err := fn(addr)
	require.NoError(t, err)
	assert.Zero(t, f)
	assert.Zero(t, b)
}

func TestPrefixTable_DefensiveCopy(t *testing.T) {
	rules := []weight.NodeWeightRule{}
	fn := weight.PrefixTableNodeWeight(rules)
	rules = append(rules, weight.NodeWeightRule{})
	addr, _ := address.NewNode("x")
	got, err := fn(addr)
	require.NoError(t, err)
	assert.Zero(t, got, "mutating caller's slice after construction must not affect the evaluator")
}
