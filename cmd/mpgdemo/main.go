// Command mpgdemo builds a small contribution graph, fibrates it into a
// Markov Process Graph, and prints the resulting transition chain.
//
// Scenario: two contributors, Alice and Bob, both scoring identities.
// Alice authored a commit that Bob reviewed; the review edge carries
// weight in both directions since a review is itself a contribution.
//
// Complexity: O(n + e) in the size of the fixture graph below.
package main

import (
	"fmt"
	"log"

	"github.com/katalvlaran/credmpg/address"
	"github.com/katalvlaran/credmpg/chain"
	"github.com/katalvlaran/credmpg/contribgraph"
	"github.com/katalvlaran/credmpg/mpg"
	"github.com/katalvlaran/credmpg/weight"
)

func main() {
	alice, err := address.NewNode("repo", "user", "alice")
	if err != nil {
		log.Fatalf("address: %v", err)
	}
	bob, err := address.NewNode("repo", "user", "bob")
	if err != nil {
		log.Fatalf("address: %v", err)
	}
	commit, err := address.NewNode("repo", "commit", "c1")
	if err != nil {
		log.Fatalf("address: %v", err)
	}

	authorship, err := address.NewEdge("repo", "authors", "c1")
	if err != nil {
		log.Fatalf("address: %v", err)
	}
	review, err := address.NewEdge("repo", "reviews", "c1")
	if err != nil {
		log.Fatalf("address: %v", err)
	}

	nodeWeight := weight.PrefixTableNodeWeight([]weight.NodeWeightRule{
		{Prefix: commit, Weight: 1},
	})
	edgeWeight := weight.PrefixTableEdgeWeight([]weight.EdgeWeightRule{
		{Prefix: authorship, Forward: 1, Backward: 0},
		{Prefix: review, Forward: 0.5, Backward: 0.5},
	})

	g := contribgraph.NewInMemory(nodeWeight, edgeWeight)
	must(g.AddNode(alice, "Alice"))
	must(g.AddNode(bob, "Bob"))
	must(g.AddNode(commit, "commit c1"))
	must(g.AddEdge(authorship, alice, commit, 1_700_000_000_000))
	must(g.AddEdge(review, bob, commit, 1_700_000_500_000))

	built, err := mpg.New(g, mpg.FibrationOptions{
		ScoringPrefixes: []address.Address{alice, bob},
		Beta:            0.15,
		GammaForward:    0.05,
		GammaBackward:   0.05,
	}, mpg.SeedOptions{Alpha: 0.1})
	if err != nil {
		log.Fatalf("mpg.New: %v", err)
	}

	fmt.Printf("constructed MPG: %d nodes, %d edges, %d scoring addresses\n",
		len(built.Nodes()), len(built.Edges()), len(built.ScoringAddresses()))

	c, err := chain.ToMarkovChain(built)
	if err != nil {
		log.Fatalf("chain.ToMarkovChain: %v", err)
	}

	for i, addr := range c.NodeOrder {
		fmt.Printf("[%2d] %s <- %d incoming edge(s)\n", i, addr, len(c.SourceIndex[i]))
	}

	m, err := c.ColumnStochasticMatrix(64)
	if err != nil {
		log.Fatalf("chain.ColumnStochasticMatrix: %v", err)
	}
	rows, cols := m.Dims()
	fmt.Printf("dense transition matrix: %d x %d\n", rows, cols)
}

func must(err error) {
	if err != nil {
		log.Fatalf("fixture setup: %v", err)
	}
}
