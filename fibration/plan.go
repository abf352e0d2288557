// SPDX-License-Identifier: MIT
// Package: credmpg/fibration
//
// plan.go — the single deterministic planning pass (spec §4.4).
//
// Implementation notes:
//   - Stage 1 (Scoring set): a node address is scoring iff it has any of
//     the supplied prefixes (HasPrefix, one comparison per prefix).
//   - Stage 2 (Boundaries): computed once, globally, over every
//     non-dangling edge timestamp — shared by every scoring address.
//   - Stage 3 (Order): scoring addresses are sorted via address.Compare so
//     that planning (and therefore MPG construction) is independent of
//     the input graph's node iteration order.
package fibration

import (
	"sort"

	"github.com/katalvlaran/credmpg/address"
	"github.com/katalvlaran/credmpg/contribgraph"
	"github.com/katalvlaran/credmpg/epochgrid"
)

// New plans the scoring-address set and shared boundary grid for a
// contribution graph, given a list of scoring-address prefixes.
//
// Complexity: O(V*P + S log S + E + K) where V = |nodes|,
// P = |scoringPrefixes|, S = |scoring addresses| (the only sort),
// E = |edges| (one min/max scan for the boundaries) and K = number of
// boundaries generated.
func New(nodes []contribgraph.Node, edges []contribgraph.Edge, scoringPrefixes []address.Address) *Plan {
	scoring := make([]address.Address, 0, len(nodes))
	for _, n := range nodes {
		for _, prefix := range scoringPrefixes {
			if n.Address.HasPrefix(prefix) {
				scoring = append(scoring, n.Address)
				break
			}
		}
	}
	sort.Slice(scoring, func(i, j int) bool {
		return scoring[i].Compare(scoring[j]) < 0
	})

	timestamps := make([]int64, 0, len(edges))
	for _, e := range contribgraph.NonDangling(edges) {
		timestamps = append(timestamps, e.TimestampMs)
	}

	return &Plan{
		ScoringAddresses: scoring,
		Boundaries:       epochgrid.Boundaries(timestamps),
	}
}

// IsScoring reports whether addr appears in the plan's scoring set.
//
// Complexity: O(log n) via binary search over the sorted set.
func (p *Plan) IsScoring(addr address.Address) bool {
	i := sort.Search(len(p.ScoringAddresses), func(i int) bool {
		return p.ScoringAddresses[i].Compare(addr) >= 0
	})
	return i < len(p.ScoringAddresses) && p.ScoringAddresses[i].Equal(addr)
}
