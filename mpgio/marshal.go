// SPDX-License-Identifier: MIT
// Package: credmpg/mpgio
//
// marshal.go — Marshal, spec §4.7/§6.2.
package mpgio

import (
	"encoding/json"

	"github.com/katalvlaran/credmpg/mpg"
)

// Marshal renders g as the self-describing JSON record of spec §6.2.
//
// Complexity: O(n + e).
func Marshal(g *mpg.MarkovProcessGraph) ([]byte, error) {
	nodes := g.Nodes()
	edges := g.Edges()
	scoring := g.ScoringAddresses()

	nodeMap := make(map[string]nodeWire, len(nodes))
	for _, n := range nodes {
		w := nodeWire{
			Address:     encodeAddress(n.Address),
			Description: n.Description,
			Mint:        n.Mint,
			Class:       n.Class.String(),
		}
		if n.Class == mpg.ClassEpoch {
			ownerWire := encodeAddress(n.Owner)
			w.Owner = &ownerWire
		}
		nodeMap[n.Address.String()] = w
	}

	edgeMap := make(map[string]edgeWire, len(edges))
	for _, e := range edges {
		edgeMap[e.Key.String()] = edgeWire{
			Address:               encodeAddress(e.Key.UnderlyingEdge()),
			Reversed:              e.Reversed,
			Src:                   encodeAddress(e.From),
			Dst:                   encodeAddress(e.To),
			TransitionProbability: e.Probability,
			Class:                 e.Class.String(),
		}
	}

	scoringWire := make([]addressWire, len(scoring))
	for i, a := range scoring {
		scoringWire[i] = encodeAddress(a)
	}

	env := envelope{
		Type:    recordType,
		Version: recordVersion,
		Payload: payload{
			Nodes:            nodeMap,
			Edges:            edgeMap,
			ScoringAddresses: scoringWire,
		},
	}
	return json.Marshal(env)
}
