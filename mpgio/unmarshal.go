// SPDX-License-Identifier: MIT
// Package: credmpg/mpgio
//
// unmarshal.go — Unmarshal, spec §4.7/§6.2. Rejects an unrecognized type
// or version tag; otherwise trusts the payload and reconstructs the graph
// via mpg.FromComponents without re-validating any invariant.
package mpgio

import (
	"encoding/json"

	"github.com/katalvlaran/credmpg/address"
	"github.com/katalvlaran/credmpg/mpg"
)

// Unmarshal parses a record produced by Marshal (or an equivalent
// hand-built payload) back into a MarkovProcessGraph.
//
// Complexity: O(n + e).
func Unmarshal(data []byte) (*mpg.MarkovProcessGraph, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}

	if env.Type != recordType {
		return nil, &mpg.Error{Kind: mpg.KindConfiguration, Sentinel: mpg.ErrUnknownSerializationVersion, Offending: env.Type}
	}
	if env.Version != recordVersion {
		return nil, &mpg.Error{Kind: mpg.KindConfiguration, Sentinel: mpg.ErrUnknownSerializationVersion, Offending: env.Version}
	}

	nodes := make([]*mpg.Node, 0, len(env.Payload.Nodes))
	for _, nw := range env.Payload.Nodes {
		addr, err := decodeAddress(nw.Address)
		if err != nil {
			return nil, err
		}
		class, err := decodeNodeClass(nw.Class)
		if err != nil {
			return nil, err
		}
		n := &mpg.Node{Address: addr, Description: nw.Description, Mint: nw.Mint, Class: class}
		if nw.Owner != nil {
			owner, err := decodeAddress(*nw.Owner)
			if err != nil {
				return nil, err
			}
			n.Owner = owner
		}
		nodes = append(nodes, n)
	}

	edges := make([]*mpg.Edge, 0, len(env.Payload.Edges))
	for _, ew := range env.Payload.Edges {
		underlying, err := decodeAddress(ew.Address)
		if err != nil {
			return nil, err
		}
		src, err := decodeAddress(ew.Src)
		if err != nil {
			return nil, err
		}
		dst, err := decodeAddress(ew.Dst)
		if err != nil {
			return nil, err
		}
		class, err := decodeEdgeClass(ew.Class)
		if err != nil {
			return nil, err
		}

		dir := address.Forward
		if ew.Reversed {
			dir = address.Backward
		}
		key, err := address.NewMarkovEdge(dir, underlying)
		if err != nil {
			return nil, err
		}

		edges = append(edges, &mpg.Edge{
			Key:         key,
			From:        src,
			To:          dst,
			Probability: ew.TransitionProbability,
			Class:       class,
			Reversed:    ew.Reversed,
		})
	}

	scoring := make([]address.Address, 0, len(env.Payload.ScoringAddresses))
	for _, sw := range env.Payload.ScoringAddresses {
		addr, err := decodeAddress(sw)
		if err != nil {
			return nil, err
		}
		scoring = append(scoring, addr)
	}

	return mpg.FromComponents(nodes, edges, scoring), nil
}
