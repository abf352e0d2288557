// SPDX-License-Identifier: MIT
// Package: credmpg/mpg
//
// restore.go — FromComponents, the trusted-payload counterpart to New.
package mpg

// FromComponents reconstructs a MarkovProcessGraph directly from
// already-decoded components, skipping every check New performs. It
// exists solely for mpgio.Unmarshal: spec §4.7 states "the deserializer
// trusts the payload" rather than re-running construction-time validation.
// Callers outside mpgio should prefer New.
func FromComponents(nodes []*Node, edges []*Edge, scoring []Address) *MarkovProcessGraph {
	g := newEmptyGraph()

	for _, n := range nodes {
		cp := *n
		key := cp.Address.String()
		g.nodes[key] = &cp
		g.nodeOrder = append(g.nodeOrder, cp.Address)
	}

	for _, e := range edges {
		cp := *e
		key := cp.Key.Address().String()
		g.edges[key] = &cp
		g.edgeOrder = append(g.edgeOrder, cp.Key)
		g.outgoing[cp.From.String()] = append(g.outgoing[cp.From.String()], &cp)
		g.incoming[cp.To.String()] = append(g.incoming[cp.To.String()], &cp)
	}

	g.scoring = append([]Address{}, scoring...)
	return g
}
