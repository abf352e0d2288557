// SPDX-License-Identifier: MIT
// Package: credmpg/mpg
//
// query.go — the read-only query surface of spec §4.8: lookup by
// address, iterate nodes (optionally by prefix), iterate edges, iterate
// incoming edges of a node, and fetch the scoring set. Every method
// acquires a read lock, copies what it returns, and releases the lock
// before returning — callers never observe internal slices/maps directly.
package mpg

// Node returns the node at addr, or (nil, false) if none exists.
//
// Complexity: O(1).
func (g *MarkovProcessGraph) Node(addr Address) (*Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[addr.String()]
	if !ok {
		return nil, false
	}
	cp := *n
	return &cp, true
}

// Nodes returns every node, in insertion order, optionally
// filtered to those matching any of the given prefixes. No prefixes means
// no filtering.
//
// Complexity: O(n * p) where p = len(prefixes).
func (g *MarkovProcessGraph) Nodes(prefixes ...Address) []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Node, 0, len(g.nodeOrder))
	for _, addr := range g.nodeOrder {
		if len(prefixes) > 0 && !matchesAny(addr, prefixes) {
			continue
		}
		n := *g.nodes[addr.String()]
		out = append(out, &n)
	}
	return out
}

func matchesAny(addr Address, prefixes []Address) bool {
	for _, p := range prefixes {
		if addr.HasPrefix(p) {
			return true
		}
	}
	return false
}

// Edges returns every edge in the graph, in emission order.
//
// Complexity: O(e).
func (g *MarkovProcessGraph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edgeOrder))
	for _, key := range g.edgeOrder {
		e := *g.edges[key.Address().String()]
		out = append(out, &e)
	}
	return out
}

// IncomingEdges returns every edge whose To equals addr.
//
// Complexity: O(deg_in(addr)).
func (g *MarkovProcessGraph) IncomingEdges(addr Address) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	src := g.incoming[addr.String()]
	out := make([]*Edge, len(src))
	for i, e := range src {
		cp := *e
		out[i] = &cp
	}
	return out
}

// OutgoingEdges returns every edge whose From equals addr.
//
// Complexity: O(deg_out(addr)).
func (g *MarkovProcessGraph) OutgoingEdges(addr Address) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	src := g.outgoing[addr.String()]
	out := make([]*Edge, len(src))
	for i, e := range src {
		cp := *e
		out[i] = &cp
	}
	return out
}

// ScoringAddresses returns the scoring-address set determined by the
// Fibration Planner during construction, in canonical order.
//
// Complexity: O(s).
func (g *MarkovProcessGraph) ScoringAddresses() []Address {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Address, len(g.scoring))
	copy(out, g.scoring)
	return out
}
