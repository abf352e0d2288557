// SPDX-License-Identifier: MIT
// Package: credmpg/contribgraph
//
// in_memory.go — InMemory, a mutable reference Graph implementation.
//
// Concurrency model (mirrors lvlath/core.Graph): a single sync.RWMutex
// guards both catalogs since node/edge mutation and the eventual Nodes()/
// Edges() snapshots are cheap and infrequent relative to MPG construction
// itself; lvlath's two-mutex split (muVert vs muEdgeAdj) exists there to
// reduce contention across concurrent AddVertex/AddEdge callers, a
// scenario this fixture-building type does not need to optimize for.
package contribgraph

import (
	"sort"
	"sync"

	"github.com/katalvlaran/credmpg/address"
	"github.com/katalvlaran/credmpg/weight"
)

// InMemory is a mutable-until-consumed contribgraph.Graph. Build it with
// NewInMemory, populate it with AddNode/AddEdge, then hand it to
// mpg.New — nothing in this package stops further mutation afterward, but
// mpg.New takes a snapshot at the start of construction and does not
// observe later changes.
type InMemory struct {
	mu sync.RWMutex

	nodeWeight weight.NodeWeightFn
	edgeWeight weight.EdgeWeightFn

	nodeOrder []address.Address
	nodes     map[string]Node

	edgeOrder []address.Address
	edges     map[string]Edge
}

// EdgeOption configures an individual AddEdge call.
type EdgeOption func(*Edge)

// WithDangling marks the edge as dangling: its endpoints are not required
// to have been added via AddNode, and the MPG Builder must exclude it
// from construction (spec §4.5 step 1/step 6).
func WithDangling() EdgeOption {
	return func(e *Edge) { e.Dangling = true }
}

// NewInMemory constructs an empty graph using the given weight evaluators.
func NewInMemory(nodeWeight weight.NodeWeightFn, edgeWeight weight.EdgeWeightFn) *InMemory {
	return &InMemory{
		nodeWeight: nodeWeight,
		edgeWeight: edgeWeight,
		nodes:      make(map[string]Node),
		edges:      make(map[string]Edge),
	}
}

// AddNode registers a node. Returns ErrDuplicateNode if addr was already
// added.
//
// Complexity: O(1) amortized.
func (g *InMemory) AddNode(addr address.Address, description string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := addr.String()
	if _, exists := g.nodes[key]; exists {
		return ErrDuplicateNode
	}
	g.nodes[key] = Node{Address: addr, Description: description}
	g.nodeOrder = append(g.nodeOrder, addr)
	return nil
}

// AddEdge registers an edge. Unless WithDangling is passed, both src and
// dst must already have been added via AddNode.
//
// Complexity: O(1) amortized.
func (g *InMemory) AddEdge(addr, src, dst address.Address, timestampMs int64, opts ...EdgeOption) error {
	e := Edge{Address: addr, Src: src, Dst: dst, TimestampMs: timestampMs}
	for _, opt := range opts {
		opt(&e)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	key := addr.String()
	if _, exists := g.edges[key]; exists {
		return ErrDuplicateEdge
	}

	if !e.Dangling {
		if _, ok := g.nodes[src.String()]; !ok {
			return ErrUnknownEndpoint
		}
		if _, ok := g.nodes[dst.String()]; !ok {
			return ErrUnknownEndpoint
		}
	}

	g.edges[key] = e
	g.edgeOrder = append(g.edgeOrder, addr)
	return nil
}

// Nodes returns every registered node in insertion order.
//
// Complexity: O(n).
func (g *InMemory) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, len(g.nodeOrder))
	for _, addr := range g.nodeOrder {
		out = append(out, g.nodes[addr.String()])
	}
	return out
}

// Edges returns every registered edge (including dangling ones) in
// insertion order.
//
// Complexity: O(n).
func (g *InMemory) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edgeOrder))
	for _, addr := range g.edgeOrder {
		out = append(out, g.edges[addr.String()])
	}
	return out
}

// NodeWeight returns the configured NodeWeightFn.
func (g *InMemory) NodeWeight() weight.NodeWeightFn {
	return g.nodeWeight
}

// EdgeWeight returns the configured EdgeWeightFn.
func (g *InMemory) EdgeWeight() weight.EdgeWeightFn {
	return g.edgeWeight
}

// sortedAddressStrings returns the String() forms of addrs, sorted. It has
// no caller in the module; production code paths use address.Compare
// directly rather than the string form.
func sortedAddressStrings(addrs []address.Address) []string {
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = a.String()
	}
	sort.Strings(out)
	return out
}
