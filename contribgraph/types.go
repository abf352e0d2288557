package contribgraph

import (
	"github.com/katalvlaran/credmpg/address"
	"github.com/katalvlaran/credmpg/weight"
)

// Node is a single contribution-graph node: an address and a
// human-readable description carried through into the MPG's base node
// (spec §3).
type Node struct {
	Address     address.Address
	Description string
}

// Edge is a single, bidirectional-capable contribution-graph edge. Src and
// Dst define the input orientation; the MPG Builder derives both a
// forward (Src->Dst) and a backward (Dst->Src) candidate from it (spec
// §4.5 step 6). Dangling edges reference an endpoint the caller could not
// resolve and must be excluded from construction (spec §4.5 step 1/step 6).
type Edge struct {
	Address     address.Address
	Src, Dst    address.Address
	TimestampMs int64
	Dangling    bool
}

// Graph is the interface the MPG Builder consumes. Implementations must
// return a stable, finite view for the duration of a single New() call;
// credmpg never mutates a Graph it is given.
type Graph interface {
	// Nodes returns every node in the contribution graph.
	Nodes() []Node

	// Edges returns every edge, including any flagged Dangling. Callers
	// that need only routable edges should filter with NonDangling.
	Edges() []Edge

	// NodeWeight returns the pure evaluator used to derive each base
	// node's mint (spec §4.3).
	NodeWeight() weight.NodeWeightFn

	// EdgeWeight returns the pure evaluator used to derive each edge's
	// (forward, backward) weight pair (spec §4.3).
	EdgeWeight() weight.EdgeWeightFn
}

// NonDangling filters out edges flagged Dangling, preserving order.
//
// Complexity: O(n).
func NonDangling(edges []Edge) []Edge {
	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if !e.Dangling {
			out = append(out, e)
		}
	}
	return out
}
