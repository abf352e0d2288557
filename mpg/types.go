package mpg

import (
	"sync"

	"github.com/katalvlaran/credmpg/address"
)

// Address re-exports address.Address so callers rarely need to import
// both packages just to hold a value. MarkovEdgeAddress does the same for
// the derived direction-tagged edge address.
type Address = address.Address

// MarkovEdgeAddress re-exports address.MarkovEdge.
type MarkovEdgeAddress = address.MarkovEdge

// NodeClass classifies an MPG node per spec §3's node-class table.
type NodeClass uint8

const (
	// ClassSeed is the single sentinel seed node.
	ClassSeed NodeClass = iota
	// ClassBase is one per input graph node.
	ClassBase
	// ClassEpoch is one per (scoring node, boundary) pair.
	ClassEpoch
)

// String returns a short diagnostic label.
func (c NodeClass) String() string {
	switch c {
	case ClassSeed:
		return "seed"
	case ClassBase:
		return "base"
	case ClassEpoch:
		return "epoch"
	default:
		return "unknown"
	}
}

// Node is the tuple (address, description, mint) of spec §3, tagged with
// its NodeClass and, for epoch nodes, the owning scoring address.
type Node struct {
	Address     address.Address
	Description string
	Mint        float64
	Class       NodeClass

	// Owner is set only for ClassEpoch nodes: the scoring address this
	// epoch was fibrated from.
	Owner address.Address
}

// EdgeClass classifies an MPG edge per spec §3's edge-class table.
type EdgeClass uint8

const (
	// ClassBaseEdge is lifted from one direction of an input edge.
	ClassBaseEdge EdgeClass = iota
	// ClassRadiation closes a node's outgoing mass back to the seed.
	ClassRadiation
	// ClassMinting distributes the seed's mass to minted nodes.
	ClassMinting
	// ClassPayout routes an epoch node's mass to its owning scoring node.
	ClassPayout
	// ClassWebbingForward links an epoch to the next epoch of the same owner.
	ClassWebbingForward
	// ClassWebbingBackward links an epoch to the previous epoch of the same owner.
	ClassWebbingBackward
)

// String returns a short diagnostic label.
func (c EdgeClass) String() string {
	switch c {
	case ClassBaseEdge:
		return "base"
	case ClassRadiation:
		return "radiation"
	case ClassMinting:
		return "minting"
	case ClassPayout:
		return "payout"
	case ClassWebbingForward:
		return "webbing-forward"
	case ClassWebbingBackward:
		return "webbing-backward"
	default:
		return "unknown"
	}
}

// Edge is a single directed MPG transition. Key is the edge's primary key
// (underlying edge address + direction tag, spec §3): parallel input
// edges yield parallel MPG edges with distinct Keys and must never be
// collapsed.
type Edge struct {
	Key         address.MarkovEdge
	From, To    address.Address
	Probability float64
	Class       EdgeClass
	Reversed    bool
}

// MarkovProcessGraph is the immutable result of New. See doc.go for the
// concurrency model.
type MarkovProcessGraph struct {
	mu sync.RWMutex

	nodeOrder []address.Address
	nodes     map[string]*Node

	edgeOrder []address.MarkovEdge
	edges     map[string]*Edge

	outgoing map[string][]*Edge
	incoming map[string][]*Edge

	scoring []address.Address
}

func newEmptyGraph() *MarkovProcessGraph {
	return &MarkovProcessGraph{
		nodes:    make(map[string]*Node),
		edges:    make(map[string]*Edge),
		outgoing: make(map[string][]*Edge),
		incoming: make(map[string][]*Edge),
	}
}
