// SPDX-License-Identifier: MIT
// Package: credmpg/address
//
// markov_edge.go — the derived MarkovEdge address kind: a direction tag
// ("F"/"B") prepended to the parts of an underlying KindEdge address, per
// spec §3/§4.1. This is what distinguishes the forward and backward halves
// of a bidirectional input edge once both are lifted into the MPG.
package address

// MarkovEdge pairs a Direction with the underlying edge Address it was
// lifted from. Its Address() is a KindMarkovEdge value used as the MPG
// edge's primary key component alongside the direction tag itself (the
// primary key of an MPG edge is (underlying edge address, direction) —
// Address() encodes exactly that pair as a single comparable value).
type MarkovEdge struct {
	dir  Direction
	edge Address
}

// NewMarkovEdge builds a MarkovEdge from a direction tag and the
// underlying edge address. edge must be a KindEdge address.
func NewMarkovEdge(dir Direction, edge Address) (MarkovEdge, error) {
	if edge.Kind() != KindEdge {
		return MarkovEdge{}, ErrKindMismatch
	}
	return MarkovEdge{dir: dir, edge: edge}, nil
}

// Direction returns the forward/backward tag.
func (m MarkovEdge) Direction() Direction {
	return m.dir
}

// UnderlyingEdge returns the original KindEdge address this MarkovEdge
// was derived from.
func (m MarkovEdge) UnderlyingEdge() Address {
	return m.edge
}

// Address materializes the KindMarkovEdge address: the direction tag
// followed by the underlying edge's parts.
//
// Complexity: O(n).
func (m MarkovEdge) Address() Address {
	parts := append([]string{m.dir.Tag()}, m.edge.Parts()...)
	// Construction cannot fail: m.edge's parts already passed validation
	// and the tag is one of the two known-good literals "F"/"B".
	a, _ := New(KindMarkovEdge, parts...)
	return a
}

// Equal reports whether two MarkovEdge values share direction and
// underlying edge address.
func (m MarkovEdge) Equal(other MarkovEdge) bool {
	return m.dir == other.dir && m.edge.Equal(other.edge)
}

// String returns a diagnostic form delegating to the materialized Address.
func (m MarkovEdge) String() string {
	return m.Address().String()
}
