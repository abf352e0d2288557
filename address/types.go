package address

// Kind tags which disjoint namespace an Address belongs to. Two addresses
// built from identical parts but different Kinds are never equal and never
// compare as the same element under Compare.
type Kind uint8

const (
	// KindNode identifies node addresses (base nodes, the seed node, epoch nodes).
	KindNode Kind = iota

	// KindEdge identifies underlying (bidirectional) edge addresses.
	KindEdge

	// KindMarkovEdge identifies the derived markov-edge namespace: a
	// direction tag prepended to the parts of a KindEdge address. This is
	// a third, independent namespace — a MarkovEdge address never equals
	// a KindEdge or KindNode address even for identical trailing parts.
	KindMarkovEdge
)

// String returns a short diagnostic label for the Kind.
func (k Kind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindEdge:
		return "edge"
	case KindMarkovEdge:
		return "markov-edge"
	default:
		return "unknown"
	}
}

// Direction distinguishes the two halves of a bidirectional edge lifted
// into the Markov Process Graph namespace.
type Direction uint8

const (
	// Forward corresponds to the "F" tag (reversed=false): src -> dst.
	Forward Direction = iota

	// Backward corresponds to the "B" tag (reversed=true): dst -> src.
	Backward
)

// Tag returns the single-character direction tag used when composing a
// MarkovEdge address, per spec: "F" forward / "B" backward.
func (d Direction) Tag() string {
	if d == Backward {
		return "B"
	}
	return "F"
}

// Reversed reports whether this direction represents the reversed
// (backward) half of a bidirectional edge.
func (d Direction) Reversed() bool {
	return d == Backward
}

// separator is the internal sentinel used only for the canonical String()
// form; it never appears in a valid part (New rejects parts containing it)
// and is escaped defensively so String() round-trips are unambiguous even
// if that invariant is ever relaxed.
const separator = '\x1f'

const escapeRune = '\\'
