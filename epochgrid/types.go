package epochgrid

import "math"

// Kind classifies a Boundary as one of the two open sentinels or a
// concrete, week-aligned millisecond timestamp.
type Kind uint8

const (
	// NegInf is the implicit lower sentinel, always boundaries[0].
	NegInf Kind = iota
	// Finite is a concrete week-start boundary in Unix milliseconds.
	Finite
	// PosInf is the implicit upper sentinel, always the last boundary.
	PosInf
)

// Boundary is one element of the partition produced by Boundaries.
type Boundary struct {
	Kind Kind
	// MillisUTC is meaningful only when Kind == Finite.
	MillisUTC int64
}

// negInfBoundary and posInfBoundary are the two open sentinels shared by
// every partition; they carry no timestamp payload.
var (
	negInfBoundary = Boundary{Kind: NegInf}
	posInfBoundary = Boundary{Kind: PosInf}
)

// LessEqual reports whether the boundary is <= t under the natural
// extension of ordering to ±∞.
func (b Boundary) LessEqual(t int64) bool {
	switch b.Kind {
	case NegInf:
		return true
	case PosInf:
		return false
	default:
		return b.MillisUTC <= t
	}
}

// value returns a comparable int64 for sorting purposes, using math.MinInt64
// / math.MaxInt64 as the sentinel stand-ins. Not exported: callers should
// use LessEqual/Kind, never assume a numeric encoding for the sentinels.
func (b Boundary) value() int64 {
	switch b.Kind {
	case NegInf:
		return math.MinInt64
	case PosInf:
		return math.MaxInt64
	default:
		return b.MillisUTC
	}
}
