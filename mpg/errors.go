// SPDX-License-Identifier: MIT
// Package: credmpg/mpg
//
// errors.go — the four-kind error taxonomy of spec §7, following
// lvlath/matrix's unified-sentinel-set-with-priority pattern: a single
// exported Error carries a Kind plus the offending address/value in
// string form, and package-level sentinels let callers branch with
// errors.Is while errors.As still recovers the structured Kind/Offending.
//
// ERROR PRIORITY (checked in this order at each validation site):
// configuration -> input -> invariant -> lookup, matching the order
// spec §4.5's pre-checks and construction steps run in.
package mpg

import (
	"errors"
	"fmt"
)

// Kind classifies an Error per spec §7.
type Kind uint8

const (
	// KindConfiguration marks a bad construction-time parameter: negative
	// or over-unit teleportation shares, unknown serialization version.
	KindConfiguration Kind = iota
	// KindInput marks bad data from the contribution graph: a reserved-
	// prefix node address, a non-finite or negative weight.
	KindInput
	// KindInvariant marks a violated structural invariant: duplicate
	// address, out-of-range probability, non-stochastic node, zero total
	// mint.
	KindInvariant
	// KindLookup marks an edge referencing an address the emitter cannot
	// resolve to a node index.
	KindLookup
)

// String returns a short diagnostic label.
func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindInput:
		return "input"
	case KindInvariant:
		return "invariant"
	case KindLookup:
		return "lookup"
	default:
		return "unknown"
	}
}

// Error is the single error type mpg (and chain, and mpgio) return for
// every fatal condition in spec §7. Offending carries the address or
// value implicated, already rendered to string.
type Error struct {
	Kind      Kind
	Offending string
	Sentinel  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("mpg: %s: %s (%s)", e.Kind, e.Sentinel, e.Offending)
}

// Unwrap exposes the underlying sentinel so errors.Is(err, ErrX) works
// against a wrapping *Error.
func (e *Error) Unwrap() error {
	return e.Sentinel
}

func newError(kind Kind, sentinel error, offending string) *Error {
	return &Error{Kind: kind, Offending: offending, Sentinel: sentinel}
}

// Sentinels. Check with errors.Is(err, mpg.ErrX); recover structure with
// `var e *mpg.Error; errors.As(err, &e)`.
var (
	// ErrTeleportationOutOfRange: α+β+γf+γb is negative or exceeds 1, or
	// any single parameter is negative.
	ErrTeleportationOutOfRange = errors.New("mpg: teleportation parameters out of range")

	// ErrUnknownSerializationVersion: mpgio.Unmarshal saw an unrecognized version tag.
	ErrUnknownSerializationVersion = errors.New("mpg: unknown serialization version")

	// ErrReservedAddress: an input node's address carries the reserved core prefix.
	ErrReservedAddress = errors.New("mpg: node address uses reserved core prefix")

	// ErrInvalidWeight: a node or edge weight was non-finite or negative.
	ErrInvalidWeight = errors.New("mpg: invalid weight")

	// ErrDuplicateNode: two nodes were emitted with the same address.
	ErrDuplicateNode = errors.New("mpg: duplicate node address")

	// ErrDuplicateEdge: two edges were emitted with the same primary key.
	ErrDuplicateEdge = errors.New("mpg: duplicate edge address")

	// ErrProbabilityOutOfRange: an emitted probability fell outside [0,1]
	// (beyond floating-point slack).
	ErrProbabilityOutOfRange = errors.New("mpg: probability out of range")

	// ErrNonStochasticNode: a node's outgoing probabilities did not sum to
	// 1 within StochasticTolerance.
	ErrNonStochasticNode = errors.New("mpg: node is not stochastic")

	// ErrZeroTotalMint: total mint across all nodes was <= 0.
	ErrZeroTotalMint = errors.New("mpg: zero total mint")

	// ErrUnknownSourceAddress: the Chain Emitter encountered an edge whose
	// source address is not a known node.
	ErrUnknownSourceAddress = errors.New("mpg: unknown source address")
)
