// SPDX-License-Identifier: MIT
// Package: credmpg/address
//
// errors.go — sentinel errors for the address algebra.
//
// Error policy (explicit and strict, matching lvlath's package conventions):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site.
package address

import "errors"

var (
	// ErrEmptyPart indicates that one of the supplied parts is the empty string.
	ErrEmptyPart = errors.New("address: part is empty")

	// ErrPartContainsSeparator indicates that a supplied part contains the
	// internal separator sentinel byte and cannot be composed safely.
	ErrPartContainsSeparator = errors.New("address: part contains reserved separator byte")

	// ErrEmptyAddress indicates that an address was constructed from zero parts.
	ErrEmptyAddress = errors.New("address: address has no parts")

	// ErrKindMismatch indicates NewMarkovEdge was given an address that is
	// not a KindEdge address.
	ErrKindMismatch = errors.New("address: mismatched address kinds")
)
