// SPDX-License-Identifier: MIT
package weight

import "errors"

var (
	// ErrNegativeWeight indicates a combinator was asked to produce a
	// constant weight below zero; construction-time validation panics on
	// this (programmer error, mirroring lvlath's WithX option panics),
	// this sentinel exists for callers that prefer error returns when
	// building rule tables programmatically.
	ErrNegativeWeight = errors.New("weight: negative weight")
)
