// SPDX-License-Identifier: MIT
package contribgraph

import "errors"

var (
	// ErrDuplicateNode indicates AddNode was called twice for the same address.
	ErrDuplicateNode = errors.New("contribgraph: duplicate node address")

	// ErrDuplicateEdge indicates AddEdge was called twice for the same address.
	ErrDuplicateEdge = errors.New("contribgraph: duplicate edge address")

	// ErrUnknownEndpoint indicates an edge references a node address that
	// was never added and was not explicitly marked WithDangling.
	ErrUnknownEndpoint = errors.New("contribgraph: edge endpoint not found")
)
