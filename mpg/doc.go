// Package mpg implements the Markov Process Graph: the orchestrating
// construction described in spec §4.5, the node/edge data model of
// spec §3, and the read-only query surface of spec §4.8.
//
// A MarkovProcessGraph is built once, synchronously, from a
// contribgraph.Graph plus a small set of teleportation/fibration
// parameters (New), and is immutable thereafter. Its zero value is not
// meaningful; always obtain one from New or from mpgio.Unmarshal.
//
// Node/edge storage follows lvlath/core.Graph's convention of an
// RWMutex-guarded catalog with read-lock-then-copy query methods, even
// though a MarkovProcessGraph is never mutated after New returns: the
// lock exists so callers may safely share one *MarkovProcessGraph across
// goroutines for concurrent reads (spec §5). Construction writes the
// catalog without taking the lock; no reference to the graph leaves New
// before it returns.
package mpg
