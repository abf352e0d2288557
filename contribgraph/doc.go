// Package contribgraph supplies the concrete weighted-graph input contract
// that the MPG Builder consumes (spec §6.1). spec.md treats this data
// model as an external collaborator and specifies only the interface the
// core needs; this package provides that interface plus a reference,
// mutable implementation (InMemory) grounded on
// lvlath/core.Graph's RWMutex-guarded vertex/edge catalog and
// functional-option construction style.
//
// A contribgraph.Graph exposes a finite sequence of Nodes (address +
// description), a finite sequence of Edges (address, src, dst, timestamp,
// and a dangling flag), and the two pure weight evaluators the MPG
// Builder needs (spec §4.3). Addresses are compared using the address
// package's algebra throughout.
package contribgraph
