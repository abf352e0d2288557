// Package address implements the prefix-structured opaque identifier
// algebra shared by every credmpg component: node addresses, edge
// addresses, and the derived markov-edge address used inside the
// Markov Process Graph.
//
// An address is an ordered sequence of string parts. Two addresses are
// equal iff their kinds and part sequences are equal. Addresses expose a total
// order (Compare) so that downstream packages can produce a canonical
// iteration order without depending on map iteration.
//
// Node and Edge addresses are disjoint kinds: two addresses built from
// the same parts but different kinds never compare equal, and Compare
// orders by kind first. This mirrors lvlath/core's separation of Vertex
// IDs and Edge IDs into distinct namespaces, made explicit here as a
// tagged sum rather than left implicit in two string-keyed maps.
//
// Concurrency: Address values are immutable after construction and safe
// for concurrent use by multiple goroutines without synchronization.
package address
