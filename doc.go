// Package credmpg turns a weighted contribution graph into a stochastic
// Markov Process Graph suitable for power-iteration cred scoring.
//
// What is credmpg?
//
//	A pure, synchronous construction pipeline that brings together:
//		• Address algebra: opaque, ordered, prefix-structured node/edge/
//		  markov-edge identifiers with a total order
//		• Interval partitioning: week-aligned epoch boundaries over a set
//		  of contribution timestamps
//		• Fibration: splitting scoring nodes into per-epoch copies, webbed
//		  together across the boundary grid
//		• The Builder: seed, base, and epoch nodes; minting, base,
//		  payout, webbing, and radiation edges, normalized into a
//		  strictly stochastic transition graph
//		• Chain emission: a dense, index-addressed view ready for a
//		  power-iteration solver
//		• Serialization: a versioned, self-describing JSON record
//
// Why credmpg?
//
//   - Deterministic — construction is a pure function of its inputs
//   - Auditable — every failure carries a typed, addressed error
//   - Small surface — one entry point (mpg.New) per pipeline stage
//
// Under the hood, everything is organized under focused subpackages:
//
//	address/      — the address algebra (§4.1)
//	epochgrid/    — the interval partitioner (§4.2)
//	weight/       — node/edge weight evaluators (§4.3)
//	contribgraph/ — the weighted-graph input contract
//	fibration/    — the fibration planner (§4.4)
//	mpg/          — the MPG data model, builder, and query surface (§3/§4.5/§4.8)
//	chain/        — the chain emitter (§4.6)
//	mpgio/        — the serializer (§4.7)
//	cmd/mpgdemo/  — a runnable end-to-end demonstration
//
// Quick usage sketch:
//
//	g := contribgraph.NewInMemory(nodeWeight, edgeWeight)
//	built, err := mpg.New(g, mpg.FibrationOptions{...}, mpg.SeedOptions{Alpha: 0.15})
//	c, err := chain.ToMarkovChain(built)
//
// See SPEC_FULL.md and DESIGN.md for the full construction order and the
// grounding behind each package's design.
package credmpg
