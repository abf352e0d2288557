// SPDX-License-Identifier: MIT

// Package mpgio serializes a MarkovProcessGraph to and from the
// self-describing JSON record of spec §6.2: a type tag, a semantic
// version, and a payload of nodes, edges, and scoring addresses.
//
// Unmarshal trusts its payload; it does not re-run the stochasticity or
// duplicate checks New performs during construction (spec §4.7). Callers
// who need those guarantees after a round trip should run the result
// through chain.ToMarkovChain, which re-checks stochasticity as part of
// its own pre-check.
package mpgio
