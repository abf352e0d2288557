// SPDX-License-Identifier: MIT
// Package: credmpg/mpg
//
// constants.go — the reserved address prefixes and numeric policy of
// spec §6.3, built once at package init time.
package mpg

import "github.com/katalvlaran/credmpg/address"

// StochasticTolerance is the numerical tolerance for stochasticity checks
// (spec §6.3): |Σp_out(n) - 1| must be < StochasticTolerance.
const StochasticTolerance = 1e-3

var (
	// reservedCorePrefix is ["sourcecred", "core"]; no input graph node may
	// carry this prefix (spec §3 invariants).
	reservedCorePrefix = address.MustNew(address.KindNode, "sourcecred", "core")

	// seedAddress is the single Seed node's address: core prefix + "SEED".
	seedAddress = mustAppendNode(reservedCorePrefix, "SEED")

	// epochNodePrefix is the prefix shared by every epoch node's address.
	epochNodePrefix = mustAppendNode(reservedCorePrefix, "EPOCH")

	// edgePayoutPrefix, edgeWebbingPrefix, edgeEpochRadiationPrefix,
	// edgeContributionRadiationPrefix, edgeSeedMintPrefix are the edge
	// address prefixes of spec §6.3, rooted in the KindEdge namespace
	// (distinct from the KindNode reservedCorePrefix above even though
	// both begin "sourcecred","core").
	edgePayoutPrefix                = address.MustNew(address.KindEdge, "sourcecred", "core", "fibration", "EPOCH_PAYOUT")
	edgeWebbingPrefix               = address.MustNew(address.KindEdge, "sourcecred", "core", "fibration", "EPOCH_WEBBING")
	edgeEpochRadiationPrefix        = address.MustNew(address.KindEdge, "sourcecred", "core", "fibration", "EPOCH_RADIATION")
	edgeContributionRadiationPrefix = address.MustNew(address.KindEdge, "sourcecred", "core", "CONTRIBUTION_RADIATION")
	edgeSeedMintPrefix              = address.MustNew(address.KindEdge, "sourcecred", "core", "SEED_MINT")
)

func mustAppendNode(base address.Address, parts ...string) address.Address {
	a, err := base.Append(parts...)
	if err != nil {
		panic("mpg: mustAppendNode: " + err.Error())
	}
	return a
}

// SeedAddress returns the reserved Seed node address (core prefix + "SEED").
func SeedAddress() address.Address {
	return seedAddress
}

// ReservedCorePrefix returns the reserved core node-address prefix. Input
// graph nodes carrying this prefix must be rejected (spec §3).
func ReservedCorePrefix() address.Address {
	return reservedCorePrefix
}
