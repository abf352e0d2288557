package weight

import "github.com/katalvlaran/credmpg/address"

// NodeWeightFn maps a node address to its non-negative mint. Implementations
// must be pure and deterministic; a non-finite or negative result is a data
// error the MPG Builder surfaces as mpg.InputError, not a panic.
type NodeWeightFn func(address.Address) (float64, error)

// EdgeWeightFn maps an edge address to a (forward, backward) pair of
// non-negative weights. A zero on either side means "no MPG edge in that
// direction" (spec §4.3); a negative or non-finite result is a data error.
type EdgeWeightFn func(address.Address) (forward, backward float64, err error)

// NodeWeightRule associates a node-address prefix with a fixed weight.
// PrefixTableNodeWeight resolves ties by declaration order: the first
// matching rule wins, regardless of prefix length.
type NodeWeightRule struct {
	Prefix address.Address
	Weight float64
}

// EdgeWeightRule associates an edge-address prefix with a fixed
// (forward, backward) weight pair, resolved the same way as NodeWeightRule.
type EdgeWeightRule struct {
	Prefix            address.Address
	Forward, Backward float64
}
