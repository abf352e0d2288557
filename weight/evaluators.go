// SPDX-License-Identifier: MIT
// Package: credmpg/weight
//
// evaluators.go — small named constructors for NodeWeightFn/EdgeWeightFn,
// grounded on lvlath/builder's weight_fn.go family of constant/uniform
// weight strategies.
package weight

import (
	"fmt"

	"github.com/katalvlaran/credmpg/address"
)

// ConstantNodeWeight returns a NodeWeightFn that always yields w, regardless
// of the address queried. Panics if w < 0 (programmer error, per lvlath's
// WithX-panics-on-bad-literal convention).
func ConstantNodeWeight(w float64) NodeWeightFn {
	if w < 0 {
		panic(fmt.Sprintf("weight.ConstantNodeWeight: w must be >= 0, got %g", w))
	}
	return func(address.Address) (float64, error) {
		return w, nil
	}
}

// ConstantEdgeWeight returns an EdgeWeightFn that always yields the same
// (forward, backward) pair. Panics if either value is negative.
func ConstantEdgeWeight(forward, backward float64) EdgeWeightFn {
	if forward < 0 || backward < 0 {
		panic(fmt.Sprintf("weight.ConstantEdgeWeight: require forward,backward >= 0, got %g,%g", forward, backward))
	}
	return func(address.Address) (float64, float64, error) {
		return forward, backward, nil
	}
}

// PrefixTableNodeWeight returns a NodeWeightFn resolving the first rule
// (in declaration order) whose Prefix matches the queried address via
// HasPrefix. Addresses matching no rule get weight 0.
func PrefixTableNodeWeight(rules []NodeWeightRule) NodeWeightFn {
	// Defensive copy so later caller mutation of the slice does not alter
	// evaluator behavior (mirrors the option-copy discipline in
	// core.NewMixedGraph).
	owned := make([]NodeWeightRule, len(rules))
	copy(owned, rules)

	return func(addr address.Address) (float64, error) {
		for _, r := range owned {
			if addr.HasPrefix(r.Prefix) {
				return r.Weight, nil
			}
		}
		return 0, nil
	}
}

// PrefixTableEdgeWeight returns an EdgeWeightFn resolving the first rule
// (in declaration order) whose Prefix matches the queried address via
// HasPrefix. Addresses matching no rule get (0, 0).
func PrefixTableEdgeWeight(rules []EdgeWeightRule) EdgeWeightFn {
	owned := make([]EdgeWeightRule, len(rules))
	copy(owned, rules)

	return func(addr address.Address) (float64, float64, error) {
		for _, r := range owned {
			if addr.HasPrefix(r.Prefix) {
				return r.Forward, r.Backward, nil
			}
		}
		return 0, 0, nil
	}
}
