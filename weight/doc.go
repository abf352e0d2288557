// Package weight provides the two pure weight-evaluator function types the
// MPG Builder consumes (spec §4.3): NodeWeightFn derives a non-negative
// mint from a node address, EdgeWeightFn derives a (forward, backward)
// pair of non-negative weights from an edge address.
//
// The concrete rule language a caller uses to populate these functions is
// deliberately external to credmpg (spec §4.3 says as much); this package
// only supplies small, composable strategies in the same spirit as
// lvlath/builder's WeightFn constructors (ConstantWeightFn,
// UniformWeightFn): named functions returned by named constructors,
// validated eagerly, no hidden global state.
package weight
