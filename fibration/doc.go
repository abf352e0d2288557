// Package fibration implements the Fibration Planner (spec §4.4): given a
// contribution graph and a set of scoring-address prefixes, it determines
// which node addresses are "scoring" and plans, per scoring address, the
// ordered epoch-node and webbing structure the MPG Builder will emit.
//
// Planning is a single deterministic pass, grounded on
// lvlath/graph/conversions.go's style of deriving one indexed structure
// from another and on dfs/topological.go's habit of emitting derived
// sequences in a fixed, documented order.
package fibration
