// Package epochgrid computes the sorted, week-aligned timestamp boundary
// sequence that the Fibration Planner and MPG Builder use to slice
// scoring-node history into discrete epochs (spec §4.2).
//
// Boundaries produces [-∞, b1, ..., bk, +∞] where b1..bk are UTC
// calendar-week starts (Monday 00:00:00.000) spanning the supplied
// timestamps: b1 <= min(timestamps) and bk >= max(timestamps). The empty
// input yields exactly [-∞, +∞]. Week alignment is tied to a fixed
// reference instant so results are reproducible across processes and
// invocations, matching lvlath's own preference for pure, deterministic
// sequence generators (see builder.BuildPulse) over anything seeded from
// wall-clock state.
package epochgrid
