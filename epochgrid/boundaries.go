// SPDX-License-Identifier: MIT
// Package: credmpg/epochgrid
//
// boundaries.go — the week-grid partitioner and its binary-search lookup.
//
// Implementation notes:
//   - Stage 1 (Validate): empty input short-circuits to [-∞, +∞].
//   - Stage 2 (Scan): a single O(n) pass finds min/max of the input.
//   - Stage 3 (Generate): walk week-aligned boundaries from the aligned-down
//     minimum up to (and including) the first one >= the maximum.
//
// Determinism: the reference instant (referenceMonday) is a compile-time
// constant, so Boundaries(ts) is a pure function of ts alone.
package epochgrid

import "sort"

// weekMillis is the length of one UTC calendar week in milliseconds.
const weekMillis int64 = 7 * 24 * 60 * 60 * 1000

// referenceMondayMillis is 1970-01-05T00:00:00.000Z, the first Monday at
// or after the Unix epoch (1970-01-01 was a Thursday). Every week-start
// boundary this package emits is referenceMondayMillis plus some integer
// multiple of weekMillis, which keeps alignment independent of locale,
// leap seconds, and the wall clock at run time.
const referenceMondayMillis int64 = 4 * 24 * 60 * 60 * 1000

// alignDownToWeekStart returns the largest week-aligned boundary <= t.
//
// Complexity: O(1).
func alignDownToWeekStart(t int64) int64 {
	offset := t - referenceMondayMillis
	weeks := floorDiv(offset, weekMillis)
	return referenceMondayMillis + weeks*weekMillis
}

// floorDiv computes floor(a/b) for b > 0, unlike Go's truncating "/" which
// rounds toward zero and would misalign negative offsets.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Boundaries returns the sorted partition [-∞, b1, ..., bk, +∞] spanning
// timestampsMs, per spec §4.2. The input order is irrelevant and it may
// contain duplicates; both are tolerated.
//
// Complexity: O(n + k) where n = len(timestampsMs) and k = number of
// weeks spanned.
func Boundaries(timestampsMs []int64) []Boundary {
	if len(timestampsMs) == 0 {
		return []Boundary{negInfBoundary, posInfBoundary}
	}

	min, max := timestampsMs[0], timestampsMs[0]
	for _, t := range timestampsMs[1:] {
		if t < min {
			min = t
		}
		if t > max {
			max = t
		}
	}

	out := make([]Boundary, 0, 4)
	out = append(out, negInfBoundary)

	cur := alignDownToWeekStart(min)
	out = append(out, Boundary{Kind: Finite, MillisUTC: cur})
	for cur < max {
		cur += weekMillis
		out = append(out, Boundary{Kind: Finite, MillisUTC: cur})
	}

	out = append(out, posInfBoundary)
	return out
}

// EpochIndex returns the index i into boundaries such that boundaries[i]
// is the largest boundary with boundaries[i] <= t, per spec §4.2's
// half-open interval convention [bi, bi+1). boundaries must be a slice as
// produced by Boundaries (sorted, starting with NegInf, ending with
// PosInf); behavior is undefined otherwise.
//
// Complexity: O(log k) via binary search.
func EpochIndex(boundaries []Boundary, t int64) int {
	// sort.Search finds the smallest index for which the predicate holds;
	// we want the largest index with LessEqual(t), i.e. one less than the
	// smallest index where the boundary is > t.
	firstGreater := sort.Search(len(boundaries), func(i int) bool {
		return !boundaries[i].LessEqual(t)
	})
	return firstGreater - 1
}
