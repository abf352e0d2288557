// SPDX-License-Identifier: MIT
package epochgrid_test

import (
	"testing"

	"github.com/katalvlaran/credmpg/epochgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundaries_EmptyInput(t *testing.T) {
	got := epochgrid.Boundaries(nil)
	require.Len(t, got, 2)
	assert.Equal(t, epochgrid.NegInf, got[0].Kind)
	assert.Equal(t, epochgrid.PosInf, got[1].Kind)
}

func TestBoundaries_SpanAndAlignment(t *testing.T) {
	// 2024-03-04 is a Monday: 1709510400000 ms.
	monday := int64(1709510400000)
	weekMs := int64(7 * 24 * 60 * 60 * 1000)

	got := epochgrid.Boundaries([]int64{monday + 1000, monday + weekMs + 2000})
	require.GreaterOrEqual(t, len(got), 4)
	assert.Equal(t, epochgrid.NegInf, got[0].Kind)
	assert.Equal(t, epochgrid.PosInf, got[len(got)-1].Kind)

	first := got[1]
	require.Equal(t, epochgrid.Finite, first.Kind)
	assert.LessOrEqual(t, first.MillisUTC, monday+1000)
	assert.Equal(t, int64(0), (first.MillisUTC-monday)%weekMs, "boundary must land on a week-aligned instant")

	last := got[len(got)-2]
	require.Equal(t, epochgrid.Finite, last.Kind)
	assert.GreaterOrEqual(t, last.MillisUTC, monday+weekMs+2000)

	// every intermediate boundary is exactly one week apart
	for i := 2; i < len(got)-1; i++ {
		prev := got[i-1]
		cur := got[i]
		assert.Equal(t, weekMs, cur.MillisUTC-prev.MillisUTC)
	}
}

func TestBoundaries_SingleTimestampAlignsDown(t *testing.T) {
	got := epochgrid.Boundaries([]int64{0})
	require.GreaterOrEqual(t, len(got), 3)
	assert.LessOrEqual(t, got[1].MillisUTC, int64(0))
	assert.GreaterOrEqual(t, got[len(got)-2].MillisUTC, int64(0))
}

func TestEpochIndex_MatchesHalfOpenIntervals(t *testing.T) {
	boundaries := epochgrid.Boundaries([]int64{0, 1000})

	idxNeg := epochgrid.EpochIndex(boundaries, -999999999999)
	assert.Equal(t, 0, idxNeg)

	// +inf is never <= a finite t, so the last finite boundary opens the
	// final interval.
	idxPos := epochgrid.EpochIndex(boundaries, 999999999999)
	assert.Equal(t, len(boundaries)-2, idxPos)

	// every finite boundary belongs to the interval it opens
	for i, b := range boundaries {
		if b.Kind != epochgrid.Finite {
			continue
		}
		assert.Equal(t, i, epochgrid.EpochIndex(boundaries, b.MillisUTC))
		assert.Equal(t, i, epochgrid.EpochIndex(boundaries, b.MillisUTC+1))
		assert.Equal(t, i-1, epochgrid.EpochIndex(boundaries, b.MillisUTC-1))
	}
}

func TestBoundaries_DuplicatesAndUnorderedInput(t *testing.T) {
	got1 := epochgrid.Boundaries([]int64{5000, 1000, 5000, 1000})
	got2 := epochgrid.Boundaries([]int64{1000, 5000})
	assert.Equal(t, got1, got2)
}
