package convert_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tempograph/convert"
)

// TestToEvents_OpenIntervalDeltas: edge present at t=0,1 and absent at t=2
// emits exactly (+1 at 0, -1 at 2). Regression guard for treating every
// event as a single-snapshot edge.
func TestToEvents_OpenIntervalDeltas(t *testing.T) {
	tg := buildContainer(t, false, false, [][][2]string{
		{{"a", "b"}},
		{{"a", "b"}},
		{},
	})

	events, err := convert.ToEvents(tg, convert.EventOptions{Format: convert.FormatDelta})
	require.NoError(t, err)
	require.Equal(t, []convert.Event{
		convert.Delta("a", "b", 0, +1),
		convert.Delta("a", "b", 2, -1),
	}, events)
}

// TestFromEvents_OpenIntervalReplay: replaying the stream above gives a
// 3-snapshot container with the edge present at t=0 and t=1 only.
func TestFromEvents_OpenIntervalReplay(t *testing.T) {
	tg, err := convert.FromEvents([]convert.Event{
		convert.Delta("a", "b", 0, +1),
		convert.Delta("a", "b", 2, -1),
	}, false, false)
	require.NoError(t, err)

	require.Equal(t, 3, tg.Len())
	require.Equal(t, []int{1, 1, 0}, tg.Size())
}

// TestFromEvents_InfinitelyPreservedEdge: an addition without a removal
// propagates to every later snapshot, not just the one it was observed at.
func TestFromEvents_InfinitelyPreservedEdge(t *testing.T) {
	tg, err := convert.FromEvents([]convert.Event{
		convert.Point("a", "b", 0),
		convert.Point("b", "c", 2),
	}, false, false)
	require.NoError(t, err)

	require.Equal(t, 3, tg.Len())
	require.Equal(t, []int{1, 1, 2}, tg.Size(), "a-b open through the whole sequence")
}

// TestToEvents_StreamRuns: an intermittent edge yields one point per
// presence run by default, and a single point with FirstOnly.
func TestToEvents_StreamRuns(t *testing.T) {
	tg := buildContainer(t, false, false, [][][2]string{
		{{"a", "b"}},
		{},
		{{"a", "b"}},
	})

	perRun, err := convert.ToEvents(tg, convert.DefaultEventOptions())
	require.NoError(t, err)
	require.Equal(t, []convert.Event{
		convert.Point("a", "b", 0),
		convert.Point("a", "b", 2),
	}, perRun)

	firstOnly, err := convert.ToEvents(tg, convert.EventOptions{Format: convert.FormatStream, FirstOnly: true})
	require.NoError(t, err)
	require.Equal(t, []convert.Event{convert.Point("a", "b", 0)}, firstOnly)
}

// TestToEvents_CloseAtEnd: edges still present in the last snapshot get a
// trailing -1 at Len() when asked for.
func TestToEvents_CloseAtEnd(t *testing.T) {
	tg := buildContainer(t, false, false, [][][2]string{
		{{"a", "b"}},
		{{"a", "b"}},
	})

	open, err := convert.ToEvents(tg, convert.EventOptions{Format: convert.FormatDelta})
	require.NoError(t, err)
	require.Equal(t, []convert.Event{convert.Delta("a", "b", 0, +1)}, open)

	closed, err := convert.ToEvents(tg, convert.EventOptions{Format: convert.FormatDelta, CloseAtEnd: true})
	require.NoError(t, err)
	require.Equal(t, []convert.Event{
		convert.Delta("a", "b", 0, +1),
		convert.Delta("a", "b", 2, -1),
	}, closed)
}

// TestToEvents_Spans: duration is the number of further snapshots the run
// persists; a single-snapshot run reports 0.0.
func TestToEvents_Spans(t *testing.T) {
	tg := buildContainer(t, false, false, [][][2]string{
		{{"a", "b"}, {"c", "d"}},
		{{"a", "b"}},
		{{"a", "b"}},
	})

	events, err := convert.ToEvents(tg, convert.EventOptions{Format: convert.FormatSpan})
	require.NoError(t, err)
	require.Equal(t, []convert.Event{
		convert.Span("a", "b", 0, 2.0),
		convert.Span("c", "d", 0, 0.0),
	}, events)
}

// TestFromEvents_SpanReplay: a span covers [t, t+duration] and closes after.
func TestFromEvents_SpanReplay(t *testing.T) {
	tg, err := convert.FromEvents([]convert.Event{
		convert.Span("a", "b", 0, 1.0),
		convert.Span("c", "d", 2, 0.0),
	}, false, false)
	require.NoError(t, err)

	require.Equal(t, 3, tg.Len())
	require.Equal(t, []int{1, 1, 1}, tg.Size())

	last, err := tg.SnapshotAt(2)
	require.NoError(t, err)
	require.True(t, last.HasEdge("c", "d"))
	require.False(t, last.HasEdge("a", "b"), "span [0,1] expired before t=2")
}

// TestFromEvents_UnmatchedRemoval fails fast: deletions must follow a
// corresponding addition.
func TestFromEvents_UnmatchedRemoval(t *testing.T) {
	_, err := convert.FromEvents([]convert.Event{
		convert.Delta("a", "b", 0, -1),
	}, false, false)
	require.ErrorIs(t, err, convert.ErrUnmatchedRemoval)
}

// TestFromEvents_BadSign fails fast on a delta whose sign is neither +1
// nor -1, instead of silently dropping the event.
func TestFromEvents_BadSign(t *testing.T) {
	for _, sign := range []int{0, 2, -3} {
		_, err := convert.FromEvents([]convert.Event{
			convert.Delta("a", "b", 0, sign),
		}, false, false)
		require.ErrorIs(t, err, convert.ErrBadSign, "sign %d", sign)
	}
}

// TestFromEvents_MultigraphMultiplicity: open additions accumulate into
// parallel edges on a multigraph container.
func TestFromEvents_MultigraphMultiplicity(t *testing.T) {
	tg, err := convert.FromEvents([]convert.Event{
		convert.Delta("a", "b", 0, +1),
		convert.Delta("a", "b", 0, +1),
		convert.Delta("a", "b", 1, -1),
	}, false, true)
	require.NoError(t, err)
	require.Equal(t, []int{2, 1}, tg.Size())
}

// TestEventsRoundTrip_Deltas: delta encode → replay reproduces sizes.
func TestEventsRoundTrip_Deltas(t *testing.T) {
	tg := buildContainer(t, false, false, [][][2]string{
		{{"a", "b"}},
		{{"a", "b"}, {"b", "c"}},
		{{"b", "c"}},
		{},
	})

	events, err := convert.ToEvents(tg, convert.EventOptions{Format: convert.FormatDelta})
	require.NoError(t, err)
	back, err := convert.FromEvents(events, false, false)
	require.NoError(t, err)

	require.Equal(t, tg.Len(), back.Len())
	require.Equal(t, tg.Size(), back.Size())
	require.Equal(t, tg.TemporalEdges(), back.TemporalEdges())
}

// TestToEvents_BadFormat rejects unknown encodings at the door.
func TestToEvents_BadFormat(t *testing.T) {
	tg := buildContainer(t, false, false, nil)
	_, err := convert.ToEvents(tg, convert.EventOptions{Format: convert.EventFormat(42)})
	require.ErrorIs(t, err, convert.ErrBadEventFormat)
}
