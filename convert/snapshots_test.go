package convert_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tempograph/convert"
	"github.com/katalvlaran/tempograph/core"
	"github.com/katalvlaran/tempograph/temporal"
)

// TestSnapshotsRoundTrip: from_snapshots(to_snapshots(TG)) preserves node
// set, edge set, and snapshot count.
func TestSnapshotsRoundTrip(t *testing.T) {
	tg := buildContainer(t, true, false, [][][2]string{
		{{"a", "b"}},
		{{"a", "b"}, {"b", "c"}},
		{{"c", "d"}},
	})

	back, err := convert.FromSnapshots(convert.ToSnapshots(tg, false))
	require.NoError(t, err)

	require.Equal(t, tg.Len(), back.Len())
	require.Equal(t, tg.TemporalNodes(), back.TemporalNodes())
	require.Equal(t, tg.TemporalEdges(), back.TemporalEdges())
	require.Equal(t, tg.Size(), back.Size())
}

// TestToSnapshots_CopyIsolation: asCopy snapshots own their storage.
func TestToSnapshots_CopyIsolation(t *testing.T) {
	tg := buildContainer(t, false, false, [][][2]string{{{"a", "b"}}})

	copies := convert.ToSnapshots(tg, true)
	require.Len(t, copies, 1)
	_, err := copies[0].AddEdge("x", "y", nil)
	require.NoError(t, err, "copies are mutable owned graphs")

	orig, err := tg.SnapshotAt(0)
	require.NoError(t, err)
	require.Equal(t, 1, orig.Size(), "container snapshot untouched")
}

// TestFromSnapshots_MultigraphAutoDetect: the container becomes a
// multigraph only when a duplicate pair exists within a single snapshot.
func TestFromSnapshots_MultigraphAutoDetect(t *testing.T) {
	// Duplicate across snapshots, never within one: stays simple.
	acrossOnly := []*core.Graph{core.New(core.WithParallelEdges()), core.New(core.WithParallelEdges())}
	for _, g := range acrossOnly {
		_, err := g.AddEdge("a", "b", nil)
		require.NoError(t, err)
	}
	tg, err := convert.FromSnapshots(acrossOnly)
	require.NoError(t, err)
	require.False(t, tg.Multigraph())

	// Duplicate within one snapshot: multigraph.
	within := core.New(core.WithParallelEdges())
	_, err = within.AddEdge("a", "b", nil)
	require.NoError(t, err)
	_, err = within.AddEdge("a", "b", nil)
	require.NoError(t, err)
	tg, err = convert.FromSnapshots([]*core.Graph{within})
	require.NoError(t, err)
	require.True(t, tg.Multigraph())
	require.Equal(t, []int{2}, tg.Size())
}

// TestFromSnapshots_MultigraphOverride forces the container type.
func TestFromSnapshots_MultigraphOverride(t *testing.T) {
	g := core.New()
	_, err := g.AddEdge("a", "b", nil)
	require.NoError(t, err)

	tg, err := convert.FromSnapshots([]*core.Graph{g}, convert.WithMultigraph(true))
	require.NoError(t, err)
	require.True(t, tg.Multigraph())
}

// TestFromSnapshots_MixedDirectedness fails fast.
func TestFromSnapshots_MixedDirectedness(t *testing.T) {
	_, err := convert.FromSnapshots([]*core.Graph{core.New(), core.New(core.WithDirected())})
	require.ErrorIs(t, err, temporal.ErrMixedDirectedness)
}

// TestFromSnapshots_Empty yields an empty container, not an error.
func TestFromSnapshots_Empty(t *testing.T) {
	tg, err := convert.FromSnapshots(nil)
	require.NoError(t, err)
	require.Equal(t, 0, tg.Len())
}
