package convert_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tempograph/convert"
	"github.com/katalvlaran/tempograph/core"
	"github.com/katalvlaran/tempograph/temporal"
)

// buildContainer assembles a container from per-snapshot edge lists.
func buildContainer(t *testing.T, directed, multi bool, steps [][][2]string) *temporal.Graph {
	t.Helper()
	var tgOpts []temporal.Option
	var gOpts []core.Option
	if directed {
		tgOpts = append(tgOpts, temporal.WithDirected())
		gOpts = append(gOpts, core.WithDirected())
	}
	if multi {
		tgOpts = append(tgOpts, temporal.WithParallelEdges())
		gOpts = append(gOpts, core.WithParallelEdges())
	}
	tg := temporal.New(tgOpts...)
	for _, edges := range steps {
		s := core.New(gOpts...)
		for _, e := range edges {
			_, err := s.AddEdge(e[0], e[1], nil)
			require.NoError(t, err)
		}
		require.NoError(t, tg.Append(s, ""))
	}

	return tg
}

// TestToStatic_SimpleLastWriteWins: repeated pairs on a simple graph keep
// the latest snapshot's attributes; no edge is duplicated.
func TestToStatic_SimpleLastWriteWins(t *testing.T) {
	tg := temporal.New()

	s0 := core.New()
	_, err := s0.AddEdge("a", "b", core.Attrs{"obs": 0})
	require.NoError(t, err)
	require.NoError(t, tg.Append(s0, ""))

	s1 := core.New()
	_, err = s1.AddEdge("a", "b", core.Attrs{"obs": 1})
	require.NoError(t, err)
	_, err = s1.AddEdge("b", "c", nil)
	require.NoError(t, err)
	require.NoError(t, tg.Append(s1, ""))

	g := convert.ToStatic(tg)
	require.Equal(t, 3, g.Order())
	require.Equal(t, 2, g.Size())

	idx := g.EdgesBetween("a", "b")
	require.Len(t, idx, 1)
	e, err := g.EdgeAt(idx[0])
	require.NoError(t, err)
	require.Equal(t, 1, e.Attrs["obs"], "later snapshot wins")
}

// TestToStatic_MultigraphKeepsOccurrences: every occurrence becomes a
// parallel edge.
func TestToStatic_MultigraphKeepsOccurrences(t *testing.T) {
	tg := buildContainer(t, true, true, [][][2]string{
		{{"a", "b"}},
		{{"a", "b"}, {"a", "b"}},
	})

	g := convert.ToStatic(tg)
	require.Equal(t, 3, g.Size())
	require.Len(t, g.EdgesBetween("a", "b"), 3)
}

// TestToStatic_NodeAttrMerge: dynamic node attributes flatten with
// last-observed-wins per key — the documented lossy step.
func TestToStatic_NodeAttrMerge(t *testing.T) {
	tg := temporal.New()

	s0 := core.New()
	require.NoError(t, s0.AddNode("a"))
	require.NoError(t, s0.SetNodeAttr("a", "state", "young"))
	require.NoError(t, s0.SetNodeAttr("a", "fixed", true))
	require.NoError(t, tg.Append(s0, ""))

	s1 := core.New()
	require.NoError(t, s1.AddNode("a"))
	require.NoError(t, s1.SetNodeAttr("a", "state", "old"))
	require.NoError(t, tg.Append(s1, ""))

	g := convert.ToStatic(tg)
	attrs, err := g.NodeAttrs("a")
	require.NoError(t, err)
	require.Equal(t, "old", attrs["state"])
	require.Equal(t, true, attrs["fixed"])
}

// TestFromStatic wraps a graph as a single labeled snapshot.
func TestFromStatic(t *testing.T) {
	g := core.New(core.WithDirected())
	_, err := g.AddEdge("a", "b", nil)
	require.NoError(t, err)

	tg := convert.FromStatic(g)
	require.Equal(t, 1, tg.Len())
	require.True(t, tg.Directed())
	require.Equal(t, []string{"0"}, tg.Names())

	snap, err := tg.SnapshotAt(0)
	require.NoError(t, err)
	require.Equal(t, 1, snap.Size())
}
