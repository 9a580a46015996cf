package temporal_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/tempograph/core"
	"github.com/katalvlaran/tempograph/temporal"
)

// ContainerSuite groups container construction and aggregate tests around
// one small three-step sequence.
type ContainerSuite struct {
	suite.Suite
	tg *temporal.Graph
}

// SetupTest builds: t0 {a-b}, t1 {a-b, b-c}, t2 {c-d}.
func (s *ContainerSuite) SetupTest() {
	s.tg = temporal.New()

	t0 := core.New()
	_, err := t0.AddEdge("a", "b", nil)
	require.NoError(s.T(), err)

	t1 := core.New()
	_, err = t1.AddEdge("a", "b", nil)
	require.NoError(s.T(), err)
	_, err = t1.AddEdge("b", "c", nil)
	require.NoError(s.T(), err)

	t2 := core.New()
	_, err = t2.AddEdge("c", "d", nil)
	require.NoError(s.T(), err)

	for i, g := range []*core.Graph{t0, t1, t2} {
		require.NoError(s.T(), s.tg.Append(g, ""), "append snapshot %d", i)
	}
}

func (s *ContainerSuite) TestPerSnapshotCounts() {
	require.Equal(s.T(), 3, s.tg.Len())
	require.Equal(s.T(), []int{2, 3, 2}, s.tg.Order())
	require.Equal(s.T(), []int{1, 2, 1}, s.tg.Size())
}

func (s *ContainerSuite) TestTemporalCounts() {
	require.Equal(s.T(), []string{"a", "b", "c", "d"}, s.tg.TemporalNodes())
	require.Equal(s.T(), 4, s.tg.TemporalOrder())
	require.Equal(s.T(), 3, s.tg.TemporalSize(), "a-b deduplicated across t0 and t1")
}

func (s *ContainerSuite) TestTotalCounts() {
	require.Equal(s.T(), 7, s.tg.TotalOrder())
	require.Equal(s.T(), 4, s.tg.TotalSize(), "a-b counted in both t0 and t1")
}

func (s *ContainerSuite) TestDegreeAggregates() {
	require.Equal(s.T(), []int{1, 2, 0}, s.tg.Degree("b"))
	require.Equal(s.T(), 3, s.tg.TotalDegree("b"))
	require.Equal(s.T(), []int{0, 0, 0}, s.tg.Degree("ghost"))
}

func (s *ContainerSuite) TestNameLookup() {
	require.Equal(s.T(), []string{"0", "1", "2"}, s.tg.Names(), "empty labels default to indices")

	snap, err := s.tg.SnapshotByName("1")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, snap.Size())

	_, err = s.tg.SnapshotByName("missing")
	require.ErrorIs(s.T(), err, temporal.ErrSnapshotName)

	_, err = s.tg.SnapshotAt(3)
	require.ErrorIs(s.T(), err, temporal.ErrSnapshotIndex)
}

func (s *ContainerSuite) TestAppend_TypeConsistency() {
	require.ErrorIs(s.T(), s.tg.Append(core.New(core.WithDirected()), "dir"), temporal.ErrMixedDirectedness)
	require.ErrorIs(s.T(), s.tg.Append(core.New(core.WithParallelEdges()), "multi"), temporal.ErrMixedMultiplicity)
	require.ErrorIs(s.T(), s.tg.Append(core.New(), "0"), temporal.ErrDuplicateName)
	require.Equal(s.T(), 3, s.tg.Len(), "failed appends leave the container unchanged")
}

// TestUndirectedEdgeNormalization: (b,a) and (a,b) are one temporal edge.
func (s *ContainerSuite) TestUndirectedEdgeNormalization() {
	tg := temporal.New()
	g0 := core.New()
	_, err := g0.AddEdge("a", "b", nil)
	require.NoError(s.T(), err)
	g1 := core.New()
	_, err = g1.AddEdge("b", "a", nil)
	require.NoError(s.T(), err)

	require.NoError(s.T(), tg.Append(g0, ""))
	require.NoError(s.T(), tg.Append(g1, ""))
	require.Equal(s.T(), 1, tg.TemporalSize())
}

func TestContainerSuite(t *testing.T) {
	suite.Run(t, new(ContainerSuite))
}
