package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/critpath/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	// Four vertices 1..4 with the diamond-ish layout used across critpath tests.
	s.g = core.NewGraph()
	for v := 1; v <= 4; v++ {
		s.g.AddVertex(v)
	}
	s.Require().NoError(s.g.AddEdge(1, 2, 1, 1))
	s.Require().NoError(s.g.AddEdge(2, 3, 1, 2))
	s.Require().NoError(s.g.AddEdge(1, 3, 5, 3))
	s.Require().NoError(s.g.AddEdge(3, 4, 1, 4))
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func (s *GraphSuite) TestAddVertexIdempotent() {
	require := require.New(s.T())
	before := s.g.VertexCount()
	s.g.AddVertex(1)
	require.Equal(before, s.g.VertexCount(), "adding duplicate vertex should not increase count")

	// existing arcs are untouched
	arcs, err := s.g.Arcs(1)
	require.NoError(err)
	require.Len(arcs, 2)
}

func (s *GraphSuite) TestAddEdgeStoresBothArcs() {
	require := require.New(s.T())

	arcs2, err := s.g.Arcs(2)
	require.NoError(err)
	require.Equal([]core.Arc{
		{EdgeID: 1, To: 1, Weight: 1},
		{EdgeID: 2, To: 3, Weight: 1},
	}, arcs2)

	arcs3, err := s.g.Arcs(3)
	require.NoError(err)
	require.Equal([]core.Arc{
		{EdgeID: 2, To: 2, Weight: 1},
		{EdgeID: 3, To: 1, Weight: 5},
		{EdgeID: 4, To: 4, Weight: 1},
	}, arcs3)
}

func (s *GraphSuite) TestAddEdgeValidation() {
	require := require.New(s.T())

	err := s.g.AddEdge(1, 99, 1, 10)
	require.ErrorIs(err, core.ErrVertexNotFound)

	err = s.g.AddEdge(1, 2, -1, 10)
	require.ErrorIs(err, core.ErrNegativeWeight)

	err = s.g.AddEdge(1, 4, 2, 1)
	require.ErrorIs(err, core.ErrDuplicateEdgeID)

	// nothing was stored by the failed calls
	require.Equal(4, s.g.EdgeCount())
}

func (s *GraphSuite) TestFindEdge() {
	require := require.New(s.T())

	e, err := s.g.FindEdge(3)
	require.NoError(err)
	require.Equal(core.Edge{ID: 3, U: 1, V: 3, Weight: 5}, e)
	require.Equal(3, e.Other(1))
	require.Equal(1, e.Other(3))

	_, err = s.g.FindEdge(42)
	require.True(errors.Is(err, core.ErrEdgeNotFound))
}

func (s *GraphSuite) TestRemoveEdgeKeepsViewsConsistent() {
	require := require.New(s.T())

	s.g.RemoveEdge(2)
	require.False(s.g.HasEdge(2))
	_, err := s.g.FindEdge(2)
	require.ErrorIs(err, core.ErrEdgeNotFound)

	for _, v := range s.g.Vertices() {
		arcs, err := s.g.Arcs(v)
		require.NoError(err)
		for _, a := range arcs {
			require.NotEqual(2, a.EdgeID, "arc of removed edge left in list of %d", v)
		}
	}
	deg2, err := s.g.Degree(2)
	require.NoError(err)
	require.Equal(1, deg2)

	// removing again is a no-op
	s.g.RemoveEdge(2)
	require.Equal(3, s.g.EdgeCount())
}

func (s *GraphSuite) TestSelfLoopAndParallelEdges() {
	require := require.New(s.T())

	require.NoError(s.g.AddEdge(4, 4, 7, 5))
	deg, err := s.g.Degree(4)
	require.NoError(err)
	require.Equal(3, deg, "self-loop contributes two arcs")

	require.NoError(s.g.AddEdge(1, 2, 1, 6))
	arcs, err := s.g.Arcs(1)
	require.NoError(err)
	require.Len(arcs, 3)

	s.g.RemoveEdge(5)
	deg, err = s.g.Degree(4)
	require.NoError(err)
	require.Equal(1, deg)
}

func (s *GraphSuite) TestVerticesEdgesSorted() {
	require := require.New(s.T())
	s.g.AddVertex(0)

	require.Equal([]int{0, 1, 2, 3, 4}, s.g.Vertices())
	maxID, ok := s.g.MaxVertex()
	require.True(ok)
	require.Equal(4, maxID)

	ids := make([]int, 0)
	for _, e := range s.g.Edges() {
		ids = append(ids, e.ID)
	}
	require.Equal([]int{1, 2, 3, 4}, ids)
}

func (s *GraphSuite) TestArcsUnknownVertex() {
	_, err := s.g.Arcs(17)
	s.Require().ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.Degree(17)
	s.Require().ErrorIs(err, core.ErrVertexNotFound)
}

func (s *GraphSuite) TestCloneIsIndependent() {
	require := require.New(s.T())

	clone := s.g.Clone()
	s.g.RemoveEdge(1)

	require.True(clone.HasEdge(1), "clone must not observe removals on the original")
	arcs, err := clone.Arcs(1)
	require.NoError(err)
	require.Len(arcs, 2)
	require.Equal(s.g.Vertices(), clone.Vertices())
}

func TestMaxVertexEmpty(t *testing.T) {
	_, ok := core.NewGraph().MaxVertex()
	require.False(t, ok)
}
