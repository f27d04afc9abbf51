package db_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/Dullaz/Raphtory/db"
	"github.com/Dullaz/Raphtory/props"
)

func TestShardRouting(t *testing.T) {
	req := require.New(t)
	g := db.New(2)

	req.NoError(g.AddVertex(1, 1, nil))
	req.NoError(g.AddVertex(2, 1, nil))
	req.NoError(g.AddVertex(3, 1, nil))

	req.Equal(3, g.Len())
	req.Equal(1, g.ShardOf(1))
	req.Equal(0, g.ShardOf(2))
	req.Equal(1, g.ShardOf(3))
}

func TestLenCountsDistinctVertices(t *testing.T) {
	req := require.New(t)
	g := db.New(4)

	events := []struct {
		gid uint64
		ts  int64
	}{{7, 1}, {7, 2}, {9, 1}, {12, 5}, {7, 9}, {9, 9}}
	for _, e := range events {
		req.NoError(g.AddVertex(e.gid, e.ts, nil))
	}
	req.Equal(3, g.Len())
}

func TestCrossShardEdgeCountsOnce(t *testing.T) {
	req := require.New(t)
	g := db.New(2)

	// 1 and 2 land in different shards.
	req.NoError(g.AddEdge(1, 2, 5, nil))

	req.Equal(2, g.Len())
	req.Equal(1, g.CountEdges())
	req.True(g.View().HasEdge(1, 2))
	req.False(g.View().HasEdge(2, 1))

	// Both halves are traversable from their own shard.
	v1, err := g.View().Vertex(1)
	req.NoError(err)
	req.Equal(1, v1.OutDegree())
	v2, err := g.View().Vertex(2)
	req.NoError(err)
	req.Equal(1, v2.InDegree())
}

func TestHalfEdgePropertiesMatch(t *testing.T) {
	req := require.New(t)
	g := db.New(2)

	ps := map[string]props.Prop{"weight": props.I64(9)}
	req.NoError(g.AddEdge(1, 2, 5, ps))

	// The out half carries the canonical property history.
	ev, err := g.View().Edge(1, 2)
	req.NoError(err)
	w, ok := ev.PropertyAt("weight", 5).AsI64()
	req.True(ok)
	req.Equal(int64(9), w)
	req.Equal([]int64{5}, ev.History())
}

func TestWindowedEdgeCount(t *testing.T) {
	req := require.New(t)
	g := db.New(2)

	req.NoError(g.AddEdge(1, 2, 1, nil))
	req.NoError(g.AddEdge(1, 2, 8, nil))
	req.NoError(g.AddEdge(2, 3, 4, nil))
	req.NoError(g.AddEdge(3, 4, 6, nil))

	req.Equal(3, g.CountEdges())
	req.Equal(1, g.Window(0, 3).CountEdges())
	req.Equal(2, g.Window(4, 7).CountEdges())
	req.Equal(3, g.Window(0, 10).CountEdges())
	req.Equal(0, g.Window(20, 30).CountEdges())
}

func TestViewComposition(t *testing.T) {
	req := require.New(t)
	g := db.New(2)
	for ts := int64(0); ts < 10; ts++ {
		req.NoError(g.AddVertex(uint64(ts), ts, nil))
	}

	v := g.Window(2, 8).Window(5, 20)
	req.Equal(3, v.CountVertices()) // [5, 8)

	empty := g.Window(0, 3).Window(5, 9)
	req.Equal(0, empty.CountVertices())
	req.Equal(0, empty.CountEdges())
	req.Empty(empty.VertexIDs())
	_, ok := empty.EarliestTime()
	req.False(ok)
}

func TestAtViewIncludesBound(t *testing.T) {
	req := require.New(t)
	g := db.New(1)

	req.NoError(g.AddVertex(1, 5, nil))
	req.NoError(g.AddVertex(2, 6, nil))

	req.Equal(1, g.At(5).CountVertices())
	req.Equal(2, g.At(6).CountVertices())
	req.Equal(0, g.At(4).CountVertices())
}

func TestLayeredView(t *testing.T) {
	req := require.New(t)
	g := db.New(2)

	req.NoError(g.AddEdgeLayer(1, 2, 1, nil, "follows"))
	req.NoError(g.AddEdgeLayer(1, 3, 2, nil, "blocks"))
	req.NoError(g.AddEdge(1, 4, 3, nil))

	req.Equal(3, g.CountEdges())
	req.Equal(1, g.Layer("follows").CountEdges())
	req.True(g.Layer("follows").HasEdge(1, 2))
	req.False(g.Layer("follows").HasEdge(1, 3))
	// Unknown layer matches nothing.
	req.Equal(0, g.Layer("likes").CountEdges())
	// Layering leaves vertices visible.
	req.Equal(4, g.Layer("follows").CountVertices())
}

func TestUnknownEntityErrors(t *testing.T) {
	req := require.New(t)
	g := db.New(2)
	req.NoError(g.AddVertex(1, 1, nil))

	_, err := g.View().Vertex(99)
	req.ErrorIs(err, db.ErrUnknownVertex)
	_, err = g.View().Edge(1, 99)
	req.ErrorIs(err, db.ErrUnknownEdge)

	// Out-of-window entities are unknown to the view.
	_, err = g.Window(5, 9).Vertex(1)
	req.ErrorIs(err, db.ErrUnknownVertex)
}

func TestStrictTimeRejectsRegression(t *testing.T) {
	req := require.New(t)
	g := db.New(2, db.WithStrictTime())

	req.NoError(g.AddVertex(1, 5, nil))
	req.NoError(g.AddVertex(2, 5, nil))
	req.NoError(g.AddVertex(3, 9, nil))
	req.ErrorIs(g.AddVertex(4, 3, nil), db.ErrInvalidTime)
	req.ErrorIs(g.AddEdge(1, 2, 3, nil), db.ErrInvalidTime)
	req.Equal(3, g.Len())
}

func TestEarliestLatestTimes(t *testing.T) {
	req := require.New(t)
	g := db.New(3)

	req.NoError(g.AddVertex(1, 4, nil))
	req.NoError(g.AddEdge(2, 5, 9, nil))
	req.NoError(g.AddVertex(7, 2, nil))

	e, ok := g.View().EarliestTime()
	req.True(ok)
	req.Equal(int64(2), e)
	l, ok := g.View().LatestTime()
	req.True(ok)
	req.Equal(int64(9), l)

	we, ok := g.Window(3, 5).EarliestTime()
	req.True(ok)
	req.Equal(int64(4), we)
}

func TestVerticesIterationOrder(t *testing.T) {
	req := require.New(t)
	g := db.New(2)

	// Insertion order per shard defines local-id order.
	for _, gid := range []uint64{5, 2, 3, 8} {
		req.NoError(g.AddVertex(gid, 1, nil))
	}
	// Shard 0 holds 2, 8 (in insertion order); shard 1 holds 5, 3.
	req.Equal([]uint64{2, 8, 5, 3}, g.View().VertexIDs())
	req.Equal([]uint64{2, 8}, g.View().ShardVertexIDs(0))
	req.Equal([]uint64{5, 3}, g.View().ShardVertexIDs(1))
}

func TestConcurrentIngestion(t *testing.T) {
	req := require.New(t)
	g := db.New(4)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				gid := uint64(i % 50)
				_ = g.AddVertex(gid, int64(i), nil)
				_ = g.AddEdge(gid, uint64((i+1)%50), int64(i), nil)
			}
		}(w)
	}
	wg.Wait()

	req.Equal(50, g.Len())
	// Every logical edge counted exactly once regardless of write races.
	req.Equal(50, g.CountEdges())
}

// VertexViewSuite exercises the full vertex view surface on one fixed
// fixture.
type VertexViewSuite struct {
	suite.Suite
	g *db.GraphDB
}

func (s *VertexViewSuite) SetupTest() {
	s.g = db.New(2)
	s.Require().NoError(s.g.AddVertexWithName(1, 1, "alice", map[string]props.Prop{"score": props.F64(0.5)}))
	s.Require().NoError(s.g.AddEdge(1, 2, 2, nil))
	s.Require().NoError(s.g.AddEdge(3, 1, 3, nil))
	s.Require().NoError(s.g.AddEdge(1, 2, 7, nil))
	s.Require().NoError(s.g.AddVertex(1, 9, map[string]props.Prop{"score": props.F64(0.9)}))
}

func (s *VertexViewSuite) TestIdentity() {
	v, err := s.g.View().Vertex(1)
	s.Require().NoError(err)
	s.Equal(uint64(1), v.ID())
	s.Equal("alice", v.Name())

	v2, err := s.g.View().Vertex(2)
	s.Require().NoError(err)
	s.Equal("2", v2.Name())
}

func (s *VertexViewSuite) TestTimes() {
	v, err := s.g.View().Vertex(1)
	s.Require().NoError(err)

	e, ok := v.EarliestTime()
	s.True(ok)
	s.Equal(int64(1), e)
	l, ok := v.LatestTime()
	s.True(ok)
	s.Equal(int64(9), l)
	s.Equal([]int64{1, 2, 3, 7, 9}, v.History())
}

func (s *VertexViewSuite) TestDegrees() {
	v, err := s.g.View().Vertex(1)
	s.Require().NoError(err)

	s.Equal(1, v.OutDegree())
	s.Equal(1, v.InDegree())
	s.Equal(2, v.Degree())
}

func (s *VertexViewSuite) TestNeighboursAndEdges() {
	v, err := s.g.View().Vertex(1)
	s.Require().NoError(err)

	out := v.OutNeighbours()
	s.Require().Len(out, 1)
	s.Equal(uint64(2), out[0].ID())
	in := v.InNeighbours()
	s.Require().Len(in, 1)
	s.Equal(uint64(3), in[0].ID())
	s.Len(v.Neighbours(), 2)

	oe := v.OutEdges()
	s.Require().Len(oe, 1)
	s.Equal([]int64{2, 7}, oe[0].History())
	s.Len(v.Edges(), 2)
}

func (s *VertexViewSuite) TestWindowedVertexView() {
	v, err := s.g.View().Vertex(1)
	s.Require().NoError(err)

	wv := v.Window(0, 3)
	s.Equal(1, wv.OutDegree())
	s.Equal([]int64{1, 2}, wv.History())

	// Narrow past every event: structure vanishes.
	empty := v.Window(20, 30)
	s.Equal(0, empty.Degree())
	s.Empty(empty.History())
}

func (s *VertexViewSuite) TestProperties() {
	v, err := s.g.View().Vertex(1)
	s.Require().NoError(err)

	sc, ok := v.Property("score").AsF64()
	s.True(ok)
	s.Equal(0.9, sc)
	sc, ok = v.PropertyAt("score", 5).AsF64()
	s.True(ok)
	s.Equal(0.5, sc)
	s.Len(v.PropertyHistory("score"), 2)
	s.Equal([]string{"score"}, v.PropertyNames())
	s.False(v.Property("missing").IsSet())
}

func TestVertexViewSuite(t *testing.T) {
	suite.Run(t, new(VertexViewSuite))
}
