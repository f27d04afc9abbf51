package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Dullaz/Raphtory/builder"
)

func TestCompleteTopology(t *testing.T) {
	req := require.New(t)

	g, err := builder.Build(2, nil, builder.Complete(4))
	req.NoError(err)

	req.Equal(4, g.Len())
	req.Equal(12, g.CountEdges()) // n·(n−1) ordered pairs
	for _, v := range g.View().Vertices() {
		req.Equal(3, v.OutDegree())
		req.Equal(3, v.InDegree())
	}
}

func TestCycleAndPathTopologies(t *testing.T) {
	req := require.New(t)

	g, err := builder.Build(3, nil, builder.Cycle(5))
	req.NoError(err)
	req.Equal(5, g.Len())
	req.Equal(5, g.CountEdges())
	req.True(g.View().HasEdge(5, 1))

	p, err := builder.Build(1, nil, builder.Path(4))
	req.NoError(err)
	req.Equal(3, p.CountEdges())
	req.True(p.View().HasEdge(1, 2))
	req.False(p.View().HasEdge(4, 1))
}

func TestStarTopology(t *testing.T) {
	req := require.New(t)

	g, err := builder.Build(2, nil, builder.Star(6))
	req.NoError(err)

	hub, err2 := g.View().Vertex(1)
	req.NoError(err2)
	req.Equal(5, hub.OutDegree())
	req.Equal(0, hub.InDegree())
}

func TestClockStampsSequentialEvents(t *testing.T) {
	req := require.New(t)

	g, err := builder.Build(1,
		[]builder.Option{builder.WithStartTime(100), builder.WithTimeStep(10)},
		builder.Path(3))
	req.NoError(err)

	ev, err2 := g.View().Edge(1, 2)
	req.NoError(err2)
	req.Equal([]int64{100}, ev.History())
	ev, err2 = g.View().Edge(2, 3)
	req.NoError(err2)
	req.Equal([]int64{110}, ev.History())

	// Events stamped before the start time are out of view.
	req.Equal(0, g.Window(0, 100).CountEdges())
	req.Equal(2, g.Window(100, 111).CountEdges())
}

func TestComposedConstructorsShareClock(t *testing.T) {
	req := require.New(t)

	g, err := builder.Build(2, nil,
		builder.Path(3),                           // events 0, 1
		builder.Star(4, builder.WithLayer("fan"))) // events 2, 3, 4
	req.NoError(err)

	req.Equal(3, g.Layer("fan").CountEdges())
	// 1→2 exists on both layers and counts once: (1,2),(2,3),(1,3),(1,4).
	req.Equal(4, g.CountEdges())
	l, ok := g.View().LatestTime()
	req.True(ok)
	req.Equal(int64(4), l)
}

func TestTooFewVertices(t *testing.T) {
	req := require.New(t)

	_, err := builder.Build(1, nil, builder.Complete(0))
	req.ErrorIs(err, builder.ErrTooFewVertices)
	_, err = builder.Build(1, nil, builder.Cycle(2))
	req.ErrorIs(err, builder.ErrTooFewVertices)
	_, err = builder.Build(1, nil, builder.Star(1))
	req.ErrorIs(err, builder.ErrTooFewVertices)
}
