package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Dullaz/Raphtory/algorithms"
	"github.com/Dullaz/Raphtory/db"
)

func TestLowGraphDensity(t *testing.T) {
	req := require.New(t)
	g := db.New(2)

	edges := []struct {
		t        int64
		src, dst uint64
	}{
		{1, 1, 2}, {2, 1, 3}, {3, 2, 1}, {4, 3, 2}, {5, 1, 4}, {6, 4, 5},
	}
	for _, e := range edges {
		req.NoError(g.AddEdge(e.src, e.dst, e.t, nil))
	}

	req.Equal(0.3, algorithms.DirectedGraphDensity(g.Window(0, 7)))
}

func TestCompleteGraphDensityIsOne(t *testing.T) {
	req := require.New(t)
	g := db.New(2)

	req.NoError(g.AddEdge(1, 2, 1, nil))
	req.NoError(g.AddEdge(2, 1, 2, nil))

	req.Equal(1.0, algorithms.DirectedGraphDensity(g.Window(0, 3)))
}

func TestDensityGuardsSmallGraphs(t *testing.T) {
	req := require.New(t)

	g := db.New(2)
	req.Equal(0.0, algorithms.DirectedGraphDensity(g.View()))

	req.NoError(g.AddVertex(1, 1, nil))
	req.Equal(0.0, algorithms.DirectedGraphDensity(g.View()))
}

func TestDensityWindowExcludesLateEvents(t *testing.T) {
	req := require.New(t)
	g := db.New(2)

	req.NoError(g.AddEdge(1, 2, 1, nil))
	req.NoError(g.AddEdge(2, 1, 9, nil)) // outside the window

	// Only 1→2 is in view: 1 edge over 2·1 possible.
	req.Equal(0.5, algorithms.DirectedGraphDensity(g.Window(0, 3)))
}
