package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Dullaz/Raphtory/algorithms"
	"github.com/Dullaz/Raphtory/db"
)

func TestDegreeCentrality(t *testing.T) {
	req := require.New(t)

	g := db.New(2)
	edges := [][2]uint64{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}}
	for _, e := range edges {
		req.NoError(g.AddEdge(e[0], e[1], 0, nil))
	}

	res, err := algorithms.DegreeCentrality(g.View(), 0)
	req.NoError(err)

	want := map[uint64]float64{
		0: 1.0,
		1: 1.0,
		2: 2.0 / 3.0,
		3: 2.0 / 3.0,
	}
	req.Equal(want, res.GetAll())
}

func TestDegreeCentralityEmptyGraph(t *testing.T) {
	req := require.New(t)
	g := db.New(2)

	res, err := algorithms.DegreeCentrality(g.View(), 0)
	req.NoError(err)
	req.Equal(0, res.Len())
}

func TestDegreeCentralityZeroMaxDegreeScoresZero(t *testing.T) {
	req := require.New(t)
	g := db.New(2)

	// Isolated vertices: max degree is zero; every score must be zero,
	// never NaN.
	req.NoError(g.AddVertex(1, 1, nil))
	req.NoError(g.AddVertex(2, 1, nil))

	res, err := algorithms.DegreeCentrality(g.View(), 0)
	req.NoError(err)
	for _, e := range res.Entries() {
		req.Equal(0.0, e.Value)
	}
}

func TestMaxDegree(t *testing.T) {
	req := require.New(t)
	g := db.New(2)

	req.NoError(g.AddEdge(1, 2, 1, nil))
	req.NoError(g.AddEdge(1, 3, 2, nil))
	req.NoError(g.AddEdge(1, 4, 3, nil))

	req.Equal(3, algorithms.MaxDegree(g.View()))
	req.Equal(1, algorithms.MinDegree(g.View()))
	req.Equal(1.5, algorithms.AverageDegree(g.View()))
	// Windowing shrinks degrees along with everything else.
	req.Equal(1, algorithms.MaxDegree(g.Window(0, 2)))
}

func TestResultAdapters(t *testing.T) {
	req := require.New(t)
	g := db.New(2)

	req.NoError(g.AddEdge(1, 2, 1, nil))
	req.NoError(g.AddEdge(1, 3, 2, nil))

	res, err := algorithms.DegreeCentrality(g.View(), 0)
	req.NoError(err)

	top := res.Top(1, func(a, b float64) bool { return a < b })
	req.Len(top, 1)
	req.Equal(uint64(1), top[0].ID)
	req.Equal(1.0, top[0].Value)

	entries := res.Entries()
	req.Len(entries, 3)
	req.Equal(uint64(1), entries[0].ID)
}
