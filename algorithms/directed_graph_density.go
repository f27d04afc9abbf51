package algorithms

import "github.com/Dullaz/Raphtory/db"

// DirectedGraphDensity measures how dense or sparse the viewed graph
// is: the ratio of edges present to edges possible,
// countEdges / (countVertices · (countVertices − 1)).
//
// Views with fewer than two vertices have no possible edge and score 0.
func DirectedGraphDensity(g db.View) float64 {
	n := g.CountVertices()
	if n < 2 {
		return 0
	}
	return float64(g.CountEdges()) / (float64(n) * (float64(n) - 1))
}
