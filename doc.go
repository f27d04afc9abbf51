// Package raphtory is an in-memory temporal graph database with a
// vertex-centric parallel computation engine.
//
// Clients ingest a stream of timestamped vertex and edge events and
// query structural and temporal properties over arbitrary time windows.
// Every entity carries a history: vertices and edges are valid at the
// times they were observed, and views restrict computation to a subset
// of that history without ever materializing a sub-graph.
//
// The module is organized into per-concern packages:
//
//	props/      — typed property values, interned names, temporal histories
//	core/       — the per-shard temporal adjacency index
//	db/         — the sharded store, half-edge dispatch, windowed views
//	state/      — accumulator algebra and double-buffered compute state
//	task/       — the bulk-synchronous vertex-centric task runner
//	algorithms/ — measures composed from the primitives above
//	builder/    — deterministic temporal graph fixtures for tests
//
// Quick tour:
//
//	g := db.New(4)
//	_ = g.AddEdge(1, 2, 10, nil)
//	week := g.Window(0, 7*86400)
//	res, _ := algorithms.DegreeCentrality(week, 0)
//
// The store partitions vertices across shards by id; cross-shard edges
// are stored as a half-edge in each endpoint's shard, so traversal
// never locks more than one shard at a time. Computation runs in
// supersteps over a quiescent store, folding per-vertex updates into
// typed accumulators that are shuffled and merged between rounds.
package raphtory
