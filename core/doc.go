// Package core implements the temporal adjacency index owned by one shard.
//
// A TemporalGraph holds the shard's vertex table (dense local ids), the
// global-id → local-id map, per-vertex time-ordered adjacency, the shard's
// time index, and the temporal property histories of its vertices and
// edges. Every structural query accepts a Window and an optional layer so
// that views never materialize a sub-graph: traversal inspects edge event
// timestamps inline and skips edges with no event in the window.
//
// Edges whose endpoints live in different shards are stored as half-edges:
// the source's shard holds an out half, the destination's shard holds an
// into half, each naming the remote endpoint by global id. Local edges
// (both endpoints in the shard) are stored once and referenced from both
// adjacency maps.
//
// A TemporalGraph is NOT safe for concurrent use on its own. The owning
// shard wraps it in a reader-writer mutex and serializes all access; see
// the db package.
//
// Invariants:
//   - Local ids are assigned densely, monotonically, and never reused.
//   - Adjacency entries retain every event timestamp, so windowed degree
//     counts neighbours with at least one event in the window.
//   - EarliestTime(v) ≤ every timestamp in v's history ≤ LatestTime(v).
//
// Errors:
//
//	ErrVertexNotFound - requested vertex is not in this shard.
//	ErrEdgeNotFound   - requested edge is not in this shard.
package core
