// Package db exposes the sharded temporal graph store and its read views.
//
// A GraphDB partitions vertices across a fixed number of shards by
// shardOf(gid) = gid mod N. Each shard owns one core.TemporalGraph behind
// a reader-writer mutex: writes take the exclusive lock, reads the shared
// lock, and no shard ever locks another shard. An edge whose endpoints
// map to different shards is written twice, as an out half in the source
// shard followed by an into half in the destination shard. The two writes
// are not atomic across shards; a concurrent reader can observe the out
// half before the into half. Compute runs on a quiescent store and is
// unaffected.
//
// All structural queries go through a View, an immutable value carrying
// the store, a time window, and an optional layer. Composing windows
// intersects them; an empty intersection yields a view for which every
// query returns zero or nothing. Views never materialize a sub-graph.
//
// Errors:
//
//	ErrUnknownVertex - Vertex()/Edge() on an id absent from the view.
//	ErrUnknownEdge   - Edge() on a pair with no in-view events.
//	ErrInvalidTime   - write with a timestamp older than the store's
//	                   latest event while strict time is enabled.
package db
