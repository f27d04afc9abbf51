// Package state implements the typed accumulator algebra and the compute
// state it folds into during a vertex-centric run.
//
// An accumulator is declared once with an integer id and a strategy and
// bundles four capabilities: zero (identity), add (fold a delta),
// combine (associative, commutative merge of two partials), and finalize
// (projection into the output value). Built-ins cover sum, min, max, avg,
// bounded top-k, any/all, and first/last-write (the only non-commutative
// pair, ordered by an explicit write-order tag).
//
// Compute state is double-buffered by superstep parity: during superstep
// ss, reads see the buffer ss mod 2 and writes fold into the buffer
// (ss+1) mod 2, giving read/write isolation without per-key locking. At
// the start of each superstep the next buffer is seeded from the current
// one so unwritten keys persist.
//
// A ShardState holds the (accumulator id → container) partials of one
// shard; containers are dense vectors (keys are arithmetically dense
// within a shard) or sparse maps, chosen by the accumulator's declared
// strategy. A ShuffleState holds one ShardState per shard plus a global
// part; Shuffle routes every partial to the shard owning its key
// (key mod N) and combines, after which each key resides only in its
// owner and re-running the shuffle is a no-op.
//
// Go methods cannot introduce type parameters, so the typed operations
// are package-level generic functions taking the state as their first
// argument: Declare, AccumulateInto, ReadPartial, FinalizeShard, and
// the ShuffleState counterparts.
package state
