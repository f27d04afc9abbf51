// Package task runs vertex-centric computations over a graph view in
// bulk-synchronous supersteps.
//
// A computation is a list of per-vertex steps (step i runs in superstep
// i; the last step repeats when supersteps outnumber steps), an optional
// single-threaded global step, a set of declared accumulators, and a
// termination rule (max supersteps, or every vertex voting Done with no
// pending wake-ups).
//
// Each superstep partitions the store's shards across a worker pool.
// Workers iterate their shards' vertices in local-id order, invoking the
// step with an EvalVertex handle exposing the vertex view, reads of the
// current-parity state, writes into the next parity, and global updates.
// Workers fold writes into worker-local shuffle states; at the barrier
// the runner merges them into the canonical state, routing every key to
// its owning shard, runs the global step, and flips parity. Accumulator
// combines are commutative, so results are independent of worker
// interleaving.
//
// The store is assumed quiescent for the duration of a run; the runner
// snapshots the active vertex set up front and takes shard read locks
// only inside individual view calls.
//
// A panic in user code aborts the whole run: in-flight vertices finish,
// partial state is discarded, and the error surfaces as
// ErrComputeAborted. Cancel is cooperative and observed at barriers,
// surfacing the same error. The store itself is never touched by
// compute state.
//
// Errors:
//
//	ErrComputeAborted - user step panicked, or Cancel was observed.
package task
