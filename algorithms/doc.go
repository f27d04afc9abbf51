// Package algorithms composes the store, view, and task primitives into
// ready-made graph measures. Nothing here reaches into shard internals:
// every algorithm runs over a db.View and, where it is vertex-centric,
// through the task runner and its accumulators.
package algorithms
