package task

import (
	"github.com/Dullaz/Raphtory/db"
	"github.com/Dullaz/Raphtory/state"
)

// Action is a step's verdict for one vertex.
type Action uint8

const (
	// Continue keeps the vertex in the active set next superstep.
	Continue Action = iota
	// Done votes to halt; the vertex skips further supersteps until a
	// neighbour wakes it.
	Done
)

// Step is one per-vertex function of the computation.
type Step func(ev *EvalVertex) Action

// GlobalStep runs single-threaded after each superstep's barrier, over
// the merged state.
type GlobalStep func(ge *EvalGlobal)

// EvalVertex is the handle a step receives for one active vertex. It
// exposes the vertex view, reads of the current-parity state, writes
// into the next parity (via the worker-local shuffle state, merged at
// the barrier), and wake-up votes for neighbours.
//
// Go methods cannot introduce type parameters, so the typed state
// operations are package-level functions over the handle: Update,
// GlobalUpdate, Read, ReadKey, ReadGlobal.
type EvalVertex struct {
	vertex db.VertexView
	ss     int
	local  *state.ShuffleState // writes, parity ss+1
	total  *state.ShuffleState // reads, parity ss
}

// V returns the vertex view, windowed like the computation's view.
func (ev *EvalVertex) V() db.VertexView { return ev.vertex }

// ID returns the vertex's global id.
func (ev *EvalVertex) ID() uint64 { return ev.vertex.ID() }

// Superstep returns the current superstep number.
func (ev *EvalVertex) Superstep() int { return ev.ss }

// WakeUp marks the vertex gid active for the next superstep. Waking a
// vertex in another shard is routed through the shuffle like any other
// accumulator write.
func (ev *EvalVertex) WakeUp(gid uint64) {
	state.Accumulate(ev.local, wakeAcc(), ev.ss+1, gid, true)
}

// Update folds v into acc's partial for this vertex, visible after the
// barrier.
func Update[A, IN, OUT any](ev *EvalVertex, acc state.AccID[A, IN, OUT], v IN) {
	state.Accumulate(ev.local, acc, ev.ss+1, ev.ID(), v)
}

// UpdateKey folds v into acc's partial for an arbitrary key, visible
// after the barrier. Keys owned by other shards are exchanged at the
// shuffle.
func UpdateKey[A, IN, OUT any](ev *EvalVertex, acc state.AccID[A, IN, OUT], key uint64, v IN) {
	state.Accumulate(ev.local, acc, ev.ss+1, key, v)
}

// GlobalUpdate folds v into acc's single global partial, visible after
// the barrier.
func GlobalUpdate[A, IN, OUT any](ev *EvalVertex, acc state.AccID[A, IN, OUT], v IN) {
	state.AccumulateGlobal(ev.local, acc, ev.ss+1, v)
}

// Read returns acc's finalized current-parity value for this vertex.
func Read[A, IN, OUT any](ev *EvalVertex, acc state.AccID[A, IN, OUT]) (OUT, bool) {
	return state.ReadKey(ev.total, acc, ev.ss, ev.ID())
}

// ReadKey returns acc's finalized current-parity value for any key.
func ReadKey[A, IN, OUT any](ev *EvalVertex, acc state.AccID[A, IN, OUT], key uint64) (OUT, bool) {
	return state.ReadKey(ev.total, acc, ev.ss, key)
}

// ReadGlobal returns acc's finalized current-parity global value.
func ReadGlobal[A, IN, OUT any](ev *EvalVertex, acc state.AccID[A, IN, OUT]) (OUT, bool) {
	return state.ReadGlobal(ev.total, acc, ev.ss)
}

// EvalGlobal is the handle a GlobalStep receives: single-threaded
// access to the merged post-barrier state.
type EvalGlobal struct {
	ss    int // superstep that just finished
	total *state.ShuffleState
}

// Superstep returns the superstep that just completed.
func (ge *EvalGlobal) Superstep() int { return ge.ss }

// GlobalRead returns acc's finalized global value after the barrier.
func GlobalRead[A, IN, OUT any](ge *EvalGlobal, acc state.AccID[A, IN, OUT]) (OUT, bool) {
	return state.ReadGlobal(ge.total, acc, ge.ss+1)
}

// GlobalWrite folds v into acc's global partial in place.
func GlobalWrite[A, IN, OUT any](ge *EvalGlobal, acc state.AccID[A, IN, OUT], v IN) {
	state.AccumulateGlobal(ge.total, acc, ge.ss+1, v)
}

// GlobalReadKey returns acc's finalized value for key after the
// barrier.
func GlobalReadKey[A, IN, OUT any](ge *EvalGlobal, acc state.AccID[A, IN, OUT], key uint64) (OUT, bool) {
	return state.ReadKey(ge.total, acc, ge.ss+1, key)
}
