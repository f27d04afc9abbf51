package task

import (
	"sort"

	"github.com/Dullaz/Raphtory/db"
	"github.com/Dullaz/Raphtory/state"
)

// AlgorithmResult maps vertex id → value for one finished computation.
// Results are ephemeral: they hold plain values, never store handles.
type AlgorithmResult[V any] struct {
	name   string
	values map[uint64]V
}

// Entry is one (vertex id, value) pair of a result.
type Entry[V any] struct {
	ID    uint64
	Value V
}

// NewAlgorithmResult wraps a finished value map.
func NewAlgorithmResult[V any](name string, values map[uint64]V) *AlgorithmResult[V] {
	if values == nil {
		values = make(map[uint64]V)
	}
	return &AlgorithmResult[V]{name: name, values: values}
}

// Name returns the algorithm name the result was produced by.
func (r *AlgorithmResult[V]) Name() string { return r.name }

// Len reports the number of vertices in the result.
func (r *AlgorithmResult[V]) Len() int { return len(r.values) }

// Get returns the value for vertex id.
func (r *AlgorithmResult[V]) Get(id uint64) (V, bool) {
	v, ok := r.values[id]
	return v, ok
}

// GetAll returns the full id → value map. The map is shared, not
// copied.
func (r *AlgorithmResult[V]) GetAll() map[uint64]V { return r.values }

// Entries returns the result ordered by vertex id ascending.
func (r *AlgorithmResult[V]) Entries() []Entry[V] {
	out := make([]Entry[V], 0, len(r.values))
	for id, v := range r.values {
		out = append(out, Entry[V]{ID: id, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// SortByValue returns the result ordered by less over values, ties
// broken by ascending vertex id.
func (r *AlgorithmResult[V]) SortByValue(less func(a, b V) bool) []Entry[V] {
	out := r.Entries()
	sort.SliceStable(out, func(i, j int) bool { return less(out[i].Value, out[j].Value) })
	return out
}

// Top returns the k first entries under less-descending ordering.
func (r *AlgorithmResult[V]) Top(k int, less func(a, b V) bool) []Entry[V] {
	out := r.SortByValue(func(a, b V) bool { return less(b, a) })
	if k < len(out) {
		out = out[:k]
	}
	return out
}

// FinalizeResult projects the run's merged partials of acc into an
// AlgorithmResult over the view's vertices.
func FinalizeResult[A, IN, OUT any](rs *RunState, acc state.AccID[A, IN, OUT], name string, view db.View) *AlgorithmResult[OUT] {
	values := make(map[uint64]OUT)
	for _, gid := range view.VertexIDs() {
		v, _ := state.ReadKey(rs.total, acc, rs.readSS, gid)
		values[gid] = v
	}
	return NewAlgorithmResult(name, values)
}

// GlobalResult returns the run's finalized global value of acc.
func GlobalResult[A, IN, OUT any](rs *RunState, acc state.AccID[A, IN, OUT]) (OUT, bool) {
	return state.ReadGlobal(rs.total, acc, rs.readSS)
}
