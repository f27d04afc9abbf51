package core

import (
	"errors"
	"math"
	"sort"

	"github.com/Dullaz/Raphtory/props"
)

// Sentinel errors for shard-local graph operations.
var (
	// ErrVertexNotFound indicates the vertex is not stored in this shard.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates the edge is not stored in this shard.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// edgeKind distinguishes shard-local edges from the two halves of a
// cross-shard edge.
type edgeKind uint8

const (
	edgeLocal edgeKind = iota // both endpoints in this shard
	edgeOutHalf               // src local, dst remote; this shard owns the count
	edgeInHalf                // dst local, src remote
)

// edgeEvent is one timestamped occurrence of an edge on a layer.
type edgeEvent struct {
	ts    int64
	layer int
}

// tEdge is the stored form of one (src, dst) edge: every occurrence
// timestamp plus the temporal property history.
type tEdge struct {
	src, dst uint64
	kind     edgeKind
	events   []edgeEvent // sorted by ts; duplicates allowed
	props    props.Store
}

// addEvent inserts (ts, layer) keeping events sorted by ts.
// Appends at or past the max timestamp are O(1) amortized.
func (e *tEdge) addEvent(ts int64, layer int) {
	n := len(e.events)
	if n == 0 || ts >= e.events[n-1].ts {
		e.events = append(e.events, edgeEvent{ts: ts, layer: layer})
		return
	}
	i := sort.Search(n, func(k int) bool { return e.events[k].ts > ts })
	e.events = append(e.events, edgeEvent{})
	copy(e.events[i+1:], e.events[i:])
	e.events[i] = edgeEvent{ts: ts, layer: layer}
}

// activeIn reports whether the edge has at least one event inside w on
// the given layer (LayerAll matches any layer).
//
// Complexity: O(log n) plus a scan of the in-window run when filtering
// by layer.
func (e *tEdge) activeIn(w Window, layer int) bool {
	if w.Empty() {
		return false
	}
	lo := sort.Search(len(e.events), func(k int) bool { return e.events[k].ts >= w.Start })
	for i := lo; i < len(e.events) && e.events[i].ts < w.End; i++ {
		if layer == LayerAll || e.events[i].layer == layer {
			return true
		}
	}
	return false
}

// timesIn returns the event timestamps inside w on the given layer.
func (e *tEdge) timesIn(w Window, layer int) []int64 {
	var out []int64
	lo := sort.Search(len(e.events), func(k int) bool { return e.events[k].ts >= w.Start })
	for i := lo; i < len(e.events) && e.events[i].ts < w.End; i++ {
		if layer == LayerAll || e.events[i].layer == layer {
			out = append(out, e.events[i].ts)
		}
	}
	return out
}

// vertexEntry is one row of the shard's vertex table.
type vertexEntry struct {
	gid     uint64
	name    string
	history []int64 // sorted unique event timestamps
	props   props.Store

	out  map[uint64]*tEdge // dst gid → edge (local and out halves)
	into map[uint64]*tEdge // src gid → edge (local mirrors and in halves)
}

// recordEvent appends ts to the vertex history, keeping it sorted and
// deduplicated.
func (v *vertexEntry) recordEvent(ts int64) {
	n := len(v.history)
	if n == 0 || ts > v.history[n-1] {
		v.history = append(v.history, ts)
		return
	}
	i := sort.Search(n, func(k int) bool { return v.history[k] >= ts })
	if i < n && v.history[i] == ts {
		return
	}
	v.history = append(v.history, 0)
	copy(v.history[i+1:], v.history[i:])
	v.history[i] = ts
}

// activeIn reports whether the vertex has at least one event inside w.
func (v *vertexEntry) activeIn(w Window) bool {
	if w.Empty() {
		return false
	}
	i := sort.Search(len(v.history), func(k int) bool { return v.history[k] >= w.Start })
	return i < len(v.history) && v.history[i] < w.End
}

// TemporalGraph is the adjacency index of one shard.
//
// Not safe for concurrent use; the owning shard serializes access with a
// reader-writer mutex.
type TemporalGraph struct {
	lids  map[uint64]int // gid → dense local id
	verts []*vertexEntry // indexed by local id

	ownedEdges int // local edges + out halves; logical edges counted once

	timeIdx timeIndex

	propDict  *props.Dict // shared across shards of one store
	layerDict *props.Dict // shared across shards of one store

	earliest int64
	latest   int64
}

// NewTemporalGraph returns an empty shard index. The two dictionaries
// are shared by every shard of the store so that interned ids agree on
// both halves of a cross-shard edge.
func NewTemporalGraph(propDict, layerDict *props.Dict) *TemporalGraph {
	return &TemporalGraph{
		lids:      make(map[uint64]int),
		timeIdx:   newTimeIndex(),
		propDict:  propDict,
		layerDict: layerDict,
		earliest:  math.MaxInt64,
		latest:    math.MinInt64,
	}
}

// PropDict exposes the shared property-name interner.
func (g *TemporalGraph) PropDict() *props.Dict { return g.propDict }

// LayerDict exposes the shared layer-name interner.
func (g *TemporalGraph) LayerDict() *props.Dict { return g.layerDict }
