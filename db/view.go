package db

import (
	"github.com/Dullaz/Raphtory/core"
)

// layerNone marks a view filtered by a layer name that was never
// interned; nothing can match it.
const layerNone = -2

// View is an immutable filter-projection of the store: a time window
// plus an optional edge layer. Views are small values; copying one is
// free and windowing never materializes a sub-graph.
//
// Aggregate queries take shard read locks one at a time in ascending
// shard-id order.
type View struct {
	db    *GraphDB
	w     core.Window
	layer int
}

// DB returns the underlying store.
func (v View) DB() *GraphDB { return v.db }

// TimeWindow returns the view's half-open interval.
func (v View) TimeWindow() core.Window { return v.w }

// Window narrows the view to the intersection of its window and
// [start, end).
func (v View) Window(start, end int64) View {
	v.w = v.w.Intersect(core.NewWindow(start, end))
	return v
}

// At narrows the view to all events at or before ts.
func (v View) At(ts int64) View {
	v.w = v.w.Intersect(core.Until(ts))
	return v
}

// Layer restricts edge traversal to the named layer. Layering an
// already-layered view replaces the layer. An unknown name yields a
// view whose edge queries match nothing.
func (v View) Layer(name string) View {
	id, ok := v.db.layerDict.Lookup(name)
	if !ok {
		v.layer = layerNone
		return v
	}
	v.layer = id
	return v
}

// CountVertices reports the number of distinct vertices with at least
// one event inside the view.
func (v View) CountVertices() int {
	n := 0
	for _, s := range v.db.shards {
		s.read(func(g *core.TemporalGraph) {
			if v.w == core.All() {
				n += g.Len()
			} else {
				n += g.LenWindow(v.w)
			}
		})
	}
	return n
}

// CountEdges reports the number of logical edges with at least one
// event inside the view; a cross-shard edge counts once, in its source
// shard.
func (v View) CountEdges() int {
	n := 0
	for _, s := range v.db.shards {
		s.read(func(g *core.TemporalGraph) {
			n += g.CountEdges(v.w, v.layer)
		})
	}
	return n
}

// HasVertex reports whether gid has at least one event inside the view.
func (v View) HasVertex(gid uint64) bool {
	var ok bool
	v.db.shards[v.db.ShardOf(gid)].read(func(g *core.TemporalGraph) {
		ok = g.HasVertex(gid, v.w)
	})
	return ok
}

// HasEdge reports whether src→dst has at least one event inside the
// view. The edge is looked up in the source shard, which stores every
// outgoing edge of src.
func (v View) HasEdge(src, dst uint64) bool {
	var ok bool
	v.db.shards[v.db.ShardOf(src)].read(func(g *core.TemporalGraph) {
		_, ok = g.EdgeBetween(src, dst, v.w, v.layer)
	})
	return ok
}

// Vertex returns a view of gid, or ErrUnknownVertex when gid has no
// event inside the view.
func (v View) Vertex(gid uint64) (VertexView, error) {
	if !v.HasVertex(gid) {
		return VertexView{}, ErrUnknownVertex
	}
	return VertexView{view: v, gid: gid}, nil
}

// Edge returns a view of the src→dst edge, or ErrUnknownEdge when the
// pair has no event inside the view.
func (v View) Edge(src, dst uint64) (EdgeView, error) {
	if !v.HasEdge(src, dst) {
		return EdgeView{}, ErrUnknownEdge
	}
	return EdgeView{view: v, src: src, dst: dst}, nil
}

// VertexIDs returns the global ids of in-view vertices, iterating
// shards in ascending id order and each shard in local-id order.
func (v View) VertexIDs() []uint64 {
	var out []uint64
	for _, s := range v.db.shards {
		s.read(func(g *core.TemporalGraph) {
			out = append(out, g.VertexIDs(v.w)...)
		})
	}
	return out
}

// Vertices returns views of every in-view vertex in VertexIDs order.
func (v View) Vertices() []VertexView {
	ids := v.VertexIDs()
	out := make([]VertexView, len(ids))
	for i, gid := range ids {
		out[i] = VertexView{view: v, gid: gid}
	}
	return out
}

// Edges returns views of every in-view logical edge, each counted once
// in its source shard.
func (v View) Edges() []EdgeView {
	var out []EdgeView
	for _, s := range v.db.shards {
		s.read(func(g *core.TemporalGraph) {
			for _, e := range g.AllEdges(v.w, v.layer) {
				out = append(out, EdgeView{view: v, src: e.Src, dst: e.Dst})
			}
		})
	}
	return out
}

// EarliestTime returns the earliest in-view event timestamp. On the
// unbounded window this reads the per-shard bounds; a windowed view
// derives it from the histories of in-window vertices.
func (v View) EarliestTime() (int64, bool) {
	best, found := int64(0), false
	for _, s := range v.db.shards {
		s.read(func(g *core.TemporalGraph) {
			if v.w == core.All() {
				if t, ok := g.EarliestTime(); ok && (!found || t < best) {
					best, found = t, true
				}
				return
			}
			for _, gid := range g.VertexIDs(v.w) {
				if t, ok := g.VertexEarliest(gid, v.w); ok && (!found || t < best) {
					best, found = t, true
				}
			}
		})
	}
	return best, found
}

// LatestTime returns the latest in-view event timestamp.
func (v View) LatestTime() (int64, bool) {
	best, found := int64(0), false
	for _, s := range v.db.shards {
		s.read(func(g *core.TemporalGraph) {
			if v.w == core.All() {
				if t, ok := g.LatestTime(); ok && (!found || t > best) {
					best, found = t, true
				}
				return
			}
			for _, gid := range g.VertexIDs(v.w) {
				if t, ok := g.VertexLatest(gid, v.w); ok && (!found || t > best) {
					best, found = t, true
				}
			}
		})
	}
	return best, found
}

// VertexUnchecked returns a handle on gid without a presence check.
// Queries through the handle return absence values when the vertex has
// no in-view events. The compute runtime uses this on its snapshotted
// active set to avoid a lock round-trip per vertex.
func (v View) VertexUnchecked(gid uint64) VertexView {
	return VertexView{view: v, gid: gid}
}

// ShardVertexIDs returns the global ids of in-view vertices owned by
// shard i, in local-id order.
func (v View) ShardVertexIDs(i int) []uint64 {
	var out []uint64
	v.db.shards[i].read(func(g *core.TemporalGraph) {
		out = g.VertexIDs(v.w)
	})
	return out
}
