package db

import (
	"github.com/Dullaz/Raphtory/core"
	"github.com/Dullaz/Raphtory/props"
)

// VertexView is a read handle on one vertex restricted to a view. All
// structural and temporal queries evaluate lazily against the owning
// shard under its read lock; reads of missing state return absence
// values rather than errors.
type VertexView struct {
	view View
	gid  uint64
}

func (vv VertexView) shardRead(f func(g *core.TemporalGraph)) {
	vv.view.db.shards[vv.view.db.ShardOf(vv.gid)].read(f)
}

// ID returns the global vertex id.
func (vv VertexView) ID() uint64 { return vv.gid }

// Name returns the client-set name, or the decimal id when unset.
func (vv VertexView) Name() string {
	var name string
	vv.shardRead(func(g *core.TemporalGraph) {
		name, _ = g.Name(vv.gid)
	})
	return name
}

// EarliestTime returns the vertex's first in-view event timestamp.
func (vv VertexView) EarliestTime() (int64, bool) {
	var t int64
	var ok bool
	vv.shardRead(func(g *core.TemporalGraph) {
		t, ok = g.VertexEarliest(vv.gid, vv.view.w)
	})
	return t, ok
}

// LatestTime returns the vertex's last in-view event timestamp.
func (vv VertexView) LatestTime() (int64, bool) {
	var t int64
	var ok bool
	vv.shardRead(func(g *core.TemporalGraph) {
		t, ok = g.VertexLatest(vv.gid, vv.view.w)
	})
	return t, ok
}

// History returns the vertex's in-view event timestamps, ascending.
func (vv VertexView) History() []int64 {
	var h []int64
	vv.shardRead(func(g *core.TemporalGraph) {
		h = g.VertexHistory(vv.gid, vv.view.w)
	})
	return h
}

// Degree counts distinct neighbours with an in-view edge event.
func (vv VertexView) Degree() int { return vv.degree(core.Both) }

// InDegree counts distinct in-neighbours with an in-view edge event.
func (vv VertexView) InDegree() int { return vv.degree(core.In) }

// OutDegree counts distinct out-neighbours with an in-view edge event.
func (vv VertexView) OutDegree() int { return vv.degree(core.Out) }

func (vv VertexView) degree(dir core.Direction) int {
	var n int
	vv.shardRead(func(g *core.TemporalGraph) {
		n = g.Degree(vv.gid, dir, vv.view.w, vv.view.layer)
	})
	return n
}

// Edges returns the in-view edges incident to the vertex.
func (vv VertexView) Edges() []EdgeView { return vv.edges(core.Both) }

// InEdges returns the in-view edges pointing into the vertex.
func (vv VertexView) InEdges() []EdgeView { return vv.edges(core.In) }

// OutEdges returns the in-view edges pointing out of the vertex.
func (vv VertexView) OutEdges() []EdgeView { return vv.edges(core.Out) }

func (vv VertexView) edges(dir core.Direction) []EdgeView {
	var snaps []core.Edge
	vv.shardRead(func(g *core.TemporalGraph) {
		snaps = g.Edges(vv.gid, dir, vv.view.w, vv.view.layer)
	})
	out := make([]EdgeView, len(snaps))
	for i, e := range snaps {
		out[i] = EdgeView{view: vv.view, src: e.Src, dst: e.Dst}
	}
	return out
}

// Neighbours returns views of the distinct in-view neighbours, sorted
// by id.
func (vv VertexView) Neighbours() []VertexView { return vv.neighbours(core.Both) }

// InNeighbours returns views of the distinct in-view in-neighbours.
func (vv VertexView) InNeighbours() []VertexView { return vv.neighbours(core.In) }

// OutNeighbours returns views of the distinct in-view out-neighbours.
func (vv VertexView) OutNeighbours() []VertexView { return vv.neighbours(core.Out) }

func (vv VertexView) neighbours(dir core.Direction) []VertexView {
	var ids []uint64
	vv.shardRead(func(g *core.TemporalGraph) {
		ids = g.Neighbours(vv.gid, dir, vv.view.w, vv.view.layer)
	})
	out := make([]VertexView, len(ids))
	for i, gid := range ids {
		out[i] = VertexView{view: vv.view, gid: gid}
	}
	return out
}

// Property returns the value of the named property as of the view's
// upper bound (exclusive), i.e. the latest in-view value.
func (vv VertexView) Property(name string) props.Prop {
	return vv.PropertyAt(name, vv.view.w.End-1)
}

// PropertyAt returns the value of the named property as of ts.
func (vv VertexView) PropertyAt(name string, ts int64) props.Prop {
	var p props.Prop
	vv.shardRead(func(g *core.TemporalGraph) {
		p = g.VertexPropAt(vv.gid, name, ts)
	})
	return p
}

// PropertyHistory returns the in-view history of the named property.
func (vv VertexView) PropertyHistory(name string) []props.TimedProp {
	var h []props.TimedProp
	vv.shardRead(func(g *core.TemporalGraph) {
		h = g.VertexPropHistory(vv.gid, name, vv.view.w)
	})
	return h
}

// PropertyNames returns the names of every property written to the
// vertex.
func (vv VertexView) PropertyNames() []string {
	var names []string
	vv.shardRead(func(g *core.TemporalGraph) {
		names = g.VertexPropNames(vv.gid)
	})
	return names
}

// Window narrows the vertex view to the intersection with [start, end).
func (vv VertexView) Window(start, end int64) VertexView {
	vv.view = vv.view.Window(start, end)
	return vv
}

// At narrows the vertex view to all events at or before ts.
func (vv VertexView) At(ts int64) VertexView {
	vv.view = vv.view.At(ts)
	return vv
}
