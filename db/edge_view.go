package db

import (
	"github.com/Dullaz/Raphtory/core"
	"github.com/Dullaz/Raphtory/props"
)

// EdgeView is a read handle on one logical edge restricted to a view.
// All queries resolve in the source endpoint's shard, which stores
// every outgoing edge of the source (local edges and out halves alike).
type EdgeView struct {
	view View
	src  uint64
	dst  uint64
}

func (ev EdgeView) shardRead(f func(g *core.TemporalGraph)) {
	ev.view.db.shards[ev.view.db.ShardOf(ev.src)].read(f)
}

// Src returns a view of the source vertex.
func (ev EdgeView) Src() VertexView { return VertexView{view: ev.view, gid: ev.src} }

// Dst returns a view of the destination vertex.
func (ev EdgeView) Dst() VertexView { return VertexView{view: ev.view, gid: ev.dst} }

// SrcID returns the source global id.
func (ev EdgeView) SrcID() uint64 { return ev.src }

// DstID returns the destination global id.
func (ev EdgeView) DstID() uint64 { return ev.dst }

// History returns the edge's in-view occurrence timestamps, ascending.
func (ev EdgeView) History() []int64 {
	var times []int64
	ev.shardRead(func(g *core.TemporalGraph) {
		if e, ok := g.EdgeBetween(ev.src, ev.dst, ev.view.w, ev.view.layer); ok {
			times = e.Times
		}
	})
	return times
}

// Active reports whether the edge has at least one in-view occurrence.
func (ev EdgeView) Active() bool { return len(ev.History()) > 0 }

// EarliestTime returns the first in-view occurrence timestamp.
func (ev EdgeView) EarliestTime() (int64, bool) {
	h := ev.History()
	if len(h) == 0 {
		return 0, false
	}
	return h[0], true
}

// LatestTime returns the last in-view occurrence timestamp.
func (ev EdgeView) LatestTime() (int64, bool) {
	h := ev.History()
	if len(h) == 0 {
		return 0, false
	}
	return h[len(h)-1], true
}

// PropertyAt returns the value of the named edge property as of ts.
func (ev EdgeView) PropertyAt(name string, ts int64) props.Prop {
	var p props.Prop
	ev.shardRead(func(g *core.TemporalGraph) {
		p = g.EdgePropAt(ev.src, ev.dst, name, ts)
	})
	return p
}

// PropertyHistory returns the in-view history of the named edge
// property.
func (ev EdgeView) PropertyHistory(name string) []props.TimedProp {
	var h []props.TimedProp
	ev.shardRead(func(g *core.TemporalGraph) {
		h = g.EdgePropHistory(ev.src, ev.dst, name, ev.view.w)
	})
	return h
}

// Window narrows the edge view to the intersection with [start, end).
func (ev EdgeView) Window(start, end int64) EdgeView {
	ev.view = ev.view.Window(start, end)
	return ev
}
