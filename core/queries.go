package core

import (
	"strconv"

	"golang.org/x/exp/slices"

	"github.com/Dullaz/Raphtory/props"
)

// Edge is a read-only snapshot of one stored edge restricted to a
// window and layer. Times holds the in-window occurrence timestamps.
type Edge struct {
	Src    uint64
	Dst    uint64
	Times  []int64
	Remote bool // the other endpoint lives in a different shard
}

// Len reports the number of vertices stored in this shard.
func (g *TemporalGraph) Len() int { return len(g.verts) }

// LenWindow reports the number of vertices with at least one event in w,
// answered from the time index.
func (g *TemporalGraph) LenWindow(w Window) int {
	return len(g.timeIdx.changedIn(w))
}

// CountEdges reports the number of logical edges owned by this shard
// (local edges plus out halves) with at least one event in w on layer.
//
// Complexity: O(E log T) over owned edges; O(1) for the unbounded
// window with no layer filter.
func (g *TemporalGraph) CountEdges(w Window, layer int) int {
	if w == All() && layer == LayerAll {
		return g.ownedEdges
	}
	n := 0
	for _, v := range g.verts {
		for _, e := range v.out {
			if e.activeIn(w, layer) {
				n++
			}
		}
	}
	return n
}

// HasVertex reports whether gid is stored in this shard with at least
// one event in w.
func (g *TemporalGraph) HasVertex(gid uint64, w Window) bool {
	lid, ok := g.lids[gid]
	return ok && g.verts[lid].activeIn(w)
}

// LID returns the dense local id assigned to gid.
func (g *TemporalGraph) LID(gid uint64) (int, bool) {
	lid, ok := g.lids[gid]
	return lid, ok
}

// GID returns the global id stored at local id lid.
func (g *TemporalGraph) GID(lid int) (uint64, bool) {
	if lid < 0 || lid >= len(g.verts) {
		return 0, false
	}
	return g.verts[lid].gid, true
}

// VertexIDs returns the global ids of vertices active in w, in local-id
// order. Local-id order is the shard's canonical iteration order.
func (g *TemporalGraph) VertexIDs(w Window) []uint64 {
	var out []uint64
	for _, v := range g.verts {
		if v.activeIn(w) {
			out = append(out, v.gid)
		}
	}
	return out
}

// Name returns the client-visible name of gid, falling back to the
// decimal form of the id when no name was set.
func (g *TemporalGraph) Name(gid uint64) (string, error) {
	lid, ok := g.lids[gid]
	if !ok {
		return "", ErrVertexNotFound
	}
	if n := g.verts[lid].name; n != "" {
		return n, nil
	}
	return strconv.FormatUint(gid, 10), nil
}

// VertexHistory returns the event timestamps of gid inside w, ascending.
func (g *TemporalGraph) VertexHistory(gid uint64, w Window) []int64 {
	lid, ok := g.lids[gid]
	if !ok {
		return nil
	}
	h := g.verts[lid].history
	lo, _ := slices.BinarySearch(h, w.Start)
	hi, _ := slices.BinarySearch(h, w.End)
	if lo >= hi {
		return nil
	}
	out := make([]int64, hi-lo)
	copy(out, h[lo:hi])
	return out
}

// VertexEarliest returns the first event timestamp of gid inside w.
func (g *TemporalGraph) VertexEarliest(gid uint64, w Window) (int64, bool) {
	h := g.VertexHistory(gid, w)
	if len(h) == 0 {
		return 0, false
	}
	return h[0], true
}

// VertexLatest returns the last event timestamp of gid inside w.
func (g *TemporalGraph) VertexLatest(gid uint64, w Window) (int64, bool) {
	h := g.VertexHistory(gid, w)
	if len(h) == 0 {
		return 0, false
	}
	return h[len(h)-1], true
}

// EarliestTime returns the earliest event timestamp seen by this shard.
func (g *TemporalGraph) EarliestTime() (int64, bool) {
	if len(g.verts) == 0 {
		return 0, false
	}
	return g.earliest, true
}

// LatestTime returns the latest event timestamp seen by this shard.
func (g *TemporalGraph) LatestTime() (int64, bool) {
	if len(g.verts) == 0 {
		return 0, false
	}
	return g.latest, true
}

// Degree counts the distinct neighbours of gid sharing at least one
// edge event with a timestamp in w on layer.
//
// Windowed degree is monotonic: narrowing the window can only lower it.
func (g *TemporalGraph) Degree(gid uint64, dir Direction, w Window, layer int) int {
	return len(g.Neighbours(gid, dir, w, layer))
}

// Neighbours returns the distinct neighbour gids of gid with at least
// one in-window edge event, sorted ascending for determinism.
func (g *TemporalGraph) Neighbours(gid uint64, dir Direction, w Window, layer int) []uint64 {
	lid, ok := g.lids[gid]
	if !ok {
		return nil
	}
	v := g.verts[lid]

	seen := make(map[uint64]struct{})
	if dir == Out || dir == Both {
		for dst, e := range v.out {
			if e.activeIn(w, layer) {
				seen[dst] = struct{}{}
			}
		}
	}
	if dir == In || dir == Both {
		for src, e := range v.into {
			if e.activeIn(w, layer) {
				seen[src] = struct{}{}
			}
		}
	}
	out := make([]uint64, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Edges returns snapshots of the edges incident to gid with at least one
// in-window event, ordered by neighbour gid. For dir == Both a local
// loop-free edge appears once per direction it is stored under.
func (g *TemporalGraph) Edges(gid uint64, dir Direction, w Window, layer int) []Edge {
	lid, ok := g.lids[gid]
	if !ok {
		return nil
	}
	v := g.verts[lid]

	var out []Edge
	collect := func(adj map[uint64]*tEdge) {
		keys := make([]uint64, 0, len(adj))
		for k := range adj {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			e := adj[k]
			times := e.timesIn(w, layer)
			if len(times) == 0 {
				continue
			}
			out = append(out, Edge{
				Src:    e.src,
				Dst:    e.dst,
				Times:  times,
				Remote: e.kind != edgeLocal,
			})
		}
	}
	if dir == Out || dir == Both {
		collect(v.out)
	}
	if dir == In || dir == Both {
		collect(v.into)
	}
	return out
}

// EdgeBetween returns the src→dst edge snapshot when it is stored under
// src in this shard and has at least one in-window event.
func (g *TemporalGraph) EdgeBetween(src, dst uint64, w Window, layer int) (Edge, bool) {
	lid, ok := g.lids[src]
	if !ok {
		return Edge{}, false
	}
	e, ok := g.verts[lid].out[dst]
	if !ok {
		return Edge{}, false
	}
	times := e.timesIn(w, layer)
	if len(times) == 0 {
		return Edge{}, false
	}
	return Edge{Src: e.src, Dst: e.dst, Times: times, Remote: e.kind != edgeLocal}, true
}

// VertexPropAt returns the value of the named vertex property as of ts.
// Missing vertices and properties yield an unset Prop.
func (g *TemporalGraph) VertexPropAt(gid uint64, name string, ts int64) props.Prop {
	lid, ok := g.lids[gid]
	if !ok {
		return props.Prop{}
	}
	id, ok := g.propDict.Lookup(name)
	if !ok {
		return props.Prop{}
	}
	return g.verts[lid].props.At(id, ts)
}

// VertexPropHistory returns the in-window history of the named vertex
// property.
func (g *TemporalGraph) VertexPropHistory(gid uint64, name string, w Window) []props.TimedProp {
	lid, ok := g.lids[gid]
	if !ok {
		return nil
	}
	id, ok := g.propDict.Lookup(name)
	if !ok {
		return nil
	}
	return g.verts[lid].props.History(id, w.Start, w.End)
}

// VertexPropNames returns the names of the properties ever written to
// gid, in interning order.
func (g *TemporalGraph) VertexPropNames(gid uint64) []string {
	lid, ok := g.lids[gid]
	if !ok {
		return nil
	}
	ids := g.verts[lid].props.NameIDs()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = g.propDict.Name(id)
	}
	return names
}

// EdgePropAt returns the value of the named property of the src→dst
// edge as of ts, looked up under src.
func (g *TemporalGraph) EdgePropAt(src, dst uint64, name string, ts int64) props.Prop {
	lid, ok := g.lids[src]
	if !ok {
		return props.Prop{}
	}
	e, ok := g.verts[lid].out[dst]
	if !ok {
		return props.Prop{}
	}
	id, ok := g.propDict.Lookup(name)
	if !ok {
		return props.Prop{}
	}
	return e.props.At(id, ts)
}

// EdgePropHistory returns the in-window history of the named property of
// the src→dst edge, looked up under src.
func (g *TemporalGraph) EdgePropHistory(src, dst uint64, name string, w Window) []props.TimedProp {
	lid, ok := g.lids[src]
	if !ok {
		return nil
	}
	e, ok := g.verts[lid].out[dst]
	if !ok {
		return nil
	}
	id, ok := g.propDict.Lookup(name)
	if !ok {
		return nil
	}
	return e.props.History(id, w.Start, w.End)
}

// AllEdges returns snapshots of every edge owned by this shard (local
// edges and out halves) with at least one in-window event, in local-id
// then neighbour order.
func (g *TemporalGraph) AllEdges(w Window, layer int) []Edge {
	var out []Edge
	for _, v := range g.verts {
		keys := make([]uint64, 0, len(v.out))
		for k := range v.out {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			e := v.out[k]
			times := e.timesIn(w, layer)
			if len(times) == 0 {
				continue
			}
			out = append(out, Edge{Src: e.src, Dst: e.dst, Times: times, Remote: e.kind != edgeLocal})
		}
	}
	return out
}
