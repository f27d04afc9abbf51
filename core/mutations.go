package core

import "github.com/Dullaz/Raphtory/props"

// ensureVertex returns the entry for gid, assigning the next dense local
// id on first sight, and records ts as an event on the vertex, the time
// index, and the shard bounds.
func (g *TemporalGraph) ensureVertex(gid uint64, ts int64) *vertexEntry {
	lid, ok := g.lids[gid]
	if !ok {
		lid = len(g.verts)
		g.lids[gid] = lid
		g.verts = append(g.verts, &vertexEntry{
			gid:  gid,
			out:  make(map[uint64]*tEdge),
			into: make(map[uint64]*tEdge),
		})
	}
	v := g.verts[lid]
	v.recordEvent(ts)
	g.timeIdx.record(ts, lid)
	if ts < g.earliest {
		g.earliest = ts
	}
	if ts > g.latest {
		g.latest = ts
	}
	return v
}

func (g *TemporalGraph) appendProps(st *props.Store, ts int64, ps map[string]props.Prop) {
	for name, v := range ps {
		st.Append(g.propDict.Intern(name), ts, v)
	}
}

// AddVertex records an event for gid at ts and appends the given
// properties at ts. The vertex is created on first event.
//
// Complexity: O(P log H) for P properties over a history of length H;
// O(P) amortized for in-order timestamps.
func (g *TemporalGraph) AddVertex(gid uint64, ts int64, ps map[string]props.Prop) {
	v := g.ensureVertex(gid, ts)
	g.appendProps(&v.props, ts, ps)
}

// AddVertexWithName is AddVertex plus a client-visible name. The last
// written name wins.
func (g *TemporalGraph) AddVertexWithName(gid uint64, ts int64, name string, ps map[string]props.Prop) {
	v := g.ensureVertex(gid, ts)
	v.name = name
	g.appendProps(&v.props, ts, ps)
}

// getOrCreateEdge fetches or creates the (src, dst) edge of the given
// kind and links it into the supplied adjacency map.
func getOrCreateEdge(adj map[uint64]*tEdge, key uint64, src, dst uint64, kind edgeKind) (*tEdge, bool) {
	if e, ok := adj[key]; ok {
		return e, false
	}
	e := &tEdge{src: src, dst: dst, kind: kind}
	adj[key] = e
	return e, true
}

// AddEdgeLocal records an occurrence of src→dst at ts where both
// endpoints live in this shard. Endpoints are created on first event;
// the edge is stored once and linked from both adjacency maps.
func (g *TemporalGraph) AddEdgeLocal(src, dst uint64, ts int64, ps map[string]props.Prop, layer string) {
	sv := g.ensureVertex(src, ts)
	dv := g.ensureVertex(dst, ts)

	e, created := getOrCreateEdge(sv.out, dst, src, dst, edgeLocal)
	if created {
		dv.into[src] = e
		g.ownedEdges++
	}
	e.addEvent(ts, g.layerDict.Intern(layer))
	g.appendProps(&e.props, ts, ps)
}

// AddEdgeOutHalf records the source half of a cross-shard edge. Only the
// source endpoint is created locally; dst names the remote endpoint.
// The source shard owns the logical edge for counting purposes.
func (g *TemporalGraph) AddEdgeOutHalf(src, dst uint64, ts int64, ps map[string]props.Prop, layer string) {
	sv := g.ensureVertex(src, ts)

	e, created := getOrCreateEdge(sv.out, dst, src, dst, edgeOutHalf)
	if created {
		g.ownedEdges++
	}
	e.addEvent(ts, g.layerDict.Intern(layer))
	g.appendProps(&e.props, ts, ps)
}

// AddEdgeInHalf records the destination half of a cross-shard edge.
// Only the destination endpoint is created locally; src names the
// remote endpoint. The half carries the same events and properties as
// its out counterpart but never contributes to the owned-edge count.
func (g *TemporalGraph) AddEdgeInHalf(src, dst uint64, ts int64, ps map[string]props.Prop, layer string) {
	dv := g.ensureVertex(dst, ts)

	e, _ := getOrCreateEdge(dv.into, src, src, dst, edgeInHalf)
	e.addEvent(ts, g.layerDict.Intern(layer))
	g.appendProps(&e.props, ts, ps)
}
