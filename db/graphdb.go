package db

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Dullaz/Raphtory/core"
	"github.com/Dullaz/Raphtory/props"
)

// Sentinel errors for store operations.
var (
	// ErrUnknownVertex indicates a presence-demanding query for a vertex
	// absent from the view.
	ErrUnknownVertex = errors.New("db: unknown vertex")

	// ErrUnknownEdge indicates a presence-demanding query for an edge
	// absent from the view.
	ErrUnknownEdge = errors.New("db: unknown edge")

	// ErrInvalidTime indicates a non-monotonic write timestamp while
	// strict time is enabled.
	ErrInvalidTime = errors.New("db: invalid timestamp")
)

// GraphDB is the sharded temporal graph store. It is a stateless
// dispatcher over N shards with N fixed at construction; the routing
// rule is shardOf(gid) = gid mod N.
//
// Ingestion is total: any well-formed input succeeds (unless strict
// time is enabled and the timestamp regresses).
type GraphDB struct {
	nrShards uint64
	shards   []*shard

	propDict  *props.Dict
	layerDict *props.Dict

	strictTime bool
	latestSeen atomic.Int64

	log *zap.Logger
}

// Option configures a GraphDB before first use.
type Option func(*GraphDB)

// WithLogger attaches a structured logger. The store is silent by
// default.
func WithLogger(l *zap.Logger) Option {
	return func(g *GraphDB) { g.log = l }
}

// WithStrictTime rejects writes whose timestamp is older than the
// latest event already recorded, surfacing ErrInvalidTime.
func WithStrictTime() Option {
	return func(g *GraphDB) { g.strictTime = true }
}

// New creates a store with nrShards partitions. nrShards below 1 is
// treated as 1.
func New(nrShards int, opts ...Option) *GraphDB {
	if nrShards < 1 {
		nrShards = 1
	}
	g := &GraphDB{
		nrShards:  uint64(nrShards),
		propDict:  props.NewDict(),
		layerDict: props.NewDict(),
		log:       zap.NewNop(),
	}
	// Interning the default layer first pins it to id 0 in every shard.
	g.layerDict.Intern("")
	for i := 0; i < nrShards; i++ {
		g.shards = append(g.shards, &shard{g: core.NewTemporalGraph(g.propDict, g.layerDict)})
	}
	g.latestSeen.Store(math.MinInt64)
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NrShards reports the fixed shard count.
func (g *GraphDB) NrShards() int { return int(g.nrShards) }

// ShardOf returns the shard id owning gid.
func (g *GraphDB) ShardOf(gid uint64) int { return int(gid % g.nrShards) }

func (g *GraphDB) checkTime(ts int64) error {
	if !g.strictTime {
		g.observeTime(ts)
		return nil
	}
	for {
		prev := g.latestSeen.Load()
		if ts < prev {
			return fmt.Errorf("%w: %d is older than latest event %d", ErrInvalidTime, ts, prev)
		}
		if g.latestSeen.CompareAndSwap(prev, ts) {
			return nil
		}
	}
}

func (g *GraphDB) observeTime(ts int64) {
	for {
		prev := g.latestSeen.Load()
		if ts <= prev || g.latestSeen.CompareAndSwap(prev, ts) {
			return
		}
	}
}

// AddVertex records an event for gid at ts with the given properties,
// targeting only the owning shard.
func (g *GraphDB) AddVertex(gid uint64, ts int64, ps map[string]props.Prop) error {
	if err := g.checkTime(ts); err != nil {
		return err
	}
	g.shards[g.ShardOf(gid)].write(func(tg *core.TemporalGraph) {
		tg.AddVertex(gid, ts, ps)
	})
	return nil
}

// AddVertexWithName is AddVertex plus a client-visible name; the last
// written name wins.
func (g *GraphDB) AddVertexWithName(gid uint64, ts int64, name string, ps map[string]props.Prop) error {
	if err := g.checkTime(ts); err != nil {
		return err
	}
	g.shards[g.ShardOf(gid)].write(func(tg *core.TemporalGraph) {
		tg.AddVertexWithName(gid, ts, name, ps)
	})
	return nil
}

// AddEdge records an occurrence of src→dst at ts on the default layer.
func (g *GraphDB) AddEdge(src, dst uint64, ts int64, ps map[string]props.Prop) error {
	return g.AddEdgeLayer(src, dst, ts, ps, "")
}

// AddEdgeLayer records an occurrence of src→dst at ts on the named
// layer. When the endpoints map to the same shard the edge is written
// once as a local edge; otherwise the source shard receives the out
// half first, then the destination shard receives the into half. The
// two writes are not atomic across shards.
func (g *GraphDB) AddEdgeLayer(src, dst uint64, ts int64, ps map[string]props.Prop, layer string) error {
	if err := g.checkTime(ts); err != nil {
		return err
	}
	srcShard, dstShard := g.ShardOf(src), g.ShardOf(dst)
	if srcShard == dstShard {
		g.shards[srcShard].write(func(tg *core.TemporalGraph) {
			tg.AddEdgeLocal(src, dst, ts, ps, layer)
		})
		return nil
	}
	g.shards[srcShard].write(func(tg *core.TemporalGraph) {
		tg.AddEdgeOutHalf(src, dst, ts, ps, layer)
	})
	g.shards[dstShard].write(func(tg *core.TemporalGraph) {
		tg.AddEdgeInHalf(src, dst, ts, ps, layer)
	})
	g.log.Debug("cross-shard edge",
		zap.Uint64("src", src), zap.Uint64("dst", dst),
		zap.Int("src_shard", srcShard), zap.Int("dst_shard", dstShard))
	return nil
}

// View returns the unwindowed, unlayered read view of the store.
func (g *GraphDB) View() View {
	return View{db: g, w: core.All(), layer: core.LayerAll}
}

// Window returns a view restricted to [start, end).
func (g *GraphDB) Window(start, end int64) View {
	return g.View().Window(start, end)
}

// At returns a view of all events at or before ts.
func (g *GraphDB) At(ts int64) View { return g.View().At(ts) }

// Layer returns a view restricted to the named edge layer.
func (g *GraphDB) Layer(name string) View { return g.View().Layer(name) }

// Len reports the number of distinct vertices in the store.
func (g *GraphDB) Len() int { return g.View().CountVertices() }

// CountEdges reports the number of logical edges in the store; a
// cross-shard edge counts once.
func (g *GraphDB) CountEdges() int { return g.View().CountEdges() }
