// Package builder assembles deterministic temporal graph fixtures for
// tests and benchmarks.
//
// A Constructor applies one deterministic topology to a store, stamping
// every edge occurrence with a timestamp derived from the resolved
// configuration: event k lands at StartTime + k·TimeStep. Compose
// several constructors in one Build call to lay histories over each
// other; the same inputs, options, and constructor order always yield
// an identical store.
//
// Errors:
//
//	ErrTooFewVertices - a topology was requested below its minimum size.
package builder

import (
	"errors"
	"fmt"

	"github.com/Dullaz/Raphtory/db"
)

// ErrTooFewVertices indicates a topology request below its minimum size.
var ErrTooFewVertices = errors.New("builder: too few vertices")

// config is the resolved build configuration; immutable during a Build.
type config struct {
	startTime int64
	timeStep  int64
	layer     string
}

// Option adjusts the build configuration.
type Option func(*config)

// WithStartTime sets the timestamp of the first emitted event
// (default 0).
func WithStartTime(ts int64) Option {
	return func(c *config) { c.startTime = ts }
}

// WithTimeStep sets the timestamp increment between consecutive events
// (default 1).
func WithTimeStep(step int64) Option {
	return func(c *config) { c.timeStep = step }
}

// WithLayer emits every edge on the named layer instead of the default
// one.
func WithLayer(name string) Option {
	return func(c *config) { c.layer = name }
}

// Constructor applies one deterministic topology to the store. The
// clock hands out consecutive event timestamps.
type Constructor func(g *db.GraphDB, clock *Clock) error

// Clock deals event timestamps: each Next call advances by the
// configured step.
type Clock struct {
	next int64
	step int64
}

// Next returns the current timestamp and advances the clock.
func (c *Clock) Next() int64 {
	ts := c.next
	c.next += c.step
	return ts
}

// Build creates a store with nrShards partitions and applies the
// constructors in order, sharing one event clock across all of them.
func Build(nrShards int, opts []Option, cons ...Constructor) (*db.GraphDB, error) {
	cfg := config{timeStep: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	g := db.New(nrShards)
	clock := &Clock{next: cfg.startTime, step: cfg.timeStep}
	for _, con := range cons {
		if err := con(g, clock); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func addEdge(g *db.GraphDB, cfg config, src, dst uint64, ts int64) error {
	if cfg.layer == "" {
		return g.AddEdge(src, dst, ts, nil)
	}
	return g.AddEdgeLayer(src, dst, ts, nil, cfg.layer)
}

// Complete emits the complete directed graph on vertices 1..n: every
// ordered pair (i, j), i ≠ j, once, in lexicographic order.
func Complete(n int, opts ...Option) Constructor {
	cfg := resolve(opts)
	return func(g *db.GraphDB, clock *Clock) error {
		if n < 1 {
			return fmt.Errorf("complete: n=%d: %w", n, ErrTooFewVertices)
		}
		for i := uint64(1); i <= uint64(n); i++ {
			for j := uint64(1); j <= uint64(n); j++ {
				if i == j {
					continue
				}
				if err := addEdge(g, cfg, i, j, clock.Next()); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// Cycle emits the directed cycle 1→2→…→n→1.
func Cycle(n int, opts ...Option) Constructor {
	cfg := resolve(opts)
	return func(g *db.GraphDB, clock *Clock) error {
		if n < 3 {
			return fmt.Errorf("cycle: n=%d: %w", n, ErrTooFewVertices)
		}
		for i := uint64(1); i <= uint64(n); i++ {
			dst := i%uint64(n) + 1
			if err := addEdge(g, cfg, i, dst, clock.Next()); err != nil {
				return err
			}
		}
		return nil
	}
}

// Star emits edges from hub vertex 1 to leaves 2..n.
func Star(n int, opts ...Option) Constructor {
	cfg := resolve(opts)
	return func(g *db.GraphDB, clock *Clock) error {
		if n < 2 {
			return fmt.Errorf("star: n=%d: %w", n, ErrTooFewVertices)
		}
		for i := uint64(2); i <= uint64(n); i++ {
			if err := addEdge(g, cfg, 1, i, clock.Next()); err != nil {
				return err
			}
		}
		return nil
	}
}

// Path emits the directed path 1→2→…→n.
func Path(n int, opts ...Option) Constructor {
	cfg := resolve(opts)
	return func(g *db.GraphDB, clock *Clock) error {
		if n < 2 {
			return fmt.Errorf("path: n=%d: %w", n, ErrTooFewVertices)
		}
		for i := uint64(1); i < uint64(n); i++ {
			if err := addEdge(g, cfg, i, i+1, clock.Next()); err != nil {
				return err
			}
		}
		return nil
	}
}

func resolve(opts []Option) config {
	cfg := config{timeStep: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
