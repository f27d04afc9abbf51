package db

import (
	"sync"

	"github.com/Dullaz/Raphtory/core"
)

// shard pairs one adjacency index with its reader-writer mutex. Writes
// acquire the exclusive lock, reads the shared lock. Shards are
// independent: no method here ever touches another shard.
type shard struct {
	mu sync.RWMutex
	g  *core.TemporalGraph
}

// write runs f under the exclusive lock.
func (s *shard) write(f func(g *core.TemporalGraph)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(s.g)
}

// read runs f under the shared lock.
func (s *shard) read(f func(g *core.TemporalGraph)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f(s.g)
}
