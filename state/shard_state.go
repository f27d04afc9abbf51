package state

import "golang.org/x/exp/slices"

// ShardState holds one shard's partial values: accumulator id →
// double-buffered container. Not safe for concurrent use; during a run
// each worker owns its states and the runner merges at barriers.
type ShardState struct {
	parts map[uint32]container
}

// NewShardState returns an empty shard state.
func NewShardState() *ShardState {
	return &ShardState{parts: make(map[uint32]container)}
}

// CopyOverNext seeds every container's next-parity buffer from its
// current one. Called by the runner at the start of superstep ss.
func (s *ShardState) CopyOverNext(ss int) {
	for _, c := range s.parts {
		c.copyOverNext(ss)
	}
}

// Reset clears every container's parity-ss buffer back to identity.
func (s *ShardState) Reset(ss int) {
	for _, c := range s.parts {
		c.reset(ss)
	}
}

// MergeInto combines this state's parity-ss partials into dst and
// resets them here. Containers present here but undeclared in dst are
// adopted wholesale.
func (s *ShardState) MergeInto(dst *ShardState, ss int) {
	for id, c := range s.parts {
		if dc, ok := dst.parts[id]; ok {
			dc.mergeFrom(c, ss)
			c.reset(ss)
		} else {
			dst.parts[id] = c
			delete(s.parts, id)
		}
	}
}

// Keys returns the inner keys present for accumulator id at parity ss,
// sorted ascending.
func (s *ShardState) Keys(id uint32, ss int) []uint64 {
	c, ok := s.parts[id]
	if !ok {
		return nil
	}
	ks := c.keys(ss)
	slices.Sort(ks)
	return ks
}

// Declare creates acc's container in s if absent. Declaring twice is a
// no-op; the first strategy wins.
func Declare[A, IN, OUT any](s *ShardState, acc AccID[A, IN, OUT]) {
	if _, ok := s.parts[acc.id]; ok {
		return
	}
	if acc.strategy == Dense {
		s.parts[acc.id] = newVecState(acc.zero, acc.combine)
	} else {
		s.parts[acc.id] = newMapState(acc.zero, acc.combine)
	}
}

// AccumulateInto folds v into acc's partial for key at parity ss.
func AccumulateInto[A, IN, OUT any](s *ShardState, acc AccID[A, IN, OUT], ss int, key uint64, v IN) {
	Declare(s, acc)
	switch c := s.parts[acc.id].(type) {
	case *vecState[A]:
		cur, _ := c.get(ss, key)
		c.set(ss, key, acc.add(cur, v))
	case *mapState[A]:
		cur, _ := c.get(ss, key)
		c.set(ss, key, acc.add(cur, v))
	}
}

// ReadPartial returns acc's raw partial for key at parity ss; ok is
// false when the container holds no slot for key, in which case the
// identity is returned. A Sparse container holds only written keys; a
// Dense one holds every slot up to its highest written key, so an
// unwritten key below that reads as ok with the identity value.
func ReadPartial[A, IN, OUT any](s *ShardState, acc AccID[A, IN, OUT], ss int, key uint64) (A, bool) {
	c, ok := s.parts[acc.id]
	if !ok {
		return acc.zero(), false
	}
	switch c := c.(type) {
	case *vecState[A]:
		return c.get(ss, key)
	case *mapState[A]:
		return c.get(ss, key)
	}
	return acc.zero(), false
}

// Read returns acc's finalized value for key at parity ss.
func Read[A, IN, OUT any](s *ShardState, acc AccID[A, IN, OUT], ss int, key uint64) (OUT, bool) {
	a, ok := ReadPartial(s, acc, ss, key)
	return acc.finalize(a), ok
}

// FinalizeShard projects every partial of acc at parity ss into its
// output value, keyed by inner key. Dense containers yield every slot
// up to the highest written key.
func FinalizeShard[A, IN, OUT any](s *ShardState, acc AccID[A, IN, OUT], ss int) map[uint64]OUT {
	c, ok := s.parts[acc.id]
	if !ok {
		return nil
	}
	out := make(map[uint64]OUT)
	for _, k := range c.keys(ss) {
		a, _ := ReadPartial(s, acc, ss, k)
		out[k] = acc.finalize(a)
	}
	return out
}

// ResetAcc clears a single accumulator's parity-ss buffer back to
// identity, leaving the other parity untouched.
func (s *ShardState) ResetAcc(id uint32, ss int) {
	if c, ok := s.parts[id]; ok {
		c.reset(ss)
	}
}
