package state

// ShuffleState is the cross-shard exchange structure: one ShardState
// per shard of the store, plus one part for global accumulators. A key
// is owned by shard key mod N and stored under the dense inner key
// key div N, so dense containers stay compact per shard and the global
// key is always reconstructible as inner*N + shard.
type ShuffleState struct {
	nrShards uint64
	parts    []*ShardState
	global   *ShardState
}

// NewShuffleState returns an empty exchange state for nrShards shards.
func NewShuffleState(nrShards int) *ShuffleState {
	if nrShards < 1 {
		nrShards = 1
	}
	st := &ShuffleState{
		nrShards: uint64(nrShards),
		global:   NewShardState(),
	}
	for i := 0; i < nrShards; i++ {
		st.parts = append(st.parts, NewShardState())
	}
	return st
}

// NrShards reports the shard count the state was built for.
func (st *ShuffleState) NrShards() int { return int(st.nrShards) }

// Part exposes the ShardState owning shard i.
func (st *ShuffleState) Part(i int) *ShardState { return st.parts[i] }

// Global exposes the global part.
func (st *ShuffleState) Global() *ShardState { return st.global }

// CopyOverNext seeds the next parity from the current one in every part.
func (st *ShuffleState) CopyOverNext(ss int) {
	for _, p := range st.parts {
		p.CopyOverNext(ss)
	}
	st.global.CopyOverNext(ss)
}

// Reset clears the parity-ss buffers in every part.
func (st *ShuffleState) Reset(ss int) {
	for _, p := range st.parts {
		p.Reset(ss)
	}
	st.global.Reset(ss)
}

// MergeInto combines this state's parity-ss partials into dst part-wise
// and resets them here. Merging is commutative: any interleaving of
// MergeInto calls over a set of states yields the same post-merge dst.
// A second merge of the same source is a no-op, since the first one
// left it at identity.
func (st *ShuffleState) MergeInto(dst *ShuffleState, ss int) {
	for i, p := range st.parts {
		p.MergeInto(dst.parts[i], ss)
	}
	st.global.MergeInto(dst.global, ss)
}

// Shuffle merges every state into states[0], routing each key to the
// part of its owning shard, and leaves the other states at identity.
// After the call each key resides only in its owner; running Shuffle
// again is a no-op.
func Shuffle(states []*ShuffleState, ss int) *ShuffleState {
	if len(states) == 0 {
		return nil
	}
	total := states[0]
	for _, st := range states[1:] {
		st.MergeInto(total, ss)
	}
	return total
}

// DeclareAll creates acc's containers in every part, including the
// global one.
func DeclareAll[A, IN, OUT any](st *ShuffleState, acc AccID[A, IN, OUT]) {
	for _, p := range st.parts {
		Declare(p, acc)
	}
	Declare(st.global, acc)
}

// Accumulate folds v into acc's partial for the global key, routed to
// the owning shard's part.
func Accumulate[A, IN, OUT any](st *ShuffleState, acc AccID[A, IN, OUT], ss int, key uint64, v IN) {
	AccumulateInto(st.parts[key%st.nrShards], acc, ss, key/st.nrShards, v)
}

// AccumulateGlobal folds v into acc's single global partial.
func AccumulateGlobal[A, IN, OUT any](st *ShuffleState, acc AccID[A, IN, OUT], ss int, v IN) {
	AccumulateInto(st.global, acc, ss, 0, v)
}

// ReadPartialKey returns acc's raw partial for the global key at
// parity ss.
func ReadPartialKey[A, IN, OUT any](st *ShuffleState, acc AccID[A, IN, OUT], ss int, key uint64) (A, bool) {
	return ReadPartial(st.parts[key%st.nrShards], acc, ss, key/st.nrShards)
}

// ReadKey returns acc's finalized value for the global key at parity ss.
func ReadKey[A, IN, OUT any](st *ShuffleState, acc AccID[A, IN, OUT], ss int, key uint64) (OUT, bool) {
	return Read(st.parts[key%st.nrShards], acc, ss, key/st.nrShards)
}

// ReadGlobal returns acc's finalized global value at parity ss.
func ReadGlobal[A, IN, OUT any](st *ShuffleState, acc AccID[A, IN, OUT], ss int) (OUT, bool) {
	return Read(st.global, acc, ss, 0)
}

// FinalizeAll projects every partial of acc at parity ss into output
// values keyed by the reconstructed global key.
func FinalizeAll[A, IN, OUT any](st *ShuffleState, acc AccID[A, IN, OUT], ss int) map[uint64]OUT {
	out := make(map[uint64]OUT)
	for i, p := range st.parts {
		for inner, v := range FinalizeShard(p, acc, ss) {
			out[inner*st.nrShards+uint64(i)] = v
		}
	}
	return out
}

// ResetAcc clears a single accumulator's parity-ss buffers in every
// part. The runner uses it to stop wake-up flags from persisting past
// the superstep they were raised for.
func (st *ShuffleState) ResetAcc(id uint32, ss int) {
	for _, p := range st.parts {
		p.ResetAcc(id, ss)
	}
	st.global.ResetAcc(id, ss)
}

// AnyKeySet reports whether any finalizable key of accumulator id holds
// a value at parity ss in any part.
func (st *ShuffleState) AnyKeySet(id uint32, ss int) bool {
	for _, p := range st.parts {
		if len(p.Keys(id, ss)) > 0 {
			return true
		}
	}
	return false
}
