package state

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Number bounds the value types the numeric accumulators fold over.
type Number interface {
	constraints.Integer | constraints.Float
}

// Strategy selects the container representation for an accumulator's
// partials. The choice is made when the accumulator is declared, never
// per key.
type Strategy uint8

const (
	// Dense stores partials in a vector indexed by the shard-dense key.
	// Primary case: keys are vertex ids owned by one shard.
	Dense Strategy = iota
	// Sparse stores partials in a map. Use for global aggregates and
	// selections touching few keys.
	Sparse
)

// AccID identifies one declared accumulator: an integer id bound to a
// typed capability set {zero, add, combine, finalize} and a container
// strategy. Compute state is keyed by the id, not the type.
type AccID[A, IN, OUT any] struct {
	id       uint32
	strategy Strategy
	zero     func() A
	add      func(A, IN) A
	combine  func(A, A) A
	finalize func(A) OUT
}

// ID returns the integer accumulator id.
func (a AccID[A, IN, OUT]) ID() uint32 { return a.id }

// WithStrategy returns a copy of the accumulator using the given
// container strategy.
func (a AccID[A, IN, OUT]) WithStrategy(s Strategy) AccID[A, IN, OUT] {
	a.strategy = s
	return a
}

// Declarable is the untyped face of an AccID, used by the task layer to
// register accumulators of heterogeneous types.
type Declarable interface {
	ID() uint32
	DeclareIn(*ShardState)
}

// DeclareIn creates the accumulator's container in s if absent.
func (a AccID[A, IN, OUT]) DeclareIn(s *ShardState) { Declare(s, a) }

// NewAccumulator builds a custom accumulator. combine must be
// associative and commutative; finalize projects a partial into the
// output value.
func NewAccumulator[A, IN, OUT any](
	id uint32,
	strategy Strategy,
	zero func() A,
	add func(A, IN) A,
	combine func(A, A) A,
	finalize func(A) OUT,
) AccID[A, IN, OUT] {
	return AccID[A, IN, OUT]{
		id:       id,
		strategy: strategy,
		zero:     zero,
		add:      add,
		combine:  combine,
		finalize: finalize,
	}
}

// Sum folds values by addition.
func Sum[T Number](id uint32) AccID[T, T, T] {
	var z T
	return NewAccumulator(id, Dense,
		func() T { return z },
		func(a T, v T) T { return a + v },
		func(a, b T) T { return a + b },
		func(a T) T { return a },
	)
}

// extremum carries a min/max partial; the unset state is the identity.
type extremum[T any] struct {
	set bool
	v   T
}

// Min keeps the smallest value seen.
func Min[T constraints.Ordered](id uint32) AccID[extremum[T], T, T] {
	return NewAccumulator(id, Dense,
		func() extremum[T] { return extremum[T]{} },
		func(a extremum[T], v T) extremum[T] {
			if !a.set || v < a.v {
				return extremum[T]{set: true, v: v}
			}
			return a
		},
		func(a, b extremum[T]) extremum[T] {
			if !a.set {
				return b
			}
			if !b.set || a.v <= b.v {
				return a
			}
			return b
		},
		func(a extremum[T]) T { return a.v },
	)
}

// Max keeps the largest value seen.
func Max[T constraints.Ordered](id uint32) AccID[extremum[T], T, T] {
	return NewAccumulator(id, Dense,
		func() extremum[T] { return extremum[T]{} },
		func(a extremum[T], v T) extremum[T] {
			if !a.set || v > a.v {
				return extremum[T]{set: true, v: v}
			}
			return a
		},
		func(a, b extremum[T]) extremum[T] {
			if !a.set {
				return b
			}
			if !b.set || a.v >= b.v {
				return a
			}
			return b
		},
		func(a extremum[T]) T { return a.v },
	)
}

// avgPair carries the running (sum, count) of an Avg accumulator.
type avgPair[T Number] struct {
	sum   T
	count int64
}

// Avg folds values into (sum, count) and finalizes to the mean. For
// integer T the mean truncates.
func Avg[T Number](id uint32) AccID[avgPair[T], T, T] {
	return NewAccumulator(id, Dense,
		func() avgPair[T] { return avgPair[T]{} },
		func(a avgPair[T], v T) avgPair[T] { return avgPair[T]{sum: a.sum + v, count: a.count + 1} },
		func(a, b avgPair[T]) avgPair[T] {
			return avgPair[T]{sum: a.sum + b.sum, count: a.count + b.count}
		},
		func(a avgPair[T]) T {
			if a.count == 0 {
				var z T
				return z
			}
			return a.sum / T(a.count)
		},
	)
}

// TopK retains the k largest values seen, finalized in descending
// order. Ordering is value-only; equal values keep insertion order.
func TopK[T constraints.Ordered](id uint32, k int) AccID[[]T, T, []T] {
	// insert never mutates buf in place: partials are shared between
	// parity buffers after a copy-over, so folds must be persistent.
	insert := func(buf []T, v T) []T {
		i := sort.Search(len(buf), func(j int) bool { return buf[j] < v })
		if i >= k {
			return buf
		}
		out := make([]T, 0, len(buf)+1)
		out = append(out, buf[:i]...)
		out = append(out, v)
		out = append(out, buf[i:]...)
		if len(out) > k {
			out = out[:k]
		}
		return out
	}
	return NewAccumulator(id, Sparse,
		func() []T { return nil },
		insert,
		func(a, b []T) []T {
			out := make([]T, len(a))
			copy(out, a)
			for _, v := range b {
				out = insert(out, v)
			}
			return out
		},
		func(a []T) []T { return a },
	)
}

// Any folds booleans by OR.
func Any(id uint32) AccID[bool, bool, bool] {
	return NewAccumulator(id, Sparse,
		func() bool { return false },
		func(a, v bool) bool { return a || v },
		func(a, b bool) bool { return a || b },
		func(a bool) bool { return a },
	)
}

// All folds booleans by AND.
func All(id uint32) AccID[bool, bool, bool] {
	return NewAccumulator(id, Sparse,
		func() bool { return true },
		func(a, v bool) bool { return a && v },
		func(a, b bool) bool { return a && b },
		func(a bool) bool { return a },
	)
}

// Stamped tags a value with an explicit write-order sequence. First and
// Last are the only accumulators whose merge is not commutative on raw
// values; the tag makes their outcome independent of shard
// interleaving.
type Stamped[T any] struct {
	Seq uint64
	V   T
}

type stamped[T any] struct {
	set bool
	seq uint64
	v   T
}

// First keeps the value with the lowest write-order tag.
func First[T any](id uint32) AccID[stamped[T], Stamped[T], T] {
	return NewAccumulator(id, Sparse,
		func() stamped[T] { return stamped[T]{} },
		func(a stamped[T], v Stamped[T]) stamped[T] {
			if !a.set || v.Seq < a.seq {
				return stamped[T]{set: true, seq: v.Seq, v: v.V}
			}
			return a
		},
		func(a, b stamped[T]) stamped[T] {
			if !a.set {
				return b
			}
			if !b.set || a.seq <= b.seq {
				return a
			}
			return b
		},
		func(a stamped[T]) T { return a.v },
	)
}

// Last keeps the value with the highest write-order tag.
func Last[T any](id uint32) AccID[stamped[T], Stamped[T], T] {
	return NewAccumulator(id, Sparse,
		func() stamped[T] { return stamped[T]{} },
		func(a stamped[T], v Stamped[T]) stamped[T] {
			if !a.set || v.Seq >= a.seq {
				return stamped[T]{set: true, seq: v.Seq, v: v.V}
			}
			return a
		},
		func(a, b stamped[T]) stamped[T] {
			if !a.set {
				return b
			}
			if !b.set || a.seq >= b.seq {
				return a
			}
			return b
		},
		func(a stamped[T]) T { return a.v },
	)
}
