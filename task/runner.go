package task

import (
	stderrors "errors"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Dullaz/Raphtory/db"
	"github.com/Dullaz/Raphtory/state"
)

// ErrComputeAborted indicates a run that did not complete: a user step
// panicked, or cancellation was observed at a barrier. Partial compute
// state is discarded; the store is untouched.
var ErrComputeAborted = stderrors.New("task: computation aborted")

// TaskRunner drives a vertex-centric computation over a Context's view
// in bulk-synchronous supersteps.
type TaskRunner struct {
	ctx  *Context
	log  *zap.Logger
	stop atomic.Bool
}

// RunnerOption configures a TaskRunner.
type RunnerOption func(*TaskRunner)

// WithLogger attaches a structured logger; the runner is silent by
// default.
func WithLogger(l *zap.Logger) RunnerOption {
	return func(r *TaskRunner) { r.log = l }
}

// NewTaskRunner builds a runner over ctx.
func NewTaskRunner(ctx *Context, opts ...RunnerOption) *TaskRunner {
	r := &TaskRunner{ctx: ctx, log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Cancel requests a cooperative stop. The flag is checked at each
// barrier; in-flight steps run to completion and the run surfaces
// ErrComputeAborted.
func (r *TaskRunner) Cancel() { r.stop.Store(true) }

type runConfig struct {
	threads       int
	maxSupersteps int
	global        GlobalStep
}

// RunOption configures one Run invocation.
type RunOption func(*runConfig)

// WithThreads sizes the worker pool; the default is the hardware
// parallelism.
func WithThreads(n int) RunOption {
	return func(c *runConfig) { c.threads = n }
}

// WithMaxSupersteps caps the superstep count; the default is one
// superstep per supplied step.
func WithMaxSupersteps(n int) RunOption {
	return func(c *runConfig) { c.maxSupersteps = n }
}

// WithGlobalStep attaches a single-threaded step running after each
// superstep's barrier.
func WithGlobalStep(g GlobalStep) RunOption {
	return func(c *runConfig) { c.global = g }
}

// RunState is the outcome of a completed run: the merged shuffle state
// and the parity at which finalized values are read.
type RunState struct {
	total      *state.ShuffleState
	readSS     int
	Supersteps int
}

// State exposes the merged shuffle state.
func (rs *RunState) State() *state.ShuffleState { return rs.total }

// ReadSuperstep returns the superstep number whose parity holds the
// final merged values.
func (rs *RunState) ReadSuperstep() int { return rs.readSS }

// Run executes the computation. Step i runs in superstep i; when
// supersteps outnumber steps the last step repeats. The loop exits when
// every executed vertex votes Done with no pending wake-ups, or when
// the superstep cap is reached.
//
// A view with no vertices yields an empty RunState and no error.
func (r *TaskRunner) Run(steps []Step, opts ...RunOption) (*RunState, error) {
	cfg := runConfig{threads: runtime.NumCPU(), maxSupersteps: len(steps)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(steps) == 0 {
		return &RunState{total: r.ctx.newShuffleState()}, nil
	}
	if cfg.threads < 1 {
		cfg.threads = 1
	}

	view := r.ctx.view
	nrShards := view.DB().NrShards()

	// The store is quiescent during a run; snapshot the vertex set once.
	shardVerts := make([][]uint64, nrShards)
	nrVerts := 0
	for i := 0; i < nrShards; i++ {
		shardVerts[i] = view.ShardVertexIDs(i)
		nrVerts += len(shardVerts[i])
	}
	if nrVerts == 0 {
		return &RunState{total: r.ctx.newShuffleState()}, nil
	}

	total := r.ctx.newShuffleState()
	locals := make([]*state.ShuffleState, cfg.threads)
	for w := range locals {
		locals[w] = r.ctx.newShuffleState()
	}

	// alive[i][k] records whether shard i's k-th vertex returned
	// Continue last superstep; woken vertices run regardless.
	alive := make([][]bool, nrShards)
	for i := range alive {
		alive[i] = make([]bool, len(shardVerts[i]))
	}
	wake := wakeAcc()

	var (
		mu      sync.Mutex
		stepErr error
		aborted atomic.Bool
	)
	abort := func(err error) {
		aborted.Store(true)
		mu.Lock()
		if stepErr == nil {
			stepErr = err
		}
		mu.Unlock()
	}

	ss := 0
	for ; ss < cfg.maxSupersteps; ss++ {
		if r.stop.Load() {
			return nil, errors.Wrap(ErrComputeAborted, "cancelled")
		}
		total.CopyOverNext(ss)
		// Wake-up votes are one-shot; do not carry them past the
		// superstep they were raised for.
		total.ResetAcc(wakeAccID, ss+1)

		step := steps[len(steps)-1]
		if ss < len(steps) {
			step = steps[ss]
		}

		var anyContinue atomic.Bool
		var wg sync.WaitGroup
		for w := 0; w < cfg.threads; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				for shardID := w; shardID < nrShards; shardID += cfg.threads {
					for k, gid := range shardVerts[shardID] {
						if aborted.Load() {
							return
						}
						if ss > 0 && !alive[shardID][k] {
							if awake, _ := state.ReadKey(total, wake, ss, gid); !awake {
								continue
							}
						}
						act := r.evalOne(step, view.VertexUnchecked(gid), ss, locals[w], total, abort)
						alive[shardID][k] = act == Continue
						if act == Continue {
							anyContinue.Store(true)
						}
					}
				}
			}(w)
		}
		wg.Wait()

		if aborted.Load() {
			mu.Lock()
			err := stepErr
			mu.Unlock()
			return nil, err
		}

		// Shuffle: route every worker-local partial to the part of its
		// owning shard and combine. Commutative, so merge order is
		// irrelevant; re-running on the drained locals is a no-op.
		for _, l := range locals {
			l.MergeInto(total, ss+1)
		}

		if cfg.global != nil {
			cfg.global(&EvalGlobal{ss: ss, total: total})
		}

		anyWake := total.AnyKeySet(wakeAccID, ss+1)
		r.log.Debug("superstep complete",
			zap.Int("superstep", ss),
			zap.Bool("any_continue", anyContinue.Load()),
			zap.Bool("any_wake", anyWake))
		if !anyContinue.Load() && !anyWake {
			ss++
			break
		}
	}

	return &RunState{total: total, readSS: ss, Supersteps: ss}, nil
}

// evalOne invokes the step with panic isolation. A panic aborts the
// run; the vertex's partial writes die with the discarded state.
func (r *TaskRunner) evalOne(step Step, vv db.VertexView, ss int, local, total *state.ShuffleState, abort func(error)) (act Action) {
	defer func() {
		if p := recover(); p != nil {
			act = Done
			abort(errors.Wrapf(ErrComputeAborted, "user step panicked on vertex %d in superstep %d: %v", vv.ID(), ss, p))
		}
	}()
	return step(&EvalVertex{vertex: vv, ss: ss, local: local, total: total})
}
