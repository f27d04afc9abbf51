package algorithms

import (
	"math"

	"github.com/Dullaz/Raphtory/db"
	"github.com/Dullaz/Raphtory/state"
	"github.com/Dullaz/Raphtory/task"
)

// DegreeCentrality computes the degree centrality of every vertex in
// the view: its degree divided by the maximum degree in the view.
// Scores lie in [0, 1]: a self-loop adds the vertex itself once to its
// distinct neighbours, like any other neighbour. When the maximum degree is
// zero every vertex scores zero, never NaN; a NaN or infinite ratio is
// replaced with the accumulator identity through a global update.
//
// threads ≤ 0 uses the hardware parallelism.
func DegreeCentrality(g db.View, threads int) (*task.AlgorithmResult[float64], error) {
	maxDegree := MaxDegree(g)

	ctx := task.NewContext(g)
	sum := state.Sum[float64](0)
	ctx.Agg(sum)

	step := func(ev *task.EvalVertex) task.Action {
		res := float64(ev.V().Degree()) / float64(maxDegree)
		if math.IsNaN(res) || math.IsInf(res, 0) {
			task.GlobalUpdate(ev, sum, 0)
		} else {
			task.Update(ev, sum, res)
		}
		return task.Done
	}

	opts := []task.RunOption{task.WithMaxSupersteps(1)}
	if threads > 0 {
		opts = append(opts, task.WithThreads(threads))
	}
	runner := task.NewTaskRunner(ctx)
	rs, err := runner.Run([]task.Step{step}, opts...)
	if err != nil {
		return nil, err
	}
	return task.FinalizeResult(rs, sum, "degree_centrality", g), nil
}
