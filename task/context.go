package task

import (
	"math"

	"github.com/Dullaz/Raphtory/db"
	"github.com/Dullaz/Raphtory/state"
)

// wakeAccID is the reserved accumulator id backing the voted-halt
// active set. User accumulators must use smaller ids.
const wakeAccID uint32 = math.MaxUint32

// Context binds a graph view to the accumulators a computation
// declares. Build one with NewContext, register accumulators with Agg,
// then hand it to a TaskRunner.
type Context struct {
	view db.View
	accs []state.Declarable
}

// NewContext returns a context over the given view.
func NewContext(view db.View) *Context {
	return &Context{view: view}
}

// Agg declares an accumulator for the computation. Declaring the same
// id twice keeps the first declaration.
func (c *Context) Agg(acc state.Declarable) {
	c.accs = append(c.accs, acc)
}

// View returns the graph view the computation runs over.
func (c *Context) View() db.View { return c.view }

func (c *Context) newShuffleState() *state.ShuffleState {
	st := state.NewShuffleState(c.view.DB().NrShards())
	for _, acc := range c.accs {
		for i := 0; i < st.NrShards(); i++ {
			acc.DeclareIn(st.Part(i))
		}
		acc.DeclareIn(st.Global())
	}
	state.DeclareAll(st, wakeAcc())
	return st
}

// wakeAcc is the internal any-accumulator marking vertices to run next
// superstep.
func wakeAcc() state.AccID[bool, bool, bool] {
	return state.Any(wakeAccID)
}
