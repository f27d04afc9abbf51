package core

import "math"

// LayerAll selects edge events of every layer.
const LayerAll = -1

// Window is a half-open time interval [Start, End).
//
// The zero Window is empty; use All() for the unbounded interval.
type Window struct {
	Start int64 // inclusive
	End   int64 // exclusive
}

// All returns the unbounded window.
func All() Window {
	return Window{Start: math.MinInt64, End: math.MaxInt64}
}

// NewWindow returns the half-open interval [start, end).
func NewWindow(start, end int64) Window {
	return Window{Start: start, End: end}
}

// Until returns the window of all events at or before ts.
func Until(ts int64) Window {
	if ts == math.MaxInt64 {
		return All()
	}
	return Window{Start: math.MinInt64, End: ts + 1}
}

// Contains reports whether ts falls inside the window.
func (w Window) Contains(ts int64) bool {
	return ts >= w.Start && ts < w.End
}

// Empty reports whether no timestamp can fall inside the window.
func (w Window) Empty() bool { return w.Start >= w.End }

// Intersect narrows w by o: [max(starts), min(ends)).
// An empty intersection yields a window for which every structural
// query returns zero or nothing.
func (w Window) Intersect(o Window) Window {
	out := w
	if o.Start > out.Start {
		out.Start = o.Start
	}
	if o.End < out.End {
		out.End = o.End
	}
	return out
}

// Direction selects which incident edges a traversal follows.
type Direction uint8

const (
	// Both follows incoming and outgoing edges.
	Both Direction = iota
	// In follows only edges pointing into the vertex.
	In
	// Out follows only edges pointing out of the vertex.
	Out
)
