package props

import "sort"

// TimedProp is one timestamped value in a property history.
type TimedProp struct {
	TS  int64
	Val Prop
}

// Cell holds the ordered history of one property of one entity.
//
// Appends at or past the current maximum timestamp are O(1) amortized;
// out-of-order appends insert in O(log n + n). A second write at an
// existing timestamp replaces the prior value (last writer wins).
type Cell struct {
	runs []TimedProp // sorted by TS, one entry per timestamp
}

// Append records (ts, v), replacing any prior value at ts.
func (c *Cell) Append(ts int64, v Prop) {
	n := len(c.runs)
	if n == 0 || ts > c.runs[n-1].TS {
		c.runs = append(c.runs, TimedProp{TS: ts, Val: v})
		return
	}
	if ts == c.runs[n-1].TS {
		c.runs[n-1].Val = v
		return
	}
	i := sort.Search(n, func(k int) bool { return c.runs[k].TS >= ts })
	if i < n && c.runs[i].TS == ts {
		c.runs[i].Val = v
		return
	}
	c.runs = append(c.runs, TimedProp{})
	copy(c.runs[i+1:], c.runs[i:])
	c.runs[i] = TimedProp{TS: ts, Val: v}
}

// At returns the value with the greatest timestamp ≤ ts, or an unset
// Prop when the history starts after ts.
//
// Complexity: O(log n).
func (c *Cell) At(ts int64) Prop {
	i := sort.Search(len(c.runs), func(k int) bool { return c.runs[k].TS > ts })
	if i == 0 {
		return Prop{}
	}
	return c.runs[i-1].Val
}

// History returns the ordered values with timestamps in [start, end).
// The returned slice aliases the cell; callers must not mutate it.
func (c *Cell) History(start, end int64) []TimedProp {
	lo := sort.Search(len(c.runs), func(k int) bool { return c.runs[k].TS >= start })
	hi := sort.Search(len(c.runs), func(k int) bool { return c.runs[k].TS >= end })
	if lo >= hi {
		return nil
	}
	return c.runs[lo:hi]
}

// Len reports the number of distinct timestamps recorded.
func (c *Cell) Len() int { return len(c.runs) }

// Store is the temporal property set of one entity: interned name id →
// history cell. Not safe for concurrent use; the owning shard
// serializes access.
type Store struct {
	cells map[int]*Cell
}

// Append records (ts, v) under the interned name id.
func (s *Store) Append(nameID int, ts int64, v Prop) {
	if s.cells == nil {
		s.cells = make(map[int]*Cell)
	}
	c, ok := s.cells[nameID]
	if !ok {
		c = &Cell{}
		s.cells[nameID] = c
	}
	c.Append(ts, v)
}

// At returns the value of nameID as of ts, or an unset Prop.
func (s *Store) At(nameID int, ts int64) Prop {
	c, ok := s.cells[nameID]
	if !ok {
		return Prop{}
	}
	return c.At(ts)
}

// History returns the ordered values of nameID within [start, end).
func (s *Store) History(nameID int, start, end int64) []TimedProp {
	c, ok := s.cells[nameID]
	if !ok {
		return nil
	}
	return c.History(start, end)
}

// NameIDs returns the ids of all properties ever written, in ascending
// id order.
func (s *Store) NameIDs() []int {
	ids := make([]int, 0, len(s.cells))
	for id := range s.cells {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
