package nls

import (
	"fmt"
	"sort"
	"strings"
)

// RangeSet is an ordered set of disjoint half-open [start, end) byte
// intervals over a document. A nil *RangeSet means "everything is active".
type RangeSet struct {
	starts []int
	ends   []int
}

// NewRangeSet returns a set covering the given [start, end) pairs.
// Overlapping and touching intervals are coalesced.
func NewRangeSet(pairs ...[2]int) *RangeSet {
	rs := &RangeSet{}
	for _, p := range pairs {
		rs.Add(p[0], p[1])
	}
	return rs
}

// Add inserts [start, end) into the set, merging with existing intervals.
// Empty or inverted intervals are ignored.
func (rs *RangeSet) Add(start, end int) {
	if end <= start {
		return
	}
	starts := append(rs.starts, start)
	ends := append(rs.ends, end)
	idx := make([]int, len(starts))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return starts[idx[a]] < starts[idx[b]] })

	mergedStarts := make([]int, 0, len(starts))
	mergedEnds := make([]int, 0, len(ends))
	for _, i := range idx {
		s, e := starts[i], ends[i]
		if n := len(mergedStarts); n > 0 && s <= mergedEnds[n-1] {
			if e > mergedEnds[n-1] {
				mergedEnds[n-1] = e
			}
			continue
		}
		mergedStarts = append(mergedStarts, s)
		mergedEnds = append(mergedEnds, e)
	}
	rs.starts = mergedStarts
	rs.ends = mergedEnds
}

// Encloses reports whether [start, end) lies entirely inside one interval
// of the set. An empty interval [x, x) is enclosed when x falls within or
// on the boundary of an interval. A nil set encloses everything.
func (rs *RangeSet) Encloses(start, end int) bool {
	if rs == nil {
		return true
	}
	if end < start {
		return false
	}
	// Last interval starting at or before start.
	i := sort.SearchInts(rs.starts, start+1) - 1
	if i < 0 {
		return false
	}
	return end <= rs.ends[i]
}

// Len returns the number of disjoint intervals in the set.
func (rs *RangeSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.starts)
}

func (rs *RangeSet) String() string {
	if rs == nil {
		return "(all)"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i := range rs.starts {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "[%d,%d)", rs.starts[i], rs.ends[i])
	}
	b.WriteByte('}')
	return b.String()
}
