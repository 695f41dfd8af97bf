package nls

import "testing"

func TestRangeSetAddCoalesces(t *testing.T) {
	rs := NewRangeSet()
	rs.Add(10, 20)
	rs.Add(30, 40)
	rs.Add(18, 32)
	if rs.Len() != 1 {
		t.Fatalf("expected 1 coalesced interval, got %d (%s)", rs.Len(), rs)
	}
	if !rs.Encloses(10, 40) {
		t.Fatalf("expected [10,40) to be enclosed after coalescing: %s", rs)
	}
}

func TestRangeSetEncloses(t *testing.T) {
	rs := NewRangeSet([2]int{10, 20}, [2]int{30, 40})
	cases := []struct {
		name       string
		start, end int
		want       bool
	}{
		{name: "inside first", start: 12, end: 18, want: true},
		{name: "exact first", start: 10, end: 20, want: true},
		{name: "spans gap", start: 15, end: 35, want: false},
		{name: "in gap", start: 22, end: 25, want: false},
		{name: "before all", start: 0, end: 5, want: false},
		{name: "empty at interval start", start: 10, end: 10, want: true},
		{name: "empty at interval end", start: 20, end: 20, want: true},
		{name: "empty in gap", start: 25, end: 25, want: false},
		{name: "touching end exclusive", start: 18, end: 21, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := rs.Encloses(tc.start, tc.end); got != tc.want {
				t.Fatalf("Encloses(%d, %d) = %v, want %v", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestRangeSetNilEnclosesEverything(t *testing.T) {
	var rs *RangeSet
	if !rs.Encloses(0, 1<<30) {
		t.Fatalf("nil RangeSet must enclose everything")
	}
	if rs.Len() != 0 {
		t.Fatalf("nil RangeSet length should be 0, got %d", rs.Len())
	}
}

func TestRangeSetIgnoresEmptyIntervals(t *testing.T) {
	rs := NewRangeSet()
	rs.Add(5, 5)
	rs.Add(9, 3)
	if rs.Len() != 0 {
		t.Fatalf("expected empty set, got %s", rs)
	}
	if rs.Encloses(5, 5) {
		t.Fatalf("empty set should not enclose anything")
	}
}
