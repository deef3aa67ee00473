package gradedit

import "testing"

func stopsAt(positions ...float64) []ColorStop {
	stops := make([]ColorStop, len(positions))
	for i, p := range positions {
		stops[i] = NewColorStop(p, Single(Black))
	}
	return stops
}

func TestColorMapKeepsInsertionOrder(t *testing.T) {
	stops := stopsAt(0.9, 0.1, 0.5)
	m := NewColorMap(stops)

	if len(m.Stops) != len(stops) {
		t.Fatalf("len(Stops) = %d, want %d", len(m.Stops), len(stops))
	}
	for i := range stops {
		if !m.Stops[i].Equal(stops[i]) {
			t.Errorf("Stops[%d] = %v, want %v", i, m.Stops[i].ID, stops[i].ID)
		}
	}
}

func TestSortedStopsSortInvariance(t *testing.T) {
	// The sorted view is the same no matter the insertion order.
	a := NewColorMap(stopsAt(0.1, 0.5, 0.9))
	b := NewColorMapWithID(a.ID, []ColorStop{a.Stops[2], a.Stops[0], a.Stops[1]})

	sa, sb := a.SortedStops(), b.SortedStops()
	if len(sa) != len(sb) {
		t.Fatalf("sorted lengths differ: %d vs %d", len(sa), len(sb))
	}
	for i := range sa {
		if !sa[i].Equal(sb[i]) {
			t.Errorf("sorted[%d] differs: %v vs %v", i, sa[i].ID, sb[i].ID)
		}
	}
	for i := 1; i < len(sa); i++ {
		if sa[i].Position < sa[i-1].Position {
			t.Errorf("sorted stops out of order at %d: %v > %v", i, sa[i-1].Position, sa[i].Position)
		}
	}
}

func TestSortedStopsStableOnTies(t *testing.T) {
	first := NewColorStop(0.5, Single(Red))
	second := NewColorStop(0.5, Single(Blue))
	m := NewColorMap([]ColorStop{second, first})

	sorted := m.SortedStops()
	if !sorted[0].Equal(second) || !sorted[1].Equal(first) {
		t.Error("stops sharing a position did not keep insertion order")
	}
}

func TestSortedStopsDoesNotMutate(t *testing.T) {
	m := NewColorMap(stopsAt(0.9, 0.1))
	_ = m.SortedStops()
	if m.Stops[0].Position != 0.9 {
		t.Error("SortedStops() reordered the receiver's stops")
	}
}

func TestColorMapIdentity(t *testing.T) {
	stops := stopsAt(0, 1)
	a := NewColorMap(stops)
	b := NewColorMap(stops)

	if a.Equal(b) {
		t.Error("maps with distinct ids compare equal")
	}
	if !a.Equal(ColorMap{ID: a.ID}) {
		t.Error("maps sharing an id compare unequal")
	}
}

func TestNewColorMapCopiesStops(t *testing.T) {
	stops := stopsAt(0, 1)
	m := NewColorMap(stops)
	stops[0].Position = 0.7
	if m.Stops[0].Position != 0 {
		t.Error("NewColorMap aliased the caller's slice")
	}
}

func TestStopByID(t *testing.T) {
	stops := stopsAt(0, 0.5, 1)
	m := NewColorMap(stops)

	got, index, ok := m.StopByID(stops[1].ID)
	if !ok || index != 1 || !got.Equal(stops[1]) {
		t.Errorf("StopByID() = %v, %d, %v", got.ID, index, ok)
	}
	if _, _, ok := m.StopByID("missing"); ok {
		t.Error("StopByID(missing) reported ok")
	}
}
