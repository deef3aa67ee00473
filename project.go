package gradedit

import "sort"

// Breakpoint is one entry in the list handed to a gradient-paint
// primitive: a color at a location normalized to [0, 1] of the visible
// window (not of global gradient space).
type Breakpoint struct {
	Color    Color
	Location float64
}

// ColorAt returns the gradient's color at position p.
//
// Stops bracket p using their effective side colors: the segment between
// two stops runs from the lower stop's high-side color to the upper stop's
// low-side color, which is what makes dual stops paint a hard edge. At or
// before the first stop the first stop's low-side color is returned
// outright, and at or after the last stop the last stop's high-side color;
// there is no extrapolation.
func (m ColorMap) ColorAt(p float64) Color {
	return colorAt(m.SortedStops(), p)
}

// colorAt interpolates over stops already sorted by position.
func colorAt(sorted []ColorStop, p float64) Color {
	if len(sorted) == 0 {
		return Transparent
	}
	if p <= sorted[0].Position {
		return sorted[0].Spec.First()
	}
	last := sorted[len(sorted)-1]
	if p >= last.Position {
		return last.Spec.Second()
	}

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Position >= p
	})
	// idx >= 1 and sorted[idx-1].Position < p <= sorted[idx].Position,
	// so the bracket is never degenerate.
	prev := sorted[idx-1]
	next := sorted[idx]

	t := (p - prev.Position) / (next.Position - prev.Position)
	return prev.Spec.Second().Lerp(next.Spec.First(), t)
}

// Project maps the stops of m into the visible window [start, end],
// producing the ordered breakpoint list a linear-gradient paint call
// needs:
//
//   - stops inside the window appear at remapped locations, dual stops as
//     two breakpoints at the same location (low side first);
//   - when the window starts or ends between stops, a boundary breakpoint
//     with the interpolated color there is synthesized at location 0 or 1;
//   - a window containing no stops at all degenerates to two breakpoints
//     of the interpolated boundary colors.
//
// The list is recomputed on every call; stop counts are small enough that
// caching would not pay for itself.
func Project(m ColorMap, start, end float64) []Breakpoint {
	sorted := m.SortedStops()
	if end <= start {
		c := colorAt(sorted, start)
		return []Breakpoint{{Color: c, Location: 0}, {Color: c, Location: 1}}
	}

	// Index range [lo, hi) of stops inside the window.
	lo := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Position >= start
	})
	hi := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Position > end
	})

	if lo >= hi {
		return []Breakpoint{
			{Color: colorAt(sorted, start), Location: 0},
			{Color: colorAt(sorted, end), Location: 1},
		}
	}

	width := end - start
	points := make([]Breakpoint, 0, hi-lo+3)

	if sorted[lo].Position > start {
		points = append(points, Breakpoint{Color: colorAt(sorted, start), Location: 0})
	}
	for _, s := range sorted[lo:hi] {
		loc := (s.Position - start) / width
		points = append(points, Breakpoint{Color: s.Spec.First(), Location: loc})
		if s.Spec.IsDual() {
			points = append(points, Breakpoint{Color: s.Spec.Second(), Location: loc})
		}
	}
	if sorted[hi-1].Position < end {
		points = append(points, Breakpoint{Color: colorAt(sorted, end), Location: 1})
	}
	return points
}
