package gradedit

import (
	"math"
	"testing"
)

// tolerance for geometry floating point comparisons
const geomEpsilon = 1e-9

func TestOrientation(t *testing.T) {
	tests := []struct {
		name string
		size Size
		want Orientation
	}{
		{"wide", Size{Width: 300, Height: 40}, Horizontal},
		{"tall", Size{Width: 40, Height: 300}, Vertical},
		{"square resolves vertical", Size{Width: 100, Height: 100}, Vertical},
		{"zero resolves vertical", Size{}, Vertical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := LayoutGeometry{ViewSize: tt.size, ZoomLevel: 1}
			if got := g.Orientation(); got != tt.want {
				t.Errorf("Orientation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStripLength(t *testing.T) {
	tests := []struct {
		name string
		size Size
		want float64
	}{
		{"horizontal takes width", Size{Width: 300, Height: 40}, 300},
		{"vertical takes height", Size{Width: 40, Height: 300}, 300},
		{"zero surface floors at one", Size{}, 1},
		{"sub-pixel floors at one", Size{Width: 0.25, Height: 0.5}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := LayoutGeometry{ViewSize: tt.size, ZoomLevel: 1}
			if got := g.StripLength(); got != tt.want {
				t.Errorf("StripLength() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVisibleRangeZoomScaling(t *testing.T) {
	// The window width is exactly 1/zoom for every valid pan.
	for _, zoom := range []float64{1, 1.5, 2, 3, 4} {
		for _, pan := range []float64{0, 0.25, 0.5, 1} {
			g := LayoutGeometry{ViewSize: Size{Width: 40, Height: 400}, ZoomLevel: zoom, PanOffset: pan}
			start, end := g.VisibleRange()
			if math.Abs((end-start)-1/zoom) > geomEpsilon {
				t.Errorf("zoom=%v pan=%v: window width = %v, want %v", zoom, pan, end-start, 1/zoom)
			}
			if start < 0 || end > 1+geomEpsilon {
				t.Errorf("zoom=%v pan=%v: window [%v, %v] escapes [0, 1]", zoom, pan, start, end)
			}
		}
	}
}

func TestVisibleRangePanAnchors(t *testing.T) {
	g := LayoutGeometry{ViewSize: Size{Width: 40, Height: 400}, ZoomLevel: 4}

	g.PanOffset = 0
	start, end := g.VisibleRange()
	if start != 0 || math.Abs(end-0.25) > geomEpsilon {
		t.Errorf("pan=0: window [%v, %v], want [0, 0.25]", start, end)
	}

	g.PanOffset = 1
	start, end = g.VisibleRange()
	if math.Abs(start-0.75) > geomEpsilon || math.Abs(end-1) > geomEpsilon {
		t.Errorf("pan=1: window [%v, %v], want [0.75, 1]", start, end)
	}

	g.PanOffset = 0.5
	start, _ = g.VisibleRange()
	if math.Abs(start-0.375) > geomEpsilon {
		t.Errorf("pan=0.5: start = %v, want 0.375 (half of maxPan)", start)
	}
}

func TestPanIgnoredAtZoomOne(t *testing.T) {
	for _, pan := range []float64{0, 0.5, 1} {
		g := LayoutGeometry{ViewSize: Size{Width: 40, Height: 400}, ZoomLevel: 1, PanOffset: pan}
		start, end := g.VisibleRange()
		if start != 0 || end != 1 {
			t.Errorf("pan=%v at zoom 1: window [%v, %v], want [0, 1]", pan, start, end)
		}
		if g.MaxPan() != 0 {
			t.Errorf("pan=%v at zoom 1: MaxPan() = %v, want 0", pan, g.MaxPan())
		}
	}
}

func TestViewCoordinateRoundTrip(t *testing.T) {
	g := LayoutGeometry{ViewSize: Size{Width: 40, Height: 512}, ZoomLevel: 1}
	for p := 0.0; p <= 1.0; p += 0.05 {
		coord, ok := g.ViewCoordinate(p)
		if !ok {
			t.Fatalf("ViewCoordinate(%v) not visible at zoom 1", p)
		}
		if back := g.GradientPosition(coord); math.Abs(back-p) > geomEpsilon {
			t.Errorf("round trip of %v came back as %v", p, back)
		}
	}
}

func TestViewCoordinateContainment(t *testing.T) {
	// Visible iff within [visibleRangeStart, visibleRangeEnd]; positions
	// outside global [0, 1] follow the same rule.
	g := LayoutGeometry{ViewSize: Size{Width: 40, Height: 400}, ZoomLevel: 4, PanOffset: 0.5}
	start, end := g.VisibleRange() // [0.375, 0.625]

	tests := []struct {
		position float64
		visible  bool
	}{
		{start - 0.01, false},
		{start, true},
		{(start + end) / 2, true},
		{end, true},
		{end + 0.01, false},
		{-1, false},
		{2, false},
	}

	for _, tt := range tests {
		coord, ok := g.ViewCoordinate(tt.position)
		if ok != tt.visible {
			t.Errorf("ViewCoordinate(%v) visible = %v, want %v", tt.position, ok, tt.visible)
			continue
		}
		if ok && (coord < 0 || coord > g.StripLength()) {
			t.Errorf("ViewCoordinate(%v) = %v outside strip [0, %v]", tt.position, coord, g.StripLength())
		}
	}
}

func TestViewCoordinateScalesToStrip(t *testing.T) {
	g := LayoutGeometry{ViewSize: Size{Width: 40, Height: 200}, ZoomLevel: 2, PanOffset: 1}
	// Window is [0.5, 1.0] over a 200-unit strip.
	coord, ok := g.ViewCoordinate(0.75)
	if !ok || math.Abs(coord-100) > geomEpsilon {
		t.Errorf("ViewCoordinate(0.75) = %v, %v, want 100, true", coord, ok)
	}
}

func TestGradientPositionClampsGlobally(t *testing.T) {
	// A drag past the strip edge lands on the gradient boundary, not the
	// window edge.
	g := LayoutGeometry{ViewSize: Size{Width: 40, Height: 200}, ZoomLevel: 2, PanOffset: 0.5}

	if got := g.GradientPosition(-10000); got != 0 {
		t.Errorf("GradientPosition(-10000) = %v, want 0", got)
	}
	if got := g.GradientPosition(10000); got != 1 {
		t.Errorf("GradientPosition(10000) = %v, want 1", got)
	}

	// Mildly past the edge stays un-clamped while inside [0, 1].
	start, end := g.VisibleRange() // [0.25, 0.75]
	got := g.GradientPosition(250)
	want := start + 250.0/200.0*(end-start)
	if math.Abs(got-want) > geomEpsilon {
		t.Errorf("GradientPosition(250) = %v, want %v", got, want)
	}
}

func TestHandleOffset(t *testing.T) {
	vertical := LayoutGeometry{ViewSize: Size{Width: 40, Height: 200}, ZoomLevel: 1}
	off, ok := vertical.HandleOffset(0.5)
	if !ok || off != Pt(HandleCrossOffset, 100) {
		t.Errorf("vertical HandleOffset(0.5) = %v, %v, want %v, true", off, ok, Pt(HandleCrossOffset, 100))
	}

	horizontal := LayoutGeometry{ViewSize: Size{Width: 200, Height: 40}, ZoomLevel: 1}
	off, ok = horizontal.HandleOffset(0.25)
	if !ok || off != Pt(50, 0) {
		t.Errorf("horizontal HandleOffset(0.25) = %v, %v, want %v, true", off, ok, Pt(50, 0))
	}

	zoomed := LayoutGeometry{ViewSize: Size{Width: 200, Height: 40}, ZoomLevel: 4}
	if _, ok := zoomed.HandleOffset(0.9); ok {
		t.Error("HandleOffset(0.9) visible in window [0, 0.25]")
	}
}

func TestGeometryTotality(t *testing.T) {
	// Every method must return (not panic) for hostile inputs.
	cases := []LayoutGeometry{
		{},
		{ZoomLevel: 0},
		{ZoomLevel: -3, PanOffset: 17},
		{ViewSize: Size{Width: -5, Height: -5}, ZoomLevel: 100, PanOffset: -2},
		{ViewSize: Size{Width: math.Inf(1)}, ZoomLevel: math.NaN()},
	}
	for _, g := range cases {
		_ = g.Orientation()
		_ = g.StripLength()
		_ = g.MaxPan()
		_, _ = g.VisibleRange()
		_, _ = g.ViewCoordinate(math.NaN())
		_ = g.GradientPosition(math.Inf(-1))
		_, _ = g.HandleOffset(2)
	}
}
