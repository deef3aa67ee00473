package gradedit

import "math"

// Point represents a 2D point or offset.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Size holds the pixel dimensions of a rendering surface.
type Size struct {
	Width, Height float64
}

// Orientation tells which screen axis carries the gradient's long
// dimension.
type Orientation int

const (
	// Vertical runs the gradient along the Y axis.
	Vertical Orientation = iota
	// Horizontal runs the gradient along the X axis.
	Horizontal
)

// Zoom bounds. At MinZoom the whole gradient is visible; at MaxZoom one
// quarter of gradient space fills the strip.
const (
	MinZoom = 1.0
	MaxZoom = 4.0
)

// HandleCrossOffset is the fixed cross-axis offset, in view units, at
// which stop handles sit beside a vertical strip. Horizontal strips place
// handles at cross offset zero.
const HandleCrossOffset = 100.0

// LayoutGeometry maps between gradient space (normalized [0, 1] positions)
// and view coordinates along the strip's long axis, under the current zoom
// and pan. It holds no state of its own beyond the three inputs and every
// method is a total function: out-of-window positions come back as a false
// second return, never a panic.
type LayoutGeometry struct {
	// ViewSize is the on-screen extent of the rendering surface.
	ViewSize Size
	// ZoomLevel is in [1, 4]. 1 shows the entire gradient.
	ZoomLevel float64
	// PanOffset is in [0, 1] and only meaningful when ZoomLevel > 1:
	// 0 anchors the window at the gradient start, 1 at the end.
	PanOffset float64
}

// Orientation derives the strip direction from the view size. A square
// (or zero) surface is vertical.
func (g LayoutGeometry) Orientation() Orientation {
	if g.ViewSize.Width > g.ViewSize.Height {
		return Horizontal
	}
	return Vertical
}

// StripLength is the view extent along the long axis, floored at 1 so a
// degenerate surface never divides by zero.
func (g LayoutGeometry) StripLength() float64 {
	length := g.ViewSize.Height
	if g.Orientation() == Horizontal {
		length = g.ViewSize.Width
	}
	return math.Max(length, 1.0)
}

// MaxPan is the largest reachable window start, 1 - 1/zoom. Zero when the
// whole gradient is visible.
func (g LayoutGeometry) MaxPan() float64 {
	if g.ZoomLevel <= MinZoom {
		return 0
	}
	return 1.0 - 1.0/g.ZoomLevel
}

// VisibleRange returns the sub-range of gradient space shown by the strip.
// The window width is always 1/zoom; its start interpolates PanOffset over
// MaxPan.
func (g LayoutGeometry) VisibleRange() (start, end float64) {
	if g.ZoomLevel <= MinZoom {
		return 0, 1
	}
	start = g.PanOffset * g.MaxPan()
	return start, start + 1.0/g.ZoomLevel
}

// ViewCoordinate maps a gradient position to a pixel offset along the
// strip axis. The second return is false when the position lies outside
// the visible window (including any position outside [0, 1] that the
// window does not cover).
func (g LayoutGeometry) ViewCoordinate(position float64) (float64, bool) {
	start, end := g.VisibleRange()
	if position < start || position > end {
		return 0, false
	}
	return (position - start) / (end - start) * g.StripLength(), true
}

// GradientPosition is the inverse of ViewCoordinate: it maps a pixel
// offset along the strip axis back to a gradient position. The result is
// clamped to the global [0, 1] range, not to the visible window, so a drag
// past the strip edge lands on the gradient boundary rather than the
// window edge.
func (g LayoutGeometry) GradientPosition(coordinate float64) float64 {
	start, end := g.VisibleRange()
	return clamp01(start + coordinate/g.StripLength()*(end-start))
}

// HandleOffset positions a stop-handle marker for the given gradient
// position: along the strip axis at its view coordinate, and beside the
// strip at the fixed cross-axis offset for vertical strips. The second
// return is false when the position is not visible.
func (g LayoutGeometry) HandleOffset(position float64) (Point, bool) {
	coord, ok := g.ViewCoordinate(position)
	if !ok {
		return Point{}, false
	}
	if g.Orientation() == Horizontal {
		return Pt(coord, 0), true
	}
	return Pt(HandleCrossOffset, coord), true
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
