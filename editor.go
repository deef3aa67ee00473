package gradedit

import "math"

// MinStops is the smallest number of stops an edited color map may hold.
// RemoveStop refuses to go below it.
const MinStops = 2

// EditorOption configures an Editor during creation.
type EditorOption func(*editorOptions)

// editorOptions holds optional configuration for Editor creation.
type editorOptions struct {
	viewSize Size
	zoom     float64
	pan      float64
}

// defaultEditorOptions returns the default editor options.
func defaultEditorOptions() editorOptions {
	return editorOptions{
		viewSize: Size{Width: 100, Height: 400},
		zoom:     MinZoom,
		pan:      0,
	}
}

// WithViewSize sets the initial rendering-surface size.
func WithViewSize(s Size) EditorOption {
	return func(o *editorOptions) { o.viewSize = s }
}

// WithZoom sets the initial zoom level, clamped to [MinZoom, MaxZoom].
func WithZoom(z float64) EditorOption {
	return func(o *editorOptions) { o.zoom = z }
}

// WithPan sets the initial pan offset, clamped to [0, 1].
func WithPan(p float64) EditorOption {
	return func(o *editorOptions) { o.pan = p }
}

// Editor holds the mutable state of a gradient editing session: the color
// map being edited, the selected stop, and the zoom/pan view state. It is
// the owner the geometry and projection layers read from on each render
// tick.
//
// All mutations follow value semantics: the editor builds a new ColorMap
// and replaces its copy, so snapshots returned by ColorMap are never
// modified behind the caller's back. Selection is tracked by stop id and
// therefore survives position and color edits.
//
// Editor is not safe for concurrent use; confine it to the UI thread the
// way its callers do.
type Editor struct {
	m        ColorMap
	selected string
	viewSize Size
	zoom     float64
	pan      float64
}

// NewEditor creates an editing session over m.
func NewEditor(m ColorMap, opts ...EditorOption) *Editor {
	o := defaultEditorOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Editor{
		m:        m,
		viewSize: o.viewSize,
		zoom:     clampZoom(o.zoom),
		pan:      clamp01(o.pan),
	}
}

// ColorMap returns the current state of the edited map.
func (e *Editor) ColorMap() ColorMap {
	return e.m
}

// Geometry returns the layout geometry for the current view state.
func (e *Editor) Geometry() LayoutGeometry {
	return LayoutGeometry{ViewSize: e.viewSize, ZoomLevel: e.zoom, PanOffset: e.pan}
}

// VisibleBreakpoints projects the current stops into the visible window.
// This is the per-render-tick call: geometry first, projection second.
func (e *Editor) VisibleBreakpoints() []Breakpoint {
	start, end := e.Geometry().VisibleRange()
	return Project(e.m, start, end)
}

// SetViewSize updates the rendering-surface size.
func (e *Editor) SetViewSize(s Size) {
	e.viewSize = s
}

// Zoom returns the current zoom level.
func (e *Editor) Zoom() float64 { return e.zoom }

// SetZoom updates the zoom level, clamped to [MinZoom, MaxZoom].
func (e *Editor) SetZoom(z float64) {
	e.zoom = clampZoom(z)
}

// Pan returns the current pan offset.
func (e *Editor) Pan() float64 { return e.pan }

// SetPan updates the pan offset, clamped to [0, 1]. Pan has no effect on
// the visible range while the zoom level is 1.
func (e *Editor) SetPan(p float64) {
	e.pan = clamp01(p)
}

// SelectStop marks the stop with the given id as selected.
func (e *Editor) SelectStop(id string) error {
	if _, _, ok := e.m.StopByID(id); !ok {
		return ErrStopNotFound
	}
	e.selected = id
	return nil
}

// ClearSelection deselects any selected stop.
func (e *Editor) ClearSelection() {
	e.selected = ""
}

// SelectedStop returns the currently selected stop, if any.
func (e *Editor) SelectedStop() (ColorStop, bool) {
	if e.selected == "" {
		return ColorStop{}, false
	}
	stop, _, ok := e.m.StopByID(e.selected)
	return stop, ok
}

// AddStop inserts a new stop at the given position, clamped to [0, 1].
// The stop takes the map's current interpolated color there, so adding a
// stop never visibly changes the gradient until the stop is edited. The
// stop is appended to the insertion-order list and returned.
func (e *Editor) AddStop(position float64) ColorStop {
	position = clamp01(position)
	stop := NewColorStop(position, Single(e.m.ColorAt(position)))
	stops := append(e.m.Stops[:0:0], e.m.Stops...)
	stops = append(stops, stop)
	e.m = ColorMap{ID: e.m.ID, Stops: stops}
	Logger().Debug("stop added", "id", stop.ID, "position", position)
	return stop
}

// DuplicateStop clones the stop with the given id. The duplicate is placed
// at the midpoint between the original and the next-highest stop, or at
// the midpoint to the previous stop when the original is the highest. It
// keeps the original's colors, gets a fresh id, and sits immediately after
// the original in the insertion-order list.
func (e *Editor) DuplicateStop(id string) (ColorStop, error) {
	original, index, ok := e.m.StopByID(id)
	if !ok {
		return ColorStop{}, ErrStopNotFound
	}

	sorted := e.m.SortedStops()
	rank := 0
	for i, s := range sorted {
		if s.ID == id {
			rank = i
			break
		}
	}

	position := original.Position
	switch {
	case rank < len(sorted)-1:
		position = (original.Position + sorted[rank+1].Position) / 2
	case rank > 0:
		position = (sorted[rank-1].Position + original.Position) / 2
	}

	dup := NewColorStop(position, original.Spec)
	stops := make([]ColorStop, 0, len(e.m.Stops)+1)
	stops = append(stops, e.m.Stops[:index+1]...)
	stops = append(stops, dup)
	stops = append(stops, e.m.Stops[index+1:]...)
	e.m = ColorMap{ID: e.m.ID, Stops: stops}
	Logger().Debug("stop duplicated", "source", id, "id", dup.ID, "position", position)
	return dup, nil
}

// MoveStop updates a stop's position, clamped to [0, 1]. The stop's id is
// unchanged, so it stays selected through a drag.
func (e *Editor) MoveStop(id string, position float64) error {
	_, index, ok := e.m.StopByID(id)
	if !ok {
		return ErrStopNotFound
	}
	stops := append(e.m.Stops[:0:0], e.m.Stops...)
	stops[index].Position = clamp01(position)
	e.m = ColorMap{ID: e.m.ID, Stops: stops}
	Logger().Debug("stop moved", "id", id, "position", stops[index].Position)
	return nil
}

// SetStopColor replaces a stop's color spec.
func (e *Editor) SetStopColor(id string, spec ColorSpec) error {
	_, index, ok := e.m.StopByID(id)
	if !ok {
		return ErrStopNotFound
	}
	stops := append(e.m.Stops[:0:0], e.m.Stops...)
	stops[index].Spec = spec
	e.m = ColorMap{ID: e.m.ID, Stops: stops}
	Logger().Debug("stop recolored", "id", id)
	return nil
}

// RemoveStop deletes a stop. It fails with ErrMinimumStops when the map is
// already at the MinStops floor. When the removed stop was selected, the
// selection moves to the nearest remaining stop by position (the lower one
// on a tie).
func (e *Editor) RemoveStop(id string) error {
	removed, index, ok := e.m.StopByID(id)
	if !ok {
		return ErrStopNotFound
	}
	if len(e.m.Stops) <= MinStops {
		Logger().Warn("stop removal rejected", "id", id, "stops", len(e.m.Stops))
		return ErrMinimumStops
	}

	stops := make([]ColorStop, 0, len(e.m.Stops)-1)
	stops = append(stops, e.m.Stops[:index]...)
	stops = append(stops, e.m.Stops[index+1:]...)
	e.m = ColorMap{ID: e.m.ID, Stops: stops}

	if e.selected == id {
		e.selected = nearestStop(stops, removed.Position).ID
	}
	Logger().Debug("stop removed", "id", id)
	return nil
}

// nearestStop returns the stop closest to position; on a distance tie the
// lower-position stop wins. stops must be non-empty.
func nearestStop(stops []ColorStop, position float64) ColorStop {
	best := stops[0]
	bestDist := math.Abs(best.Position - position)
	for _, s := range stops[1:] {
		d := math.Abs(s.Position - position)
		if d < bestDist || (d == bestDist && s.Position < best.Position) {
			best = s
			bestDist = d
		}
	}
	return best
}

// clampZoom restricts a zoom level to [MinZoom, MaxZoom].
func clampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}
