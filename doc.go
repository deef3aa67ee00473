// Package gradedit is the headless core of a multi-stop gradient editor.
//
// # Overview
//
// gradedit models gradients as identified color maps ([ColorMap]) holding
// ordered color stops ([ColorStop]), maps normalized gradient positions to
// view coordinates under zoom and pan ([LayoutGeometry]), and projects
// stops into the visible window as paint-ready breakpoints ([Project]).
// [Editor] ties the three together into an editing session with selection
// and mutation operations.
//
// # Quick Start
//
//	import "github.com/gogradient/gradedit"
//
//	m := gradedit.NewColorMap([]gradedit.ColorStop{
//	    gradedit.NewColorStop(0, gradedit.Single(gradedit.Red)),
//	    gradedit.NewColorStop(1, gradedit.Single(gradedit.Blue)),
//	})
//
//	ed := gradedit.NewEditor(m, gradedit.WithViewSize(gradedit.Size{Width: 600, Height: 40}))
//	ed.SetZoom(2)
//	ed.SetPan(0.5)
//
//	// Paint-ready breakpoints for the visible window:
//	points := ed.VisibleBreakpoints()
//	_ = points
//
//	// Or rasterize a swatch directly:
//	img := gradedit.RenderStrip(ed.ColorMap(), ed.Geometry())
//	_ = gradedit.SavePNG("swatch.png", img)
//
// # Design
//
// All model types are immutable values: mutation builds a new value and
// replaces the old one, so snapshots never change behind the caller's
// back. ColorMap and ColorStop compare by id, not content, which is what
// keeps a dragged stop selected while its position changes. Stops keep
// insertion order; rendering consumers call [ColorMap.SortedStops].
//
// Geometry and projection are pure functions, re-evaluated on each render
// tick. Serialization round-trips color maps through JSON exactly; see
// [EncodeColorMap] and [DecodeColorMap].
//
// The package is silent by default; see [SetLogger].
package gradedit
