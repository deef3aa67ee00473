package gradedit

import (
	"image"
	"image/png"
	"math"
	"os"
	"sort"

	xdraw "golang.org/x/image/draw"
)

// RenderStrip paints the visible window of m into an image sized to the
// geometry's view. The gradient runs along the strip's long axis and fills
// the cross axis uniformly, which is exactly what an editor swatch needs.
//
// The pixel at fraction f of the strip takes the projected breakpoint
// color at f, so the output matches what any gradient-paint backend would
// produce from the same breakpoint list.
func RenderStrip(m ColorMap, geom LayoutGeometry) *image.NRGBA {
	w := imageExtent(geom.ViewSize.Width)
	h := imageExtent(geom.ViewSize.Height)

	start, end := geom.VisibleRange()
	points := Project(m, start, end)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if geom.Orientation() == Horizontal {
		for x := 0; x < w; x++ {
			c := breakpointColor(points, (float64(x)+0.5)/float64(w)).NRGBA()
			for y := 0; y < h; y++ {
				img.SetNRGBA(x, y, c)
			}
		}
	} else {
		for y := 0; y < h; y++ {
			c := breakpointColor(points, (float64(y)+0.5)/float64(h)).NRGBA()
			for x := 0; x < w; x++ {
				img.SetNRGBA(x, y, c)
			}
		}
	}
	return img
}

// RenderPreview renders the whole gradient (zoom 1, no pan) at the given
// pixel size.
func RenderPreview(m ColorMap, width, height int) *image.NRGBA {
	geom := LayoutGeometry{
		ViewSize:  Size{Width: float64(width), Height: float64(height)},
		ZoomLevel: MinZoom,
	}
	return RenderStrip(m, geom)
}

// breakpointColor evaluates a projected breakpoint list at fraction f of
// the window. Coincident breakpoints (a dual stop's hard edge) resolve to
// the earlier color at exactly f and the later color just past it.
func breakpointColor(points []Breakpoint, f float64) Color {
	if len(points) == 0 {
		return Transparent
	}
	idx := sort.Search(len(points), func(i int) bool {
		return points[i].Location >= f
	})
	if idx == 0 {
		return points[0].Color
	}
	if idx == len(points) {
		return points[len(points)-1].Color
	}
	prev := points[idx-1]
	next := points[idx]
	if next.Location == prev.Location {
		return prev.Color
	}
	t := (f - prev.Location) / (next.Location - prev.Location)
	return prev.Color.Lerp(next.Color, t)
}

// imageExtent converts a view dimension to a pixel count of at least 1.
func imageExtent(v float64) int {
	n := int(math.Round(v))
	if n < 1 {
		return 1
	}
	return n
}

// Thumbnail rescales an image to the given size with Catmull-Rom
// resampling, for compact swatch lists.
func Thumbnail(src image.Image, width, height int) *image.NRGBA {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}

// SavePNG writes an image to a PNG file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, img)
}
