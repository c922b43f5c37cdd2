package dlist

import (
	"math"

	"github.com/gogpu/dlist/geom"
)

// finiteCount returns the number of points that are not hole markers.
func finiteCount(pts []geom.Point) int {
	n := 0
	for _, p := range pts {
		if !p.IsHole() {
			n++
		}
	}
	return n
}

// homeContext returns the zoom-extents transform of frame num, or the page
// identity. Primitives of fixed page size use it for their frame-space
// bounding boxes.
func (dl *DisplayList) homeContext(num int) geom.FrameContext {
	if f, err := dl.frame(num); err == nil {
		return f.homeContext()
	}
	return geom.PageContext()
}

// textOutline returns the page-space box of a text primitive.
func textOutline(t *Text, ctx geom.FrameContext) []geom.Point {
	ref := ctx.ToPage(t.Ref).Add(t.Offset)
	return geom.AnchoredBox(ref, t.Extent.Width, t.Extent.Ascent, t.Extent.Descent, t.Style.Anchor, t.Style.Angle)
}

// symbolOutline returns the page-space square a symbol occupies.
func symbolOutline(s *Symbol, ctx geom.FrameContext) []geom.Point {
	return geom.BoxOutline(ctx.ToPage(s.Pos), s.Style.Size, s.Style.Size, s.Style.Angle)
}

// shapePage returns the page-space center and size of a shape. Sizes scale
// independently in x and y.
func shapePage(s *Shape, ctx geom.FrameContext) (c geom.Point, w, h, radius float64) {
	sx, sy := ctx.Scale()
	return ctx.ToPage(s.Center), s.Width * math.Abs(sx), s.Height * math.Abs(sy), ctx.ToPageDist(s.Radius)
}

// shapeOutline returns the page-space boundary of a shape.
func shapeOutline(s *Shape, ctx geom.FrameContext) []geom.Point {
	c, w, h, _ := shapePage(s, ctx)
	if s.Type == ShapeArc {
		return geom.ArcOutline(c, w, h, s.Start, s.Length, s.Angle, s.Closure)
	}
	return geom.BoxOutline(c, w, h, s.Angle)
}
