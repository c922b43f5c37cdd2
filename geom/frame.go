package geom

import "math"

// FrameContext carries everything needed to move coordinates between one
// frame's model space and page space: the frame number, the frame-space
// rectangle currently shown and the page-space rectangle it is drawn into.
//
// The zero-extent context (Num < 0) is the identity: page-space primitives
// pass through unchanged.
type FrameContext struct {
	Num  int
	F, P Rect
}

// PageContext returns the identity context used for page-space primitives.
func PageContext() FrameContext {
	return FrameContext{Num: -1}
}

// IsPage reports whether the context is the page-space identity.
func (fc FrameContext) IsPage() bool {
	return fc.Num < 0 || fc.F.Width() == 0 || fc.F.Height() == 0
}

// Scale returns the x and y page units per frame unit.
func (fc FrameContext) Scale() (sx, sy float64) {
	if fc.IsPage() {
		return 1, 1
	}
	return fc.P.Width() / fc.F.Width(), fc.P.Height() / fc.F.Height()
}

// ToPage converts a frame-space point to page space. Hole markers pass
// through unchanged.
func (fc FrameContext) ToPage(p Point) Point {
	if fc.IsPage() || p.IsHole() {
		return p
	}
	sx, sy := fc.Scale()
	return Point{
		X: (p.X-fc.F.Xmin)*sx + fc.P.Xmin,
		Y: (p.Y-fc.F.Ymin)*sy + fc.P.Ymin,
	}
}

// ToFrame converts a page-space point to frame space. Hole markers pass
// through unchanged.
func (fc FrameContext) ToFrame(p Point) Point {
	if fc.IsPage() || p.IsHole() {
		return p
	}
	sx, sy := fc.Scale()
	if sx == 0 || sy == 0 {
		return p
	}
	return Point{
		X: (p.X-fc.P.Xmin)/sx + fc.F.Xmin,
		Y: (p.Y-fc.P.Ymin)/sy + fc.F.Ymin,
	}
}

// ToPageArray converts pts in place and returns it.
func (fc FrameContext) ToPageArray(pts []Point) []Point {
	if fc.IsPage() {
		return pts
	}
	for i, p := range pts {
		pts[i] = fc.ToPage(p)
	}
	return pts
}

// ToFrameArray converts pts in place and returns it.
func (fc FrameContext) ToFrameArray(pts []Point) []Point {
	if fc.IsPage() {
		return pts
	}
	for i, p := range pts {
		pts[i] = fc.ToFrame(p)
	}
	return pts
}

// PageCopy returns a page-space copy of pts, leaving pts untouched.
func (fc FrameContext) PageCopy(pts []Point) []Point {
	out := make([]Point, len(pts))
	copy(out, pts)
	return fc.ToPageArray(out)
}

// ToPageDist converts a frame-space distance to page units using the mean
// of the x and y scale magnitudes.
func (fc FrameContext) ToPageDist(d float64) float64 {
	if IsHole(d) {
		return d
	}
	sx, sy := fc.Scale()
	return d * (math.Abs(sx) + math.Abs(sy)) / 2
}

// ToFrameDist converts a page-space distance to frame units using the mean
// of the x and y scale magnitudes.
func (fc FrameContext) ToFrameDist(d float64) float64 {
	if IsHole(d) {
		return d
	}
	sx, sy := fc.Scale()
	s := (math.Abs(sx) + math.Abs(sy)) / 2
	if s == 0 {
		return d
	}
	return d / s
}

// ToPageRect converts a frame-space rectangle to page space.
func (fc FrameContext) ToPageRect(r Rect) Rect {
	a := fc.ToPage(Point{X: r.Xmin, Y: r.Ymin})
	b := fc.ToPage(Point{X: r.Xmax, Y: r.Ymax})
	return R(a.X, a.Y, b.X, b.Y)
}

// ToFrameRect converts a page-space rectangle to frame space.
func (fc FrameContext) ToFrameRect(r Rect) Rect {
	a := fc.ToFrame(Point{X: r.Xmin, Y: r.Ymin})
	b := fc.ToFrame(Point{X: r.Xmax, Y: r.Ymax})
	return R(a.X, a.Y, b.X, b.Y)
}
