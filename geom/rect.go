package geom

import "math"

// HoleThreshold is the magnitude beyond which a coordinate is treated as a
// polyline break marker rather than a position.
const HoleThreshold = 1e15

// HoleFlag is the value written into coordinate arrays to break a polyline
// or to separate polygon components.
const HoleFlag = 1e19

// IsHole reports whether v is a break marker.
func IsHole(v float64) bool {
	return v > HoleThreshold || v < -HoleThreshold || math.IsNaN(v)
}

// Rect is an axis-aligned rectangle given by its lower-left and upper-right
// corners. An empty Rect has Xmin > Xmax.
type Rect struct {
	Xmin, Ymin, Xmax, Ymax float64
}

// R builds a normalized rectangle from two arbitrary corners.
func R(x1, y1, x2, y2 float64) Rect {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return Rect{Xmin: x1, Ymin: y1, Xmax: x2, Ymax: y2}
}

// EmptyRect returns a rectangle that any Extend call will replace.
func EmptyRect() Rect {
	return Rect{Xmin: math.MaxFloat64, Ymin: math.MaxFloat64, Xmax: -math.MaxFloat64, Ymax: -math.MaxFloat64}
}

// IsEmpty reports whether the rectangle contains no points.
func (r Rect) IsEmpty() bool {
	return r.Xmin > r.Xmax || r.Ymin > r.Ymax
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Xmax - r.Xmin }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Ymax - r.Ymin }

// Area returns width times height, or zero for an empty rectangle.
func (r Rect) Area() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Width() * r.Height()
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Xmin + r.Xmax) / 2, Y: (r.Ymin + r.Ymax) / 2}
}

// Diagonal returns the length of the rectangle diagonal.
func (r Rect) Diagonal() float64 {
	return math.Hypot(r.Width(), r.Height())
}

// Extend grows the rectangle to include p. Hole points are ignored.
func (r Rect) Extend(p Point) Rect {
	if p.IsHole() {
		return r
	}
	r.Xmin = math.Min(r.Xmin, p.X)
	r.Ymin = math.Min(r.Ymin, p.Y)
	r.Xmax = math.Max(r.Xmax, p.X)
	r.Ymax = math.Max(r.Ymax, p.Y)
	return r
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	if o.IsEmpty() {
		return r
	}
	if r.IsEmpty() {
		return o
	}
	return Rect{
		Xmin: math.Min(r.Xmin, o.Xmin),
		Ymin: math.Min(r.Ymin, o.Ymin),
		Xmax: math.Max(r.Xmax, o.Xmax),
		Ymax: math.Max(r.Ymax, o.Ymax),
	}
}

// Intersects reports whether the two rectangles overlap or touch.
func (r Rect) Intersects(o Rect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return !(o.Xmin > r.Xmax || o.Xmax < r.Xmin || o.Ymin > r.Ymax || o.Ymax < r.Ymin)
}

// Contains reports whether p lies inside or on the boundary of r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Xmin && p.X <= r.Xmax && p.Y >= r.Ymin && p.Y <= r.Ymax
}

// ContainsRect reports whether o lies completely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.Xmin >= r.Xmin && o.Xmax <= r.Xmax && o.Ymin >= r.Ymin && o.Ymax <= r.Ymax
}

// Grow returns r grown outward by dx on the left and right and dy on the
// top and bottom. Negative values shrink the rectangle.
func (r Rect) Grow(dx, dy float64) Rect {
	return Rect{Xmin: r.Xmin - dx, Ymin: r.Ymin - dy, Xmax: r.Xmax + dx, Ymax: r.Ymax + dy}
}

// Translate returns r shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{Xmin: r.Xmin + dx, Ymin: r.Ymin + dy, Xmax: r.Xmax + dx, Ymax: r.Ymax + dy}
}

// Near reports whether every edge of r is within tol of the matching edge
// of o.
func (r Rect) Near(o Rect, tol float64) bool {
	return math.Abs(r.Xmin-o.Xmin) <= tol && math.Abs(r.Ymin-o.Ymin) <= tol &&
		math.Abs(r.Xmax-o.Xmax) <= tol && math.Abs(r.Ymax-o.Ymax) <= tol
}

// Bounds returns the bounding box of pts, skipping hole points.
// The result is empty when no finite point exists.
func Bounds(pts []Point) Rect {
	b := EmptyRect()
	for _, p := range pts {
		b = b.Extend(p)
	}
	return b
}
