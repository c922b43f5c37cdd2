// Package geom holds the small geometry vocabulary shared by the display
// list: points, rectangles, the hole sentinel used to break polylines,
// distance and containment tests, and the frame to page affine transform.
package geom

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Rotate rotates the point about the origin by angle degrees,
// counter-clockwise.
func (p Point) Rotate(angle float64) Point {
	if angle == 0 {
		return p
	}
	s, c := math.Sincos(angle * math.Pi / 180)
	return Point{X: p.X*c - p.Y*s, Y: p.X*s + p.Y*c}
}

// IsHole reports whether either coordinate of p is a break marker.
func (p Point) IsHole() bool {
	return IsHole(p.X) || IsHole(p.Y)
}

// Points builds a point slice from parallel coordinate slices.
// The result is truncated to the shorter of the two inputs.
func Points(x, y []float64) []Point {
	n := min(len(x), len(y))
	pts := make([]Point, n)
	for i := range n {
		pts[i] = Point{X: x[i], Y: y[i]}
	}
	return pts
}
