package geom

import "math"

// SegmentDistance returns the perpendicular distance from p to the segment
// a-b, or the distance to the nearest endpoint when the perpendicular foot
// falls outside the segment.
func SegmentDistance(p, a, b Point) float64 {
	d := b.Sub(a)
	l2 := d.Dot(d)
	if l2 == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(d) / l2
	switch {
	case t <= 0:
		return p.Distance(a)
	case t >= 1:
		return p.Distance(b)
	}
	return p.Distance(a.Add(d.Mul(t)))
}

// PolylineDistance returns the distance from p to the nearest segment of the
// polyline. Hole points break the polyline. The result is +Inf for a
// polyline with no drawable segment.
func PolylineDistance(p Point, pts []Point) float64 {
	best := math.Inf(1)
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		if a.IsHole() || b.IsHole() {
			continue
		}
		if d := SegmentDistance(p, a, b); d < best {
			best = d
		}
	}
	if best == math.Inf(1) && len(pts) == 1 && !pts[0].IsHole() {
		best = p.Distance(pts[0])
	}
	return best
}

// RingDistance is PolylineDistance for a closed ring: the closing segment
// from the last point back to the first is included.
func RingDistance(p Point, ring []Point) float64 {
	d := PolylineDistance(p, ring)
	if n := len(ring); n > 2 && !ring[0].IsHole() && !ring[n-1].IsHole() {
		d = math.Min(d, SegmentDistance(p, ring[n-1], ring[0]))
	}
	return d
}

// InsidePolygon reports whether p lies strictly inside the polygon ring
// using the even-odd crossing rule.
func InsidePolygon(p Point, ring []Point) bool {
	inside := false
	n := len(ring)
	if n < 3 {
		return false
	}
	j := n - 1
	for i := 0; i < n; i++ {
		a, b := ring[i], ring[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// SplitComponents splits a hole-delimited coordinate run into its parts.
// Empty parts are dropped.
func SplitComponents(pts []Point) [][]Point {
	var parts [][]Point
	start := 0
	for i, p := range pts {
		if p.IsHole() {
			if i > start {
				parts = append(parts, pts[start:i])
			}
			start = i + 1
		}
	}
	if start < len(pts) {
		parts = append(parts, pts[start:])
	}
	return parts
}

// InsideComponents applies the even-odd rule over all components of a
// polygon with holes.
func InsideComponents(p Point, comps [][]Point) bool {
	inside := false
	for _, c := range comps {
		if InsidePolygon(p, c) {
			inside = !inside
		}
	}
	return inside
}
