package geom

import "math"

// BoxOutline returns the four corners of a w by h rectangle centered on c
// and rotated by angle degrees about c, counter-clockwise from the lower
// left corner.
func BoxOutline(c Point, w, h, angle float64) []Point {
	hw, hh := w/2, h/2
	corners := []Point{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	for i, p := range corners {
		corners[i] = p.Rotate(angle).Add(c)
	}
	return corners
}

// ArcClosure controls how a partial elliptical arc is closed.
type ArcClosure int

const (
	// ArcOpen leaves a partial arc open.
	ArcOpen ArcClosure = iota
	// ArcChord closes the arc with a straight chord.
	ArcChord
	// ArcPie closes the arc through its center.
	ArcPie
)

// arcStepDegrees is the angular resolution used when approximating arcs
// for bounds and hit testing.
const arcStepDegrees = 5.0

// ArcOutline approximates an elliptical arc with center c, radii rx and ry,
// starting at start degrees and sweeping length degrees, with the ellipse
// rotated by rotation degrees. A full ellipse is returned when length is
// zero or its magnitude reaches 360.
func ArcOutline(c Point, rx, ry, start, length, rotation float64, closure ArcClosure) []Point {
	full := length == 0 || math.Abs(length) >= 360
	if full {
		start, length = 0, 360
	}
	n := int(math.Ceil(math.Abs(length)/arcStepDegrees)) + 1
	if n < 2 {
		n = 2
	}
	pts := make([]Point, 0, n+2)
	for i := 0; i < n; i++ {
		a := (start + length*float64(i)/float64(n-1)) * math.Pi / 180
		p := Point{X: rx * math.Cos(a), Y: ry * math.Sin(a)}
		pts = append(pts, p.Rotate(rotation).Add(c))
	}
	if !full && closure == ArcPie {
		pts = append(pts, c)
	}
	return pts
}

// Anchor selects which point of a text or symbol box sits at the reference
// position. The numbering runs left to right, bottom to top.
type Anchor int

const (
	AnchorBottomLeft Anchor = iota + 1
	AnchorBottomCenter
	AnchorBottomRight
	AnchorCenterLeft
	AnchorCenter
	AnchorCenterRight
	AnchorTopLeft
	AnchorTopCenter
	AnchorTopRight
)

// Offsets returns the horizontal and vertical fractions (0, 0.5 or 1) of a
// box that the anchor point sits at. Out-of-range anchors behave as
// AnchorBottomLeft.
func (a Anchor) Offsets() (fx, fy float64) {
	if a < AnchorBottomLeft || a > AnchorTopRight {
		return 0, 0
	}
	i := int(a - 1)
	return float64(i%3) / 2, float64(i/3) / 2
}

// AnchoredBox returns the rotated outline of a text box w wide with ascent
// above and descent below the baseline, positioned so its anchor point sits
// at ref. Bottom anchors place the baseline on ref; center and top anchors
// use the full ascent plus descent height. The box is rotated by angle
// degrees about ref.
func AnchoredBox(ref Point, w, ascent, descent float64, anchor Anchor, angle float64) []Point {
	fx, fy := anchor.Offsets()
	full := ascent + descent
	x0 := -fx * w
	y0 := -fy * full
	if fy == 0 {
		y0 = -descent
	}
	corners := []Point{
		{x0, y0},
		{x0 + w, y0},
		{x0 + w, y0 + full},
		{x0, y0 + full},
	}
	for i, p := range corners {
		corners[i] = p.Rotate(angle).Add(ref)
	}
	return corners
}
