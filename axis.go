package dlist

import (
	"image/color"
	"math"
	"strconv"

	"github.com/gogpu/dlist/geom"
	"github.com/gogpu/dlist/text"
)

// AxisSpec controls a frame border side or a free-standing axis. Lengths
// and sizes are in inches.
type AxisSpec struct {
	Ticks   bool
	Labels  bool
	Caption string
	// Interval is the value spacing of major ticks. Zero picks roughly
	// five ticks over the axis range.
	Interval float64
	// Decimals fixes the label precision; negative picks it from Interval.
	Decimals int

	TickLength    float64
	Gap           float64
	TextSize      float64
	Font          text.Font
	LineColor     color.RGBA
	TextColor     color.RGBA
	LineThickness float64
}

// DefaultAxisSpec returns ticks and labels in black 0.1 inch text.
func DefaultAxisSpec() AxisSpec {
	return AxisSpec{
		Ticks:         true,
		Labels:        true,
		Decimals:      -1,
		TickLength:    0.08,
		Gap:           0.04,
		TextSize:      0.1,
		Font:          text.FontRegular,
		LineColor:     color.RGBA{A: 255},
		TextColor:     color.RGBA{A: 255},
		LineThickness: 0.01,
	}
}

// defaultFrameAxes labels the left and bottom sides and ticks all four.
func defaultFrameAxes() [numSides]AxisSpec {
	var a [numSides]AxisSpec
	for s := range a {
		a[s] = DefaultAxisSpec()
	}
	a[SideRight].Labels = false
	a[SideTop].Labels = false
	return a
}

// axisLabel is one positioned string of an axis, in page space.
type axisLabel struct {
	ref    geom.Point
	text   string
	anchor geom.Anchor
	angle  float64
	extent text.Extent
}

// axisGeometry is the page-space rendition of an axis.
type axisGeometry struct {
	lines  [][]geom.Point
	labels []axisLabel
	// depth is how far the ticks, labels and caption reach along the
	// outward normal.
	depth float64
}

// niceStep returns a 1, 2 or 5 times a power of ten step giving roughly
// five intervals over span.
func niceStep(span float64) float64 {
	span = math.Abs(span)
	if span == 0 || math.IsInf(span, 0) || math.IsNaN(span) {
		return 1
	}
	raw := span / 5
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch n := raw / mag; {
	case n < 1.5:
		return mag
	case n < 3.5:
		return 2 * mag
	case n < 7.5:
		return 5 * mag
	}
	return 10 * mag
}

func stepDecimals(step float64) int {
	if step <= 0 {
		return 0
	}
	return max(0, int(math.Ceil(-math.Log10(step)-1e-9)))
}

// tickValues returns the multiples of step between first and last.
func tickValues(first, last, step float64) []float64 {
	lo, hi := math.Min(first, last), math.Max(first, last)
	if step <= 0 || hi-lo <= 0 || (hi-lo)/step > 1000 {
		return nil
	}
	eps := step * 1e-9
	var vals []float64
	for v := math.Ceil((lo-eps)/step) * step; v <= hi+eps; v += step {
		if math.Abs(v) < eps {
			v = 0
		}
		vals = append(vals, v)
	}
	return vals
}

// normalAnchor picks the label anchor that keeps text on the outward side
// of a tick pointing along n.
func normalAnchor(n geom.Point) geom.Anchor {
	if math.Abs(n.Y) >= math.Abs(n.X) {
		if n.Y < 0 {
			return geom.AnchorTopCenter
		}
		return geom.AnchorBottomCenter
	}
	if n.X < 0 {
		return geom.AnchorCenterRight
	}
	return geom.AnchorCenterLeft
}

// layoutAxis builds the ticks, labels and caption of an axis running from
// a to b in page space, with values first at a and last at b. Ticks and
// text go out along the unit normal n.
func (dl *DisplayList) layoutAxis(spec AxisSpec, a, b geom.Point, first, last float64, n geom.Point) axisGeometry {
	var g axisGeometry
	g.lines = append(g.lines, []geom.Point{a, b})
	if first == last {
		return g
	}

	step := spec.Interval
	if step <= 0 {
		step = niceStep(last - first)
	}
	dec := spec.Decimals
	if dec < 0 {
		dec = stepDecimals(step)
	}
	tick := 0.0
	if spec.Ticks {
		tick = dl.inches(spec.TickLength)
	}
	gap := dl.inches(spec.Gap)
	size := dl.inches(spec.TextSize)
	anchor := normalAnchor(n)
	labelDepth := 0.0

	for _, v := range tickValues(first, last, step) {
		p := a.Add(b.Sub(a).Mul((v - first) / (last - first)))
		if spec.Ticks {
			g.lines = append(g.lines, []geom.Point{p, p.Add(n.Mul(tick))})
		}
		if !spec.Labels || size <= 0 {
			continue
		}
		s := strconv.FormatFloat(v, 'f', dec, 64)
		ext := dl.metrics.Measure(s, spec.Font, size)
		g.labels = append(g.labels, axisLabel{
			ref:    p.Add(n.Mul(tick + gap)),
			text:   s,
			anchor: anchor,
			extent: ext,
		})
		if math.Abs(n.Y) >= math.Abs(n.X) {
			labelDepth = math.Max(labelDepth, ext.Height())
		} else {
			labelDepth = math.Max(labelDepth, ext.Width)
		}
	}

	g.depth = tick
	if labelDepth > 0 {
		g.depth += gap + labelDepth
	}
	if spec.Caption != "" && size > 0 {
		ext := dl.metrics.Measure(spec.Caption, spec.Font, size)
		mid := a.Add(b).Mul(0.5)
		lbl := axisLabel{
			ref:    mid.Add(n.Mul(g.depth + gap)),
			text:   spec.Caption,
			anchor: anchor,
			extent: ext,
		}
		if math.Abs(n.X) > math.Abs(n.Y) {
			lbl.angle = 90
			lbl.anchor = geom.AnchorBottomCenter
			if n.X > 0 {
				lbl.anchor = geom.AnchorTopCenter
			}
		}
		g.labels = append(g.labels, lbl)
		g.depth += gap + ext.Height()
	}
	if g.depth > 0 {
		g.depth += gap
	}
	return g
}

// axisNormal returns the outward normal of a free-standing axis: the
// right-hand side of its direction.
func axisNormal(a, b geom.Point) geom.Point {
	d := b.Sub(a)
	l := math.Hypot(d.X, d.Y)
	if l == 0 {
		return geom.Point{Y: -1}
	}
	return geom.Point{X: d.Y / l, Y: -d.X / l}
}

// sideAxis returns the page-space endpoints, values and outward normal of
// one side of a frame.
func sideAxis(f *Frame, side Side) (a, b geom.Point, first, last float64, n geom.Point) {
	p, v := f.page, f.view
	switch side {
	case SideLeft:
		return geom.Pt(p.Xmin, p.Ymin), geom.Pt(p.Xmin, p.Ymax), v.Ymin, v.Ymax, geom.Pt(-1, 0)
	case SideRight:
		return geom.Pt(p.Xmax, p.Ymin), geom.Pt(p.Xmax, p.Ymax), v.Ymin, v.Ymax, geom.Pt(1, 0)
	case SideTop:
		return geom.Pt(p.Xmin, p.Ymax), geom.Pt(p.Xmax, p.Ymax), v.Xmin, v.Xmax, geom.Pt(0, 1)
	}
	return geom.Pt(p.Xmin, p.Ymin), geom.Pt(p.Xmax, p.Ymin), v.Xmin, v.Xmax, geom.Pt(0, -1)
}

// frameMargins measures how far each border axis reaches outside the
// frame's page rectangle.
func (dl *DisplayList) frameMargins(f *Frame) margins {
	if !f.spec.Border {
		return margins{}
	}
	var d [numSides]float64
	for s := range numSides {
		a, b, first, last, n := sideAxis(f, s)
		d[s] = dl.layoutAxis(f.axes[s], a, b, first, last, n).depth
	}
	return margins{left: d[SideLeft], right: d[SideRight], bottom: d[SideBottom], top: d[SideTop]}
}
