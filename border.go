package dlist

import (
	"github.com/gogpu/dlist/draw"
	"github.com/gogpu/dlist/geom"
)

// reborder regenerates the page-space outline, ticks and labels of frame
// f from its current placement and view. The generated primitives are
// owned by the frame, carry Border set to the frame number and never take
// slots from the primitive stores.
func (dl *DisplayList) reborder(f *Frame) {
	f.borderLines = f.borderLines[:0]
	f.borderTexts = f.borderTexts[:0]
	f.reborderNeeded = false
	if !f.spec.Border {
		return
	}

	p := f.page
	outline := []geom.Point{
		geom.Pt(p.Xmin, p.Ymin), geom.Pt(p.Xmax, p.Ymin),
		geom.Pt(p.Xmax, p.Ymax), geom.Pt(p.Xmin, p.Ymax),
		geom.Pt(p.Xmin, p.Ymin),
	}
	dl.addBorderLine(f, outline, f.axes[SideBottom])

	for side := range numSides {
		spec := f.axes[side]
		a, b, first, last, n := sideAxis(f, side)
		g := dl.layoutAxis(spec, a, b, first, last, n)
		for _, l := range g.lines[1:] {
			dl.addBorderLine(f, l, spec)
		}
		for _, lbl := range g.labels {
			dl.addBorderText(f, lbl, spec)
		}
	}
}

func borderHeader(f *Frame, bounds geom.Rect) Header {
	return Header{
		Frame:      f.num,
		Selectable: -1,
		Border:     f.num,
		Surface:    -1,
		Bounds:     bounds,
		Alpha:      255,
	}
}

func (dl *DisplayList) addBorderLine(f *Frame, pts []geom.Point, spec AxisSpec) {
	f.borderLines = append(f.borderLines, Line{
		Header: borderHeader(f, geom.Bounds(pts)),
		Points: pts,
		Style:  dl.axisLineStyle(spec),
	})
}

func (dl *DisplayList) addBorderText(f *Frame, lbl axisLabel, spec AxisSpec) {
	t := Text{
		Ref:    lbl.ref,
		Text:   lbl.text,
		Extent: lbl.extent,
		Style:  dl.axisTextStyle(spec, lbl),
	}
	t.Header = borderHeader(f, geom.Bounds(textOutline(&t, geom.PageContext())))
	f.borderTexts = append(f.borderTexts, t)
}

func (dl *DisplayList) axisLineStyle(spec AxisSpec) draw.LineStyle {
	return draw.LineStyle{Color: spec.LineColor, Thickness: dl.inches(spec.LineThickness), DashScale: 1}
}

func (dl *DisplayList) axisTextStyle(spec AxisSpec, lbl axisLabel) draw.TextStyle {
	return draw.TextStyle{
		Color:  spec.TextColor,
		Font:   spec.Font,
		Size:   dl.inches(spec.TextSize),
		Angle:  lbl.angle,
		Anchor: lbl.anchor,
	}
}
