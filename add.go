package dlist

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/dlist/geom"
	"github.com/gogpu/dlist/surface"
)

// contourLabelSize is the size of contour labels, in inches.
const contourLabelSize = 0.08

// newHeader tags a new primitive with the current frame, layer, item and
// selectable object.
func (dl *DisplayList) newHeader() Header {
	sel := dl.selectable
	if !dl.state.Selectable {
		sel = -1
	}
	return Header{
		Frame:      dl.current,
		Layer:      dl.layer,
		Item:       dl.item,
		Selectable: sel,
		Border:     -1,
		Surface:    dl.building,
		Alpha:      dl.state.Alpha,
		Scaleable:  dl.current >= 0,
	}
}

// registerPrim records a new primitive with its selectable object and its
// frame's spatial index.
func (dl *DisplayList) registerPrim(k Kind, id int) {
	h := dl.header(k, id)
	if h.Selectable >= 0 {
		s := dl.ensureSelectable(h.Selectable)
		s.owned = append(s.owned, primRef{kind: k, id: id})
	}
	if !h.Scaleable {
		return
	}
	f, err := dl.frame(h.Frame)
	if err != nil || f.index == nil || f.indexDirty {
		return
	}
	dl.indexPrim(f.index, k, id)
}

// AddLine adds a polyline through the points (x[i], y[i]). Coordinates
// beyond geom.HoleThreshold break the line. The slices are truncated to
// the shorter one.
func (dl *DisplayList) AddLine(x, y []float64) (int, error) {
	pts := geom.Points(x, y)
	if finiteCount(pts) < 2 {
		return -1, fmt.Errorf("%w: line needs two points", ErrInvalidArgument)
	}
	h := dl.newHeader()
	h.Bounds = geom.Bounds(pts)
	id, err := dl.lines.add(Line{Header: h, Points: pts, Style: dl.lineStyle()})
	if err != nil {
		return -1, err
	}
	dl.registerPrim(KindLine, id)
	return id, nil
}

// AddFill adds a polygon. Hole markers separate its components, which are
// filled with the even-odd rule.
func (dl *DisplayList) AddFill(x, y []float64) (int, error) {
	pts := geom.Points(x, y)
	ok := false
	for _, c := range geom.SplitComponents(pts) {
		if len(c) >= 3 {
			ok = true
			break
		}
	}
	if !ok {
		return -1, fmt.Errorf("%w: fill needs a component with three points", ErrInvalidArgument)
	}
	h := dl.newHeader()
	h.Bounds = geom.Bounds(pts)
	id, err := dl.fills.add(Fill{Header: h, Points: pts, Style: dl.fillStyle()})
	if err != nil {
		return -1, err
	}
	dl.registerPrim(KindFill, id)
	return id, nil
}

// AddText adds a string at (x, y). size is the text height in inches and
// angle the rotation in degrees.
func (dl *DisplayList) AddText(x, y float64, s string, size, angle float64) (int, error) {
	if s == "" || !(size > 0) {
		return -1, fmt.Errorf("%w: text %q at size %g", ErrInvalidArgument, s, size)
	}
	st := dl.textStyle(size, angle)
	t := Text{
		Header:     dl.newHeader(),
		Ref:        geom.Pt(x, y),
		Text:       s,
		Offset:     geom.Pt(dl.inches(dl.state.TextOffsetX), dl.inches(dl.state.TextOffsetY)),
		Style:      st,
		Extent:     dl.metrics.Measure(s, st.Font, st.Size),
		Background: dl.state.TextBackground,
	}
	if t.Background {
		t.BackgroundStyle = dl.fillStyle()
		t.BackgroundStyle.Color = dl.state.TextFillColor
	}
	ctx := dl.homeContext(t.Frame)
	t.Bounds = geom.Bounds(ctx.ToFrameArray(textOutline(&t, ctx)))
	id, err := dl.texts.add(t)
	if err != nil {
		return -1, err
	}
	dl.registerPrim(KindText, id)
	return id, nil
}

// AddNumber adds value as text with the given number of decimals,
// optionally grouping thousands with commas.
func (dl *DisplayList) AddNumber(x, y, size, angle, value float64, decimals int, commas bool) (int, error) {
	return dl.AddText(x, y, formatNumber(value, decimals, commas), size, angle)
}

func formatNumber(v float64, decimals int, commas bool) string {
	s := strconv.FormatFloat(v, 'f', max(0, decimals), 64)
	if !commas || math.IsInf(v, 0) || math.IsNaN(v) {
		return s
	}
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	b.WriteString(sign)
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// AddSymb adds a marker symbol centered at (x, y). size is in inches.
func (dl *DisplayList) AddSymb(x, y, size, angle float64, symbol int) (int, error) {
	if !(size > 0) {
		return -1, fmt.Errorf("%w: symbol size %g", ErrInvalidArgument, size)
	}
	s := Symbol{Header: dl.newHeader(), Pos: geom.Pt(x, y), Style: dl.symbolStyle(symbol, size, angle)}
	ctx := dl.homeContext(s.Frame)
	s.Bounds = geom.Bounds(ctx.ToFrameArray(symbolOutline(&s, ctx)))
	id, err := dl.symbols.add(s)
	if err != nil {
		return -1, err
	}
	dl.registerPrim(KindSymbol, id)
	return id, nil
}

// AddShape adds a box or arc.
func (dl *DisplayList) AddShape(spec ShapeSpec) (int, error) {
	if !(spec.Width > 0) || !(spec.Height > 0) || (spec.Type == ShapeArc && spec.Length == 0) {
		return -1, fmt.Errorf("%w: shape %+v", ErrInvalidArgument, spec)
	}
	s := Shape{Header: dl.newHeader(), ShapeSpec: spec, Style: dl.shapeStyle()}
	s.Bounds = geom.Bounds(s.outline())
	id, err := dl.shapes.add(s)
	if err != nil {
		return -1, err
	}
	dl.registerPrim(KindShape, id)
	return id, nil
}

// AddColorImage adds an RGBA raster covering (x1,y1)-(x2,y2) in the
// current frame. rgba holds cols*rows pixels, top row first.
func (dl *DisplayList) AddColorImage(x1, y1, x2, y2 float64, cols, rows int, rgba []uint8) (int, error) {
	return dl.addImage(dl.current, 0, geom.R(x1, y1, x2, y2), cols, rows, rgba)
}

// AddDataImage adds a scalar raster colored through the current image
// color bands. Without bands a blue to red ramp over the data range is
// used. data holds cols*rows values, top row first.
func (dl *DisplayList) AddDataImage(x1, y1, x2, y2 float64, cols, rows int, data []float64) (int, error) {
	return dl.AddGridImage(dl.current, 0, x1, y1, x2, y2, cols, rows, data)
}

// AddGridImage adds a scalar raster to frame num with an explicit image
// id.
func (dl *DisplayList) AddGridImage(num, imageID int, x1, y1, x2, y2 float64, cols, rows int, data []float64) (int, error) {
	if cols <= 0 || rows <= 0 || len(data) < cols*rows {
		return -1, fmt.Errorf("%w: %dx%d data image with %d values", ErrInvalidArgument, cols, rows, len(data))
	}
	bands := dl.bands
	if len(bands) == 0 {
		lo, hi := dataRange(data[:cols*rows])
		bands = surface.DefaultRamp(lo, hi)
	}
	return dl.addImage(num, imageID, geom.R(x1, y1, x2, y2), cols, rows, bands.Colorize(data, cols, rows))
}

// AddGridColorImage adds an RGBA raster to frame num with an explicit
// image id.
func (dl *DisplayList) AddGridColorImage(num, imageID int, x1, y1, x2, y2 float64, cols, rows int, rgba []uint8) (int, error) {
	return dl.addImage(num, imageID, geom.R(x1, y1, x2, y2), cols, rows, rgba)
}

func dataRange(z []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range z {
		if math.IsNaN(v) || geom.IsHole(v) {
			continue
		}
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}
	return lo, hi
}

func (dl *DisplayList) addImage(num, imageID int, r geom.Rect, cols, rows int, rgba []uint8) (int, error) {
	if cols <= 0 || rows <= 0 || len(rgba) < cols*rows*4 || !hasArea(r) {
		return -1, fmt.Errorf("%w: %dx%d image with %d bytes over %+v", ErrInvalidArgument, cols, rows, len(rgba), r)
	}
	if num >= 0 {
		if _, err := dl.frame(num); err != nil {
			return -1, err
		}
	}
	h := dl.newHeader()
	h.Frame = num
	h.Scaleable = num >= 0
	h.Bounds = r
	img := Image{
		Header:  h,
		Rect:    r,
		Cols:    cols,
		Rows:    rows,
		Pixels:  append([]uint8(nil), rgba[:cols*rows*4]...),
		ImageID: imageID,
		Smooth:  dl.state.Smoothing,
	}
	id, err := dl.images.add(img)
	if err != nil {
		return -1, err
	}
	dl.registerPrim(KindImage, id)
	return id, nil
}

// AddContour adds one contour polyline at level. Major contours carry a
// label drawn at their midpoint.
func (dl *DisplayList) AddContour(x, y []float64, level float64, major bool, label string) (int, error) {
	pts := geom.Points(x, y)
	if finiteCount(pts) < 2 {
		return -1, fmt.Errorf("%w: contour needs two points", ErrInvalidArgument)
	}
	h := dl.newHeader()
	h.Bounds = geom.Bounds(pts)
	st := dl.lineStyle()
	if major {
		st.Thickness *= 2
	}
	ls := dl.textStyle(contourLabelSize, 0)
	ls.Anchor = geom.AnchorCenter
	id, err := dl.contours.add(Contour{
		Header:     h,
		Points:     pts,
		Level:      level,
		Major:      major,
		Label:      label,
		Style:      st,
		LabelStyle: ls,
	})
	if err != nil {
		return -1, err
	}
	dl.registerPrim(KindContour, id)
	return id, nil
}

// AddContourLine adds a surface edge or, with fault set, a fault line.
func (dl *DisplayList) AddContourLine(x, y []float64, fault bool) (int, error) {
	pts := geom.Points(x, y)
	if finiteCount(pts) < 2 {
		return -1, fmt.Errorf("%w: contour line needs two points", ErrInvalidArgument)
	}
	h := dl.newHeader()
	h.Bounds = geom.Bounds(pts)
	id, err := dl.contourLines.add(ContourLine{Header: h, Points: pts, Style: dl.lineStyle(), Fault: fault})
	if err != nil {
		return -1, err
	}
	dl.registerPrim(KindContourLine, id)
	return id, nil
}

// AddAxis adds a free-standing axis from (x1,y1) to (x2,y2) whose values
// run from first to last. Ticks and labels are generated when drawn, on
// the right-hand side of the axis direction.
func (dl *DisplayList) AddAxis(spec AxisSpec, x1, y1, x2, y2, first, last float64) (int, error) {
	a, b := geom.Pt(x1, y1), geom.Pt(x2, y2)
	if a == b || a.IsHole() || b.IsHole() {
		return -1, fmt.Errorf("%w: degenerate axis", ErrInvalidArgument)
	}
	h := dl.newHeader()
	h.Bounds = geom.Bounds([]geom.Point{a, b})
	id, err := dl.axes.add(Axis{Header: h, Spec: spec, From: a, To: b, First: first, Last: last})
	if err != nil {
		return -1, err
	}
	dl.registerPrim(KindAxis, id)
	return id, nil
}

// DeletePrim deletes one primitive and frees its slot.
func (dl *DisplayList) DeletePrim(k Kind, id int) error {
	h := dl.header(k, id)
	if h == nil || h.Deleted {
		return fmt.Errorf("%w: %v %d", ErrNoPrimitive, k, id)
	}
	dl.deletePrim(k, id)
	dl.flushIndexes()
	return nil
}

// deletePrim releases a primitive and detaches it from its selectable
// object and the hidden list. The owning frame's index is marked for
// rebuild; callers run flushIndexes before returning.
func (dl *DisplayList) deletePrim(k Kind, id int) {
	h := dl.header(k, id)
	if h == nil || h.Deleted {
		return
	}
	ref := primRef{kind: k, id: id}
	if s, ok := dl.selectables[h.Selectable]; ok {
		s.drop(ref)
	}
	if h.Hidden {
		dl.hidden = deleteRef(dl.hidden, ref)
	}
	if h.Scaleable {
		if f, err := dl.frame(h.Frame); err == nil && f.index != nil {
			f.indexDirty = true
		}
	}
	dl.stores[k].remove(id)
}
