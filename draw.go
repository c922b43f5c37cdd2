package dlist

import (
	"context"
	"log/slog"
	"math"
	"slices"

	"github.com/gogpu/dlist/draw"
	"github.com/gogpu/dlist/geom"
)

// drawOrder is the back to front order of primitive kinds within a frame.
// Frame borders are drawn after all of them.
var drawOrder = [...]Kind{
	KindImage,
	KindFill,
	KindShape,
	KindLine,
	KindContourLine,
	KindContour,
	KindSymbol,
	KindText,
	KindAxis,
}

// Draw renders the whole scene: it regenerates dirty surfaces, lays out
// the frames, refreshes frames whose view or placement changed, draws
// every frame and the page-space primitives through the draw service, and
// republishes the selected objects to the sink.
func (dl *DisplayList) Draw() error {
	dl.recalcSurfaces()
	relaid := dl.layoutNeeded || !dl.laidOut
	dl.ensureLayout()
	if err := dl.initDrawing(); err != nil {
		return err
	}
	for _, f := range dl.frames {
		if f.rescaleNeeded {
			dl.updatePatchDraw(f)
			dl.sink.SetZoomPan(f.spec.Name, f.view)
			f.rescaleNeeded = false
		}
		if f.reborderNeeded || relaid {
			dl.reborder(f)
		}
	}
	for _, f := range dl.frames {
		dl.drawFrame(f, false)
	}
	dl.drawFrame(nil, false)
	dl.returnSelected()
	dl.logDraw()
	return nil
}

// DrawSelected redraws only the primitives of selected objects on top of
// the last full drawing. Without a prior Draw, or after the layout was
// invalidated, it runs a full Draw.
func (dl *DisplayList) DrawSelected() error {
	if !dl.initialized || dl.layoutNeeded {
		return dl.Draw()
	}
	for _, f := range dl.frames {
		dl.drawFrame(f, true)
	}
	dl.drawFrame(nil, true)
	return nil
}

// drawFrame draws the primitives of frame f, or the page-space primitives
// when f is nil.
func (dl *DisplayList) drawFrame(f *Frame, selectedOnly bool) {
	num, name, ctx, clip := -1, "", geom.PageContext(), dl.page
	if f != nil {
		num, name, ctx, clip = f.num, f.spec.Name, f.Context(), f.page
	}
	dl.sink.SetFrame(name, num, clip)
	if f != nil {
		dl.sink.ClipFrameBorder(f.page)
	}
	dl.svc.SetClip(clip)

	for _, k := range drawOrder {
		dl.eachCandidate(f, k, func(id int, h *Header) {
			if h.Frame != num {
				return
			}
			if selectedOnly && !dl.isSelected(h.Selectable) {
				return
			}
			dl.emit(k, id, ctx)
		})
	}
	dl.svc.SetClip(geom.EmptyRect())

	if f == nil || selectedOnly {
		return
	}
	page := geom.PageContext()
	for i := range f.borderLines {
		l := &f.borderLines[i]
		dl.emitState(&l.Header)
		dl.svc.ClipLine(page.PageCopy(l.Points), l.Style)
	}
	for i := range f.borderTexts {
		t := &f.borderTexts[i]
		dl.emitState(&t.Header)
		dl.emitText(t, page)
	}
}

// eachCandidate calls fn, in slot order, for every drawable primitive of
// kind k that may be visible in frame f: the patches of its view when the
// frame draws by patches, every primitive otherwise.
func (dl *DisplayList) eachCandidate(f *Frame, k Kind, fn func(int, *Header)) {
	s := dl.stores[k]
	if f != nil && f.patchDraw {
		if ids, ok := dl.populatePatches(f, k, f.view, patchDraw); ok {
			slices.Sort(ids)
			for _, id := range ids {
				if h := s.header(id); h != nil && h.drawable() {
					fn(id, h)
				}
			}
			return
		}
	}
	for id := range s.slots() {
		if h := s.header(id); h.drawable() {
			fn(id, h)
		}
	}
}

func (dl *DisplayList) setPriority(p draw.Priority) {
	dl.sink.SetPriority(p)
	dl.svc.SetPriority(p)
}

// emit hands one primitive to the draw service in page space. The sink
// sees the alpha and priority before the service draws.
func (dl *DisplayList) emit(k Kind, id int, ctx geom.FrameContext) {
	dl.emitState(dl.header(k, id))

	switch k {
	case KindLine:
		p := dl.lines.at(id)
		dl.svc.ClipLine(ctx.PageCopy(p.Points), p.Style)
	case KindFill:
		p := dl.fills.at(id)
		dl.svc.ClipFill(geom.SplitComponents(ctx.PageCopy(p.Points)), p.Style)
	case KindText:
		dl.emitText(dl.texts.at(id), ctx)
	case KindSymbol:
		p := dl.symbols.at(id)
		dl.svc.ClipSymbol(ctx.ToPage(p.Pos), p.Style)
	case KindShape:
		p := dl.shapes.at(id)
		c, w, hh, r := shapePage(p, ctx)
		if p.Type == ShapeArc {
			dl.svc.ClipArc(c, w, hh, p.Start, p.Length, p.Angle, p.Closure, p.Style)
		} else {
			dl.svc.ClipRect(c, w, hh, r, p.Angle, p.Style)
		}
	case KindImage:
		p := dl.images.at(id)
		dl.svc.SetImageID(p.ImageID)
		dl.svc.ClipImage(pageImage(p, ctx))
		dl.svc.SetImageID(0)
	case KindAxis:
		dl.emitAxis(dl.axes.at(id), ctx)
	case KindContourLine:
		p := dl.contourLines.at(id)
		dl.svc.ClipLine(ctx.PageCopy(p.Points), p.Style)
	case KindContour:
		p := dl.contours.at(id)
		pts := ctx.PageCopy(p.Points)
		dl.svc.ClipLine(pts, p.Style)
		if p.Label != "" {
			ref, angle := labelPoint(pts)
			st := p.LabelStyle
			st.Angle = angle
			dl.svc.ClipText(ref, p.Label, st)
		}
	}
}

// emitState sets the alpha, priority and selected flag of h on the sink
// and the draw service.
func (dl *DisplayList) emitState(h *Header) {
	dl.sink.SetAlpha(h.Alpha)
	dl.svc.SetAlpha(h.Alpha)
	dl.setPriority(draw.PriorityDefault)
	dl.svc.SetSelected(dl.isSelected(h.Selectable))
}

func (dl *DisplayList) emitText(t *Text, ctx geom.FrameContext) {
	if t.Background {
		dl.setPriority(draw.PriorityBackground)
		dl.svc.ClipTextRect(textOutline(t, ctx), t.BackgroundStyle)
	}
	dl.setPriority(draw.PriorityGlyph)
	dl.svc.ClipText(ctx.ToPage(t.Ref).Add(t.Offset), t.Text, t.Style)
	dl.setPriority(draw.PriorityDefault)
}

func (dl *DisplayList) emitAxis(a *Axis, ctx geom.FrameContext) {
	from, to := ctx.ToPage(a.From), ctx.ToPage(a.To)
	g := dl.layoutAxis(a.Spec, from, to, a.First, a.Last, axisNormal(from, to))
	ls := dl.axisLineStyle(a.Spec)
	for _, l := range g.lines {
		dl.svc.ClipLine(l, ls)
	}
	for _, lbl := range g.labels {
		dl.svc.ClipText(lbl.ref, lbl.text, dl.axisTextStyle(a.Spec, lbl))
	}
}

func pageImage(p *Image, ctx geom.FrameContext) draw.Image {
	return draw.Image{
		Rect:   ctx.ToPageRect(p.Rect),
		Cols:   p.Cols,
		Rows:   p.Rows,
		Pixels: p.Pixels,
		Smooth: p.Smooth,
	}
}

// labelPoint returns the middle point of a polyline and the angle of the
// segment there, kept upright.
func labelPoint(pts []geom.Point) (geom.Point, float64) {
	var finite []geom.Point
	for _, p := range pts {
		if !p.IsHole() {
			finite = append(finite, p)
		}
	}
	if len(finite) == 0 {
		return geom.Point{}, 0
	}
	i := len(finite) / 2
	if i == 0 || len(finite) == 1 {
		return finite[0], 0
	}
	a, b := finite[i-1], finite[i]
	angle := math.Atan2(b.Y-a.Y, b.X-a.X) * 180 / math.Pi
	switch {
	case angle > 90:
		angle -= 180
	case angle < -90:
		angle += 180
	}
	return a.Add(b).Mul(0.5), angle
}

// logDraw reports the primitive counts of a finished drawing.
func (dl *DisplayList) logDraw() {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	attrs := make([]any, 0, numKinds)
	for k := range numKinds {
		attrs = append(attrs, slog.Int(k.String(), dl.stores[k].live()))
	}
	l.Debug("dlist: drawn", attrs...)
}
