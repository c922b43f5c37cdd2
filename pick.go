package dlist

import (
	"math"
	"slices"

	"github.com/gogpu/dlist/geom"
)

// pickWindowCells is the half size, in index cells, of the window searched
// around a pick point.
const pickWindowCells = 1.5

// pickInsideFactor divides the distance to a text or symbol box when the
// pick point lies inside it.
const pickInsideFactor = 10

// borderOrder is the order kinds are tested by outline distance. On equal
// distances the kind tested first wins.
var borderOrder = [...]Kind{
	KindLine,
	KindFill,
	KindText,
	KindSymbol,
	KindShape,
	KindContourLine,
	KindContour,
	KindAxis,
}

type pickHit struct {
	kind  Kind
	id    int
	dist  float64
	found bool
}

func (h *pickHit) consider(k Kind, id int, d float64) {
	if !h.found || d < h.dist {
		*h = pickHit{kind: k, id: id, dist: d, found: true}
	}
}

// ClosestPickPrim returns the primitive of frame fnum nearest the
// page-space point (x, y). Outlines within a hundredth of the frame's page
// diagonal win; failing that, the first closed shape and then the first
// fill whose interior holds the point. Only selectable primitives of
// selectable layers take part.
func (dl *DisplayList) ClosestPickPrim(fnum int, x, y float64) (Kind, int, bool) {
	f, err := dl.frame(fnum)
	if err != nil {
		return 0, -1, false
	}
	dl.ensureLayout()
	ctx := f.Context()
	p := geom.Pt(x, y)
	tol := f.page.Diagonal() / 100
	win := dl.pickWindow(f, ctx, ctx.ToFrame(p), tol)

	var best pickHit
	for _, k := range borderOrder {
		dl.eachPickable(f, k, win, func(id int) {
			if d := dl.outlineDistance(k, id, p, ctx); d <= tol {
				best.consider(k, id, d)
			}
		})
	}
	if best.found {
		return best.kind, best.id, true
	}

	for _, k := range [...]Kind{KindShape, KindFill} {
		hit := -1
		dl.eachPickable(f, k, win, func(id int) {
			if hit < 0 && dl.interiorHit(k, id, p, ctx) {
				hit = id
			}
		})
		if hit >= 0 {
			return k, hit, true
		}
	}
	return 0, -1, false
}

// pickWindow returns the frame-space window searched around fp. Each half
// axis covers at least the page tolerance tol.
func (dl *DisplayList) pickWindow(f *Frame, ctx geom.FrameContext, fp geom.Point, tol float64) geom.Rect {
	if f.index == nil {
		return f.view
	}
	l := f.index.Layout()
	dx, dy := pickWindowCells*l.Xspace, pickWindowCells*l.Yspace
	if sx, sy := ctx.Scale(); sx != 0 && sy != 0 {
		dx = math.Max(dx, tol/math.Abs(sx))
		dy = math.Max(dy, tol/math.Abs(sy))
	}
	return geom.Rect{Xmin: fp.X - dx, Ymin: fp.Y - dy, Xmax: fp.X + dx, Ymax: fp.Y + dy}
}

// eachPickable calls fn, in slot order, for every pickable primitive of
// kind k in frame f that may lie within win.
func (dl *DisplayList) eachPickable(f *Frame, k Kind, win geom.Rect, fn func(int)) {
	s := dl.stores[k]
	visit := func(id int) {
		h := s.header(id)
		if h == nil || !h.drawable() || h.Frame != f.num || h.Selectable < 0 {
			return
		}
		if !dl.layerSelectable(h.Layer) {
			return
		}
		fn(id)
	}
	if ids, ok := dl.populatePatches(f, k, win, patchPick); ok {
		slices.Sort(ids)
		for _, id := range ids {
			visit(id)
		}
		return
	}
	for id := range s.slots() {
		visit(id)
	}
}

// outlineDistance returns the page-space distance from p to the outline
// of a primitive.
func (dl *DisplayList) outlineDistance(k Kind, id int, p geom.Point, ctx geom.FrameContext) float64 {
	switch k {
	case KindLine:
		return geom.PolylineDistance(p, ctx.PageCopy(dl.lines.at(id).Points))
	case KindFill:
		d := math.Inf(1)
		for _, c := range geom.SplitComponents(ctx.PageCopy(dl.fills.at(id).Points)) {
			d = math.Min(d, geom.RingDistance(p, c))
		}
		return d
	case KindText:
		return boxDistance(p, textOutline(dl.texts.at(id), ctx))
	case KindSymbol:
		return boxDistance(p, symbolOutline(dl.symbols.at(id), ctx))
	case KindShape:
		s := dl.shapes.at(id)
		if s.closed() {
			return geom.RingDistance(p, shapeOutline(s, ctx))
		}
		return geom.PolylineDistance(p, shapeOutline(s, ctx))
	case KindContourLine:
		return geom.PolylineDistance(p, ctx.PageCopy(dl.contourLines.at(id).Points))
	case KindContour:
		return geom.PolylineDistance(p, ctx.PageCopy(dl.contours.at(id).Points))
	case KindAxis:
		a := dl.axes.at(id)
		return geom.SegmentDistance(p, ctx.ToPage(a.From), ctx.ToPage(a.To))
	}
	return math.Inf(1)
}

func boxDistance(p geom.Point, box []geom.Point) float64 {
	d := geom.RingDistance(p, box)
	if geom.InsidePolygon(p, box) {
		d /= pickInsideFactor
	}
	return d
}

func (dl *DisplayList) interiorHit(k Kind, id int, p geom.Point, ctx geom.FrameContext) bool {
	switch k {
	case KindShape:
		s := dl.shapes.at(id)
		return s.closed() && geom.InsidePolygon(p, shapeOutline(s, ctx))
	case KindFill:
		return geom.InsideComponents(p, geom.SplitComponents(ctx.PageCopy(dl.fills.at(id).Points)))
	}
	return false
}

// PickFrameObject picks at screen position (ix, iy) in frame fnum, toggles
// the selection of the selectable object owning the nearest primitive and
// returns its number, or -1 when nothing was hit.
func (dl *DisplayList) PickFrameObject(fnum int, ix, iy float64) int {
	num := dl.GetFrameObject(fnum, ix, iy)
	if num < 0 {
		return -1
	}
	if err := dl.SetSelectableState(num, !dl.isSelected(num)); err != nil {
		return -1
	}
	return num
}

// GetFrameObject returns the selectable object owning the primitive
// nearest screen position (ix, iy) in frame fnum, or -1. A negative fnum
// searches every frame whose page placement holds the point, topmost
// first.
func (dl *DisplayList) GetFrameObject(fnum int, ix, iy float64) int {
	dl.ensureLayout()
	p := dl.viewport().ToPage(geom.Pt(ix, iy))
	if fnum >= 0 {
		return dl.pickObject(fnum, p)
	}
	for i := len(dl.frames) - 1; i >= 0; i-- {
		f := dl.frames[i]
		if !f.page.Contains(p) {
			continue
		}
		if num := dl.pickObject(f.num, p); num >= 0 {
			return num
		}
	}
	return -1
}

func (dl *DisplayList) pickObject(fnum int, p geom.Point) int {
	k, id, ok := dl.ClosestPickPrim(fnum, p.X, p.Y)
	if !ok {
		return -1
	}
	return dl.header(k, id).Selectable
}
