package dlist

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/dlist/draw"
	"github.com/gogpu/dlist/geom"
)

const (
	maxLayoutPasses = 10
	// layoutTolerance is the convergence tolerance as a fraction of the
	// page extent.
	layoutTolerance = 1.0 / 2000
)

// Letter-size page used when nothing else determines the page.
const (
	defaultPageWidth  = 8.5
	defaultPageHeight = 11
)

// calcFrameLayout positions every frame on the page and derives the page
// rectangle. It runs at most maxLayoutPasses passes; a layout that has not
// converged by then is used as is.
func (dl *DisplayList) calcFrameLayout() {
	dl.layoutNeeded = false
	dl.laidOut = true
	if len(dl.frames) == 0 {
		dl.page = dl.defaultPage()
		return
	}
	dl.fitWindowAspect()

	screenUnits := dl.opts.units == draw.UnitsScreen
	prev := geom.EmptyRect()
	for pass := range maxLayoutPasses {
		for _, f := range dl.frames {
			f.margins = dl.frameMargins(f)
		}
		dl.placeFrames()
		if screenUnits {
			dl.page = dl.screenPage()
			Logger().Debug("dlist: layout in screen units", slog.Any("page", dl.page))
			return
		}
		cand := dl.layoutExtent()
		tol := math.Max(cand.Width(), cand.Height()) * layoutTolerance
		Logger().Debug("dlist: layout pass", slog.Int("pass", pass), slog.Any("page", cand))
		dl.page = cand
		if !prev.IsEmpty() && cand.Near(prev, tol) {
			return
		}
		prev = cand
		if err := dl.initDrawing(); err != nil {
			Logger().Warn("dlist: layout could not initialize drawing", slog.Any("error", err))
			return
		}
	}
}

// placeFrames puts unattached frames at their home placement, then places
// attached frames once their target is placed. Frames whose target never
// gets placed fall back to their home placement.
func (dl *DisplayList) placeFrames() {
	for _, f := range dl.frames {
		f.placed = false
		if f.spec.Attach == AttachNone || f.spec.AttachTo == "" {
			f.page = f.home
			f.placed = true
		}
	}
	for progress := true; progress; {
		progress = false
		for _, f := range dl.frames {
			if f.placed {
				continue
			}
			t, ok := dl.frameByName(f.spec.AttachTo)
			if !ok || !t.placed {
				continue
			}
			dl.placeAttached(f, t)
			f.placed = true
			progress = true
		}
	}
	for _, f := range dl.frames {
		if !f.placed {
			Logger().Warn("dlist: attached frame cannot be placed",
				slog.String("frame", f.spec.Name), slog.String("target", f.spec.AttachTo))
			f.page = f.home
			f.placed = true
		}
	}
}

// alignStart returns where a span of length size starts when aligned with
// the minimum, middle or maximum of lo..hi.
func alignStart(align int, lo, hi, size float64) float64 {
	switch align {
	case 1:
		return (lo+hi)/2 - size/2
	case 2:
		return hi - size
	}
	return lo
}

func (dl *DisplayList) placeAttached(f, t *Frame) {
	w, h := f.home.Width(), f.home.Height()
	gap := f.spec.Gap + dl.opts.minSep
	tp, tm, fm := t.page, t.margins, f.margins
	a := f.spec.Attach

	switch side := a.side(); side {
	case SideLeft, SideRight:
		if f.spec.ScaleHeightToAttach {
			h = tp.Height()
		}
		x := tp.Xmax + tm.right + gap + fm.left
		if side == SideLeft {
			x = tp.Xmin - tm.left - gap - fm.right - w
		}
		y := alignStart(a.align(), tp.Ymin, tp.Ymax, h) + f.spec.Move
		f.page = geom.Rect{Xmin: x, Ymin: y, Xmax: x + w, Ymax: y + h}
	default:
		if f.spec.ScaleWidthToAttach {
			w = tp.Width()
		}
		y := tp.Ymax + tm.top + gap + fm.bottom
		if side == SideBottom {
			y = tp.Ymin - tm.bottom - gap - fm.top - h
		}
		x := alignStart(a.align(), tp.Xmin, tp.Xmax, w) + f.spec.Move
		f.page = geom.Rect{Xmin: x, Ymin: y, Xmax: x + w, Ymax: y + h}
	}
}

// fitWindowAspect reshapes the home placement of AspectFitWindow frames
// to the screen aspect ratio. Attached frames take the matching side
// length from their target instead.
func (dl *DisplayList) fitWindowAspect() {
	s := dl.opts.screen
	if s.IsEmpty() || s.Width() <= 0 || s.Height() <= 0 {
		return
	}
	ratio := s.Height() / s.Width()
	for _, f := range dl.frames {
		if f.spec.Aspect != AspectFitWindow {
			continue
		}
		t, ok := dl.frameByName(f.spec.AttachTo)
		if f.spec.Attach == AttachNone || !ok {
			f.home.Ymax = f.home.Ymin + f.home.Width()*ratio
			continue
		}
		switch f.spec.Attach.side() {
		case SideLeft, SideRight:
			f.home.Ymax = f.home.Ymin + t.home.Height()
		default:
			f.home.Xmax = f.home.Xmin + t.home.Width()
		}
	}
}

// layoutExtent returns the union of all frames with their margins.
func (dl *DisplayList) layoutExtent() geom.Rect {
	r := geom.EmptyRect()
	for _, f := range dl.frames {
		r = r.Union(f.margins.grow(f.page))
	}
	return r
}

func (dl *DisplayList) screenPage() geom.Rect {
	s := dl.opts.screen
	if s.IsEmpty() || s.Width() <= 0 || s.Height() <= 0 {
		return dl.layoutExtent()
	}
	return geom.Rect{Xmax: s.Width(), Ymax: s.Height()}
}

// defaultPage is the page used when there are no frames: the drawing
// bounds hint, else the extent of the page-space primitives, else a
// letter-size sheet.
func (dl *DisplayList) defaultPage() geom.Rect {
	if hasArea(dl.opts.hint) {
		return dl.opts.hint
	}
	r := geom.EmptyRect()
	for k := range numKinds {
		s := dl.stores[k]
		for id := range s.slots() {
			if h := s.header(id); !h.Deleted && h.Frame < 0 {
				r = r.Union(h.Bounds)
			}
		}
	}
	if hasArea(r) {
		return r
	}
	if dl.opts.units == draw.UnitsScreen {
		return dl.screenPage()
	}
	u := dl.unitsPerInch()
	return geom.Rect{Xmax: defaultPageWidth * u, Ymax: defaultPageHeight * u}
}

func (dl *DisplayList) setup() draw.Setup {
	return draw.Setup{
		Clip:   dl.page,
		Page:   dl.page,
		Screen: dl.opts.screen,
		DPI:    dl.opts.dpi,
		Units:  dl.opts.units,
	}
}

// initDrawing hands the current page to the draw service.
func (dl *DisplayList) initDrawing() error {
	if !hasArea(dl.page) {
		return fmt.Errorf("%w: empty page %+v", ErrInvalidArgument, dl.page)
	}
	if err := dl.svc.InitDrawing(dl.setup()); err != nil {
		return fmt.Errorf("dlist: init drawing: %w", err)
	}
	dl.initialized = true
	return nil
}

// viewport returns the page to screen mapping of the current page.
func (dl *DisplayList) viewport() draw.Viewport {
	return draw.NewViewport(dl.setup())
}

// ensureLayout runs the layout solver if anything moved since the last
// run.
func (dl *DisplayList) ensureLayout() {
	if dl.layoutNeeded || !dl.laidOut {
		dl.calcFrameLayout()
	}
}
