package dlist

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/dlist/geom"
)

// zoomLimit is the smallest frame extent, as a fraction of the defined
// extent, a rescale may produce.
const zoomLimit = 1.0 / 200000

// aspectTolerance is the relative difference under which two aspect
// ratios are considered equal.
const aspectTolerance = 1e-9

// RescaleFrame shows the frame-space rectangle (fx1,fy1)-(fx2,fy2) in the
// named frame. Frames with AspectLocked are expanded about the center to
// keep their aspect; with resizeBorder the page placement grows instead.
// Frames that scale their width or height to this frame follow it.
func (dl *DisplayList) RescaleFrame(name string, resizeBorder bool, fx1, fy1, fx2, fy2 float64) error {
	f, ok := dl.frameByName(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoFrame, name)
	}
	return dl.rescale(f, resizeBorder, geom.R(fx1, fy1, fx2, fy2))
}

// RescaleFrameScreen zooms frame num to the screen rectangle
// (ix1,iy1)-(ix2,iy2), in pixels.
func (dl *DisplayList) RescaleFrameScreen(num int, resizeBorder bool, ix1, iy1, ix2, iy2 float64) error {
	f, err := dl.frame(num)
	if err != nil {
		return err
	}
	a := dl.screenToFrame(f, ix1, iy1)
	b := dl.screenToFrame(f, ix2, iy2)
	return dl.rescale(f, resizeBorder, geom.R(a.X, a.Y, b.X, b.Y))
}

// ZoomExtents shows the defined extent of frame num.
func (dl *DisplayList) ZoomExtents(num int) error {
	f, err := dl.frame(num)
	if err != nil {
		return err
	}
	return dl.rescale(f, false, f.spec.Limits)
}

// ZoomExtentsForFrameName shows the defined extent of the named frame with
// extra page-space margins around it.
func (dl *DisplayList) ZoomExtentsForFrameName(name string, top, left, bottom, right float64) error {
	f, ok := dl.frameByName(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoFrame, name)
	}
	sx, sy := f.homeContext().Scale()
	l := f.spec.Limits
	r := geom.Rect{
		Xmin: l.Xmin - left/sx,
		Ymin: l.Ymin - bottom/sy,
		Xmax: l.Xmax + right/sx,
		Ymax: l.Ymax + top/sy,
	}
	return dl.rescale(f, false, r)
}

// ZoomOut doubles the visible extent of frame num about its center,
// clamped to the defined extent.
func (dl *DisplayList) ZoomOut(num int) error {
	f, err := dl.frame(num)
	if err != nil {
		return err
	}
	c, v := f.view.Center(), f.view
	r := geom.Rect{
		Xmin: c.X - v.Width(),
		Ymin: c.Y - v.Height(),
		Xmax: c.X + v.Width(),
		Ymax: c.Y + v.Height(),
	}
	l := f.spec.Limits
	r = geom.Rect{
		Xmin: math.Max(r.Xmin, l.Xmin),
		Ymin: math.Max(r.Ymin, l.Ymin),
		Xmax: math.Min(r.Xmax, l.Xmax),
		Ymax: math.Min(r.Ymax, l.Ymax),
	}
	if !hasArea(r) {
		r = l
	}
	return dl.rescale(f, false, r)
}

// PanFrame drags the content of frame num from screen position (ix1,iy1)
// to (ix2,iy2).
func (dl *DisplayList) PanFrame(num int, ix1, iy1, ix2, iy2 float64) error {
	f, err := dl.frame(num)
	if err != nil {
		return err
	}
	a := dl.screenToFrame(f, ix1, iy1)
	b := dl.screenToFrame(f, ix2, iy2)
	d := a.Sub(b)
	return dl.rescale(f, false, f.view.Translate(d.X, d.Y))
}

// GetFrameClipLimits returns the frame-space rectangle frame num shows.
func (dl *DisplayList) GetFrameClipLimits(num int) (geom.Rect, error) {
	f, err := dl.frame(num)
	if err != nil {
		return geom.EmptyRect(), err
	}
	return f.view, nil
}

// GetFrameUnitsPerPixel returns how many frame units in x one screen
// pixel covers in frame num, or 0 for an unknown frame.
func (dl *DisplayList) GetFrameUnitsPerPixel(num int) float64 {
	f, err := dl.frame(num)
	if err != nil || f.page.Width() == 0 {
		return 0
	}
	dl.ensureLayout()
	scale := dl.viewport().Scale()
	if scale == 0 {
		return 0
	}
	return f.view.Width() / f.page.Width() / scale
}

// ConvertToFrame maps a screen position to frame num's coordinates.
func (dl *DisplayList) ConvertToFrame(num int, ix, iy float64) (x, y float64, err error) {
	f, err := dl.frame(num)
	if err != nil {
		return 0, 0, err
	}
	p := dl.screenToFrame(f, ix, iy)
	return p.X, p.Y, nil
}

func (dl *DisplayList) screenToFrame(f *Frame, ix, iy float64) geom.Point {
	dl.ensureLayout()
	p := dl.viewport().ToPage(geom.Pt(ix, iy))
	return f.Context().ToFrame(p)
}

func (dl *DisplayList) rescale(f *Frame, resizeBorder bool, r geom.Rect) error {
	if !f.spec.Rescaleable {
		return fmt.Errorf("%w: %q", ErrNotRescaleable, f.spec.Name)
	}
	if !hasArea(r) {
		return fmt.Errorf("%w: empty rectangle %+v", ErrInvalidArgument, r)
	}
	l := f.spec.Limits
	if r.Width() < l.Width()*zoomLimit || r.Height() < l.Height()*zoomLimit {
		Logger().Warn("dlist: zoom rejected", slog.String("frame", f.spec.Name), slog.Any("rect", r))
		return fmt.Errorf("%w: %q to %+v", ErrZoomLimit, f.spec.Name, r)
	}
	f.view = r
	dl.forceAspect(f, resizeBorder)
	dl.markRescaled(f)
	dl.propagateScale(f, map[int]bool{f.num: true})
	return nil
}

func (dl *DisplayList) markRescaled(f *Frame) {
	f.rescaleNeeded = true
	f.reborderNeeded = true
	dl.layoutNeeded = true
}

// propagateScale copies f's x or y range to frames that scale their width
// or height to it.
func (dl *DisplayList) propagateScale(f *Frame, seen map[int]bool) {
	for _, g := range dl.frames {
		if seen[g.num] || g.spec.AttachTo != f.spec.Name {
			continue
		}
		if !g.spec.ScaleWidthToAttach && !g.spec.ScaleHeightToAttach {
			continue
		}
		if g.spec.ScaleWidthToAttach {
			g.view.Xmin, g.view.Xmax = f.view.Xmin, f.view.Xmax
		}
		if g.spec.ScaleHeightToAttach {
			g.view.Ymin, g.view.Ymax = f.view.Ymin, f.view.Ymax
		}
		seen[g.num] = true
		dl.markRescaled(g)
		dl.propagateScale(g, seen)
	}
}

// forceAspect makes an AspectLocked frame's view and page aspect ratios
// equal by expanding the smaller dimension of the view about its center.
// With resizeBorder the page placement grows instead; it never shrinks.
func (dl *DisplayList) forceAspect(f *Frame, resizeBorder bool) {
	if f.spec.Aspect != AspectLocked {
		return
	}
	v, p := f.view, f.page
	if !hasArea(v) || !hasArea(p) {
		return
	}
	va := v.Height() / v.Width()
	pa := p.Height() / p.Width()
	if math.Abs(va-pa) <= aspectTolerance*pa {
		return
	}

	if resizeBorder {
		var dx, dy float64
		if va > pa {
			dy = p.Width()*va - p.Height()
		} else {
			dx = p.Height()/va - p.Width()
		}
		f.page = f.page.Grow(dx/2, dy/2)
		f.home = f.home.Grow(dx/2, dy/2)
		dl.layoutNeeded = true
		return
	}

	c := v.Center()
	if va < pa {
		h := v.Width() * pa
		f.view.Ymin, f.view.Ymax = c.Y-h/2, c.Y+h/2
	} else {
		w := v.Height() / pa
		f.view.Xmin, f.view.Xmax = c.X-w/2, c.X+w/2
	}
}
