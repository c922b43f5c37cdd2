package dlist

import "github.com/gogpu/dlist/geom"

// ToPage converts a point from the current frame to page space. In page
// space the point is returned unchanged.
func (dl *DisplayList) ToPage(x, y float64) (px, py float64) {
	p := dl.context(dl.current).ToPage(geom.Pt(x, y))
	return p.X, p.Y
}

// ToFrame converts a page-space point into the current frame.
func (dl *DisplayList) ToFrame(px, py float64) (x, y float64) {
	p := dl.context(dl.current).ToFrame(geom.Pt(px, py))
	return p.X, p.Y
}

// FrameToPage converts a point from frame num to page space without
// touching the current frame.
func (dl *DisplayList) FrameToPage(num int, x, y float64) (px, py float64, err error) {
	f, err := dl.frame(num)
	if err != nil {
		return 0, 0, err
	}
	p := f.Context().ToPage(geom.Pt(x, y))
	return p.X, p.Y, nil
}

// PageToFrame converts a page-space point into frame num without touching
// the current frame.
func (dl *DisplayList) PageToFrame(num int, px, py float64) (x, y float64, err error) {
	f, err := dl.frame(num)
	if err != nil {
		return 0, 0, err
	}
	p := f.Context().ToFrame(geom.Pt(px, py))
	return p.X, p.Y, nil
}
