package draw

import (
	"math"

	"github.com/gogpu/dlist/geom"
)

// Viewport maps page space onto screen pixels: a uniform scale fitting the
// page into the screen, centered, with y growing downward on the screen.
// In screen units the page already is the screen and only the screen
// origin offset applies.
type Viewport struct {
	page   geom.Rect
	scale  float64
	offset geom.Point
	screen bool
}

// NewViewport derives the mapping for a setup.
func NewViewport(s Setup) Viewport {
	v := Viewport{page: s.Page, scale: 1}
	if s.Units == UnitsScreen || s.Screen.IsEmpty() || s.Screen.Width() <= 0 || s.Screen.Height() <= 0 ||
		s.Page.Width() <= 0 || s.Page.Height() <= 0 {
		v.screen = true
		if !s.Screen.IsEmpty() {
			v.offset = geom.Point{X: s.Screen.Xmin, Y: s.Screen.Ymin}
		}
		return v
	}
	v.scale = math.Min(s.Screen.Width()/s.Page.Width(), s.Screen.Height()/s.Page.Height())
	v.offset = geom.Point{
		X: s.Screen.Xmin + (s.Screen.Width()-s.Page.Width()*v.scale)/2,
		Y: s.Screen.Ymin + (s.Screen.Height()-s.Page.Height()*v.scale)/2,
	}
	return v
}

// Scale returns screen pixels per page unit.
func (v Viewport) Scale() float64 {
	return v.scale
}

// ToScreen maps a page point to screen pixels.
func (v Viewport) ToScreen(p geom.Point) geom.Point {
	if v.screen {
		return p.Add(v.offset)
	}
	return geom.Point{
		X: v.offset.X + (p.X-v.page.Xmin)*v.scale,
		Y: v.offset.Y + (v.page.Ymax-p.Y)*v.scale,
	}
}

// ToPage maps a screen position back to page space.
func (v Viewport) ToPage(p geom.Point) geom.Point {
	if v.screen {
		return p.Sub(v.offset)
	}
	return geom.Point{
		X: v.page.Xmin + (p.X-v.offset.X)/v.scale,
		Y: v.page.Ymax - (p.Y-v.offset.Y)/v.scale,
	}
}
