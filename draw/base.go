package draw

import (
	"fmt"

	"github.com/gogpu/dlist/geom"
)

// DefaultDPI is used when a Setup carries no resolution.
const DefaultDPI = 96

// Base holds the state shared by all Service implementations. It
// implements every Service method except the Clip* drawing calls.
type Base struct {
	setup    Setup
	view     Viewport
	clip     geom.Rect
	imageID  int
	alpha    uint8
	selected bool
	priority Priority
}

// InitDrawing validates and stores the setup and derives the page to
// screen mapping.
func (b *Base) InitDrawing(s Setup) error {
	if s.DPI <= 0 {
		s.DPI = DefaultDPI
	}
	if s.Page.IsEmpty() || s.Page.Width() <= 0 || s.Page.Height() <= 0 {
		return fmt.Errorf("draw: empty page rectangle %+v", s.Page)
	}
	if !(s.Clip.Width() > 0 && s.Clip.Height() > 0) {
		s.Clip = s.Page
	}
	b.setup = s
	b.view = NewViewport(s)
	b.clip = s.Clip
	b.alpha = 255
	b.priority = PriorityDefault
	b.selected = false
	b.imageID = 0
	return nil
}

// Setup returns the configuration passed to the last InitDrawing.
func (b *Base) Setup() Setup {
	return b.setup
}

// Viewport returns the page to screen mapping.
func (b *Base) Viewport() Viewport {
	return b.view
}

// ClipLimits returns the page-space clip rectangle given to InitDrawing.
func (b *Base) ClipLimits() geom.Rect {
	return b.setup.Clip
}

// SetClip narrows drawing to r intersected with the InitDrawing clip. An
// empty r restores the full clip.
func (b *Base) SetClip(r geom.Rect) {
	if r.IsEmpty() {
		b.clip = b.setup.Clip
		return
	}
	c := b.setup.Clip
	b.clip = geom.Rect{
		Xmin: max(c.Xmin, r.Xmin),
		Ymin: max(c.Ymin, r.Ymin),
		Xmax: min(c.Xmax, r.Xmax),
		Ymax: min(c.Ymax, r.Ymax),
	}
}

// Clip returns the current page-space clip.
func (b *Base) Clip() geom.Rect {
	return b.clip
}

// PageUnitsPerInch returns how many page units make one inch.
func (b *Base) PageUnitsPerInch() float64 {
	return UnitsPerInch(b.setup.Units, b.setup.DPI)
}

// UnitsPerInch returns the page units per inch for a units type. Screen
// units count device pixels, so the answer is the resolution.
func UnitsPerInch(u Units, dpi float64) float64 {
	switch u {
	case UnitsCentimeters:
		return 2.54
	case UnitsScreen:
		if dpi > 0 {
			return dpi
		}
		return DefaultDPI
	}
	return 1
}

// ScaleF converts a page distance to screen pixels.
func (b *Base) ScaleF(page float64) float64 {
	return page * b.view.Scale()
}

// BackscaleF converts a screen distance in pixels to page units.
func (b *Base) BackscaleF(screen float64) float64 {
	if s := b.view.Scale(); s != 0 {
		return screen / s
	}
	return screen
}

// ToScreen maps a page point to screen pixels.
func (b *Base) ToScreen(p geom.Point) geom.Point {
	return b.view.ToScreen(p)
}

// ToPage maps a screen pixel position back to page space.
func (b *Base) ToPage(p geom.Point) geom.Point {
	return b.view.ToPage(p)
}

// ScreenClip returns the current clip rectangle in screen pixels.
func (b *Base) ScreenClip() geom.Rect {
	c := b.clip
	p1 := b.ToScreen(geom.Point{X: c.Xmin, Y: c.Ymin})
	p2 := b.ToScreen(geom.Point{X: c.Xmax, Y: c.Ymax})
	return geom.R(p1.X, p1.Y, p2.X, p2.Y)
}

func (b *Base) SetImageID(id int)         { b.imageID = id }
func (b *Base) SetAlpha(alpha uint8)      { b.alpha = alpha }
func (b *Base) SetSelected(selected bool) { b.selected = selected }
func (b *Base) SetPriority(p Priority)    { b.priority = p }

func (b *Base) ImageID() int       { return b.imageID }
func (b *Base) Alpha() uint8       { return b.alpha }
func (b *Base) Selected() bool     { return b.selected }
func (b *Base) Priority() Priority { return b.priority }
