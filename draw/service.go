package draw

import (
	"image/color"

	"github.com/gogpu/dlist/geom"
	"github.com/gogpu/dlist/text"
)

// Units selects the page coordinate system.
type Units int

const (
	// UnitsInches measures the page in inches.
	UnitsInches Units = iota
	// UnitsCentimeters measures the page in centimeters.
	UnitsCentimeters
	// UnitsScreen measures the page in device pixels. No page to screen
	// scaling is applied and the frame layout solver does not iterate on
	// page size.
	UnitsScreen
)

// String returns the units name.
func (u Units) String() string {
	switch u {
	case UnitsInches:
		return "inches"
	case UnitsCentimeters:
		return "centimeters"
	case UnitsScreen:
		return "screen"
	}
	return "unknown"
}

// Priority is the z-order band a primitive is drawn in.
type Priority int

const (
	PriorityDefault    Priority = 0
	PriorityNormal     Priority = 1
	PriorityBackground Priority = 2
	PriorityGlyph      Priority = 3
)

// Setup is the drawing configuration passed to InitDrawing.
type Setup struct {
	// Clip is the page-space rectangle drawing is limited to.
	Clip geom.Rect
	// Page is the full page rectangle.
	Page geom.Rect
	// Screen is the device rectangle in pixels.
	Screen geom.Rect
	// DPI is the device resolution in pixels per inch.
	DPI   float64
	Units Units
}

// LineStyle describes a polyline stroke. Dash lengths are in page units
// before DashScale is applied.
type LineStyle struct {
	Color     color.RGBA
	Thickness float64
	Dash      []float64
	DashScale float64
	// Arrow selects an arrow head style at the last point, 0 for none.
	Arrow int
}

// FillStyle describes a polygon fill with an optional pattern and border.
type FillStyle struct {
	Color           color.RGBA
	PatternColor    color.RGBA
	Pattern         int
	PatternScale    float64
	BorderColor     color.RGBA
	BorderThickness float64
	// Outline draws the border; a fill with a zero-alpha Color draws only
	// the border.
	Outline bool
}

// TextStyle describes one text string.
type TextStyle struct {
	Color     color.RGBA
	Font      text.Font
	Size      float64
	Angle     float64
	Anchor    geom.Anchor
	Thickness float64
}

// SymbolStyle describes a marker symbol.
type SymbolStyle struct {
	Color     color.RGBA
	Symbol    int
	Size      float64
	Angle     float64
	Thickness float64
}

// Symbol numbers understood by the bundled services.
const (
	SymbolCircle = iota
	SymbolSquare
	SymbolTriangle
	SymbolCross
	SymbolPlus
	SymbolDiamond
	SymbolFilledCircle
	SymbolFilledSquare
)

// ShapeStyle describes a rectangle or arc.
type ShapeStyle struct {
	FillColor       color.RGBA
	PatternColor    color.RGBA
	Pattern         int
	BorderColor     color.RGBA
	BorderThickness float64
	Dash            []float64
	Fill            bool
	Border          bool
}

// Image is a raster placed on the page. Pixels holds Cols*Rows RGBA
// quadruples, row by row starting with the top row.
type Image struct {
	Rect   geom.Rect
	Cols   int
	Rows   int
	Pixels []uint8
	// Smooth requests interpolated scaling.
	Smooth bool
}

// Service is the draw-primitive service. Every geometry argument is in page
// space; a Service converts to device space itself. Calls never fail: a
// primitive that cannot be drawn is skipped.
type Service interface {
	InitDrawing(s Setup) error
	ClipLimits() geom.Rect
	PageUnitsPerInch() float64
	ScaleF(page float64) float64
	BackscaleF(screen float64) float64

	// SetClip narrows drawing to a page rectangle, normally one frame's
	// page placement. An empty rectangle restores the full clip.
	SetClip(r geom.Rect)
	SetImageID(id int)
	SetAlpha(alpha uint8)
	SetSelected(selected bool)
	SetPriority(p Priority)

	ClipLine(pts []geom.Point, st LineStyle)
	ClipFill(components [][]geom.Point, st FillStyle)
	ClipText(ref geom.Point, s string, st TextStyle)
	ClipTextRect(corners []geom.Point, st FillStyle)
	ClipSymbol(p geom.Point, st SymbolStyle)
	ClipRect(c geom.Point, w, h, radius, angle float64, st ShapeStyle)
	ClipArc(c geom.Point, rx, ry, start, length, rotation float64, closure geom.ArcClosure, st ShapeStyle)
	ClipImage(img Image)
}
