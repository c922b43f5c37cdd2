package dlist

import (
	"github.com/gogpu/dlist/draw"
	"github.com/gogpu/dlist/geom"
	"github.com/gogpu/dlist/text"
)

// Kind identifies a primitive store.
type Kind int

const (
	KindLine Kind = iota
	KindFill
	KindText
	KindSymbol
	KindShape
	KindImage
	KindAxis
	KindContourLine
	KindContour

	numKinds
)

var kindNames = [...]string{
	KindLine:        "line",
	KindFill:        "fill",
	KindText:        "text",
	KindSymbol:      "symbol",
	KindShape:       "shape",
	KindImage:       "image",
	KindAxis:        "axis",
	KindContourLine: "contour line",
	KindContour:     "contour",
}

// String returns the kind name.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Header is the bookkeeping every primitive carries.
//
// Scaleable primitives hold frame-space coordinates and are transformed at
// draw time; the others hold page-space coordinates. Bounds is the cached
// bounding box in the primitive's own space.
type Header struct {
	Frame      int
	Layer      int
	Item       int
	Selectable int
	// Border is the frame number whose border generated the primitive, or
	// -1 for user content. Border primitives are held by their frame and
	// never occupy store slots.
	Border int
	// Surface is the surface that generated the primitive, or -1.
	Surface int

	Bounds    geom.Rect
	Alpha     uint8
	Scaleable bool
	Hidden    bool
	Deleted   bool
	// InExtra is set once the primitive sits in its frame's overflow cell.
	InExtra bool
}

func (h *Header) header() *Header { return h }

// drawable reports whether the primitive takes part in drawing and picking.
func (h *Header) drawable() bool {
	return !h.Deleted && !h.Hidden
}

// Line is a polyline. Points may contain hole markers that break it.
type Line struct {
	Header
	Points []geom.Point
	Style  draw.LineStyle
}

// Fill is a polygon whose components are separated by hole markers and
// filled with the even-odd rule.
type Fill struct {
	Header
	Points []geom.Point
	Style  draw.FillStyle
}

// Text is a single string. Its size and extent are stored in page units,
// so text keeps its printed size as frames zoom.
type Text struct {
	Header
	Ref  geom.Point
	Text string
	// Offset shifts the text from Ref, in page units.
	Offset geom.Point
	Style  draw.TextStyle
	Extent text.Extent
	// Background draws a filled box behind the text.
	Background      bool
	BackgroundStyle draw.FillStyle
}

// Symbol is a marker drawn at a fixed page size.
type Symbol struct {
	Header
	Pos   geom.Point
	Style draw.SymbolStyle
}

// ShapeType selects the geometry of a Shape.
type ShapeType int

const (
	// ShapeBox is a rectangle, optionally with rounded corners.
	ShapeBox ShapeType = iota
	// ShapeArc is an ellipse arc.
	ShapeArc
)

// ShapeSpec describes the geometry of a shape. For ShapeBox, Width and
// Height are the full box size and Radius the corner radius. For ShapeArc,
// Width and Height are the x and y radii and Start and Length the sweep in
// degrees. Angle rotates either shape about Center, in degrees.
type ShapeSpec struct {
	Type          ShapeType
	Center        geom.Point
	Width, Height float64
	Radius        float64
	Angle         float64
	Start, Length float64
	Closure       geom.ArcClosure
}

// Shape is a box or arc.
type Shape struct {
	Header
	ShapeSpec
	Style draw.ShapeStyle
}

// outline returns the shape boundary in the shape's own space.
func (s *Shape) outline() []geom.Point {
	if s.Type == ShapeArc {
		return geom.ArcOutline(s.Center, s.Width, s.Height, s.Start, s.Length, s.Angle, s.Closure)
	}
	return geom.BoxOutline(s.Center, s.Width, s.Height, s.Angle)
}

// closed reports whether the outline encloses an area.
func (s *Shape) closed() bool {
	return s.Type == ShapeBox || s.Closure != geom.ArcOpen || s.Length >= 360
}

// Image is a raster covering Rect. Pixels holds Cols*Rows RGBA values,
// top row first.
type Image struct {
	Header
	Rect    geom.Rect
	Cols    int
	Rows    int
	Pixels  []uint8
	ImageID int
	Smooth  bool
}

// Axis is a free-standing axis from From to To labelled with values
// running from First to Last.
type Axis struct {
	Header
	Spec        AxisSpec
	From, To    geom.Point
	First, Last float64
}

// ContourLine is a surface edge or fault line.
type ContourLine struct {
	Header
	Points []geom.Point
	Style  draw.LineStyle
	Fault  bool
}

// Contour is one traced contour level with an optional label.
type Contour struct {
	Header
	Points     []geom.Point
	Level      float64
	Major      bool
	Label      string
	Style      draw.LineStyle
	LabelStyle draw.TextStyle
}
