package dlist

import (
	"log/slog"

	"github.com/gogpu/dlist/draw"
	"github.com/gogpu/dlist/geom"
	"github.com/gogpu/dlist/internal/spatial"
	"github.com/gogpu/dlist/sink"
	"github.com/gogpu/dlist/surface"
	"github.com/gogpu/dlist/text"
)

// DisplayList is a retained scene of plot primitives organized into frames.
//
// A DisplayList is not safe for concurrent use: one goroutine drives it,
// calling Add*, Draw, picking and mutation operations sequentially.
type DisplayList struct {
	opts    options
	svc     draw.Service
	sink    sink.Sink
	metrics text.Measurer

	lines        store[Line, *Line]
	fills        store[Fill, *Fill]
	texts        store[Text, *Text]
	symbols      store[Symbol, *Symbol]
	shapes       store[Shape, *Shape]
	images       store[Image, *Image]
	axes         store[Axis, *Axis]
	contourLines store[ContourLine, *ContourLine]
	contours     store[Contour, *Contour]
	stores       [numKinds]slotStore

	frames  []*Frame
	current int

	layers      []layer
	items       []string
	layer, item int

	selectables map[int]*selectable
	selectable  int
	hidden      []primRef

	surfaces []*surfaceEntry
	building int
	bands    surface.Bands

	state GraphicState

	page         geom.Rect
	laidOut      bool
	layoutNeeded bool
	initialized  bool

	patchSeen spatial.Visited
	pickSeen  spatial.Visited
	idBuf     []int
}

// primRef names one primitive.
type primRef struct {
	kind Kind
	id   int
}

// New creates an empty display list.
func New(opts ...Option) *DisplayList {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dl := &DisplayList{
		opts:        o,
		svc:         o.service,
		sink:        o.sink,
		metrics:     o.metrics,
		current:     -1,
		selectable:  -1,
		selectables: make(map[int]*selectable),
		building:    -1,
		state:       DefaultGraphicState(),
		page:        geom.EmptyRect(),
	}
	if dl.svc == nil {
		dl.svc = &discardService{}
	}
	propagateLogger(dl.svc, Logger())
	if dl.metrics == nil {
		m, err := text.NewMetrics()
		if err != nil {
			Logger().Warn("dlist: font metrics unavailable, using approximate text extents", slog.Any("error", err))
			dl.metrics = text.Approx{}
		} else {
			dl.metrics = m
		}
	}
	dl.initStores()
	dl.layers = []layer{{name: "default", selectable: true}}
	dl.items = []string{""}
	return dl
}

func (dl *DisplayList) initStores() {
	dl.lines.kind = KindLine
	dl.fills.kind = KindFill
	dl.texts.kind = KindText
	dl.symbols.kind = KindSymbol
	dl.shapes.kind = KindShape
	dl.images.kind = KindImage
	dl.axes.kind = KindAxis
	dl.contourLines.kind = KindContourLine
	dl.contours.kind = KindContour
	dl.stores = [numKinds]slotStore{
		KindLine:        &dl.lines,
		KindFill:        &dl.fills,
		KindText:        &dl.texts,
		KindSymbol:      &dl.symbols,
		KindShape:       &dl.shapes,
		KindImage:       &dl.images,
		KindAxis:        &dl.axes,
		KindContourLine: &dl.contourLines,
		KindContour:     &dl.contours,
	}
	dl.setCapacity(dl.opts.maxPrims)
}

func (dl *DisplayList) setCapacity(n int) {
	dl.lines.limit = n
	dl.fills.limit = n
	dl.texts.limit = n
	dl.symbols.limit = n
	dl.shapes.limit = n
	dl.images.limit = n
	dl.axes.limit = n
	dl.contourLines.limit = n
	dl.contours.limit = n
}

// Clear removes every primitive, frame, surface and selectable object and
// resets the graphic state. Options set at creation are kept.
func (dl *DisplayList) Clear() {
	for _, s := range dl.stores {
		s.reset()
	}
	dl.frames = nil
	dl.current = -1
	dl.layers = []layer{{name: "default", selectable: true}}
	dl.items = []string{""}
	dl.layer, dl.item = 0, 0
	clear(dl.selectables)
	dl.selectable = -1
	dl.hidden = nil
	dl.surfaces = nil
	dl.bands = nil
	dl.state = DefaultGraphicState()
	dl.page = geom.EmptyRect()
	dl.laidOut = false
	dl.layoutNeeded = false
}

// Count returns the number of live primitives of one kind.
func (dl *DisplayList) Count(k Kind) int {
	if k < 0 || k >= numKinds {
		return 0
	}
	return dl.stores[k].live()
}

// Header returns a copy of the bookkeeping of one live primitive.
func (dl *DisplayList) Header(k Kind, id int) (Header, bool) {
	h := dl.header(k, id)
	if h == nil || h.Deleted {
		return Header{}, false
	}
	return *h, true
}

func (dl *DisplayList) header(k Kind, id int) *Header {
	if k < 0 || k >= numKinds {
		return nil
	}
	return dl.stores[k].header(id)
}

// Line returns a live line primitive. The returned record must not be
// modified.
func (dl *DisplayList) Line(id int) (*Line, bool) {
	p := dl.lines.at(id)
	return p, p != nil
}

// Text returns a live text primitive. The returned record must not be
// modified.
func (dl *DisplayList) Text(id int) (*Text, bool) {
	p := dl.texts.at(id)
	return p, p != nil
}

// Page returns the page rectangle computed by the last layout.
func (dl *DisplayList) Page() geom.Rect {
	return dl.page
}

// SetScreenBounds changes the device rectangle the page is fitted into.
func (dl *DisplayList) SetScreenBounds(x1, y1, x2, y2 float64) {
	dl.opts.screen = geom.R(x1, y1, x2, y2)
	dl.layoutNeeded = true
}

// SetScreenDPI changes the screen resolution.
func (dl *DisplayList) SetScreenDPI(dpi float64) {
	if dpi > 0 {
		dl.opts.dpi = dpi
		dl.layoutNeeded = true
	}
}

// SetPageUnitsType changes the page units. Sizes already converted into
// stored primitives are not revisited.
func (dl *DisplayList) SetPageUnitsType(u draw.Units) {
	dl.opts.units = u
	dl.layoutNeeded = true
}

// SetDrawingBoundsHint sets the page used when no frame determines it.
func (dl *DisplayList) SetDrawingBoundsHint(x1, y1, x2, y2 float64) {
	dl.opts.hint = geom.R(x1, y1, x2, y2)
	dl.layoutNeeded = true
}

// SetMinimumFrameSeparation sets the page-space gap kept between attached
// frames.
func (dl *DisplayList) SetMinimumFrameSeparation(d float64) {
	dl.opts.minSep = max(0, d)
	dl.layoutNeeded = true
}

// discardService accepts every drawing call and draws nothing.
type discardService struct {
	draw.Base
}

func (*discardService) ClipLine([]geom.Point, draw.LineStyle)                                    {}
func (*discardService) ClipFill([][]geom.Point, draw.FillStyle)                                  {}
func (*discardService) ClipText(geom.Point, string, draw.TextStyle)                              {}
func (*discardService) ClipTextRect([]geom.Point, draw.FillStyle)                                {}
func (*discardService) ClipSymbol(geom.Point, draw.SymbolStyle)                                  {}
func (*discardService) ClipRect(geom.Point, float64, float64, float64, float64, draw.ShapeStyle) {}
func (*discardService) ClipImage(draw.Image)                                                     {}

func (*discardService) ClipArc(geom.Point, float64, float64, float64, float64, float64, geom.ArcClosure, draw.ShapeStyle) {}
