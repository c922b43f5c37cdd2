// Package sink defines the host sink the display list republishes into.
//
// The sink is a stateful z-order and clip-context machine: the display
// list always sets the frame context, then the alpha, then the priority,
// before handing it a primitive. Selected primitives are republished with
// their frame, layer and item names so a host can rebuild its own view of
// the selection.
package sink

import (
	"github.com/gogpu/dlist/draw"
	"github.com/gogpu/dlist/geom"
)

// Tags identify the owner of a republished primitive.
type Tags struct {
	Kind       string
	ID         int
	Frame      string
	Layer      string
	Item       string
	Selectable int
}

// Sink receives context changes and republished primitives. All geometry
// is in page space.
type Sink interface {
	SetFrame(name string, num int, page geom.Rect)
	SetAlpha(alpha uint8)
	SetPriority(p draw.Priority)
	ClipFrameBorder(page geom.Rect)
	SetZoomPan(name string, frame geom.Rect)
	ClearSelected()

	AppendLine(t Tags, pts []geom.Point, st draw.LineStyle)
	AppendFill(t Tags, components [][]geom.Point, st draw.FillStyle)
	AppendText(t Tags, ref geom.Point, s string, st draw.TextStyle)
	AppendSymbol(t Tags, p geom.Point, st draw.SymbolStyle)
	AppendShape(t Tags, outline []geom.Point, st draw.ShapeStyle)
	AppendImage(t Tags, img draw.Image)
}

// Discard is a Sink that ignores every call.
type Discard struct{}

func (Discard) SetFrame(string, int, geom.Rect)                     {}
func (Discard) SetAlpha(uint8)                                      {}
func (Discard) SetPriority(draw.Priority)                           {}
func (Discard) ClipFrameBorder(geom.Rect)                           {}
func (Discard) SetZoomPan(string, geom.Rect)                        {}
func (Discard) ClearSelected()                                      {}
func (Discard) AppendLine(Tags, []geom.Point, draw.LineStyle)       {}
func (Discard) AppendFill(Tags, [][]geom.Point, draw.FillStyle)     {}
func (Discard) AppendText(Tags, geom.Point, string, draw.TextStyle) {}
func (Discard) AppendSymbol(Tags, geom.Point, draw.SymbolStyle)     {}
func (Discard) AppendShape(Tags, []geom.Point, draw.ShapeStyle)     {}
func (Discard) AppendImage(Tags, draw.Image)                        {}
