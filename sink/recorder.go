package sink

import (
	"slices"

	"github.com/gogpu/dlist/draw"
	"github.com/gogpu/dlist/geom"
)

// Op names the Sink method an Event was recorded from.
type Op string

const (
	OpSetFrame        Op = "SetFrame"
	OpSetAlpha        Op = "SetAlpha"
	OpSetPriority     Op = "SetPriority"
	OpClipFrameBorder Op = "ClipFrameBorder"
	OpSetZoomPan      Op = "SetZoomPan"
	OpClearSelected   Op = "ClearSelected"
	OpAppendLine      Op = "AppendLine"
	OpAppendFill      Op = "AppendFill"
	OpAppendText      Op = "AppendText"
	OpAppendSymbol    Op = "AppendSymbol"
	OpAppendShape     Op = "AppendShape"
	OpAppendImage     Op = "AppendImage"
)

// Event is one recorded Sink call.
type Event struct {
	Op       Op
	Name     string
	Num      int
	Rect     geom.Rect
	Alpha    uint8
	Priority draw.Priority
	Tags     Tags
	Points   []geom.Point
	Text     string
}

// Recorder is a Sink that records every call in order.
type Recorder struct {
	Events []Event
}

// Ops returns the recorded operation names in order.
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.Events))
	for i, e := range r.Events {
		ops[i] = e.Op
	}
	return ops
}

// Appended returns the recorded Append events.
func (r *Recorder) Appended() []Event {
	var out []Event
	for _, e := range r.Events {
		switch e.Op {
		case OpAppendLine, OpAppendFill, OpAppendText, OpAppendSymbol, OpAppendShape, OpAppendImage:
			out = append(out, e)
		}
	}
	return out
}

// Reset discards recorded events.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}

func (r *Recorder) SetFrame(name string, num int, page geom.Rect) {
	r.Events = append(r.Events, Event{Op: OpSetFrame, Name: name, Num: num, Rect: page})
}

func (r *Recorder) SetAlpha(alpha uint8) {
	r.Events = append(r.Events, Event{Op: OpSetAlpha, Alpha: alpha})
}

func (r *Recorder) SetPriority(p draw.Priority) {
	r.Events = append(r.Events, Event{Op: OpSetPriority, Priority: p})
}

func (r *Recorder) ClipFrameBorder(page geom.Rect) {
	r.Events = append(r.Events, Event{Op: OpClipFrameBorder, Rect: page})
}

func (r *Recorder) SetZoomPan(name string, frame geom.Rect) {
	r.Events = append(r.Events, Event{Op: OpSetZoomPan, Name: name, Rect: frame})
}

func (r *Recorder) ClearSelected() {
	r.Events = append(r.Events, Event{Op: OpClearSelected})
}

func (r *Recorder) AppendLine(t Tags, pts []geom.Point, _ draw.LineStyle) {
	r.Events = append(r.Events, Event{Op: OpAppendLine, Tags: t, Points: slices.Clone(pts)})
}

func (r *Recorder) AppendFill(t Tags, components [][]geom.Point, _ draw.FillStyle) {
	var pts []geom.Point
	for _, c := range components {
		pts = append(pts, c...)
	}
	r.Events = append(r.Events, Event{Op: OpAppendFill, Tags: t, Points: pts})
}

func (r *Recorder) AppendText(t Tags, ref geom.Point, s string, _ draw.TextStyle) {
	r.Events = append(r.Events, Event{Op: OpAppendText, Tags: t, Points: []geom.Point{ref}, Text: s})
}

func (r *Recorder) AppendSymbol(t Tags, p geom.Point, _ draw.SymbolStyle) {
	r.Events = append(r.Events, Event{Op: OpAppendSymbol, Tags: t, Points: []geom.Point{p}})
}

func (r *Recorder) AppendShape(t Tags, outline []geom.Point, _ draw.ShapeStyle) {
	r.Events = append(r.Events, Event{Op: OpAppendShape, Tags: t, Points: slices.Clone(outline)})
}

func (r *Recorder) AppendImage(t Tags, img draw.Image) {
	r.Events = append(r.Events, Event{Op: OpAppendImage, Tags: t, Rect: img.Rect})
}
