package sink

import (
	"slices"
	"testing"

	"github.com/gogpu/dlist/draw"
	"github.com/gogpu/dlist/geom"
)

var (
	_ Sink = Discard{}
	_ Sink = (*Recorder)(nil)
)

func TestRecorderOrder(t *testing.T) {
	var r Recorder
	r.SetFrame("F", 0, geom.Rect{Xmax: 1, Ymax: 1})
	r.SetAlpha(255)
	r.SetPriority(draw.PriorityNormal)
	r.AppendLine(Tags{Kind: "line", ID: 3}, []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, draw.LineStyle{})

	want := []Op{OpSetFrame, OpSetAlpha, OpSetPriority, OpAppendLine}
	if got := r.Ops(); !slices.Equal(got, want) {
		t.Errorf("Ops() = %v, want %v", got, want)
	}
	app := r.Appended()
	if len(app) != 1 || app[0].Tags.ID != 3 || len(app[0].Points) != 2 {
		t.Errorf("Appended() = %+v", app)
	}
	r.Reset()
	if len(r.Events) != 0 {
		t.Error("Reset() kept events")
	}
}

func TestRecorderFlattensFill(t *testing.T) {
	var r Recorder
	comps := [][]geom.Point{{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, {{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}}}
	r.AppendFill(Tags{Kind: "fill"}, comps, draw.FillStyle{})
	if n := len(r.Events[0].Points); n != 6 {
		t.Errorf("AppendFill recorded %d points, want 6", n)
	}
}
