package record

import (
	"image/color"
	"testing"

	"github.com/gogpu/dlist/draw"
	"github.com/gogpu/dlist/geom"
)

func initRecorder(t *testing.T) *Recorder {
	t.Helper()
	r := New()
	if err := r.InitDrawing(draw.Setup{Page: geom.Rect{Xmax: 10, Ymax: 10}}); err != nil {
		t.Fatal(err)
	}
	return r
}

func TestRecorderCapturesState(t *testing.T) {
	r := initRecorder(t)
	r.SetAlpha(128)
	r.SetPriority(draw.PriorityBackground)
	r.ClipTextRect([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, draw.FillStyle{})
	r.SetPriority(draw.PriorityDefault)
	r.ClipText(geom.Pt(0, 0), "A", draw.TextStyle{Size: 1})

	cmds := r.Commands()
	if len(cmds) != 2 {
		t.Fatalf("len(Commands()) = %d, want 2", len(cmds))
	}
	if cmds[0].Type != CmdTextRect || cmds[0].State.Priority != draw.PriorityBackground || cmds[0].State.Alpha != 128 {
		t.Errorf("first command = %v %+v", cmds[0].Type, cmds[0].State)
	}
	if cmds[1].Type != CmdText || cmds[1].Text != "A" || cmds[1].State.Priority != draw.PriorityDefault {
		t.Errorf("second command = %v %q %+v", cmds[1].Type, cmds[1].Text, cmds[1].State)
	}
}

func TestRecorderCopiesGeometry(t *testing.T) {
	r := initRecorder(t)
	pts := []geom.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}
	r.ClipLine(pts, draw.LineStyle{Color: color.RGBA{A: 255}})
	pts[0].X = 99
	if got := r.Commands()[0].Points[0].X; got != 1 {
		t.Errorf("recorded point aliased caller slice, X = %v", got)
	}
}

func TestRecorderInitResets(t *testing.T) {
	r := initRecorder(t)
	r.ClipSymbol(geom.Pt(1, 1), draw.SymbolStyle{})
	_ = r.InitDrawing(draw.Setup{Page: geom.Rect{Xmax: 1, Ymax: 1}})
	if len(r.Commands()) != 0 {
		t.Errorf("InitDrawing() kept %d commands", len(r.Commands()))
	}
}

func TestPlayback(t *testing.T) {
	src := initRecorder(t)
	src.ClipLine([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, draw.LineStyle{})
	src.ClipFill([][]geom.Point{{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}}, draw.FillStyle{})
	src.SetSelected(true)
	src.ClipArc(geom.Pt(5, 5), 1, 2, 0, 90, 0, geom.ArcPie, draw.ShapeStyle{})
	src.ClipRect(geom.Pt(5, 5), 2, 1, 0, 30, draw.ShapeStyle{})
	src.ClipImage(draw.Image{Cols: 1, Rows: 1, Pixels: []uint8{1, 2, 3, 4}})

	dst := initRecorder(t)
	src.Playback(dst)
	if len(dst.Commands()) != len(src.Commands()) {
		t.Fatalf("Playback() produced %d commands, want %d", len(dst.Commands()), len(src.Commands()))
	}
	for i, c := range dst.Commands() {
		if c.Type != src.Commands()[i].Type || c.State != src.Commands()[i].State {
			t.Errorf("command %d = %v %+v, want %v %+v", i, c.Type, c.State, src.Commands()[i].Type, src.Commands()[i].State)
		}
	}
	if dst.Count(CmdArc) != 1 || !dst.Filter(CmdArc)[0].State.Selected {
		t.Error("arc command lost its selected state")
	}
}

func TestRegistered(t *testing.T) {
	svc, err := draw.NewService("record")
	if err != nil {
		t.Fatalf("NewService(record) error = %v", err)
	}
	if _, ok := svc.(*Recorder); !ok {
		t.Errorf("NewService(record) = %T, want *Recorder", svc)
	}
}

func TestCommandTypeString(t *testing.T) {
	if CmdTextRect.String() != "TextRect" || CommandType(200).String() != "Unknown" {
		t.Error("CommandType.String() mismatch")
	}
}
