package dlist

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/dlist/draw/record"
	"github.com/gogpu/dlist/geom"
	"github.com/gogpu/dlist/sink"
	"github.com/gogpu/dlist/text"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// newTestList returns a display list drawing into a recorder and
// publishing into a sink recorder.
func newTestList(t *testing.T, opts ...Option) (*DisplayList, *record.Recorder, *sink.Recorder) {
	t.Helper()
	rec := record.New()
	snk := &sink.Recorder{}
	opts = append([]Option{WithDrawService(rec), WithSink(snk), WithMetrics(text.Approx{})}, opts...)
	return New(opts...), rec, snk
}

func mustFrame(t *testing.T, dl *DisplayList, spec FrameSpec) int {
	t.Helper()
	num, err := dl.CreateFrame(spec)
	if err != nil {
		t.Fatalf("CreateFrame(%q) error = %v", spec.Name, err)
	}
	if err := dl.SetFrame(spec.Name); err != nil {
		t.Fatalf("SetFrame(%q) error = %v", spec.Name, err)
	}
	return num
}

func plotFrame(name string) FrameSpec {
	return FrameSpec{
		Name:        name,
		Rescaleable: true,
		Limits:      geom.Rect{Xmin: 0, Ymin: 0, Xmax: 100, Ymax: 100},
		Page:        geom.Rect{Xmin: 1, Ymin: 1, Xmax: 5, Ymax: 5},
	}
}

func mustLine(t *testing.T, dl *DisplayList, x, y []float64) int {
	t.Helper()
	id, err := dl.AddLine(x, y)
	if err != nil {
		t.Fatalf("AddLine() error = %v", err)
	}
	return id
}

func TestDrawSingleLine(t *testing.T) {
	dl, rec, _ := newTestList(t)
	mustFrame(t, dl, plotFrame("F"))
	mustLine(t, dl, []float64{10, 90}, []float64{10, 90})

	if err := dl.Draw(); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	lines := rec.Filter(record.CmdLine)
	if len(lines) != 1 {
		t.Fatalf("Draw() issued %d line calls, want 1", len(lines))
	}
	pts := lines[0].Points
	want := []geom.Point{{X: 1.4, Y: 1.4}, {X: 4.6, Y: 4.6}}
	if len(pts) != 2 {
		t.Fatalf("line has %d points, want 2", len(pts))
	}
	for i := range want {
		if !near(pts[i].X, want[i].X) || !near(pts[i].Y, want[i].Y) {
			t.Errorf("point %d = %+v, want %+v", i, pts[i], want[i])
		}
	}
	if got := len(rec.Commands()); got != 1 {
		t.Errorf("Draw() issued %d calls, want 1", got)
	}
}

func TestDeletedPrimitiveNotDrawnAndSlotReused(t *testing.T) {
	dl, rec, _ := newTestList(t)
	mustFrame(t, dl, plotFrame("F"))
	a := mustLine(t, dl, []float64{10, 20}, []float64{10, 20})
	if a != 0 {
		t.Fatalf("first line id = %d, want 0", a)
	}
	if err := dl.DeletePrim(KindLine, a); err != nil {
		t.Fatalf("DeletePrim() error = %v", err)
	}
	b := mustLine(t, dl, []float64{60, 90}, []float64{60, 90})
	if b != 0 {
		t.Errorf("reused id = %d, want 0", b)
	}
	if err := dl.Draw(); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	lines := rec.Filter(record.CmdLine)
	if len(lines) != 1 {
		t.Fatalf("Draw() issued %d line calls, want 1", len(lines))
	}
	if p := lines[0].Points[0]; !near(p.X, 3.4) {
		t.Errorf("drawn line starts at %+v, want the replacement line", p)
	}
}

func TestBorderKeepsFreeSlotOrder(t *testing.T) {
	dl, rec, _ := newTestList(t)
	spec := plotFrame("F")
	spec.Border = true
	mustFrame(t, dl, spec)
	a := mustLine(t, dl, []float64{10, 20}, []float64{10, 20})
	mustLine(t, dl, []float64{30, 40}, []float64{30, 40})
	if err := dl.DeletePrim(KindLine, a); err != nil {
		t.Fatal(err)
	}

	if err := dl.Draw(); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if got := rec.Count(record.CmdLine); got <= 1 {
		t.Errorf("drew %d lines, want the user line plus border lines", got)
	}
	// A deep zoom changes the tick count and regenerates the border.
	if err := dl.RescaleFrame("F", false, 40, 40, 41, 41); err != nil {
		t.Fatal(err)
	}
	if err := dl.Draw(); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	if got := dl.Count(KindLine); got != 1 {
		t.Errorf("Count(KindLine) = %d, want 1 (borders are not counted)", got)
	}
	if id := mustLine(t, dl, []float64{50, 60}, []float64{50, 60}); id != a {
		t.Errorf("AddLine() after Draw = %d, want freed slot %d", id, a)
	}
}

func TestStoreLIFOReuse(t *testing.T) {
	dl, _, _ := newTestList(t)
	for range 4 {
		mustLine(t, dl, []float64{0, 1}, []float64{0, 1})
	}
	for _, id := range []int{1, 3} {
		if err := dl.DeletePrim(KindLine, id); err != nil {
			t.Fatalf("DeletePrim(%d) error = %v", id, err)
		}
	}
	for _, want := range []int{3, 1, 4} {
		if got := mustLine(t, dl, []float64{0, 1}, []float64{0, 1}); got != want {
			t.Errorf("AddLine() = %d, want %d", got, want)
		}
	}
	if got := dl.Count(KindLine); got != 5 {
		t.Errorf("Count(KindLine) = %d, want 5", got)
	}
}

func TestDeletedSlotHoldsNoGeometry(t *testing.T) {
	dl, _, _ := newTestList(t)
	id := mustLine(t, dl, []float64{0, 1, 2}, []float64{0, 1, 0})
	if err := dl.DeletePrim(KindLine, id); err != nil {
		t.Fatal(err)
	}
	if _, ok := dl.Line(id); ok {
		t.Error("Line() of a deleted slot should report false")
	}
	if got := dl.lines.items[id].Points; got != nil {
		t.Errorf("deleted slot still holds %d points", len(got))
	}
	if err := dl.DeletePrim(KindLine, id); !errors.Is(err, ErrNoPrimitive) {
		t.Errorf("second DeletePrim() error = %v, want ErrNoPrimitive", err)
	}
}

func TestAddRejectsBadArguments(t *testing.T) {
	dl, _, _ := newTestList(t)
	tests := []struct {
		name string
		add  func() (int, error)
	}{
		{"line without points", func() (int, error) { return dl.AddLine(nil, nil) }},
		{"line with one point", func() (int, error) { return dl.AddLine([]float64{1}, []float64{1}) }},
		{"line of holes", func() (int, error) {
			return dl.AddLine([]float64{geom.HoleFlag, 1}, []float64{0, 1})
		}},
		{"fill with two points", func() (int, error) { return dl.AddFill([]float64{0, 1}, []float64{0, 1}) }},
		{"empty text", func() (int, error) { return dl.AddText(0, 0, "", 0.1, 0) }},
		{"zero text size", func() (int, error) { return dl.AddText(0, 0, "x", 0, 0) }},
		{"zero symbol size", func() (int, error) { return dl.AddSymb(0, 0, 0, 0, 1) }},
		{"flat shape", func() (int, error) { return dl.AddShape(ShapeSpec{Width: 1}) }},
		{"short image", func() (int, error) { return dl.AddColorImage(0, 0, 1, 1, 2, 2, make([]uint8, 4)) }},
		{"degenerate axis", func() (int, error) { return dl.AddAxis(DefaultAxisSpec(), 1, 1, 1, 1, 0, 1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := tt.add()
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("error = %v, want ErrInvalidArgument", err)
			}
			if id != -1 {
				t.Errorf("id = %d, want -1", id)
			}
			if got := Status(err); got != 0 {
				t.Errorf("Status() = %d, want 0", got)
			}
		})
	}
}

func TestCapacity(t *testing.T) {
	dl, _, _ := newTestList(t, WithMaxPrimitives(2))
	mustLine(t, dl, []float64{0, 1}, []float64{0, 1})
	mustLine(t, dl, []float64{0, 1}, []float64{0, 1})
	_, err := dl.AddLine([]float64{0, 1}, []float64{0, 1})
	if !errors.Is(err, ErrCapacity) {
		t.Fatalf("AddLine() past capacity error = %v, want ErrCapacity", err)
	}
	if got := Status(err); got != -1 {
		t.Errorf("Status() = %d, want -1", got)
	}
	if err := dl.DeletePrim(KindLine, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := dl.AddLine([]float64{0, 1}, []float64{0, 1}); err != nil {
		t.Errorf("AddLine() after delete error = %v", err)
	}
	if _, err := dl.AddFill([]float64{0, 1, 1}, []float64{0, 0, 1}); err != nil {
		t.Errorf("capacity is per kind, AddFill() error = %v", err)
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, 1},
		{ErrInvalidArgument, 0},
		{ErrNoFrame, 0},
		{ErrCapacity, -1},
		{ErrZoomLimit, -1},
		{ErrNotRescaleable, -1},
		{ErrNotIndexed, -1},
		{errors.New("other"), 0},
	}
	for _, tt := range tests {
		if got := Status(tt.err); got != tt.want {
			t.Errorf("Status(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestBoundsSkipHoles(t *testing.T) {
	dl, _, _ := newTestList(t)
	mustFrame(t, dl, plotFrame("F"))
	id := mustLine(t, dl,
		[]float64{10, 20, geom.HoleFlag, 30, 40},
		[]float64{15, 25, geom.HoleFlag, 5, 50})
	h, ok := dl.Header(KindLine, id)
	if !ok {
		t.Fatal("Header() not found")
	}
	want := geom.Rect{Xmin: 10, Ymin: 5, Xmax: 40, Ymax: 50}
	if h.Bounds != want {
		t.Errorf("Bounds = %+v, want %+v", h.Bounds, want)
	}
	if h.Frame != 0 || !h.Scaleable || h.Border != -1 || h.Surface != -1 {
		t.Errorf("Header = %+v, want frame 0, scaleable user primitive", h)
	}
}

func TestPageSpacePrimitive(t *testing.T) {
	dl, _, _ := newTestList(t)
	id := mustLine(t, dl, []float64{1, 2}, []float64{1, 2})
	h, _ := dl.Header(KindLine, id)
	if h.Frame != -1 || h.Scaleable {
		t.Errorf("Header = %+v, want page-space primitive", h)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v        float64
		decimals int
		commas   bool
		want     string
	}{
		{1234567.891, 2, true, "1,234,567.89"},
		{1234567.891, 0, false, "1234568"},
		{-1234.5, 1, true, "-1,234.5"},
		{999, 0, true, "999"},
		{1000, -1, true, "1,000"},
		{0.25, 3, true, "0.250"},
	}
	for _, tt := range tests {
		if got := formatNumber(tt.v, tt.decimals, tt.commas); got != tt.want {
			t.Errorf("formatNumber(%v, %d, %v) = %q, want %q", tt.v, tt.decimals, tt.commas, got, tt.want)
		}
	}
}

func TestClear(t *testing.T) {
	dl, _, _ := newTestList(t)
	mustFrame(t, dl, plotFrame("F"))
	dl.SetSelectableNum(3)
	mustLine(t, dl, []float64{0, 1}, []float64{0, 1})
	dl.Clear()
	if dl.Frames() != 0 || dl.Count(KindLine) != 0 || dl.FrameNum() != -1 {
		t.Errorf("Clear() left %d frames, %d lines, current %d", dl.Frames(), dl.Count(KindLine), dl.FrameNum())
	}
	if dl.SelectableNum() != -1 || len(dl.selectables) != 0 {
		t.Error("Clear() should drop selectable objects")
	}
	if id := mustLine(t, dl, []float64{0, 1}, []float64{0, 1}); id != 0 {
		t.Errorf("AddLine() after Clear = %d, want 0", id)
	}
}

func TestKindString(t *testing.T) {
	if got := KindContourLine.String(); got != "contour line" {
		t.Errorf("KindContourLine.String() = %q", got)
	}
	if got := Kind(99).String(); got != "unknown" {
		t.Errorf("Kind(99).String() = %q, want unknown", got)
	}
}
