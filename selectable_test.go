package dlist

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/dlist/draw/record"
	"github.com/gogpu/dlist/sink"
)

// twoObjects adds a line and a fill to object 1 and a line to object 2.
func twoObjects(t *testing.T, dl *DisplayList) {
	t.Helper()
	mustFrame(t, dl, plotFrame("F"))
	dl.SetLayer("wells")
	dl.SetItem("W-1")
	dl.SetSelectableNum(1)
	mustLine(t, dl, []float64{10, 20}, []float64{10, 20})
	if _, err := dl.AddFill(square(30, 30, 40, 40)); err != nil {
		t.Fatal(err)
	}
	dl.SetSelectableNum(2)
	mustLine(t, dl, []float64{60, 70}, []float64{60, 70})
}

func TestSelectRepublishes(t *testing.T) {
	dl, _, snk := newTestList(t)
	twoObjects(t, dl)
	if err := dl.SetSelectableState(1, true); err != nil {
		t.Fatal(err)
	}
	got := snk.Ops()
	want := []sink.Op{
		sink.OpClearSelected,
		sink.OpSetFrame,
		sink.OpSetAlpha, sink.OpSetPriority, sink.OpAppendLine,
		sink.OpSetAlpha, sink.OpSetPriority, sink.OpAppendFill,
	}
	if !slices.Equal(got, want) {
		t.Fatalf("sink ops = %v, want %v", got, want)
	}
	tags := snk.Appended()[0].Tags
	wantTags := sink.Tags{Kind: "line", ID: 0, Frame: "F", Layer: "wells", Item: "W-1", Selectable: 1}
	if tags != wantTags {
		t.Errorf("tags = %+v, want %+v", tags, wantTags)
	}
	if pts := snk.Appended()[0].Points; !near(pts[0].X, 1.4) {
		t.Errorf("republished geometry %v is not in page space", pts)
	}
	if got := dl.SelectedNums(); !slices.Equal(got, []int{1}) {
		t.Errorf("SelectedNums() = %v, want [1]", got)
	}

	snk.Reset()
	dl.UnselectAll()
	if got := snk.Ops(); !slices.Equal(got, []sink.Op{sink.OpClearSelected}) {
		t.Errorf("UnselectAll() sink ops = %v", got)
	}
	if err := dl.SetSelectableState(42, true); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("SetSelectableState(42) error = %v, want ErrInvalidArgument", err)
	}
}

func TestDrawSinkSequence(t *testing.T) {
	dl, _, snk := newTestList(t)
	mustFrame(t, dl, plotFrame("F"))
	mustLine(t, dl, []float64{10, 20}, []float64{10, 20})
	if err := dl.Draw(); err != nil {
		t.Fatal(err)
	}
	want := []sink.Op{
		sink.OpSetZoomPan,
		sink.OpSetFrame, sink.OpClipFrameBorder,
		sink.OpSetAlpha, sink.OpSetPriority,
		sink.OpSetFrame,
		sink.OpClearSelected,
	}
	if got := snk.Ops(); !slices.Equal(got, want) {
		t.Errorf("sink ops = %v, want %v", got, want)
	}
	if e := snk.Events[1]; e.Name != "F" || e.Num != 0 {
		t.Errorf("SetFrame event = %+v", e)
	}
	if e := snk.Events[5]; e.Name != "" || e.Num != -1 {
		t.Errorf("page SetFrame event = %+v", e)
	}
}

func TestHideAndUnhide(t *testing.T) {
	dl, rec, _ := newTestList(t)
	twoObjects(t, dl)
	if err := dl.SetSelectableState(1, true); err != nil {
		t.Fatal(err)
	}
	dl.HideSelected()
	if err := dl.Draw(); err != nil {
		t.Fatal(err)
	}
	if n := rec.Count(record.CmdLine); n != 1 {
		t.Errorf("lines drawn while hidden = %d, want 1", n)
	}
	if n := rec.Count(record.CmdFill); n != 0 {
		t.Errorf("fills drawn while hidden = %d, want 0", n)
	}
	if dl.Selected(1) {
		t.Error("hidden object should be unselected")
	}

	dl.UnhideAll()
	if err := dl.Draw(); err != nil {
		t.Fatal(err)
	}
	if n := rec.Count(record.CmdLine); n != 2 {
		t.Errorf("lines drawn after UnhideAll = %d, want 2", n)
	}
	if n := rec.Count(record.CmdFill); n != 1 {
		t.Errorf("fills drawn after UnhideAll = %d, want 1", n)
	}
}

func TestDeleteSelected(t *testing.T) {
	dl, _, _ := newTestList(t)
	twoObjects(t, dl)
	if err := dl.SetSelectableState(1, true); err != nil {
		t.Fatal(err)
	}
	dl.DeleteSelected()
	if got := dl.Count(KindLine); got != 1 {
		t.Errorf("Count(KindLine) = %d, want 1", got)
	}
	if got := dl.Count(KindFill); got != 0 {
		t.Errorf("Count(KindFill) = %d, want 0", got)
	}
	if len(dl.selectables[1].owned) != 0 {
		t.Errorf("object 1 still owns %v", dl.selectables[1].owned)
	}
	if h, ok := dl.Header(KindLine, 1); !ok || h.Selectable != 2 {
		t.Errorf("object 2 line = %+v, %v", h, ok)
	}
}

func TestDeleteHiddenPrimitive(t *testing.T) {
	dl, _, _ := newTestList(t)
	twoObjects(t, dl)
	if err := dl.SetSelectableState(2, true); err != nil {
		t.Fatal(err)
	}
	dl.HideSelected()
	if err := dl.DeletePrim(KindLine, 1); err != nil {
		t.Fatal(err)
	}
	if len(dl.hidden) != 0 {
		t.Errorf("hidden list still holds %v", dl.hidden)
	}
	id := mustLine(t, dl, []float64{1, 2}, []float64{1, 2})
	dl.UnhideAll()
	if h, _ := dl.Header(KindLine, id); h.Hidden {
		t.Error("UnhideAll() touched a reused slot")
	}
}

func TestEraseSelectableNum(t *testing.T) {
	dl, _, _ := newTestList(t)
	twoObjects(t, dl)
	if err := dl.EraseSelectableNum(2); err != nil {
		t.Fatal(err)
	}
	if got := dl.Count(KindLine); got != 1 {
		t.Errorf("Count(KindLine) = %d, want 1", got)
	}
	if dl.SelectableNum() != -1 {
		t.Errorf("SelectableNum() = %d, want -1 after erasing the current object", dl.SelectableNum())
	}
	if err := dl.EraseSelectableNum(2); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("second EraseSelectableNum() error = %v", err)
	}
}

func TestDrawSelected(t *testing.T) {
	dl, rec, _ := newTestList(t)
	twoObjects(t, dl)
	if err := dl.Draw(); err != nil {
		t.Fatal(err)
	}
	if err := dl.SetSelectableState(2, true); err != nil {
		t.Fatal(err)
	}
	rec.Reset()
	if err := dl.DrawSelected(); err != nil {
		t.Fatal(err)
	}
	lines := rec.Filter(record.CmdLine)
	if len(lines) != 1 || !lines[0].State.Selected {
		t.Errorf("DrawSelected() lines = %+v, want the one selected line", lines)
	}
	if n := rec.Count(record.CmdFill); n != 0 {
		t.Errorf("DrawSelected() drew %d fills", n)
	}
}

func TestCreateSelectable(t *testing.T) {
	dl, _, _ := newTestList(t)
	if err := dl.CreateSelectable(-2); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("CreateSelectable(-2) error = %v", err)
	}
	if err := dl.CreateSelectable(5); err != nil {
		t.Fatal(err)
	}
	if err := dl.SetSelectableState(5, true); err != nil {
		t.Errorf("SetSelectableState() on a created object error = %v", err)
	}
}
