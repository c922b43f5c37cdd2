package dlist

import (
	"testing"

	"github.com/gogpu/dlist/geom"
)

// pickFrame maps frame units 0..100 onto page units 0..10, so a frame unit
// is a tenth of a page unit and the pick tolerance is about 0.14 page
// units.
func pickFrame(t *testing.T, dl *DisplayList) int {
	t.Helper()
	return mustFrame(t, dl, FrameSpec{
		Name:        "P",
		Rescaleable: true,
		Limits:      geom.Rect{Xmax: 100, Ymax: 100},
		Page:        geom.Rect{Xmax: 10, Ymax: 10},
	})
}

func square(x1, y1, x2, y2 float64) ([]float64, []float64) {
	return []float64{x1, x2, x2, x1}, []float64{y1, y1, y2, y2}
}

func TestPickLineOverFill(t *testing.T) {
	dl, _, _ := newTestList(t)
	num := pickFrame(t, dl)
	dl.SetSelectableNum(1)
	line := mustLine(t, dl, []float64{0, 100}, []float64{51, 51})
	dl.SetSelectableNum(2)
	if _, err := dl.AddFill(square(45, 45, 55, 55)); err != nil {
		t.Fatal(err)
	}

	k, id, ok := dl.ClosestPickPrim(num, 5, 5)
	if !ok || k != KindLine || id != line {
		t.Errorf("ClosestPickPrim() = %v %d %v, want line %d", k, id, ok, line)
	}
}

func TestPickFallsBackToFillInterior(t *testing.T) {
	dl, _, _ := newTestList(t)
	num := pickFrame(t, dl)
	dl.SetSelectableNum(1)
	mustLine(t, dl, []float64{0, 100}, []float64{90, 90})
	fill, err := dl.AddFill(square(45, 45, 55, 55))
	if err != nil {
		t.Fatal(err)
	}

	k, id, ok := dl.ClosestPickPrim(num, 5, 5)
	if !ok || k != KindFill || id != fill {
		t.Errorf("ClosestPickPrim() = %v %d %v, want fill %d", k, id, ok, fill)
	}
}

func TestPickShapeInteriorBeforeFill(t *testing.T) {
	dl, _, _ := newTestList(t)
	num := pickFrame(t, dl)
	dl.SetSelectableNum(1)
	if _, err := dl.AddFill(square(30, 30, 70, 70)); err != nil {
		t.Fatal(err)
	}
	shape, err := dl.AddShape(ShapeSpec{Type: ShapeBox, Center: geom.Pt(50, 50), Width: 30, Height: 30})
	if err != nil {
		t.Fatal(err)
	}
	k, id, ok := dl.ClosestPickPrim(num, 5, 5)
	if !ok || k != KindShape || id != shape {
		t.Errorf("ClosestPickPrim() = %v %d %v, want shape %d", k, id, ok, shape)
	}
}

func TestPickZoomedOutFindsLineWithinTolerance(t *testing.T) {
	dl, _, _ := newTestList(t)
	num := pickFrame(t, dl)
	dl.SetSelectableNum(1)
	line := mustLine(t, dl, []float64{0, 100}, []float64{60, 60})
	if err := dl.RescaleFrame("P", false, -900, -900, 1000, 1000); err != nil {
		t.Fatalf("RescaleFrame() error = %v", err)
	}
	if err := dl.Draw(); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	// Ten frame units are about 0.05 page units at this zoom, well inside
	// the tolerance but several index cells away.
	px, py, err := dl.FrameToPage(num, 50, 50)
	if err != nil {
		t.Fatal(err)
	}
	k, id, ok := dl.ClosestPickPrim(num, px, py)
	if !ok || k != KindLine || id != line {
		t.Errorf("ClosestPickPrim() = %v %d %v, want line %d", k, id, ok, line)
	}
}

func TestPickTieKeepsEarlierKind(t *testing.T) {
	dl, _, _ := newTestList(t)
	num := pickFrame(t, dl)
	dl.SetSelectableNum(1)
	line := mustLine(t, dl, []float64{0, 100}, []float64{50, 50})
	if _, err := dl.AddContourLine([]float64{0, 100}, []float64{50, 50}, false); err != nil {
		t.Fatal(err)
	}
	k, id, ok := dl.ClosestPickPrim(num, 5, 5.05)
	if !ok || k != KindLine || id != line {
		t.Errorf("ClosestPickPrim() = %v %d %v, want line %d", k, id, ok, line)
	}
}

func TestPickNothing(t *testing.T) {
	dl, _, _ := newTestList(t)
	num := pickFrame(t, dl)
	dl.SetSelectableNum(1)
	mustLine(t, dl, []float64{0, 100}, []float64{90, 90})
	if k, id, ok := dl.ClosestPickPrim(num, 5, 5); ok {
		t.Errorf("ClosestPickPrim() = %v %d, want nothing", k, id)
	}
	if _, _, ok := dl.ClosestPickPrim(7, 5, 5); ok {
		t.Error("ClosestPickPrim() on unknown frame should find nothing")
	}
}

func TestPickSkipsUnselectable(t *testing.T) {
	dl, _, _ := newTestList(t)
	num := pickFrame(t, dl)

	// No selectable object.
	mustLine(t, dl, []float64{0, 100}, []float64{50, 50})
	if _, _, ok := dl.ClosestPickPrim(num, 5, 5); ok {
		t.Error("primitive without selectable object was picked")
	}

	dl.SetLayer("locked")
	if err := dl.SetLayerSelectable("locked", false); err != nil {
		t.Fatal(err)
	}
	dl.SetSelectableNum(1)
	mustLine(t, dl, []float64{0, 100}, []float64{50.5, 50.5})
	if _, _, ok := dl.ClosestPickPrim(num, 5, 5); ok {
		t.Error("primitive on an unselectable layer was picked")
	}

	dl.SetLayer("default")
	dl.SetSelectableNum(2)
	line := mustLine(t, dl, []float64{0, 100}, []float64{51, 51})
	if _, id, ok := dl.ClosestPickPrim(num, 5, 5); !ok || id != line {
		t.Errorf("ClosestPickPrim() = %d, %v, want line %d", id, ok, line)
	}
}

func TestPickTextInsideBonus(t *testing.T) {
	dl, _, _ := newTestList(t)
	num := pickFrame(t, dl)
	dl.SetSelectableNum(1)
	dl.SetTextAnchor(geom.AnchorCenter)
	text, err := dl.AddText(50, 50, "WWWW", 0.2, 0)
	if err != nil {
		t.Fatal(err)
	}
	// Passes under the pick point at the same distance as the text box
	// edge would be without the inside bonus.
	mustLine(t, dl, []float64{0, 100}, []float64{49, 49})
	k, id, ok := dl.ClosestPickPrim(num, 5, 5)
	if !ok || k != KindText || id != text {
		t.Errorf("ClosestPickPrim() = %v %d %v, want text %d", k, id, ok, text)
	}
}

func TestPickFrameObjectToggles(t *testing.T) {
	dl, _, snk := newTestList(t)
	num := pickFrame(t, dl)
	dl.SetSelectableNum(4)
	mustLine(t, dl, []float64{0, 100}, []float64{50, 50})

	if got := dl.GetFrameObject(num, 5, 5); got != 4 {
		t.Fatalf("GetFrameObject() = %d, want 4", got)
	}
	if dl.Selected(4) {
		t.Fatal("GetFrameObject() must not select")
	}
	if got := dl.PickFrameObject(num, 5, 5); got != 4 || !dl.Selected(4) {
		t.Errorf("PickFrameObject() = %d, selected %v, want 4 selected", got, dl.Selected(4))
	}
	if n := len(snk.Appended()); n != 1 {
		t.Errorf("selection republished %d primitives, want 1", n)
	}
	if got := dl.PickFrameObject(num, 5, 5); got != 4 || dl.Selected(4) {
		t.Errorf("second PickFrameObject() = %d, selected %v, want 4 unselected", got, dl.Selected(4))
	}
	if got := dl.PickFrameObject(num, 5, 9); got != -1 {
		t.Errorf("PickFrameObject() on empty space = %d, want -1", got)
	}
}

func TestGetFrameObjectAnyFrame(t *testing.T) {
	dl, _, _ := newTestList(t)
	pickFrame(t, dl)
	mustFrame(t, dl, FrameSpec{
		Name:   "Q",
		Limits: geom.Rect{Xmax: 10, Ymax: 10},
		Page:   geom.Rect{Xmin: 20, Xmax: 30, Ymax: 10},
	})
	dl.SetSelectableNum(9)
	mustLine(t, dl, []float64{0, 10}, []float64{5, 5})
	if got := dl.GetFrameObject(-1, 25, 5); got != 9 {
		t.Errorf("GetFrameObject(-1) = %d, want 9", got)
	}
	if got := dl.GetFrameObject(-1, 5, 5); got != -1 {
		t.Errorf("GetFrameObject(-1) over empty frame = %d, want -1", got)
	}
}
