package geom

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBoundsSkipsHoles(t *testing.T) {
	pts := []Point{{1, 2}, {HoleFlag, HoleFlag}, {-3, 7}, {5, 1e16}, {4, -1}}
	got := Bounds(pts)
	want := Rect{Xmin: -3, Ymin: -1, Xmax: 4, Ymax: 7}
	if got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestBoundsAllHoles(t *testing.T) {
	got := Bounds([]Point{{HoleFlag, 0}, {0, -HoleFlag}})
	if !got.IsEmpty() {
		t.Errorf("Bounds() of holes = %+v, want empty", got)
	}
}

func TestIsHole(t *testing.T) {
	tests := []struct {
		v    float64
		want bool
	}{
		{0, false},
		{1e14, false},
		{-1e15, false},
		{1.1e15, true},
		{-1e16, true},
		{HoleFlag, true},
		{math.NaN(), true},
	}
	for _, tt := range tests {
		if got := IsHole(tt.v); got != tt.want {
			t.Errorf("IsHole(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestFrameContextRoundTrip(t *testing.T) {
	fc := FrameContext{
		Num: 0,
		F:   Rect{Xmin: -50, Ymin: 1000, Xmax: 150, Ymax: 1400},
		P:   Rect{Xmin: 1, Ymin: 2, Xmax: 9, Ymax: 5},
	}
	for _, p := range []Point{{0, 1000}, {-50, 1400}, {37.25, 1111.5}, {1e6, -3e5}} {
		back := fc.ToFrame(fc.ToPage(p))
		if !near(back.X, p.X) || !near(back.Y, p.Y) {
			t.Errorf("round trip of %+v = %+v", p, back)
		}
	}
}

func TestFrameContextScenarioLine(t *testing.T) {
	fc := FrameContext{Num: 0, F: Rect{0, 0, 100, 100}, P: Rect{1, 1, 5, 5}}
	a := fc.ToPage(Point{10, 10})
	b := fc.ToPage(Point{90, 90})
	if !near(a.X, 1.4) || !near(a.Y, 1.4) || !near(b.X, 4.6) || !near(b.Y, 4.6) {
		t.Errorf("ToPage() = %+v, %+v, want (1.4,1.4), (4.6,4.6)", a, b)
	}
}

func TestFrameContextPassesHoles(t *testing.T) {
	fc := FrameContext{Num: 0, F: Rect{0, 0, 10, 10}, P: Rect{0, 0, 1, 1}}
	h := Point{HoleFlag, HoleFlag}
	if got := fc.ToPage(h); got != h {
		t.Errorf("ToPage(hole) = %+v, want unchanged", got)
	}
	if got := fc.ToFrame(h); got != h {
		t.Errorf("ToFrame(hole) = %+v, want unchanged", got)
	}
}

func TestFrameContextAnisotropicDist(t *testing.T) {
	fc := FrameContext{Num: 0, F: Rect{0, 0, 10, 100}, P: Rect{0, 0, 10, 10}}
	// sx = 1, sy = 0.1, mean 0.55
	if got := fc.ToPageDist(10); !near(got, 5.5) {
		t.Errorf("ToPageDist(10) = %v, want 5.5", got)
	}
	if got := fc.ToFrameDist(fc.ToPageDist(3)); !near(got, 3) {
		t.Errorf("dist round trip = %v, want 3", got)
	}
}

func TestPageContextIdentity(t *testing.T) {
	fc := PageContext()
	p := Point{3, 4}
	if fc.ToPage(p) != p || fc.ToFrame(p) != p {
		t.Error("page context should be the identity")
	}
}

func TestSegmentDistance(t *testing.T) {
	a, b := Point{0, 0}, Point{10, 0}
	tests := []struct {
		p    Point
		want float64
	}{
		{Point{5, 3}, 3},
		{Point{-4, 3}, 5},
		{Point{13, -4}, 5},
		{Point{10, 0}, 0},
	}
	for _, tt := range tests {
		if got := SegmentDistance(tt.p, a, b); !near(got, tt.want) {
			t.Errorf("SegmentDistance(%+v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestPolylineDistanceBreaksAtHoles(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0}, {HoleFlag, HoleFlag}, {10, 10}, {20, 10}}
	// (10,5) is 5 away from both parts, but would be 0 away from a bridged
	// segment (10,0)-(10,10).
	if got := PolylineDistance(Point{10, 5}, pts); !near(got, 5) {
		t.Errorf("PolylineDistance() = %v, want 5", got)
	}
}

func TestInsidePolygon(t *testing.T) {
	sq := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if !InsidePolygon(Point{5, 5}, sq) {
		t.Error("center should be inside")
	}
	if InsidePolygon(Point{15, 5}, sq) {
		t.Error("outside point reported inside")
	}
	hole := []Point{{3, 3}, {7, 3}, {7, 7}, {3, 7}}
	if InsideComponents(Point{5, 5}, [][]Point{sq, hole}) {
		t.Error("point in hole reported inside")
	}
	if !InsideComponents(Point{1, 1}, [][]Point{sq, hole}) {
		t.Error("point between outer ring and hole reported outside")
	}
}

func TestSplitComponents(t *testing.T) {
	pts := []Point{{0, 0}, {1, 0}, {1, 1}, {HoleFlag, HoleFlag}, {HoleFlag, HoleFlag}, {5, 5}, {6, 5}}
	parts := SplitComponents(pts)
	if len(parts) != 2 || len(parts[0]) != 3 || len(parts[1]) != 2 {
		t.Errorf("SplitComponents() = %v", parts)
	}
}

func TestBoxOutlineRotated(t *testing.T) {
	pts := BoxOutline(Point{0, 0}, 2, 2, 45)
	b := Bounds(pts)
	if !near(b.Xmax, math.Sqrt2) || !near(b.Ymin, -math.Sqrt2) {
		t.Errorf("rotated box bounds = %+v", b)
	}
}

func TestArcOutlineFull(t *testing.T) {
	pts := ArcOutline(Point{10, 10}, 4, 2, 0, 0, 0, ArcOpen)
	b := Bounds(pts)
	if !near(b.Xmin, 6) || !near(b.Xmax, 14) || !near(b.Ymax, 12) {
		t.Errorf("ellipse bounds = %+v", b)
	}
}

func TestArcOutlinePie(t *testing.T) {
	pts := ArcOutline(Point{0, 0}, 1, 1, 0, 90, 0, ArcPie)
	if last := pts[len(pts)-1]; last != (Point{0, 0}) {
		t.Errorf("pie arc should end at the center, got %+v", last)
	}
}

func TestAnchoredBox(t *testing.T) {
	tests := []struct {
		anchor Anchor
		want   Rect
	}{
		{AnchorBottomLeft, Rect{0, -1, 10, 3}},
		{AnchorCenter, Rect{-5, -2, 5, 2}},
		{AnchorTopRight, Rect{-10, -4, 0, 0}},
	}
	for _, tt := range tests {
		b := Bounds(AnchoredBox(Point{0, 0}, 10, 3, 1, tt.anchor, 0))
		if !b.Near(tt.want, 1e-9) {
			t.Errorf("AnchoredBox(anchor %d) = %+v, want %+v", tt.anchor, b, tt.want)
		}
	}
}

func TestRectGrow(t *testing.T) {
	r := Rect{Xmin: 0, Ymin: 0, Xmax: 10, Ymax: 4}
	tests := []struct {
		dx, dy float64
		want   Rect
	}{
		{1, 2, Rect{Xmin: -1, Ymin: -2, Xmax: 11, Ymax: 6}},
		{-1, -1, Rect{Xmin: 1, Ymin: 1, Xmax: 9, Ymax: 3}},
		{0, 0, r},
	}
	for _, tt := range tests {
		if got := r.Grow(tt.dx, tt.dy); got != tt.want {
			t.Errorf("Grow(%v, %v) = %+v, want %+v", tt.dx, tt.dy, got, tt.want)
		}
	}
}
