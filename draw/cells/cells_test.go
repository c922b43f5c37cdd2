package cells

import (
	"image/color"
	"strings"
	"testing"

	"github.com/gogpu/dlist/draw"
	"github.com/gogpu/dlist/geom"
)

var ink = color.RGBA{R: 200, G: 200, B: 200, A: 255}

// newService maps a 20 by 10 page onto a 20 by 5 grid: one page unit per
// column and per half-cell.
func newService(t *testing.T) *Service {
	t.Helper()
	s := New(20, 5)
	if err := s.InitDrawing(draw.Setup{Page: geom.Rect{Xmax: 20, Ymax: 10}}); err != nil {
		t.Fatalf("InitDrawing() error = %v", err)
	}
	return s
}

func TestClipLineHorizontal(t *testing.T) {
	s := newService(t)
	s.ClipLine([]geom.Point{{X: 2, Y: 5}, {X: 10, Y: 5}}, draw.LineStyle{Color: ink})
	row := s.Lines()[2]
	if !strings.Contains(row, "--------") {
		t.Errorf("row 2 = %q, want a dash run", row)
	}
}

func TestClipLineVertical(t *testing.T) {
	s := newService(t)
	s.ClipLine([]geom.Point{{X: 4.5, Y: 0.5}, {X: 4.5, Y: 9.5}}, draw.LineStyle{Color: ink})
	for y := range 5 {
		if r := s.At(4, y).Rune; r != '|' {
			t.Errorf("At(4,%d) = %q, want '|'", y, r)
		}
	}
}

func TestClipFillAndPriority(t *testing.T) {
	s := newService(t)
	sq := []geom.Point{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 10}, {X: 0, Y: 10}}
	s.SetPriority(draw.PriorityGlyph)
	s.ClipSymbol(geom.Pt(10.5, 5), draw.SymbolStyle{Color: ink, Symbol: draw.SymbolPlus})
	s.SetPriority(draw.PriorityDefault)
	s.ClipFill([][]geom.Point{sq}, draw.FillStyle{Color: ink})

	if r := s.At(0, 0).Rune; r != '░' {
		t.Errorf("At(0,0) = %q, want fill", r)
	}
	if r := s.At(10, 2).Rune; r != '+' {
		t.Errorf("higher priority symbol overwritten, got %q", r)
	}
}

func TestClipText(t *testing.T) {
	s := newService(t)
	s.ClipText(geom.Pt(5, 5), "abc", draw.TextStyle{Color: ink, Anchor: geom.AnchorCenter})
	if !strings.Contains(s.String(), "abc") {
		t.Errorf("grid = %q, want abc", s.String())
	}
}

func TestSelectedAndAlpha(t *testing.T) {
	s := newService(t)
	s.SetSelected(true)
	s.ClipSymbol(geom.Pt(1.5, 1), draw.SymbolStyle{Color: ink})
	if c := s.At(1, 4); c.Rune != 'o' || !c.Selected {
		t.Errorf("At(1,4) = %+v, want selected circle", c)
	}
	s.SetAlpha(0)
	s.ClipSymbol(geom.Pt(3.5, 1), draw.SymbolStyle{Color: ink})
	if r := s.At(3, 4).Rune; r != ' ' {
		t.Errorf("zero alpha symbol drawn as %q", r)
	}
}

func TestClipImage(t *testing.T) {
	s := newService(t)
	pix := []uint8{255, 0, 0, 255}
	s.ClipImage(draw.Image{Rect: geom.Rect{Xmin: 0, Ymin: 0, Xmax: 4, Ymax: 4}, Cols: 1, Rows: 1, Pixels: pix})
	c := s.At(0, 4)
	if c.Rune != '█' || c.Color.R != 255 {
		t.Errorf("At(0,4) = %+v, want red block", c)
	}
}

func TestCellAt(t *testing.T) {
	s := newService(t)
	p := s.CellAt(3, 0)
	if p.X != 3.5 || p.Y != 9 {
		t.Errorf("CellAt(3,0) = %+v, want (3.5,9)", p)
	}
}
