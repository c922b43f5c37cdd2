package demo

import (
	"testing"

	"github.com/gogpu/dlist"
	"github.com/gogpu/dlist/draw/record"
	"github.com/gogpu/dlist/text"
)

func TestBuild(t *testing.T) {
	rec := record.New()
	dl := dlist.New(dlist.WithDrawService(rec), dlist.WithMetrics(text.Approx{}))
	if err := Build(dl); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := dl.Frames(); got != 2 {
		t.Fatalf("Frames() = %d, want 2", got)
	}
	if got := dl.Count(dlist.KindSymbol); got != len(Wells) {
		t.Errorf("Count(KindSymbol) = %d, want %d", got, len(Wells))
	}
	if err := dl.Draw(); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if dl.Count(dlist.KindContour) == 0 {
		t.Error("surface produced no contours")
	}
	if rec.Count(record.CmdSymbol) != len(Wells) {
		t.Errorf("drew %d symbols, want %d", rec.Count(record.CmdSymbol), len(Wells))
	}

	m, _ := dl.FrameByName(MapFrame)
	p, _ := dl.FrameByName(ProfileFrame)
	if p.PageRect().Ymax > m.PageRect().Ymin {
		t.Errorf("profile %+v not below map %+v", p.PageRect(), m.PageRect())
	}
	if !dl.Page().ContainsRect(m.PageRect()) {
		t.Errorf("page %+v does not hold the map %+v", dl.Page(), m.PageRect())
	}
}

func TestWellsPickable(t *testing.T) {
	dl := dlist.New(dlist.WithMetrics(text.Approx{}))
	if err := Build(dl); err != nil {
		t.Fatal(err)
	}
	if err := dl.Draw(); err != nil {
		t.Fatal(err)
	}
	m, _ := dl.FrameByName(MapFrame)
	for i, w := range Wells {
		px, py, err := dl.FrameToPage(m.Num(), w.X, w.Y)
		if err != nil {
			t.Fatal(err)
		}
		if got := dl.GetFrameObject(m.Num(), px, py); got != i+1 {
			t.Errorf("GetFrameObject(%s) = %d, want %d", w.Name, got, i+1)
		}
	}
}
