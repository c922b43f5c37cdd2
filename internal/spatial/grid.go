package spatial

import (
	"math"

	"github.com/gogpu/dlist/geom"
)

// Grid maps each cell of a Layout to the ids of the primitives that touch
// it. The cell after the last regular cell is the overflow cell.
type Grid struct {
	layout *Layout
	cells  [][]int
	count  int
	lastID int
}

// Reset empties the grid.
func (g *Grid) Reset() {
	g.cells = nil
	g.count = 0
	g.lastID = -1
}

// Count returns the number of distinct primitives inserted since the last
// Reset, counting each run of insertions for the same id once.
func (g *Grid) Count() int {
	return g.count
}

func (g *Grid) extraCell() int {
	return g.layout.Cells()
}

func (g *Grid) ensure() {
	if g.cells == nil {
		g.cells = make([][]int, g.layout.Cells()+1)
		g.lastID = -1
	}
}

func (g *Grid) note(id int) {
	if g.count == 0 || id != g.lastID {
		g.count++
		g.lastID = id
	}
}

// add appends id to one cell unless it is already the cell's last entry.
func (g *Grid) add(cell, id int) {
	l := g.cells[cell]
	if n := len(l); n > 0 && l[n-1] == id {
		return
	}
	g.cells[cell] = append(l, id)
}

// AddExtra places id in the overflow cell.
func (g *Grid) AddExtra(id int) {
	g.ensure()
	g.note(id)
	g.add(g.extraCell(), id)
}

// AddSegment indexes the segment a-b for primitive id by sweeping the rows
// and columns it crosses. Segments with a hole endpoint are skipped and
// reported as handled. It returns false, without touching the grid, when
// either endpoint lies outside the grid envelope; the caller then routes the
// whole primitive to the overflow cell.
func (g *Grid) AddSegment(a, b geom.Point, id int) bool {
	if a.IsHole() || b.IsHole() {
		return true
	}
	l := g.layout
	if !l.Inside(a) || !l.Inside(b) {
		return false
	}
	g.ensure()
	g.note(id)

	c1, r1 := l.Col(a.X), l.Row(a.Y)
	c2, r2 := l.Col(b.X), l.Row(b.Y)
	clo, chi := min(c1, c2), max(c1, c2)
	rlo, rhi := min(r1, r2), max(r1, r2)

	switch {
	case r1 == r2:
		for c := clo; c <= chi; c++ {
			g.add(r1*l.Ncol+c, id)
		}
		return true
	case c1 == c2:
		for r := rlo; r <= rhi; r++ {
			g.add(r*l.Ncol+c1, id)
		}
		return true
	}

	dy := b.Y - a.Y
	if math.Abs(dy) < l.Yspace/100 {
		for r := rlo; r <= rhi; r++ {
			for c := clo; c <= chi; c++ {
				g.add(r*l.Ncol+c, id)
			}
		}
		return true
	}

	slope := (b.X - a.X) / dy
	ylo, yhi := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	for r := rlo; r <= rhi; r++ {
		y0 := math.Max(ylo, l.Bounds.Ymin+float64(r)*l.Yspace)
		y1 := math.Min(yhi, l.Bounds.Ymin+float64(r+1)*l.Yspace)
		xa := a.X + (y0-a.Y)*slope
		xb := a.X + (y1-a.Y)*slope
		ca, cb := l.Col(math.Min(xa, xb)), l.Col(math.Max(xa, xb))
		for c := ca; c <= cb; c++ {
			g.add(r*l.Ncol+c, id)
		}
	}
	return true
}

// AddArea indexes primitive id under every cell its bounding box overlaps.
// It returns false, without touching the grid, when the box reaches outside
// the grid envelope or covers more than a tenth of the cells; the caller
// then routes the primitive to the overflow cell.
func (g *Grid) AddArea(box geom.Rect, id int) bool {
	l := g.layout
	if box.IsEmpty() || !l.Bounds.ContainsRect(box) {
		return false
	}
	c1, c2 := l.Col(box.Xmin), l.Col(box.Xmax)
	r1, r2 := l.Row(box.Ymin), l.Row(box.Ymax)
	if float64((c2-c1+1)*(r2-r1+1)) > maxAreaFraction*float64(l.Cells()) {
		return false
	}
	g.ensure()
	g.note(id)
	for r := r1; r <= r2; r++ {
		for c := c1; c <= c2; c++ {
			g.add(r*l.Ncol+c, id)
		}
	}
	return true
}

// Collect appends to out every id found in the cells overlapping query,
// expanded by a twentieth of a cell, followed by every id in the overflow
// cell. Each id is appended at most once per seen generation. The boolean
// result is false when the grid is empty, in which case the caller must
// fall back to scanning the full primitive store.
func (g *Grid) Collect(query geom.Rect, seen *Visited, out []int) ([]int, bool) {
	if g.count == 0 || g.cells == nil {
		return out, false
	}
	l := g.layout
	q := geom.R(query.Xmin, query.Ymin, query.Xmax, query.Ymax).Grow(l.Xspace/20, l.Yspace/20)
	if q.Intersects(l.Bounds) {
		c1, c2 := l.Col(q.Xmin), l.Col(q.Xmax)
		r1, r2 := l.Row(q.Ymin), l.Row(q.Ymax)
		for r := r1; r <= r2; r++ {
			for c := c1; c <= c2; c++ {
				for _, id := range g.cells[r*l.Ncol+c] {
					if seen.Visit(id) {
						out = append(out, id)
					}
				}
			}
		}
	}
	for _, id := range g.cells[g.extraCell()] {
		if seen.Visit(id) {
			out = append(out, id)
		}
	}
	return out, true
}

// CellIDs returns the ids stored in one regular cell.
func (g *Grid) CellIDs(col, row int) []int {
	if g.cells == nil {
		return nil
	}
	return g.cells[row*g.layout.Ncol+col]
}

// ExtraIDs returns the ids stored in the overflow cell.
func (g *Grid) ExtraIDs() []int {
	if g.cells == nil {
		return nil
	}
	return g.cells[g.extraCell()]
}
