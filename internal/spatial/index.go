// Package spatial implements the per-frame uniform grid index used to
// restrict redraw and picking to the primitives near a region.
//
// Each frame owns one Index. An Index holds one Grid per indexable
// primitive kind, all sharing the same cell layout. Every grid also has an
// overflow cell that collects primitives which cannot be cheaply confined
// to a small block of cells: those that reach outside the grid envelope and
// area primitives whose bounding box covers more than a tenth of the grid.
// Every query scans the overflow cell in full.
//
// Grids store integer primitive slot ids, never pointers, so the primitive
// stores can grow and recycle slots freely. The owner must rebuild a grid
// before a deleted slot id is handed out again.
package spatial

import (
	"math"

	"github.com/gogpu/dlist/geom"
)

// Kind identifies one of the indexed primitive kinds.
type Kind int

const (
	Lines Kind = iota
	Fills
	Texts
	Symbols
	Shapes
	Contours

	NumKinds
)

var kindNames = [...]string{
	Lines:    "lines",
	Fills:    "fills",
	Texts:    "texts",
	Symbols:  "symbols",
	Shapes:   "shapes",
	Contours: "contours",
}

// String returns the kind name.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Cell targets for newly created frames.
const (
	RescaleableCells = 2500
	FixedCells       = 100
)

// padFraction is the outward padding applied on every side of the frame
// extent so slight geometry overshoot stays inside the grid.
const padFraction = 0.05

// maxAreaFraction is the largest share of the grid an area primitive's
// bounding box may cover before it is routed to the overflow cell.
const maxAreaFraction = 0.1

// Layout is the cell geometry shared by all grids of one frame.
type Layout struct {
	// Bounds is the padded envelope covered by the cells.
	Bounds geom.Rect
	Ncol   int
	Nrow   int
	Xspace float64
	Yspace float64
}

// NewLayout derives a grid layout for a frame-space extent. The column and
// row counts follow the extent's aspect ratio, are even and at least two,
// and multiply out to roughly target cells. It returns false when the
// extent has no area.
func NewLayout(extent geom.Rect, target int) (Layout, bool) {
	extent = geom.R(extent.Xmin, extent.Ymin, extent.Xmax, extent.Ymax)
	w, h := extent.Width(), extent.Height()
	if !(w > 0) || !(h > 0) || math.IsInf(w, 0) || math.IsInf(h, 0) || target < 4 {
		return Layout{}, false
	}
	bounds := extent.Grow(w*padFraction, h*padFraction)
	aspect := h / w

	ncol := evenClamp(math.Sqrt(float64(target)/aspect), target/2)
	nrow := evenClamp(float64(target)/float64(ncol), target/2)

	return Layout{
		Bounds: bounds,
		Ncol:   ncol,
		Nrow:   nrow,
		Xspace: bounds.Width() / float64(ncol),
		Yspace: bounds.Height() / float64(nrow),
	}, true
}

func evenClamp(v float64, hi int) int {
	n := int(v + 0.5)
	if n%2 == 1 {
		n++
	}
	if hi%2 == 1 {
		hi--
	}
	return max(2, min(n, max(2, hi)))
}

// Cells returns the number of regular cells (the overflow cell excluded).
func (l *Layout) Cells() int {
	return l.Ncol * l.Nrow
}

// Col returns the column holding x, clamped to the grid.
func (l *Layout) Col(x float64) int {
	c := int(math.Floor((x - l.Bounds.Xmin) / l.Xspace))
	return max(0, min(c, l.Ncol-1))
}

// Row returns the row holding y, clamped to the grid.
func (l *Layout) Row(y float64) int {
	r := int(math.Floor((y - l.Bounds.Ymin) / l.Yspace))
	return max(0, min(r, l.Nrow-1))
}

// Inside reports whether p lies within the grid envelope.
func (l *Layout) Inside(p geom.Point) bool {
	return l.Bounds.Contains(p)
}

// CellRect returns the frame-space rectangle covered by one cell.
func (l *Layout) CellRect(col, row int) geom.Rect {
	x := l.Bounds.Xmin + float64(col)*l.Xspace
	y := l.Bounds.Ymin + float64(row)*l.Yspace
	return geom.Rect{Xmin: x, Ymin: y, Xmax: x + l.Xspace, Ymax: y + l.Yspace}
}

// Index bundles the per-kind grids of one frame.
type Index struct {
	layout Layout
	grids  [NumKinds]Grid
}

// New creates an empty index for a frame-space extent, or returns nil when
// the extent cannot be indexed.
func New(extent geom.Rect, target int) *Index {
	l, ok := NewLayout(extent, target)
	if !ok {
		return nil
	}
	ix := &Index{layout: l}
	for k := range ix.grids {
		ix.grids[k].layout = &ix.layout
	}
	return ix
}

// Layout returns the cell geometry of the index.
func (ix *Index) Layout() Layout {
	return ix.layout
}

// Grid returns the grid for one kind.
func (ix *Index) Grid(k Kind) *Grid {
	return &ix.grids[k]
}

// Clear empties every grid while keeping the layout.
func (ix *Index) Clear() {
	for k := range ix.grids {
		ix.grids[k].Reset()
	}
}

// Count returns the number of primitives indexed for one kind.
func (ix *Index) Count(k Kind) int {
	return ix.grids[k].count
}
