package dlist

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/dlist/geom"
	"github.com/gogpu/dlist/internal/spatial"
)

// gridKind maps a primitive kind onto the grid that indexes it. Contours
// and contour lines share the contour grid; images and axes are not
// indexed.
func gridKind(k Kind) (spatial.Kind, bool) {
	switch k {
	case KindLine:
		return spatial.Lines, true
	case KindFill:
		return spatial.Fills, true
	case KindText:
		return spatial.Texts, true
	case KindSymbol:
		return spatial.Symbols, true
	case KindShape:
		return spatial.Shapes, true
	case KindContour, KindContourLine:
		return spatial.Contours, true
	}
	return 0, false
}

// gridKey returns the id stored in a grid for a primitive. Contours take
// the even keys of the shared contour grid and contour lines the odd ones.
func gridKey(k Kind, id int) int {
	switch k {
	case KindContour:
		return id * 2
	case KindContourLine:
		return id*2 + 1
	}
	return id
}

// setupSpatialIndexForFrame returns frame num's index, creating it on
// first use and rebuilding it if deletions left it stale. Frames that do
// not keep an independent aspect ratio are never indexed.
func (dl *DisplayList) setupSpatialIndexForFrame(num int) (*spatial.Index, error) {
	f, err := dl.frame(num)
	if err != nil {
		return nil, err
	}
	if f.spec.Aspect != AspectIndependent {
		return nil, fmt.Errorf("%w: frame %q has a constrained aspect", ErrNotIndexed, f.spec.Name)
	}
	if f.index == nil {
		target := spatial.FixedCells
		if f.spec.Rescaleable {
			target = spatial.RescaleableCells
		}
		f.index = spatial.New(f.spec.Limits, target)
		if f.index == nil {
			return nil, fmt.Errorf("%w: frame %q has no extent", ErrNotIndexed, f.spec.Name)
		}
		f.indexDirty = true
	}
	if f.indexDirty {
		dl.rebuildIndex(f)
	}
	return f.index, nil
}

// rebuildIndex clears frame f's grids and reinserts every scaleable user
// primitive of the frame.
func (dl *DisplayList) rebuildIndex(f *Frame) {
	f.index.Clear()
	f.indexDirty = false
	n := 0
	for k := range numKinds {
		if _, ok := gridKind(k); !ok {
			continue
		}
		s := dl.stores[k]
		for id := range s.slots() {
			h := s.header(id)
			if h.Deleted || h.Frame != f.num || !h.Scaleable {
				continue
			}
			h.InExtra = false
			dl.indexPrim(f.index, k, id)
			n++
		}
	}
	Logger().Debug("dlist: index rebuilt", slog.String("frame", f.spec.Name), slog.Int("primitives", n))
}

// indexPrim inserts one primitive. Polylines are inserted segment by
// segment; everything else by bounding box. Primitives that do not fit go
// to the overflow cell once.
func (dl *DisplayList) indexPrim(ix *spatial.Index, k Kind, id int) {
	gk, ok := gridKind(k)
	if !ok {
		return
	}
	g := ix.Grid(gk)
	key := gridKey(k, id)
	h := dl.header(k, id)
	if h.InExtra {
		return
	}

	switch k {
	case KindLine:
		indexVector(g, key, h, dl.lines.at(id).Points)
	case KindContour:
		indexVector(g, key, h, dl.contours.at(id).Points)
	case KindContourLine:
		indexVector(g, key, h, dl.contourLines.at(id).Points)
	default:
		if !g.AddArea(h.Bounds, key) {
			g.AddExtra(key)
			h.InExtra = true
		}
	}
}

func indexVector(g *spatial.Grid, key int, h *Header, pts []geom.Point) {
	for i := 1; i < len(pts); i++ {
		if !g.AddSegment(pts[i-1], pts[i], key) {
			g.AddExtra(key)
			h.InExtra = true
			return
		}
	}
}

// flushIndexes rebuilds every index left stale by deletions. It runs
// before any deleting operation returns, so a freed slot id is gone from
// every grid before it can be handed out again.
func (dl *DisplayList) flushIndexes() {
	for _, f := range dl.frames {
		if f.index != nil && f.indexDirty {
			dl.rebuildIndex(f)
		}
	}
}
