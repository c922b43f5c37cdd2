package dlist

import (
	"log/slog"

	"github.com/gogpu/dlist/geom"
	"github.com/gogpu/dlist/internal/spatial"
)

// patchPurpose selects the visited set a patch query marks. Redraw and
// pick queries keep separate sets so one never disturbs the other.
type patchPurpose int

const (
	patchDraw patchPurpose = iota
	patchPick
)

// patchDrawFraction is the share of the index extent below which a frame
// draws only the patches of its visible window.
const patchDrawFraction = 0.25

// populatePatches returns the ids of the kind k primitives of frame f
// whose index cells overlap r, plus everything in the overflow cell, each
// once. The boolean result is false when the frame has no usable index for
// the kind; the caller must then walk the whole store.
func (dl *DisplayList) populatePatches(f *Frame, k Kind, r geom.Rect, purpose patchPurpose) ([]int, bool) {
	gk, ok := gridKind(k)
	if !ok || f == nil || f.index == nil {
		return nil, false
	}
	if f.indexDirty {
		dl.rebuildIndex(f)
	}
	seen := &dl.patchSeen
	if purpose == patchPick {
		seen = &dl.pickSeen
	}
	n := dl.stores[k].slots()
	if gk == spatial.Contours {
		n = 2*max(dl.contours.slots(), dl.contourLines.slots()) + 2
	}
	seen.Begin(n)

	keys, ok := f.index.Grid(gk).Collect(r, seen, dl.idBuf[:0])
	dl.idBuf = keys[:0]
	if !ok {
		return nil, false
	}
	ids := make([]int, 0, len(keys))
	for _, key := range keys {
		switch k {
		case KindContour:
			if key%2 == 0 {
				ids = append(ids, key/2)
			}
		case KindContourLine:
			if key%2 == 1 {
				ids = append(ids, key/2)
			}
		default:
			ids = append(ids, key)
		}
	}
	return ids, true
}

// updatePatchDraw decides whether frame f redraws by patches: only when
// its visible window covers less than a quarter of its index extent.
func (dl *DisplayList) updatePatchDraw(f *Frame) {
	was := f.patchDraw
	f.patchDraw = false
	if f.index != nil {
		l := f.index.Layout()
		f.patchDraw = f.view.Area() < patchDrawFraction*l.Bounds.Area()
	}
	if was != f.patchDraw {
		Logger().Debug("dlist: patch drawing", slog.String("frame", f.spec.Name), slog.Bool("enabled", f.patchDraw))
	}
}
