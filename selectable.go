package dlist

import (
	"fmt"
	"maps"
	"slices"

	"github.com/gogpu/dlist/draw"
	"github.com/gogpu/dlist/geom"
	"github.com/gogpu/dlist/sink"
)

// selectable is a pickable object made of any number of primitives.
type selectable struct {
	num      int
	selected bool
	owned    []primRef
}

func (s *selectable) drop(ref primRef) {
	s.owned = deleteRef(s.owned, ref)
}

func deleteRef(refs []primRef, ref primRef) []primRef {
	return slices.DeleteFunc(refs, func(r primRef) bool { return r == ref })
}

func (dl *DisplayList) ensureSelectable(num int) *selectable {
	s, ok := dl.selectables[num]
	if !ok {
		s = &selectable{num: num}
		dl.selectables[num] = s
	}
	return s
}

func (dl *DisplayList) isSelected(num int) bool {
	s, ok := dl.selectables[num]
	return ok && s.selected
}

// CreateSelectable creates selectable object num if it does not exist.
func (dl *DisplayList) CreateSelectable(num int) error {
	if num < 0 {
		return fmt.Errorf("%w: selectable %d", ErrInvalidArgument, num)
	}
	dl.ensureSelectable(num)
	return nil
}

// SetSelectableNum makes num the selectable object new primitives belong
// to. A negative num adds primitives that belong to no object.
func (dl *DisplayList) SetSelectableNum(num int) {
	if num < 0 {
		dl.selectable = -1
		return
	}
	dl.ensureSelectable(num)
	dl.selectable = num
}

// SelectableNum returns the current selectable object number, or -1.
func (dl *DisplayList) SelectableNum() int {
	return dl.selectable
}

// SetSelectableState selects or unselects object num and republishes the
// selection to the sink.
func (dl *DisplayList) SetSelectableState(num int, selected bool) error {
	s, ok := dl.selectables[num]
	if !ok {
		return fmt.Errorf("%w: no selectable %d", ErrInvalidArgument, num)
	}
	s.selected = selected
	dl.returnSelected()
	return nil
}

// Selected reports whether object num is selected.
func (dl *DisplayList) Selected(num int) bool {
	return dl.isSelected(num)
}

// SelectedNums returns the selected object numbers in increasing order.
func (dl *DisplayList) SelectedNums() []int {
	var nums []int
	for _, num := range slices.Sorted(maps.Keys(dl.selectables)) {
		if dl.selectables[num].selected {
			nums = append(nums, num)
		}
	}
	return nums
}

// UnselectAll clears every selection.
func (dl *DisplayList) UnselectAll() {
	for _, s := range dl.selectables {
		s.selected = false
	}
	dl.returnSelected()
}

// DeleteSelected deletes every primitive of every selected object. The
// objects themselves stay, empty and unselected.
func (dl *DisplayList) DeleteSelected() {
	for _, num := range dl.SelectedNums() {
		s := dl.selectables[num]
		for _, ref := range slices.Clone(s.owned) {
			dl.deletePrim(ref.kind, ref.id)
		}
		s.selected = false
	}
	dl.flushIndexes()
	dl.returnSelected()
}

// HideSelected hides every primitive of every selected object until
// UnhideAll.
func (dl *DisplayList) HideSelected() {
	for _, num := range dl.SelectedNums() {
		s := dl.selectables[num]
		for _, ref := range s.owned {
			h := dl.header(ref.kind, ref.id)
			if h == nil || h.Deleted || h.Hidden {
				continue
			}
			h.Hidden = true
			dl.hidden = append(dl.hidden, ref)
		}
		s.selected = false
	}
	dl.returnSelected()
}

// UnhideAll shows every primitive hidden by HideSelected.
func (dl *DisplayList) UnhideAll() {
	for _, ref := range dl.hidden {
		if h := dl.header(ref.kind, ref.id); h != nil && !h.Deleted {
			h.Hidden = false
		}
	}
	dl.hidden = nil
}

// EraseSelectableNum deletes every primitive of object num and the object
// itself.
func (dl *DisplayList) EraseSelectableNum(num int) error {
	s, ok := dl.selectables[num]
	if !ok {
		return fmt.Errorf("%w: no selectable %d", ErrInvalidArgument, num)
	}
	for _, ref := range slices.Clone(s.owned) {
		dl.deletePrim(ref.kind, ref.id)
	}
	delete(dl.selectables, num)
	if dl.selectable == num {
		dl.selectable = -1
	}
	dl.flushIndexes()
	if s.selected {
		dl.returnSelected()
	}
	return nil
}

// returnSelected republishes every visible primitive of every selected
// object to the sink, in page space.
func (dl *DisplayList) returnSelected() {
	dl.sink.ClearSelected()
	frame := -2
	for _, num := range dl.SelectedNums() {
		for _, ref := range dl.selectables[num].owned {
			h := dl.header(ref.kind, ref.id)
			if h == nil || !h.drawable() {
				continue
			}
			if h.Frame != frame {
				frame = h.Frame
				name, page := "", dl.page
				if f, err := dl.frame(frame); err == nil {
					name, page = f.spec.Name, f.page
				}
				dl.sink.SetFrame(name, frame, page)
			}
			dl.sink.SetAlpha(h.Alpha)
			dl.sink.SetPriority(draw.PriorityDefault)
			dl.appendToSink(ref, h)
		}
	}
}

func (dl *DisplayList) tags(ref primRef, h *Header) sink.Tags {
	t := sink.Tags{
		Kind:       ref.kind.String(),
		ID:         ref.id,
		Layer:      dl.layerName(h.Layer),
		Item:       dl.itemName(h.Item),
		Selectable: h.Selectable,
	}
	if f, err := dl.frame(h.Frame); err == nil {
		t.Frame = f.spec.Name
	}
	return t
}

func (dl *DisplayList) appendToSink(ref primRef, h *Header) {
	ctx := dl.context(h.Frame)
	t := dl.tags(ref, h)
	switch ref.kind {
	case KindLine:
		p := dl.lines.at(ref.id)
		dl.sink.AppendLine(t, ctx.PageCopy(p.Points), p.Style)
	case KindFill:
		p := dl.fills.at(ref.id)
		dl.sink.AppendFill(t, geom.SplitComponents(ctx.PageCopy(p.Points)), p.Style)
	case KindText:
		p := dl.texts.at(ref.id)
		dl.sink.AppendText(t, ctx.ToPage(p.Ref).Add(p.Offset), p.Text, p.Style)
	case KindSymbol:
		p := dl.symbols.at(ref.id)
		dl.sink.AppendSymbol(t, ctx.ToPage(p.Pos), p.Style)
	case KindShape:
		p := dl.shapes.at(ref.id)
		dl.sink.AppendShape(t, shapeOutline(p, ctx), p.Style)
	case KindImage:
		dl.sink.AppendImage(t, pageImage(dl.images.at(ref.id), ctx))
	case KindAxis:
		p := dl.axes.at(ref.id)
		dl.sink.AppendLine(t, ctx.PageCopy([]geom.Point{p.From, p.To}), dl.axisLineStyle(p.Spec))
	case KindContourLine:
		p := dl.contourLines.at(ref.id)
		dl.sink.AppendLine(t, ctx.PageCopy(p.Points), p.Style)
	case KindContour:
		p := dl.contours.at(ref.id)
		dl.sink.AppendLine(t, ctx.PageCopy(p.Points), p.Style)
	}
}
