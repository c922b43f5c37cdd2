package dlist

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/dlist/geom"
	"github.com/gogpu/dlist/internal/spatial"
)

// Aspect selects how a frame reconciles its frame-space and page-space
// shapes.
type Aspect int

const (
	// AspectIndependent lets x and y scale independently.
	AspectIndependent Aspect = iota
	// AspectLocked keeps one frame unit the same page length in x and y.
	AspectLocked
	// AspectFitWindow resizes the frame's page placement to follow the
	// window aspect ratio.
	AspectFitWindow
)

// Attach places a frame next to another one. The first word names the
// side of the target the frame sits on; the second aligns the frame with
// the minimum, middle or maximum of the target along that side.
type Attach int

const (
	AttachNone Attach = iota
	AttachLeftMin
	AttachLeftMid
	AttachLeftMax
	AttachRightMin
	AttachRightMid
	AttachRightMax
	AttachTopMin
	AttachTopMid
	AttachTopMax
	AttachBottomMin
	AttachBottomMid
	AttachBottomMax
)

// Side names one edge of a frame.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideBottom
	SideTop

	numSides
)

var sideNames = [...]string{
	SideLeft:   "left",
	SideRight:  "right",
	SideBottom: "bottom",
	SideTop:    "top",
}

// String returns the side name.
func (s Side) String() string {
	if s >= 0 && int(s) < len(sideNames) {
		return sideNames[s]
	}
	return "unknown"
}

// side returns which side of the target an attachment sits on.
func (a Attach) side() Side {
	switch {
	case a >= AttachLeftMin && a <= AttachLeftMax:
		return SideLeft
	case a >= AttachRightMin && a <= AttachRightMax:
		return SideRight
	case a >= AttachTopMin && a <= AttachTopMax:
		return SideTop
	}
	return SideBottom
}

// align returns 0, 1 or 2 for min, mid or max alignment.
func (a Attach) align() int {
	if a == AttachNone {
		return 0
	}
	return int(a-AttachLeftMin) % 3
}

// FrameSpec describes a new frame.
type FrameSpec struct {
	Name string
	// Rescaleable frames can be zoomed and panned and get a fine spatial
	// index.
	Rescaleable bool
	Aspect      Aspect
	// Limits is the defined frame-space extent, restored by ZoomExtents.
	Limits geom.Rect
	// View is the frame-space rectangle shown initially. A degenerate View
	// shows Limits.
	View geom.Rect
	// Page is the home page-space placement.
	Page geom.Rect
	// Border draws the frame outline with tick marks and labels.
	Border bool

	AttachTo            string
	Attach              Attach
	ScaleWidthToAttach  bool
	ScaleHeightToAttach bool
	// Gap is extra page-space distance between the frame and its target.
	Gap float64
	// Move shifts the frame along the attachment side, in page units.
	Move float64
}

type margins struct {
	left, right, bottom, top float64
}

func (m margins) grow(r geom.Rect) geom.Rect {
	return geom.Rect{Xmin: r.Xmin - m.left, Ymin: r.Ymin - m.bottom, Xmax: r.Xmax + m.right, Ymax: r.Ymax + m.top}
}

// Frame is a named viewport mapping a frame-space rectangle onto a page
// rectangle.
type Frame struct {
	num  int
	spec FrameSpec

	view geom.Rect
	page geom.Rect
	home geom.Rect

	margins margins
	axes    [numSides]AxisSpec

	index      *spatial.Index
	indexDirty bool
	patchDraw  bool

	// Border primitives live with the frame, in page space, outside the
	// primitive stores.
	borderLines []Line
	borderTexts []Text

	placed         bool
	rescaleNeeded  bool
	reborderNeeded bool
}

// Num returns the frame number.
func (f *Frame) Num() int { return f.num }

// Name returns the frame name.
func (f *Frame) Name() string { return f.spec.Name }

// View returns the frame-space rectangle currently shown.
func (f *Frame) View() geom.Rect { return f.view }

// PageRect returns the page-space placement computed by the last layout.
func (f *Frame) PageRect() geom.Rect { return f.page }

// Limits returns the defined frame-space extent.
func (f *Frame) Limits() geom.Rect { return f.spec.Limits }

// Context returns the transform between the frame and the page.
func (f *Frame) Context() geom.FrameContext {
	return geom.FrameContext{Num: f.num, F: f.view, P: f.page}
}

// homeContext maps the defined extent onto the home placement. Fixed-size
// primitives use it to size their frame-space bounding boxes.
func (f *Frame) homeContext() geom.FrameContext {
	return geom.FrameContext{Num: f.num, F: f.spec.Limits, P: f.home}
}

func normalize(r geom.Rect) geom.Rect {
	return geom.R(r.Xmin, r.Ymin, r.Xmax, r.Ymax)
}

func hasArea(r geom.Rect) bool {
	return r.Width() > 0 && r.Height() > 0
}

// CreateFrame adds a frame and returns its number. The frame is laid out
// on the next Draw.
func (dl *DisplayList) CreateFrame(spec FrameSpec) (int, error) {
	if spec.Name == "" {
		return -1, fmt.Errorf("%w: frame needs a name", ErrInvalidArgument)
	}
	if _, ok := dl.frameByName(spec.Name); ok {
		return -1, fmt.Errorf("%w: %q", ErrFrameExists, spec.Name)
	}
	spec.Limits = normalize(spec.Limits)
	spec.Page = normalize(spec.Page)
	if !hasArea(spec.Limits) || !hasArea(spec.Page) {
		return -1, fmt.Errorf("%w: frame %q needs a non-empty extent and page", ErrInvalidArgument, spec.Name)
	}
	spec.View = normalize(spec.View)
	if !hasArea(spec.View) {
		spec.View = spec.Limits
	}

	f := &Frame{
		num:  len(dl.frames),
		spec: spec,
		view: spec.View,
		page: spec.Page,
		home: spec.Page,
	}
	f.axes = defaultFrameAxes()
	dl.frames = append(dl.frames, f)
	dl.forceAspect(f, false)
	f.rescaleNeeded = true
	f.reborderNeeded = true
	dl.layoutNeeded = true

	if _, err := dl.setupSpatialIndexForFrame(f.num); err != nil {
		Logger().Debug("dlist: frame not indexed", slog.String("frame", spec.Name), slog.Any("reason", err))
	}
	Logger().Info("dlist: frame created",
		slog.String("frame", spec.Name), slog.Int("num", f.num),
		slog.Any("limits", spec.Limits), slog.Any("page", spec.Page))
	return f.num, nil
}

// SetFrame makes the named frame current. New primitives are added to it.
func (dl *DisplayList) SetFrame(name string) error {
	f, ok := dl.frameByName(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoFrame, name)
	}
	dl.current = f.num
	return nil
}

// SetFrameNum makes frame num current. A negative num selects page space.
func (dl *DisplayList) SetFrameNum(num int) error {
	if num < 0 {
		dl.current = -1
		return nil
	}
	if _, err := dl.frame(num); err != nil {
		return err
	}
	dl.current = num
	return nil
}

// UnsetFrame makes page space current.
func (dl *DisplayList) UnsetFrame() {
	dl.current = -1
}

// FrameNum returns the current frame number, or -1 for page space.
func (dl *DisplayList) FrameNum() int {
	return dl.current
}

// Frame returns frame num.
func (dl *DisplayList) Frame(num int) (*Frame, bool) {
	f, err := dl.frame(num)
	return f, err == nil
}

// FrameByName returns the named frame.
func (dl *DisplayList) FrameByName(name string) (*Frame, bool) {
	return dl.frameByName(name)
}

// Frames returns the number of frames.
func (dl *DisplayList) Frames() int {
	return len(dl.frames)
}

func (dl *DisplayList) frame(num int) (*Frame, error) {
	if num < 0 || num >= len(dl.frames) {
		return nil, fmt.Errorf("%w: %d", ErrNoFrame, num)
	}
	return dl.frames[num], nil
}

func (dl *DisplayList) frameByName(name string) (*Frame, bool) {
	for _, f := range dl.frames {
		if f.spec.Name == name {
			return f, true
		}
	}
	return nil, false
}

// context returns the transform for frame num, or the page identity.
func (dl *DisplayList) context(num int) geom.FrameContext {
	if f, err := dl.frame(num); err == nil {
		return f.Context()
	}
	return geom.PageContext()
}

// SetFrameAxisValues replaces the border axis settings of one side of the
// named frame.
func (dl *DisplayList) SetFrameAxisValues(name string, side Side, spec AxisSpec) error {
	f, ok := dl.frameByName(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoFrame, name)
	}
	if side < 0 || side >= numSides {
		return fmt.Errorf("%w: side %d", ErrInvalidArgument, side)
	}
	f.axes[side] = spec
	f.reborderNeeded = true
	dl.layoutNeeded = true
	return nil
}

// ClearFrame deletes every user primitive of frame num and rebuilds its
// index. Border and surface primitives stay.
func (dl *DisplayList) ClearFrame(num int) error {
	f, err := dl.frame(num)
	if err != nil {
		return err
	}
	for k := range numKinds {
		s := dl.stores[k]
		for id := range s.slots() {
			h := s.header(id)
			if h.Deleted || h.Frame != f.num || h.Surface >= 0 {
				continue
			}
			dl.deletePrim(k, id)
		}
	}
	dl.flushIndexes()
	return nil
}
