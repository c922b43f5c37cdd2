package dlist

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/dlist/draw"
	"github.com/gogpu/dlist/geom"
	"github.com/gogpu/dlist/surface"
)

// nodeSymbolSize is the size, in inches, of the marker drawn at each grid
// node.
const nodeSymbolSize = 0.04

type surfaceEntry struct {
	grid  *surface.Grid
	frame int
	layer int
	item  int
	state GraphicState
	name  string
	opts  surface.Options
	dirty bool
}

// AddGrid adds a gridded surface to the current frame and returns its
// number. Its contours, edges and faults are generated at the next Draw
// and regenerated whenever its properties change. Generated primitives use
// the layer, item and graphic state current at the time of this call and
// belong to no selectable object.
func (dl *DisplayList) AddGrid(name string, spec surface.GridSpec) (int, error) {
	g, err := surface.NewGrid(spec)
	if err != nil {
		return -1, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if len(dl.bands) > 0 {
		g.SetColorBands(dl.bands)
	}
	num := len(dl.surfaces)
	dl.surfaces = append(dl.surfaces, &surfaceEntry{
		grid:  g,
		frame: dl.current,
		layer: dl.layer,
		item:  dl.item,
		state: dl.GraphicState(),
		name:  name,
		opts:  surface.DefaultOptions,
		dirty: true,
	})
	Logger().Info("dlist: surface added",
		slog.String("surface", name),
		slog.Int("num", num),
		slog.Int("cols", spec.Cols),
		slog.Int("rows", spec.Rows))
	return num, nil
}

func (dl *DisplayList) surfaceByNum(num int) (*surfaceEntry, error) {
	if num < 0 || num >= len(dl.surfaces) {
		return nil, fmt.Errorf("%w: %d", ErrNoSurface, num)
	}
	return dl.surfaces[num], nil
}

// SetContourProperties replaces the contour settings of surface num.
func (dl *DisplayList) SetContourProperties(num int, p surface.ContourProperties) error {
	e, err := dl.surfaceByNum(num)
	if err != nil {
		return err
	}
	e.grid.SetContourProperties(p)
	e.dirty = true
	return nil
}

// SetFaultLines replaces the fault polylines of surface num.
func (dl *DisplayList) SetFaultLines(num int, lines [][]geom.Point) error {
	e, err := dl.surfaceByNum(num)
	if err != nil {
		return err
	}
	e.grid.SetFaultLines(lines)
	e.dirty = true
	return nil
}

// SetSurfaceOptions selects what surface num generates.
func (dl *DisplayList) SetSurfaceOptions(num int, opts surface.Options) error {
	e, err := dl.surfaceByNum(num)
	if err != nil {
		return err
	}
	e.opts = opts
	e.dirty = true
	return nil
}

// SetImageColors sets the color bands used by data images and by every
// surface image. Surfaces regenerate at the next Draw.
func (dl *DisplayList) SetImageColors(bands []surface.ColorBand) {
	dl.bands = surface.NewBands(bands)
	for _, e := range dl.surfaces {
		e.grid.SetColorBands(dl.bands)
		e.dirty = true
	}
}

// recalcSurfaces replaces the generated primitives of every dirty surface.
func (dl *DisplayList) recalcSurfaces() {
	deleted := false
	for num, e := range dl.surfaces {
		if !e.dirty {
			continue
		}
		for k := range numKinds {
			s := dl.stores[k]
			for id := range s.slots() {
				if h := s.header(id); !h.Deleted && h.Surface == num {
					dl.deletePrim(k, id)
					deleted = true
				}
			}
		}
	}
	if deleted {
		dl.flushIndexes()
	}

	for num, e := range dl.surfaces {
		if !e.dirty {
			continue
		}
		e.dirty = false
		if err := dl.calcSurface(num, e); err != nil {
			Logger().Warn("dlist: surface calculation failed",
				slog.String("surface", e.name),
				slog.String("error", err.Error()))
		}
	}
}

// calcSurface generates the primitives of one surface in its own frame,
// layer, item and graphic state, restoring the caller's afterwards.
func (dl *DisplayList) calcSurface(num int, e *surfaceEntry) error {
	current, layer, item, sel, building := dl.current, dl.layer, dl.item, dl.selectable, dl.building
	state := dl.state
	defer func() {
		dl.current, dl.layer, dl.item, dl.selectable, dl.building = current, layer, item, sel, building
		dl.state = state
	}()
	dl.current, dl.layer, dl.item, dl.selectable, dl.building = e.frame, e.layer, e.item, -1, num
	dl.state = e.state
	return surface.Calc(e.grid, &surfaceBuilder{dl: dl, num: num}, e.opts)
}

// surfaceBuilder turns generated surface geometry into primitives of the
// surface's frame.
type surfaceBuilder struct {
	dl  *DisplayList
	num int
}

func splitXY(pts []geom.Point) (x, y []float64) {
	x = make([]float64, len(pts))
	y = make([]float64, len(pts))
	for i, p := range pts {
		x[i], y[i] = p.X, p.Y
	}
	return x, y
}

func (b *surfaceBuilder) AddSurfaceContour(c surface.Contour) error {
	x, y := splitXY(c.Points)
	_, err := b.dl.AddContour(x, y, c.Level, c.Major, c.Label)
	return err
}

func (b *surfaceBuilder) AddSurfaceLine(pts []geom.Point, role surface.LineRole) error {
	x, y := splitXY(pts)
	_, err := b.dl.AddContourLine(x, y, role == surface.RoleFault)
	return err
}

func (b *surfaceBuilder) AddSurfaceNode(p geom.Point) error {
	_, err := b.dl.AddSymb(p.X, p.Y, nodeSymbolSize, 0, 0)
	return err
}

func (b *surfaceBuilder) AddSurfaceImage(img draw.Image) error {
	r := img.Rect
	_, err := b.dl.AddGridColorImage(b.dl.current, b.num+1, r.Xmin, r.Ymin, r.Xmax, r.Ymax, img.Cols, img.Rows, img.Pixels)
	return err
}
