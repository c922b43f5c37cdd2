// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/gogpu/dlist/draw"
	"github.com/gogpu/dlist/geom"
)

// maxLevels bounds the number of contour levels a single calculation
// generates.
const maxLevels = 500

// GridSpec describes a regular grid of scalar values. Z holds Cols*Rows
// values row by row, starting at the row with the smallest y.
type GridSpec struct {
	Origin geom.Point
	Dx, Dy float64
	Cols   int
	Rows   int
	Z      []float64
}

// ContourProperties control contour generation.
type ContourProperties struct {
	// Interval is the level spacing. Zero picks roughly ten levels over the
	// data range.
	Interval float64
	// MajorEvery marks every n-th level as major. Zero means every level.
	MajorEvery int
	// Min and Max restrict the generated levels when Max > Min.
	Min, Max float64
	// Decimals is the number of digits in major contour labels.
	Decimals int
}

// Grid is a Surface over a regular grid.
type Grid struct {
	spec   GridSpec
	props  ContourProperties
	bands  Bands
	faults [][]geom.Point
	zmin   float64
	zmax   float64
}

var _ Surface = (*Grid)(nil)

// NewGrid validates spec and returns a Grid over a copy of its values. A Z
// slice shorter than Cols*Rows is padded with null nodes.
func NewGrid(spec GridSpec) (*Grid, error) {
	if spec.Cols < 2 || spec.Rows < 2 || !(spec.Dx > 0) || !(spec.Dy > 0) {
		return nil, fmt.Errorf("%w: %dx%d nodes, spacing %g x %g", ErrInvalidGrid, spec.Cols, spec.Rows, spec.Dx, spec.Dy)
	}
	n := spec.Cols * spec.Rows
	z := make([]float64, n)
	copied := copy(z, spec.Z)
	for i := copied; i < n; i++ {
		z[i] = math.NaN()
	}
	spec.Z = z

	g := &Grid{spec: spec, zmin: math.Inf(1), zmax: math.Inf(-1)}
	for _, v := range z {
		if isNull(v) {
			continue
		}
		g.zmin = math.Min(g.zmin, v)
		g.zmax = math.Max(g.zmax, v)
	}
	if math.IsInf(g.zmin, 1) {
		return nil, ErrNoData
	}
	return g, nil
}

func isNull(v float64) bool {
	return math.IsNaN(v) || geom.IsHole(v)
}

// Range returns the smallest and largest non-null values.
func (g *Grid) Range() (lo, hi float64) {
	return g.zmin, g.zmax
}

// Spec returns the grid description.
func (g *Grid) Spec() GridSpec {
	return g.spec
}

// SetContourProperties replaces the contour settings.
func (g *Grid) SetContourProperties(p ContourProperties) {
	g.props = p
}

// SetColorBands replaces the image color bands.
func (g *Grid) SetColorBands(b []ColorBand) {
	g.bands = NewBands(b)
}

// SetFaultLines replaces the fault polylines.
func (g *Grid) SetFaultLines(lines [][]geom.Point) {
	g.faults = make([][]geom.Point, 0, len(lines))
	for _, l := range lines {
		if len(l) >= 2 {
			g.faults = append(g.faults, slices.Clone(l))
		}
	}
}

// Bounds returns the frame-space rectangle spanned by the grid nodes.
func (g *Grid) Bounds() geom.Rect {
	s := g.spec
	return geom.Rect{
		Xmin: s.Origin.X,
		Ymin: s.Origin.Y,
		Xmax: s.Origin.X + float64(s.Cols-1)*s.Dx,
		Ymax: s.Origin.Y + float64(s.Rows-1)*s.Dy,
	}
}

func (g *Grid) z(i, j int) float64 {
	return g.spec.Z[j*g.spec.Cols+i]
}

func (g *Grid) node(i, j int) geom.Point {
	return geom.Point{
		X: g.spec.Origin.X + float64(i)*g.spec.Dx,
		Y: g.spec.Origin.Y + float64(j)*g.spec.Dy,
	}
}

// Levels returns the contour levels for the current properties.
func (g *Grid) Levels() []float64 {
	lo, hi := g.zmin, g.zmax
	if g.props.Max > g.props.Min {
		lo, hi = math.Max(lo, g.props.Min), math.Min(hi, g.props.Max)
	}
	interval := g.props.Interval
	if !(interval > 0) {
		interval = niceInterval((hi - lo) / 10)
	}
	if !(interval > 0) {
		return nil
	}
	var levels []float64
	for k := math.Ceil(lo / interval); k*interval <= hi && len(levels) < maxLevels; k++ {
		levels = append(levels, k*interval)
	}
	return levels
}

// niceInterval rounds v up to 1, 2 or 5 times a power of ten.
func niceInterval(v float64) float64 {
	if !(v > 0) || math.IsInf(v, 0) {
		return 0
	}
	e := math.Pow(10, math.Floor(math.Log10(v)))
	switch f := v / e; {
	case f <= 1:
		return e
	case f <= 2:
		return 2 * e
	case f <= 5:
		return 5 * e
	}
	return 10 * e
}

func (g *Grid) isMajor(level float64) bool {
	every := g.props.MajorEvery
	if every <= 1 {
		return true
	}
	interval := g.props.Interval
	if !(interval > 0) {
		return true
	}
	k := int64(math.Round(level / interval))
	return k%int64(every) == 0
}

// CalcContours traces every level with marching squares and hands each
// joined polyline to b.
func (g *Grid) CalcContours(b Builder) error {
	for _, level := range g.Levels() {
		major := g.isMajor(level)
		label := ""
		if major {
			label = strconv.FormatFloat(level, 'f', max(0, g.props.Decimals), 64)
		}
		for _, pts := range g.trace(level) {
			c := Contour{Points: pts, Level: level, Major: major, Label: label}
			if err := b.AddSurfaceContour(c); err != nil {
				return err
			}
		}
	}
	return nil
}

// CalcImage colors every node through the color bands. Nodes are pixel
// centers, so the image extends half a spacing beyond the node bounds.
func (g *Grid) CalcImage(b Builder) error {
	bands := g.bands
	if len(bands) == 0 {
		bands = DefaultRamp(g.zmin, g.zmax)
	}
	s := g.spec
	pix := make([]uint8, s.Cols*s.Rows*4)
	for j := range s.Rows {
		row := s.Rows - 1 - j
		for i := range s.Cols {
			v := g.z(i, j)
			if isNull(v) {
				continue
			}
			c, ok := bands.Lookup(v)
			if !ok {
				continue
			}
			o := (row*s.Cols + i) * 4
			pix[o], pix[o+1], pix[o+2], pix[o+3] = c.R, c.G, c.B, c.A
		}
	}
	return b.AddSurfaceImage(draw.Image{
		Rect:   g.Bounds().Grow(s.Dx/2, s.Dy/2),
		Cols:   s.Cols,
		Rows:   s.Rows,
		Pixels: pix,
		Smooth: true,
	})
}

// CalcNodes emits one node marker per non-null node.
func (g *Grid) CalcNodes(b Builder) error {
	for j := range g.spec.Rows {
		for i := range g.spec.Cols {
			if isNull(g.z(i, j)) {
				continue
			}
			if err := b.AddSurfaceNode(g.node(i, j)); err != nil {
				return err
			}
		}
	}
	return nil
}

// CalcEdges emits the boundary of the valid data region: every cell side
// shared by a valid cell and an invalid or missing neighbor.
func (g *Grid) CalcEdges(b Builder) error {
	s := g.spec
	valid := func(i, j int) bool {
		if i < 0 || j < 0 || i >= s.Cols-1 || j >= s.Rows-1 {
			return false
		}
		return !isNull(g.z(i, j)) && !isNull(g.z(i+1, j)) && !isNull(g.z(i, j+1)) && !isNull(g.z(i+1, j+1))
	}
	emit := func(a, c geom.Point) error {
		return b.AddSurfaceLine([]geom.Point{a, c}, RoleEdge)
	}
	for j := 0; j < s.Rows-1; j++ {
		for i := 0; i < s.Cols-1; i++ {
			if !valid(i, j) {
				continue
			}
			sides := []struct {
				ni, nj int
				a, c   geom.Point
			}{
				{i, j - 1, g.node(i, j), g.node(i+1, j)},
				{i, j + 1, g.node(i, j+1), g.node(i+1, j+1)},
				{i - 1, j, g.node(i, j), g.node(i, j+1)},
				{i + 1, j, g.node(i+1, j), g.node(i+1, j+1)},
			}
			for _, sd := range sides {
				if valid(sd.ni, sd.nj) {
					continue
				}
				if err := emit(sd.a, sd.c); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// CalcFaultLines emits the fault polylines.
func (g *Grid) CalcFaultLines(b Builder) error {
	for _, f := range g.faults {
		if err := b.AddSurfaceLine(slices.Clone(f), RoleFault); err != nil {
			return err
		}
	}
	return nil
}
