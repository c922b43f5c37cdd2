// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"

	"github.com/gogpu/dlist/draw"
	"github.com/gogpu/dlist/geom"
)

// Sentinel errors for the surface package.
var (
	// ErrInvalidGrid is returned for grids with too few nodes or a
	// non-positive spacing.
	ErrInvalidGrid = errors.New("surface: invalid grid")

	// ErrNoData is returned when every node is null.
	ErrNoData = errors.New("surface: no data")
)

// Contour is one generated contour polyline.
type Contour struct {
	Points []geom.Point
	Level  float64
	Major  bool
	// Label is the formatted level for major contours, empty otherwise.
	Label string
}

// LineRole tells a Builder what a generated plain line represents.
type LineRole int

const (
	RoleEdge LineRole = iota
	RoleFault
)

// Builder receives generated primitives. Geometry is in the frame space of
// the surface.
type Builder interface {
	AddSurfaceContour(c Contour) error
	AddSurfaceLine(pts []geom.Point, role LineRole) error
	AddSurfaceNode(p geom.Point) error
	AddSurfaceImage(img draw.Image) error
}

// Surface is a scalar field that can regenerate its display primitives.
type Surface interface {
	Bounds() geom.Rect
	CalcContours(b Builder) error
	CalcImage(b Builder) error
	CalcNodes(b Builder) error
	CalcEdges(b Builder) error
	CalcFaultLines(b Builder) error
}

// Options selects which calculations CalcAll runs.
type Options struct {
	Contours bool
	Image    bool
	Nodes    bool
	Edges    bool
	Faults   bool
}

// DefaultOptions draws contours, edges and faults.
var DefaultOptions = Options{Contours: true, Edges: true, Faults: true}

// Calc runs the calculations selected by opts in a fixed order: image,
// contours, edges, faults, nodes. It stops at the first error.
func Calc(s Surface, b Builder, opts Options) error {
	steps := []struct {
		on   bool
		name string
		fn   func(Builder) error
	}{
		{opts.Image, "image", s.CalcImage},
		{opts.Contours, "contours", s.CalcContours},
		{opts.Edges, "edges", s.CalcEdges},
		{opts.Faults, "faults", s.CalcFaultLines},
		{opts.Nodes, "nodes", s.CalcNodes},
	}
	for _, st := range steps {
		if !st.on {
			continue
		}
		if err := st.fn(b); err != nil {
			return fmt.Errorf("surface: %s: %w", st.name, err)
		}
	}
	return nil
}
