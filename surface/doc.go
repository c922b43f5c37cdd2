// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface computes derived display primitives from scalar fields.
//
// A Surface is asked, once per dirty draw cycle, to calculate its
// contours, color-band image, node markers, outline edges and fault lines.
// Each calculation calls back into a Builder, which is how generated
// primitives land in the display list:
//
//	g, err := surface.NewGrid(surface.GridSpec{
//	    Origin: geom.Pt(0, 0),
//	    Dx:     10, Dy: 10,
//	    Cols:   50, Rows: 40,
//	    Z:      z,
//	})
//	g.SetContourProperties(surface.ContourProperties{Interval: 5, MajorEvery: 4})
//	err = surface.CalcAll(g, builder)
//
// Grid nodes whose value is NaN or a hole marker are null. Cells touching a
// null node produce no contours and null nodes are transparent in images.
package surface
