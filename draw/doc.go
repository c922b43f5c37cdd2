// Package draw defines the draw-primitive service the display list renders
// through, plus the shared state every service implementation carries.
//
// The display list hands a Service fully page-space geometry, one call per
// visible primitive. A Service owns the page to device mapping, clipping
// and rasterization. Three implementations ship with the module:
//
//   - draw/record: records every call as a typed command (tests, debugging)
//   - draw/raster: rasterizes to an RGBA image with fogleman/gg
//   - draw/cells:  rasterizes into a terminal character grid
//
// Implementations register themselves by name, following the database/sql
// driver pattern:
//
//	import _ "github.com/gogpu/dlist/draw/raster"
//
//	svc, err := draw.NewService("raster")
//
// Embedding Base gives an implementation the bookkeeping half of the
// interface (clip limits, page units per inch, page to screen scale,
// image id, alpha, selected flag and priority) for free.
package draw
