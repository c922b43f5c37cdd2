// Package dlist provides a retained display list for 2D plots.
//
// # Overview
//
// A DisplayList accumulates plot primitives (lines, fills, text, symbols,
// shapes, images, contours and axes) organized into frames. A frame is a
// named viewport mapping a frame-space rectangle onto a page rectangle;
// frames can be zoomed, panned, locked to an aspect ratio and attached to
// each other. Draw lays the frames out on the page and hands every visible
// primitive, in page space, to a draw.Service.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/dlist"
//	    "github.com/gogpu/dlist/draw/raster"
//	    "github.com/gogpu/dlist/geom"
//	)
//
//	svc := raster.New(800, 600)
//	dl := dlist.New(
//	    dlist.WithDrawService(svc),
//	    dlist.WithScreenBounds(0, 0, 800, 600),
//	)
//
//	dl.CreateFrame(dlist.FrameSpec{
//	    Name:        "map",
//	    Rescaleable: true,
//	    Border:      true,
//	    Limits:      geom.Rect{Xmax: 100, Ymax: 100},
//	    Page:        geom.Rect{Xmin: 1, Ymin: 1, Xmax: 7, Ymax: 7},
//	})
//	dl.SetFrame("map")
//	dl.AddLine([]float64{10, 90}, []float64{10, 90})
//
//	if err := dl.Draw(); err != nil {
//	    log.Fatal(err)
//	}
//	svc.SavePNG("plot.png")
//
// # Primitives
//
// Every Add method returns the slot id of the new primitive and an error.
// Deleted slots are reused most recently freed first. Coordinates beyond
// geom.HoleThreshold are hole markers that break polylines and separate
// polygon components. Primitives added while no frame is current live in
// page space and are never transformed.
//
// # Spatial Index
//
// Frames that keep an independent aspect ratio carry a uniform grid index.
// Draw uses it to visit only the primitives near a zoomed-in window, and
// ClosestPickPrim uses it to test only the primitives near the pick point.
//
// # Selection
//
// Primitives added while a selectable object is current (SetSelectableNum)
// belong to it. PickFrameObject toggles the object under a screen position;
// every change of the selection republishes the selected primitives to the
// sink.Sink given with WithSink.
//
// # Errors
//
// Operations return errors wrapping the sentinels in errors.go. Status
// maps an error onto the classic 1, 0, -1 status codes.
//
// # Concurrency
//
// A DisplayList must be driven by one goroutine. Logging configuration
// (SetLogger) is safe for concurrent use.
package dlist
