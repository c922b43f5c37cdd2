package dlist

import (
	"github.com/gogpu/dlist/draw"
	"github.com/gogpu/dlist/geom"
	"github.com/gogpu/dlist/sink"
	"github.com/gogpu/dlist/text"
)

// Option configures a DisplayList during creation.
//
// Example:
//
//	// Record draw calls instead of rasterizing them
//	rec := record.New()
//	dl := dlist.New(dlist.WithDrawService(rec))
//
//	// Render onto a 1024x768 image with a 1 inch page margin
//	dl := dlist.New(
//	    dlist.WithDrawService(raster.New(1024, 768)),
//	    dlist.WithScreenBounds(0, 0, 1024, 768),
//	)
type Option func(*options)

// options holds optional configuration for DisplayList creation.
type options struct {
	service  draw.Service
	sink     sink.Sink
	metrics  text.Measurer
	dpi      float64
	units    draw.Units
	screen   geom.Rect
	hint     geom.Rect
	maxPrims int
	minSep   float64
}

// defaultOptions returns the default display list options.
func defaultOptions() options {
	return options{
		service: nil, // Will be set to a discarding service if nil
		sink:    sink.Discard{},
		metrics: nil, // Will be set to the built-in font metrics if nil
		dpi:     draw.DefaultDPI,
		units:   draw.UnitsInches,
		screen:  geom.EmptyRect(),
		hint:    geom.EmptyRect(),
	}
}

// WithDrawService sets the service every primitive is drawn through.
// Without one, Draw runs the full pipeline but discards the output.
//
// Example:
//
//	svc, err := draw.NewService("raster")
//	if err != nil {
//	    return err
//	}
//	dl := dlist.New(dlist.WithDrawService(svc))
func WithDrawService(s draw.Service) Option {
	return func(o *options) {
		o.service = s
	}
}

// WithSink sets the host sink that receives frame context changes and
// republished selected primitives.
func WithSink(s sink.Sink) Option {
	return func(o *options) {
		if s != nil {
			o.sink = s
		}
	}
}

// WithMetrics sets the text measurer used for text bounding boxes and
// axis label margins. The default measures with the built-in Go fonts.
func WithMetrics(m text.Measurer) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithScreenDPI sets the screen resolution in pixels per inch.
func WithScreenDPI(dpi float64) Option {
	return func(o *options) {
		if dpi > 0 {
			o.dpi = dpi
		}
	}
}

// WithPageUnits sets the page coordinate units.
func WithPageUnits(u draw.Units) Option {
	return func(o *options) {
		o.units = u
	}
}

// WithScreenBounds sets the device rectangle in pixels the page is fitted
// into.
func WithScreenBounds(x1, y1, x2, y2 float64) Option {
	return func(o *options) {
		o.screen = geom.R(x1, y1, x2, y2)
	}
}

// WithDrawingBoundsHint sets the page rectangle used when no frame
// determines the page.
func WithDrawingBoundsHint(x1, y1, x2, y2 float64) Option {
	return func(o *options) {
		o.hint = geom.R(x1, y1, x2, y2)
	}
}

// WithMaxPrimitives caps the number of live primitives of each kind. Adds
// beyond the cap fail with ErrCapacity. Zero means unlimited.
func WithMaxPrimitives(n int) Option {
	return func(o *options) {
		o.maxPrims = max(0, n)
	}
}

// WithMinimumFrameSeparation sets the minimum page-space gap kept between
// attached frames, in page units.
func WithMinimumFrameSeparation(d float64) Option {
	return func(o *options) {
		o.minSep = max(0, d)
	}
}
