// Package text measures strings for the display list.
//
// The display list never rasterizes text itself; it only needs extents to
// compute frame-space bounding boxes, anchor offsets and pick distances.
// Metrics shapes strings with go-text/typesetting's HarfBuzz shaper,
// resolves mixed-direction runs with golang.org/x/text/unicode/bidi and
// reads ascent and descent from golang.org/x/image/font/opentype. The Go
// fonts bundled with golang.org/x/image serve as the built-in font set.
//
//	m, err := text.NewMetrics()
//	if err != nil {
//	    return err
//	}
//	ext := m.Measure("Depth (m)", text.FontRegular, 0.15)
//
// Extents are measured once per string and font at a reference size and
// scaled afterwards, so repeated measurements hit an LRU cache.
package text
