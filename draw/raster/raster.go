// Package raster provides a draw.Service that rasterizes into an RGBA
// image using fogleman/gg.
//
//	svc := raster.New(800, 600)
//	dl := dlist.New(dlist.WithDrawService(svc), dlist.WithScreenBounds(0, 0, 800, 600))
//	...
//	_ = dl.Draw()
//	_ = svc.SavePNG("plot.png")
package raster

import (
	"image"
	"image/color"
	"io"
	"log/slog"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/gogpu/dlist/draw"
	"github.com/gogpu/dlist/geom"
	"github.com/gogpu/dlist/text"
)

func init() {
	draw.Register("raster", func() draw.Service { return New(DefaultWidth, DefaultHeight) })
}

// Default image size used by the registry factory.
const (
	DefaultWidth  = 1024
	DefaultHeight = 768
)

// Service rasterizes primitives into an in-memory image.
type Service struct {
	draw.Base

	width, height int
	dc            *gg.Context
	background    color.Color
	log           *slog.Logger

	mu    sync.Mutex
	fonts map[text.Font]*truetype.Font
	faces map[faceKey]font.Face
}

type faceKey struct {
	font text.Font
	px   int
}

// New returns a Service drawing into a width by height image.
func New(width, height int) *Service {
	s := &Service{
		width:      max(1, width),
		height:     max(1, height),
		background: color.White,
		log:        slog.New(slog.DiscardHandler),
		fonts:      make(map[text.Font]*truetype.Font),
		faces:      make(map[faceKey]font.Face),
	}
	s.dc = gg.NewContext(s.width, s.height)
	return s
}

// SetLogger sets the logger used for setup and font loading diagnostics.
func (s *Service) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	s.log = l
}

// SetBackground sets the color the image is cleared to by InitDrawing.
func (s *Service) SetBackground(c color.Color) {
	s.background = c
}

// InitDrawing clears the image and installs the page to pixel mapping.
// A Setup without a screen rectangle maps the page onto the whole image.
func (s *Service) InitDrawing(setup draw.Setup) error {
	if setup.Screen.IsEmpty() || setup.Screen.Width() <= 0 {
		setup.Screen = geom.Rect{Xmax: float64(s.width), Ymax: float64(s.height)}
	}
	if err := s.Base.InitDrawing(setup); err != nil {
		return err
	}
	s.log.Debug("raster: init drawing",
		slog.Int("width", s.width), slog.Int("height", s.height),
		slog.Any("page", setup.Page))
	s.dc.ResetClip()
	s.dc.SetColor(s.background)
	s.dc.Clear()
	s.applyClip()
	return nil
}

// SetClip narrows the pixel clip to a page rectangle.
func (s *Service) SetClip(r geom.Rect) {
	s.Base.SetClip(r)
	s.dc.ResetClip()
	s.applyClip()
}

func (s *Service) applyClip() {
	c := s.ScreenClip()
	s.dc.DrawRectangle(c.Xmin, c.Ymin, c.Width(), c.Height())
	s.dc.Clip()
}

// Image returns the rendered image.
func (s *Service) Image() image.Image {
	return s.dc.Image()
}

// SavePNG writes the rendered image to a PNG file.
func (s *Service) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}

// EncodePNG writes the rendered image as PNG to w.
func (s *Service) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// withAlpha applies the current alpha on top of the color's own alpha.
func (s *Service) withAlpha(c color.RGBA) color.Color {
	a := uint32(c.A) * uint32(s.Alpha()) / 255
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a)}
}

// px converts a page distance to pixels, never below one pixel for
// visible strokes.
func (s *Service) px(page float64) float64 {
	return math.Max(1, s.ScaleF(page))
}

func (s *Service) path(pts []geom.Point, closed bool) {
	s.dc.NewSubPath()
	pen := false
	for _, p := range pts {
		if p.IsHole() {
			pen = false
			s.dc.NewSubPath()
			continue
		}
		q := s.ToScreen(p)
		if !pen {
			s.dc.MoveTo(q.X, q.Y)
			pen = true
			continue
		}
		s.dc.LineTo(q.X, q.Y)
	}
	if closed {
		s.dc.ClosePath()
	}
}

func (s *Service) setDash(dash []float64, scale float64) {
	if len(dash) == 0 {
		s.dc.SetDash()
		return
	}
	if scale <= 0 {
		scale = 1
	}
	d := make([]float64, len(dash))
	for i, v := range dash {
		d[i] = s.px(v * scale)
	}
	s.dc.SetDash(d...)
}

func (s *Service) ClipLine(pts []geom.Point, st draw.LineStyle) {
	if len(pts) < 2 {
		return
	}
	s.dc.SetColor(s.withAlpha(st.Color))
	s.dc.SetLineWidth(s.px(st.Thickness))
	s.setDash(st.Dash, st.DashScale)
	s.path(pts, false)
	s.dc.Stroke()
	if st.Arrow != 0 {
		s.arrow(pts, st)
	}
}

// arrow draws a filled head at the last segment of pts.
func (s *Service) arrow(pts []geom.Point, st draw.LineStyle) {
	n := len(pts)
	a, b := s.ToScreen(pts[n-2]), s.ToScreen(pts[n-1])
	if a.IsHole() || b.IsHole() || a == b {
		return
	}
	size := s.px(math.Max(st.Thickness*6, 0.08))
	dir := b.Sub(a).Mul(1 / b.Distance(a))
	base := b.Sub(dir.Mul(size))
	perp := geom.Point{X: -dir.Y, Y: dir.X}.Mul(size / 2.5)
	s.dc.SetDash()
	s.dc.MoveTo(b.X, b.Y)
	s.dc.LineTo(base.X+perp.X, base.Y+perp.Y)
	s.dc.LineTo(base.X-perp.X, base.Y-perp.Y)
	s.dc.ClosePath()
	s.dc.Fill()
}

func (s *Service) ClipFill(components [][]geom.Point, st draw.FillStyle) {
	if len(components) == 0 {
		return
	}
	for _, c := range components {
		s.path(c, true)
	}
	s.dc.SetFillRuleEvenOdd()
	if st.Color.A > 0 {
		s.dc.SetColor(s.withAlpha(st.Color))
		s.dc.FillPreserve()
	}
	if st.Pattern > 0 && st.PatternColor.A > 0 {
		s.hatch(st)
	}
	if st.Outline {
		s.dc.SetColor(s.withAlpha(st.BorderColor))
		s.dc.SetLineWidth(s.px(st.BorderThickness))
		s.dc.SetDash()
		s.dc.StrokePreserve()
	}
	s.dc.ClearPath()
	s.dc.SetFillRuleWinding()
}

// hatch strokes diagonal pattern lines clipped to the current path.
func (s *Service) hatch(st draw.FillStyle) {
	s.dc.Push()
	defer s.dc.Pop()
	s.dc.ClipPreserve()
	spacing := s.px(0.08 * math.Max(st.PatternScale, 1))
	s.dc.SetColor(s.withAlpha(st.PatternColor))
	s.dc.SetLineWidth(1)
	w, h := float64(s.width), float64(s.height)
	s.dc.NewSubPath()
	for x := -h; x < w; x += spacing {
		s.dc.MoveTo(x, h)
		s.dc.LineTo(x+h, 0)
	}
	s.dc.Stroke()
}

func (s *Service) ClipText(ref geom.Point, str string, st draw.TextStyle) {
	if str == "" || st.Size <= 0 {
		return
	}
	face := s.face(st.Font, s.px(st.Size))
	if face == nil {
		return
	}
	p := s.ToScreen(ref)
	fx, fy := st.Anchor.Offsets()
	s.dc.Push()
	defer s.dc.Pop()
	s.dc.SetFontFace(face)
	s.dc.SetColor(s.withAlpha(st.Color))
	if st.Angle != 0 {
		s.dc.RotateAbout(gg.Radians(-st.Angle), p.X, p.Y)
	}
	s.dc.DrawStringAnchored(str, p.X, p.Y, fx, fy)
}

// face returns a cached truetype face for a font at a pixel size.
func (s *Service) face(f text.Font, size float64) font.Face {
	key := faceKey{font: f, px: int(math.Round(size))}
	if key.px < 1 {
		key.px = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if fc, ok := s.faces[key]; ok {
		return fc
	}
	tt, ok := s.fonts[f]
	if !ok {
		data := text.BuiltinData(f)
		if data == nil {
			data = text.BuiltinData(text.FontRegular)
		}
		var err error
		tt, err = truetype.Parse(data)
		if err != nil {
			s.log.Warn("raster: font parse failed", slog.Any("font", f), slog.Any("error", err))
			return nil
		}
		s.fonts[f] = tt
	}
	fc := truetype.NewFace(tt, &truetype.Options{
		Size:    float64(key.px),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	s.faces[key] = fc
	return fc
}

func (s *Service) ClipTextRect(corners []geom.Point, st draw.FillStyle) {
	s.ClipFill([][]geom.Point{corners}, st)
}

func (s *Service) ClipSymbol(p geom.Point, st draw.SymbolStyle) {
	c := s.ToScreen(p)
	r := s.px(st.Size) / 2
	s.dc.Push()
	defer s.dc.Pop()
	s.dc.SetColor(s.withAlpha(st.Color))
	s.dc.SetLineWidth(s.px(st.Thickness))
	s.dc.SetDash()
	if st.Angle != 0 {
		s.dc.RotateAbout(gg.Radians(-st.Angle), c.X, c.Y)
	}
	switch st.Symbol {
	case draw.SymbolSquare:
		s.dc.DrawRectangle(c.X-r, c.Y-r, 2*r, 2*r)
		s.dc.Stroke()
	case draw.SymbolFilledSquare:
		s.dc.DrawRectangle(c.X-r, c.Y-r, 2*r, 2*r)
		s.dc.Fill()
	case draw.SymbolTriangle:
		s.dc.DrawRegularPolygon(3, c.X, c.Y, r, 0)
		s.dc.Stroke()
	case draw.SymbolDiamond:
		s.dc.DrawRegularPolygon(4, c.X, c.Y, r, 0)
		s.dc.Stroke()
	case draw.SymbolCross:
		s.dc.DrawLine(c.X-r, c.Y-r, c.X+r, c.Y+r)
		s.dc.DrawLine(c.X-r, c.Y+r, c.X+r, c.Y-r)
		s.dc.Stroke()
	case draw.SymbolPlus:
		s.dc.DrawLine(c.X-r, c.Y, c.X+r, c.Y)
		s.dc.DrawLine(c.X, c.Y-r, c.X, c.Y+r)
		s.dc.Stroke()
	case draw.SymbolFilledCircle:
		s.dc.DrawCircle(c.X, c.Y, r)
		s.dc.Fill()
	default:
		s.dc.DrawCircle(c.X, c.Y, r)
		s.dc.Stroke()
	}
}

func (s *Service) ClipRect(c geom.Point, w, h, radius, angle float64, st draw.ShapeStyle) {
	p := s.ToScreen(c)
	pw, ph := s.ScaleF(w), s.ScaleF(h)
	s.dc.Push()
	defer s.dc.Pop()
	if angle != 0 {
		s.dc.RotateAbout(gg.Radians(-angle), p.X, p.Y)
	}
	if radius > 0 {
		s.dc.DrawRoundedRectangle(p.X-pw/2, p.Y-ph/2, pw, ph, s.ScaleF(radius))
	} else {
		s.dc.DrawRectangle(p.X-pw/2, p.Y-ph/2, pw, ph)
	}
	s.paintShape(st)
}

func (s *Service) ClipArc(c geom.Point, rx, ry, start, length, rotation float64, closure geom.ArcClosure, st draw.ShapeStyle) {
	pts := geom.ArcOutline(c, rx, ry, start, length, rotation, closure)
	full := length == 0 || math.Abs(length) >= 360
	s.path(pts, full || closure != geom.ArcOpen)
	s.paintShape(st)
}

func (s *Service) paintShape(st draw.ShapeStyle) {
	if st.Fill && st.FillColor.A > 0 {
		s.dc.SetColor(s.withAlpha(st.FillColor))
		s.dc.FillPreserve()
	}
	if st.Border {
		s.dc.SetColor(s.withAlpha(st.BorderColor))
		s.dc.SetLineWidth(s.px(st.BorderThickness))
		s.setDash(st.Dash, 1)
		s.dc.StrokePreserve()
	}
	s.dc.ClearPath()
}
