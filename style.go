package dlist

import (
	"image/color"

	"github.com/gogpu/dlist/draw"
	"github.com/gogpu/dlist/geom"
	"github.com/gogpu/dlist/text"
)

// GraphicState is the set of attributes applied to newly added primitives.
// Saving and restoring it is a plain value copy:
//
//	saved := dl.GraphicState()
//	dl.SetLineColor(red)
//	dl.AddLine(x, y)
//	dl.SetGraphicState(saved)
type GraphicState struct {
	LineColor       color.RGBA
	FillColor       color.RGBA
	PatternColor    color.RGBA
	BorderColor     color.RGBA
	TextColor       color.RGBA
	TextFillColor   color.RGBA
	SymbolColor     color.RGBA
	BackgroundColor color.RGBA
	ForegroundColor color.RGBA

	// Thicknesses and sizes are in inches.
	LineThickness   float64
	BorderThickness float64
	TextThickness   float64
	SymbolThickness float64

	Dash      []float64
	DashScale float64
	Arrow     int

	TextFont       text.Font
	TextAnchor     geom.Anchor
	TextOffsetX    float64
	TextOffsetY    float64
	TextBackground bool

	FillPattern  int
	PatternScale float64
	FillOutline  bool

	Smoothing  bool
	Alpha      uint8
	Editable   bool
	Selectable bool
}

// DefaultGraphicState returns black strokes and text, white fills, thin
// lines and bottom-left anchored regular text.
func DefaultGraphicState() GraphicState {
	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	return GraphicState{
		LineColor:       black,
		FillColor:       color.RGBA{R: 200, G: 200, B: 200, A: 255},
		PatternColor:    black,
		BorderColor:     black,
		TextColor:       black,
		TextFillColor:   white,
		SymbolColor:     black,
		BackgroundColor: white,
		ForegroundColor: black,
		LineThickness:   0.01,
		BorderThickness: 0.01,
		TextThickness:   0.01,
		SymbolThickness: 0.01,
		DashScale:       1,
		TextFont:        text.FontRegular,
		TextAnchor:      geom.AnchorBottomLeft,
		PatternScale:    1,
		Alpha:           255,
		Selectable:      true,
	}
}

// GraphicState returns a copy of the current attributes.
func (dl *DisplayList) GraphicState() GraphicState {
	gs := dl.state
	gs.Dash = append([]float64(nil), dl.state.Dash...)
	return gs
}

// SetGraphicState replaces the current attributes.
func (dl *DisplayList) SetGraphicState(gs GraphicState) {
	gs.Dash = append([]float64(nil), gs.Dash...)
	dl.state = gs
}

func (dl *DisplayList) SetLineColor(c color.RGBA)       { dl.state.LineColor = c }
func (dl *DisplayList) SetFillColor(c color.RGBA)       { dl.state.FillColor = c }
func (dl *DisplayList) SetBorderColor(c color.RGBA)     { dl.state.BorderColor = c }
func (dl *DisplayList) SetTextColor(c color.RGBA)       { dl.state.TextColor = c }
func (dl *DisplayList) SetSymbolColor(c color.RGBA)     { dl.state.SymbolColor = c }
func (dl *DisplayList) SetLineThickness(t float64)      { dl.state.LineThickness = max(0, t) }
func (dl *DisplayList) SetTextFont(f text.Font)         { dl.state.TextFont = f }
func (dl *DisplayList) SetTextAnchor(a geom.Anchor)     { dl.state.TextAnchor = a }
func (dl *DisplayList) SetAlpha(a uint8)                { dl.state.Alpha = a }
func (dl *DisplayList) SetFillPattern(p int)            { dl.state.FillPattern = p }
func (dl *DisplayList) SetTextBackground(on bool)       { dl.state.TextBackground = on }
func (dl *DisplayList) SetDash(dash []float64)          { dl.state.Dash = append([]float64(nil), dash...) }
func (dl *DisplayList) SetSmoothing(on bool)            { dl.state.Smoothing = on }
func (dl *DisplayList) SetArrow(style int)              { dl.state.Arrow = style }
func (dl *DisplayList) SetFillOutline(on bool)          { dl.state.FillOutline = on }
func (dl *DisplayList) SetTextOffset(dx, dy float64)    { dl.state.TextOffsetX, dl.state.TextOffsetY = dx, dy }
func (dl *DisplayList) SetBackgroundColor(c color.RGBA) { dl.state.BackgroundColor = c }

// inches converts a length in inches to page units.
func (dl *DisplayList) inches(v float64) float64 {
	return v * dl.unitsPerInch()
}

func (dl *DisplayList) unitsPerInch() float64 {
	return draw.UnitsPerInch(dl.opts.units, dl.opts.dpi)
}

func (dl *DisplayList) lineStyle() draw.LineStyle {
	s := dl.state
	return draw.LineStyle{
		Color:     s.LineColor,
		Thickness: dl.inches(s.LineThickness),
		Dash:      append([]float64(nil), s.Dash...),
		DashScale: s.DashScale,
		Arrow:     s.Arrow,
	}
}

func (dl *DisplayList) fillStyle() draw.FillStyle {
	s := dl.state
	return draw.FillStyle{
		Color:           s.FillColor,
		PatternColor:    s.PatternColor,
		Pattern:         s.FillPattern,
		PatternScale:    s.PatternScale,
		BorderColor:     s.BorderColor,
		BorderThickness: dl.inches(s.BorderThickness),
		Outline:         s.FillOutline,
	}
}

func (dl *DisplayList) textStyle(size, angle float64) draw.TextStyle {
	s := dl.state
	return draw.TextStyle{
		Color:     s.TextColor,
		Font:      s.TextFont,
		Size:      dl.inches(size),
		Angle:     angle,
		Anchor:    s.TextAnchor,
		Thickness: dl.inches(s.TextThickness),
	}
}

func (dl *DisplayList) symbolStyle(symbol int, size, angle float64) draw.SymbolStyle {
	s := dl.state
	return draw.SymbolStyle{
		Color:     s.SymbolColor,
		Symbol:    symbol,
		Size:      dl.inches(size),
		Angle:     angle,
		Thickness: dl.inches(s.SymbolThickness),
	}
}

func (dl *DisplayList) shapeStyle() draw.ShapeStyle {
	s := dl.state
	return draw.ShapeStyle{
		FillColor:       s.FillColor,
		PatternColor:    s.PatternColor,
		Pattern:         s.FillPattern,
		BorderColor:     s.BorderColor,
		BorderThickness: dl.inches(s.BorderThickness),
		Dash:            append([]float64(nil), s.Dash...),
		Fill:            s.FillColor.A > 0,
		Border:          s.BorderThickness > 0,
	}
}
