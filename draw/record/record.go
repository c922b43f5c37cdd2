// Package record provides a draw.Service that captures every drawing call
// as a typed command instead of rasterizing it.
//
// Captured commands can be inspected directly (the display list tests do
// this) or replayed into any other draw.Service:
//
//	rec := record.New()
//	dl := dlist.New(dlist.WithDrawService(rec))
//	...
//	_ = dl.Draw()
//	for _, c := range rec.Commands() {
//	    fmt.Println(c.Type, len(c.Points))
//	}
//	rec.Playback(rasterService)
package record

import (
	"slices"

	"github.com/gogpu/dlist/draw"
	"github.com/gogpu/dlist/geom"
)

func init() {
	draw.Register("record", func() draw.Service { return New() })
}

// CommandType identifies the drawing call a command captured.
type CommandType uint8

const (
	CmdLine CommandType = iota
	CmdFill
	CmdText
	CmdTextRect
	CmdSymbol
	CmdRect
	CmdArc
	CmdImage
)

var commandTypeNames = [...]string{
	CmdLine:     "Line",
	CmdFill:     "Fill",
	CmdText:     "Text",
	CmdTextRect: "TextRect",
	CmdSymbol:   "Symbol",
	CmdRect:     "Rect",
	CmdArc:      "Arc",
	CmdImage:    "Image",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// State is the service state in effect when a command was captured.
type State struct {
	Alpha    uint8
	Priority draw.Priority
	Selected bool
	ImageID  int
	Clip     geom.Rect
}

// Command is one captured drawing call. Only the fields relevant to Type
// are set. Geometry is copied, never aliased.
type Command struct {
	Type  CommandType
	State State

	// Points holds polyline, text box or single-point geometry.
	Points []geom.Point
	// Components holds fill polygons.
	Components [][]geom.Point
	Text       string

	// Shape parameters for CmdRect and CmdArc.
	Width, Height, Radius, Angle float64
	Start, Length                float64
	Closure                      geom.ArcClosure

	Line   draw.LineStyle
	Fill   draw.FillStyle
	Font   draw.TextStyle
	Symbol draw.SymbolStyle
	Shape  draw.ShapeStyle
	Image  draw.Image
}

// Recorder is a draw.Service that appends a Command per call.
type Recorder struct {
	draw.Base
	commands []Command
}

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{}
}

// InitDrawing resets the captured commands and stores the setup.
func (r *Recorder) InitDrawing(s draw.Setup) error {
	r.commands = r.commands[:0]
	return r.Base.InitDrawing(s)
}

// Commands returns the captured commands in call order.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Count returns how many commands of type t were captured.
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for i := range r.commands {
		if r.commands[i].Type == t {
			n++
		}
	}
	return n
}

// Filter returns the commands of type t.
func (r *Recorder) Filter(t CommandType) []Command {
	var out []Command
	for _, c := range r.commands {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// Reset discards the captured commands.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

func (r *Recorder) state() State {
	return State{
		Alpha:    r.Alpha(),
		Priority: r.Priority(),
		Selected: r.Selected(),
		ImageID:  r.ImageID(),
		Clip:     r.Clip(),
	}
}

func (r *Recorder) add(c Command) {
	c.State = r.state()
	r.commands = append(r.commands, c)
}

func (r *Recorder) ClipLine(pts []geom.Point, st draw.LineStyle) {
	r.add(Command{Type: CmdLine, Points: slices.Clone(pts), Line: st})
}

func (r *Recorder) ClipFill(components [][]geom.Point, st draw.FillStyle) {
	comps := make([][]geom.Point, len(components))
	for i, c := range components {
		comps[i] = slices.Clone(c)
	}
	r.add(Command{Type: CmdFill, Components: comps, Fill: st})
}

func (r *Recorder) ClipText(ref geom.Point, s string, st draw.TextStyle) {
	r.add(Command{Type: CmdText, Points: []geom.Point{ref}, Text: s, Font: st})
}

func (r *Recorder) ClipTextRect(corners []geom.Point, st draw.FillStyle) {
	r.add(Command{Type: CmdTextRect, Points: slices.Clone(corners), Fill: st})
}

func (r *Recorder) ClipSymbol(p geom.Point, st draw.SymbolStyle) {
	r.add(Command{Type: CmdSymbol, Points: []geom.Point{p}, Symbol: st})
}

func (r *Recorder) ClipRect(c geom.Point, w, h, radius, angle float64, st draw.ShapeStyle) {
	r.add(Command{Type: CmdRect, Points: []geom.Point{c}, Width: w, Height: h, Radius: radius, Angle: angle, Shape: st})
}

func (r *Recorder) ClipArc(c geom.Point, rx, ry, start, length, rotation float64, closure geom.ArcClosure, st draw.ShapeStyle) {
	r.add(Command{
		Type:    CmdArc,
		Points:  []geom.Point{c},
		Width:   rx,
		Height:  ry,
		Start:   start,
		Length:  length,
		Angle:   rotation,
		Closure: closure,
		Shape:   st,
	})
}

func (r *Recorder) ClipImage(img draw.Image) {
	img.Pixels = slices.Clone(img.Pixels)
	r.add(Command{Type: CmdImage, Image: img})
}

// Playback replays the captured commands, with their state, into svc.
// svc must already be initialized.
func (r *Recorder) Playback(svc draw.Service) {
	for _, c := range r.commands {
		svc.SetAlpha(c.State.Alpha)
		svc.SetPriority(c.State.Priority)
		svc.SetSelected(c.State.Selected)
		svc.SetImageID(c.State.ImageID)
		svc.SetClip(c.State.Clip)
		switch c.Type {
		case CmdLine:
			svc.ClipLine(c.Points, c.Line)
		case CmdFill:
			svc.ClipFill(c.Components, c.Fill)
		case CmdText:
			svc.ClipText(c.Points[0], c.Text, c.Font)
		case CmdTextRect:
			svc.ClipTextRect(c.Points, c.Fill)
		case CmdSymbol:
			svc.ClipSymbol(c.Points[0], c.Symbol)
		case CmdRect:
			svc.ClipRect(c.Points[0], c.Width, c.Height, c.Radius, c.Angle, c.Shape)
		case CmdArc:
			svc.ClipArc(c.Points[0], c.Width, c.Height, c.Start, c.Length, c.Angle, c.Closure, c.Shape)
		case CmdImage:
			svc.ClipImage(c.Image)
		}
	}
}
