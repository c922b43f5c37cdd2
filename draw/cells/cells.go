// Package cells provides a draw.Service that rasterizes into a grid of
// terminal character cells. Each cell is treated as two vertically stacked
// half-cell pixels, which keeps the page aspect roughly square on common
// terminal fonts.
package cells

import (
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/gogpu/dlist/draw"
	"github.com/gogpu/dlist/geom"
)

func init() {
	draw.Register("cells", func() draw.Service { return New(80, 24) })
}

// Cell is one character position.
type Cell struct {
	Rune     rune
	Color    color.RGBA
	Selected bool
	Priority draw.Priority
}

// Service is a draw.Service writing into a Cols by Rows character grid.
type Service struct {
	draw.Base
	cols, rows int
	grid       []Cell
}

// New returns a Service with a cols by rows grid.
func New(cols, rows int) *Service {
	s := &Service{}
	s.Resize(cols, rows)
	return s
}

// Resize changes the grid size and clears it.
func (s *Service) Resize(cols, rows int) {
	s.cols, s.rows = max(1, cols), max(1, rows)
	s.grid = make([]Cell, s.cols*s.rows)
	s.clear()
}

// Size returns the grid dimensions.
func (s *Service) Size() (cols, rows int) {
	return s.cols, s.rows
}

func (s *Service) clear() {
	for i := range s.grid {
		s.grid[i] = Cell{Rune: ' '}
	}
}

// InitDrawing clears the grid. The screen rectangle is always the grid, in
// half-cell units.
func (s *Service) InitDrawing(setup draw.Setup) error {
	setup.Screen = geom.Rect{Xmax: float64(s.cols), Ymax: float64(2 * s.rows)}
	if setup.Units == draw.UnitsScreen {
		setup.Units = draw.UnitsInches
	}
	if err := s.Base.InitDrawing(setup); err != nil {
		return err
	}
	s.clear()
	return nil
}

// At returns the cell at column x, row y.
func (s *Service) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= s.cols || y >= s.rows {
		return Cell{}
	}
	return s.grid[y*s.cols+x]
}

// Lines returns the grid as plain text, one string per row.
func (s *Service) Lines() []string {
	out := make([]string, s.rows)
	var b strings.Builder
	for y := range s.rows {
		b.Reset()
		for x := range s.cols {
			b.WriteRune(s.grid[y*s.cols+x].Rune)
		}
		out[y] = b.String()
	}
	return out
}

// String returns the grid as newline separated rows.
func (s *Service) String() string {
	return strings.Join(s.Lines(), "\n")
}

// CellAt converts a cell position to the page point at its center.
func (s *Service) CellAt(x, y int) geom.Point {
	return s.ToPage(geom.Point{X: float64(x) + 0.5, Y: float64(2*y) + 1})
}

// put writes r at half-cell screen position p. Lower priorities never
// overwrite higher ones.
func (s *Service) put(p geom.Point, r rune, c color.RGBA) {
	if p.IsHole() {
		return
	}
	clip := s.ScreenClip()
	if !clip.Contains(p) {
		return
	}
	x, y := int(math.Floor(p.X)), int(math.Floor(p.Y/2))
	if x < 0 || y < 0 || x >= s.cols || y >= s.rows {
		return
	}
	cell := &s.grid[y*s.cols+x]
	if cell.Rune != ' ' && cell.Priority > s.Priority() {
		return
	}
	if s.Alpha() == 0 || c.A == 0 {
		return
	}
	*cell = Cell{Rune: r, Color: c, Selected: s.Selected(), Priority: s.Priority()}
}

// segment draws a screen-space segment one half-cell step at a time.
func (s *Service) segment(a, b geom.Point, c color.RGBA) {
	d := b.Sub(a)
	r := slopeRune(d)
	steps := int(math.Ceil(math.Max(math.Abs(d.X), math.Abs(d.Y)))) + 1
	for i := 0; i <= steps; i++ {
		f := float64(i) / float64(steps)
		s.put(a.Add(d.Mul(f)), r, c)
	}
}

// slopeRune picks a line character for a screen-space direction. Screen
// y grows downward in half-cell units.
func slopeRune(d geom.Point) rune {
	ax, ay := math.Abs(d.X), math.Abs(d.Y)/2
	switch {
	case ay <= ax*0.4:
		return '-'
	case ax <= ay*0.4:
		return '|'
	case (d.X > 0) == (d.Y > 0):
		return '\\'
	default:
		return '/'
	}
}

func (s *Service) polyline(pts []geom.Point, closed bool, c color.RGBA) {
	var prev, first geom.Point
	have := false
	for _, p := range pts {
		if p.IsHole() {
			have = false
			continue
		}
		q := s.ToScreen(p)
		if have {
			s.segment(prev, q, c)
		} else {
			first = q
		}
		prev, have = q, true
	}
	if closed && have {
		s.segment(prev, first, c)
	}
}

// fillPolygons fills cell centers inside the components by the even-odd
// rule with r.
func (s *Service) fillPolygons(components [][]geom.Point, r rune, c color.RGBA) {
	var edges [][2]geom.Point
	for _, comp := range components {
		scr := make([]geom.Point, 0, len(comp))
		for _, p := range comp {
			if !p.IsHole() {
				scr = append(scr, s.ToScreen(p))
			}
		}
		for i := range scr {
			edges = append(edges, [2]geom.Point{scr[i], scr[(i+1)%len(scr)]})
		}
	}
	if len(edges) == 0 {
		return
	}
	var xs []float64
	for row := range s.rows {
		y := float64(2*row) + 1
		xs = xs[:0]
		for _, e := range edges {
			a, b := e[0], e[1]
			if (a.Y > y) != (b.Y > y) {
				xs = append(xs, a.X+(y-a.Y)*(b.X-a.X)/(b.Y-a.Y))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := int(math.Ceil(xs[i] - 0.5))
			x1 := int(math.Floor(xs[i+1] - 0.5))
			for x := x0; x <= x1; x++ {
				s.put(geom.Point{X: float64(x) + 0.5, Y: y}, r, c)
			}
		}
	}
}

func (s *Service) ClipLine(pts []geom.Point, st draw.LineStyle) {
	s.polyline(pts, false, st.Color)
}

func (s *Service) ClipFill(components [][]geom.Point, st draw.FillStyle) {
	if st.Color.A > 0 {
		r := '░'
		if st.Pattern > 0 {
			r = '▒'
		}
		s.fillPolygons(components, r, st.Color)
	}
	if st.Outline {
		for _, comp := range components {
			s.polyline(comp, true, st.BorderColor)
		}
	}
}

func (s *Service) ClipText(ref geom.Point, str string, st draw.TextStyle) {
	runes := []rune(str)
	if len(runes) == 0 {
		return
	}
	p := s.ToScreen(ref)
	fx, fy := st.Anchor.Offsets()
	x := p.X - fx*float64(len(runes))
	y := p.Y - 2*(1-fy) + 1
	for i, r := range runes {
		s.put(geom.Point{X: x + float64(i), Y: y}, r, st.Color)
	}
}

func (s *Service) ClipTextRect(corners []geom.Point, st draw.FillStyle) {
	s.fillPolygons([][]geom.Point{corners}, ' ', st.Color)
}

var symbolRunes = map[int]rune{
	draw.SymbolCircle:       'o',
	draw.SymbolSquare:       '□',
	draw.SymbolTriangle:     '△',
	draw.SymbolCross:        'x',
	draw.SymbolPlus:         '+',
	draw.SymbolDiamond:      '◇',
	draw.SymbolFilledCircle: '●',
	draw.SymbolFilledSquare: '■',
}

func (s *Service) ClipSymbol(p geom.Point, st draw.SymbolStyle) {
	r, ok := symbolRunes[st.Symbol]
	if !ok {
		r = '*'
	}
	s.put(s.ToScreen(p), r, st.Color)
}

func (s *Service) ClipRect(c geom.Point, w, h, _, angle float64, st draw.ShapeStyle) {
	s.shape(geom.BoxOutline(c, w, h, angle), true, st)
}

func (s *Service) ClipArc(c geom.Point, rx, ry, start, length, rotation float64, closure geom.ArcClosure, st draw.ShapeStyle) {
	full := length == 0 || math.Abs(length) >= 360
	s.shape(geom.ArcOutline(c, rx, ry, start, length, rotation, closure), full || closure != geom.ArcOpen, st)
}

func (s *Service) shape(outline []geom.Point, closed bool, st draw.ShapeStyle) {
	if st.Fill && closed {
		s.fillPolygons([][]geom.Point{outline}, '░', st.FillColor)
	}
	if st.Border {
		s.polyline(outline, closed, st.BorderColor)
	}
}

func (s *Service) ClipImage(img draw.Image) {
	if img.Cols <= 0 || img.Rows <= 0 || len(img.Pixels) < img.Cols*img.Rows*4 {
		return
	}
	w, h := img.Rect.Width(), img.Rect.Height()
	if w <= 0 || h <= 0 {
		return
	}
	for row := range s.rows {
		for col := range s.cols {
			p := s.CellAt(col, row)
			if !img.Rect.Contains(p) {
				continue
			}
			ix := min(img.Cols-1, int((p.X-img.Rect.Xmin)/w*float64(img.Cols)))
			iy := min(img.Rows-1, int((img.Rect.Ymax-p.Y)/h*float64(img.Rows)))
			o := (iy*img.Cols + ix) * 4
			c := color.RGBA{R: img.Pixels[o], G: img.Pixels[o+1], B: img.Pixels[o+2], A: img.Pixels[o+3]}
			s.put(geom.Point{X: float64(col) + 0.5, Y: float64(2*row) + 1}, '█', c)
		}
	}
}
