package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/dlist"
	"github.com/gogpu/dlist/draw/cells"
)

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#25A065")).
			Padding(0, 1)
	errorStyle = statusStyle.Copy().Background(lipgloss.Color("#C0392B"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const helpText = "arrows pan  +/- zoom  z extents  click select  h hide  u unhide  d delete  c copy  esc clear  q quit"

type model struct {
	dl     *dlist.DisplayList
	svc    *cells.Service
	cfg    *Config
	width  int
	height int
	status string
	err    error
}

func newModel(dl *dlist.DisplayList, svc *cells.Service, cfg *Config) model {
	cols, rows := svc.Size()
	m := model{dl: dl, svc: svc, cfg: cfg, width: cols, height: rows}
	if cfg.StatusBar {
		m.height++
	}
	m.redraw()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) gridRows() int {
	if m.cfg.StatusBar {
		return max(1, m.height-1)
	}
	return max(1, m.height)
}

func (m *model) redraw() {
	if m.err = m.dl.Draw(); m.err != nil {
		return
	}
	m.err = m.dl.DrawSelected()
}

func (m *model) frame() (*dlist.Frame, bool) {
	f, ok := m.dl.FrameByName(m.cfg.Frame)
	if !ok {
		m.err = fmt.Errorf("%w: %q", dlist.ErrNoFrame, m.cfg.Frame)
	}
	return f, ok
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		rows := m.gridRows()
		m.svc.Resize(m.width, rows)
		m.dl.SetScreenBounds(0, 0, float64(m.width), float64(2*rows))
		m.redraw()

	case tea.MouseMsg:
		if msg.Type != tea.MouseLeft || msg.Y >= m.gridRows() {
			return m, nil
		}
		num := m.dl.PickFrameObject(-1, float64(msg.X)+0.5, float64(2*msg.Y)+1)
		switch {
		case num < 0:
			m.status = "nothing here"
		case m.dl.Selected(num):
			m.status = fmt.Sprintf("selected object %d", num)
		default:
			m.status = fmt.Sprintf("unselected object %d", num)
		}
		m.redraw()

	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m model) handleKey(key string) (tea.Model, tea.Cmd) {
	m.err = nil
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "down", "left", "right":
		m.pan(key)
	case "+", "=":
		m.zoomIn()
	case "-":
		if f, ok := m.frame(); ok {
			m.err = m.dl.ZoomOut(f.Num())
		}
	case "z":
		if f, ok := m.frame(); ok {
			m.err = m.dl.ZoomExtents(f.Num())
		}
	case "h":
		m.dl.HideSelected()
		m.status = "hidden"
	case "u":
		m.dl.UnhideAll()
		m.status = "unhidden"
	case "d":
		n := len(m.dl.SelectedNums())
		m.dl.DeleteSelected()
		m.status = fmt.Sprintf("deleted %d objects", n)
	case "esc":
		m.dl.UnselectAll()
		m.status = ""
	case "c":
		if err := clipboard.WriteAll(m.report()); err != nil {
			m.err = err
		} else {
			m.status = "copied selection"
		}
	default:
		return m, nil
	}
	if m.err == nil {
		m.redraw()
	}
	return m, nil
}

// pan drags the frame content by PanStep of the grid in the direction
// opposite to key, so the view moves toward key.
func (m *model) pan(key string) {
	f, ok := m.frame()
	if !ok {
		return
	}
	cols, rows := m.svc.Size()
	dx := m.cfg.PanStep * float64(cols)
	dy := m.cfg.PanStep * float64(2*rows)
	cx, cy := float64(cols)/2, float64(rows)
	var tx, ty float64
	switch key {
	case "up":
		ty = dy
	case "down":
		ty = -dy
	case "left":
		tx = dx
	case "right":
		tx = -dx
	}
	m.err = m.dl.PanFrame(f.Num(), cx, cy, cx+tx, cy+ty)
}

func (m *model) zoomIn() {
	f, ok := m.frame()
	if !ok {
		return
	}
	v := f.View()
	c := v.Center()
	hw, hh := v.Width()*m.cfg.ZoomStep/2, v.Height()*m.cfg.ZoomStep/2
	m.err = m.dl.RescaleFrame(f.Name(), false, c.X-hw, c.Y-hh, c.X+hw, c.Y+hh)
}

// report describes the current selection as plain text.
func (m model) report() string {
	var b strings.Builder
	for _, num := range m.dl.SelectedNums() {
		fmt.Fprintf(&b, "object %d\n", num)
	}
	if f, ok := m.dl.FrameByName(m.cfg.Frame); ok {
		v := f.View()
		fmt.Fprintf(&b, "%s view %g %g %g %g\n", f.Name(), v.Xmin, v.Ymin, v.Xmax, v.Ymax)
	}
	return b.String()
}

func (m model) View() string {
	var b strings.Builder
	cols, rows := m.svc.Size()
	for y := range rows {
		if y > 0 {
			b.WriteByte('\n')
		}
		if m.cfg.Colors {
			m.renderRow(&b, y, cols)
		} else {
			b.WriteString(m.svc.Lines()[y])
		}
	}
	if m.cfg.StatusBar {
		b.WriteByte('\n')
		b.WriteString(m.statusLine())
	}
	return b.String()
}

// renderRow writes one grid row, styling runs of cells that share a color
// and selection state.
func (m model) renderRow(b *strings.Builder, y, cols int) {
	var run strings.Builder
	var cur cells.Cell
	flush := func() {
		if run.Len() == 0 {
			return
		}
		st := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(cur.Color)))
		if cur.Selected {
			st = st.Reverse(true)
		}
		b.WriteString(st.Render(run.String()))
		run.Reset()
	}
	for x := range cols {
		c := m.svc.At(x, y)
		if c.Color != cur.Color || c.Selected != cur.Selected {
			flush()
			cur = c
		}
		run.WriteRune(c.Rune)
	}
	flush()
}

func (m model) statusLine() string {
	if m.err != nil {
		return errorStyle.Width(m.width).Render(m.err.Error())
	}
	msg := m.status
	if msg == "" {
		msg = fmt.Sprintf("%d selected", len(m.dl.SelectedNums()))
	}
	left := statusStyle.Render(msg)
	return left + " " + hintStyle.Render(helpText)
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
