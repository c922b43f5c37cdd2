// Package demo builds the sample scene shown by the dlrender and dlview
// commands: a bordered map with a contoured surface, a lease outline and a
// handful of selectable wells, plus a profile strip attached below it.
package demo

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/dlist"
	"github.com/gogpu/dlist/geom"
	"github.com/gogpu/dlist/surface"
)

// Frame names of the scene.
const (
	MapFrame     = "map"
	ProfileFrame = "profile"
)

// gridSize is the number of surface nodes along each side.
const gridSize = 41

// Well is one selectable well of the scene.
type Well struct {
	Name string
	X, Y float64
}

// Wells are placed on the map in this order; well i is selectable object
// i+1.
var Wells = []Well{
	{"A-1", 22, 31},
	{"A-2", 47, 64},
	{"B-7", 71, 28},
	{"C-3", 80, 77},
	{"D-1", 35, 82},
}

// depth is the sample surface: two hills on a tilted plane.
func depth(x, y float64) float64 {
	h := func(cx, cy, r, a float64) float64 {
		d := (x-cx)*(x-cx) + (y-cy)*(y-cy)
		return a * math.Exp(-d/(r*r))
	}
	return 1000 + 2*x + y + h(35, 60, 18, 120) + h(72, 35, 14, 80)
}

// Build adds the scene to dl.
func Build(dl *dlist.DisplayList) error {
	if _, err := dl.CreateFrame(dlist.FrameSpec{
		Name:        MapFrame,
		Rescaleable: true,
		Border:      true,
		Limits:      geom.Rect{Xmax: 100, Ymax: 100},
		Page:        geom.Rect{Xmin: 1, Ymin: 3, Xmax: 7, Ymax: 9},
	}); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	if _, err := dl.CreateFrame(dlist.FrameSpec{
		Name:               ProfileFrame,
		Rescaleable:        true,
		Border:             true,
		Limits:             geom.Rect{Xmax: 100, Ymin: 1000, Ymax: 1400},
		Page:               geom.Rect{Xmax: 6, Ymax: 1.5},
		AttachTo:           MapFrame,
		Attach:             dlist.AttachBottomMin,
		ScaleWidthToAttach: true,
		Gap:                0.2,
	}); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	if err := buildMap(dl); err != nil {
		return fmt.Errorf("demo: map: %w", err)
	}
	if err := buildProfile(dl); err != nil {
		return fmt.Errorf("demo: profile: %w", err)
	}
	dl.UnsetFrame()
	dl.SetSelectableNum(-1)
	return nil
}

func buildMap(dl *dlist.DisplayList) error {
	if err := dl.SetFrame(MapFrame); err != nil {
		return err
	}

	spec := surface.GridSpec{Dx: 2.5, Dy: 2.5, Cols: gridSize, Rows: gridSize}
	spec.Z = make([]float64, 0, gridSize*gridSize)
	for j := range gridSize {
		for i := range gridSize {
			spec.Z = append(spec.Z, depth(float64(i)*spec.Dx, float64(j)*spec.Dy))
		}
	}
	dl.SetLayer("surface")
	dl.SetLineColor(color.RGBA{R: 90, G: 110, B: 160, A: 255})
	num, err := dl.AddGrid("depth", spec)
	if err != nil {
		return err
	}
	if err := dl.SetContourProperties(num, surface.ContourProperties{Interval: 20, MajorEvery: 5}); err != nil {
		return err
	}
	if err := dl.SetFaultLines(num, [][]geom.Point{{{X: 55, Y: 5}, {X: 60, Y: 40}, {X: 58, Y: 70}}}); err != nil {
		return err
	}

	dl.SetLayer("lease")
	dl.SetSelectableNum(100)
	dl.SetFillColor(color.RGBA{R: 250, G: 230, B: 150, A: 255})
	dl.SetLineColor(color.RGBA{R: 160, G: 120, B: 20, A: 255})
	dl.SetAlpha(96)
	x := []float64{12, 60, 66, 40, 10, geom.HoleFlag, 25, 35, 35, 25}
	y := []float64{15, 12, 50, 70, 45, geom.HoleFlag, 30, 30, 40, 40}
	if _, err := dl.AddFill(x, y); err != nil {
		return err
	}
	dl.SetAlpha(255)

	dl.SetLayer("wells")
	dl.SetSymbolColor(color.RGBA{R: 20, G: 20, B: 20, A: 255})
	dl.SetTextColor(color.RGBA{R: 20, G: 20, B: 20, A: 255})
	dl.SetTextAnchor(geom.AnchorBottomLeft)
	for i, w := range Wells {
		dl.SetSelectableNum(i + 1)
		dl.SetItem(w.Name)
		if _, err := dl.AddSymb(w.X, w.Y, 0.12, 0, 1); err != nil {
			return err
		}
		if _, err := dl.AddText(w.X+1.5, w.Y+1.5, w.Name, 0.1, 0); err != nil {
			return err
		}
	}
	return nil
}

func buildProfile(dl *dlist.DisplayList) error {
	if err := dl.SetFrame(ProfileFrame); err != nil {
		return err
	}
	dl.SetLayer("profile")
	dl.SetSelectableNum(200)
	dl.SetItem("section y=50")
	dl.SetLineColor(color.RGBA{R: 180, G: 40, B: 40, A: 255})
	xs := make([]float64, 0, 101)
	zs := make([]float64, 0, 101)
	for i := 0; i <= 100; i++ {
		xs = append(xs, float64(i))
		zs = append(zs, depth(float64(i), 50))
	}
	_, err := dl.AddLine(xs, zs)
	return err
}
