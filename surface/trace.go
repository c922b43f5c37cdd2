// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image/color"

	"github.com/gogpu/dlist/geom"
)

var (
	defaultLow  = color.RGBA{R: 40, G: 60, B: 200, A: 255}
	defaultHigh = color.RGBA{R: 220, G: 60, B: 40, A: 255}
)

// edgeKey identifies one grid edge: horizontal edges from node (i,j) to
// (i+1,j) are even, vertical edges from (i,j) to (i,j+1) are odd.
type edgeKey int

func (g *Grid) hEdge(i, j int) edgeKey { return edgeKey((j*g.spec.Cols + i) * 2) }
func (g *Grid) vEdge(i, j int) edgeKey { return edgeKey((j*g.spec.Cols+i)*2 + 1) }

type segment struct {
	a, b edgeKey
}

// trace runs marching squares for one level and joins the resulting
// segments into polylines. Closed loops repeat their first point at the
// end.
func (g *Grid) trace(level float64) [][]geom.Point {
	s := g.spec
	where := make(map[edgeKey]geom.Point)
	var segs []segment

	cross := func(k edgeKey, p1, p2 geom.Point, z1, z2 float64) edgeKey {
		if _, ok := where[k]; !ok {
			t := 0.5
			if z2 != z1 {
				t = (level - z1) / (z2 - z1)
			}
			where[k] = p1.Add(p2.Sub(p1).Mul(t))
		}
		return k
	}

	for j := 0; j < s.Rows-1; j++ {
		for i := 0; i < s.Cols-1; i++ {
			z00, z10 := g.z(i, j), g.z(i+1, j)
			z01, z11 := g.z(i, j+1), g.z(i+1, j+1)
			if isNull(z00) || isNull(z10) || isNull(z01) || isNull(z11) {
				continue
			}
			c := 0
			if z00 >= level {
				c |= 1
			}
			if z10 >= level {
				c |= 2
			}
			if z11 >= level {
				c |= 4
			}
			if z01 >= level {
				c |= 8
			}
			if c == 0 || c == 15 {
				continue
			}
			p00, p10 := g.node(i, j), g.node(i+1, j)
			p01, p11 := g.node(i, j+1), g.node(i+1, j+1)
			bottom := func() edgeKey { return cross(g.hEdge(i, j), p00, p10, z00, z10) }
			top := func() edgeKey { return cross(g.hEdge(i, j+1), p01, p11, z01, z11) }
			left := func() edgeKey { return cross(g.vEdge(i, j), p00, p01, z00, z01) }
			right := func() edgeKey { return cross(g.vEdge(i+1, j), p10, p11, z10, z11) }

			switch c {
			case 1, 14:
				segs = append(segs, segment{left(), bottom()})
			case 2, 13:
				segs = append(segs, segment{bottom(), right()})
			case 3, 12:
				segs = append(segs, segment{left(), right()})
			case 4, 11:
				segs = append(segs, segment{right(), top()})
			case 6, 9:
				segs = append(segs, segment{bottom(), top()})
			case 7, 8:
				segs = append(segs, segment{left(), top()})
			case 5, 10:
				// Saddle: the cell center decides which corners connect.
				center := (z00 + z10 + z01 + z11) / 4
				if (center >= level) == (c == 5) {
					segs = append(segs, segment{left(), top()}, segment{bottom(), right()})
				} else {
					segs = append(segs, segment{left(), bottom()}, segment{right(), top()})
				}
			}
		}
	}
	return join(segs, where)
}

// join links segments sharing an edge into maximal polylines.
func join(segs []segment, where map[edgeKey]geom.Point) [][]geom.Point {
	adj := make(map[edgeKey][]int, len(segs)*2)
	for idx, sg := range segs {
		adj[sg.a] = append(adj[sg.a], idx)
		adj[sg.b] = append(adj[sg.b], idx)
	}
	used := make([]bool, len(segs))

	next := func(at edgeKey) (edgeKey, bool) {
		for _, idx := range adj[at] {
			if used[idx] {
				continue
			}
			used[idx] = true
			if segs[idx].a == at {
				return segs[idx].b, true
			}
			return segs[idx].a, true
		}
		return 0, false
	}
	walk := func(from edgeKey) []edgeKey {
		chain := []edgeKey{from}
		for k, ok := next(from); ok; k, ok = next(k) {
			chain = append(chain, k)
		}
		return chain
	}

	var out [][]geom.Point
	// Open chains start at an edge with a single segment (the grid or
	// data boundary); whatever remains afterwards is closed loops.
	for pass := range 2 {
		for idx, sg := range segs {
			if used[idx] {
				continue
			}
			start := sg.a
			if pass == 0 {
				switch {
				case len(adj[sg.a]) == 1:
				case len(adj[sg.b]) == 1:
					start = sg.b
				default:
					continue
				}
			}
			chain := walk(start)
			pts := make([]geom.Point, len(chain))
			for i, k := range chain {
				pts[i] = where[k]
			}
			out = append(out, pts)
		}
	}
	return out
}
