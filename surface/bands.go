// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image/color"
	"sort"
)

// ColorBand maps the half-open value range [Min, Max) to a color.
type ColorBand struct {
	Min, Max float64
	Color    color.RGBA
}

// Bands is a set of color bands sorted by Min.
type Bands []ColorBand

// NewBands copies and sorts bands by their lower bound.
func NewBands(bands []ColorBand) Bands {
	b := make(Bands, len(bands))
	copy(b, bands)
	sort.Slice(b, func(i, j int) bool { return b[i].Min < b[j].Min })
	return b
}

// Lookup returns the color of the band containing v. The topmost band also
// contains its own Max.
func (b Bands) Lookup(v float64) (color.RGBA, bool) {
	if len(b) == 0 || v != v {
		return color.RGBA{}, false
	}
	i := sort.Search(len(b), func(i int) bool { return b[i].Min > v }) - 1
	if i < 0 {
		return color.RGBA{}, false
	}
	band := b[i]
	if v < band.Max || (i == len(b)-1 && v == band.Max) {
		return band.Color, true
	}
	return color.RGBA{}, false
}

// Ramp builds n equal-width bands spanning [lo, hi] that interpolate from
// one color to another.
func Ramp(lo, hi float64, n int, from, to color.RGBA) Bands {
	if n < 1 || !(hi > lo) {
		return nil
	}
	step := (hi - lo) / float64(n)
	out := make(Bands, n)
	for i := range n {
		f := 0.0
		if n > 1 {
			f = float64(i) / float64(n-1)
		}
		out[i] = ColorBand{
			Min:   lo + float64(i)*step,
			Max:   lo + float64(i+1)*step,
			Color: lerp(from, to, f),
		}
	}
	out[n-1].Max = hi
	return out
}

func lerp(a, b color.RGBA, f float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*f + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// DefaultRamp returns the blue to red ramp used when no bands are set.
func DefaultRamp(lo, hi float64) Bands {
	return Ramp(lo, hi, 16, defaultLow, defaultHigh)
}

// Colorize converts cols*rows scalar values into RGBA pixels. Values that
// are null or fall outside every band stay transparent. The row order of
// the values is kept.
func (b Bands) Colorize(z []float64, cols, rows int) []uint8 {
	pix := make([]uint8, cols*rows*4)
	for i := range min(len(z), cols*rows) {
		if isNull(z[i]) {
			continue
		}
		c, ok := b.Lookup(z[i])
		if !ok {
			continue
		}
		o := i * 4
		pix[o], pix[o+1], pix[o+2], pix[o+3] = c.R, c.G, c.B, c.A
	}
	return pix
}
