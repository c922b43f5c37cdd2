package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// run is a maximal substring with a single writing direction.
type run struct {
	text []rune
	rtl  bool
}

// splitRuns breaks s into directional runs in visual order.
func splitRuns(s string) []run {
	var p bidi.Paragraph
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return []run{{text: []rune(s)}}
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return []run{{text: []rune(s)}}
	}
	runs := make([]run, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		r := ordering.Run(i)
		runs = append(runs, run{
			text: []rune(r.String()),
			rtl:  r.Direction() == bidi.RightToLeft,
		})
	}
	return runs
}

// shaperPool holds HarfbuzzShaper values, which carry mutable buffers and
// must not be shared between goroutines.
var shaperPool = sync.Pool{
	New: func() any { return &shaping.HarfbuzzShaper{} },
}

// advance returns the total horizontal advance of s set in f at size.
func advance(f *font.Font, s string, size float64) float64 {
	var total fixed.Int26_6
	for _, r := range splitRuns(s) {
		if len(r.text) == 0 {
			continue
		}
		dir := di.DirectionLTR
		if r.rtl {
			dir = di.DirectionRTL
		}
		in := shaping.Input{
			Text:      r.text,
			RunStart:  0,
			RunEnd:    len(r.text),
			Direction: dir,
			Face:      font.NewFace(f),
			Size:      fixed.Int26_6(size * 64),
			Script:    scriptOf(r.text),
			Language:  language.NewLanguage("en"),
		}
		hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
		out := hb.Shape(in)
		shaperPool.Put(hb)
		for _, g := range out.Glyphs {
			total += g.Advance
		}
	}
	if total < 0 {
		total = -total
	}
	return float64(total) / 64
}

func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
