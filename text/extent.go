package text

// Extent is the measured size of a string, in the units of the size it was
// measured at. Ascent and Descent are both non-negative distances from the
// baseline.
type Extent struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Height returns the full ascent plus descent.
func (e Extent) Height() float64 {
	return e.Ascent + e.Descent
}

// Scale returns the extent multiplied by s.
func (e Extent) Scale(s float64) Extent {
	return Extent{Width: e.Width * s, Ascent: e.Ascent * s, Descent: e.Descent * s}
}

// Measurer measures strings. Implementations must be safe for concurrent
// use.
type Measurer interface {
	Measure(s string, font Font, size float64) Extent
}

// Approx is a font-free Measurer that assumes every character is 0.6 em
// wide with a 0.8 em ascent and 0.2 em descent. It is used when no font
// data is available.
type Approx struct{}

// Measure implements Measurer.
func (Approx) Measure(s string, _ Font, size float64) Extent {
	n := 0
	for range s {
		n++
	}
	return Extent{Width: 0.6 * size * float64(n), Ascent: 0.8 * size, Descent: 0.2 * size}
}
