package text

import (
	"math"
	"testing"
)

func newTestMetrics(t *testing.T) *Metrics {
	t.Helper()
	m, err := NewMetrics()
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}
	return m
}

func TestMeasureScalesLinearly(t *testing.T) {
	m := newTestMetrics(t)
	a := m.Measure("Hello", FontRegular, 10)
	b := m.Measure("Hello", FontRegular, 20)
	if a.Width <= 0 || a.Ascent <= 0 || a.Descent <= 0 {
		t.Fatalf("Measure() = %+v, want positive extent", a)
	}
	if math.Abs(b.Width-2*a.Width) > 1e-9 || math.Abs(b.Ascent-2*a.Ascent) > 1e-9 {
		t.Errorf("Measure() at 20 = %+v, want twice %+v", b, a)
	}
}

func TestMeasureLongerIsWider(t *testing.T) {
	m := newTestMetrics(t)
	short := m.Measure("ab", FontRegular, 12)
	long := m.Measure("abcdef", FontRegular, 12)
	if long.Width <= short.Width {
		t.Errorf("Width(abcdef) = %v, want > Width(ab) = %v", long.Width, short.Width)
	}
}

func TestMeasureMonoAdvances(t *testing.T) {
	m := newTestMetrics(t)
	i := m.Measure("iiii", FontMono, 12)
	w := m.Measure("WWWW", FontMono, 12)
	if math.Abs(i.Width-w.Width) > 1e-6 {
		t.Errorf("mono widths differ: %v vs %v", i.Width, w.Width)
	}
}

func TestMeasureMixedDirection(t *testing.T) {
	m := newTestMetrics(t)
	ext := m.Measure("abc שלום", FontRegular, 12)
	if ext.Width <= m.Measure("abc", FontRegular, 12).Width {
		t.Errorf("mixed-direction width = %v, want wider than its latin prefix", ext.Width)
	}
}

func TestMeasureCaches(t *testing.T) {
	m := newTestMetrics(t)
	m.Measure("cached", FontBold, 8)
	m.Measure("cached", FontBold, 16)
	s := m.CacheStats()
	if s.Hits != 1 || s.Misses != 1 {
		t.Errorf("CacheStats() = %+v, want 1 hit 1 miss", s)
	}
}

func TestMeasureUnknownFontFallsBack(t *testing.T) {
	m := newTestMetrics(t)
	got := m.Measure("x", Font(42), 10)
	want := m.Measure("x", FontRegular, 10)
	if got != want {
		t.Errorf("Measure(unknown font) = %+v, want %+v", got, want)
	}
}

func TestMeasureZeroSize(t *testing.T) {
	m := newTestMetrics(t)
	if got := m.Measure("x", FontRegular, 0); got != (Extent{}) {
		t.Errorf("Measure(size 0) = %+v, want zero", got)
	}
}

func TestRegisterEmpty(t *testing.T) {
	m := newTestMetrics(t)
	if err := m.Register(7, nil); err != ErrEmptyFontData {
		t.Errorf("Register(nil) error = %v, want ErrEmptyFontData", err)
	}
}

func TestApprox(t *testing.T) {
	got := Approx{}.Measure("abcd", FontRegular, 10)
	want := Extent{Width: 24, Ascent: 8, Descent: 2}
	if got != want {
		t.Errorf("Approx.Measure() = %+v, want %+v", got, want)
	}
	if got.Height() != 10 {
		t.Errorf("Height() = %v, want 10", got.Height())
	}
}

func TestSplitRuns(t *testing.T) {
	runs := splitRuns("abc שלום def")
	var rtl bool
	for _, r := range runs {
		rtl = rtl || r.rtl
	}
	if len(runs) < 2 || !rtl {
		t.Errorf("splitRuns() = %+v, want a right-to-left run", runs)
	}
}
