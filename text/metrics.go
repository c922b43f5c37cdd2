package text

import (
	"fmt"
	"log/slog"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/dlist/internal/cache"
)

// referenceSize is the size strings are shaped at before scaling.
const referenceSize = 100

// defaultCacheSize bounds the number of memoized extents.
const defaultCacheSize = 4096

type extentKey struct {
	s    string
	font Font
}

// Metrics is a Measurer backed by real font data. It is safe for
// concurrent use.
type Metrics struct {
	mu    sync.RWMutex
	faces map[Font]*face
	vert  map[Font]Extent
	cache *cache.Cache[extentKey, Extent]
}

// NewMetrics returns a Metrics loaded with the built-in Go fonts.
func NewMetrics() (*Metrics, error) {
	m := &Metrics{
		faces: make(map[Font]*face),
		vert:  make(map[Font]Extent),
		cache: cache.New[extentKey, Extent](defaultCacheSize),
	}
	for f := FontRegular; f < numBuiltinFonts; f++ {
		if err := m.Register(f, BuiltinData(f)); err != nil {
			return nil, fmt.Errorf("text: builtin font %v: %w", f, err)
		}
	}
	return m, nil
}

// Register parses TrueType or OpenType data and binds it to a font number,
// replacing any previous binding.
func (m *Metrics) Register(f Font, data []byte) error {
	fc, err := parseFace(data)
	if err != nil {
		return err
	}
	var buf sfnt.Buffer
	fm, err := fc.metrics.Metrics(&buf, fixed.I(referenceSize), xfont.HintingNone)
	if err != nil {
		return fmt.Errorf("text: font metrics: %w", err)
	}

	m.mu.Lock()
	m.faces[f] = fc
	m.vert[f] = Extent{
		Ascent:  float64(fm.Ascent) / 64,
		Descent: float64(fm.Descent) / 64,
	}
	m.mu.Unlock()
	m.cache.Clear()
	return nil
}

// Measure implements Measurer. Unknown fonts fall back to FontRegular;
// if that is missing too, Approx is used.
func (m *Metrics) Measure(s string, f Font, size float64) Extent {
	if size <= 0 {
		return Extent{}
	}
	ref := m.cache.GetOrCreate(extentKey{s: s, font: f}, func() Extent {
		return m.measureRef(s, f)
	})
	return ref.Scale(size / referenceSize)
}

func (m *Metrics) measureRef(s string, f Font) Extent {
	m.mu.RLock()
	fc, ok := m.faces[f]
	v := m.vert[f]
	if !ok {
		fc, ok = m.faces[FontRegular]
		v = m.vert[FontRegular]
	}
	m.mu.RUnlock()
	if !ok {
		Logger().Debug("text: no font data, approximating", slog.Int("font", int(f)))
		return Approx{}.Measure(s, f, referenceSize)
	}
	v.Width = advance(fc.shape, s, referenceSize)
	return v
}

// CacheStats reports the extent cache counters.
func (m *Metrics) CacheStats() cache.Stats {
	return m.cache.Stats()
}
