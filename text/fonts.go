package text

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Font selects one of the registered font faces by number.
type Font int

// Built-in fonts.
const (
	FontRegular Font = iota
	FontBold
	FontItalic
	FontMono

	numBuiltinFonts
)

var fontNames = [...]string{
	FontRegular: "regular",
	FontBold:    "bold",
	FontItalic:  "italic",
	FontMono:    "mono",
}

// String returns the name of a built-in font.
func (f Font) String() string {
	if f >= 0 && f < numBuiltinFonts {
		return fontNames[f]
	}
	return fmt.Sprintf("font(%d)", int(f))
}

// BuiltinData returns the TrueType data of a built-in font, or nil.
func BuiltinData(f Font) []byte {
	switch f {
	case FontRegular:
		return goregular.TTF
	case FontBold:
		return gobold.TTF
	case FontItalic:
		return goitalic.TTF
	case FontMono:
		return gomono.TTF
	}
	return nil
}

// face is one parsed font. shape is the go-text font used for advances;
// metrics is the x/image font used for vertical metrics.
type face struct {
	shape   *font.Font
	metrics *opentype.Font
}

func parseFace(data []byte) (*face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	gt, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	ot, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font metrics: %w", err)
	}
	return &face{shape: gt.Font, metrics: ot}, nil
}
