package modbot

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// labelSize is the menu label font size in pixels.
const labelSize = 16

// Font wraps Ebitengine's text/v2 for TrueType label rendering.
type Font struct {
	face *text.GoTextFace
	lh   float64
}

// LoadFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("modbot: failed to parse TTF data: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &Font{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *Font) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// DrawString draws s with its top-left at (x, y).
func (f *Font) DrawString(dst *ebiten.Image, s string, x, y float64, c Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	op.LineSpacing = f.lh
	text.Draw(dst, s, f.face, op)
}

// The Go Regular face used for menu labels, parsed on first use.
var (
	labelFontOnce sync.Once
	labelFont     *Font
	labelFontErr  error
)

func defaultLabelFont() (*Font, error) {
	labelFontOnce.Do(func() {
		labelFont, labelFontErr = LoadFont(goregular.TTF, labelSize)
	})
	return labelFont, labelFontErr
}
