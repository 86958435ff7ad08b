package scene

import (
	"bytes"
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce   sync.Once
	fontSource *text.GoTextFaceSource
	fontErr    error
)

// Face returns a Go Regular face of the given size. The font source is
// parsed once and shared by every scene.
func Face(size float64) (*text.GoTextFace, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	})
	if fontErr != nil {
		return nil, fmt.Errorf("failed to load font: %w", fontErr)
	}
	return &text.GoTextFace{Source: fontSource, Size: size}, nil
}

// DrawText draws s with its top edge at y. Centered text is centered on x.
func DrawText(screen *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color, centered bool) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = face.Metrics().HAscent + face.Metrics().HDescent + 4
	if centered {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(screen, s, face, op)
}
