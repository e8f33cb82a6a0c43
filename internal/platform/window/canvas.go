package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/star-dodge/internal/core"
)

var (
	clearColor       = color.Black
	placeholderColor = color.RGBA{R: 0x66, G: 0xFF, B: 0x66, A: 0xFF}
)

// canvas implements core.Canvas on top of an Ebiten render target.
type canvas struct {
	target   *ebiten.Image
	textures map[string]*ebiten.Image
	order    []string // Acquisition order, for release
}

func newCanvas() *canvas {
	return &canvas{textures: make(map[string]*ebiten.Image)}
}

func (c *canvas) add(sheet string, tex *ebiten.Image) {
	c.textures[sheet] = tex
	c.order = append(c.order, sheet)
}

func (c *canvas) reset() {
	c.textures = make(map[string]*ebiten.Image)
	c.order = nil
	c.target = nil
}

// Clear fills the target with black.
func (c *canvas) Clear() {
	c.target.Fill(clearColor)
}

// DrawSprite copies src of the sheet onto dst, scaling to fit. A nil src means
// the whole texture. Sheets without a texture are drawn as an outline.
func (c *canvas) DrawSprite(sheet string, src *core.Rect, dst core.Rect) {
	tex := c.textures[sheet]
	if tex == nil {
		vector.StrokeRect(c.target, float32(dst.X), float32(dst.Y), float32(dst.W), float32(dst.H), 1, placeholderColor, false)
		return
	}

	img := tex
	if src != nil {
		img = tex.SubImage(image.Rect(src.X, src.Y, src.Right(), src.Bottom())).(*ebiten.Image)
	}
	b := img.Bounds()
	if b.Empty() {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.W)/float64(b.Dx()), float64(dst.H)/float64(b.Dy()))
	op.GeoM.Translate(float64(dst.X), float64(dst.Y))
	c.target.DrawImage(img, op)
}
