package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const bannerScale = 4

var (
	bannerFace  = text.NewGoXFace(basicfont.Face7x13)
	bannerColor = color.RGBA{R: 0xFF, G: 0x44, B: 0x44, A: 0xFF}
)

// drawGameOver marks the final frame.
func drawGameOver(dst *ebiten.Image) {
	drawBanner(dst, "GAME OVER")
}

// drawBanner writes msg centered on dst.
func drawBanner(dst *ebiten.Image, msg string) {
	w, h := text.Measure(msg, bannerFace, 0)
	b := dst.Bounds()

	op := &text.DrawOptions{}
	op.GeoM.Scale(bannerScale, bannerScale)
	op.GeoM.Translate(
		(float64(b.Dx())-w*bannerScale)/2,
		(float64(b.Dy())-h*bannerScale)/2,
	)
	op.ColorScale.ScaleWithColor(bannerColor)
	text.Draw(dst, msg, bannerFace, op)
}
