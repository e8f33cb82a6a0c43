package window

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"os"
)

// loadSprite decodes an image file and makes pixels matching key transparent.
func loadSprite(path string, key color.RGBA) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("window: open sprite: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("window: decode sprite %s: %w", path, err)
	}
	return applyColorKey(img, key), nil
}

// applyColorKey copies src into a new NRGBA image with every opaque pixel of
// the key color cleared to transparent.
func applyColorKey(src image.Image, key color.RGBA) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)

	for i := 0; i+3 < len(dst.Pix); i += 4 {
		p := dst.Pix[i : i+4 : i+4]
		if p[3] == 0xFF && p[0] == key.R && p[1] == key.G && p[2] == key.B {
			p[0], p[1], p[2], p[3] = 0, 0, 0, 0
		}
	}
	return dst
}
