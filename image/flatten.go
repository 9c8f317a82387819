package image

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

type opaquer interface {
	Opaque() bool
}

// Flatten composes img over a white canvas when it has any transparency,
// JPEG carries no alpha channel
func Flatten(img image.Image) image.Image {
	if o, ok := img.(opaquer); ok && o.Opaque() {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}
