package image

import (
	"fmt"
	"image"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// FitOption bounds the longest side of an image
type FitOption struct {
	MaxSide uint
}

func (fo FitOption) String() string {
	return fmt.Sprintf("max%d", fo.MaxSide)
}

// Calc returns the fitted size of a ow x oh image and whether it differs.
// The longest side lands exactly on MaxSide, the other is floored.
func (fo FitOption) Calc(ow, oh uint) (w, h uint, changed bool) {
	longest := ow
	if oh > longest {
		longest = oh
	}
	if fo.MaxSide == 0 || longest <= fo.MaxSide {
		return ow, oh, false
	}

	w = ow * fo.MaxSide / longest
	h = oh * fo.MaxSide / longest
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}
	return w, h, true
}

// FitImage shrinks img so its longest side is at most fo.MaxSide.
// Images already small enough are returned as they are.
func FitImage(img image.Image, fo FitOption) (image.Image, error) {
	if fo.MaxSide == 0 {
		return nil, ErrBadTarget
	}
	ob := img.Bounds()
	if ob.Empty() {
		return nil, ErrEmptyImage
	}
	w, h, changed := fo.Calc(uint(ob.Dx()), uint(ob.Dy()))
	if !changed {
		return img, nil
	}
	if p, ok := img.(*image.Paletted); ok {
		img = toNRGBA(p)
	}
	return resize.Resize(w, h, img, resize.Lanczos3), nil
}

// toNRGBA expands a palette image, resize turns it into 16 bit RGBA64 otherwise
func toNRGBA(p *image.Paletted) *image.NRGBA {
	b := p.Bounds()
	m := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(m, m.Bounds(), p, b.Min, draw.Src)
	return m
}
