// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster3d

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/raster3d/colorf"
)

// ImageTarget adapts a draw.Image into a Target[colorf.RGBA], so a
// render call can write directly into a standard library image without
// an intermediate Buffer2D. Reads and writes pay the cost of converting
// between colorf's straight alpha and the image's native color model on
// every call. Channel values are copied without any gamma (transfer
// function) conversion.
type ImageTarget struct {
	Img draw.Image
}

// Size implements Target.
func (t ImageTarget) Size() (int, int) {
	b := t.Img.Bounds()
	return b.Dx(), b.Dy()
}

// At implements Target.
func (t ImageTarget) At(x, y int) colorf.RGBA {
	b := t.Img.Bounds()
	r, g, bl, a := t.Img.At(b.Min.X+x, b.Min.Y+y).RGBA()
	if a == 0 {
		return colorf.RGBA{}
	}
	// color.Color channels are alpha-premultiplied; colorf.RGBA is not.
	fa := float64(a)
	return colorf.RGBA{
		R: float64(r) / fa,
		G: float64(g) / fa,
		B: float64(bl) / fa,
		A: fa / 0xffff,
	}
}

// Set implements Target.
func (t ImageTarget) Set(x, y int, v colorf.RGBA) {
	v = v.Clamp()
	b := t.Img.Bounds()
	t.Img.Set(b.Min.X+x, b.Min.Y+y, color64{v})
}

// color64 adapts a colorf.RGBA to image/color.Color using 16 bits per
// channel, matching the precision draw.Image conversions expect. RGBA
// premultiplies by alpha, as the color.Color contract requires.
type color64 struct{ c colorf.RGBA }

func (c color64) RGBA() (r, g, b, a uint32) {
	r = uint32(c.c.R * c.c.A * 0xffff)
	g = uint32(c.c.G * c.c.A * 0xffff)
	b = uint32(c.c.B * c.c.A * 0xffff)
	a = uint32(c.c.A * 0xffff)
	return
}

var _ image.Image = (*image.RGBA)(nil)
var _ Target[colorf.RGBA] = ImageTarget{}

// Resize scales src to exactly dstW x dstH using bilinear filtering,
// producing a new *image.RGBA. Useful for downsampling a supersampled
// render target (rendering at a higher resolution than the final output
// is a common way to anti-alias a rasterizer that has no built-in MSAA).
func Resize(src image.Image, dstW, dstH int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}
