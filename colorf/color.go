// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package colorf provides linear-light floating-point color values and
// Porter-Duff compositing operators for use as a Pixel type and blend
// function with raster3d.Pipeline. Neither is required by the
// rasterizer; they are a convenience for callers who want a ready-made
// RGBA representation instead of defining their own.
package colorf

import "github.com/chewxy/math32"

// RGBA is a straight-alpha color with components in [0, 1], stored in
// linear light (not gamma-encoded).
type RGBA struct {
	R, G, B, A float64
}

// ScaleVarying implements raster3d.Varying so RGBA can be used directly
// as interpolated vertex data.
func (c RGBA) ScaleVarying(s float64) RGBA {
	return RGBA{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A * s}
}

// AddVarying implements raster3d.Varying.
func (c RGBA) AddVarying(o RGBA) RGBA {
	return RGBA{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A + o.A}
}

// Clamp returns c with every component restricted to [0, 1].
func (c RGBA) Clamp() RGBA {
	return RGBA{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
		A: clamp01(c.A),
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// ToSRGB8 converts a linear-light, straight-alpha color to gamma-encoded
// 8-bit-per-channel RGBA, the form most image.Image implementations and
// file formats expect.
func ToSRGB8(c RGBA) (r, g, b, a uint8) {
	c = c.Clamp()
	return encodeSRGB(c.R), encodeSRGB(c.G), encodeSRGB(c.B), uint8(math32.Round(float32(c.A) * 255))
}

// FromSRGB8 converts gamma-encoded 8-bit-per-channel RGBA into a
// linear-light, straight-alpha RGBA.
func FromSRGB8(r, g, b, a uint8) RGBA {
	return RGBA{
		R: decodeSRGB(r),
		G: decodeSRGB(g),
		B: decodeSRGB(b),
		A: float64(a) / 255,
	}
}

func encodeSRGB(linear float64) uint8 {
	var v float64
	if linear <= 0.0031308 {
		v = linear * 12.92
	} else {
		v = 1.055*powf(linear, 1/2.4) - 0.055
	}
	return uint8(math32.Round(float32(clamp01(v) * 255)))
}

func decodeSRGB(v uint8) float64 {
	c := float64(v) / 255
	if c <= 0.04045 {
		return c / 12.92
	}
	return powf((c+0.055)/1.055, 2.4)
}

func powf(x, y float64) float64 {
	return float64(math32.Pow(float32(x), float32(y)))
}
