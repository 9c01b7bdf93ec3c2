// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "github.com/chewxy/math32"

// RasterizePoint emits a single sample at the viewport-mapped integer
// location of v, using its own varyings and depth unmodified (spec
// §4.5).
func RasterizePoint[D any](v ScreenVertex[D], clip Bounds, visit Visit[D]) {
	x, y := int(math32.Round(float32(v.X))), int(math32.Round(float32(v.Y)))
	if x < clip.MinX || x >= clip.MaxX || y < clip.MinY || y >= clip.MaxY {
		return
	}
	visit(x, y, v.Z, v.Data)
}

// RasterizeLine walks the pixels between a and b with a DDA step,
// perspective-correcting the interpolated varyings using each endpoint's
// 1/w (spec §4.5).
func RasterizeLine[D Varying[D]](a, b ScreenVertex[D], clip Bounds, visit Visit[D]) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	steps := int(math32.Max(math32.Abs(float32(dx)), math32.Abs(float32(dy))))
	if steps == 0 {
		RasterizePoint(a, clip, visit)
		return
	}

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)

		x := int(math32.Round(float32(a.X + dx*t)))
		y := int(math32.Round(float32(a.Y + dy*t)))
		if x < clip.MinX || x >= clip.MaxX || y < clip.MinY || y >= clip.MaxY {
			continue
		}

		invWa, invWb := a.InvW, b.InvW
		pa := (1 - t) * invWa
		pb := t * invWb
		sum := pa + pb
		if sum == 0 {
			continue
		}
		pa, pb = pa/sum, pb/sum

		z := a.Z + (b.Z-a.Z)*t
		data := a.Data.ScaleVarying(pa).AddVarying(b.Data.ScaleVarying(pb))
		visit(x, y, z, data)
	}
}
