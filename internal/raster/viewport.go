// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// ScreenVertex is a clip-space vertex after perspective divide and
// viewport mapping: X and Y are pixel coordinates (not yet rounded), Z is
// normalized depth in [0, 1], and InvW is 1/clip.w, kept for
// perspective-correct interpolation.
type ScreenVertex[D any] struct {
	X, Y, Z float64
	InvW    float64
	Data    D
}

// ToScreen perspective-divides a clip-space vertex and maps it into
// viewport pixel coordinates. flipY reverses the sign applied to NDC y
// before mapping (true for CoordinateModes whose y axis points up, since
// raster rows increase downward). normalizeDepth converts NDC z (whose
// range depends on the coordinate mode) into [0, 1].
func ToScreen[D any](v ClipVertex[D], w, h int, flipY bool, normalizeDepth func(float64) float64) ScreenVertex[D] {
	invW := 1 / v.Pos[3]
	ndcX := v.Pos[0] * invW
	ndcY := v.Pos[1] * invW
	ndcZ := v.Pos[2] * invW

	if flipY {
		ndcY = -ndcY
	}

	return ScreenVertex[D]{
		X:    (ndcX*0.5 + 0.5) * float64(w),
		Y:    (ndcY*0.5 + 0.5) * float64(h),
		Z:    normalizeDepth(ndcZ),
		InvW: invW,
		Data: v.Data,
	}
}

// SignedArea2 returns twice the signed area of the screen-space triangle
// (a, b, c). Its sign encodes winding: with y increasing downward
// (standard raster order), positive means the vertices run clockwise as
// seen on screen.
func SignedArea2[D any](a, b, c ScreenVertex[D]) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
