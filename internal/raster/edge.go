// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "github.com/chewxy/math32"

// EdgeFunction evaluates the linear function
//
//	E(x, y) = a*x + b*y + c
//
// used for the edge-function triangle coverage test. Coefficients are
// float32: per-pixel evaluation is the hottest loop in the rasterizer,
// and single precision is ample for viewport-space coordinates.
type EdgeFunction struct {
	A, B, C float32
}

// NewEdgeFunction builds the edge function for the directed edge
// (x0,y0) -> (x1,y1). With y increasing downward, E is positive to the
// right of the edge as seen on screen, which is the interior side of
// every edge of a triangle with positive SignedArea2.
func NewEdgeFunction(x0, y0, x1, y1 float32) EdgeFunction {
	a := y0 - y1
	b := x1 - x0
	c := -(a*x0 + b*y0)
	return EdgeFunction{A: a, B: b, C: c}
}

// At evaluates the edge function at (x, y).
func (e EdgeFunction) At(x, y float32) float32 {
	return e.A*x + e.B*y + e.C
}

// TopLeft reports whether the directed edge (x0,y0)->(x1,y1) is a
// top edge (horizontal, travelling leftward) or a left edge (travelling
// downward), per the D3D/Vulkan top-left fill rule. Pixels exactly on a
// top-left edge are covered; pixels exactly on any other edge are not,
// which gives every pixel on a shared edge between two triangles to
// exactly one of them (spec §8, invariant 1; scenario S5). These edge
// directions are those of a triangle with negative SignedArea2;
// RasterizeTriangle passes a positive-area triangle's edges reversed.
func TopLeft(x0, y0, x1, y1 float32) bool {
	isTop := y0 == y1 && x1 < x0
	isLeft := y1 > y0
	return isTop || isLeft
}

// Covered reports whether an edge-function sample value counts as inside
// the triangle under the top-left fill rule.
func Covered(e float32, topLeft bool) bool {
	if topLeft {
		return e >= 0
	}
	return e > 0
}

// Barycentric holds the three edge-function samples at a pixel center,
// in the order (e12, e20, e01) matching vertex opposite each edge.
type Barycentric struct {
	W0, W1, W2 float32
}

// Covered reports whether all three samples satisfy their edge's
// top-left rule.
func (b Barycentric) Covered(topLeft [3]bool) bool {
	return Covered(b.W0, topLeft[0]) && Covered(b.W1, topLeft[1]) && Covered(b.W2, topLeft[2])
}

// Normalized returns the barycentric weights divided by twice the
// triangle's signed area, so that W0+W1+W2 == 1.
func (b Barycentric) Normalized(area2 float32) (u, v, w float32) {
	inv := 1 / area2
	return b.W0 * inv, b.W1 * inv, b.W2 * inv
}

// clampf32 is used to guard against tiny negative weights introduced by
// floating point error at triangle edges from producing out-of-range
// perspective-correction results.
func clampf32(x, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, x))
}
