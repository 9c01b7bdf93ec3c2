// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster implements the fixed-function scan-conversion pipeline:
// near-plane clipping, perspective divide and viewport mapping, back-face
// culling, edge-function triangle coverage, perspective-correct
// interpolation, and line/point rasterization. It has no knowledge of the
// caller's vertex or fragment shader logic; callers drive it by supplying
// already vertex-shaded primitives and a per-fragment sink closure.
package raster

import "math"

// Vec4 is a homogeneous clip-space position: (x, y, z, w).
type Vec4 = [4]float64

// hasNaN reports whether any component of v is NaN. Plain comparisons
// against a NaN clip coordinate are always false, so predicates built
// only from `<`/`>` never catch it; callers that need to drop degenerate
// primitives (spec §7) must check this explicitly.
func hasNaN(v Vec4) bool {
	for _, c := range v {
		if math.IsNaN(c) {
			return true
		}
	}
	return false
}

// ValidClip reports whether a clip-space position can be projected to
// screen space: no component is NaN or infinite, and w is strictly
// positive. A point or line vertex failing this check is dropped rather
// than rasterized (spec §7, numeric degeneracy) — unlike triangles,
// points and lines have no clipping stage to otherwise resolve w <= 0.
func ValidClip(v Vec4) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return v[3] > 0
}

// Varying is the algebra a primitive's interpolated attribute type must
// support: componentwise scale-by-scalar and add, the minimum needed for
// barycentric and linear blending.
type Varying[T any] interface {
	ScaleVarying(s float64) T
	AddVarying(o T) T
}

// NoVarying is the zero-sized default for primitives that carry no
// interpolated data.
type NoVarying struct{}

func (NoVarying) ScaleVarying(float64) NoVarying  { return NoVarying{} }
func (NoVarying) AddVarying(NoVarying) NoVarying  { return NoVarying{} }

// ClipVertex pairs a clip-space position with its interpolated varyings,
// the shape the vertex stage produces and clipping operates on.
type ClipVertex[D any] struct {
	Pos  Vec4
	Data D
}

// LerpVec4 linearly interpolates two clip-space positions componentwise.
func LerpVec4(a, b Vec4, t float64) Vec4 {
	return Vec4{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
		a[3] + (b[3]-a[3])*t,
	}
}

// LerpVarying linearly interpolates two varyings using their Varying
// algebra.
func LerpVarying[D Varying[D]](a, b D, t float64) D {
	return a.ScaleVarying(1 - t).AddVarying(b.ScaleVarying(t))
}
