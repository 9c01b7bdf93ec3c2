// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster3d

// Handedness selects which way the cross product of the x and y axes
// points relative to the viewer.
type Handedness int

const (
	RightHanded Handedness = iota
	LeftHanded
)

// YAxis selects which screen direction increasing clip-space y maps to.
type YAxis int

const (
	// YUp means +y in NDC points toward the top of the target.
	YUp YAxis = iota
	// YDown means +y in NDC points toward the bottom of the target,
	// matching row-major raster order directly.
	YDown
)

// ZRange selects the NDC depth range produced by the projection the
// caller's vertex stage used.
type ZRange int

const (
	// ZNegOneToOne is OpenGL-style NDC depth, z in [-1, 1].
	ZNegOneToOne ZRange = iota
	// ZZeroToOne is Vulkan/Direct3D/Metal-style NDC depth, z in [0, 1].
	ZZeroToOne
)

// CoordinateMode describes the conventions the caller's projection
// matrices were built with. The rasterizer uses it to map NDC coordinates
// to viewport pixels and to normalize depth into [0, 1] for the depth
// buffer (spec §4.3, point 4).
type CoordinateMode struct {
	Handedness Handedness
	YAxis      YAxis
	ZRange     ZRange
}

// Preset CoordinateModes matching common graphics APIs. All are right
// or left handed NDC conventions after projection; Handedness here
// describes the space the convention is named for, not a constraint the
// rasterizer itself enforces.
var (
	Vulkan  = CoordinateMode{Handedness: LeftHanded, YAxis: YDown, ZRange: ZZeroToOne}
	Metal   = CoordinateMode{Handedness: LeftHanded, YAxis: YDown, ZRange: ZZeroToOne}
	DirectX = CoordinateMode{Handedness: LeftHanded, YAxis: YUp, ZRange: ZZeroToOne}
	OpenGL  = CoordinateMode{Handedness: RightHanded, YAxis: YUp, ZRange: ZNegOneToOne}
)

// normalizeDepth maps an NDC-space z value in this mode's ZRange into
// [0, 1] for storage in a depth target.
func (m CoordinateMode) normalizeDepth(z float64) float64 {
	if m.ZRange == ZNegOneToOne {
		return z*0.5 + 0.5
	}
	return z
}

// flipY reports whether NDC y must be flipped when mapping to raster rows,
// where row 0 is the top of the target and increases downward.
func (m CoordinateMode) flipY() bool {
	return m.YAxis == YUp
}
