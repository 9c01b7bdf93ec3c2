// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster3d

import "github.com/gogpu/raster3d/internal/raster"

// Vec4 is a homogeneous clip-space position, as produced by the caller's
// vertex stage: (x, y, z, w).
type Vec4 = raster.Vec4

// Varying is the capability a pipeline's VertexData type must implement so
// the rasterizer can blend it across a primitive's vertices: componentwise
// scale-by-scalar and add, the minimum algebra needed for barycentric and
// linear interpolation (spec §3, §9).
//
// A zero-sized struct satisfies Varying trivially and is the idiomatic
// choice for pipelines that carry no per-vertex data (flat-shaded
// pipelines that only need position).
type Varying[T any] = raster.Varying[T]

// NoVarying is the default VertexData for pipelines that interpolate
// nothing across a primitive (e.g. flat-color fragment stages that only
// look at the primitive index or a closed-over uniform).
type NoVarying = raster.NoVarying

// ClipVertex pairs a clip-space position with its interpolated varyings.
// This is the shape the vertex stage produces and the shape clipping
// operates on (spec §4.3).
type ClipVertex[D any] = raster.ClipVertex[D]
