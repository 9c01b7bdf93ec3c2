// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster3d

// CullMode selects which triangle winding, if any, is discarded before
// scan conversion (spec §4.3, point 5).
type CullMode int

const (
	// CullNone rasterizes triangles of both windings.
	CullNone CullMode = iota
	// CullBack discards back-facing triangles: those whose vertices run
	// counter-clockwise as seen on screen (negative doubled signed area
	// with y increasing downward).
	// This is independent of the draw's CoordinateMode; callers whose
	// projection flips handedness submit the opposite winding.
	CullBack
	// CullFront discards front-facing triangles: those whose vertices run
	// clockwise as seen on screen.
	CullFront
)
