// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster3d

// PixelMode controls what happens to a fragment that survives depth
// testing (spec §4.4, point 6; spec §9).
type PixelMode int

const (
	// PixelWrite overwrites the color target unconditionally with the
	// fragment's output.
	PixelWrite PixelMode = iota
	// PixelPassthrough discards the fragment's color output entirely: the
	// color target is left untouched, but depth is still written if the
	// depth test passed and DepthMode.WriteEnabled is set. Useful for a
	// depth-only prepass.
	PixelPassthrough
	// PixelBlend combines the fragment's output with the color already in
	// the target using the pipeline's Blend function.
	PixelBlend
)
