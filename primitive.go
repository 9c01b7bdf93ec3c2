// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster3d

// PrimitiveKind selects how a flat index stream is chunked into
// primitives (spec §4.2).
type PrimitiveKind int

const (
	Points PrimitiveKind = iota
	Lines
	LineStrip
	Triangles
	TriangleStrip
	TriangleFan
)

// assembleIndices walks idx and calls emit once per primitive, passing the
// vertex indices that make it up. For strip and fan kinds, emit receives
// the indices in the winding order needed so downstream culling doesn't
// need to special-case the assembly kind.
func assembleIndices(kind PrimitiveKind, idx []int, emit func(verts []int)) {
	switch kind {
	case Points:
		for i := 0; i < len(idx); i++ {
			emit(idx[i : i+1])
		}
	case Lines:
		for i := 0; i+1 < len(idx); i += 2 {
			emit(idx[i : i+2])
		}
	case LineStrip:
		for i := 0; i+1 < len(idx); i++ {
			emit([]int{idx[i], idx[i+1]})
		}
	case Triangles:
		for i := 0; i+2 < len(idx); i += 3 {
			emit(idx[i : i+3])
		}
	case TriangleStrip:
		for i := 0; i+2 < len(idx); i++ {
			if i%2 == 0 {
				emit([]int{idx[i], idx[i+1], idx[i+2]})
			} else {
				// Odd-indexed triangles in a strip have their first two
				// vertices swapped to preserve winding order.
				emit([]int{idx[i+1], idx[i], idx[i+2]})
			}
		}
	case TriangleFan:
		if len(idx) < 3 {
			return
		}
		hub := idx[0]
		for i := 1; i+1 < len(idx); i++ {
			emit([]int{hub, idx[i], idx[i+1]})
		}
	}
}
