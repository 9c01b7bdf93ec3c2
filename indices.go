// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster3d

// sequentialIndices returns the identity index stream 0..n-1, used when a
// render call supplies no explicit indices.
func sequentialIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// ValidateIndices reports the first index in idx that is out of range for
// a vertex slice of length n, if any. Used by Render to fail a draw with
// a [BadIndexError] before any vertex shading occurs for that draw,
// rather than partway through.
func ValidateIndices(idx []int, n int) (badIndex int, ok bool) {
	for _, i := range idx {
		if i < 0 || i >= n {
			return i, false
		}
	}
	return 0, true
}
