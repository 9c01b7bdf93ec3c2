// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster3d

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Render. These are the structural failures
// that cannot be handled silently (spec §7): everything else (degenerate
// primitives, NaN clip positions, out-of-range writes) is total and
// handled by dropping the offending primitive or clamping.
var (
	// ErrTargetSizeMismatch is returned when the color and depth targets
	// passed to Render have different dimensions. Returned before any
	// user shader runs.
	ErrTargetSizeMismatch = errors.New("raster3d: color and depth target sizes differ")

	// ErrNilTarget is returned when the color target is nil.
	ErrNilTarget = errors.New("raster3d: color target is nil")
)

// BadIndexError is returned when an indexed draw references a vertex index
// outside the bounds of the supplied vertex slice. The draw that produced
// it writes nothing further, but a render call that submitted multiple
// draws may still have effects from the draws that already completed.
type BadIndexError struct {
	Index int // the offending index value
	Len   int // len(vertices) at the time of the draw
}

func (e *BadIndexError) Error() string {
	return fmt.Sprintf("raster3d: index %d out of range for %d vertices", e.Index, e.Len)
}
