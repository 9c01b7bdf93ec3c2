// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster3d

// CompareFunc selects how an incoming fragment's depth is compared
// against the value already in the depth target.
type CompareFunc int

const (
	CompareAlways CompareFunc = iota
	CompareNever
	CompareLess
	CompareLessEqual
	CompareGreater
	CompareGreaterEqual
	CompareEqual
	CompareNotEqual
)

func (f CompareFunc) passes(incoming, stored float64) bool {
	switch f {
	case CompareAlways:
		return true
	case CompareNever:
		return false
	case CompareLess:
		return incoming < stored
	case CompareLessEqual:
		return incoming <= stored
	case CompareGreater:
		return incoming > stored
	case CompareGreaterEqual:
		return incoming >= stored
	case CompareEqual:
		return incoming == stored
	case CompareNotEqual:
		return incoming != stored
	default:
		return true
	}
}

// DepthMode controls depth testing and writing (spec §4.4, point 5). A
// zero DepthMode (CompareAlways, WriteEnabled false) performs no
// depth-based rejection and never writes the depth target, matching a
// pipeline that carries no depth target at all.
type DepthMode struct {
	Compare      CompareFunc
	WriteEnabled bool
}

// DepthDefault always passes the test and never writes: used when the
// caller has no depth target.
var DepthDefault = DepthMode{Compare: CompareAlways, WriteEnabled: false}

// DepthLessWrite is the common 3D convention: nearer fragments win, and
// depth is written whenever the test passes.
var DepthLessWrite = DepthMode{Compare: CompareLess, WriteEnabled: true}
