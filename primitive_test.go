// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster3d

import (
	"reflect"
	"testing"
)

func collect(kind PrimitiveKind, idx []int) [][]int {
	var out [][]int
	assembleIndices(kind, idx, func(verts []int) {
		cp := append([]int(nil), verts...)
		out = append(out, cp)
	})
	return out
}

func TestAssembleIndices_Points(t *testing.T) {
	got := collect(Points, []int{0, 1, 2})
	want := [][]int{{0}, {1}, {2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAssembleIndices_Lines_DropsTrailingSingleton(t *testing.T) {
	got := collect(Lines, []int{0, 1, 2})
	want := [][]int{{0, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAssembleIndices_LineStrip(t *testing.T) {
	got := collect(LineStrip, []int{0, 1, 2, 3})
	want := [][]int{{0, 1}, {1, 2}, {2, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAssembleIndices_Triangles_DropsTrailing(t *testing.T) {
	got := collect(Triangles, []int{0, 1, 2, 3, 4})
	want := [][]int{{0, 1, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAssembleIndices_TriangleStrip_AlternatesWinding(t *testing.T) {
	got := collect(TriangleStrip, []int{0, 1, 2, 3, 4})
	want := [][]int{{0, 1, 2}, {2, 1, 3}, {2, 3, 4}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAssembleIndices_TriangleFan(t *testing.T) {
	got := collect(TriangleFan, []int{0, 1, 2, 3})
	want := [][]int{{0, 1, 2}, {0, 2, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAssembleIndices_TriangleFan_TooFewVertices(t *testing.T) {
	got := collect(TriangleFan, []int{0, 1})
	if got != nil {
		t.Errorf("got %v, want nil", got)
	}
}
